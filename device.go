package clockface

// Device is the GPU capability set the frame pipeline drives. Handles are
// opaque GPU object names; zero means "none".
//
// The OpenGL implementation lives in backend/opengl.
type Device interface {
	Viewport(x, y, width, height int)

	CreateShader(stage ShaderStage) uint32
	// CompileShader compiles source into shader and reports success along
	// with the driver's info log.
	CompileShader(shader uint32, source string) (ok bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	BindAttribLocation(program, slot uint32, name string)
	LinkProgram(program uint32) (ok bool, log string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	Uniform1i(location, value int32)

	// CreateVertexBuffer uploads data once into a static GPU buffer.
	CreateVertexBuffer(data []float32) uint32
	// VertexAttribBuffer points attribute slot at buffer with size floats
	// per vertex, tightly packed.
	VertexAttribBuffer(slot, buffer uint32, size int32)
	EnableVertexAttrib(slot uint32)
	DisableVertexAttrib(slot uint32)

	// UploadTexture replaces the contents of texture with an RGBA image,
	// creating the texture when it is zero. It returns the texture handle.
	UploadTexture(texture uint32, width, height int, pixels []byte, mipmaps bool) uint32
	BindTexture(unit int32, texture uint32)

	// Clear enables depth testing and clears the color and depth buffers.
	Clear()
	DrawTriangles(first, count int32)
	// Finish blocks until all issued commands have completed.
	Finish()
}

// Presenter shows the finished frame, typically by swapping buffers.
type Presenter interface {
	Present()
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func()

// Present calls f.
func (f PresenterFunc) Present() { f() }
