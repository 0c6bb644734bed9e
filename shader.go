package clockface

// Attribute slots bound by name before linking.
const (
	PositionSlot uint32 = 0
	TexCoordSlot uint32 = 1
)

// Attribute and uniform names used by the quad shaders.
const (
	PositionAttrib = "a_position"
	TexCoordAttrib = "a_texCoord"
	SamplerUniform = "s_texture"
)

// VertexShaderSource passes clip-space positions and texture coordinates
// through unchanged.
const VertexShaderSource = `
#version 410 core
in vec4 a_position;
in vec2 a_texCoord;

out vec2 v_texCoord;

void main() {
    gl_Position = a_position;
    v_texCoord = a_texCoord;
}
`

// FragmentShaderSource outputs the sampled texel.
const FragmentShaderSource = `
#version 410 core
in vec2 v_texCoord;

out vec4 FragColor;

uniform sampler2D s_texture;

void main() {
    FragColor = texture(s_texture, v_texCoord);
}
`

// ShaderProgram is a linked GPU program.
type ShaderProgram struct {
	dev    Device
	handle uint32
}

// CompileAndLink compiles both stages, binds the attribute slots and links
// them into a program. On failure every object created so far is deleted
// and a *ShaderCompileError or *ShaderLinkError is returned.
func CompileAndLink(dev Device, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vs, err := compileStage(dev, StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(dev, StageFragment, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.BindAttribLocation(program, PositionSlot, PositionAttrib)
	dev.BindAttribLocation(program, TexCoordSlot, TexCoordAttrib)

	ok, log := dev.LinkProgram(program)
	if !ok {
		dev.DeleteProgram(program)
		dev.DeleteShader(vs)
		dev.DeleteShader(fs)
		return nil, &ShaderLinkError{Log: log}
	}

	// Stages are owned by the program now.
	dev.DetachShader(program, vs)
	dev.DetachShader(program, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	return &ShaderProgram{dev: dev, handle: program}, nil
}

func compileStage(dev Device, stage ShaderStage, source string) (uint32, error) {
	shader := dev.CreateShader(stage)
	if shader == 0 {
		return 0, &ShaderCompileError{Stage: stage, Log: "unable to create shader object"}
	}
	ok, log := dev.CompileShader(shader, source)
	if !ok {
		dev.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// Handle returns the GPU program name.
func (p *ShaderProgram) Handle() uint32 {
	return p.handle
}

// Bind makes p the current program.
func (p *ShaderProgram) Bind() error {
	if p == nil || p.handle == 0 {
		return ErrProgramReleased
	}
	p.dev.UseProgram(p.handle)
	return nil
}

// AttributeLocation returns the slot of the named vertex attribute, or -1.
func (p *ShaderProgram) AttributeLocation(name string) int32 {
	return p.dev.AttribLocation(p.handle, name)
}

// UniformLocation returns the location of the named uniform, or -1.
func (p *ShaderProgram) UniformLocation(name string) int32 {
	return p.dev.UniformLocation(p.handle, name)
}

// Delete releases the program. Binding it afterwards fails.
func (p *ShaderProgram) Delete() {
	if p.handle != 0 {
		p.dev.DeleteProgram(p.handle)
		p.handle = 0
	}
}
