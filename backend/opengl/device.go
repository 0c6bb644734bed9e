// Package opengl provides an OpenGL 4.1 backend for the clockface package.
package opengl

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/clockface"
)

// Device implements clockface.Device on the current OpenGL context.
// gl.Init must have been called on the calling thread.
type Device struct {
	vao      uint32
	buffers  []uint32
	textures map[uint32][2]int // texture -> allocated width, height
}

var _ clockface.Device = (*Device)(nil)

// NewDevice creates a device and binds the vertex array object all quad
// attributes are recorded into.
func NewDevice() *Device {
	d := &Device{textures: make(map[uint32][2]int)}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.ClearColor(0, 0, 0, 0)
	return d
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) CreateShader(stage clockface.ShaderStage) uint32 {
	switch stage {
	case clockface.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case clockface.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (d *Device) CompileShader(shader uint32, source string) (bool, string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return false, strings.TrimRight(string(log), "\x00")
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Device) BindAttribLocation(program, slot uint32, name string) {
	gl.BindAttribLocation(program, slot, gl.Str(name+"\x00"))
}

func (d *Device) LinkProgram(program uint32) (bool, string) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return false, strings.TrimRight(string(log), "\x00")
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location, value int32) {
	gl.Uniform1i(location, value)
}

func (d *Device) CreateVertexBuffer(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(float32(0))), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	d.buffers = append(d.buffers, buf)
	return buf
}

func (d *Device) VertexAttribBuffer(slot, buffer uint32, size int32) {
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(slot, size, gl.FLOAT, false, size*int32(unsafe.Sizeof(float32(0))), 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (d *Device) EnableVertexAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

func (d *Device) DisableVertexAttrib(slot uint32) {
	gl.DisableVertexAttribArray(slot)
}

// UploadTexture re-specifies the texture storage when the size changes and
// updates it in place otherwise.
func (d *Device) UploadTexture(texture uint32, width, height int, pixels []byte, mipmaps bool) uint32 {
	if texture == 0 {
		gl.GenTextures(1, &texture)
	}
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	size := [2]int{width, height}
	if d.textures[texture] != size {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		d.textures[texture] = size
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(width), int32(height),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	}

	if mipmaps {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.GenerateMipmap(gl.TEXTURE_2D)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return texture
}

func (d *Device) BindTexture(unit int32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *Device) Clear() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (d *Device) Finish() {
	gl.Finish()
}

// Delete releases the objects the device created.
func (d *Device) Delete() {
	for tex := range d.textures {
		gl.DeleteTextures(1, &tex)
	}
	clear(d.textures)
	if len(d.buffers) > 0 {
		gl.DeleteBuffers(int32(len(d.buffers)), &d.buffers[0])
		d.buffers = nil
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}
