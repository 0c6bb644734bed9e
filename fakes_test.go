package clockface_test

import (
	"fmt"
	"hash/crc32"

	"github.com/go-theft-auto/clockface"
)

// fakeDevice records every GPU call. Stages and links can be made to fail.
type fakeDevice struct {
	calls []string

	failCompile bool
	failStage   clockface.ShaderStage
	failLink    bool

	next     uint32
	shaders  map[uint32]clockface.ShaderStage // live shader objects
	programs map[uint32]bool                  // live program objects
	buffers  map[uint32][]float32

	uploads    int
	uploadSums []uint32
	uploadLen  int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:  make(map[uint32]clockface.ShaderStage),
		programs: make(map[uint32]bool),
		buffers:  make(map[uint32][]float32),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

// index returns the position of the first call equal to name, or -1.
func (d *fakeDevice) index(name string) int {
	for i, c := range d.calls {
		if c == name {
			return i
		}
	}
	return -1
}

func (d *fakeDevice) count(name string) int {
	n := 0
	for _, c := range d.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (d *fakeDevice) Viewport(x, y, w, h int) { d.record("Viewport %d %d %d %d", x, y, w, h) }

func (d *fakeDevice) CreateShader(stage clockface.ShaderStage) uint32 {
	h := d.handle()
	d.shaders[h] = stage
	d.record("CreateShader %s", stage)
	return h
}

func (d *fakeDevice) CompileShader(shader uint32, _ string) (bool, string) {
	d.record("CompileShader")
	if d.failCompile && d.shaders[shader] == d.failStage {
		return false, "0:1: syntax error"
	}
	return true, ""
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
	d.record("DeleteShader")
}

func (d *fakeDevice) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = true
	d.record("CreateProgram")
	return h
}

func (d *fakeDevice) AttachShader(_, _ uint32) { d.record("AttachShader") }
func (d *fakeDevice) DetachShader(_, _ uint32) { d.record("DetachShader") }

func (d *fakeDevice) BindAttribLocation(_, slot uint32, name string) {
	d.record("BindAttribLocation %d %s", slot, name)
}

func (d *fakeDevice) LinkProgram(_ uint32) (bool, string) {
	d.record("LinkProgram")
	if d.failLink {
		return false, "unresolved varying"
	}
	return true, ""
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	delete(d.programs, program)
	d.record("DeleteProgram")
}

func (d *fakeDevice) UseProgram(_ uint32) { d.record("UseProgram") }

func (d *fakeDevice) AttribLocation(_ uint32, name string) int32 {
	switch name {
	case clockface.PositionAttrib:
		return int32(clockface.PositionSlot)
	case clockface.TexCoordAttrib:
		return int32(clockface.TexCoordSlot)
	}
	return -1
}

func (d *fakeDevice) UniformLocation(_ uint32, name string) int32 {
	if name == clockface.SamplerUniform {
		return 7
	}
	return -1
}

func (d *fakeDevice) Uniform1i(loc, v int32) { d.record("Uniform1i %d %d", loc, v) }

func (d *fakeDevice) CreateVertexBuffer(data []float32) uint32 {
	h := d.handle()
	d.buffers[h] = append([]float32(nil), data...)
	d.record("CreateVertexBuffer %d", len(data))
	return h
}

func (d *fakeDevice) VertexAttribBuffer(slot, _ uint32, size int32) {
	d.record("VertexAttribBuffer %d %d", slot, size)
}

func (d *fakeDevice) EnableVertexAttrib(slot uint32)  { d.record("EnableVertexAttrib %d", slot) }
func (d *fakeDevice) DisableVertexAttrib(slot uint32) { d.record("DisableVertexAttrib %d", slot) }

func (d *fakeDevice) UploadTexture(tex uint32, w, h int, pixels []byte, mipmaps bool) uint32 {
	if tex == 0 {
		tex = d.handle()
	}
	d.uploads++
	d.uploadLen = len(pixels)
	d.uploadSums = append(d.uploadSums, crc32.ChecksumIEEE(pixels))
	d.record("UploadTexture %dx%d mipmaps=%t", w, h, mipmaps)
	return tex
}

func (d *fakeDevice) BindTexture(unit int32, _ uint32) { d.record("BindTexture %d", unit) }
func (d *fakeDevice) Clear()                           { d.record("Clear") }
func (d *fakeDevice) DrawTriangles(first, count int32) { d.record("DrawTriangles %d %d", first, count) }
func (d *fakeDevice) Finish()                          { d.record("Finish") }

// countingPresenter counts presented frames.
type countingPresenter struct {
	dev      *fakeDevice
	presents int
}

func (p *countingPresenter) Present() {
	p.presents++
	if p.dev != nil {
		p.dev.record("Present")
	}
}

type rotation struct {
	degrees float64
	center  clockface.Vec2
}

type drawnCircle struct {
	at     clockface.Vec2 // after applying the active transform
	radius float64
	style  clockface.FillStyle
}

type drawnText struct {
	s     string
	at    clockface.Vec2
	style clockface.TextStyle
}

// recordingCanvas keeps the draw calls and resolves positions through the
// current rotation stack.
type recordingCanvas struct {
	ops     []string
	circles []drawnCircle
	texts   []drawnText

	rotations []rotation
	saved     [][]rotation
	flushErr  error
	flushes   int
}

func (c *recordingCanvas) resolve(p clockface.Vec2) clockface.Vec2 {
	for i := len(c.rotations) - 1; i >= 0; i-- {
		r := c.rotations[i]
		p = p.RotateAbout(r.center, r.degrees)
	}
	return p
}

func (c *recordingCanvas) Clear() {
	c.ops = append(c.ops, "clear")
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, color uint32) {
	c.ops = append(c.ops, fmt.Sprintf("rect %.0f %.0f %.0f %.0f %08x", x, y, w, h, color))
}

func (c *recordingCanvas) FillCircle(x, y, r float64, p clockface.FillStyle) {
	c.ops = append(c.ops, fmt.Sprintf("circle r=%.0f", r))
	c.circles = append(c.circles, drawnCircle{at: c.resolve(clockface.Vec2{X: x, Y: y}), radius: r, style: p})
}

func (c *recordingCanvas) DrawText(s string, x, y float64, p clockface.TextStyle) {
	c.ops = append(c.ops, "text "+s)
	c.texts = append(c.texts, drawnText{s: s, at: c.resolve(clockface.Vec2{X: x, Y: y}), style: p})
}

func (c *recordingCanvas) Save() {
	c.ops = append(c.ops, "save")
	c.saved = append(c.saved, append([]rotation(nil), c.rotations...))
}

func (c *recordingCanvas) Restore() {
	c.ops = append(c.ops, "restore")
	if len(c.saved) == 0 {
		return
	}
	c.rotations = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *recordingCanvas) RotateAbout(degrees, x, y float64) {
	c.ops = append(c.ops, fmt.Sprintf("rotate %.6g", degrees))
	c.rotations = append(c.rotations, rotation{degrees: degrees, center: clockface.Vec2{X: x, Y: y}})
}

func (c *recordingCanvas) Flush() error {
	c.flushes++
	return c.flushErr
}
