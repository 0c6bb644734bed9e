package clockface

import (
	"fmt"
	"log/slog"
	"time"
)

// QuadPositions covers clip space with two triangles (x, y, z per vertex).
var QuadPositions = [18]float32{
	1, 1, 0.5,
	-1, -1, 0.5,
	1, -1, 0.5,
	1, 1, 0.5,
	-1, 1, 0.5,
	-1, -1, 0.5,
}

// QuadTexCoords maps the buffer onto the quad. The v axis is flipped so
// that buffer row 0, which GL treats as the bottom row, lands at the top.
var QuadTexCoords = [12]float32{
	1, 0,
	0, 1,
	1, 1,
	1, 0,
	0, 0,
	0, 1,
}

// QuadVertexCount is the number of vertices drawn per frame.
const QuadVertexCount = 6

// State is the lifecycle state of a Pipeline.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StatePaused
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Pipeline renders the clock into a Surface, uploads it and composites it
// onto a full-screen quad once per RenderFrame. It is not safe for
// concurrent use; the host must call it from the GL thread.
type Pipeline struct {
	dev       Device
	presenter Presenter
	now       func() time.Time
	log       *slog.Logger
	mipmaps   bool

	state      State
	program    *ShaderProgram
	surface    *Surface
	samplerLoc int32
	posBuf     uint32
	texBuf     uint32
	frames     uint64
}

// New creates a pipeline in the Uninitialized state.
func New(dev Device, presenter Presenter, opts ...Option) *Pipeline {
	p := &Pipeline{
		dev:       dev,
		presenter: presenter,
		now:       time.Now,
		log:       Logger(),
		mipmaps:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State { return p.state }

// Frames returns the number of frames presented.
func (p *Pipeline) Frames() uint64 { return p.frames }

// Surface returns the pixel surface, or nil before Initialize.
func (p *Pipeline) Surface() *Surface { return p.surface }

// Initialize compiles the shader program, uploads the quad and allocates
// a surface of the given size. Errors are fatal for the host; the
// pipeline stays Uninitialized.
func (p *Pipeline) Initialize(width, height int) error {
	if p.state != StateUninitialized {
		return fmt.Errorf("initialize while %s: %w", p.state, ErrInvalidState)
	}

	program, err := CompileAndLink(p.dev, VertexShaderSource, FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create shader: %w", err)
	}

	surface, err := NewSurface(width, height)
	if err != nil {
		program.Delete()
		return fmt.Errorf("failed to create surface: %w", err)
	}

	p.dev.Viewport(0, 0, width, height)
	p.program = program
	p.surface = surface
	p.samplerLoc = program.UniformLocation(SamplerUniform)
	p.posBuf = p.dev.CreateVertexBuffer(QuadPositions[:])
	p.texBuf = p.dev.CreateVertexBuffer(QuadTexCoords[:])
	p.state = StateRunning

	p.log.Info("clockface: pipeline initialized", "width", width, "height", height)
	return nil
}

// RenderFrame draws one frame from the current wall-clock time. A frame
// whose canvas cannot be drawn is skipped without error, and a paused
// pipeline skips every frame until Resume.
func (p *Pipeline) RenderFrame() error {
	switch p.state {
	case StateRunning:
	case StatePaused:
		return nil
	default:
		return fmt.Errorf("render frame while %s: %w", p.state, ErrInvalidState)
	}

	reading := ReadingAt(p.now())

	canvas, err := p.surface.AsCanvas()
	if err != nil {
		p.log.Debug("clockface: frame skipped", "err", err)
		return nil
	}
	Paint(canvas, float64(p.surface.Width()), float64(p.surface.Height()), reading)
	if err := canvas.Flush(); err != nil {
		p.log.Debug("clockface: frame skipped", "err", err)
		return nil
	}

	texture, err := p.surface.UploadAsTexture(p.dev, p.mipmaps)
	if err != nil {
		p.log.Debug("clockface: frame skipped", "err", err)
		return nil
	}

	p.dev.Clear()

	if err := p.program.Bind(); err != nil {
		return fmt.Errorf("bind program: %w", err)
	}
	p.dev.BindTexture(0, texture)
	p.dev.Uniform1i(p.samplerLoc, 0)

	p.dev.VertexAttribBuffer(PositionSlot, p.posBuf, 3)
	p.dev.EnableVertexAttrib(PositionSlot)
	p.dev.VertexAttribBuffer(TexCoordSlot, p.texBuf, 2)
	p.dev.EnableVertexAttrib(TexCoordSlot)

	p.dev.DrawTriangles(0, QuadVertexCount)

	p.dev.Finish()

	p.dev.DisableVertexAttrib(PositionSlot)
	p.dev.DisableVertexAttrib(TexCoordSlot)

	p.presenter.Present()
	p.frames++
	return nil
}

// Pause suspends rendering; RenderFrame becomes a no-op until Resume.
func (p *Pipeline) Pause() {
	if p.state == StateRunning {
		p.state = StatePaused
		p.log.Info("clockface: pipeline paused")
	}
}

// Resume undoes Pause.
func (p *Pipeline) Resume() {
	if p.state == StatePaused {
		p.state = StateRunning
		p.log.Info("clockface: pipeline resumed")
	}
}

// Teardown releases the pixel surface. GPU objects are reclaimed with the
// context. Calling Teardown more than once is a no-op.
func (p *Pipeline) Teardown() {
	if p.state == StateTerminated {
		return
	}
	if p.surface != nil {
		p.surface.Release()
	}
	p.state = StateTerminated
	p.log.Info("clockface: pipeline terminated", "frames", p.frames)
}
