package clockface

import (
	"errors"
	"fmt"
)

var (
	// ErrSurfaceReleased is returned when a released surface is drawn into
	// or uploaded.
	ErrSurfaceReleased = errors.New("surface released")

	// ErrProgramReleased is returned when binding a program whose handle
	// is zero.
	ErrProgramReleased = errors.New("shader program not linked")

	// ErrInvalidState is returned when a pipeline entry point is called
	// from a state that does not allow it.
	ErrInvalidState = errors.New("invalid pipeline state")
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// ShaderCompileError reports a shader stage that failed to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// ShaderLinkError reports a program that failed to link after both stages
// compiled.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// AllocationError reports a pixel buffer that could not be allocated.
// RequestedSize is -1 when the byte size overflows.
type AllocationError struct {
	Width, Height int
	RequestedSize int64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate %dx%d pixel buffer (%d bytes)", e.Width, e.Height, e.RequestedSize)
}
