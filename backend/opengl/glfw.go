package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clockface"
)

// WindowConfig describes the window to open.
type WindowConfig struct {
	Width, Height int
	Title         string
	VSync         bool
}

// Window is a GLFW window with a current OpenGL 4.1 core context. It
// presents frames and forwards iconify events as pause/resume.
// glfw.Init must have been called, and all methods must run on the main
// thread.
type Window struct {
	window   *glfw.Window
	onPause  func()
	onResume func()
}

var _ clockface.Presenter = (*Window)(nil)

// NewWindow creates the window, makes its context current and loads the
// OpenGL function pointers.
func NewWindow(cfg WindowConfig) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: window}
	window.SetIconifyCallback(w.iconifyCallback)
	return w, nil
}

// OnPause registers the function called when the window is minimized.
func (w *Window) OnPause(fn func()) { w.onPause = fn }

// OnResume registers the function called when the window is restored.
func (w *Window) OnResume(fn func()) { w.onResume = fn }

// Present swaps the front and back buffers.
func (w *Window) Present() {
	w.window.SwapBuffers()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

// Close destroys the window and its context.
func (w *Window) Close() {
	w.window.Destroy()
}

func (w *Window) iconifyCallback(_ *glfw.Window, iconified bool) {
	switch {
	case iconified && w.onPause != nil:
		w.onPause()
	case !iconified && w.onResume != nil:
		w.onResume()
	}
}
