/*
Package clockface renders an analog/digital clock into a CPU pixel buffer
with a 2D vector canvas and composites that buffer onto a full-screen quad
through a minimal shader, once per display frame.

# Overview

Every frame is a full redraw from the current wall-clock time:

	host tick → Pipeline.RenderFrame
	    → Paint(surface canvas, now)   // gg vector drawing into RGBA memory
	    → Surface.UploadAsTexture      // TexImage2D + mipmaps
	    → clear, bind program/texture, draw 6 vertices
	    → Finish → disable attributes → Present

The pipeline only talks to the GPU through the [Device] interface; the
OpenGL 4.1 implementation and a GLFW host live in backend/opengl.

# Quick Start

	dev := opengl.NewDevice()
	p := clockface.New(dev, window)
	if err := p.Initialize(800, 800); err != nil {
	    // shader or allocation failure: abort startup
	}
	defer p.Teardown()

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := p.RenderFrame(); err != nil {
	        return err
	    }
	}

# Lifecycle

A Pipeline is a small state machine:

	Uninitialized --Initialize--> Running <--Pause/Resume--> Paused
	Running/Paused --Teardown--> Terminated

RenderFrame outside Running or Paused returns [ErrInvalidState]. Startup
failures are reported as [*ShaderCompileError], [*ShaderLinkError] or
[*AllocationError] wrapped in the returned error.

# Clock geometry

Indicators are discs whose reference points sit above the center at
distances 210 (hour), 250 (minute) and 280 (second). They are rotated
clockwise about the center by:

	hour   30°·h + 0.5°·m
	minute  6°·m + 0.1°·s
	second  6°·s + 0.006°·ms

Two-digit labels for hour, minute and second are drawn under the disc.
*/
package clockface
