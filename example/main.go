// Example opens a window and shows the clock face, redrawn every frame.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config clock.toml
//
// The config file is optional TOML:
//
//	width = 800
//	height = 800
//	title = "clockface"
//	vsync = true
//	mipmaps = true
//	log_level = "debug"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clockface"
	"github.com/go-theft-auto/clockface/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := clockface.LoadConfig(configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	clockface.SetLogger(logger)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(opengl.WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice()
	defer dev.Delete()

	pipeline := clockface.New(dev, window, clockface.WithConfig(cfg), clockface.WithLogger(logger))
	window.OnPause(pipeline.Pause)
	window.OnResume(pipeline.Resume)

	w, h := window.FramebufferSize()
	if err := pipeline.Initialize(w, h); err != nil {
		return fmt.Errorf("clockface init: %w", err)
	}
	defer pipeline.Teardown()

	for !window.ShouldClose() {
		if pipeline.State() == clockface.StatePaused {
			glfw.WaitEvents()
			continue
		}
		glfw.PollEvents()
		if err := pipeline.RenderFrame(); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
	}

	return nil
}
