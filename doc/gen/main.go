// Command gen renders the clock at fixed times through the full GPU
// pipeline, captures framebuffer pixels, and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/clockface"
	"github.com/go-theft-auto/clockface/backend/opengl"
)

const size = 700

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single clock screenshot to capture.
type screenshot struct {
	name string    // filename without extension
	at   time.Time // wall-clock time shown
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := opengl.NewWindow(opengl.WindowConfig{Width: size, Height: size, Title: "screenshot-gen"})
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice()
	defer dev.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "midnight", at: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "three", at: time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)},
		{name: "half_past_noon", at: time.Date(2024, 1, 1, 12, 30, 45, 500*int(time.Millisecond), time.UTC)},
		{name: "evening", at: time.Date(2024, 1, 1, 19, 47, 12, 250*int(time.Millisecond), time.UTC)},
	}

	for _, s := range shots {
		if err := capture(dev, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, size, size)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev *opengl.Device, s screenshot, outDir string) error {
	pixels := make([]byte, size*size*4)

	// Read back the frame instead of swapping.
	readback := clockface.PresenterFunc(func() {
		gl.ReadPixels(0, 0, size, size, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	})

	p := clockface.New(dev, readback, clockface.WithClock(func() time.Time { return s.at }))
	if err := p.Initialize(size, size); err != nil {
		return err
	}
	defer p.Teardown()

	if err := p.RenderFrame(); err != nil {
		return err
	}

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := size * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < size/2; y++ {
		top := y * rowLen
		bot := (size - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
