package clockface

// FillStyle describes a shape fill. Blur is the sigma of a soft mask applied
// to the shape's edges; zero draws hard edges.
type FillStyle struct {
	Color uint32
	Blur  float64
}

// TextStyle describes center-aligned text.
type TextStyle struct {
	Color uint32
	Size  float64
	Blur  float64
}

// Canvas is the 2D drawing interface the clock renderer paints through.
// Implementations may buffer operations until Flush.
type Canvas interface {
	// Clear resets every pixel to transparent, discarding pending drawing.
	Clear()
	FillRect(x, y, w, h float64, color uint32)
	FillCircle(x, y, r float64, p FillStyle)
	// DrawText draws s horizontally centered on x with its baseline at y.
	DrawText(s string, x, y float64, p TextStyle)

	// Save pushes the current transform; Restore pops it.
	Save()
	Restore()
	// RotateAbout rotates subsequent drawing by degrees (clockwise) around
	// (x, y).
	RotateAbout(degrees, x, y float64)

	// Flush forces buffered drawing into the backing pixels.
	Flush() error
}

// WithRotation runs draw with c rotated by degrees around center. The
// previous transform is restored on every exit path, including panics.
func WithRotation(c Canvas, degrees float64, center Vec2, draw func()) {
	c.Save()
	defer c.Restore()
	c.RotateAbout(degrees, center.X, center.Y)
	draw()
}
