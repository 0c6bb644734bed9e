package clockface

import (
	"math"

	"github.com/gogpu/gg"
)

// MaxSurfaceBytes caps a single pixel buffer allocation.
const MaxSurfaceBytes = 1 << 30

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// Surface owns a CPU-side RGBA pixel buffer of Width x Height pixels with
// stride Width*4, plus the GPU texture it is uploaded into.
type Surface struct {
	pixmap  *gg.Pixmap
	canvas  *ggCanvas
	width   int
	height  int
	texture uint32
}

// NewSurface allocates a width x height buffer. It fails with
// *AllocationError for non-positive dimensions or sizes above
// MaxSurfaceBytes.
func NewSurface(width, height int) (*Surface, error) {
	size := surfaceBytes(width, height)
	if width <= 0 || height <= 0 || size < 0 || size > MaxSurfaceBytes {
		return nil, &AllocationError{Width: width, Height: height, RequestedSize: size}
	}
	return &Surface{
		pixmap: gg.NewPixmap(width, height),
		width:  width,
		height: height,
	}, nil
}

// surfaceBytes returns width*height*4, or -1 on overflow.
func surfaceBytes(width, height int) int64 {
	if width <= 0 || height <= 0 {
		return int64(width) * int64(height) * BytesPerPixel
	}
	if int64(width) > math.MaxInt64/BytesPerPixel/int64(height) {
		return -1
	}
	return int64(width) * int64(height) * BytesPerPixel
}

// Width returns the buffer width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the buffer height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int { return s.width * BytesPerPixel }

// Released reports whether Release has been called.
func (s *Surface) Released() bool { return s.pixmap == nil }

// Pixels returns the raw buffer, or nil after Release.
func (s *Surface) Pixels() []byte {
	if s.pixmap == nil {
		return nil
	}
	return s.pixmap.Data()
}

// Texture returns the GPU texture the buffer was last uploaded into.
func (s *Surface) Texture() uint32 { return s.texture }

// AsCanvas returns a canvas that draws straight into the buffer. The same
// canvas is returned on every call until Release.
func (s *Surface) AsCanvas() (Canvas, error) {
	if s.pixmap == nil {
		return nil, ErrSurfaceReleased
	}
	if s.canvas == nil {
		s.canvas = newGGCanvas(s.pixmap)
	}
	return s.canvas, nil
}

// UploadAsTexture copies the whole buffer into the surface's texture,
// creating it on first use.
func (s *Surface) UploadAsTexture(dev Device, mipmaps bool) (uint32, error) {
	if s.pixmap == nil {
		return 0, ErrSurfaceReleased
	}
	s.texture = dev.UploadTexture(s.texture, s.width, s.height, s.pixmap.Data(), mipmaps)
	return s.texture, nil
}

// Release drops the buffer. It is safe to call more than once.
func (s *Surface) Release() {
	s.pixmap = nil
	s.canvas = nil
}
