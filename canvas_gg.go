package clockface

import (
	"fmt"
	"math"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// labelFont returns the shared font source used for text.
func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// ggCanvas draws into a gg.Pixmap. Soft (blurred) shapes are collected in
// an offscreen layer that is blurred and composited onto the pixmap before
// the next hard draw or on Flush, so consecutive soft shapes with the same
// sigma share one blur pass.
type ggCanvas struct {
	dc     *gg.Context
	width  int
	height int

	soft      *gg.Context
	softSigma float64
	softDirty bool

	faces map[float64]text.Face
	err   error
}

func newGGCanvas(pm *gg.Pixmap) *ggCanvas {
	return &ggCanvas{
		dc:     gg.NewContext(pm.Width(), pm.Height(), gg.WithPixmap(pm)),
		width:  pm.Width(),
		height: pm.Height(),
		faces:  make(map[float64]text.Face),
	}
}

func (c *ggCanvas) Clear() {
	if c.softDirty {
		c.soft.Clear()
		c.softDirty = false
	}
	c.dc.Clear()
}

func (c *ggCanvas) FillRect(x, y, w, h float64, color uint32) {
	c.flushSoft()
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetColor(NRGBA(color))
	c.record(c.dc.Fill())
}

func (c *ggCanvas) FillCircle(x, y, r float64, p FillStyle) {
	dc := c.target(p.Blur)
	dc.DrawCircle(x, y, r)
	dc.SetColor(NRGBA(p.Color))
	c.record(dc.Fill())
}

func (c *ggCanvas) DrawText(s string, x, y float64, p TextStyle) {
	face, err := c.face(p.Size)
	if err != nil {
		c.record(err)
		return
	}
	dc := c.target(p.Blur)
	dc.SetFont(face)
	dc.SetColor(NRGBA(p.Color))
	w, _ := dc.MeasureString(s)
	dc.DrawString(s, x-w/2, y)
}

func (c *ggCanvas) Save() {
	c.dc.Push()
}

func (c *ggCanvas) Restore() {
	c.dc.Pop()
}

func (c *ggCanvas) RotateAbout(degrees, x, y float64) {
	c.dc.RotateAbout(degrees*math.Pi/180, x, y)
}

// Flush composites any pending soft layer and reports the first drawing
// error since the previous Flush.
func (c *ggCanvas) Flush() error {
	c.flushSoft()
	c.record(c.dc.FlushGPU())
	err := c.err
	c.err = nil
	return err
}

// target returns the context a shape with the given blur should be drawn
// into, with the current transform applied.
func (c *ggCanvas) target(sigma float64) *gg.Context {
	if sigma <= 0 {
		c.flushSoft()
		return c.dc
	}
	if c.softDirty && sigma != c.softSigma {
		c.flushSoft()
	}
	if c.soft == nil {
		c.soft = gg.NewContext(c.width, c.height)
	}
	c.softSigma = sigma
	c.softDirty = true
	c.soft.SetTransform(c.dc.GetTransform())
	return c.soft
}

func (c *ggCanvas) flushSoft() {
	if !c.softDirty {
		return
	}
	blurred := blur.Gaussian(c.soft.Image(), c.softSigma)

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(gg.ImageBufFromImage(blurred), 0, 0)
	c.dc.Pop()

	c.soft.Clear()
	c.softDirty = false
}

func (c *ggCanvas) face(size float64) (text.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	src, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	f := src.Face(size)
	c.faces[size] = f
	return f, nil
}

func (c *ggCanvas) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}
