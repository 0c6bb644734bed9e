package clockface

import (
	"image/color"
	"math"
)

// Vec2 represents a 2D point in canvas space (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// RotateAbout rotates v around center by degrees. Positive angles turn
// clockwise on screen because the y axis points down.
func (v Vec2) RotateAbout(center Vec2, degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	d := v.Sub(center)
	return Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite     uint32 = 0xFFFFFFFF
	ColorBlack     uint32 = 0xFF000000
	ColorOrange    uint32 = 0xFF00A5FF
	ColorOrangeRed uint32 = 0xFF0045FF
	ColorBeige     uint32 = 0xFFDCF5F5
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// NRGBA converts a packed color to a non-premultiplied color.Color.
func NRGBA(c uint32) color.NRGBA {
	r, g, b, a := UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
