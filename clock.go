package clockface

import (
	"fmt"
	"time"
)

// Face geometry, in canvas units relative to the center.
const (
	FaceRadius = 300

	HourRadius   = 20
	HourOffset   = 210
	MinuteRadius = 15
	MinuteOffset = 250
	SecondRadius = 10
	SecondOffset = 280

	LabelSize = 100
	// SoftBlur is the blur sigma of the face, indicators and labels.
	SoftBlur = 0.7
)

// Label baselines relative to the center.
var labelBaselines = [3]float64{-40, 50, 140}

// ColorBackground is warm off-white at 20% alpha.
var ColorBackground = RGBA(0xF5, 0xF5, 0xDC, 0x33)

// Reading is a wall-clock sample.
type Reading struct {
	Hour        int // 0-23
	Minute      int // 0-59
	Second      int // 0-59
	Millisecond int // 0-999
}

// ReadingAt samples t in its own location.
func ReadingAt(t time.Time) Reading {
	h, m, s := t.Clock()
	return Reading{
		Hour:        h,
		Minute:      m,
		Second:      s,
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// HourAngle is the hour indicator rotation in degrees. It creeps between
// hour marks as minutes advance.
func (r Reading) HourAngle() float64 {
	return 30*float64(r.Hour) + 0.5*float64(r.Minute)
}

// MinuteAngle is the minute indicator rotation in degrees.
func (r Reading) MinuteAngle() float64 {
	return 6*float64(r.Minute) + 0.1*float64(r.Second)
}

// SecondAngle is the second indicator rotation in degrees.
func (r Reading) SecondAngle() float64 {
	return 6*float64(r.Second) + 0.006*float64(r.Millisecond)
}

// Labels returns the zero-padded hour, minute and second digits.
func (r Reading) Labels() [3]string {
	return [3]string{
		fmt.Sprintf("%02d", r.Hour),
		fmt.Sprintf("%02d", r.Minute),
		fmt.Sprintf("%02d", r.Second),
	}
}

// Indicator is one of the three rotating discs.
type Indicator struct {
	Offset float64 // distance above the center of the reference point
	Radius float64
	Color  uint32
}

var (
	HourIndicator   = Indicator{Offset: HourOffset, Radius: HourRadius, Color: ColorWhite}
	MinuteIndicator = Indicator{Offset: MinuteOffset, Radius: MinuteRadius, Color: ColorOrange}
	SecondIndicator = Indicator{Offset: SecondOffset, Radius: SecondRadius, Color: ColorOrangeRed}
)

// Reference returns the unrotated anchor of the indicator.
func (ind Indicator) Reference(center Vec2) Vec2 {
	return Vec2{X: center.X, Y: center.Y - ind.Offset}
}

// Position returns where the indicator lands after rotating by degrees.
func (ind Indicator) Position(center Vec2, degrees float64) Vec2 {
	return ind.Reference(center).RotateAbout(center, degrees)
}

// Paint draws the clock face for r onto c. It overwrites the whole
// width x height region and keeps no state between calls.
func Paint(c Canvas, width, height float64, r Reading) {
	center := Vec2{X: width / 2, Y: height / 2}

	c.Clear()
	c.FillRect(0, 0, width, height, ColorBackground)
	c.FillCircle(center.X, center.Y, FaceRadius, FillStyle{Color: ColorBlack, Blur: SoftBlur})

	paintIndicator(c, center, HourIndicator, r.HourAngle())
	paintIndicator(c, center, MinuteIndicator, r.MinuteAngle())
	paintIndicator(c, center, SecondIndicator, r.SecondAngle())

	text := TextStyle{Color: ColorBeige, Size: LabelSize, Blur: SoftBlur}
	for i, label := range r.Labels() {
		c.DrawText(label, center.X, center.Y+labelBaselines[i], text)
	}
}

func paintIndicator(c Canvas, center Vec2, ind Indicator, degrees float64) {
	WithRotation(c, degrees, center, func() {
		ref := ind.Reference(center)
		c.FillCircle(ref.X, ref.Y, ind.Radius, FillStyle{Color: ind.Color, Blur: SoftBlur})
	})
}
