package stream

import (
	"math"
)

// A Trail is a Layer that lays a gradient along the strip. Tweening Offset
// from 0 to Length cycles the gradient once.
type Trail struct {
	Gradient   GradientTable
	Length     float64
	Offset     float64
	Saturation float64
	Luminance  float64
}

// Draw paints every pixel of f from the gradient.
func (g *Trail) Draw(f *Frame) {
	if g.Length <= 0 {
		return
	}

	numPixels := len(f.pixels)
	for i := 0; i < numPixels; i++ {
		pos := math.Mod(float64(i+numPixels)-g.Offset, g.Length)
		if pos < 0 {
			pos += g.Length
		}
		f.pixels[i] = g.Gradient.GetColor(pos/g.Length, g.Saturation, g.Luminance)
	}
}
