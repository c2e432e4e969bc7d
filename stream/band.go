package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Band is a solid span of colour laid over the strip. Position and Width
// are in pixels and may be fractional; partly covered pixels are blended in
// proportion.
type Band struct {
	Colour     colorful.Color
	Position   float64
	Width      float64
	Brightness float64
}

// Draw blends the band onto f.
func (b *Band) Draw(f *Frame) {
	if b.Width <= 0 || b.Brightness <= 0 {
		return
	}

	end := b.Position + b.Width
	first := int(math.Max(0, math.Floor(b.Position)))
	last := int(math.Min(float64(len(f.pixels)), math.Ceil(end)))
	for i := first; i < last; i++ {
		coverage := math.Min(float64(i+1), end) - math.Max(float64(i), b.Position)
		if coverage <= 0 {
			continue
		}
		f.pixels[i] = f.pixels[i].BlendRgb(b.Colour, math.Min(1, b.Brightness*coverage))
	}
}
