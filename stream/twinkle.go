package stream

import (
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

// A Twinkle is a Layer that scintillates random pixels towards a colour.
// Each scintillation eases in and back out over Period seconds.
type Twinkle struct {
	Colour colorful.Color
	// Chance is the probability per pixel per second that a resting pixel
	// starts to scintillate.
	Chance float64
	Period float64

	rand    *rand.Rand
	gains   [numPixels]float64
	running [numPixels]bool
	tl      *tween.Timeline
	last    float64
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(colour colorful.Color, chance, period float64, seed int64) *Twinkle {
	t := new(Twinkle)
	t.Colour = colour
	t.Chance = chance
	t.Period = period
	t.rand = rand.New(rand.NewSource(seed))

	return t
}

// Tick starts new scintillations and moves the running ones on to seconds.
func (t *Twinkle) Tick(seconds float64) {
	if t.tl == nil {
		t.tl = tween.New(tween.WithStartTime(seconds))
		t.last = seconds
	}

	if dt := seconds - t.last; dt > 0 && t.Period > 0 {
		p := t.Chance * dt
		for i := range t.gains {
			if !t.running[i] && t.rand.Float64() < p {
				t.scintillate(i, seconds)
			}
		}
	}
	t.last = seconds

	t.tl.StepTo(seconds)
}

func (t *Twinkle) scintillate(i int, at float64) {
	t.running[i] = true

	half := t.Period / 2
	up := tween.NewTween(&t.gains[i], 0, 1, at, half, ease.InOutQuad, tween.Lerp[float64])
	t.tl.Add(up)
	t.tl.Add(up.CloneReverse(2 * up.EndTime()))
	t.tl.AddCue(func() { t.running[i] = false }, at+t.Period)
}

// Draw blends every scintillating pixel of f towards Colour.
func (t *Twinkle) Draw(f *Frame) {
	for i, g := range t.gains {
		if g > 0 {
			f.pixels[i] = f.pixels[i].BlendHcl(t.Colour, g).Clamped()
		}
	}
}
