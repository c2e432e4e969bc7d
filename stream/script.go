package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/matt-g-everett/ledtween/tween"
)

// Script describes a show: the layers on the strip and how their properties
// move over time.
type Script struct {
	Name       string      `yaml:"name"`
	Background string      `yaml:"background"`
	Repeat     bool        `yaml:"repeat"`
	Palindrome bool        `yaml:"palindrome"`
	Layers     []LayerSpec `yaml:"layers"`
	Steps      []StepSpec  `yaml:"steps"`
	Cues       []CueSpec   `yaml:"cues"`
}

const (
	kindBand    = "band"
	kindTrail   = "trail"
	kindTwinkle = "twinkle"
)

// LayerSpec is the initial state of a layer.
type LayerSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// band
	Colour     string   `yaml:"colour"`
	Position   float64  `yaml:"position"`
	Width      float64  `yaml:"width"`
	Brightness *float64 `yaml:"brightness"`

	// trail
	Gradient   GradientTable `yaml:"gradient"`
	Length     float64       `yaml:"length"`
	Offset     float64       `yaml:"offset"`
	Saturation *float64      `yaml:"saturation"`
	Luminance  *float64      `yaml:"luminance"`

	// twinkle, which also takes a colour
	Chance float64 `yaml:"chance"`
	Period float64 `yaml:"period"`
	Seed   int64   `yaml:"seed"`
}

const (
	modeAppend = "append"
	modeAt     = "at"
)

// StepSpec tweens one property of a layer.
type StepSpec struct {
	Layer    string  `yaml:"layer"`
	Property string  `yaml:"property"`
	To       float64 `yaml:"to"`
	Colour   string  `yaml:"colour"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
	Mode     string  `yaml:"mode"`
	At       float64 `yaml:"at"`
	Delay    float64 `yaml:"delay"`
	Loop     bool    `yaml:"loop"`
	Infinite bool    `yaml:"infinite"`
}

const (
	actionLog   = "log"
	actionChime = "chime"
)

// CueSpec runs an action at a point in the show.
type CueSpec struct {
	At        float64 `yaml:"at"`
	Action    string  `yaml:"action"`
	Message   string  `yaml:"message"`
	Frequency float64 `yaml:"frequency"`
}

const defaultChimeFrequency = 880.0

// compiledStep is a validated step, ready to be placed on a timeline.
type compiledStep struct {
	StepSpec
	ease   tween.EaseFunc
	colour colorful.Color
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func parseColour(s, def string) (colorful.Color, error) {
	if s == "" {
		s = def
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return c, errors.Wrapf(err, "bad colour %q", s)
	}
	return c, nil
}

// newBand builds the band described by spec.
func (spec LayerSpec) newBand() (*Band, error) {
	c, err := parseColour(spec.Colour, "#ffffff")
	if err != nil {
		return nil, err
	}
	return &Band{
		Colour:     c,
		Position:   spec.Position,
		Width:      spec.Width,
		Brightness: orDefault(spec.Brightness, 1),
	}, nil
}

// newTrail builds the trail described by spec.
func (spec LayerSpec) newTrail() *Trail {
	g := spec.Gradient
	if len(g) == 0 {
		g = RainbowGradient
	}
	return &Trail{
		Gradient:   g,
		Length:     spec.Length,
		Offset:     spec.Offset,
		Saturation: orDefault(spec.Saturation, 1),
		Luminance:  orDefault(spec.Luminance, 0.05),
	}
}

// newTwinkle builds the twinkle described by spec.
func (spec LayerSpec) newTwinkle() (*Twinkle, error) {
	c, err := parseColour(spec.Colour, "#808080")
	if err != nil {
		return nil, err
	}
	return NewTwinkle(c, spec.Chance, spec.Period, spec.Seed), nil
}

var properties = map[string][]string{
	kindBand:    {"position", "width", "brightness", "colour"},
	kindTrail:   {"offset", "length"},
	kindTwinkle: {"colour", "chance"},
}

func hasProperty(kind, property string) bool {
	for _, p := range properties[kind] {
		if p == property {
			return true
		}
	}
	return false
}

// validate checks the script and compiles its steps.
func (s *Script) validate() (kinds map[string]string, steps []compiledStep, err error) {
	kinds = make(map[string]string, len(s.Layers))
	for i, l := range s.Layers {
		if l.Name == "" {
			return nil, nil, errors.Errorf("layer %d has no name", i)
		}
		if _, dup := kinds[l.Name]; dup {
			return nil, nil, errors.Errorf("layer %q defined twice", l.Name)
		}

		switch l.Kind {
		case "", kindBand:
			if _, err := l.newBand(); err != nil {
				return nil, nil, errors.Wrapf(err, "layer %q", l.Name)
			}
			kinds[l.Name] = kindBand
		case kindTrail:
			if l.Length <= 0 {
				return nil, nil, errors.Errorf("trail %q needs a positive length", l.Name)
			}
			kinds[l.Name] = kindTrail
		case kindTwinkle:
			if _, err := l.newTwinkle(); err != nil {
				return nil, nil, errors.Wrapf(err, "layer %q", l.Name)
			}
			if l.Period <= 0 || l.Chance < 0 {
				return nil, nil, errors.Errorf("twinkle %q needs a positive period and a chance of at least 0", l.Name)
			}
			kinds[l.Name] = kindTwinkle
		default:
			return nil, nil, errors.Errorf("layer %q has unknown kind %q", l.Name, l.Kind)
		}
	}

	for i, st := range s.Steps {
		kind, ok := kinds[st.Layer]
		if !ok {
			return nil, nil, errors.Errorf("step %d targets unknown layer %q", i, st.Layer)
		}
		if !hasProperty(kind, st.Property) {
			return nil, nil, errors.Errorf("step %d: %s %q has no property %q", i, kind, st.Layer, st.Property)
		}
		if st.Duration < 0 {
			return nil, nil, errors.Errorf("step %d has a negative duration", i)
		}

		switch st.Mode {
		case "":
			st.Mode = modeAppend
		case modeAppend, modeAt:
		default:
			return nil, nil, errors.Errorf("step %d has unknown mode %q", i, st.Mode)
		}

		e, err := tween.ParseEase(st.Ease)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "step %d", i)
		}

		c := compiledStep{StepSpec: st, ease: e}
		if st.Property == "colour" {
			if c.colour, err = parseColour(st.Colour, ""); err != nil {
				return nil, nil, errors.Wrapf(err, "step %d", i)
			}
		}
		steps = append(steps, c)
	}

	for i, cue := range s.Cues {
		switch cue.Action {
		case actionLog:
		case actionChime:
			if cue.Frequency < 0 {
				return nil, nil, errors.Errorf("cue %d has a negative frequency", i)
			}
		default:
			return nil, nil, errors.Errorf("cue %d has unknown action %q", i, cue.Action)
		}
	}

	if _, err := parseColour(s.Background, "#000000"); err != nil {
		return nil, nil, errors.Wrap(err, "background")
	}

	return kinds, steps, nil
}
