package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/matt-g-everett/ledtween/tween"
)

// ShowOptions wires a Show to the host.
type ShowOptions struct {
	Chimer Chimer
	Logger log.Logger
}

// Show is an Animation driven by a Script. Each step of the script becomes a
// tween on the show's timeline.
type Show struct {
	script     Script
	background colorful.Color
	steps      []compiledStep

	layers   []Layer
	bands    map[string]*Band
	trails   map[string]*Trail
	twinkles map[string]*Twinkle

	tl      *tween.Timeline
	started bool

	chimer Chimer
	logger log.Logger
}

// BuildShow validates a script and prepares it to run.
func BuildShow(script Script, opts ShowOptions) (*Show, error) {
	_, steps, err := script.validate()
	if err != nil {
		return nil, errors.Wrapf(err, "show %q", script.Name)
	}

	s := new(Show)
	s.script = script
	s.background, _ = parseColour(script.Background, "#000000")
	s.steps = steps
	s.chimer = opts.Chimer
	s.logger = opts.Logger
	if s.logger == nil {
		s.logger = logger
	}

	return s, nil
}

// Name returns the script name.
func (s *Show) Name() string {
	return s.script.Name
}

// Timeline returns the timeline of the current run.
func (s *Show) Timeline() *tween.Timeline {
	return s.tl
}

// Start puts every layer back to its initial state and schedules the script
// from time at.
func (s *Show) Start(at float64) {
	s.resetLayers()
	s.tl = tween.New(tween.WithStartTime(at), tween.WithLogger(s.logger))
	s.schedule(at)
	s.started = true

	s.logger.Info("show started", "name", s.script.Name, "at", at, "until", s.tl.EndTime())
}

func (s *Show) resetLayers() {
	s.layers = s.layers[:0]
	s.bands = make(map[string]*Band)
	s.trails = make(map[string]*Trail)
	s.twinkles = make(map[string]*Twinkle)

	for _, spec := range s.script.Layers {
		switch spec.Kind {
		case kindTrail:
			t := spec.newTrail()
			s.trails[spec.Name] = t
			s.layers = append(s.layers, t)
		case kindTwinkle:
			t, _ := spec.newTwinkle()
			s.twinkles[spec.Name] = t
			s.layers = append(s.layers, t)
		default:
			b, _ := spec.newBand()
			s.bands[spec.Name] = b
			s.layers = append(s.layers, b)
		}
	}
}

func (s *Show) schedule(base float64) {
	for _, st := range s.steps {
		s.placeStep(base, st)
	}

	for _, cue := range s.script.Cues {
		s.tl.AddCue(s.cueAction(cue), base+cue.At)
	}

	if s.script.Palindrome {
		span := 2 * s.tl.EndTime()
		for _, item := range s.tl.Items() {
			if item.IsLoop() || item.IsInfinite() {
				continue
			}
			s.tl.Add(item.CloneReverse(span))
		}
	}
}

func (s *Show) placeStep(base float64, st compiledStep) {
	var item tween.Item
	if b, ok := s.bands[st.Layer]; ok {
		switch st.Property {
		case "position":
			item = place(s.tl, base, st, &b.Position, st.To, tween.Lerp[float64])
		case "width":
			item = place(s.tl, base, st, &b.Width, st.To, tween.Lerp[float64])
		case "brightness":
			item = place(s.tl, base, st, &b.Brightness, st.To, tween.Lerp[float64])
		case "colour":
			item = place(s.tl, base, st, &b.Colour, st.colour, tween.LerpHcl)
		}
	} else if t, ok := s.trails[st.Layer]; ok {
		switch st.Property {
		case "offset":
			item = place(s.tl, base, st, &t.Offset, st.To, tween.Lerp[float64])
		case "length":
			item = place(s.tl, base, st, &t.Length, st.To, tween.Lerp[float64])
		}
	} else if tw, ok := s.twinkles[st.Layer]; ok {
		switch st.Property {
		case "colour":
			item = place(s.tl, base, st, &tw.Colour, st.colour, tween.LerpHcl)
		case "chance":
			item = place(s.tl, base, st, &tw.Chance, st.To, tween.Lerp[float64])
		}
	}

	if item == nil {
		return
	}
	if st.Delay != 0 {
		item.SetStartTime(item.StartTime() + st.Delay)
	}
	item.SetLoop(st.Loop)
	item.SetInfinite(st.Infinite)
}

// place queues a tween for one step. Appended steps follow everything already
// on the timeline; steps with a fixed time start from the end value of the
// last tween on the same target.
func place[T any](tl *tween.Timeline, base float64, st compiledStep, target *T, to T, lerp tween.LerpFunc[T]) tween.Item {
	if st.Mode == modeAt {
		from := *target
		if prev, ok := tl.Find(target).(*tween.Tween[T]); ok {
			from = prev.EndValue()
		}
		return tl.Add(tween.NewTween(target, from, to, base+st.At, st.Duration, st.ease, lerp))
	}
	return tween.AppendWith(tl, target, to, st.Duration, st.ease, lerp)
}

func (s *Show) cueAction(cue CueSpec) func() {
	switch cue.Action {
	case actionChime:
		freq := cue.Frequency
		if freq == 0 {
			freq = defaultChimeFrequency
		}
		return func() {
			if s.chimer == nil {
				return
			}
			if err := s.chimer.Chime(freq); err != nil {
				s.logger.Warn("chime failed", "show", s.script.Name, "err", err)
			}
		}
	default:
		return func() {
			s.logger.Info(cue.Message, "show", s.script.Name, "t", s.tl.CurrentTime())
		}
	}
}

// CalculateFrame advances the show to seconds and draws it.
func (s *Show) CalculateFrame(seconds float64) *Frame {
	if !s.started {
		s.Start(seconds)
	}

	s.tl.StepTo(seconds)
	if s.script.Repeat && s.tl.Len() == 0 && len(s.steps)+len(s.script.Cues) > 0 {
		s.Start(seconds)
		s.tl.StepTo(seconds)
	}

	f := NewFrame()
	f.Fill(s.background)
	for _, l := range s.layers {
		if t, ok := l.(Ticker); ok {
			t.Tick(seconds)
		}
		l.Draw(f)
	}

	return f
}
