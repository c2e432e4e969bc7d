package stream

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Chimer plays a short tone.
type Chimer interface {
	Chime(freq float64) error
}

const chimeSampleRate = beep.SampleRate(44100)

// SpeakerChimer plays chimes on the default audio device.
type SpeakerChimer struct {
	length time.Duration
	volume float64
}

// NewSpeakerChimer opens the audio device. Volume is linear, 1 being full
// scale.
func NewSpeakerChimer(length time.Duration, volume float64) (*SpeakerChimer, error) {
	err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	if err != nil {
		return nil, errors.Wrap(err, "could not open audio device")
	}

	c := new(SpeakerChimer)
	c.length = length
	c.volume = volume
	return c, nil
}

// Chime queues a sine tone at freq Hz. It does not wait for the tone to end.
func (c *SpeakerChimer) Chime(freq float64) error {
	sine, err := generators.SineTone(chimeSampleRate, freq)
	if err != nil {
		return errors.Wrapf(err, "bad chime frequency %v", freq)
	}

	speaker.Play(withVolume(beep.Take(chimeSampleRate.N(c.length), sine), c.volume))
	return nil
}

// Close stops playback and releases the device.
func (c *SpeakerChimer) Close() {
	speaker.Clear()
	speaker.Close()
}

// math.Log2(0) is -Inf, so zero volume is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
