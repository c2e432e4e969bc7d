package stream

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// A Sink receives rendered frames.
type Sink interface {
	Send(f *Frame) error
}

// Streamer that streams RGB data frames to a sink at a fixed rate.
type Streamer struct {
	animation Animation
	sink      Sink
	frameRate float64
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(animation Animation, sink Sink, frameRate float64) *Streamer {
	s := new(Streamer)
	s.animation = animation
	s.sink = sink
	s.frameRate = frameRate
	return s
}

// SendFrame renders the frame for seconds and sends it to the sink.
func (s *Streamer) SendFrame(seconds float64) error {
	f := s.animation.CalculateFrame(seconds)
	if err := s.sink.Send(f); err != nil {
		return errors.Wrapf(err, "frame at %.3fs", seconds)
	}
	return nil
}

// Run causes the Streamer to send Frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) {
	period := time.Duration(float64(time.Second) / s.frameRate)
	publishTimer := time.NewTicker(period)
	defer publishTimer.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-publishTimer.C:
			if err := s.SendFrame(now.Sub(start).Seconds()); err != nil {
				logger.Warn("could not send frame", "err", err)
			}
		}
	}
}
