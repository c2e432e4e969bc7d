package stream

// An Animation implements a way to render a specific animation.
type Animation interface {
	// CalculateFrame renders the frame for a time in seconds since the
	// stream started.
	CalculateFrame(seconds float64) *Frame
}

// A Layer draws itself onto a frame, back to front.
type Layer interface {
	Draw(f *Frame)
}

// A Ticker is a Layer that moves on by itself. Shows tick such layers before
// drawing them.
type Ticker interface {
	Tick(seconds float64)
}
