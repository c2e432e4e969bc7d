package tween

// A Cue calls a function once when the timeline reaches it, and again at the
// start of every cycle if it loops.
type Cue struct {
	Base

	fn func()
}

// NewCue creates a Cue that calls fn at atTime.
func NewCue(fn func(), atTime float64) *Cue {
	c := new(Cue)
	c.fn = fn
	c.Base.init(c, c, nil, atTime, 0)

	return c
}

func (c *Cue) start()                  {}
func (c *Cue) update(float64)          {}
func (c *Cue) complete()               {}
func (c *Cue) updateAtLoopStart() bool { return true }
func (c *Cue) wantsAbsoluteTime() bool { return false }

func (c *Cue) loopStart() {
	if c.fn != nil {
		c.fn()
	}
}

// Reverse is a no-op, a callback has no direction.
func (c *Cue) Reverse() {}

// CloneReverse returns a Cue calling the same function at span - StartTime().
func (c *Cue) CloneReverse(span float64) Item {
	clone := NewCue(c.fn, span-c.EndTime())
	c.copyFlags(&clone.Base)
	return clone
}

// SetDuration is ignored, a Cue has no length.
func (c *Cue) SetDuration(float64) {}

func (c *Cue) Fn() func()      { return c.fn }
func (c *Cue) SetFn(fn func()) { c.fn = fn }

// WithStartTime sets the time the cue fires and returns it for chaining.
func (c *Cue) WithStartTime(t float64) *Cue {
	c.SetStartTime(t)
	return c
}

// Delay pushes back the time the cue fires by amt.
func (c *Cue) Delay(amt float64) *Cue {
	c.SetStartTime(c.startTime + amt)
	return c
}

func (c *Cue) AutoRemove(autoRemove bool) *Cue {
	c.SetAutoRemove(autoRemove)
	return c
}
