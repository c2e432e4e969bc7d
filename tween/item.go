package tween

import (
	"math"
)

// An Item is anything that can be scheduled on a Timeline.
//
// The set of items is closed: every Item embeds Base, which carries the
// scheduling state machine, and supplies its behaviour through a small set of
// hooks. Tween and Cue are the two kinds provided.
type Item interface {
	// StepTo advances the item to the absolute time t.
	StepTo(t float64)
	// Reset clears completion, and also the started state if unsetStarted.
	Reset(unsetStarted bool)
	// RemoveSelf marks the item so its timeline drops it on the next pass.
	RemoveSelf()

	StartTime() float64
	EndTime() float64
	Duration() float64
	SetStartTime(t float64)
	SetDuration(d float64)

	HasStarted() bool
	IsComplete() bool
	IsMarkedForRemoval() bool
	IsLoop() bool
	SetLoop(loop bool)
	IsAutoRemove() bool
	SetAutoRemove(autoRemove bool)
	IsInfinite() bool
	SetInfinite(infinite bool)

	// Target returns the memory the item writes into, or nil.
	Target() any

	// Reverse reverses the item's content in place.
	Reverse()
	// CloneReverse returns a reversed copy of the item mirrored so that it
	// starts at span - EndTime().
	CloneReverse(span float64) Item

	base() *Base
}

// hooks are the lifecycle callbacks a concrete item provides to Base.
type hooks interface {
	start()
	loopStart()
	update(t float64)
	complete()
	// updateAtLoopStart reports whether update only matters when a loop
	// cycle begins.
	updateAtLoopStart() bool
	// wantsAbsoluteTime selects [0,duration] rather than [0,1] for update.
	wantsAbsoluteTime() bool
}

// owner is notified when an item's timing changes.
type owner interface {
	itemTimeChanged(item Item)
}

// Base holds the timing and lifecycle state shared by every Item.
type Base struct {
	owner owner
	self  Item
	hooks hooks

	target      any
	startTime   float64
	duration    float64
	invDuration float64

	hasStarted       bool
	complete         bool
	markedForRemoval bool
	autoRemove       bool
	infinite         bool
	loop             bool
	useAbsoluteTime  bool

	lastLoopIteration int
}

func (b *Base) init(self Item, h hooks, target any, startTime, duration float64) {
	b.self = self
	b.hooks = h
	b.target = target
	b.startTime = startTime
	b.duration = duration
	b.invDuration = inverse(duration)
	b.autoRemove = true
	b.useAbsoluteTime = h.wantsAbsoluteTime()
	b.lastLoopIteration = -1
}

// inverse returns 1/d, or 0 for a zero duration.
func inverse(d float64) float64 {
	if d == 0 {
		return 0
	}
	return 1 / d
}

func (b *Base) base() *Base {
	return b
}

// StepTo advances the item to newTime, firing its lifecycle hooks.
func (b *Base) StepTo(newTime float64) {
	if b.complete || b.markedForRemoval {
		return
	}

	absTime := newTime - b.startTime

	if newTime >= b.startTime {
		// A zero duration has a zero inverse, so such items see relTime 0.
		var relTime float64
		if b.loop {
			relTime = math.Mod(absTime*b.invDuration, 1)
		} else {
			relTime = math.Min(absTime*b.invDuration, 1)
		}

		justStarted := false
		if !b.hasStarted {
			b.hasStarted = true
			justStarted = true
			if b.loop {
				b.lastLoopIteration = loopIteration(absTime, b.invDuration)
			}
			b.hooks.loopStart()
			b.hooks.start()
		}

		// A hook may have removed the item.
		if b.markedForRemoval {
			return
		}

		t := relTime
		if b.useAbsoluteTime {
			t = absTime
		}

		if b.loop {
			iteration := loopIteration(absTime, b.invDuration)
			if iteration != b.lastLoopIteration {
				b.lastLoopIteration = iteration
				b.hooks.loopStart()
				b.hooks.update(t)
			} else if justStarted || !b.hooks.updateAtLoopStart() {
				b.hooks.update(t)
			}
		} else {
			b.hooks.update(t)
		}
	}

	if newTime >= b.startTime+b.duration && !b.loop && !b.infinite {
		b.complete = true
		b.hooks.complete()
	}
}

func loopIteration(absTime, invDuration float64) int {
	return int(math.Floor(absTime * invDuration))
}

// Reset marks the item as not complete. When unsetStarted is true the item
// will also run its start hooks again on the next step.
func (b *Base) Reset(unsetStarted bool) {
	if unsetStarted {
		b.hasStarted = false
		b.lastLoopIteration = -1
	}
	b.complete = false
}

// RemoveSelf marks the item for removal. Calling it again has no effect.
func (b *Base) RemoveSelf() {
	b.markedForRemoval = true
}

func (b *Base) StartTime() float64 { return b.startTime }
func (b *Base) EndTime() float64   { return b.startTime + b.duration }
func (b *Base) Duration() float64  { return b.duration }

// SetStartTime moves the item and notifies its timeline.
func (b *Base) SetStartTime(t float64) {
	b.startTime = t
	b.notify()
}

// SetDuration changes the item's length and notifies its timeline.
func (b *Base) SetDuration(d float64) {
	b.duration = d
	b.invDuration = inverse(d)
	b.notify()
}

func (b *Base) notify() {
	if b.owner != nil {
		b.owner.itemTimeChanged(b.self)
	}
}

func (b *Base) HasStarted() bool         { return b.hasStarted }
func (b *Base) IsComplete() bool         { return b.complete }
func (b *Base) IsMarkedForRemoval() bool { return b.markedForRemoval }

func (b *Base) IsLoop() bool      { return b.loop }
func (b *Base) SetLoop(loop bool) { b.loop = loop }

// IsAutoRemove reports whether the timeline drops the item once complete.
func (b *Base) IsAutoRemove() bool            { return b.autoRemove }
func (b *Base) SetAutoRemove(autoRemove bool) { b.autoRemove = autoRemove }

// IsInfinite reports whether the item keeps updating past its end time.
func (b *Base) IsInfinite() bool          { return b.infinite }
func (b *Base) SetInfinite(infinite bool) { b.infinite = infinite }

func (b *Base) Target() any { return b.target }

// copyFlags carries the scheduling flags over to a cloned item.
func (b *Base) copyFlags(to *Base) {
	to.loop = b.loop
	to.infinite = b.infinite
	to.autoRemove = b.autoRemove
}
