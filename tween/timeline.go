// Package tween advances eased value interpolations and timed callbacks to
// an absolute time supplied by the host once per frame.
package tween

import (
	"math"

	log "github.com/mgutz/logxi/v1"
)

var logger = log.New("tween")

// SetLogLevel sets the level of the package logger, which timelines use
// unless given WithLogger.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// Timeline holds a set of items and advances them together.
//
// A Timeline is not safe for concurrent use. The host steps it from the same
// goroutine that owns the tweened values.
type Timeline struct {
	items       []Item
	currentTime float64
	startTime   float64
	endTime     float64
	boundsDirty bool
	stepping    bool

	defaultAutoRemove bool
	logger            log.Logger
}

// Option configures a Timeline.
type Option func(*Timeline)

// WithLogger replaces the package logger.
func WithLogger(l log.Logger) Option {
	return func(tl *Timeline) {
		tl.logger = l
	}
}

// WithDefaultAutoRemove sets the auto-remove flag given to items created
// through the timeline. It defaults to true.
func WithDefaultAutoRemove(autoRemove bool) Option {
	return func(tl *Timeline) {
		tl.defaultAutoRemove = autoRemove
	}
}

// WithStartTime sets the initial current time.
func WithStartTime(t float64) Option {
	return func(tl *Timeline) {
		tl.currentTime = t
	}
}

// New creates an empty Timeline.
func New(opts ...Option) *Timeline {
	tl := new(Timeline)
	tl.defaultAutoRemove = true
	tl.logger = logger
	for _, opt := range opts {
		opt(tl)
	}
	return tl
}

// StepTo moves every item to the absolute time t, then drops the items that
// were removed or have completed with auto-remove set. Items added while
// stepping are first stepped on the following call.
func (tl *Timeline) StepTo(t float64) {
	tl.currentTime = t

	tl.stepping = true
	n := len(tl.items)
	for i := 0; i < n; i++ {
		tl.items[i].StepTo(t)
	}
	tl.stepping = false

	tl.Compact()
}

// Step advances the timeline by dt from the current time.
func (tl *Timeline) Step(dt float64) {
	tl.StepTo(tl.currentTime + dt)
}

// CurrentTime returns the time given to the last StepTo.
func (tl *Timeline) CurrentTime() float64 {
	return tl.currentTime
}

// Add inserts an item and returns it. An item that already belongs to a
// different timeline is left where it is.
func (tl *Timeline) Add(item Item) Item {
	b := item.base()
	if b.owner == tl {
		return item
	}
	if b.owner != nil {
		tl.logger.Warn("item already belongs to another timeline", "start", b.startTime)
		return item
	}

	b.owner = tl
	tl.items = append(tl.items, item)
	tl.extendBounds(item)

	return item
}

// AddCue schedules fn to be called once the timeline reaches atTime.
func (tl *Timeline) AddCue(fn func(), atTime float64) *Cue {
	c := NewCue(fn, atTime)
	c.SetAutoRemove(tl.defaultAutoRemove)
	tl.Add(c)
	return c
}

// Apply tweens the value at target from its current value to endValue,
// starting now. Any items already writing to target are removed first.
func Apply[N Number](tl *Timeline, target *N, endValue N, duration float64, ease EaseFunc) *Tween[N] {
	return ApplyWith(tl, target, endValue, duration, ease, Lerp[N])
}

// ApplyWith is Apply with an explicit interpolation law.
func ApplyWith[T any](tl *Timeline, target *T, endValue T, duration float64, ease EaseFunc, lerp LerpFunc[T]) *Tween[T] {
	tl.RemoveTarget(target)

	t := NewTweenFrom(target, endValue, tl.currentTime, duration, ease, lerp)
	t.SetAutoRemove(tl.defaultAutoRemove)
	tl.Add(t)

	return t
}

// Append tweens the value at target to endValue, starting when everything
// already on the timeline has finished. If another tween on the same target
// is queued, the new tween starts from that tween's end value.
func Append[N Number](tl *Timeline, target *N, endValue N, duration float64, ease EaseFunc) *Tween[N] {
	return AppendWith(tl, target, endValue, duration, ease, Lerp[N])
}

// AppendWith is Append with an explicit interpolation law.
func AppendWith[T any](tl *Timeline, target *T, endValue T, duration float64, ease EaseFunc, lerp LerpFunc[T]) *Tween[T] {
	startValue := *target
	if prev, ok := tl.Find(target).(*Tween[T]); ok {
		startValue = prev.EndValue()
	}

	t := NewTween(target, startValue, endValue, tl.AppendTime(), duration, ease, lerp)
	t.SetAutoRemove(tl.defaultAutoRemove)
	tl.Add(t)

	return t
}

// AppendTime is the start time given to appended items: the end of the
// timeline, or the current time if that is later.
func (tl *Timeline) AppendTime() float64 {
	return math.Max(tl.currentTime, tl.EndTime())
}

// Remove marks item for removal. Removing an item twice, or one that is not
// on this timeline, does nothing.
func (tl *Timeline) Remove(item Item) {
	if item == nil || item.base().owner != tl {
		return
	}
	item.RemoveSelf()
}

// RemoveTarget marks every item writing to target for removal.
func (tl *Timeline) RemoveTarget(target any) {
	if target == nil {
		return
	}
	for _, item := range tl.items {
		if item.Target() == target {
			item.RemoveSelf()
		}
	}
}

// Clear removes every item.
func (tl *Timeline) Clear() {
	for _, item := range tl.items {
		item.RemoveSelf()
	}
	tl.Compact()
}

// Compact drops removed items and completed items that auto-remove. It does
// nothing while the timeline is stepping.
func (tl *Timeline) Compact() {
	if tl.stepping {
		return
	}

	kept := tl.items[:0]
	for _, item := range tl.items {
		if item.IsMarkedForRemoval() || (item.IsComplete() && item.IsAutoRemove()) {
			item.base().owner = nil
			continue
		}
		kept = append(kept, item)
	}

	removed := len(tl.items) - len(kept)
	for i := len(kept); i < len(tl.items); i++ {
		tl.items[i] = nil
	}
	tl.items = kept

	if removed > 0 {
		tl.boundsDirty = true
		if tl.logger.IsDebug() {
			tl.logger.Debug("reaped items", "removed", removed, "remaining", len(kept))
		}
	}
}

// Find returns the most recently added live item writing to target, or nil.
func (tl *Timeline) Find(target any) Item {
	for i := len(tl.items) - 1; i >= 0; i-- {
		item := tl.items[i]
		if item.Target() == target && !item.IsMarkedForRemoval() {
			return item
		}
	}
	return nil
}

// Items returns the items in insertion order.
func (tl *Timeline) Items() []Item {
	out := make([]Item, len(tl.items))
	copy(out, tl.items)
	return out
}

// Len returns the number of items, including those awaiting removal.
func (tl *Timeline) Len() int {
	return len(tl.items)
}

// StartTime is the earliest item start, or the current time when empty.
func (tl *Timeline) StartTime() float64 {
	if len(tl.items) == 0 {
		return tl.currentTime
	}
	tl.refreshBounds()
	return tl.startTime
}

// EndTime is the latest item end, or the current time when empty.
func (tl *Timeline) EndTime() float64 {
	if len(tl.items) == 0 {
		return tl.currentTime
	}
	tl.refreshBounds()
	return tl.endTime
}

func (tl *Timeline) Duration() float64 {
	return tl.EndTime() - tl.StartTime()
}

// Reverse reverses every item in place and mirrors its timing within
// [StartTime, EndTime].
func (tl *Timeline) Reverse() {
	span := tl.StartTime() + tl.EndTime()
	for _, item := range tl.items {
		item.Reverse()
		item.SetStartTime(span - item.EndTime())
	}
}

// CloneReverse builds a new timeline holding reversed copies of every live
// item, mirrored within [StartTime, EndTime].
func (tl *Timeline) CloneReverse() *Timeline {
	out := New(WithLogger(tl.logger), WithDefaultAutoRemove(tl.defaultAutoRemove), WithStartTime(tl.currentTime))

	span := tl.StartTime() + tl.EndTime()
	for _, item := range tl.items {
		if item.IsMarkedForRemoval() {
			continue
		}
		out.Add(item.CloneReverse(span))
	}

	return out
}

// Reset resets every item. See Item.Reset.
func (tl *Timeline) Reset(unsetStarted bool) {
	for _, item := range tl.items {
		item.Reset(unsetStarted)
	}
}

func (tl *Timeline) itemTimeChanged(Item) {
	tl.boundsDirty = true
}

func (tl *Timeline) extendBounds(item Item) {
	if tl.boundsDirty {
		return
	}
	if len(tl.items) == 1 {
		tl.startTime = item.StartTime()
		tl.endTime = item.EndTime()
		return
	}
	tl.startTime = math.Min(tl.startTime, item.StartTime())
	tl.endTime = math.Max(tl.endTime, item.EndTime())
}

func (tl *Timeline) refreshBounds() {
	if !tl.boundsDirty {
		return
	}
	tl.boundsDirty = false

	tl.startTime = math.Inf(1)
	tl.endTime = math.Inf(-1)
	for _, item := range tl.items {
		tl.startTime = math.Min(tl.startTime, item.StartTime())
		tl.endTime = math.Max(tl.endTime, item.EndTime())
	}
}
