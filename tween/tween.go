package tween

// A LerpFunc combines a start and end value given eased progress t.
// t is usually in [0,1] but overshooting ease curves take it outside.
type LerpFunc[T any] func(a, b T, t float64) T

// A Tween interpolates the value at target from a start value to an end value.
type Tween[T any] struct {
	Base

	value      *T
	startValue T
	endValue   T
	ease       EaseFunc
	lerp       LerpFunc[T]
	observers  []observer[T]
}

type observer[T any] struct {
	sub *Subscription
	fn  func(*T)
}

// NewTween creates a Tween writing into target. A nil ease selects DefaultEase.
func NewTween[T any](target *T, startValue, endValue T, startTime, duration float64,
	ease EaseFunc, lerp LerpFunc[T]) *Tween[T] {

	t := new(Tween[T])
	t.value = target
	t.startValue = startValue
	t.endValue = endValue
	t.ease = ease
	if t.ease == nil {
		t.ease = DefaultEase
	}
	t.lerp = lerp
	t.Base.init(t, t, target, startTime, duration)

	return t
}

// NewTweenFrom creates a Tween that starts from the current value at target.
func NewTweenFrom[T any](target *T, endValue T, startTime, duration float64,
	ease EaseFunc, lerp LerpFunc[T]) *Tween[T] {
	return NewTween(target, *target, endValue, startTime, duration, ease, lerp)
}

func (t *Tween[T]) start()                  {}
func (t *Tween[T]) loopStart()              {}
func (t *Tween[T]) complete()               {}
func (t *Tween[T]) updateAtLoopStart() bool { return false }
func (t *Tween[T]) wantsAbsoluteTime() bool { return false }

func (t *Tween[T]) update(relativeTime float64) {
	*t.value = t.lerp(t.startValue, t.endValue, t.ease(relativeTime))

	pruned := false
	for i := 0; i < len(t.observers); i++ {
		o := t.observers[i]
		if o.sub.disconnected {
			pruned = true
			continue
		}
		o.fn(t.value)
	}

	if pruned {
		t.pruneObservers()
	}
}

// Reverse swaps the start and end values.
func (t *Tween[T]) Reverse() {
	t.startValue, t.endValue = t.endValue, t.startValue
}

// CloneReverse returns a Tween running from the end value back to the start
// value, starting at span - EndTime(). Observers are not carried over.
func (t *Tween[T]) CloneReverse(span float64) Item {
	c := NewTween(t.value, t.endValue, t.startValue, span-t.EndTime(), t.duration, t.ease, t.lerp)
	t.copyFlags(&c.Base)
	return c
}

// AddUpdateObserver registers fn to be called with the target after every
// update. Observers run in registration order.
func (t *Tween[T]) AddUpdateObserver(fn func(*T)) *Subscription {
	s := new(Subscription)
	t.observers = append(t.observers, observer[T]{s, fn})
	return s
}

func (t *Tween[T]) pruneObservers() {
	kept := t.observers[:0]
	for _, o := range t.observers {
		if !o.sub.disconnected {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(t.observers); i++ {
		t.observers[i] = observer[T]{}
	}
	t.observers = kept
}

func (t *Tween[T]) StartValue() T         { return t.startValue }
func (t *Tween[T]) EndValue() T           { return t.endValue }
func (t *Tween[T]) SetStartValue(v T)     { t.startValue = v }
func (t *Tween[T]) SetEndValue(v T)       { t.endValue = v }
func (t *Tween[T]) TargetValue() *T       { return t.value }
func (t *Tween[T]) Ease() EaseFunc        { return t.ease }
func (t *Tween[T]) SetLerp(l LerpFunc[T]) { t.lerp = l }

// SetEase changes how the tween moves through time. Nil selects DefaultEase.
func (t *Tween[T]) SetEase(e EaseFunc) {
	if e == nil {
		e = DefaultEase
	}
	t.ease = e
}

// WithStartTime sets the start time and returns the tween for chaining.
func (t *Tween[T]) WithStartTime(startTime float64) *Tween[T] {
	t.SetStartTime(startTime)
	return t
}

// Delay pushes back the start time by amt.
func (t *Tween[T]) Delay(amt float64) *Tween[T] {
	t.SetStartTime(t.startTime + amt)
	return t
}

// WithDuration sets the duration and returns the tween for chaining.
func (t *Tween[T]) WithDuration(d float64) *Tween[T] {
	t.SetDuration(d)
	return t
}

// WithEase sets the ease function and returns the tween for chaining.
func (t *Tween[T]) WithEase(e EaseFunc) *Tween[T] {
	t.SetEase(e)
	return t
}

func (t *Tween[T]) Looping(loop bool) *Tween[T] {
	t.SetLoop(loop)
	return t
}

func (t *Tween[T]) Infinite(infinite bool) *Tween[T] {
	t.SetInfinite(infinite)
	return t
}

func (t *Tween[T]) AutoRemove(autoRemove bool) *Tween[T] {
	t.SetAutoRemove(autoRemove)
	return t
}

// Subscription is the handle returned for an update observer.
type Subscription struct {
	disconnected bool
}

// Disconnect stops further notifications. It is safe to call more than once.
func (s *Subscription) Disconnect() {
	s.disconnected = true
}

// Connected reports whether the observer is still registered.
func (s *Subscription) Connected() bool {
	return !s.disconnected
}
