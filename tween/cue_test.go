package tween

import (
	"testing"
)

func TestCueFiresOnceAtItsTime(t *testing.T) {
	tl := New()
	count := 0
	tl.AddCue(func() { count++ }, 5)

	for at := 0.0; at <= 4; at++ {
		tl.StepTo(at)
	}
	if count != 0 {
		t.Fatalf("cue fired %d times before its time", count)
	}

	tl.StepTo(5)
	if count != 1 {
		t.Fatalf("cue fired %d times at its time, want 1", count)
	}

	for at := 6.0; at <= 9; at++ {
		tl.StepTo(at)
	}
	if count != 1 {
		t.Errorf("cue fired %d times in total, want 1", count)
	}
	if tl.Len() != 0 {
		t.Errorf("completed cue left on the timeline")
	}
}

func TestCueFiresWhenSteppedPastItsTime(t *testing.T) {
	count := 0
	c := NewCue(func() { count++ }, 2)

	c.StepTo(10)
	c.StepTo(11)

	if count != 1 {
		t.Errorf("cue fired %d times, want 1", count)
	}
	if !c.IsComplete() {
		t.Error("cue not complete")
	}
}

func TestCueNilFn(t *testing.T) {
	c := NewCue(nil, 0)
	c.StepTo(0)

	if !c.IsComplete() {
		t.Error("cue with no function did not complete")
	}

	fired := false
	c.SetFn(func() { fired = true })
	c.Reset(true)
	c.StepTo(1)
	if !fired {
		t.Error("replacement function not called after reset")
	}
}

func TestCueDurationStaysZero(t *testing.T) {
	c := NewCue(func() {}, 3)
	c.SetDuration(5)

	if c.Duration() != 0 || c.EndTime() != 3 {
		t.Errorf("cue timing = %v+%v, want 3+0", c.StartTime(), c.Duration())
	}
}

func TestCueReverse(t *testing.T) {
	count := 0
	c := NewCue(func() { count++ }, 2).Delay(1)
	c.Reverse()

	clone := c.CloneReverse(10).(*Cue)
	if clone.StartTime() != 7 {
		t.Errorf("clone start = %v, want 7", clone.StartTime())
	}

	clone.StepTo(7)
	if count != 1 {
		t.Errorf("clone fired %d times, want 1", count)
	}

	back := clone.CloneReverse(10)
	if back.StartTime() != c.StartTime() {
		t.Errorf("round trip start = %v, want %v", back.StartTime(), c.StartTime())
	}
}

func TestLoopingCueFiresOnceWithoutLength(t *testing.T) {
	count := 0
	c := NewCue(func() { count++ }, 0)
	c.SetLoop(true)

	for at := 0.0; at < 5; at += 0.5 {
		c.StepTo(at)
	}

	if count != 1 {
		t.Errorf("cue fired %d times, want 1", count)
	}
	if c.IsComplete() {
		t.Error("looping cue completed")
	}
}
