package tween

import (
	"math"
	"reflect"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// recorder records every hook Base invokes.
type recorder struct {
	Base

	calls       []string
	updates     []float64
	absolute    bool
	atLoopStart bool
}

func newRecorder(startTime, duration float64) *recorder {
	return newRecorderWith(startTime, duration, false, false)
}

func newRecorderWith(startTime, duration float64, absolute, atLoopStart bool) *recorder {
	p := &recorder{absolute: absolute, atLoopStart: atLoopStart}
	p.Base.init(p, p, nil, startTime, duration)
	return p
}

func (p *recorder) start()     { p.calls = append(p.calls, "start") }
func (p *recorder) loopStart() { p.calls = append(p.calls, "loopStart") }
func (p *recorder) complete()  { p.calls = append(p.calls, "complete") }
func (p *recorder) update(t float64) {
	p.calls = append(p.calls, "update")
	p.updates = append(p.updates, t)
}
func (p *recorder) updateAtLoopStart() bool { return p.atLoopStart }
func (p *recorder) wantsAbsoluteTime() bool { return p.absolute }
func (p *recorder) Reverse()                {}
func (p *recorder) CloneReverse(span float64) Item {
	return newRecorder(span-p.EndTime(), p.duration)
}

func (p *recorder) count(call string) int {
	n := 0
	for _, c := range p.calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestStepBeforeStartStaysPending(t *testing.T) {
	p := newRecorder(5, 1)
	for _, at := range []float64{-3, 0, 2.5, 4.999} {
		p.StepTo(at)
	}

	if p.HasStarted() {
		t.Error("item started before its start time")
	}
	if len(p.calls) != 0 {
		t.Errorf("hooks called before start time: %v", p.calls)
	}
}

func TestFirstStepHookOrder(t *testing.T) {
	p := newRecorder(1, 2)
	p.StepTo(1.5)

	want := []string{"loopStart", "start", "update"}
	if !reflect.DeepEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
	if !approx(p.updates[0], 0.25) {
		t.Errorf("relative time = %v, want 0.25", p.updates[0])
	}
}

func TestCompletesAtBoundaryAfterFinalUpdate(t *testing.T) {
	p := newRecorder(0, 2)
	p.StepTo(1)
	if p.IsComplete() {
		t.Fatal("complete before end time")
	}

	p.StepTo(2)
	if !p.IsComplete() {
		t.Fatal("not complete at end time")
	}

	last := p.calls[len(p.calls)-2:]
	if !reflect.DeepEqual(last, []string{"update", "complete"}) {
		t.Errorf("final calls = %v, want update then complete", last)
	}
	if got := p.updates[len(p.updates)-1]; !approx(got, 1) {
		t.Errorf("final relative time = %v, want 1", got)
	}
}

func TestOvershootClampsRelativeTime(t *testing.T) {
	p := newRecorder(0, 2)
	p.StepTo(10)

	if !approx(p.updates[0], 1) {
		t.Errorf("relative time = %v, want 1", p.updates[0])
	}
	if !p.IsComplete() {
		t.Error("not complete after jumping past the end")
	}
}

func TestStepAfterCompleteIsNoop(t *testing.T) {
	p := newRecorder(0, 1)
	p.StepTo(1)
	n := len(p.calls)

	for i := 0; i < 3; i++ {
		p.StepTo(1)
		p.StepTo(5)
	}

	if len(p.calls) != n {
		t.Errorf("steps after completion made calls: %v", p.calls[n:])
	}
}

func TestLoopStartOncePerCycle(t *testing.T) {
	p := newRecorder(0, 1)
	p.SetLoop(true)

	for i := 1; i <= 9; i++ {
		p.StepTo(float64(i) / 10)
	}
	if got := p.count("loopStart"); got != 1 {
		t.Fatalf("loopStart in first cycle = %d, want 1", got)
	}
	if got := p.count("update"); got != 9 {
		t.Fatalf("updates in first cycle = %d, want 9", got)
	}

	p.StepTo(1.2)
	p.StepTo(1.5)
	if got := p.count("loopStart"); got != 2 {
		t.Fatalf("loopStart after second cycle = %d, want 2", got)
	}
	if got := p.updates[len(p.updates)-1]; !approx(got, 0.5) {
		t.Errorf("relative time in second cycle = %v, want 0.5", got)
	}

	p.StepTo(2)
	if got := p.count("loopStart"); got != 3 {
		t.Errorf("loopStart at cycle boundary = %d, want 3", got)
	}
	if p.IsComplete() {
		t.Error("looping item completed")
	}
}

func TestLoopJumpFiresSingleLoopStart(t *testing.T) {
	p := newRecorder(0, 1)
	p.SetLoop(true)

	p.StepTo(0.5)
	p.StepTo(3.5)

	if got := p.count("loopStart"); got != 2 {
		t.Errorf("loopStart = %d, want 2", got)
	}
	if got := p.count("start"); got != 1 {
		t.Errorf("start = %d, want 1", got)
	}
}

func TestAbsoluteTime(t *testing.T) {
	p := newRecorderWith(1, 4, true, false)
	p.StepTo(3)

	if !approx(p.updates[0], 2) {
		t.Errorf("absolute time = %v, want 2", p.updates[0])
	}
}

func TestUpdateAtLoopStart(t *testing.T) {
	p := newRecorderWith(0, 1, false, true)
	p.SetLoop(true)

	for _, at := range []float64{0, 0.3, 0.6, 1.1, 1.4} {
		p.StepTo(at)
	}

	if got := p.count("update"); got != 2 {
		t.Errorf("updates = %d, want one per cycle (2)", got)
	}
}

func TestUpdateAtLoopStartIgnoredWithoutLoop(t *testing.T) {
	p := newRecorderWith(0, 1, false, true)

	for _, at := range []float64{0, 0.3, 0.6, 1} {
		p.StepTo(at)
	}

	if got := p.count("update"); got != 4 {
		t.Errorf("updates = %d, want one per step (4)", got)
	}
}

func TestInfiniteNeverCompletes(t *testing.T) {
	p := newRecorder(0, 1)
	p.SetInfinite(true)

	p.StepTo(1)
	p.StepTo(7)

	if p.IsComplete() {
		t.Error("infinite item completed")
	}
	if got := p.count("update"); got != 2 {
		t.Errorf("updates = %d, want 2", got)
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	p := newRecorder(3, 0)
	p.StepTo(2)
	if p.HasStarted() {
		t.Fatal("started early")
	}

	p.StepTo(3)
	want := []string{"loopStart", "start", "update", "complete"}
	if !reflect.DeepEqual(p.calls, want) {
		t.Errorf("calls = %v, want %v", p.calls, want)
	}
	if p.updates[0] != 0 {
		t.Errorf("relative time = %v, want 0", p.updates[0])
	}
}

func TestSetDurationZeroUsesZeroInverse(t *testing.T) {
	p := newRecorder(0, 4)
	p.SetDuration(0)

	if p.invDuration != 0 {
		t.Errorf("invDuration = %v, want 0", p.invDuration)
	}

	p.SetDuration(4)
	if !approx(p.invDuration, 0.25) {
		t.Errorf("invDuration = %v, want 0.25", p.invDuration)
	}
}

func TestResetReplays(t *testing.T) {
	p := newRecorder(0, 1)
	p.StepTo(1)

	p.Reset(false)
	if p.IsComplete() || !p.HasStarted() {
		t.Fatalf("after Reset(false): complete=%v started=%v", p.IsComplete(), p.HasStarted())
	}
	p.StepTo(1)
	if got := p.count("start"); got != 1 {
		t.Errorf("start = %d after Reset(false), want 1", got)
	}

	p.Reset(true)
	if p.HasStarted() {
		t.Fatal("still started after Reset(true)")
	}
	p.StepTo(0.5)
	if got := p.count("start"); got != 2 {
		t.Errorf("start = %d after Reset(true), want 2", got)
	}
}

func TestRemoveSelfStopsStepping(t *testing.T) {
	p := newRecorder(0, 2)
	p.StepTo(0.5)
	p.RemoveSelf()
	p.RemoveSelf()

	n := len(p.calls)
	p.StepTo(1)
	p.StepTo(3)

	if len(p.calls) != n {
		t.Errorf("removed item made calls: %v", p.calls[n:])
	}
	if p.IsComplete() {
		t.Error("removed item completed")
	}
}

func TestBackwardTimeBeforeStart(t *testing.T) {
	p := newRecorder(2, 2)
	p.StepTo(3)
	p.StepTo(1)

	if got := p.count("update"); got != 1 {
		t.Errorf("updates = %d, want 1", got)
	}
	if p.IsComplete() {
		t.Error("completed while time ran backwards")
	}
}
