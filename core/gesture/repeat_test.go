package gesture

import (
	"testing"
	"time"
)

func newCountingRepeater() (*FrameScheduler, *Repeater, *int) {
	sched := NewFrameScheduler()
	fired := 0
	r := NewRepeater(sched, DefaultInitialDelay, DefaultFastInterval, func() { fired++ })
	return sched, r, &fired
}

func expectedFirings(held time.Duration) int {
	extra := (held - DefaultInitialDelay) / DefaultFastInterval
	if extra < 0 {
		extra = 0
	}
	return 1 + int(extra)
}

func TestRepeaterFiresOnceOnTap(t *testing.T) {
	sched, r, fired := newCountingRepeater()
	r.PressStart()
	if *fired != 1 {
		t.Fatalf("press should fire immediately, got %d", *fired)
	}
	sched.Advance(100 * time.Millisecond)
	r.PressEnd()
	sched.Advance(5 * time.Second)
	if *fired != 1 {
		t.Fatalf("release before delay should leave one firing, got %d", *fired)
	}
	if sched.Pending() != 0 {
		t.Fatalf("timers should be cleared on release, %d pending", sched.Pending())
	}
}

func TestRepeaterHoldFiringCount(t *testing.T) {
	holds := []time.Duration{
		DefaultInitialDelay,
		DefaultInitialDelay + DefaultFastInterval,
		DefaultInitialDelay + 10*DefaultFastInterval,
		2 * time.Second,
	}
	for _, hold := range holds {
		sched, r, fired := newCountingRepeater()
		r.PressStart()
		sched.Advance(hold)
		r.PressEnd()
		sched.Advance(5 * time.Second)
		if want := expectedFirings(hold); *fired != want {
			t.Fatalf("held %v: fired %d, want %d", hold, *fired, want)
		}
	}
}

func TestRepeaterStopsImmediatelyOnRelease(t *testing.T) {
	sched, r, fired := newCountingRepeater()
	r.PressStart()
	sched.Advance(DefaultInitialDelay + 3*DefaultFastInterval)
	before := *fired
	r.PressEnd()
	sched.Advance(5 * time.Second)
	if *fired != before {
		t.Fatalf("firings after release: %d -> %d", before, *fired)
	}
	if sched.Pending() != 0 {
		t.Fatalf("timers should be cleared, %d pending", sched.Pending())
	}
}

func TestRepeaterNewPressCancelsStaleTimers(t *testing.T) {
	sched, r, fired := newCountingRepeater()
	r.PressStart()
	sched.Advance(DefaultInitialDelay / 2)
	// Second press-start before the first delay elapses supersedes it.
	r.PressStart()
	if *fired != 2 {
		t.Fatalf("each press fires once, got %d", *fired)
	}
	sched.Advance(DefaultInitialDelay - time.Millisecond)
	if *fired != 2 {
		t.Fatalf("stale delay timer should not open the stream, got %d", *fired)
	}
	sched.Advance(2 * time.Millisecond)
	if *fired != 2 {
		t.Fatalf("stream opens at delay, first tick comes an interval later, got %d", *fired)
	}
	sched.Advance(DefaultFastInterval)
	if *fired != 3 {
		t.Fatalf("first repeat tick should land, got %d", *fired)
	}
	r.PressEnd()
}

func TestRepeaterOnAccelerateFiresOncePerHold(t *testing.T) {
	sched, r, _ := newCountingRepeater()
	accels := 0
	r.OnAccelerate(func() { accels++ })
	r.PressStart()
	sched.Advance(DefaultInitialDelay + 20*DefaultFastInterval)
	r.PressEnd()
	if accels != 1 {
		t.Fatalf("accelerate hook fired %d times, want 1", accels)
	}
	r.PressStart()
	sched.Advance(DefaultInitialDelay)
	r.PressEnd()
	if accels != 2 {
		t.Fatalf("accelerate hook fired %d times across two holds, want 2", accels)
	}
}

func TestRepeaterCloseClearsTimers(t *testing.T) {
	sched, r, fired := newCountingRepeater()
	r.PressStart()
	r.Close()
	sched.Advance(5 * time.Second)
	if *fired != 1 {
		t.Fatalf("no firing may outlive teardown, got %d", *fired)
	}
	if sched.Pending() != 0 {
		t.Fatalf("teardown should clear timers, %d pending", sched.Pending())
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	sched := NewFrameScheduler()
	fired := false
	tok := sched.Schedule(50*time.Millisecond, func() { fired = true })
	sched.Cancel(tok)
	sched.Advance(time.Second)
	if fired {
		t.Fatalf("cancelled callback must not fire")
	}
	// Cancelling again is harmless.
	sched.Cancel(tok)
}

func TestFrameSchedulerFiresChainsAtExactCadence(t *testing.T) {
	sched := NewFrameScheduler()
	var fireTimes []time.Duration
	elapsed := time.Duration(0)
	var tick func()
	tick = func() {
		elapsed += 10 * time.Millisecond
		fireTimes = append(fireTimes, elapsed)
		if len(fireTimes) < 5 {
			sched.Schedule(10*time.Millisecond, tick)
		}
	}
	sched.Schedule(10*time.Millisecond, tick)
	// One big advance spanning all five deadlines.
	sched.Advance(time.Second)
	if len(fireTimes) != 5 {
		t.Fatalf("fired %d times, want 5", len(fireTimes))
	}
	for i, at := range fireTimes {
		want := time.Duration(i+1) * 10 * time.Millisecond
		if at != want {
			t.Fatalf("tick %d at %v, want %v", i, at, want)
		}
	}
}
