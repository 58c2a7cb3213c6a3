package score

import "testing"

func TestMaxScoreBelowDeuce(t *testing.T) {
	for opp := 0; opp < 10; opp++ {
		if got := MaxScore(opp, 11); got != 11 {
			t.Fatalf("MaxScore(%d, 11) = %d, want 11", opp, got)
		}
	}
	if got := MaxScore(18, 21); got != 21 {
		t.Fatalf("MaxScore(18, 21) = %d, want 21", got)
	}
}

func TestMaxScoreDeuceTracksOpponent(t *testing.T) {
	cases := []struct {
		opp, target, want int
	}{
		{10, 11, 12},
		{11, 11, 13},
		{14, 15, 16},
		{20, 21, 22},
		{28, 11, 30},
		{29, 11, 30},
		{40, 11, 30},
	}
	for _, c := range cases {
		if got := MaxScore(c.opp, c.target); got != c.want {
			t.Fatalf("MaxScore(%d, %d) = %d, want %d", c.opp, c.target, got, c.want)
		}
	}
}

func TestIncrementStopsAtCeiling(t *testing.T) {
	// Deuce scenario from an 10-10 game at target 11.
	a, b := 10, 10
	a = Increment(a, b, 11)
	if a != 11 {
		t.Fatalf("first increment = %d, want 11", a)
	}
	if (Game{TeamA: a, TeamB: b}).Complete(11) {
		t.Fatalf("11-10 should not be complete")
	}
	a = Increment(a, b, 11)
	if a != 12 {
		t.Fatalf("second increment = %d, want 12", a)
	}
	if !(Game{TeamA: a, TeamB: b}).Complete(11) {
		t.Fatalf("12-10 should be complete")
	}
	if got := Increment(a, b, 11); got != 12 {
		t.Fatalf("increment past ceiling = %d, want no-op at 12", got)
	}
}

func TestDecrementFloorsAtZero(t *testing.T) {
	if got := Decrement(0); got != 0 {
		t.Fatalf("Decrement(0) = %d, want 0", got)
	}
	if got := Decrement(5); got != 4 {
		t.Fatalf("Decrement(5) = %d, want 4", got)
	}
}

func TestGameComplete(t *testing.T) {
	cases := []struct {
		a, b, target int
		want         bool
	}{
		{11, 9, 11, true},
		{9, 11, 11, true},
		{11, 10, 11, false},
		{12, 10, 11, true},
		{10, 10, 11, false},
		{0, 0, 11, false},
		{21, 19, 21, true},
		{21, 20, 21, false},
	}
	for _, c := range cases {
		g := Game{TeamA: c.a, TeamB: c.b}
		if got := g.Complete(c.target); got != c.want {
			t.Fatalf("Complete(%d-%d @ %d) = %v, want %v", c.a, c.b, c.target, got, c.want)
		}
	}
}

func TestTargetPolicyFixed(t *testing.T) {
	p := FixedTarget(15)
	if p.Target() != 15 {
		t.Fatalf("target = %d, want 15", p.Target())
	}
	if p.Selectable() {
		t.Fatalf("fixed policy should not be selectable")
	}
	p.Cycle()
	if p.Target() != 15 {
		t.Fatalf("cycle on fixed policy should be a no-op")
	}
}

func TestTargetPolicySelectable(t *testing.T) {
	p := SelectableTarget([]int{11, 15, 21}, 15)
	if p.Target() != 15 {
		t.Fatalf("default target = %d, want 15", p.Target())
	}
	p.Cycle()
	if p.Target() != 21 {
		t.Fatalf("after cycle target = %d, want 21", p.Target())
	}
	p.Cycle()
	if p.Target() != 11 {
		t.Fatalf("cycle should wrap, got %d", p.Target())
	}
	p.Select(15)
	if p.Target() != 15 {
		t.Fatalf("select 15 failed, got %d", p.Target())
	}
	p.Select(99)
	if p.Target() != 15 {
		t.Fatalf("select of unknown option should be a no-op, got %d", p.Target())
	}
}

func TestSelectableTargetFallsBackToFixed(t *testing.T) {
	p := SelectableTarget(nil, 0)
	if p.Target() != 11 || p.Selectable() {
		t.Fatalf("empty option set should fall back to fixed 11")
	}
}
