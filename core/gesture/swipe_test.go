package gesture

import (
	"testing"
	"time"
)

type swipeHarness struct {
	swipe    *Swipe
	eligible bool
	removed  int
}

func newSwipeHarness(eligible bool) *swipeHarness {
	h := &swipeHarness{eligible: eligible}
	h.swipe = NewSwipe(
		func() bool { return h.eligible },
		func() { h.removed++ },
	)
	return h
}

func settleSwipe(s *Swipe) {
	for i := 0; i < 600 && !s.Settled(); i++ {
		s.Step(16 * time.Millisecond)
	}
	s.Step(16 * time.Millisecond)
}

func TestSwipeClampsOffset(t *testing.T) {
	h := newSwipeHarness(true)
	h.swipe.DragStart()
	h.swipe.Drag(40)
	if got := h.swipe.Offset(); got != 0 {
		t.Fatalf("rightward drag offset = %v, want 0", got)
	}
	h.swipe.Drag(-500)
	if got := h.swipe.Offset(); got != SwipeMinOffset {
		t.Fatalf("deep drag offset = %v, want clamp at %v", got, SwipeMinOffset)
	}
}

func TestSwipeSpringsBackBelowThresholds(t *testing.T) {
	h := newSwipeHarness(true)
	h.swipe.DragStart()
	h.swipe.Drag(-40)
	if out := h.swipe.Release(-100); out != SwipeSprungBack {
		t.Fatalf("outcome = %v, want spring back", out)
	}
	settleSwipe(h.swipe)
	if got := h.swipe.Offset(); got != 0 {
		t.Fatalf("offset after settle = %v, want 0", got)
	}
	if h.removed != 0 {
		t.Fatalf("sub-threshold release must never delete, removed %d times", h.removed)
	}
}

func TestSwipeCommitsPastDistanceThreshold(t *testing.T) {
	h := newSwipeHarness(true)
	h.swipe.DragStart()
	h.swipe.Drag(-75)
	if out := h.swipe.Release(-100); out != SwipeCommitted {
		t.Fatalf("outcome = %v, want committed", out)
	}
	settleSwipe(h.swipe)
	if h.removed != 1 {
		t.Fatalf("removed %d times, want 1", h.removed)
	}
}

func TestSwipeCommitsOnFlickVelocity(t *testing.T) {
	h := newSwipeHarness(true)
	h.swipe.DragStart()
	h.swipe.Drag(-20)
	if out := h.swipe.Release(-900); out != SwipeCommitted {
		t.Fatalf("fast flick should commit regardless of distance, got %v", out)
	}
	settleSwipe(h.swipe)
	if h.removed != 1 {
		t.Fatalf("removed %d times, want 1", h.removed)
	}
}

func TestSwipeDuplicateReleaseFiresOnce(t *testing.T) {
	h := newSwipeHarness(true)
	h.swipe.DragStart()
	h.swipe.Drag(-80)
	first := h.swipe.Release(-600)
	second := h.swipe.Release(-600)
	if first != SwipeCommitted {
		t.Fatalf("first release should commit, got %v", first)
	}
	if second != SwipeIgnored {
		t.Fatalf("duplicate release should be ignored, got %v", second)
	}
	settleSwipe(h.swipe)
	settleSwipe(h.swipe)
	if h.removed != 1 {
		t.Fatalf("removed %d times, want exactly 1", h.removed)
	}
}

func TestSwipeIneligibleChipIgnoresGesture(t *testing.T) {
	h := newSwipeHarness(false)
	h.swipe.DragStart()
	h.swipe.Drag(-90)
	if got := h.swipe.Offset(); got != 0 {
		t.Fatalf("ineligible chip moved to %v", got)
	}
	if out := h.swipe.Release(-900); out != SwipeIgnored {
		t.Fatalf("ineligible release outcome = %v, want ignored", out)
	}
	if h.removed != 0 {
		t.Fatalf("ineligible chip must never delete")
	}
}

func TestSwipeKeyboardDeleteSharesGuard(t *testing.T) {
	h := newSwipeHarness(true)
	if !h.swipe.Delete() {
		t.Fatalf("eligible delete should be accepted")
	}
	if h.swipe.Delete() {
		t.Fatalf("second delete must be rejected by the one-shot guard")
	}
	settleSwipe(h.swipe)
	if h.removed != 1 {
		t.Fatalf("removed %d times, want 1", h.removed)
	}

	blocked := newSwipeHarness(false)
	if blocked.swipe.Delete() {
		t.Fatalf("ineligible delete must be rejected")
	}
}

func TestSwipeReleaseWithoutDragIgnored(t *testing.T) {
	h := newSwipeHarness(true)
	if out := h.swipe.Release(-900); out != SwipeIgnored {
		t.Fatalf("release with no drag = %v, want ignored", out)
	}
	if h.removed != 0 {
		t.Fatalf("no drag, no delete")
	}
}
