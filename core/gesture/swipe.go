package gesture

import "time"

// Swipe thresholds, in chip-local units and units/s. Leftward is negative.
const (
	SwipeMinOffset      = -100.0
	SwipeCommitOffset   = -60.0
	SwipeCommitVelocity = -500.0
	SwipeSlideDuration  = 150 * time.Millisecond
)

// SwipeOutcome is the result of a release.
type SwipeOutcome int

const (
	SwipeIgnored SwipeOutcome = iota
	SwipeSprungBack
	SwipeCommitted
)

// Swipe is the per-chip swipe-to-delete state machine. Each chip owns one;
// no state is shared between chips. The committed flag is one-shot: once a
// release commits, duplicate releases and further drags are ignored and the
// removal callback fires exactly once.
type Swipe struct {
	eligible func() bool
	remove   func()

	offset    *Spring
	slide     Timed
	dragging  bool
	dragBase  float64
	committed bool
	removed   bool
}

// NewSwipe returns a swipe controller gated by eligible and committing to
// remove. Both callbacks are consulted on the interaction loop only.
func NewSwipe(eligible func() bool, remove func()) *Swipe {
	return &Swipe{
		eligible: eligible,
		remove:   remove,
		// Snappy settle for the spring-back.
		offset: NewSpring(400, 30, 1),
	}
}

// Offset returns the chip's current horizontal offset.
func (s *Swipe) Offset() float64 {
	if s.committed {
		return s.slide.Value()
	}
	return s.offset.Value()
}

// Committed reports whether a delete has been committed.
func (s *Swipe) Committed() bool { return s.committed }

// Dragging reports whether a drag is in progress.
func (s *Swipe) Dragging() bool { return s.dragging }

// DragStart opens a drag. Ignored once committed or when the chip is not
// eligible for deletion; a drag arriving mid-settle retargets the offset.
func (s *Swipe) DragStart() {
	if s.committed || !s.eligible() {
		return
	}
	s.dragging = true
	s.dragBase = s.offset.Value()
	s.offset.Pin(s.dragBase)
}

// Drag applies a pointer translation relative to the drag start. Rightward
// travel is discarded; leftward travel is clamped at SwipeMinOffset.
func (s *Swipe) Drag(dx float64) {
	if !s.dragging || s.committed {
		return
	}
	x := s.dragBase + dx
	if x > 0 {
		x = 0
	}
	if x < SwipeMinOffset {
		x = SwipeMinOffset
	}
	s.offset.Pin(x)
}

// Release ends the drag. Past the distance or velocity threshold the delete
// commits and the chip slides off; otherwise the offset springs back to
// rest. A release with no drag in progress is ignored, so a duplicate
// release event cannot commit twice.
func (s *Swipe) Release(velocity float64) SwipeOutcome {
	if !s.dragging || s.committed {
		return SwipeIgnored
	}
	s.dragging = false
	if s.offset.Value() < SwipeCommitOffset || velocity < SwipeCommitVelocity {
		s.commit()
		return SwipeCommitted
	}
	s.offset.SetVelocity(velocity)
	s.offset.Retarget(0)
	return SwipeSprungBack
}

// Delete commits a non-gestural removal (keyboard path). Same eligibility
// gate and same one-shot guard as a swipe commit; reports whether the
// delete was accepted.
func (s *Swipe) Delete() bool {
	if s.committed || !s.eligible() {
		return false
	}
	s.dragging = false
	s.commit()
	return true
}

func (s *Swipe) commit() {
	s.committed = true
	s.slide.Start(s.offset.Value(), SwipeMinOffset, SwipeSlideDuration)
}

// Step advances the chip's motion. When a committed slide finishes, the
// removal callback fires, exactly once.
func (s *Swipe) Step(dt time.Duration) {
	if s.committed {
		s.slide.Step(dt)
		if s.slide.Settled() && !s.removed {
			s.removed = true
			s.remove()
		}
		return
	}
	s.offset.Step(dt)
}

// Settled reports whether the chip has no motion pending.
func (s *Swipe) Settled() bool {
	if s.committed {
		return s.slide.Settled()
	}
	return !s.dragging && s.offset.Settled()
}
