package gesture

import "time"

// Token identifies one scheduled callback.
type Token int

// Scheduler schedules a single callback after a delay. Implementations fire
// callbacks on the interaction loop, never concurrently with gesture updates.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Token
	Cancel(tok Token)
}

// FrameScheduler is a Scheduler driven by explicit Advance calls from the
// frame tick. Due callbacks fire in deadline order during Advance, each at
// its own deadline on the internal clock, so chains of reschedules keep
// exact cadence even when a single Advance spans several intervals.
type FrameScheduler struct {
	now     time.Duration
	next    Token
	pending []frameEntry
}

type frameEntry struct {
	tok Token
	due time.Duration
	fn  func()
}

// NewFrameScheduler returns a scheduler with its clock at zero.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule registers fn to fire once d after the current clock.
func (s *FrameScheduler) Schedule(d time.Duration, fn func()) Token {
	s.next++
	s.pending = append(s.pending, frameEntry{tok: s.next, due: s.now + d, fn: fn})
	return s.next
}

// Cancel drops the pending callback for tok. Unknown or already-fired
// tokens are ignored.
func (s *FrameScheduler) Cancel(tok Token) {
	for i, e := range s.pending {
		if e.tok == tok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of scheduled callbacks.
func (s *FrameScheduler) Pending() int { return len(s.pending) }

// Advance moves the clock forward by dt and fires every callback whose
// deadline falls inside the window, including callbacks scheduled by the
// callbacks themselves.
func (s *FrameScheduler) Advance(dt time.Duration) {
	end := s.now + dt
	for {
		idx := -1
		for i, e := range s.pending {
			if e.due > end {
				continue
			}
			if idx < 0 || e.due < s.pending[idx].due {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		entry := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		s.now = entry.due
		entry.fn()
	}
	s.now = end
}
