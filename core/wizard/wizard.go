// Package wizard is the swipe-free quick entry flow: pick a game count,
// record win/loss per game, optionally override exact scores, done. It is
// independent of the score session but produces the same payload shape.
package wizard

import (
	"strconv"
	"strings"

	"github.com/jask/matchpad/core/score"
)

// MaxGames bounds the selectable game count.
const MaxGames = 5

// Step is the wizard's current position.
type Step int

const (
	StepCount Step = iota
	StepResults
	StepDetails
	StepDone
)

// Result is a game outcome from our side's perspective.
type Result int

const (
	Unset Result = iota
	Win
	Loss
)

// Slot is one planned game.
type Slot struct {
	Result    Result
	Ours      int
	Theirs    int
	HasScores bool
}

// Recorded is one decided game in the completion payload.
type Recorded struct {
	Result Result
	Ours   int
	Theirs int
}

// Controller walks Count -> Results(0..n-1) -> Done, with Details as a
// transient sub-state of Results for entering exact scores before deciding
// the current game. Every boundary condition is a no-op; the flow has no
// error states.
type Controller struct {
	step    Step
	target  int
	current int
	slots   []Slot
}

// New returns a controller at the count step. target seeds the winner's
// default score.
func New(target int) *Controller {
	if target < 1 {
		target = 11
	}
	return &Controller{target: target}
}

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Target returns the default winning score.
func (c *Controller) Target() int { return c.target }

// Count returns the chosen game count, 0 before SelectCount.
func (c *Controller) Count() int { return len(c.slots) }

// CurrentGame returns the index of the game being decided.
func (c *Controller) CurrentGame() int { return c.current }

// Slot returns the slot at index i, or a zero Slot out of range.
func (c *Controller) Slot(i int) Slot {
	if i < 0 || i >= len(c.slots) {
		return Slot{}
	}
	return c.slots[i]
}

// Wins counts decided wins.
func (c *Controller) Wins() int { return c.countResult(Win) }

// Losses counts decided losses.
func (c *Controller) Losses() int { return c.countResult(Loss) }

func (c *Controller) countResult(r Result) int {
	n := 0
	for _, s := range c.slots {
		if s.Result == r {
			n++
		}
	}
	return n
}

// SelectCount initialises n unset slots and moves to the first game.
// Counts outside 1..MaxGames are ignored.
func (c *Controller) SelectCount(n int) {
	if c.step != StepCount || n < 1 || n > MaxGames {
		return
	}
	c.slots = make([]Slot, n)
	c.current = 0
	c.step = StepResults
}

// RecordResult decides the current game and advances. The winner's score
// defaults to the target unless Details already set exact scores; the
// loser's score stays unset. After the last game the wizard is Done.
func (c *Controller) RecordResult(r Result) {
	if c.step != StepResults || (r != Win && r != Loss) {
		return
	}
	slot := &c.slots[c.current]
	slot.Result = r
	if !slot.HasScores {
		if r == Win {
			slot.Ours = c.target
			slot.Theirs = 0
		} else {
			slot.Ours = 0
			slot.Theirs = c.target
		}
	}
	if c.current+1 >= len(c.slots) {
		c.step = StepDone
		return
	}
	c.current++
}

// EnterDetails opens the exact-score sub-state for the current game.
func (c *Controller) EnterDetails() {
	if c.step != StepResults {
		return
	}
	c.step = StepDetails
}

// SaveDetails applies an exact-score override to the current game and
// returns to Results. Applied only when both inputs parse as non-negative
// integers; otherwise the override is silently discarded.
func (c *Controller) SaveDetails(ours, theirs string) {
	if c.step != StepDetails {
		return
	}
	c.step = StepResults
	a, errA := strconv.Atoi(strings.TrimSpace(ours))
	b, errB := strconv.Atoi(strings.TrimSpace(theirs))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return
	}
	slot := &c.slots[c.current]
	slot.Ours = a
	slot.Theirs = b
	slot.HasScores = true
}

// SkipDetails discards pending input and returns to Results.
func (c *Controller) SkipDetails() {
	if c.step != StepDetails {
		return
	}
	c.step = StepResults
}

// Back steps the flow backwards: Details drops pending edits and returns
// to Results; Results at game k>0 returns to game k-1; Results at game 0
// returns to Count; Done returns to the last game.
func (c *Controller) Back() {
	switch c.step {
	case StepDetails:
		c.step = StepResults
	case StepResults:
		if c.current > 0 {
			c.current--
			return
		}
		c.slots = nil
		c.step = StepCount
	case StepDone:
		c.step = StepResults
		c.current = len(c.slots) - 1
	}
}

// Complete emits every decided game in original order with its (possibly
// detail-edited) scores. Games never reached are omitted.
func (c *Controller) Complete() []Recorded {
	out := make([]Recorded, 0, len(c.slots))
	for _, s := range c.slots {
		if s.Result == Unset {
			continue
		}
		out = append(out, Recorded{Result: s.Result, Ours: s.Ours, Theirs: s.Theirs})
	}
	return out
}

// Pairs converts the completion payload to the session's recorded shape,
// ours mapped to team A.
func (c *Controller) Pairs() []score.GamePair {
	recorded := c.Complete()
	out := make([]score.GamePair, 0, len(recorded))
	for _, r := range recorded {
		out = append(out, score.GamePair{TeamA: r.Ours, TeamB: r.Theirs})
	}
	return out
}

// Reset returns the wizard to a fresh count step.
func (c *Controller) Reset() {
	c.slots = nil
	c.current = 0
	c.step = StepCount
}
