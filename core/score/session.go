package score

import "github.com/google/uuid"

// MaxGames bounds the number of games in one session.
const MaxGames = 5

// Session is one in-progress match entry: an ordered, never-empty run of
// games and a cursor at the game being edited. All mutations are synchronous
// and keep the cursor inside the run.
type Session struct {
	games   []Game
	current int
	policy  TargetPolicy
}

// NewSession returns a session holding a single empty game.
func NewSession(policy TargetPolicy) *Session {
	s := &Session{policy: policy}
	s.Reset()
	return s
}

// Reset restores the initial single-empty-game state. The target policy
// keeps its current selection.
func (s *Session) Reset() {
	s.games = []Game{newGame()}
	s.current = 0
}

func newGame() Game {
	return Game{ID: uuid.NewString()}
}

// Target returns the active game target.
func (s *Session) Target() int { return s.policy.Target() }

// Policy exposes the target policy for selection UI.
func (s *Session) Policy() *TargetPolicy { return &s.policy }

// Len returns the number of games.
func (s *Session) Len() int { return len(s.games) }

// Games returns a copy of the game run in play order.
func (s *Session) Games() []Game {
	out := make([]Game, len(s.games))
	copy(out, s.games)
	return out
}

// Game returns the game at index i, clamped into range.
func (s *Session) Game(i int) Game {
	return s.games[clampIndex(i, len(s.games))]
}

// Current returns the game under the cursor.
func (s *Session) Current() Game { return s.games[s.current] }

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int { return s.current }

// AddGame appends a fresh empty game and moves the cursor to it. A no-op
// once MaxGames is reached; reports whether a game was added.
func (s *Session) AddGame() bool {
	if len(s.games) >= MaxGames {
		return false
	}
	s.games = append(s.games, newGame())
	s.current = len(s.games) - 1
	return true
}

// SelectGame moves the cursor to index i. Out-of-range input clamps to the
// nearest valid index; the cursor never leaves the game run.
func (s *Session) SelectGame(i int) {
	s.current = clampIndex(i, len(s.games))
}

// RemoveGame deletes the game at index i. A no-op when only one game
// remains or i is out of range; reports whether a game was removed.
// The cursor is recomputed so it always lands on a surviving game.
func (s *Session) RemoveGame(i int) bool {
	if len(s.games) <= 1 || i < 0 || i >= len(s.games) {
		return false
	}
	s.games = append(s.games[:i], s.games[i+1:]...)
	if s.current >= len(s.games) {
		s.current = len(s.games) - 1
	} else if s.current > i {
		s.current--
	}
	return true
}

// IncrementA raises team A's score in the current game, bounded by the
// deuce rule against team B.
func (s *Session) IncrementA() {
	g := &s.games[s.current]
	g.TeamA = Increment(g.TeamA, g.TeamB, s.Target())
}

// DecrementA lowers team A's score in the current game, floored at zero.
func (s *Session) DecrementA() {
	g := &s.games[s.current]
	g.TeamA = Decrement(g.TeamA)
}

// IncrementB raises team B's score in the current game, bounded by the
// deuce rule against team A.
func (s *Session) IncrementB() {
	g := &s.games[s.current]
	g.TeamB = Increment(g.TeamB, g.TeamA, s.Target())
}

// DecrementB lowers team B's score in the current game, floored at zero.
func (s *Session) DecrementB() {
	g := &s.games[s.current]
	g.TeamB = Decrement(g.TeamB)
}

// Savable reports whether the session may be committed: at least one game
// has been scored, and every scored game is complete. Untouched trailing
// games are harmless scratch slots, not errors.
func (s *Session) Savable() bool {
	scored := false
	for _, g := range s.games {
		if g.Zero() {
			continue
		}
		scored = true
		if !g.Complete(s.Target()) {
			return false
		}
	}
	return scored
}

// Recorded returns the commit payload: every nonzero game in play order
// with presentation ids stripped.
func (s *Session) Recorded() []GamePair {
	out := make([]GamePair, 0, len(s.games))
	for _, g := range s.games {
		if g.Zero() {
			continue
		}
		out = append(out, GamePair{TeamA: g.TeamA, TeamB: g.TeamB})
	}
	return out
}

// Removable reports whether the game at index i may be deleted: more than
// one game in the run and the game has a nonzero score. The same gate
// applies to every removal path, swipe and keyboard alike.
func (s *Session) Removable(i int) bool {
	if len(s.games) <= 1 || i < 0 || i >= len(s.games) {
		return false
	}
	return !s.games[i].Zero()
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
