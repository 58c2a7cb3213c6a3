package score

// DeuceCap is the hard ceiling on any single game score. Past this point
// a real game would have been called, so the sheet refuses to count higher.
const DeuceCap = 30

// MaxScore returns the highest score a side may legally hold against
// opponent at the given target. Below deuce range the ceiling is the target
// itself; once the opponent is within one of the target, win-by-two applies
// and the ceiling tracks opponent+2, capped at DeuceCap.
func MaxScore(opponent, target int) int {
	if opponent < target-1 {
		return target
	}
	return min(opponent+2, DeuceCap)
}

// Increment returns s+1 when that stays within MaxScore, otherwise s
// unchanged. Pushing past the ceiling is a silent no-op, never an error.
func Increment(s, opponent, target int) int {
	if s < MaxScore(opponent, target) {
		return s + 1
	}
	return s
}

// Decrement returns s-1, floored at zero.
func Decrement(s int) int {
	return max(0, s-1)
}

// Game is one unit of play within a session. The ID is presentation-only
// and stays stable across removals; it never reaches the recorded payload.
type Game struct {
	ID    string
	TeamA int
	TeamB int
}

// Zero reports whether the game is an untouched scratch slot.
func (g Game) Zero() bool { return g.TeamA == 0 && g.TeamB == 0 }

// Complete reports whether the game satisfies the win-by-two rule at target.
func (g Game) Complete(target int) bool {
	hi, lo := g.TeamA, g.TeamB
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi >= target && hi-lo >= 2
}

// GamePair is the recorded output shape for one game, ids stripped.
type GamePair struct {
	TeamA int
	TeamB int
}
