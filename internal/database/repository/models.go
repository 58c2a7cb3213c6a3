package repository

import "time"

// Match represents a recorded match row with its games.
type Match struct {
	ID        string
	TeamA     string
	TeamB     string
	MatchType string
	Target    int
	PlayedAt  time.Time
	CreatedAt time.Time
	Games     []GameScore
}

// GameScore represents one game row within a match, ordered by Position.
type GameScore struct {
	MatchID  string
	Position int
	TeamA    int
	TeamB    int
}

// WinsA counts games won by team A.
func (m Match) WinsA() int {
	wins := 0
	for _, g := range m.Games {
		if g.TeamA > g.TeamB {
			wins++
		}
	}
	return wins
}

// WinsB counts games won by team B.
func (m Match) WinsB() int {
	wins := 0
	for _, g := range m.Games {
		if g.TeamB > g.TeamA {
			wins++
		}
	}
	return wins
}
