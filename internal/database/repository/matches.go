package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jask/matchpad/internal/database"
)

// MatchRepo handles matches and their games.
type MatchRepo struct {
	db *sql.DB
}

func NewMatchRepo(db *sql.DB) *MatchRepo { return &MatchRepo{db: db} }

// Insert stores a match and its games in one transaction. A zero PlayedAt
// is stamped with the current time.
func (r *MatchRepo) Insert(ctx context.Context, m Match) error {
	playedAt := m.PlayedAt
	if playedAt.IsZero() {
		playedAt = database.Now()
	}
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO matches(id, team_a, team_b, match_type, target, played_at)
		VALUES(?, ?, ?, ?, ?, ?);
		`, m.ID, m.TeamA, m.TeamB, m.MatchType, m.Target, playedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
		for _, g := range m.Games {
			_, err = tx.ExecContext(ctx, `
			INSERT INTO games(match_id, position, team_a, team_b)
			VALUES(?, ?, ?, ?);
			`, m.ID, g.Position, g.TeamA, g.TeamB)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the most recent matches, newest first, games included.
func (r *MatchRepo) List(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, team_a, team_b, match_type, target, played_at, created_at
	FROM matches ORDER BY played_at DESC, created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		games, err := r.gamesFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Games = games
	}
	return out, nil
}

// Get returns one match by id.
func (r *MatchRepo) Get(ctx context.Context, id string) (Match, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, team_a, team_b, match_type, target, played_at, created_at
	FROM matches WHERE id = ?`, id)
	m, err := scanMatch(row)
	if err != nil {
		return Match{}, err
	}
	m.Games, err = r.gamesFor(ctx, id)
	return m, err
}

// Delete removes a match; games go with it via the cascade.
func (r *MatchRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	return err
}

// TeamNames returns every distinct team name seen in recorded matches.
func (r *MatchRepo) TeamNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT team_a FROM matches UNION SELECT team_b FROM matches ORDER BY 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r *MatchRepo) gamesFor(ctx context.Context, matchID string) ([]GameScore, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT match_id, position, team_a, team_b
	FROM games WHERE match_id = ? ORDER BY position`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameScore
	for rows.Next() {
		var g GameScore
		if err := rows.Scan(&g.MatchID, &g.Position, &g.TeamA, &g.TeamB); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var playedAt, createdAt string
	if err := row.Scan(&m.ID, &m.TeamA, &m.TeamB, &m.MatchType, &m.Target, &playedAt, &createdAt); err != nil {
		return Match{}, err
	}
	m.PlayedAt = parseDBTime(playedAt)
	m.CreatedAt = parseDBTime(createdAt)
	return m, nil
}

func parseDBTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
