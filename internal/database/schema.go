package database

import (
	"database/sql"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS matches (
    id TEXT PRIMARY KEY,
    team_a TEXT NOT NULL,
    team_b TEXT NOT NULL,
    match_type TEXT NOT NULL DEFAULT '',
    target INTEGER NOT NULL,
    played_at TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS games (
    match_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    team_a INTEGER NOT NULL,
    team_b INTEGER NOT NULL,
    PRIMARY KEY (match_id, position),
    FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE
);
`

// InitSchema creates the tables directly, bypassing the migration source.
// Used when no migrations directory is configured.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}
