package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements run in order on open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS last_schedule (
		id           TEXT PRIMARY KEY CHECK(id = 'last'),
		body         TEXT NOT NULL,
		generated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schedule_history (
		id         TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		kind       TEXT NOT NULL CHECK(kind IN ('generated','refined')),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_history_created
		ON schedule_history(created_at DESC)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
