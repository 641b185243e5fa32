package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Opaque key-value records: the JSON daily log and the target settings.
	`CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS count_entries (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		delta      INTEGER NOT NULL CHECK(delta > 0),
		previous   INTEGER NOT NULL CHECK(previous >= 0),
		new_total  INTEGER NOT NULL CHECK(new_total >= 0),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_count_entries_date ON count_entries(date)`,
	`CREATE INDEX IF NOT EXISTS idx_count_entries_created ON count_entries(created_at)`,
}
