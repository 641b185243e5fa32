package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/db"
	"github.com/alexanderramin/chantcounter/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo using a SQLite database.
type SQLiteEntryRepo struct {
	db db.DBTX
}

func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: conn}
}

const entryColumns = `id, date, delta, previous, new_total, created_at`

// entryTimeLayout is fixed-width so created_at sorts chronologically as text.
const entryTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (r *SQLiteEntryRepo) Create(ctx context.Context, e *domain.CountEntry) error {
	query := `INSERT INTO count_entries (` + entryColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date,
		e.Delta,
		e.Previous,
		e.New,
		e.CreatedAt.UTC().Format(entryTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting count entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CountEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM count_entries ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent count entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListByDate(ctx context.Context, date string) ([]*domain.CountEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM count_entries WHERE date = ? ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing count entries by date: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteEntryRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM count_entries`); err != nil {
		return fmt.Errorf("deleting count entries: %w", err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]*domain.CountEntry, error) {
	var entries []*domain.CountEntry
	for rows.Next() {
		var e domain.CountEntry
		var createdAtStr string
		if err := rows.Scan(&e.ID, &e.Date, &e.Delta, &e.Previous, &e.New, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning count entry: %w", err)
		}
		createdAt, err := time.Parse(entryTimeLayout, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		e.CreatedAt = createdAt
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count entries: %w", err)
	}
	return entries, nil
}
