// Package db exports the habit log into a SQLite database for ad-hoc queries.
package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ramanasai/habitcal/internal/habit"
)

//go:embed schema.sql
var schemaFS embed.FS

// Open opens (creating if needed) the export database at path and applies
// the schema.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

// Replace swaps the completions table for the contents of log in a single
// transaction. It returns the number of rows written.
func Replace(ctx context.Context, db *sql.DB, log habit.Log) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM completions`); err != nil {
		return 0, fmt.Errorf("clear completions: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO completions(date, habit, done) VALUES(?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for date, rec := range log {
		for _, name := range rec.Names() {
			done := 0
			if rec[name] {
				done = 1
			}
			if _, err := stmt.ExecContext(ctx, date, name, done); err != nil {
				return 0, fmt.Errorf("insert %s/%s: %w", date, name, err)
			}
			n++
		}
	}
	return n, tx.Commit()
}

// HabitTotal summarizes one habit across the export.
type HabitTotal struct {
	Habit string
	Done  int
	Days  int
}

// Rate is the fraction of recorded days the habit was done.
func (h HabitTotal) Rate() float64 {
	if h.Days == 0 {
		return 0
	}
	return float64(h.Done) / float64(h.Days)
}

// HabitTotals returns per-habit totals ordered by habit name.
func HabitTotals(ctx context.Context, db *sql.DB) ([]HabitTotal, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT habit, SUM(done), COUNT(*)
		FROM completions
		GROUP BY habit
		ORDER BY habit`)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit totals: %w", err)
	}
	defer rows.Close()

	var out []HabitTotal
	for rows.Next() {
		var t HabitTotal
		if err := rows.Scan(&t.Habit, &t.Done, &t.Days); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
