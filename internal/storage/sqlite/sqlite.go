// Package sqlite provides a SQLite-backed implementation of the
// storage.Journal interface using Go's standard database/sql package.
//
// The default storage path is ":memory:", so a transcript lives exactly as
// long as the run that produced it. Pointing storage_path at a file keeps
// transcripts around for inspection with the sqlite3 shell.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/oops-exercises/internal/config"
	"github.com/aanand-mishra/oops-exercises/internal/types"
	"github.com/go-playground/validator/v10"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Journal.
type SQLite struct {
	Db       *sql.DB
	validate *validator.Validate
}

// New opens the database at cfg.StoragePath and creates the entries table
// if it does not already exist.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every connection to ":memory:" is its own empty database, so the pool
	// must never grow past a single connection.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   TEXT    NOT NULL,
			exercise TEXT    NOT NULL,
			action   TEXT    NOT NULL,
			status   TEXT    NOT NULL,
			detail   TEXT    NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db, validate: validator.New()}, nil
}

// Append validates entry and inserts it. The entry's ID field is ignored;
// the generated primary key is returned instead.
func (s *SQLite) Append(entry types.Entry) (int64, error) {
	if err := s.validate.Struct(entry); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return 0, fmt.Errorf("Append: invalid entry: %w", fieldErrs)
		}
		return 0, fmt.Errorf("Append: validate: %w", err)
	}

	stmt, err := s.Db.Prepare(
		"INSERT INTO entries (run_id, exercise, action, status, detail) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("Append: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(entry.RunID, entry.Exercise, entry.Action, entry.Status, entry.Detail)
	if err != nil {
		return 0, fmt.Errorf("Append: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Append: last insert id: %w", err)
	}

	return lastID, nil
}

// Entries returns the run's entries ordered by ID, which is insertion order.
func (s *SQLite) Entries(runID string) ([]types.Entry, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, run_id, exercise, action, status, detail FROM entries WHERE run_id = ? ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("Entries: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(runID)
	if err != nil {
		return nil, fmt.Errorf("Entries: query: %w", err)
	}
	defer rows.Close()

	entries := make([]types.Entry, 0)

	for rows.Next() {
		var entry types.Entry

		if err := rows.Scan(
			&entry.ID,
			&entry.RunID,
			&entry.Exercise,
			&entry.Action,
			&entry.Status,
			&entry.Detail,
		); err != nil {
			return nil, fmt.Errorf("Entries: scan row: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Entries: rows iteration: %w", err)
	}

	return entries, nil
}

func (s *SQLite) Close() error {
	return s.Db.Close()
}
