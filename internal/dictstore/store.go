// Package dictstore provides the SQLite-backed dictionary behind the
// cekim.Dictionary interface. Entries are keyed by lowercase lemma.
package dictstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/turkce-kelime/cekim"
)

// Store is the SQLite dictionary. Safe for concurrent use; the
// database/sql pool does the coordination.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the dictionary database at dbPath
// and migrates the schema. ":memory:" is supported for tests.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same
		// in-memory database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		word TEXT PRIMARY KEY,
		pos TEXT NOT NULL DEFAULT '',
		gloss TEXT NOT NULL DEFAULT '',
		form_of INTEGER NOT NULL DEFAULT 0
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Lookup implements cekim.Dictionary. A missing word is (nil, nil).
func (s *Store) Lookup(ctx context.Context, word string) (*cekim.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT word, pos, gloss, form_of FROM entries WHERE word = ?`, word)

	var e cekim.Entry
	var formOf int
	if err := row.Scan(&e.Word, &e.POS, &e.Gloss, &formOf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select entry: %w", err)
	}
	e.FormOf = formOf != 0
	return &e, nil
}

// Put inserts or replaces a single entry.
func (s *Store) Put(ctx context.Context, e cekim.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO entries (word, pos, gloss, form_of) VALUES (?, ?, ?, ?)`,
		e.Word, e.POS, e.Gloss, boolInt(e.FormOf))
	if err != nil {
		return fmt.Errorf("insert entry %q: %w", e.Word, err)
	}
	return nil
}

// Import bulk-loads entries in one transaction.
func (s *Store) Import(ctx context.Context, entries []cekim.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO entries (word, pos, gloss, form_of) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Word, e.POS, e.Gloss, boolInt(e.FormOf)); err != nil {
			tx.Rollback()
			return fmt.Errorf("import entry %q: %w", e.Word, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
