// Package store handles the SQLite word dictionary.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for dictionary words.
type Store struct {
	db *sql.DB
}

// LangCount is the number of stored words for a language.
type LangCount struct {
	Lang  string
	Words int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			lang TEXT NOT NULL,
			word TEXT NOT NULL,
			UNIQUE (lang, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_lang ON words(lang);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportWords adds words for lang, skipping ones already stored. It returns
// how many rows were inserted.
func (s *Store) ImportWords(ctx context.Context, lang string, words []string) (n int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words (lang, word) VALUES (?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for _, w := range words {
		res, err := stmt.ExecContext(ctx, lang, w)
		if err != nil {
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		n += affected
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// ListWords returns every stored word for lang in insertion order.
func (s *Store) ListWords(ctx context.Context, lang string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE lang = ? ORDER BY id`, lang)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ListLangs returns stored languages with their word counts, sorted by code.
func (s *Store) ListLangs(ctx context.Context) ([]LangCount, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT lang, COUNT(*) FROM words GROUP BY lang ORDER BY lang`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []LangCount
	for rows.Next() {
		var lc LangCount
		if err := rows.Scan(&lc.Lang, &lc.Words); err != nil {
			return nil, err
		}
		result = append(result, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
