// Package storage keeps finished runs in a SQLite database through the
// pure-Go modernc.org/sqlite driver, so the binary needs no CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const createScores = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL,
	run_id     TEXT NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	level      INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);`

// addedColumns were introduced after the first schema. Databases that
// predate them get the columns with their defaults on Open.
var addedColumns = []struct{ name, def string }{
	{"run_id", "TEXT NOT NULL DEFAULT ''"},
	{"level", "INTEGER NOT NULL DEFAULT 1"},
}

// Store is a handle on the score database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and its parent directories
// when missing. A leading ~ is expanded to the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) init() error {
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("storage: ping: %w", err)
	}
	if _, err := s.db.Exec(createScores); err != nil {
		return fmt.Errorf("storage: create table: %w", err)
	}

	have, err := s.columnSet()
	if err != nil {
		return fmt.Errorf("storage: read schema: %w", err)
	}
	for _, c := range addedColumns {
		if have[c.name] {
			continue
		}
		if _, err := s.db.Exec("ALTER TABLE scores ADD COLUMN " + c.name + " " + c.def); err != nil {
			return fmt.Errorf("storage: add column %s: %w", c.name, err)
		}
	}

	if _, err := s.db.Exec(createIndexes); err != nil {
		return fmt.Errorf("storage: create indexes: %w", err)
	}
	return nil
}

// columnSet returns the names of the columns the scores table has now.
func (s *Store) columnSet() (map[string]bool, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info('scores')")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		set[name] = true
	}
	return set, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
