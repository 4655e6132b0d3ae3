package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the append-only session log. Play never depends on it:
// callers treat every failure here as a warning.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applying pragmas and
// creating the schema when missing.
func Open(dsn string) (*Store, error) {
	if err := ensureDir(dsn); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func createTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			level_id INTEGER NOT NULL,
			level_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			questions_answered INTEGER NOT NULL,
			correct_count INTEGER NOT NULL,
			lives_left INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			played_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			question_id INTEGER NOT NULL,
			chosen_index INTEGER NOT NULL,
			correct INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level_id)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir creates the parent directory of a file-backed dsn. Memory
// dsns have no parent to create.
func ensureDir(dsn string) error {
	if dsn == "" || dsn == ":memory:" || filepath.Dir(dsn) == "." {
		return nil
	}
	if len(dsn) >= 5 && dsn[:5] == "file:" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(dsn), 0o755)
}
