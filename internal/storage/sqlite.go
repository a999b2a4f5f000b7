// Package storage provides SQLite-based persistence for the save
// system: named sessions, per-session level progress, and interface
// settings. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/grotto2d/grotto/internal/diskspace"
)

// Store manages the SQLite database holding sessions, progress and
// settings. All operations are synchronous and release their
// statements/transactions on every exit path.
type Store struct {
	db       *sql.DB
	logger   *log.Logger
	hasSpace func() bool
}

// Option configures a Store at open time.
type Option func(*Store)

// WithLogger sets the structured logger used for save telemetry.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithSpaceChecker replaces the free-space guard consulted before
// every write. Intended for tests and embedders with their own guard.
func WithSpaceChecker(check func() bool) Option {
	return func(s *Store) {
		s.hasSpace = check
	}
}

// Open creates or opens the save database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, opts ...Option) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, unavailable("open database", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, unavailable("connect to database", err)
	}

	store := &Store{
		db:     db,
		logger: log.New(io.Discard),
		hasSpace: func() bool {
			return diskspace.HasEnough(dir, diskspace.DefaultMinFreeBytes)
		},
	}
	for _, opt := range opts {
		opt(store)
	}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, unavailable("migrate schema", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// Levels.sessionID is UNIQUE so progress writes can use a native
// upsert: at most one progress row per session, enforced by the
// engine rather than check-then-act.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS Sessions (
			sessionID INTEGER PRIMARY KEY AUTOINCREMENT,
			sessionName TEXT NOT NULL,
			dateOfLastSave DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_name ON Sessions(sessionName COLLATE NOCASE);

		CREATE TABLE IF NOT EXISTS Levels (
			levelID INTEGER PRIMARY KEY AUTOINCREMENT,
			positionInLevel TEXT NOT NULL,
			levelDifficulty INTEGER NOT NULL,
			sessionID INTEGER NOT NULL UNIQUE,
			hasSeenDialogue INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS Settings (
			resolution TEXT,
			graphics TEXT,
			volume INTEGER
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// checkSpace runs the free-space guard for a write operation.
func (s *Store) checkSpace(op string) error {
	if s.hasSpace != nil && !s.hasSpace() {
		return &UnavailableError{Op: op, Err: ErrLowDiskSpace}
	}
	return nil
}

// timestampFormat is how dateOfLastSave is stored, matching SQLite's
// datetime('now') output.
const timestampFormat = "2006-01-02 15:04:05"

// scanTime converts a scanned datetime column - the driver may hand
// back either time.Time or a string.
func scanTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timestampFormat, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
