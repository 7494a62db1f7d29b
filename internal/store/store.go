package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying sqlx handle for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Facts() *FactRepo               { return &FactRepo{db: s.db} }
func (s *Store) ReviewEvents() *ReviewEventRepo { return &ReviewEventRepo{db: s.db} }
func (s *Store) Completions() *CompletionRepo   { return &CompletionRepo{db: s.db} }
func (s *Store) Observations() *ObservationRepo { return &ObservationRepo{db: s.db} }
func (s *Store) Profiles() *ProfileRepo         { return &ProfileRepo{db: s.db} }
func (s *Store) Proficiency() *ProficiencyRepo  { return &ProficiencyRepo{db: s.db} }
func (s *Store) Artifacts() *ArtifactRepo       { return &ArtifactRepo{db: s.db} }
func (s *Store) Plans() *PlanRepo               { return &PlanRepo{db: s.db} }
func (s *Store) QuizResults() *QuizResultRepo   { return &QuizResultRepo{db: s.db} }
func (s *Store) Notes() *NoteRepo               { return &NoteRepo{db: s.db} }
func (s *Store) LLMEvents() *LLMEventRepo       { return &LLMEventRepo{db: s.db} }

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sqlx.DB) error {
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

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXIO_DB environment variable
// 2. $XDG_DATA_HOME/lexio/lexio.db
// 3. ~/.local/share/lexio/lexio.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXIO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexio", "lexio.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
