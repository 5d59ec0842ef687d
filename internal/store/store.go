package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"

	// Postgres driver registered as "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db      *sql.DB
	client  *ent.Client
	dialect string
	seq     *sequenceCounter
}

// Open connects to the database at dsn and runs auto-migration.
// A postgres:// or postgresql:// DSN selects Postgres; anything else is
// treated as a SQLite path or URI, with recommended pragmas applied.
func Open(dsn string) (*Store, error) {
	driver, dia := "sqlite", dialect.SQLite
	if IsPostgresDSN(dsn) {
		driver, dia = "pgx", dialect.Postgres
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dia == dialect.SQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(dia, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, dialect: dia, seq: seq}, nil
}

// IsPostgresDSN reports whether dsn points at a Postgres server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Dialect returns the ent dialect name in use.
func (s *Store) Dialect() string {
	return s.dialect
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// Reset deletes every event and snapshot and restarts the sequence.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	deletes := []func() (int, error){
		func() (int, error) { return tx.SessionEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.AnswerEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.HintEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.LessonEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.GemEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.LLMRequestEvent.Delete().Exec(ctx) },
		func() (int, error) { return tx.Snapshot.Delete().Exec(ctx) },
	}
	for _, del := range deletes {
		if _, err := del(); err != nil {
			tx.Rollback()
			return fmt.Errorf("reset: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}
	return s.seq.reset(ctx)
}

// applyPragmas configures SQLite for single-user use.
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

// DefaultDBPath resolves the database file path in priority order:
// 1. TYPORAX_DB environment variable
// 2. $XDG_DATA_HOME/typorax/typorax.db
// 3. ~/.local/share/typorax/typorax.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TYPORAX_DB"); p != "" {
		if IsPostgresDSN(p) {
			return p, nil
		}
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

	p := filepath.Join(dataHome, "typorax", "typorax.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
