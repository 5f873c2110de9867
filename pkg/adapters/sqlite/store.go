// Package sqlite implements core.KV as a single key/value table in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/aretw0/quire/pkg/core"
)

// DefaultFile is the database file name used inside a store directory.
const DefaultFile = "quire.db"

// Memory opens a private in-memory database.
const Memory = ":memory:"

// Store is a core.KV over the kv table.
type Store struct {
	db       *sql.DB // nil when a read-only store has no database file yet
	path     string
	readOnly bool
	logger   *slog.Logger
}

// Config holds the configuration for the SQLite store.
type Config struct {
	Path     string // database file, or Memory
	ReadOnly bool
	Logger   *slog.Logger
}

// Open opens (creating if needed) the database at cfg.Path.
func Open(cfg Config) (*Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Path == "" {
		return nil, errors.New("sqlite: empty path")
	}
	if cfg.Path != Memory && !cfg.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := cfg.Path
	if cfg.ReadOnly && cfg.Path != Memory {
		if _, err := os.Stat(cfg.Path); errors.Is(err, os.ErrNotExist) {
			// Reads against a missing database behave as an empty store.
			cfg.Logger.Debug("no database yet", "path", cfg.Path)
			return &Store{path: cfg.Path, readOnly: true, logger: cfg.Logger}, nil
		}
		dsn = "file:" + filepath.ToSlash(cfg.Path) + "?mode=ro"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; also keeps a :memory: database alive on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.Path != Memory && !cfg.ReadOnly {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &Store{db: db, path: cfg.Path, readOnly: cfg.ReadOnly, logger: cfg.Logger}, nil
}

// Initialize creates the kv table.
func (s *Store) Initialize(ctx context.Context) error {
	if s.readOnly {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, core.ErrKeyNotFound
	}
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrKeyNotFound
	}
	if err != nil {
		if s.readOnly && s.missingTable(ctx) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s.readOnly {
		return fmt.Errorf("%w: cannot write %s", core.ErrReadOnly, key)
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.logger.Debug("wrote key", "key", key, "bytes", len(value))
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.readOnly {
		return fmt.Errorf("%w: cannot delete %s", core.ErrReadOnly, key)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in sorted order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Store) missingTable(ctx context.Context) bool {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&n)
	return err == nil && n == 0
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	conns := 0
	if s.db != nil {
		conns = s.db.Stats().OpenConnections
	}
	return map[string]any{
		"path":       s.path,
		"read_only":  s.readOnly,
		"open_conns": conns,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "kv-sqlite"
}

var (
	_ core.KV     = (*Store)(nil)
	_ core.Closer = (*Store)(nil)
)
