// Package fs implements core.KV on a local directory: one file per key.
package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// DefaultDir is the directory name used for a store when none is configured.
const DefaultDir = ".quire"

// Store implements core.KV and core.Watchable over a directory.
type Store struct {
	Path   string
	config Config

	mu        sync.RWMutex
	watchers  int
	lastEvent *time.Time
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	ErrorHandler func(error) // receives watcher failures; nil logs them
	FileMode     os.FileMode // default 0644
}

// NewStore creates a store rooted at config.Path. Nothing touches the disk until Initialize.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.FileMode == 0 {
		config.FileMode = 0o644
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize prepares the store directory.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			if s.config.ReadOnly && !s.config.MustExist {
				// Reads against a missing directory behave as an empty store.
				return nil
			}
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get returns the contents of the file for key, or core.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the file for key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s.config.ReadOnly {
		return fmt.Errorf("%w: cannot write %s", core.ErrReadOnly, key)
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, value, s.config.FileMode); err != nil {
		return err
	}
	s.config.Logger.Debug("wrote key", "key", key, "bytes", len(value))
	return nil
}

// Delete removes the file for key. Removing a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	if s.config.ReadOnly {
		return fmt.Errorf("%w: cannot delete %s", core.ErrReadOnly, key)
	}
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in sorted order, skipping in-flight temp files.
func (s *Store) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || isTempFile(e.Name()) {
			continue
		}
		keys = append(keys, e.Name())
	}
	slices.Sort(keys)
	return keys, nil
}

// keyPath maps a key to a file directly inside the store directory.
func (s *Store) keyPath(key string) (string, error) {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || !filepath.IsLocal(key) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Path, key), nil
}

func isTempFile(name string) bool {
	return strings.HasPrefix(name, TempFilePrefix)
}

var (
	_ core.KV        = (*Store)(nil)
	_ core.Watchable = (*Store)(nil)
)
