// Package store is the record store: it persists the whole note collection as a
// single blob under a fixed key, and the recognized categories under a second key.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/typed"
)

// Fixed key stems; the codec extension is appended (notes.json, categories.yaml).
const (
	NotesKey      = "notes"
	CategoriesKey = "categories"
	probeKey      = ".probe"
)

// RecordStore reads and writes the full note collection through a core.KV.
// Every Save fully supersedes prior state: no merge, no partial update.
type RecordStore struct {
	kv         core.KV
	notes      *typed.Blob[[]core.Note]
	categories *typed.Blob[[]core.Category]
	logger     *slog.Logger
}

// Config holds the configuration for a RecordStore.
type Config struct {
	Codec  typed.Codec // nil means JSON
	Logger *slog.Logger
}

// New creates a record store over kv.
func New(kv core.KV, cfg Config) *RecordStore {
	codec := cfg.Codec
	if codec == nil {
		codec = typed.JSONCodec{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RecordStore{
		kv:         kv,
		notes:      typed.NewBlob[[]core.Note](kv, NotesKey+codec.Ext(), codec),
		categories: typed.NewBlob[[]core.Category](kv, CategoriesKey+codec.Ext(), codec),
		logger:     logger,
	}
}

// KV exposes the underlying key-value store (e.g. to probe for Watchable).
func (s *RecordStore) KV() core.KV {
	return s.kv
}

// NotesKey returns the full key the collection is stored under.
func (s *RecordStore) NotesKey() string {
	return s.notes.Key()
}

// Load returns the stored collection.
// A never-written store yields an empty collection and no error.
// A present but unparseable blob yields an error matching core.ErrStorageCorrupt.
func (s *RecordStore) Load(ctx context.Context) ([]core.Note, error) {
	notes, _, err := s.LoadState(ctx)
	return notes, err
}

// LoadState is Load that also reports whether the collection was ever written.
// A stored empty collection is found; a never-written store is not.
func (s *RecordStore) LoadState(ctx context.Context) ([]core.Note, bool, error) {
	notes, found, err := s.notes.Get(ctx)
	if err != nil {
		if errors.Is(err, typed.ErrDecode) {
			return nil, true, fmt.Errorf("%w: %w", core.ErrStorageCorrupt, err)
		}
		return nil, false, fmt.Errorf("%w: %w", core.ErrStorageUnavailable, err)
	}
	if !found || notes == nil {
		return []core.Note{}, found, nil
	}
	for i := range notes {
		if notes[i].Tags == nil {
			notes[i].Tags = []string{}
		}
	}
	s.logger.Debug("loaded notes", "key", s.notes.Key(), "count", len(notes))
	return notes, true, nil
}

// Save replaces the stored collection with notes.
func (s *RecordStore) Save(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}
	if err := s.notes.Put(ctx, notes); err != nil {
		return fmt.Errorf("%w: %w", core.ErrSaveFailed, err)
	}
	s.logger.Debug("saved notes", "key", s.notes.Key(), "count", len(notes))
	return nil
}

// IsAvailable probes whether the medium accepts writes with a trial write/remove.
// It never panics; any failure maps to false.
func (s *RecordStore) IsAvailable(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("storage probe panicked", "panic", r)
			ok = false
		}
	}()

	if err := s.kv.Put(ctx, probeKey, []byte("probe")); err != nil {
		s.logger.Debug("storage probe write failed", "error", err)
		return false
	}
	if err := s.kv.Delete(ctx, probeKey); err != nil {
		s.logger.Debug("storage probe remove failed", "error", err)
		return false
	}
	return true
}

// LoadCategories returns the recognized categories.
// Absent, corrupt, or empty blobs fall back to the built-in list;
// identifiers outside the closed enumeration are dropped.
func (s *RecordStore) LoadCategories(ctx context.Context) []core.Category {
	stored, found, err := s.categories.Get(ctx)
	if err != nil {
		s.logger.Warn("ignoring unreadable categories", "key", s.categories.Key(), "error", err)
		return slices.Clone(core.AllCategories)
	}
	if !found {
		return slices.Clone(core.AllCategories)
	}

	var out []core.Category
	for _, c := range stored {
		if c.Valid() && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return slices.Clone(core.AllCategories)
	}
	return out
}

// SaveCategories replaces the recognized categories.
func (s *RecordStore) SaveCategories(ctx context.Context, cats []core.Category) error {
	for _, c := range cats {
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", c)
		}
	}
	if err := s.categories.Put(ctx, cats); err != nil {
		return fmt.Errorf("%w: %w", core.ErrSaveFailed, err)
	}
	return nil
}
