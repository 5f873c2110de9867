// Package service holds the note controller: the single owner of the in-memory
// collection, the active filters and sort, and the path to the record store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"golang.org/x/text/language"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/notes"
	"github.com/aretw0/quire/pkg/query"
	"github.com/aretw0/quire/pkg/store"
)

// ErrWatchUnsupported is returned by Watch when the store cannot report changes.
var ErrWatchUnsupported = errors.New("store does not support watching")

// Warning texts recorded by Load.
const (
	WarnPersistenceDisabled = "storage is unavailable: changes will not persist"
	WarnCorruptStore        = "stored notes could not be read: starting with an empty collection"
	WarnUnavailableStore    = "stored notes could not be loaded: starting with an empty collection"
	WarnSeedNotSaved        = "sample notes could not be saved"
)

// Service is the note controller.
// All mutations run under one lock, so each read-modify-write of the collection
// observes the result of the previous one.
type Service struct {
	store *store.RecordStore

	logger          *slog.Logger
	now             func() time.Time
	seed            bool
	eventBufferSize int
	locale          language.Tag

	mu         sync.RWMutex
	notes      []core.Note
	categories []core.Category
	filters    core.Filters
	sort       core.SortOption
	loaded     bool
	persistent bool
	warnings   []string
}

// New creates a controller over rs. Call Load before use.
func New(rs *store.RecordStore, opts ...Option) *Service {
	s := &Service{
		store:           rs,
		logger:          slog.New(slog.DiscardHandler),
		now:             time.Now,
		seed:            true,
		eventBufferSize: DefaultEventBuffer,
		locale:          query.DefaultLocale,
		notes:           []core.Note{},
		categories:      slices.Clone(core.AllCategories),
		sort:            core.SortNewest,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the collection from the store.
// Storage problems degrade to warnings (see Warnings) and an empty collection;
// Load only fails when ctx is done.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.warnings = nil
	s.persistent = s.store.IsAvailable(ctx)
	if !s.persistent {
		s.warn(WarnPersistenceDisabled)
	}

	loaded, found, err := s.store.LoadState(ctx)
	switch {
	case errors.Is(err, core.ErrStorageCorrupt):
		s.logger.Warn("ignoring corrupt store", "key", s.store.NotesKey(), "error", err)
		s.warn(WarnCorruptStore)
		loaded = []core.Note{}
	case err != nil:
		s.logger.Warn("ignoring unreadable store", "key", s.store.NotesKey(), "error", err)
		s.warn(WarnUnavailableStore)
		loaded = []core.Note{}
	case !found && s.seed && !s.loaded:
		// Only a never-written store is seeded; an emptied one stays empty.
		loaded = notes.SampleNotes(s.now())
		s.logger.Info("seeding sample notes", "count", len(loaded))
		if s.persistent {
			if err := s.store.Save(ctx, loaded); err != nil {
				s.logger.Warn("failed to persist sample notes", "error", err)
				s.warn(WarnSeedNotSaved)
			}
		}
	}

	s.notes = loaded
	s.categories = s.store.LoadCategories(ctx)
	s.loaded = true
	s.logger.Debug("loaded", "notes", len(s.notes), "persistent", s.persistent)
	return nil
}

// Reload re-reads the collection, typically after an external change.
// Unlike Load it reports storage errors and keeps the current state on failure.
func (s *Service) Reload(ctx context.Context) error {
	loaded, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = loaded
	s.categories = s.store.LoadCategories(ctx)
	s.logger.Debug("reloaded", "notes", len(loaded))
	return nil
}

func (s *Service) warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

// Warnings returns the non-fatal problems met by the last Load.
func (s *Service) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.warnings)
}

// Persistent reports whether the last Load found a writable store.
func (s *Service) Persistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistent
}

// Create validates d, appends a new note and persists the collection.
// Overrides apply after d, e.g. notes.WithFavorite to create a favorite in one save.
func (s *Service) Create(ctx context.Context, d core.Draft, overrides ...notes.Override) (core.Note, error) {
	if err := notes.ValidateErr(d); err != nil {
		return core.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := notes.New(s.now(), append([]notes.Override{notes.WithDraft(d)}, overrides...)...)
	next := append(cloneAll(s.notes), n)
	if err := s.commit(ctx, next); err != nil {
		return core.Note{}, err
	}
	s.logger.Info("note created", "id", n.ID)
	return n.Clone(), nil
}

// Update replaces the editable fields of note id with d.
func (s *Service) Update(ctx context.Context, id string, d core.Draft) (core.Note, error) {
	if err := notes.ValidateErr(d); err != nil {
		return core.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	next := cloneAll(s.notes)
	next[i] = notes.Edit(next[i], d, s.now())
	if err := s.commit(ctx, next); err != nil {
		return core.Note{}, err
	}
	s.logger.Info("note updated", "id", id)
	return next[i].Clone(), nil
}

// ToggleFavorite flips the favorite flag of note id.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	next := cloneAll(s.notes)
	next[i] = notes.ToggleFavorite(next[i], s.now())
	if err := s.commit(ctx, next); err != nil {
		return core.Note{}, err
	}
	s.logger.Info("favorite toggled", "id", id, "favorite", next[i].IsFavorite)
	return next[i].Clone(), nil
}

// Delete removes note id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}
	next := slices.Delete(cloneAll(s.notes), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("%w: %w", core.ErrDeleteFailed, err)
	}
	s.logger.Info("note deleted", "id", id)
	return nil
}

// Replace swaps the whole collection for incoming, e.g. from an import.
// Every note must be valid and IDs must be unique.
func (s *Service) Replace(ctx context.Context, incoming []core.Note) error {
	var msgs []string
	seen := make(map[string]bool, len(incoming))
	next := make([]core.Note, 0, len(incoming))
	for i, n := range incoming {
		if err := notes.ValidateNote(n); err != nil {
			var verr *core.ValidationError
			if errors.As(err, &verr) {
				for _, m := range verr.Messages {
					msgs = append(msgs, fmt.Sprintf("note %d: %s", i+1, m))
				}
			}
			continue
		}
		if seen[n.ID] {
			msgs = append(msgs, fmt.Sprintf("note %d: duplicate id %s", i+1, n.ID))
			continue
		}
		seen[n.ID] = true
		n = n.Clone()
		n.Tags = notes.NormalizeTags(n.Tags)
		next = append(next, n)
	}
	if len(msgs) > 0 {
		return &core.ValidationError{Messages: msgs}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("collection replaced", "count", len(next))
	return nil
}

// commit persists next and adopts it only after the save succeeds.
// Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next []core.Note) error {
	if err := s.store.Save(ctx, next); err != nil {
		s.logger.Error("save failed", "error", err)
		return err
	}
	s.notes = next
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n core.Note) bool { return n.ID == id })
}

func cloneAll(in []core.Note) []core.Note {
	out := make([]core.Note, len(in))
	for i, n := range in {
		out[i] = n.Clone()
	}
	return out
}

// Get returns note id.
func (s *Service) Get(id string) (core.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.notes[i].Clone(), nil
	}
	return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
}

// Notes returns the full collection in stored order.
func (s *Service) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.notes)
}

func (s *Service) SetFilters(f core.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.Tags = slices.Clone(f.Tags)
	s.filters = f
}

func (s *Service) Filters() core.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.filters
	f.Tags = slices.Clone(f.Tags)
	return f
}

func (s *Service) SetSort(opt core.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = opt
}

func (s *Service) SortOption() core.SortOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// Visible returns the collection after the active filters and sort.
func (s *Service) Visible() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.SortLocale(query.Filter(s.notes, s.filters), s.sort, s.locale)
}

// Stats summarizes the full collection, ignoring filters.
func (s *Service) Stats() core.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.ComputeStats(s.notes, s.now())
}

// Tags returns every distinct tag in the collection, sorted.
func (s *Service) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.UniqueTags(s.notes)
}

// Categories returns the recognized categories.
func (s *Service) Categories() []core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// Watch reports changes to the stored collection made by any writer.
// The returned channel is buffered and closes when ctx is done.
// Consumers decide whether to Reload.
func (s *Service) Watch(ctx context.Context) (<-chan core.Event, error) {
	w, ok := s.store.KV().(core.Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	src, err := w.Watch(ctx, s.store.NotesKey())
	if err != nil {
		return nil, err
	}

	out := make(chan core.Event, s.eventBufferSize)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-src:
				if !ok {
					return nil
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watch relay failed", "error", err)
	}))
	return out, nil
}

// Close releases the underlying store when it holds resources.
func (s *Service) Close() error {
	if c, ok := s.store.KV().(core.Closer); ok {
		return c.Close()
	}
	return nil
}
