package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string     `json:"path"`
	ReadOnly      bool       `json:"read_only"`
	MustExist     bool       `json:"must_exist"`
	Keys          []string   `json:"keys"`
	Watchers      int        `json:"watchers"`
	WatcherActive bool       `json:"watcher_active"`
	LastEvent     *time.Time `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	keys, _ := s.Keys()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{
		Path:          s.Path,
		ReadOnly:      s.config.ReadOnly,
		MustExist:     s.config.MustExist,
		Keys:          keys,
		Watchers:      s.watchers,
		WatcherActive: s.watchers > 0,
		LastEvent:     s.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "kv-fs"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.watchers++
	} else if s.watchers > 0 {
		s.watchers--
	}
}

func (s *Store) recordEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastEvent = &now
}
