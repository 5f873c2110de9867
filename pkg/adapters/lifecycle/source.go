// Package lifecycle turns quire change feeds into a lifecycle.Source that
// reloads the collection on every change and reports the outcome.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/quire/pkg/core"
)

// Reloader is the part of the note controller a reload source drives.
type Reloader interface {
	Reload(ctx context.Context) error
	Stats() core.Stats
}

// ReloadEvent reports one change and the collection it left behind.
type ReloadEvent struct {
	Change core.Event
	Notes  int   // total after the reload; stale when Err is set
	Err    error // reload failure, the previous collection is kept
}

func (e ReloadEvent) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (reload failed: %v)", e.Change, e.Err)
	}
	return fmt.Sprintf("%s (%d notes)", e.Change, e.Notes)
}

type reloadSource struct {
	changes <-chan core.Event
	target  Reloader
	out     chan lifecycle.Event
}

// NewSource reloads target for each change read from changes and emits a
// ReloadEvent per change. A failed reload is reported, not fatal.
// The output channel closes when changes closes or the Start context ends.
func NewSource(changes <-chan core.Event, target Reloader) lifecycle.Source {
	return &reloadSource{
		changes: changes,
		target:  target,
		out:     make(chan lifecycle.Event),
	}
}

func (s *reloadSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *reloadSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case change, ok := <-s.changes:
				if !ok {
					return nil
				}
				e := ReloadEvent{Change: change}
				if err := s.target.Reload(ctx); err != nil {
					e.Err = err
				}
				e.Notes = s.target.Stats().Total
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
