package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quire/pkg/core"
)

// DebounceWindow coalesces the burst of notifications a single write produces.
const DebounceWindow = 50 * time.Millisecond

// Watch emits an event whenever a key matching pattern (a doublestar glob over
// key names, "" meaning every key) changes on disk, whoever wrote it.
// The channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	keys, _ := s.Keys()
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	events := make(chan core.Event)
	w := &watchWorker{
		store:     s,
		pattern:   pattern,
		watcher:   watcher,
		events:    events,
		known:     known,
		debouncer: newDebouncer(DebounceWindow),
	}

	s.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		s.reportError(fmt.Errorf("watcher failed: %w", err))
	}))
	return events, nil
}

type watchWorker struct {
	store     *Store
	pattern   string
	watcher   *fsnotify.Watcher
	events    chan core.Event
	known     map[string]bool
	debouncer *debouncer
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.store.config.Logger
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("watcher panic: %v", r)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
		w.debouncer.stopAndWait(5 * time.Second)
		close(w.events)
		w.store.setWatcherActive(false)
	}()
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.reportError(wErr)
		}
	}
}

func (w *watchWorker) process(ctx context.Context, event fsnotify.Event) {
	key := filepath.Base(event.Name)
	if isTempFile(key) {
		return
	}
	if match, _ := doublestar.Match(w.pattern, key); !match {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
		if w.known[key] {
			// Atomic replace surfaces as a create of an existing key.
			eType = core.EventModify
		}
		w.known[key] = true
	case event.Has(fsnotify.Write):
		eType = core.EventModify
		w.known[key] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
		delete(w.known, key)
	default:
		return
	}

	w.store.config.Logger.Debug("key changed", "key", key, "type", eType)
	w.store.recordEvent()
	w.debouncer.add(core.Event{
		Type:      eType,
		Key:       key,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (s *Store) reportError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	s.config.Logger.Error("fs watcher error", "error", err)
}

// debouncer holds each key's event for a short window, folding later events
// for the same key into it.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingEvent
	stopped bool
	wg      sync.WaitGroup
}

type pendingEvent struct {
	event core.Event
	timer *time.Timer
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		pending: make(map[string]*pendingEvent),
	}
}

func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if p, ok := d.pending[e.Key]; ok {
		p.event = mergeEvents(p.event, e)
		if p.timer.Stop() {
			p.timer.Reset(d.window)
		}
		return
	}

	p := &pendingEvent{event: e}
	d.pending[e.Key] = p
	d.wg.Add(1)
	p.timer = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		ev := p.event
		if d.pending[ev.Key] == p {
			delete(d.pending, ev.Key)
		}
		d.mu.Unlock()
		emit(ev)
	})
}

// stopAndWait drops pending events and waits for in-flight emits to return.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, p := range d.pending {
		if p.timer.Stop() {
			d.wg.Done()
		}
		delete(d.pending, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}

func mergeEvents(prev, next core.Event) core.Event {
	switch {
	case prev.Type == core.EventCreate && next.Type == core.EventModify:
		next.Type = core.EventCreate
	case prev.Type == core.EventDelete && next.Type == core.EventCreate:
		next.Type = core.EventModify
	}
	return next
}
