package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/quire/pkg/adapters/fs"
	"github.com/aretw0/quire/pkg/core"
)

func nextEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		if !ok {
			t.Fatal("events channel closed")
		}
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return core.Event{}
}

func TestStore_Watch(t *testing.T) {
	s := newTestStore(t, fs.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx, "notes.*")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Unmatched keys are filtered out.
	if err := s.Put(ctx, "categories.json", []byte("[]")); err != nil {
		t.Fatal(err)
	}

	if err := s.Put(ctx, "notes.json", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	e := nextEvent(t, events)
	if e.Key != "notes.json" || e.Type != core.EventCreate {
		t.Errorf("expected CREATE notes.json, got %s", e)
	}

	if err := s.Put(ctx, "notes.json", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatal(err)
	}
	e = nextEvent(t, events)
	if e.Key != "notes.json" || e.Type != core.EventModify {
		t.Errorf("expected MODIFY notes.json, got %s", e)
	}

	if err := s.Delete(ctx, "notes.json"); err != nil {
		t.Fatal(err)
	}
	e = nextEvent(t, events)
	if e.Key != "notes.json" || e.Type != core.EventDelete {
		t.Errorf("expected DELETE notes.json, got %s", e)
	}

	cancel()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after cancel")
		}
	}
}

func TestStore_WatchInvalidPattern(t *testing.T) {
	s := newTestStore(t, fs.Config{})
	if _, err := s.Watch(context.Background(), "[unclosed"); err == nil {
		t.Error("expected invalid pattern error")
	}
}
