// Package memory implements core.KV in process memory.
// It backs tests and sessions where persistence is disabled.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/quire/pkg/core"
)

// Store is an in-memory core.KV.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// Fault injection, keyed by operation ("get", "put", "delete").
	faults map[string]error
}

// New creates an empty store.
func New() *Store {
	return &Store{
		data:   make(map[string][]byte),
		faults: make(map[string]error),
	}
}

// Fail makes every subsequent call of op return err. A nil err clears the fault.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.faults["get"]; err != nil {
		return nil, err
	}
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faults["put"]; err != nil {
		return err
	}
	s.data[key] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.faults["delete"]; err != nil {
		return err
	}
	delete(s.data, key)
	return nil
}

func (s *Store) Initialize(ctx context.Context) error { return nil }

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

var _ core.KV = (*Store)(nil)
