package core

import "context"

// KV defines the contract for a single device-local key-value namespace.
// Adhering to this interface keeps the record store independent of the
// underlying medium (filesystem, SQLite, memory, or a future remote API).
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Initialize ensures the underlying storage is ready (directories, schema).
	Initialize(ctx context.Context) error
}

// Watchable is implemented by stores that can report external changes.
type Watchable interface {
	// Watch emits an event whenever a key matching pattern changes.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Closer is implemented by stores holding resources (e.g. a database handle).
type Closer interface {
	Close() error
}
