package quire

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/quire/internal/platform"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/notes"
	"github.com/aretw0/quire/pkg/service"
)

// --- Types ---

// Service is the note controller returned by New.
type Service = service.Service

// Note is a single stored note.
type Note = core.Note

// Draft is the editable subset of a note.
type Draft = core.Draft

// --- Configuration ---

// Option defines a functional option for configuring Quire.
type Option = platform.Option

// Adapter names.
const (
	AdapterFS     = platform.AdapterFS
	AdapterSQLite = platform.AdapterSQLite
	AdapterMemory = platform.AdapterMemory
)

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithKV injects a custom storage adapter.
func WithKV(kv core.KV) Option {
	return platform.WithKV(kv)
}

// WithAdapter selects the storage adapter by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStoreDir sets the hidden store directory name (default ".quire").
func WithStoreDir(name string) Option {
	return platform.WithStoreDir(name)
}

// WithFormat selects the blob encoding ("json" or "yaml").
func WithFormat(name string) Option {
	return platform.WithFormat(name)
}

// WithSeed controls sample-note seeding of an empty store.
func WithSeed(seed bool) Option {
	return platform.WithSeed(seed)
}

// WithEventBuffer sets the size of the Watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithClock overrides the service time source.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithWatcherErrorHandler registers a callback for fs watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the `go run` / `go test` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New opens the store rooted at path and returns a loaded note service.
func New(ctx context.Context, path string, opts ...Option) (*Service, error) {
	return platform.New(ctx, path, opts...)
}

// Init opens and initializes the storage adapter only.
func Init(ctx context.Context, path string, opts ...Option) (core.KV, error) {
	return platform.Init(ctx, path, opts...)
}

// --- Helpers ---

// ParseTags splits comma/space separated user input into normalized tags.
func ParseTags(raw string) []string {
	return notes.ParseTags(raw)
}

// Validate returns one message per violated rule of d.
func Validate(d Draft) []string {
	return notes.Validate(d)
}

// --- Safety & Utils ---

// ResolveStorePath determines where the store lives based on safety rules.
func ResolveStorePath(userPath string, forceTemp bool) string {
	return platform.ResolveStorePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindRoot looks upwards from startDir for a directory holding a store.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
