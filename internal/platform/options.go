package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// Adapter names accepted by WithAdapter.
const (
	AdapterFS     = "fs"
	AdapterSQLite = "sqlite"
	AdapterMemory = "memory"
)

// options holds the internal configuration for a Quire store and service.
type options struct {
	kv      core.KV
	logger  *slog.Logger
	adapter string
	format  string
	clock   func() time.Time
	config  map[string]any
}

// Option defines a functional option for configuring Quire.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: AdapterFS,
		format:  "json",
		config:  make(map[string]any),
	}
}

func parseOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithMustExist ensures the store directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKV injects a custom storage adapter. The named adapter is then skipped.
func WithKV(kv core.KV) Option {
	return func(o *options) {
		o.kv = kv
	}
}

// WithAdapter selects the storage adapter by name ("fs", "sqlite" or "memory").
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithStoreDir sets the hidden directory holding the store (default ".quire").
func WithStoreDir(name string) Option {
	return func(o *options) {
		o.config["store_dir"] = name
	}
}

// WithFormat selects the blob encoding ("json" or "yaml").
func WithFormat(name string) Option {
	return func(o *options) {
		o.format = name
	}
}

// WithSeed controls sample-note seeding of an empty store. Enabled by default.
func WithSeed(seed bool) Option {
	return func(o *options) {
		o.config["seed"] = seed
	}
}

// WithEventBuffer sets the size of the Watch event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithClock overrides the service time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the fs watcher.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}

// WithReadOnly enables read-only mode.
// Writes return core.ErrReadOnly, no directory is created,
// and the dev sandbox is bypassed (the real store is read).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true) the store is re-rooted into a temporary directory.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.config["dev_safety"] = enabled
	}
}

func (o *options) flag(key string, def bool) bool {
	if v, ok := o.config[key].(bool); ok {
		return v
	}
	return def
}
