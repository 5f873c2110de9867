package service

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// DefaultEventBuffer is the capacity of the channel returned by Watch.
const DefaultEventBuffer = 100

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used for timestamps and stats.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed controls whether an empty store is seeded with sample notes on first Load.
func WithSeed(seed bool) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithEventBuffer sets the buffer size of the Watch channel.
func WithEventBuffer(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.eventBufferSize = size
		}
	}
}

// WithLocale sets the collation locale for the title sort.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) {
		s.locale = tag
	}
}
