package ttlcache

import (
	"time"

	"github.com/goforj/ttlcache/timeunit"
	"github.com/rs/zerolog"
)

// Option mutates Config when constructing a Cache.
type Option func(Config) Config

// WithDefaultTTL sets the TTL used by Set when no per-entry TTL is given.
func WithDefaultTTL(duration float64, unit timeunit.Unit) Option {
	return func(cfg Config) Config {
		cfg.DefaultTTL = duration
		cfg.DefaultTTLUnit = unit
		return cfg
	}
}

// WithClock overrides the time source, mostly for tests.
func WithClock(clock Clock) Option {
	return func(cfg Config) Config {
		cfg.Clock = clock
		return cfg
	}
}

// WithStore swaps the backing store.
func WithStore(store Store) Option {
	return func(cfg Config) Config {
		cfg.Store = store
		return cfg
	}
}

// WithObserver attaches an observer to receive operation events.
func WithObserver(o Observer) Option {
	return func(cfg Config) Config {
		cfg.Observer = o
		return cfg
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg Config) Config {
		cfg.Logger = &logger
		return cfg
	}
}

// WithSweepInterval enables the background purge of expired entries.
func WithSweepInterval(interval time.Duration) Option {
	return func(cfg Config) Config {
		cfg.SweepInterval = interval
		return cfg
	}
}
