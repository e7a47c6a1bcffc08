package ttlcache

import (
	"time"

	"github.com/goforj/ttlcache/timeunit"
	"github.com/rs/zerolog"
)

const (
	// DefaultTTLDuration and DefaultTTLUnit form the default TTL of 10 minutes.
	DefaultTTLDuration = 10
	DefaultTTLUnit     = timeunit.Minute
)

// Config controls how a Cache is constructed.
type Config struct {
	// DefaultTTL is applied to Set calls without a TTL, counted in DefaultTTLUnit.
	// Leaving both DefaultTTL and DefaultTTLUnit empty selects 10 minutes.
	DefaultTTL     float64
	DefaultTTLUnit timeunit.Unit

	// SweepInterval enables a background purge of expired entries when > 0.
	// Off by default: expired entries are otherwise removed only when read,
	// and Size keeps counting them until then.
	SweepInterval time.Duration

	Clock    Clock
	Store    Store
	Observer Observer
	Logger   *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.DefaultTTL == 0 && c.DefaultTTLUnit == "" {
		c.DefaultTTL = DefaultTTLDuration
	}
	if c.DefaultTTLUnit == "" {
		c.DefaultTTLUnit = DefaultTTLUnit
	}
	if c.Clock == nil {
		c.Clock = SystemClock
	}
	if c.Store == nil {
		c.Store = NewMemoryStore()
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	return c
}
