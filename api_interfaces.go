package ttlcache

import (
	"time"

	"github.com/goforj/ttlcache/timeunit"
)

// CoreAPI exposes cache metadata and configuration.
type CoreAPI interface {
	Driver() Driver
	DefaultTTL() time.Duration
	Initialize(duration float64, unit timeunit.Unit) (*Cache, error)
}

// ReadAPI exposes read-oriented cache operations.
type ReadAPI interface {
	Get(key string) (any, bool)
	Size() int
	LiveSize() int
}

// WriteAPI exposes write and invalidation operations.
type WriteAPI interface {
	Set(key string, value any)
	SetWithTTL(key string, value any, duration float64, unit timeunit.Unit) error
	SetFor(key string, value any, ttl time.Duration) error
	Delete(key string)
	Clear()
	DeleteExpired() int
}

// RememberAPI exposes memoization helpers.
type RememberAPI interface {
	Remember(key string, fn func() (any, error)) (any, error)
	RememberWithTTL(key string, duration float64, unit timeunit.Unit, fn func() (any, error)) (any, error)
}

// CacheAPI is the composed application-facing interface for Cache.
type CacheAPI interface {
	CoreAPI
	ReadAPI
	WriteAPI
	RememberAPI
}

var _ CacheAPI = (*Cache)(nil)
