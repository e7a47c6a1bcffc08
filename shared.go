package ttlcache

import (
	"sync"

	"github.com/goforj/ttlcache/timeunit"
)

var (
	sharedMu sync.Mutex
	shared   *Cache
)

// Initialize returns the process-wide shared cache, creating it on the first
// successful call. Later calls keep the same store and only replace the default
// TTL used by future Set calls. An invalid TTL leaves everything untouched.
//
// Code that wants isolation, tests in particular, should use New instead.
// @group Shared
//
// Example: shared cache
//
//	a, _ := ttlcache.Initialize(10, timeunit.Minute)
//	b, _ := ttlcache.Initialize(5, timeunit.Minute)
//	a.Set("k", "v")
//	v, _ := b.Get("k")
//	fmt.Println(a == b, v) // true v
func Initialize(duration float64, unit timeunit.Unit) (*Cache, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared != nil {
		return shared.Initialize(duration, unit)
	}
	// Config defaults would fill an empty unit; the first call must reject
	// exactly what later calls reject.
	if _, err := resolveTTL(duration, unit); err != nil {
		return nil, err
	}
	c, err := New(WithDefaultTTL(duration, unit))
	if err != nil {
		return nil, err
	}
	shared = c
	return shared, nil
}

// InitializeDefault is Initialize with the 10 minute default TTL.
// @group Shared
func InitializeDefault() (*Cache, error) {
	return Initialize(DefaultTTLDuration, DefaultTTLUnit)
}
