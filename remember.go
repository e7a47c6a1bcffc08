package ttlcache

import (
	"errors"
	"fmt"
	"time"

	"github.com/goforj/ttlcache/timeunit"
)

var (
	// ErrNilCallback is returned by the Remember helpers when fn is nil.
	ErrNilCallback = errors.New("ttlcache: remember requires a callback")
	// ErrValueType is returned by RememberValue when the cached value is not a T.
	ErrValueType = errors.New("ttlcache: cached value has unexpected type")
)

// Remember returns the value under key, or computes it with fn and stores it with
// the default TTL. Errors from fn are returned and nothing is stored.
// The lock is not held while fn runs, so concurrent callers may both compute.
// @group Remember
//
// Example: memoize a lookup
//
//	c, _ := ttlcache.New()
//	v, err := c.Remember("settings:mode", func() (any, error) {
//		return "on", nil
//	})
//	fmt.Println(err == nil, v) // true on
func (c *Cache) Remember(key string, fn func() (any, error)) (any, error) {
	start := time.Now()
	if v, ok := c.Get(key); ok {
		c.observe(OpRemember, key, true, nil, start)
		return v, nil
	}
	if fn == nil {
		c.observe(OpRemember, key, false, ErrNilCallback, start)
		return nil, ErrNilCallback
	}
	v, err := fn()
	if err != nil {
		c.observe(OpRemember, key, false, err, start)
		return nil, err
	}
	c.Set(key, v)
	c.observe(OpRemember, key, false, nil, start)
	return v, nil
}

// RememberWithTTL is Remember with a per-entry TTL. The TTL is validated before
// fn is called.
// @group Remember
func (c *Cache) RememberWithTTL(key string, duration float64, unit timeunit.Unit, fn func() (any, error)) (any, error) {
	start := time.Now()
	ttl, err := resolveTTL(duration, unit)
	if err != nil {
		c.observe(OpRemember, key, false, err, start)
		return nil, err
	}
	if v, ok := c.Get(key); ok {
		c.observe(OpRemember, key, true, nil, start)
		return v, nil
	}
	if fn == nil {
		c.observe(OpRemember, key, false, ErrNilCallback, start)
		return nil, ErrNilCallback
	}
	v, err := fn()
	if err != nil {
		c.observe(OpRemember, key, false, err, start)
		return nil, err
	}
	if err := c.SetFor(key, v, ttl); err != nil {
		c.observe(OpRemember, key, false, err, start)
		return nil, err
	}
	c.observe(OpRemember, key, false, nil, start)
	return v, nil
}

// RememberValue is the typed form of Remember. A cached value of another type is
// reported as ErrValueType rather than overwritten.
// @group Remember
//
// Example: typed remember
//
//	type Settings struct{ Enabled bool }
//	c, _ := ttlcache.New()
//	s, err := ttlcache.RememberValue(c, "settings", func() (Settings, error) {
//		return Settings{Enabled: true}, nil
//	})
//	fmt.Println(err == nil, s.Enabled) // true true
func RememberValue[T any](c *Cache, key string, fn func() (T, error)) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilCallback
	}
	v, err := c.Remember(key, func() (any, error) {
		computed, err := fn()
		return computed, err
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrValueType, key, v)
	}
	return out, nil
}
