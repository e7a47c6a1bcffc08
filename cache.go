package ttlcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goforj/ttlcache/timeunit"
	"github.com/rs/zerolog"
)

// ErrInvalidTTL is returned when a TTL does not resolve to a positive duration.
var ErrInvalidTTL = errors.New("ttlcache: invalid ttl")

// Cache maps string keys to values that disappear once their TTL has elapsed.
//
// Expired entries are removed lazily, the first time a Get observes them. Size
// counts entries physically present, so it includes expired entries nobody has
// read yet. All methods are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	store      Store
	clock      Clock
	defaultTTL time.Duration
	observer   Observer
	logger     zerolog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an isolated cache. Without options it uses a 10 minute default
// TTL, an in-memory store and the system clock.
// @group Cache
//
// Example: cache with a custom default TTL
//
//	c, err := ttlcache.New(ttlcache.WithDefaultTTL(5, timeunit.Minute))
//	if err != nil {
//		return err
//	}
//	fmt.Println(c.DefaultTTL()) // 5m0s
func New(opts ...Option) (*Cache, error) {
	var cfg Config
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates an isolated cache from an explicit Config.
// @group Cache
func NewWithConfig(cfg Config) (*Cache, error) {
	cfg = cfg.withDefaults()
	ttl, err := resolveTTL(cfg.DefaultTTL, cfg.DefaultTTLUnit)
	if err != nil {
		return nil, err
	}
	if cfg.SweepInterval < 0 {
		return nil, fmt.Errorf("ttlcache: negative sweep interval %s", cfg.SweepInterval)
	}

	c := &Cache{
		store:      cfg.Store,
		clock:      cfg.Clock,
		defaultTTL: ttl,
		observer:   cfg.Observer,
		logger:     *cfg.Logger,
	}
	if cfg.SweepInterval > 0 {
		c.startSweeper(cfg.SweepInterval)
	}
	return c, nil
}

// Initialize replaces the default TTL used by future Set calls and returns c.
// Entries already stored keep their expiration instant. On error nothing changes.
// @group Cache
//
// Example: shorten the default TTL
//
//	c, _ := ttlcache.New()
//	c, err := c.Initialize(30, timeunit.Second)
//	fmt.Println(err == nil, c.DefaultTTL()) // true 30s
func (c *Cache) Initialize(duration float64, unit timeunit.Unit) (*Cache, error) {
	start := time.Now()
	ttl, err := resolveTTL(duration, unit)
	if err != nil {
		c.observe(OpInitialize, "", false, err, start)
		return nil, err
	}

	c.mu.Lock()
	previous := c.defaultTTL
	c.defaultTTL = ttl
	c.mu.Unlock()

	c.logger.Debug().
		Dur("previous_ttl", previous).
		Dur("default_ttl", ttl).
		Msg("ttlcache: default ttl updated")
	c.observe(OpInitialize, "", true, nil, start)
	return c, nil
}

// DefaultTTL returns the TTL currently applied by Set.
func (c *Cache) DefaultTTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.defaultTTL
}

// Driver reports the underlying store driver.
func (c *Cache) Driver() Driver {
	return c.store.Driver()
}

// Store returns the underlying store implementation.
func (c *Cache) Store() Store {
	return c.store
}

// Set stores value under key using the current default TTL, replacing any
// previous entry.
// @group Cache
//
// Example: set with the default TTL
//
//	c, _ := ttlcache.New()
//	c.Set("user:42", "Ada")
//	v, ok := c.Get("user:42")
//	fmt.Println(ok, v) // true Ada
func (c *Cache) Set(key string, value any) {
	start := time.Now()
	c.mu.Lock()
	c.setLocked(key, value, c.defaultTTL)
	c.mu.Unlock()
	c.observe(OpSet, key, false, nil, start)
}

// SetWithTTL stores value under key with a TTL of duration units, overriding the
// default for this entry only. The TTL must be positive.
// @group Cache
//
// Example: per-entry TTL
//
//	c, _ := ttlcache.New()
//	err := c.SetWithTTL("otp:42", "918273", 5, timeunit.Minute)
//	fmt.Println(err == nil) // true
func (c *Cache) SetWithTTL(key string, value any, duration float64, unit timeunit.Unit) error {
	start := time.Now()
	ttl, err := resolveTTL(duration, unit)
	if err != nil {
		c.observe(OpSet, key, false, err, start)
		return err
	}
	c.mu.Lock()
	c.setLocked(key, value, ttl)
	c.mu.Unlock()
	c.observe(OpSet, key, false, nil, start)
	return nil
}

// SetFor stores value under key for ttl. The TTL must be positive.
// @group Cache
func (c *Cache) SetFor(key string, value any, ttl time.Duration) error {
	start := time.Now()
	if ttl <= 0 {
		err := fmt.Errorf("%w: %s is not positive", ErrInvalidTTL, ttl)
		c.observe(OpSet, key, false, err, start)
		return err
	}
	c.mu.Lock()
	c.setLocked(key, value, ttl)
	c.mu.Unlock()
	c.observe(OpSet, key, false, nil, start)
	return nil
}

// Get returns the value stored under key. A missing key and an expired entry both
// report ok=false; an expired entry is deleted as a side effect.
// @group Cache
//
// Example: miss
//
//	c, _ := ttlcache.New()
//	_, ok := c.Get("nope")
//	fmt.Println(ok) // false
func (c *Cache) Get(key string) (any, bool) {
	start := time.Now()
	c.mu.Lock()
	entry, ok := c.store.Get(key)
	expired := ok && entry.expiredAt(c.clock.Now())
	if expired {
		c.store.Delete(key)
	}
	c.mu.Unlock()

	if expired {
		c.observe(OpExpire, key, false, nil, start)
		ok = false
	}
	c.observe(OpGet, key, ok, nil, start)
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

// Delete removes key if present.
// @group Cache
func (c *Cache) Delete(key string) {
	start := time.Now()
	c.mu.Lock()
	_, ok := c.store.Get(key)
	c.store.Delete(key)
	c.mu.Unlock()
	c.observe(OpDelete, key, ok, nil, start)
}

// Clear removes every entry. The default TTL is left as is.
// @group Cache
func (c *Cache) Clear() {
	start := time.Now()
	c.mu.Lock()
	c.store.Flush()
	c.mu.Unlock()
	c.observe(OpClear, "", true, nil, start)
}

// Size returns the number of entries physically held, including expired
// entries that have not been read since they expired.
// @group Cache
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Len()
}

// LiveSize returns the number of entries that have not expired yet.
// Unlike Get it does not purge anything.
// @group Cache
func (c *Cache) LiveSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	live := 0
	c.store.Range(func(_ string, entry Entry) bool {
		if !entry.expiredAt(now) {
			live++
		}
		return true
	})
	return live
}

// DeleteExpired purges every expired entry and returns how many were removed.
// @group Cache
func (c *Cache) DeleteExpired() int {
	start := time.Now()
	c.mu.Lock()
	now := c.clock.Now()
	var expired []string
	c.store.Range(func(key string, entry Entry) bool {
		if entry.expiredAt(now) {
			expired = append(expired, key)
		}
		return true
	})
	for _, key := range expired {
		c.store.Delete(key)
	}
	c.mu.Unlock()

	for _, key := range expired {
		c.observe(OpExpire, key, false, nil, start)
	}
	c.observe(OpSweep, "", len(expired) > 0, nil, start)
	return len(expired)
}

// Close stops the background sweeper, if any. Other methods keep working.
// Close is safe to call multiple times.
func (c *Cache) Close() error {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	c.wg.Wait()
	c.logger.Debug().Msg("ttlcache: sweeper stopped")
	return nil
}

func (c *Cache) setLocked(key string, value any, ttl time.Duration) {
	c.store.Set(key, Entry{
		Value:     value,
		ExpiresAt: c.clock.Now().Add(ttl),
	})
}

func (c *Cache) observe(op Op, key string, hit bool, err error, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.OnCacheOp(op, key, hit, err, time.Since(start))
}

// resolveTTL converts duration units into a strictly positive time.Duration.
// Positive values shorter than a nanosecond round up to one nanosecond.
func resolveTTL(duration float64, unit timeunit.Unit) (time.Duration, error) {
	ttl, err := timeunit.Duration(duration, unit)
	if errors.Is(err, timeunit.ErrOutOfRange) {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTTL, err)
	}
	if err != nil {
		return 0, err
	}
	if ttl == 0 && duration > 0 {
		ttl = time.Nanosecond
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("%w: %v %s is not positive", ErrInvalidTTL, duration, unit)
	}
	return ttl, nil
}
