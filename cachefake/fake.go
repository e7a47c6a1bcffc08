// Package cachefake provides a deterministic cache for tests: a manual clock to
// step through expirations without sleeping, and call counting on the store.
package cachefake

import (
	"sync"
	"testing"
	"time"

	"github.com/goforj/ttlcache"
)

// Op identifies a store operation for assertions.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpDelete Op = "delete"
	OpFlush  Op = "flush"
	OpLen    Op = "len"
	OpRange  Op = "range"
)

// Epoch is the instant a new Clock starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Clock is a ttlcache.Clock that only moves when told to.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock set to Epoch.
func NewClock() *Clock {
	return &Clock{now: Epoch}
}

// Now implements ttlcache.Clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Fake bundles a cache, its manual clock and per-op call counts.
type Fake struct {
	cache  *ttlcache.Cache
	clock  *Clock
	counts map[Op]map[string]int
	mu     sync.Mutex
}

// New creates a Fake over an in-memory store. Extra options are applied after the
// fake's own clock and store, so they can change the default TTL or add observers.
func New(opts ...ttlcache.Option) (*Fake, error) {
	f := &Fake{
		clock:  NewClock(),
		counts: make(map[Op]map[string]int),
	}
	store := &countingStore{inner: ttlcache.NewMemoryStore(), onCount: f.record}
	base := []ttlcache.Option{ttlcache.WithClock(f.clock), ttlcache.WithStore(store)}
	c, err := ttlcache.New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	f.cache = c
	return f, nil
}

// MustNew is New that fails the test on error.
func MustNew(t testing.TB, opts ...ttlcache.Option) *Fake {
	t.Helper()
	f, err := New(opts...)
	if err != nil {
		t.Fatalf("cachefake: %v", err)
	}
	return f
}

// Cache returns the cache to inject into code under test.
func (f *Fake) Cache() *ttlcache.Cache { return f.cache }

// Clock returns the manual clock driving the cache.
func (f *Fake) Clock() *Clock { return f.clock }

// Advance is shorthand for Clock().Advance.
func (f *Fake) Advance(d time.Duration) { f.clock.Advance(d) }

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies key was touched by op the expected number of times.
func (f *Fake) AssertCalled(t testing.TB, op Op, key string, times int) {
	t.Helper()
	if got := f.Count(op, key); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never touched by op.
func (f *Fake) AssertNotCalled(t testing.TB, op Op, key string) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t testing.TB, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+key.
func (f *Fake) Count(op Op, key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[op][key]
}

// Total returns total calls for an op across keys.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) record(op Op, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][key]++
}

// countingStore wraps a Store to record calls.
type countingStore struct {
	inner   ttlcache.Store
	onCount func(Op, string)
}

func (s *countingStore) Driver() ttlcache.Driver { return s.inner.Driver() }

func (s *countingStore) Get(key string) (ttlcache.Entry, bool) {
	s.bump(OpGet, key)
	return s.inner.Get(key)
}

func (s *countingStore) Set(key string, entry ttlcache.Entry) {
	s.bump(OpSet, key)
	s.inner.Set(key, entry)
}

func (s *countingStore) Delete(key string) {
	s.bump(OpDelete, key)
	s.inner.Delete(key)
}

func (s *countingStore) Flush() {
	s.bump(OpFlush, "")
	s.inner.Flush()
}

func (s *countingStore) Len() int {
	s.bump(OpLen, "")
	return s.inner.Len()
}

func (s *countingStore) Range(fn func(key string, entry ttlcache.Entry) bool) {
	s.bump(OpRange, "")
	s.inner.Range(fn)
}

func (s *countingStore) bump(op Op, key string) {
	if s.onCount != nil {
		s.onCount(op, key)
	}
}
