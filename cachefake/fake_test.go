package cachefake

import (
	"testing"
	"time"

	"github.com/goforj/ttlcache"
	"github.com/goforj/ttlcache/cachetest"
	"github.com/goforj/ttlcache/timeunit"
)

func TestFakeCountsStoreCalls(t *testing.T) {
	f := MustNew(t)
	c := f.Cache()

	c.Set("a", 1)
	c.Set("a", 2)
	_, _ = c.Get("a")
	_, _ = c.Get("b")
	c.Delete("a")
	c.Clear()
	_ = c.Size()

	f.AssertCalled(t, OpSet, "a", 2)
	f.AssertCalled(t, OpGet, "b", 1)
	f.AssertCalled(t, OpDelete, "a", 1)
	f.AssertNotCalled(t, OpDelete, "b")
	f.AssertTotal(t, OpFlush, 1)
	f.AssertTotal(t, OpLen, 1)

	f.Reset()
	f.AssertTotal(t, OpSet, 0)
	if f.Total(OpGet) != 0 {
		t.Fatalf("expected counts cleared")
	}
}

func TestFakeClockDrivesExpiry(t *testing.T) {
	f := MustNew(t, ttlcache.WithDefaultTTL(30, timeunit.Second))
	c := f.Cache()

	if !f.Clock().Now().Equal(Epoch) {
		t.Fatalf("expected clock at epoch, got %s", f.Clock().Now())
	}

	c.Set("k", "v")
	f.Advance(29 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before ttl")
	}
	f.Clock().Set(Epoch.Add(30 * time.Second))
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss at ttl")
	}
}

func TestFakeNewRejectsInvalidOptions(t *testing.T) {
	if _, err := New(ttlcache.WithDefaultTTL(-1, timeunit.Minute)); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}

func TestCountingStoreContract(t *testing.T) {
	f := MustNew(t)
	cachetest.RunStoreContract(t, f.Cache().Store(), cachetest.Options{})
	if f.Total(OpRange) != 2 {
		t.Fatalf("expected contract to range twice, got %d", f.Total(OpRange))
	}
}
