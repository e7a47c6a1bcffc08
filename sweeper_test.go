package ttlcache

import (
	"testing"
	"time"
)

func TestSweeperPurgesExpiredEntries(t *testing.T) {
	clock := newStepClock()
	c, err := New(WithClock(clock), WithSweepInterval(5*time.Millisecond))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if err := c.SetFor("short", "v", time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	c.Set("long", "v")
	clock.Advance(time.Second)

	deadline := time.Now().Add(2 * time.Second)
	for c.Size() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("sweeper did not purge expired entry; size=%d", c.Size())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if _, ok := c.Get("long"); !ok {
		t.Fatalf("expected live entry to survive the sweep")
	}
}

func TestSweeperStopsOnClose(t *testing.T) {
	clock := newStepClock()
	c, err := New(WithClock(clock), WithSweepInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}

	if err := c.SetFor("k", "v", time.Second); err != nil {
		t.Fatalf("set after close failed: %v", err)
	}
	clock.Advance(time.Second)
	time.Sleep(10 * time.Millisecond)
	if c.Size() != 1 {
		t.Fatalf("expected no sweeping after close, size=%d", c.Size())
	}
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected lazy expiry to keep working after close")
	}
}

func TestCloseWithoutSweeper(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected cache usable after close")
	}
}
