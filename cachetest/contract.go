package cachetest

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/goforj/ttlcache"
)

// Options configures shared store contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// SkipFlush disables the flush assertion for stores shared with other tests.
	SkipFlush bool
}

// Store is the contract exercised by RunStoreContract.
type Store = ttlcache.Store

// RunStoreContract runs a backend-agnostic store contract suite.
// The store must be empty when SkipFlush is false.
func RunStoreContract(t *testing.T, store Store, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}
	expiresAt := time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)

	if store.Driver() == "" {
		t.Fatalf("expected non-empty driver name")
	}

	// Miss.
	if _, ok := store.Get(key("missing")); ok {
		t.Fatalf("expected miss for unknown key")
	}

	// Set/Get round-trip keeps value and expiration as written.
	type payload struct{ Name string }
	store.Set(key("alpha"), ttlcache.Entry{Value: payload{Name: "ada"}, ExpiresAt: expiresAt})
	got, ok := store.Get(key("alpha"))
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if p, isPayload := got.Value.(payload); !isPayload || p.Name != "ada" {
		t.Fatalf("unexpected value: %#v", got.Value)
	}
	if !got.ExpiresAt.Equal(expiresAt) {
		t.Fatalf("unexpected expiration: %s", got.ExpiresAt)
	}

	// Stores never judge expiry themselves.
	past := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	store.Set(key("stale"), ttlcache.Entry{Value: "old", ExpiresAt: past})
	if stale, ok := store.Get(key("stale")); !ok || stale.Value != "old" {
		t.Fatalf("expected store to keep entry with past expiration; ok=%v value=%v", ok, stale.Value)
	}

	// Overwrite.
	store.Set(key("alpha"), ttlcache.Entry{Value: "replaced", ExpiresAt: expiresAt.Add(time.Hour)})
	got, ok = store.Get(key("alpha"))
	if !ok || got.Value != "replaced" || !got.ExpiresAt.Equal(expiresAt.Add(time.Hour)) {
		t.Fatalf("expected overwrite; ok=%v entry=%#v", ok, got)
	}

	// Range visits every key and honours early stop.
	seen := map[string]bool{}
	store.Range(func(k string, _ ttlcache.Entry) bool {
		seen[k] = true
		return true
	})
	for _, k := range []string{key("alpha"), key("stale")} {
		if !seen[k] {
			t.Fatalf("expected range to visit %q, saw %v", k, keys(seen))
		}
	}
	visits := 0
	store.Range(func(string, ttlcache.Entry) bool {
		visits++
		return false
	})
	if visits != 1 {
		t.Fatalf("expected range to stop after first visit, got %d", visits)
	}

	// Delete.
	before := store.Len()
	store.Delete(key("stale"))
	if _, ok := store.Get(key("stale")); ok {
		t.Fatalf("expected deleted key to be missing")
	}
	if store.Len() != before-1 {
		t.Fatalf("expected len %d after delete, got %d", before-1, store.Len())
	}
	store.Delete(key("never-set"))
	if store.Len() != before-1 {
		t.Fatalf("expected deleting an unknown key to be a no-op")
	}

	// Flush.
	if !opts.SkipFlush {
		if store.Len() != 1 {
			t.Fatalf("expected exactly one entry before flush, got %d", store.Len())
		}
		store.Flush()
		if store.Len() != 0 {
			t.Fatalf("expected empty store after flush, got %d", store.Len())
		}
		if _, ok := store.Get(key("alpha")); ok {
			t.Fatalf("expected flush to clear key")
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
