package ttlcache_test

import (
	"testing"

	"github.com/goforj/ttlcache"
	"github.com/goforj/ttlcache/cachetest"
)

func TestMemoryStoreContract(t *testing.T) {
	cachetest.RunStoreContract(t, ttlcache.NewMemoryStore(), cachetest.Options{})
}

func TestMemoryStoreContractSharedStore(t *testing.T) {
	store := ttlcache.NewMemoryStore()
	store.Set("other", ttlcache.Entry{Value: "kept"})

	cachetest.RunStoreContract(t, store, cachetest.Options{CaseName: "shared", SkipFlush: true})

	if e, ok := store.Get("other"); !ok || e.Value != "kept" {
		t.Fatalf("expected contract to leave foreign keys alone")
	}
}
