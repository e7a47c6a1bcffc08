package ttlcache

import (
	gocache "github.com/patrickmn/go-cache"
)

// memoryStore keeps entries in a go-cache instance with go-cache's own expiry and
// janitor disabled; expiry is decided by Cache against its clock.
type memoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore returns the in-process store used by default.
// @group Stores
//
// Example: explicit memory store
//
//	c, _ := ttlcache.New(ttlcache.WithStore(ttlcache.NewMemoryStore()))
//	fmt.Println(c.Driver()) // memory
func NewMemoryStore() Store {
	return &memoryStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *memoryStore) Driver() Driver {
	return DriverMemory
}

func (s *memoryStore) Get(key string) (Entry, bool) {
	item, ok := s.cache.Get(key)
	if !ok {
		return Entry{}, false
	}
	entry, ok := item.(Entry)
	if !ok {
		return Entry{}, false
	}
	return entry, true
}

func (s *memoryStore) Set(key string, entry Entry) {
	s.cache.Set(key, entry, gocache.NoExpiration)
}

func (s *memoryStore) Delete(key string) {
	s.cache.Delete(key)
}

func (s *memoryStore) Flush() {
	s.cache.Flush()
}

func (s *memoryStore) Len() int {
	return s.cache.ItemCount()
}

func (s *memoryStore) Range(fn func(key string, entry Entry) bool) {
	for key, item := range s.cache.Items() {
		entry, ok := item.Object.(Entry)
		if !ok {
			continue
		}
		if !fn(key, entry) {
			return
		}
	}
}
