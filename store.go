package ttlcache

import "time"

// Entry is a stored value together with the instant it stops being visible.
type Entry struct {
	Value     any
	ExpiresAt time.Time
}

// expiredAt reports whether the entry is no longer visible at now.
// An entry is gone from its expiration instant onwards.
func (e Entry) expiredAt(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Store is the physical key/entry mapping behind a Cache.
//
// Stores only hold entries; they never judge expiry. Cache serialises every call,
// so implementations need only be safe for individual operations.
type Store interface {
	Driver() Driver
	Get(key string) (Entry, bool)
	Set(key string, entry Entry)
	Delete(key string)
	Flush()
	Len() int
	// Range calls fn for every stored entry until fn returns false.
	Range(fn func(key string, entry Entry) bool)
}
