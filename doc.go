// Package ttlcache is a process-local key/value cache whose entries expire after a
// time-to-live.
//
// Every entry is stamped with an expiration instant when it is written: now plus
// either the cache's default TTL or a per-entry override. Expiry is lazy. An entry
// whose instant has been reached is invisible to Get and is removed the first time
// Get observes it; until then it still counts towards Size. A background sweeper
// can be enabled with WithSweepInterval.
//
// Initialize gives access to one shared cache per process, mirroring a singleton:
// repeated calls return the same instance and only change the default TTL applied
// to future writes. New builds isolated instances, which is what tests and scoped
// components should use.
//
// TTLs are expressed as a number of timeunit.Unit values (seconds, minutes, hours,
// days). A TTL that resolves to zero or less is rejected with ErrInvalidTTL before
// anything is written.
package ttlcache
