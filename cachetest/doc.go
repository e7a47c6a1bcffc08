// Package cachetest provides reusable contract tests for ttlcache.Store implementations.
//
// Example pattern:
//
//	func TestMyStoreContract(t *testing.T) {
//		store := newMyStore(t)
//		cachetest.RunStoreContract(t, store, cachetest.Options{CaseName: t.Name()})
//	}
//
// Stores shared between tests should pass SkipFlush so the suite does not wipe
// entries it did not write.
package cachetest
