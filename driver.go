package ttlcache

// Driver identifies the store backend.
type Driver string

const (
	DriverMemory Driver = "memory"
)
