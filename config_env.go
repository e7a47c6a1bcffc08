package ttlcache

import (
	"github.com/goforj/ttlcache/internal/config"
)

// ConfigFromEnv builds a Config from TTLCACHE_DEFAULT_TTL, TTLCACHE_DEFAULT_UNIT and
// TTLCACHE_SWEEP_INTERVAL. Unset variables fall back to the package defaults.
// Clock, Store, Observer and Logger are left empty for the caller to fill.
func ConfigFromEnv() (Config, error) {
	cc, err := config.GetCacheConfig()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DefaultTTL:     cc.DefaultTTL,
		DefaultTTLUnit: cc.DefaultUnit,
		SweepInterval:  cc.SweepInterval,
	}, nil
}
