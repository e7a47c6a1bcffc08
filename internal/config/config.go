package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goforj/ttlcache/timeunit"
)

const (
	defaultTTL         = 10
	defaultServiceName = "ttlcache"
	defaultLogLevel    = "info"
)

type CacheConfig struct {
	DefaultTTL    float64
	DefaultUnit   timeunit.Unit
	SweepInterval time.Duration
}

type LogConfig struct {
	ServiceName string
	Level       string
}

type TelemetryConfig struct {
	ServiceName  string
	CollectorURL string
	MetricsAddr  string
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func convertStringToFloat(s string, key string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("error initializing config with key: %s, err: %v", key, err)
	}
	return f, nil
}

func GetCacheConfig() (*CacheConfig, error) {
	cfg := &CacheConfig{
		DefaultTTL:  defaultTTL,
		DefaultUnit: timeunit.Minute,
	}

	if v := env("TTLCACHE_DEFAULT_TTL"); v != "" {
		ttl, err := convertStringToFloat(v, "TTLCACHE_DEFAULT_TTL")
		if err != nil {
			return nil, err
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("KEY: TTLCACHE_DEFAULT_TTL must be positive, got %v", ttl)
		}
		cfg.DefaultTTL = ttl
	}

	if v := env("TTLCACHE_DEFAULT_UNIT"); v != "" {
		unit, err := timeunit.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("KEY: TTLCACHE_DEFAULT_UNIT is invalid: %w", err)
		}
		cfg.DefaultUnit = unit
	}

	if v := env("TTLCACHE_SWEEP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("error initializing config with key: TTLCACHE_SWEEP_INTERVAL, err: %v", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("KEY: TTLCACHE_SWEEP_INTERVAL must not be negative")
		}
		cfg.SweepInterval = d
	}

	return cfg, nil
}

func GetLogConfig() (*LogConfig, error) {
	sn := env("SERVICE_NAME")
	if sn == "" {
		sn = defaultServiceName
	}
	lvl := strings.ToLower(env("LOG_LEVEL"))
	if lvl == "" {
		lvl = defaultLogLevel
	}
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return nil, fmt.Errorf("KEY: LOG_LEVEL is invalid: %q", lvl)
	}
	return &LogConfig{
		ServiceName: sn,
		Level:       lvl,
	}, nil
}

// GetTelemetryConfig reads the OTLP collector endpoint and the Prometheus listen
// address. Empty values switch the matching export off.
func GetTelemetryConfig() *TelemetryConfig {
	sn := env("SERVICE_NAME")
	if sn == "" {
		sn = defaultServiceName
	}
	return &TelemetryConfig{
		ServiceName:  sn,
		CollectorURL: env("OTEL_COLLECTOR_URL"),
		MetricsAddr:  env("METRICS_ADDR"),
	}
}
