package ttlcache

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goforj/ttlcache/timeunit"
	"github.com/rs/zerolog"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := (Config{}).withDefaults()

	if cfg.DefaultTTL != DefaultTTLDuration || cfg.DefaultTTLUnit != DefaultTTLUnit {
		t.Fatalf("unexpected default ttl: %v %s", cfg.DefaultTTL, cfg.DefaultTTLUnit)
	}
	if cfg.Clock == nil {
		t.Fatalf("expected default clock")
	}
	if cfg.Store == nil || cfg.Store.Driver() != DriverMemory {
		t.Fatalf("expected default memory store")
	}
	if cfg.Logger == nil {
		t.Fatalf("expected default logger")
	}
	if cfg.SweepInterval != 0 {
		t.Fatalf("expected sweeper off by default")
	}
}

func TestConfigWithDefaultsPreservesExplicitValues(t *testing.T) {
	store := NewMemoryStore()
	clock := newStepClock()
	logger := zerolog.New(nil)
	cfg := (Config{
		DefaultTTL:     30,
		DefaultTTLUnit: timeunit.Second,
		SweepInterval:  time.Minute,
		Clock:          clock,
		Store:          store,
		Logger:         &logger,
	}).withDefaults()

	if cfg.DefaultTTL != 30 || cfg.DefaultTTLUnit != timeunit.Second {
		t.Fatalf("default ttl overwritten: %v %s", cfg.DefaultTTL, cfg.DefaultTTLUnit)
	}
	if cfg.SweepInterval != time.Minute {
		t.Fatalf("sweep interval overwritten: %s", cfg.SweepInterval)
	}
	if cfg.Clock != clock || cfg.Store != store || cfg.Logger != &logger {
		t.Fatalf("explicit dependencies overwritten")
	}
}

func TestConfigWithDefaultsFillsMissingUnit(t *testing.T) {
	cfg := (Config{DefaultTTL: 3}).withDefaults()
	if cfg.DefaultTTL != 3 || cfg.DefaultTTLUnit != timeunit.Minute {
		t.Fatalf("expected 3 minutes, got %v %s", cfg.DefaultTTL, cfg.DefaultTTLUnit)
	}
}

func TestConfigWithDefaultsKeepsZeroDurationWithUnit(t *testing.T) {
	// An explicit unit means the caller chose the duration too.
	if _, err := NewWithConfig(Config{DefaultTTLUnit: timeunit.Hour}); !errors.Is(err, ErrInvalidTTL) {
		t.Fatalf("expected ErrInvalidTTL, got %v", err)
	}
}

func TestNewWithConfigRejectsNegativeSweepInterval(t *testing.T) {
	_, err := NewWithConfig(Config{SweepInterval: -time.Second})
	if err == nil || !strings.Contains(err.Error(), "negative sweep interval") {
		t.Fatalf("expected negative sweep interval error, got %v", err)
	}
}

func TestNewAppliesOptionsInOrder(t *testing.T) {
	c, err := New(
		WithDefaultTTL(1, timeunit.Minute),
		WithDefaultTTL(2, timeunit.Hour),
	)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if c.DefaultTTL() != 2*time.Hour {
		t.Fatalf("expected last option to win, got %s", c.DefaultTTL())
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL", "90")
	t.Setenv("TTLCACHE_DEFAULT_UNIT", "seconds")
	t.Setenv("TTLCACHE_SWEEP_INTERVAL", "30s")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config from env failed: %v", err)
	}
	if cfg.DefaultTTL != 90 || cfg.DefaultTTLUnit != timeunit.Second || cfg.SweepInterval != 30*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	c, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new with config failed: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if c.DefaultTTL() != 90*time.Second {
		t.Fatalf("expected 90s default, got %s", c.DefaultTTL())
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_TTL", "")
	t.Setenv("TTLCACHE_DEFAULT_UNIT", "")
	t.Setenv("TTLCACHE_SWEEP_INTERVAL", "")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config from env failed: %v", err)
	}
	if cfg.DefaultTTL != DefaultTTLDuration || cfg.DefaultTTLUnit != DefaultTTLUnit || cfg.SweepInterval != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigFromEnvRejectsUnknownUnit(t *testing.T) {
	t.Setenv("TTLCACHE_DEFAULT_UNIT", "fortnight")
	if _, err := ConfigFromEnv(); !errors.Is(err, timeunit.ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}
