package promobserver_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goforj/ttlcache"
	"github.com/goforj/ttlcache/cachefake"
	"github.com/goforj/ttlcache/promobserver"
	"github.com/goforj/ttlcache/timeunit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserverCountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := promobserver.New(reg, "test")
	require.NoError(t, err)

	fake := cachefake.MustNew(t, ttlcache.WithObserver(obs))
	c := fake.Cache()

	c.Set("a", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("missing")
	require.Error(t, c.SetWithTTL("bad", 1, -1, timeunit.Second))

	expected := `
# HELP test_ttlcache_operations_total Cache operations by op and hit.
# TYPE test_ttlcache_operations_total counter
test_ttlcache_operations_total{hit="false",op="get"} 1
test_ttlcache_operations_total{hit="false",op="set"} 2
test_ttlcache_operations_total{hit="true",op="get"} 1
# HELP test_ttlcache_errors_total Cache operations that returned an error.
# TYPE test_ttlcache_errors_total counter
test_ttlcache_errors_total{op="set"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_ttlcache_operations_total", "test_ttlcache_errors_total"))
	series, err := testutil.GatherAndCount(reg, "test_ttlcache_operation_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, series)
}

func TestObserverCountsExpirations(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := promobserver.New(reg, "test")
	require.NoError(t, err)

	fake := cachefake.MustNew(t, ttlcache.WithObserver(obs))
	c := fake.Cache()
	c.Set("a", 1)
	c.Set("b", 2)
	fake.Advance(10 * time.Minute)

	_, _ = c.Get("a")
	require.Equal(t, 1, c.DeleteExpired())

	expected := `
# HELP test_ttlcache_expirations_total Entries purged after their TTL elapsed.
# TYPE test_ttlcache_expirations_total counter
test_ttlcache_expirations_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_ttlcache_expirations_total"))
}

func TestObserverRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := promobserver.New(reg, "dup")
	require.NoError(t, err)
	_, err = promobserver.New(reg, "dup")
	require.Error(t, err)
}

func TestRegisterSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	fake := cachefake.MustNew(t)
	c := fake.Cache()
	require.NoError(t, promobserver.RegisterSize(reg, "test", c))

	c.Set("a", 1)
	require.NoError(t, c.SetFor("b", 2, time.Second))
	fake.Advance(time.Second)

	expected := `
# HELP test_ttlcache_entries Entries held, including expired entries not read yet.
# TYPE test_ttlcache_entries gauge
test_ttlcache_entries 2
# HELP test_ttlcache_live_entries Entries that have not expired.
# TYPE test_ttlcache_live_entries gauge
test_ttlcache_live_entries 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"test_ttlcache_entries", "test_ttlcache_live_entries"))
}
