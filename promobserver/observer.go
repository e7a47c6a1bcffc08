// Package promobserver exposes ttlcache operations as Prometheus metrics.
package promobserver

import (
	"strconv"
	"time"

	"github.com/goforj/ttlcache"
	"github.com/prometheus/client_golang/prometheus"
)

// Observer implements ttlcache.Observer with Prometheus collectors.
type Observer struct {
	operations  *prometheus.CounterVec
	expirations prometheus.Counter
	errors      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ ttlcache.Observer = (*Observer)(nil)

// New registers the cache collectors on reg under namespace, e.g. "sessions"
// gives sessions_ttlcache_operations_total.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	o := &Observer{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ttlcache",
				Name:      "operations_total",
				Help:      "Cache operations by op and hit.",
			},
			[]string{"op", "hit"},
		),
		expirations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ttlcache",
				Name:      "expirations_total",
				Help:      "Entries purged after their TTL elapsed.",
			},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ttlcache",
				Name:      "errors_total",
				Help:      "Cache operations that returned an error.",
			},
			[]string{"op"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "ttlcache",
				Name:      "operation_duration_seconds",
				Help:      "Cache operation latency.",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{o.operations, o.expirations, o.errors, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// OnCacheOp implements ttlcache.Observer.
func (o *Observer) OnCacheOp(op ttlcache.Op, _ string, hit bool, err error, dur time.Duration) {
	if op == ttlcache.OpExpire {
		o.expirations.Inc()
		return
	}
	if err != nil {
		o.errors.WithLabelValues(string(op)).Inc()
	}
	o.operations.WithLabelValues(string(op), strconv.FormatBool(hit)).Inc()
	o.duration.WithLabelValues(string(op)).Observe(dur.Seconds())
}

// RegisterSize exports c.Size and c.LiveSize as gauges read at scrape time.
func RegisterSize(reg prometheus.Registerer, namespace string, c *ttlcache.Cache) error {
	entries := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ttlcache",
			Name:      "entries",
			Help:      "Entries held, including expired entries not read yet.",
		},
		func() float64 { return float64(c.Size()) },
	)
	live := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ttlcache",
			Name:      "live_entries",
			Help:      "Entries that have not expired.",
		},
		func() float64 { return float64(c.LiveSize()) },
	)
	if err := reg.Register(entries); err != nil {
		return err
	}
	return reg.Register(live)
}
