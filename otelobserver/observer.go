// Package otelobserver records ttlcache operations as OpenTelemetry metrics.
package otelobserver

import (
	"context"
	"time"

	"github.com/goforj/ttlcache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/goforj/ttlcache"

// Observer implements ttlcache.Observer on top of an OpenTelemetry meter.
type Observer struct {
	operations  metric.Int64Counter
	expirations metric.Int64Counter
	errors      metric.Int64Counter
	duration    metric.Float64Histogram
	attrs       []attribute.KeyValue
}

var _ ttlcache.Observer = (*Observer)(nil)

// New creates the instruments on meter. Extra attributes are attached to every
// measurement, e.g. a cache name.
func New(meter metric.Meter, attrs ...attribute.KeyValue) (*Observer, error) {
	operations, err := meter.Int64Counter("ttlcache.operations",
		metric.WithDescription("Cache operations by op and hit."),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, err
	}
	expirations, err := meter.Int64Counter("ttlcache.expirations",
		metric.WithDescription("Entries purged after their TTL elapsed."),
		metric.WithUnit("{entry}"))
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("ttlcache.errors",
		metric.WithDescription("Cache operations that returned an error."),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("ttlcache.operation.duration",
		metric.WithDescription("Cache operation latency."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &Observer{
		operations:  operations,
		expirations: expirations,
		errors:      errs,
		duration:    duration,
		attrs:       attrs,
	}, nil
}

// NewFromGlobal is New using the globally registered meter provider.
func NewFromGlobal(attrs ...attribute.KeyValue) (*Observer, error) {
	return New(otel.Meter(instrumentationName), attrs...)
}

// OnCacheOp implements ttlcache.Observer.
func (o *Observer) OnCacheOp(op ttlcache.Op, key string, hit bool, err error, dur time.Duration) {
	ctx := context.Background()
	opAttr := attribute.String("op", string(op))

	if op == ttlcache.OpExpire {
		o.expirations.Add(ctx, 1, metric.WithAttributes(o.attrs...))
		return
	}
	if err != nil {
		o.errors.Add(ctx, 1, metric.WithAttributes(append([]attribute.KeyValue{opAttr}, o.attrs...)...))
	}

	set := metric.WithAttributes(append([]attribute.KeyValue{opAttr, attribute.Bool("hit", hit)}, o.attrs...)...)
	o.operations.Add(ctx, 1, set)
	o.duration.Record(ctx, dur.Seconds(), metric.WithAttributes(append([]attribute.KeyValue{opAttr}, o.attrs...)...))
}
