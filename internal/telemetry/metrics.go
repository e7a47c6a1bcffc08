package telemetry

import (
	"context"
	"fmt"

	"github.com/goforj/ttlcache/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

// InitMeter installs a global meter provider tagged with the service name.
// When cfg.CollectorURL is set, metrics are pushed there over OTLP/HTTP.
// Extra options are appended, e.g. a reader for tests.
func InitMeter(ctx context.Context, cfg *config.TelemetryConfig, extra ...metric.Option) (*metric.MeterProvider, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}

	opts := []metric.Option{metric.WithResource(res)}
	if cfg.CollectorURL != "" {
		exporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithInsecure(),
			otlpmetrichttp.WithEndpoint(cfg.CollectorURL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create metric exporter: %w", err)
		}
		opts = append(opts, metric.WithReader(metric.NewPeriodicReader(exporter)))
	}
	opts = append(opts, extra...)

	provider := metric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)
	return provider, nil
}
