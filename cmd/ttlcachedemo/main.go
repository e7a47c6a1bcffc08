package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goforj/ttlcache"
	"github.com/goforj/ttlcache/internal/config"
	"github.com/goforj/ttlcache/internal/logger"
	"github.com/goforj/ttlcache/internal/telemetry"
	"github.com/goforj/ttlcache/otelobserver"
	"github.com/goforj/ttlcache/promobserver"
	"github.com/goforj/ttlcache/timeunit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logCfg, err := config.GetLogConfig()
	if err != nil {
		return err
	}
	if err := logger.Init(logCfg.ServiceName, logCfg.Level); err != nil {
		return err
	}
	log := logger.Log

	telCfg := config.GetTelemetryConfig()
	provider, err := telemetry.InitMeter(ctx, telCfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("meter provider shutdown")
		}
	}()

	otelMetrics, err := otelobserver.NewFromGlobal(attribute.String("cache", "demo"))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	promMetrics, err := promobserver.New(reg, "demo")
	if err != nil {
		return err
	}

	cfg, err := ttlcache.ConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Logger = &log
	cfg.Observer = ttlcache.MultiObserver(ttlcache.LogObserver(log), otelMetrics, promMetrics)

	c, err := ttlcache.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Msg("cache close")
		}
	}()

	if err := promobserver.RegisterSize(reg, "demo", c); err != nil {
		return err
	}
	if telCfg.MetricsAddr != "" {
		srv := startMetricsServer(telCfg.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	log.Info().
		Dur("default_ttl", c.DefaultTTL()).
		Dur("sweep_interval", cfg.SweepInterval).
		Str("driver", string(c.Driver())).
		Msg("ttlcache demo starting")

	// Default TTL.
	c.Set("user:1", "John Doe")
	if v, ok := c.Get("user:1"); ok {
		log.Info().Interface("value", v).Msg("GET user:1")
	}

	// Per-entry override.
	if err := c.SetWithTTL("otp:1", "918273", 200, timeunit.Second); err != nil {
		return err
	}
	if err := c.SetFor("flash", "short lived", 300*time.Millisecond); err != nil {
		return err
	}

	// Rejected TTLs leave the cache untouched.
	if err := c.SetWithTTL("bad", "v", 0, timeunit.Minute); errors.Is(err, ttlcache.ErrInvalidTTL) {
		log.Info().Err(err).Msg("zero ttl rejected")
	}

	wait := time.NewTimer(500 * time.Millisecond)
	defer wait.Stop()
	select {
	case <-ctx.Done():
		log.Info().Msg("received shutdown signal")
		return nil
	case <-wait.C:
	}

	log.Info().
		Int("size", c.Size()).
		Int("live", c.LiveSize()).
		Msg("after flash expired, before reading it")
	if _, ok := c.Get("flash"); !ok {
		log.Info().Int("size", c.Size()).Msg("GET flash: expired and removed")
	}

	// Reconfiguring keeps existing entries and applies to future writes only.
	if _, err := c.Initialize(30, timeunit.Second); err != nil {
		return err
	}
	c.Set("user:2", "Jane Doe")
	log.Info().Dur("default_ttl", c.DefaultTTL()).Int("size", c.Size()).Msg("reconfigured")

	ms, err := timeunit.Convert(90, timeunit.Second, timeunit.Minute)
	if err != nil {
		return err
	}
	log.Info().Int64("minutes", ms).Msg("90 seconds in whole minutes")

	c.Clear()
	log.Info().Int("size", c.Size()).Msg("cleared")

	if telCfg.MetricsAddr != "" {
		log.Info().Str("addr", telCfg.MetricsAddr).Msg("serving /metrics until interrupted")
		<-ctx.Done()
	}
	return nil
}

func startMetricsServer(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error().Err(err).Msg("metrics server")
		}
	}()
	return srv
}
