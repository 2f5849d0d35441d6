package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"freshgo/internal/cache"
	"freshgo/internal/detail"
	detailMetrics "freshgo/internal/detail/metrics"
	"freshgo/internal/health"
	"freshgo/internal/platform/config"
	"freshgo/internal/platform/httpserver"
	"freshgo/internal/platform/logger"
	"freshgo/internal/platform/metrics"
	"freshgo/internal/platform/redis"
	"freshgo/internal/schema"
	"freshgo/internal/summary"
	httptransport "freshgo/internal/transport/http"
	"freshgo/internal/upstream"
	"freshgo/internal/upstream/registry"
	"freshgo/internal/upstream/telemetry"
)

const redisKeyNamespace = "freshgo"

// main wires dependencies, serves HTTP and shuts down on SIGINT/SIGTERM.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, closeStore, err := buildCache(cfg, log)
	if err != nil {
		log.Error("failed to initialise cache", "backend", cfg.Cache.Backend, "error", err)
		os.Exit(1)
	}
	metrics.WatchCache(reg, func() int {
		stats, err := store.Stats(context.Background())
		if err != nil {
			return 0
		}
		return stats.Keys
	})

	upstreamOpts := []upstream.Option{upstream.WithLogger(log), upstream.WithMetrics(m)}
	crm := registry.New(upstream.Config{
		BaseURL:       cfg.Registry.BaseURL,
		Timeout:       cfg.Registry.Timeout,
		HealthTimeout: cfg.Registry.HealthTimeout,
	}, store, upstreamOpts...)
	iot := telemetry.New(upstream.Config{
		BaseURL:       cfg.Telemetry.BaseURL,
		Timeout:       cfg.Telemetry.Timeout,
		HealthTimeout: cfg.Telemetry.HealthTimeout,
	}, store, upstreamOpts...)

	detailSvc := detail.NewService(crm, iot, schema.New(log),
		detail.WithLogger(log),
		detail.WithMetrics(detailMetrics.New(reg)),
		detail.WithConcurrency(cfg.Concurrency),
	)
	summarySvc := summary.NewService(crm, iot, log)
	checker := health.NewChecker(log,
		health.Target{Name: "crm", URL: cfg.Registry.BaseURL, Prober: crm},
		health.Target{Name: "iot", URL: cfg.Telemetry.BaseURL, Prober: iot},
	)

	router := httptransport.NewRouter(httptransport.RouterConfig{Logger: log, Metrics: m, Gatherer: reg},
		httptransport.NewDetailHandler(detailSvc, log),
		httptransport.NewStatusHandler(summarySvc, checker),
		httptransport.NewCacheHandler(store, cfg.Cache.TTL, log, crm, iot),
		httptransport.NewVehicleHandler(iot, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting unified detail API",
		"addr", cfg.Addr,
		"crm_url", cfg.Registry.BaseURL,
		"iot_url", cfg.Telemetry.BaseURL,
		"cache_backend", cfg.Cache.Backend,
		"cache_ttl_s", int(cfg.Cache.TTL.Seconds()),
		"log_level", cfg.LogLevel,
	)
	go logConnections(checker, log)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := store.FlushAll(ctx); err != nil {
		log.Warn("failed to flush cache on shutdown", "error", err)
	}
	closeStore()
}

// buildCache selects the cache backend. The returned func releases it.
func buildCache(cfg config.Server, log *slog.Logger) (cache.Store, func(), error) {
	if cfg.Cache.Backend == "redis" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, errors.New("CACHE_BACKEND=redis requires REDIS_URL")
		}
		log.Info("using redis cache", "ttl_s", int(cfg.Cache.TTL.Seconds()))
		return cache.NewRedis(client.Client, cfg.Cache.TTL, redisKeyNamespace), func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close redis", "error", err)
			}
		}, nil
	}
	mem := cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CheckPeriod, cache.WithLogger(log))
	return mem, mem.Close, nil
}

// logConnections reports upstream reachability once at startup.
func logConnections(checker *health.Checker, log *slog.Logger) {
	report := checker.Check(context.Background())
	for name, svc := range report.Services {
		if svc.Status == "up" {
			log.Info("upstream connected", "service", name, "url", svc.URL, "latency_ms", svc.LatencyMs)
			continue
		}
		errMsg := ""
		if svc.Error != nil {
			errMsg = *svc.Error
		}
		log.Error("upstream unavailable", "service", name, "url", svc.URL, "error", errMsg)
	}
}
