package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/signalsfoundry/astrotime/frames"
	"github.com/signalsfoundry/astrotime/internal/eopstore"
	"github.com/signalsfoundry/astrotime/internal/logging"
	"github.com/signalsfoundry/astrotime/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to load config", logging.String("error", err.Error()))
		os.Exit(1)
	}

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	collector, err := observability.NewCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise metrics collector", logging.String("error", err.Error()))
		os.Exit(1)
	}
	eopMetrics, err := observability.NewEOPCacheCollector(nil)
	if err != nil {
		log.Error(ctx, "failed to initialise EOP cache metrics", logging.String("error", err.Error()))
		os.Exit(1)
	}

	metricsSrv := serveMetrics(cfg.MetricsAddr, collector, log)

	provider := loadEOP(ctx, cfg, collector, eopMetrics, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newServer(log, collector, provider).routes(),
	}

	log.Info(ctx, "starting frame server", logging.String("addr", cfg.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "frame server exited", logging.String("error", err.Error()))
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-stopCtx.Done()

	log.Info(ctx, "shutting down frame server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

// loadEOP loads Earth orientation data from the local cache or the finals
// CSV. The server still starts without it; UT1 and polar motion legs then
// report a missing provider.
func loadEOP(ctx context.Context, cfg Config, collector *observability.Collector, eopMetrics *observability.EOPCacheCollector, log logging.Logger) frames.Provider {
	if cfg.EOP.CachePath == "" {
		log.Warn(ctx, "no EOP cache configured; running without Earth orientation data")
		return nil
	}

	store, err := eopstore.Open(cfg.EOP.CachePath)
	if err != nil {
		log.Warn(ctx, "failed to open EOP cache", logging.String("path", cfg.EOP.CachePath), logging.String("error", err.Error()))
		return nil
	}
	defer store.Close()

	start := time.Now()
	p, refreshed, err := eopstore.LoadOrRefresh(ctx, store, cfg.EOP.FinalsCSV, log)
	eopMetrics.ObserveLoad(time.Since(start))
	if err != nil {
		log.Warn(ctx, "running without Earth orientation data", logging.String("error", err.Error()))
		return nil
	}

	if refreshed {
		eopMetrics.IncRefreshes()
		eopMetrics.SetHitRatio(0)
	} else {
		eopMetrics.SetHitRatio(1)
	}
	if n, err := store.Count(); err == nil {
		eopMetrics.SetRowsCached(n)
	}

	minMJD, maxMJD := p.SpanMJD()
	collector.SetEOPSpan(minMJD, maxMJD)
	log.Info(ctx, "Earth orientation data ready",
		logging.Float64("min_mjd", minMJD), logging.Float64("max_mjd", maxMJD))
	return p
}

func serveMetrics(addr string, collector *observability.Collector, log logging.Logger) *http.Server {
	if collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
