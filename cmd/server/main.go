// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/gigboard/internal/api"
	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/logging"
	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/middleware"
	"github.com/tomtom215/gigboard/internal/supervisor"
	"github.com/tomtom215/gigboard/internal/supervisor/services"
)

// Performance monitor sizing.
const (
	perfMonSamples       = 1000
	slowRequestThreshold = 500 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	logging.Info().
		Str("version", cfg.Recommend.Version).
		Str("environment", cfg.Server.Environment).
		Str("catalog_mode", cfg.Catalog.Mode).
		Msg("Starting Gigboard recommendation service")

	metrics.SetAppInfo(cfg.Recommend.Version, runtime.Version())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := initCatalog(ctx, &cfg.Catalog, logging.WithComponent("catalog"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize catalog")
	}
	defer func() {
		if err := cat.close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog")
		}
	}()

	engine, err := initEngine(&cfg.Recommend, cat.provider, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	fb, err := initFeedback(&cfg.Feedback, engine, tree, logging.WithComponent("feedback"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize feedback pipeline")
	}

	perfMon := middleware.NewPerformanceMonitor(perfMonSamples, slowRequestThreshold, logging.WithComponent("perf"))

	opts := []api.HandlerOption{api.WithPerformanceMonitor(perfMon)}
	if cat.breaker != nil {
		opts = append(opts, api.WithDependency("catalog", cat.breaker))
	}
	if fb != nil {
		opts = append(opts, api.WithDependency("feedback", fb.forwarder))
		if fb.recorder != nil {
			opts = append(opts, api.WithFeedbackStats(fb.recorder))
		}
	} else {
		opts = append(opts, api.WithFeedbackDisabled())
	}
	handler := api.NewHandler(engine, cfg.Recommend.Version, opts...)

	chiMiddleware := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, chiMiddleware, perfMon)

	addr := cfg.Server.Addr()
	server := services.NewHTTPServer(&cfg.Server, router.SetupChi())
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	logging.Info().
		Str("addr", addr).
		Bool("feedback", fb != nil).
		Bool("rate_limit", !cfg.Security.RateLimitDisabled).
		Msg("Supervisor tree configured")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	logging.Info().Str("addr", addr).Msg("Gigboard is running")

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	fb.close()

	stats := engine.Stats()
	logging.Info().
		Int64("requests", stats.Requests).
		Int64("cache_hits", stats.CacheHits).
		Int64("fallbacks", stats.Fallbacks).
		Msg("Application stopped gracefully")
}
