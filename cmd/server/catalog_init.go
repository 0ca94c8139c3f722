// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/api"
	"github.com/tomtom215/gigboard/internal/catalog"
	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// catalogComponents is the data provider plus what main needs to report on
// and release it.
type catalogComponents struct {
	provider recommend.DataProvider
	breaker  api.BreakerReporter // nil for the local store
	close    func() error
}

// initCatalog builds the data provider for cfg.Catalog.Mode. The badger store
// is seeded from SeedFile when one is configured.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initCatalog(ctx context.Context, cfg *config.CatalogConfig, logger zerolog.Logger) (*catalogComponents, error) {
	switch cfg.Mode {
	case config.CatalogModeHTTP:
		client := catalog.NewClient(&cfg.HTTP, logger)
		logger.Info().
			Str("base_url", cfg.HTTP.BaseURL).
			Float64("rate_limit", cfg.HTTP.RateLimit).
			Msg("Catalog: marketplace API")
		return &catalogComponents{
			provider: client,
			breaker:  client,
			close:    func() error { return nil },
		}, nil

	case config.CatalogModeBadger:
		store, err := catalog.OpenStore(cfg.Badger, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Badger.SeedFile != "" {
			res, err := store.LoadSeedFile(ctx, cfg.Badger.SeedFile)
			if err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("seed catalog: %w", err)
			}
			logger.Info().
				Str("seed_file", cfg.Badger.SeedFile).
				Int("projects", res.Projects).
				Int("profiles", res.Profiles).
				Msg("Catalog seeded")
		}
		count, err := store.CountProjects()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to count catalog projects")
		}
		logger.Info().
			Str("path", cfg.Badger.Path).
			Bool("in_memory", cfg.Badger.InMemory).
			Int("projects", count).
			Msg("Catalog: local badger store")
		return &catalogComponents{provider: store, close: store.Close}, nil

	default:
		return nil, fmt.Errorf("unknown catalog mode %q", cfg.Mode)
	}
}
