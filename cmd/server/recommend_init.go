// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/recommend/algorithms"
	"github.com/tomtom215/gigboard/internal/recommend/reranking"
)

// initEngine creates the engine and registers every strategy and reranker.
// Disabled strategies are still registered so explicit requests for them
// work; the Enabled flags only control what hybrid runs.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *recommend.Config, provider recommend.DataProvider, logger zerolog.Logger) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(cfg, provider, nil, logger)
	if err != nil {
		return nil, err
	}
	engine.SetObserver(metrics.EngineObserver{})

	engine.RegisterStrategy(algorithms.NewUserBased(cfg.Strategies.UserBased, cfg.Affinity))
	engine.RegisterStrategy(algorithms.NewSimilarity(cfg.Strategies.Similarity))
	engine.RegisterStrategy(algorithms.NewPopularity(cfg.Strategies.Popularity))

	if cfg.Diversity.Enabled {
		engine.RegisterReranker(reranking.NewCategoryCap(cfg.Diversity.MaxSimilarItemsPerCategory))
		logger.Debug().
			Int("max_per_category", cfg.Diversity.MaxSimilarItemsPerCategory).
			Msg("registered category cap reranker")
	}

	logger.Info().
		Str("version", cfg.Version).
		Bool("user_based", cfg.Strategies.UserBased.Enabled).
		Bool("similarity", cfg.Strategies.Similarity.Enabled).
		Bool("popularity", cfg.Strategies.Popularity.Enabled).
		Bool("cache", cfg.Cache.Enabled).
		Int("cache_entries", cfg.Cache.MaxEntries).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Recommendation engine initialized")

	return engine, nil
}
