// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package recommend implements the hybrid project recommendation engine.
//
// # Architecture
//
// The engine ranks marketplace projects for a freelancer by combining
// three signal sources, each implemented as a Strategy:
//
//   - user-based: affinity between a freelancer profile and a project
//   - project-similarity: feature similarity to a project being viewed
//   - popularity: engagement and recency, usable without any user
//
// A fourth type, hybrid, runs every enabled strategy whose inputs are
// present, merges the results and re-scores them with one set of
// component weights.
//
// # Request Flow
//
//  1. Apply defaults (type, limit bounds, request ID)
//  2. Return a cached list when one exists for the request key
//  3. Fetch profile, base project and candidates concurrently
//  4. Apply exclusions and filters to the candidates
//  5. Run the strategy, falling back to popularity where required
//  6. Rerank, sort by total, assign confidence and rank
//  7. Store the list in the cache and return the first Limit items
//
// Missing data never fails a request. Degraded paths produce an empty or
// fallback list and a warning in ResponseMetadata.Warnings.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(cfg, provider, nil, logger)
//	if err != nil {
//	    return err
//	}
//
//	engine.RegisterStrategy(algorithms.NewUserBased(cfg.Strategies.UserBased, cfg.Affinity))
//	engine.RegisterStrategy(algorithms.NewSimilarity(cfg.Strategies.Similarity))
//	engine.RegisterStrategy(algorithms.NewPopularity(cfg.Strategies.Popularity))
//	engine.RegisterReranker(reranking.NewCategoryCap(cfg.Diversity.MaxSimilarItemsPerCategory))
//
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Type:   recommend.StrategyHybrid,
//	    UserID: "user-123",
//	    Limit:  10,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Strategy and reranker registration
// is guarded by a lock; the result cache has its own.
package recommend
