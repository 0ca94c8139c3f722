// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package reranking implements post-processing for recommendation diversity.
//
// Rerankers run after scoring and before the final sort:
//
//	Strategies -> Rerankers -> Sort -> Truncate -> Rank
//
// # Available Rerankers
//
// CategoryCap:
//   - Greedy single pass over the scored list
//   - Keeps at most N items per project category
//   - Drops items, never reorders them
//
// # Interface
//
// All rerankers implement the recommend.Reranker interface:
//
//	type Reranker interface {
//	    Name() string
//	    Rerank(ctx context.Context, items []RecommendedProject) []RecommendedProject
//	}
//
// Register rerankers with the engine:
//
//	engine.RegisterReranker(reranking.NewCategoryCap(3))
package reranking
