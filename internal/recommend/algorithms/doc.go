// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package algorithms implements the scoring strategies of the recommendation engine.
//
// Each strategy implements recommend.Strategy and is registered with the engine.
// The package also holds the pure building blocks the strategies share:
//
//   - Feature extraction: ExtractFeatures
//   - Similarity: CosineSimilarity, ProjectSimilarity
//   - Per-dimension scores: SkillMatch, ExperienceMatch, BudgetMatch,
//     LocationMatch, TypeMatch, ComputePopularity
//
// # Strategies
//
//   - UserBased: profile affinity (requires a user profile)
//   - Similarity: content similarity to a base project (requires a project)
//   - Popularity: engagement and recency (no requirements)
//
// Strategies are stateless after construction and safe for concurrent use.
package algorithms
