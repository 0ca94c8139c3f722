// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"context"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// Popularity ranks projects by engagement and recency. It needs no user or
// base project, which makes it the fallback for anonymous requests.
//
//	total = weight * trendingScore
type Popularity struct {
	BaseStrategy
}

// NewPopularity creates the popularity strategy.
//
//nolint:gocritic // StrategyConfig is a small value type
func NewPopularity(cfg recommend.StrategyConfig) *Popularity {
	return &Popularity{
		BaseStrategy: NewBaseStrategy(recommend.StrategyPopularity, cfg),
	}
}

// Recommend scores every candidate by its popularity metrics.
//
//nolint:gocritic // StrategyInput passed by value per recommend.Strategy
func (p *Popularity) Recommend(ctx context.Context, in recommend.StrategyInput) recommend.Outcome {
	items := make([]recommend.RecommendedProject, 0, len(in.Candidates))
	for i := range in.Candidates {
		if ctx.Err() != nil {
			break
		}
		c := &in.Candidates[i]

		m := ComputePopularity(c, in.Now)
		score := recommend.Score{
			PopularityScore:     m.TrendingScore,
			RecentActivityScore: m.RecentActivity,
			Total:               p.weight * m.TrendingScore,
		}
		if !p.keep(score.Total) {
			continue
		}

		items = append(items, recommend.RecommendedProject{
			Project: *c,
			Score:   score,
			Reasons: popularityReasons(m),
		})
	}

	return recommend.OK(items)
}

//nolint:gocritic // PopularityMetrics is read-only here
func popularityReasons(m PopularityMetrics) []string {
	var reasons []string
	if m.Viral {
		reasons = append(reasons, "Trending now")
	}
	if m.RecentActivity > 0.7 {
		reasons = append(reasons, "Recently posted")
	}
	if m.Applications >= int(applicationsSaturation) {
		reasons = append(reasons, "Popular with freelancers")
	}
	if m.Views >= int(viewsSaturation) {
		reasons = append(reasons, "Frequently viewed")
	}
	return reasons
}
