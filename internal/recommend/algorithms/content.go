// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// Similarity thresholds used to explain a result.
const (
	verySimilarThreshold = 0.8
	similarThreshold     = 0.6
	sharedSkillsMinimum  = 2
	sharedSkillsShown    = 3
)

// Similarity ranks projects by content similarity to a base project.
//
// Similarity is the cosine between feature vectors (see ExtractFeatures),
// scaled by the strategy weight:
//
//	total = weight * cosine(features(base), features(candidate))
type Similarity struct {
	BaseStrategy
}

// NewSimilarity creates the project-similarity strategy.
//
//nolint:gocritic // StrategyConfig is a small value type
func NewSimilarity(cfg recommend.StrategyConfig) *Similarity {
	return &Similarity{
		BaseStrategy: NewBaseStrategy(recommend.StrategyProjectSimilarity, cfg),
	}
}

// Recommend scores candidates against in.BaseProject.
//
//nolint:gocritic // StrategyInput passed by value per recommend.Strategy
func (s *Similarity) Recommend(ctx context.Context, in recommend.StrategyInput) recommend.Outcome {
	if in.BaseProject == nil {
		return recommend.Degraded(recommend.WarnBaseProjectMissing, "base project unavailable")
	}
	base := in.BaseProject
	baseVec := ExtractFeatures(base)

	items := make([]recommend.RecommendedProject, 0, len(in.Candidates))
	for i := range in.Candidates {
		if ctx.Err() != nil {
			break
		}
		p := &in.Candidates[i]
		if p.ID == base.ID {
			continue
		}

		sim := CosineSimilarity(baseVec, ExtractFeatures(p))
		score := recommend.Score{
			SimilarityScore: sim,
			Total:           s.weight * sim,
		}
		if !s.keep(score.Total) {
			continue
		}

		shared := sharedSkills(base, p)
		items = append(items, recommend.RecommendedProject{
			Project:        *p,
			Score:          score,
			Reasons:        similarityReasons(sim, base, p, shared),
			MatchingSkills: shared,
		})
	}

	return recommend.OK(items)
}

// sharedSkills returns the candidate's skills that the base also lists.
func sharedSkills(base, candidate *recommend.Project) []string {
	var shared []string
	for _, s := range candidate.Skills {
		if base.HasSkill(s) {
			shared = append(shared, s)
		}
	}
	return shared
}

func similarityReasons(sim float64, base, p *recommend.Project, shared []string) []string {
	var reasons []string

	switch {
	case sim > verySimilarThreshold:
		reasons = append(reasons, "Very similar to the project you viewed")
	case sim > similarThreshold:
		reasons = append(reasons, "Has similar characteristics")
	}
	if base.Category != "" && strings.EqualFold(base.Category, p.Category) {
		reasons = append(reasons, fmt.Sprintf("Same category: %s", p.Category))
	}
	if base.ProjectType != "" && base.ProjectType == p.ProjectType {
		reasons = append(reasons, fmt.Sprintf("Same project type: %s", p.ProjectType))
	}
	if len(shared) > sharedSkillsMinimum {
		shown := shared
		if len(shown) > sharedSkillsShown {
			shown = shown[:sharedSkillsShown]
		}
		reasons = append(reasons, "Shared skills: "+strings.Join(shown, ", "))
	}

	return reasons
}
