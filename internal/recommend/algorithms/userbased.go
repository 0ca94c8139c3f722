// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"context"
	"strings"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// UserBased ranks projects by how well they fit a freelancer profile.
//
// Each candidate gets five affinity scores (skill, experience, budget,
// location, type). They are combined with fixed affinity weights and
// scaled by the strategy weight:
//
//	total = weight * (0.3*skill + 0.2*experience + 0.2*budget + 0.15*location + 0.15*type)
//
// Projects the user already applied to or completed are skipped.
type UserBased struct {
	BaseStrategy
	affinity recommend.AffinityWeights
}

// NewUserBased creates the user-based strategy.
//
//nolint:gocritic // config values are small and copied once
func NewUserBased(cfg recommend.StrategyConfig, affinity recommend.AffinityWeights) *UserBased {
	return &UserBased{
		BaseStrategy: NewBaseStrategy(recommend.StrategyUserBased, cfg),
		affinity:     affinity,
	}
}

// Recommend scores candidates against in.User.
//
//nolint:gocritic // StrategyInput passed by value per recommend.Strategy
func (u *UserBased) Recommend(ctx context.Context, in recommend.StrategyInput) recommend.Outcome {
	if in.User == nil {
		return recommend.Degraded(recommend.WarnProfileUnavailable, "user profile unavailable")
	}
	user := in.User

	seen := make(map[string]struct{}, len(user.AppliedProjects)+len(user.CompletedProjects))
	for _, id := range user.AppliedProjects {
		seen[id] = struct{}{}
	}
	for _, id := range user.CompletedProjects {
		seen[id] = struct{}{}
	}

	items := make([]recommend.RecommendedProject, 0, len(in.Candidates))
	for i := range in.Candidates {
		if ctx.Err() != nil {
			break
		}
		p := &in.Candidates[i]
		if _, done := seen[p.ID]; done {
			continue
		}

		skill, matching := SkillMatch(user.Skills, p.Skills)
		score := recommend.Score{
			SkillMatch:      skill,
			ExperienceMatch: ExperienceMatch(user.ExperienceLevel, p.ExperienceLevel),
			BudgetMatch:     BudgetMatch(user.PreferredBudget, p.BudgetMin, p.BudgetMax),
			LocationMatch:   LocationMatch(user.Location, p.Location),
			TypeMatch:       TypeMatch(user.PreferredProjectTypes, p.ProjectType),
		}
		score.Total = u.weight * u.affinity.Combine(score)
		if !u.keep(score.Total) {
			continue
		}

		items = append(items, recommend.RecommendedProject{
			Project:        *p,
			Score:          score,
			Reasons:        affinityReasons(score, matching),
			MatchingSkills: matching,
		})
	}

	return recommend.OK(items)
}

// affinityReasons explains the strongest affinity signals.
//
//nolint:gocritic // Score is read-only here
func affinityReasons(s recommend.Score, matching []string) []string {
	var reasons []string

	if len(matching) > 0 {
		shown := matching
		if len(shown) > 3 {
			shown = shown[:3]
		}
		if s.SkillMatch >= 0.5 {
			reasons = append(reasons, "Strong skill match: "+strings.Join(shown, ", "))
		} else {
			reasons = append(reasons, "Uses your skills: "+strings.Join(shown, ", "))
		}
	}
	if s.ExperienceMatch == 1 {
		reasons = append(reasons, "Matches your experience level")
	}
	if s.BudgetMatch >= 0.8 && s.BudgetMatch != neutralScore {
		reasons = append(reasons, "Fits your budget range")
	}
	switch {
	case s.LocationMatch == 1:
		reasons = append(reasons, "In your location")
	case s.LocationMatch == 0.8:
		reasons = append(reasons, "Near your location")
	}
	if s.TypeMatch == 1 {
		reasons = append(reasons, "One of your preferred project types")
	}

	return reasons
}
