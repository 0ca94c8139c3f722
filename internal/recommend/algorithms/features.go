// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"github.com/tomtom215/gigboard/internal/recommend"
)

// BudgetScale is the reference budget the two budget features are divided by.
// Budgets above it produce feature values greater than 1.
const BudgetScale = 10_000_000

// FeatureLength is the length of every vector returned by ExtractFeatures.
var FeatureLength = 2 +
	len(recommend.ProjectTypes) +
	len(recommend.WorkTypes) +
	len(recommend.ExperienceLevels) +
	len(recommend.ReferenceSkills)

// ExtractFeatures converts a project into a fixed-length numeric vector:
// two scaled budget bounds, then one-hot project type, work type and
// experience level blocks, then reference skill membership.
// Missing fields contribute zeros.
func ExtractFeatures(p *recommend.Project) []float64 {
	v := make([]float64, 0, FeatureLength)

	v = append(v,
		float64(max(p.BudgetMin, 0))/BudgetScale,
		float64(max(p.BudgetMax, 0))/BudgetScale,
	)

	for _, t := range recommend.ProjectTypes {
		v = append(v, indicator(p.ProjectType == t))
	}
	for _, t := range recommend.WorkTypes {
		v = append(v, indicator(p.WorkType == t))
	}
	for _, l := range recommend.ExperienceLevels {
		v = append(v, indicator(p.ExperienceLevel == l))
	}

	skills := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		skills[s] = struct{}{}
	}
	for _, ref := range recommend.ReferenceSkills {
		_, ok := skills[ref]
		v = append(v, indicator(ok))
	}

	return v
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
