// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"math"
	"strings"
	"time"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// neutralScore is returned when a comparison lacks the data to decide.
const neutralScore = 0.5

// SkillMatch scores skill overlap. A project skill matches when it and some
// user skill are case-insensitive substrings of one another. The score is
// the number of matching project skills over the larger skill set.
// The matching project skills are returned in project order.
func SkillMatch(userSkills, projectSkills []string) (float64, []string) {
	if len(userSkills) == 0 || len(projectSkills) == 0 {
		return 0, nil
	}

	lowered := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			lowered = append(lowered, s)
		}
	}

	var matching []string
	for _, ps := range projectSkills {
		p := strings.ToLower(strings.TrimSpace(ps))
		if p == "" {
			continue
		}
		for _, u := range lowered {
			if strings.Contains(u, p) || strings.Contains(p, u) {
				matching = append(matching, ps)
				break
			}
		}
	}

	denom := max(len(userSkills), len(projectSkills))
	return recommend.Clamp01(float64(len(matching)) / float64(denom)), matching
}

// ExperienceMatch scores seniority distance: 1 for equal levels, minus 0.3
// per step, floored at 0. Unknown levels are neutral.
func ExperienceMatch(user, project recommend.ExperienceLevel) float64 {
	ui, pi := user.Index(), project.Index()
	if ui < 0 || pi < 0 {
		return neutralScore
	}
	diff := math.Abs(float64(ui - pi))
	return math.Max(0, 1-0.3*diff)
}

// BudgetMatch scores how much of the project's budget interval falls inside
// the user's preferred interval. Either side fully unspecified is neutral.
// An unspecified minimum is 0 and an unspecified maximum is unbounded.
// Identical ranges score 1 and disjoint ranges score 0. When the project
// interval is unbounded, the overlap is measured against the user interval.
//
// The overlap is divided by the project interval, not by the larger of the
// two intervals, so a project whose whole budget fits inside a wider
// preference scores 1: user 0-10M against project 4M-5M is 1, not 0.1.
func BudgetMatch(user *recommend.BudgetRange, projectMin, projectMax int64) float64 {
	if user.Unspecified() || (projectMin == 0 && projectMax == 0) {
		return neutralScore
	}

	uLo, uHi := bounds(user.Min, user.Max)
	pLo, pHi := bounds(projectMin, projectMax)

	lo := math.Max(uLo, pLo)
	hi := math.Min(uHi, pHi)
	if hi < lo {
		return 0
	}
	overlap := hi - lo

	denom := pHi - pLo
	if math.IsInf(denom, 1) {
		denom = uHi - uLo
	}
	switch {
	case math.IsInf(denom, 1):
		// Both intervals are unbounded above and they intersect.
		return 1
	case denom == 0:
		// A single-point budget that lies inside the other interval.
		return 1
	default:
		return recommend.Clamp01(overlap / denom)
	}
}

// bounds converts a budget pair to a float interval, treating a zero
// maximum as unbounded and swapping inverted bounds.
func bounds(lo, hi int64) (float64, float64) {
	l := float64(max(lo, 0))
	if hi <= 0 {
		return l, math.Inf(1)
	}
	h := float64(hi)
	if h < l {
		l, h = h, l
	}
	return l, h
}

// LocationMatch scores location agreement: 1 for a case-insensitive exact
// match, 0.8 when one contains the other, 0.2 otherwise. Missing is neutral.
func LocationMatch(user, project string) float64 {
	u := strings.ToLower(strings.TrimSpace(user))
	p := strings.ToLower(strings.TrimSpace(project))
	switch {
	case u == "" || p == "":
		return neutralScore
	case u == p:
		return 1
	case strings.Contains(u, p) || strings.Contains(p, u):
		return 0.8
	default:
		return 0.2
	}
}

// TypeMatch scores whether the project type is one the user prefers.
func TypeMatch(preferred []recommend.ProjectType, projectType recommend.ProjectType) float64 {
	if len(preferred) == 0 || projectType == "" {
		return neutralScore
	}
	for _, t := range preferred {
		if t == projectType {
			return 1
		}
	}
	return 0.3
}

// PopularityMetrics are engagement signals derived from a project.
type PopularityMetrics struct {
	Views          int     `json:"views"`
	Applications   int     `json:"applications"`
	Bookmarks      int     `json:"bookmarks"`
	RecentActivity float64 `json:"recentActivity"`
	TrendingScore  float64 `json:"trendingScore"`
	Viral          bool    `json:"viral"`
}

// Popularity saturation points and blend weights.
const (
	viewsSaturation        = 100.0
	applicationsSaturation = 10.0
	bookmarksSaturation    = 5.0
	recencyWindowDays      = 30.0
	viralThreshold         = 0.8
)

// ComputePopularity derives engagement metrics for p relative to now.
// Recent activity decays linearly to 0 over 30 days and is capped at 1
// for just-created or future-dated projects.
func ComputePopularity(p *recommend.Project, now time.Time) PopularityMetrics {
	recent := 0.0
	if !p.CreatedAt.IsZero() {
		days := now.Sub(p.CreatedAt).Hours() / 24
		recent = recommend.Clamp01((recencyWindowDays - days) / recencyWindowDays)
	}

	trending := 0.4*math.Min(float64(max(p.Views, 0))/viewsSaturation, 1) +
		0.3*math.Min(float64(max(p.Applications, 0))/applicationsSaturation, 1) +
		0.2*math.Min(float64(max(p.BookmarkCount, 0))/bookmarksSaturation, 1) +
		0.1*recent

	return PopularityMetrics{
		Views:          p.Views,
		Applications:   p.Applications,
		Bookmarks:      p.BookmarkCount,
		RecentActivity: recent,
		TrendingScore:  trending,
		Viral:          trending > viralThreshold,
	}
}
