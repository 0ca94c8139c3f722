// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"sort"
	"strconv"
	"strings"
)

// Recognised filter keys. Other keys are ignored but still distinguish cache entries.
const (
	FilterCategory        = "category"
	FilterProjectType     = "projectType"
	FilterWorkType        = "workType"
	FilterExperienceLevel = "experienceLevel"
	FilterLocation        = "location"
	FilterStatus          = "status"
	FilterMinBudget       = "minBudget"
	FilterMaxBudget       = "maxBudget"
	FilterSkills          = "skills"
)

// candidateFilter reports whether a project passes one filter.
type candidateFilter func(p *Project) bool

// ApplyFilters returns the projects that pass every recognised filter.
// Values that cannot be interpreted are ignored.
func ApplyFilters(projects []Project, filters map[string]any) []Project {
	checks := buildFilters(filters)
	if len(checks) == 0 {
		return projects
	}

	out := make([]Project, 0, len(projects))
	for i := range projects {
		keep := true
		for _, check := range checks {
			if !check(&projects[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, projects[i])
		}
	}
	return out
}

func buildFilters(filters map[string]any) []candidateFilter {
	var checks []candidateFilter

	if v, ok := stringFilter(filters, FilterCategory); ok {
		checks = append(checks, func(p *Project) bool { return strings.EqualFold(p.Category, v) })
	}
	if v, ok := stringFilter(filters, FilterProjectType); ok {
		checks = append(checks, func(p *Project) bool { return strings.EqualFold(string(p.ProjectType), v) })
	}
	if v, ok := stringFilter(filters, FilterWorkType); ok {
		checks = append(checks, func(p *Project) bool { return strings.EqualFold(string(p.WorkType), v) })
	}
	if v, ok := stringFilter(filters, FilterExperienceLevel); ok {
		checks = append(checks, func(p *Project) bool { return strings.EqualFold(string(p.ExperienceLevel), v) })
	}
	if v, ok := stringFilter(filters, FilterStatus); ok {
		checks = append(checks, func(p *Project) bool { return strings.EqualFold(p.Status, v) })
	}
	if v, ok := stringFilter(filters, FilterLocation); ok {
		needle := strings.ToLower(v)
		checks = append(checks, func(p *Project) bool {
			return strings.Contains(strings.ToLower(p.Location), needle)
		})
	}
	if v, ok := numberFilter(filters, FilterMinBudget); ok {
		checks = append(checks, func(p *Project) bool { return p.BudgetMax == 0 || p.BudgetMax >= v })
	}
	if v, ok := numberFilter(filters, FilterMaxBudget); ok {
		checks = append(checks, func(p *Project) bool { return p.BudgetMin <= v })
	}
	if skills := listFilter(filters, FilterSkills); len(skills) > 0 {
		checks = append(checks, func(p *Project) bool {
			for _, s := range skills {
				if p.HasSkill(s) {
					return true
				}
			}
			return false
		})
	}

	return checks
}

// NormalizeFilters returns a copy of filters in which every recognised value
// is rewritten to the form ApplyFilters interprets it as: trimmed lower-case
// strings, int64 budgets and a sorted, de-duplicated lower-case skill list.
// Requests that filter identically then share a cache key whether the values
// came from a query string or a JSON body. Unknown keys and values that cannot
// be interpreted are copied unchanged.
func NormalizeFilters(filters map[string]any) map[string]any {
	if len(filters) == 0 {
		return filters
	}

	out := make(map[string]any, len(filters))
	for k, v := range filters {
		out[k] = v
	}

	for _, key := range []string{FilterCategory, FilterProjectType, FilterWorkType, FilterExperienceLevel, FilterStatus, FilterLocation} {
		if v, ok := stringFilter(filters, key); ok {
			out[key] = strings.ToLower(v)
		}
	}
	for _, key := range []string{FilterMinBudget, FilterMaxBudget} {
		if v, ok := numberFilter(filters, key); ok {
			out[key] = v
		}
	}
	if skills := listFilter(filters, FilterSkills); len(skills) > 0 {
		seen := make(map[string]struct{}, len(skills))
		norm := make([]string, 0, len(skills))
		for _, s := range skills {
			s = strings.ToLower(s)
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			norm = append(norm, s)
		}
		sort.Strings(norm)
		out[FilterSkills] = norm
	}

	return out
}

func stringFilter(filters map[string]any, key string) (string, bool) {
	s, ok := filters[key].(string)
	s = strings.TrimSpace(s)
	return s, ok && s != ""
}

func numberFilter(filters map[string]any, key string) (int64, bool) {
	switch v := filters[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func listFilter(filters map[string]any, key string) []string {
	var out []string
	switch v := filters[key].(type) {
	case []string:
		out = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		out = strings.Split(v, ",")
	}

	skills := make([]string, 0, len(out))
	for _, s := range out {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
