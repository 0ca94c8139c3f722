// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package reranking

import (
	"context"
	"strings"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// CategoryCap limits how many results a single category may contribute.
//
// It walks the list once in its current order and keeps an item only while
// its category count is below the cap. Items over the cap are dropped, not
// moved; order among the kept items is unchanged. Categories compare
// case-insensitively and an empty category is its own bucket.
type CategoryCap struct {
	maxPerCategory int
}

// NewCategoryCap creates a category cap reranker. A cap below 1 is raised to 1.
func NewCategoryCap(maxPerCategory int) *CategoryCap {
	if maxPerCategory < 1 {
		maxPerCategory = 1
	}
	return &CategoryCap{maxPerCategory: maxPerCategory}
}

// Name returns the reranker identifier.
func (c *CategoryCap) Name() string {
	return "category_cap"
}

// Rerank drops items beyond the per-category cap.
func (c *CategoryCap) Rerank(ctx context.Context, items []recommend.RecommendedProject) []recommend.RecommendedProject {
	if len(items) == 0 {
		return items
	}

	counts := make(map[string]int)
	kept := make([]recommend.RecommendedProject, 0, len(items))
	for i := range items {
		category := strings.ToLower(strings.TrimSpace(items[i].Project.Category))
		if counts[category] >= c.maxPerCategory {
			continue
		}
		counts[category]++
		kept = append(kept, items[i])
	}

	return kept
}
