// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"math"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// CosineSimilarity returns the cosine of the angle between a and b.
// It returns 0 when either vector has zero magnitude. Feature vectors are
// non-negative, so the result lies in [0, 1].
func CosineSimilarity(a, b []float64) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, x := range b {
		normB += x * x
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return recommend.Clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// ProjectSimilarity compares two projects by their feature vectors.
func ProjectSimilarity(base, target *recommend.Project) float64 {
	return CosineSimilarity(ExtractFeatures(base), ExtractFeatures(target))
}
