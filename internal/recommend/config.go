// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Version is reported in response metadata and stamped on cache entries.
	Version string `json:"version" koanf:"version"`

	// Strategies holds per-strategy enable flags, weights and thresholds.
	Strategies StrategiesConfig `json:"strategies" koanf:"strategies"`

	// Affinity weights the five user-affinity components in the user-based strategy.
	Affinity AffinityWeights `json:"affinity" koanf:"affinity"`

	// Hybrid weights every component when the hybrid strategy re-scores merged results.
	Hybrid ComponentWeights `json:"hybrid" koanf:"hybrid"`

	// Diversity limits how many results share a category.
	Diversity DiversityConfig `json:"diversity" koanf:"diversity"`

	// Limits contains request bounds.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Cache contains result cache parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// StrategyConfig configures one sub-strategy.
type StrategyConfig struct {
	// Enabled controls whether hybrid runs this strategy.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// Weight scales the strategy's combined score.
	Weight float64 `json:"weight" koanf:"weight"`

	// Threshold drops results whose total is at or below it.
	Threshold float64 `json:"threshold" koanf:"threshold"`
}

// StrategiesConfig groups the sub-strategy settings.
type StrategiesConfig struct {
	UserBased  StrategyConfig `json:"user_based" koanf:"user_based"`
	Similarity StrategyConfig `json:"similarity" koanf:"similarity"`
	Popularity StrategyConfig `json:"popularity" koanf:"popularity"`
}

// AffinityWeights are the fixed weights of the user-based strategy.
type AffinityWeights struct {
	Skill      float64 `json:"skill" koanf:"skill"`
	Experience float64 `json:"experience" koanf:"experience"`
	Budget     float64 `json:"budget" koanf:"budget"`
	Location   float64 `json:"location" koanf:"location"`
	Type       float64 `json:"type" koanf:"type"`
}

// Combine returns the weighted sum of the affinity components of s.
//
//nolint:gocritic // value receivers keep weights immutable
func (w AffinityWeights) Combine(s Score) float64 {
	return w.Skill*s.SkillMatch +
		w.Experience*s.ExperienceMatch +
		w.Budget*s.BudgetMatch +
		w.Location*s.LocationMatch +
		w.Type*s.TypeMatch
}

// ComponentWeights assigns a weight to every score component.
type ComponentWeights struct {
	SkillMatch          float64 `json:"skill_match" koanf:"skill_match"`
	ExperienceMatch     float64 `json:"experience_match" koanf:"experience_match"`
	BudgetMatch         float64 `json:"budget_match" koanf:"budget_match"`
	LocationMatch       float64 `json:"location_match" koanf:"location_match"`
	TypeMatch           float64 `json:"type_match" koanf:"type_match"`
	PopularityScore     float64 `json:"popularity_score" koanf:"popularity_score"`
	SimilarityScore     float64 `json:"similarity_score" koanf:"similarity_score"`
	RecentActivityScore float64 `json:"recent_activity_score" koanf:"recent_activity_score"`
}

// Apply returns the weighted sum of all components of s.
//
//nolint:gocritic // value receivers keep weights immutable
func (w ComponentWeights) Apply(s Score) float64 {
	return w.SkillMatch*s.SkillMatch +
		w.ExperienceMatch*s.ExperienceMatch +
		w.BudgetMatch*s.BudgetMatch +
		w.LocationMatch*s.LocationMatch +
		w.TypeMatch*s.TypeMatch +
		w.PopularityScore*s.PopularityScore +
		w.SimilarityScore*s.SimilarityScore +
		w.RecentActivityScore*s.RecentActivityScore
}

// values returns the weights in Score.Components order.
//
//nolint:gocritic // value receivers keep weights immutable
func (w ComponentWeights) values() []float64 {
	return []float64{
		w.SkillMatch, w.ExperienceMatch, w.BudgetMatch, w.LocationMatch,
		w.TypeMatch, w.PopularityScore, w.SimilarityScore, w.RecentActivityScore,
	}
}

// DiversityConfig controls category diversity enforcement.
type DiversityConfig struct {
	// Enabled turns diversity enforcement on.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MaxSimilarItemsPerCategory is the most results one category may contribute.
	MaxSimilarItemsPerCategory int `json:"max_similar_items_per_category" koanf:"max_similar_items_per_category"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	// DefaultLimit is used when a request does not set Limit.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps Limit.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`
}

// CacheConfig contains result cache parameters.
type CacheConfig struct {
	// Enabled turns result caching on.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// MaxEntries bounds the cache. The oldest inserted entry is evicted first.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`

	// TTL is how long an entry stays valid.
	TTL time.Duration `json:"ttl" koanf:"ttl"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Strategies: StrategiesConfig{
			UserBased:  StrategyConfig{Enabled: true, Weight: 0.4, Threshold: 0.1},
			Similarity: StrategyConfig{Enabled: true, Weight: 0.4, Threshold: 0.2},
			Popularity: StrategyConfig{Enabled: true, Weight: 0.2, Threshold: 0.1},
		},
		Affinity: AffinityWeights{
			Skill:      0.3,
			Experience: 0.2,
			Budget:     0.2,
			Location:   0.15,
			Type:       0.15,
		},
		Hybrid: ComponentWeights{
			SkillMatch:          0.3,
			ExperienceMatch:     0.2,
			BudgetMatch:         0.2,
			LocationMatch:       0.15,
			TypeMatch:           0.15,
			PopularityScore:     0.2,
			SimilarityScore:     0.4,
			RecentActivityScore: 0.1,
		},
		Diversity: DiversityConfig{
			Enabled:                    true,
			MaxSimilarItemsPerCategory: 3,
		},
		Limits: LimitsConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1000,
			TTL:        30 * time.Minute,
		},
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	strategies := map[string]StrategyConfig{
		"user_based": c.Strategies.UserBased,
		"similarity": c.Strategies.Similarity,
		"popularity": c.Strategies.Popularity,
	}
	for name, s := range strategies {
		if s.Weight < 0 {
			return fmt.Errorf("strategies.%s.weight must be non-negative, got %f", name, s.Weight)
		}
		if s.Threshold < 0 || s.Threshold >= 1 {
			return fmt.Errorf("strategies.%s.threshold must be in [0, 1), got %f", name, s.Threshold)
		}
	}

	affinity := []float64{c.Affinity.Skill, c.Affinity.Experience, c.Affinity.Budget, c.Affinity.Location, c.Affinity.Type}
	for _, w := range affinity {
		if w < 0 {
			return fmt.Errorf("affinity weights must be non-negative")
		}
	}

	for _, w := range c.Hybrid.values() {
		if w < 0 {
			return fmt.Errorf("hybrid component weights must be non-negative")
		}
	}

	if c.Diversity.Enabled && c.Diversity.MaxSimilarItemsPerCategory < 1 {
		return fmt.Errorf("diversity.max_similar_items_per_category must be at least 1, got %d", c.Diversity.MaxSimilarItemsPerCategory)
	}

	if c.Limits.DefaultLimit < 1 {
		return fmt.Errorf("limits.default_limit must be at least 1, got %d", c.Limits.DefaultLimit)
	}
	if c.Limits.MaxLimit < c.Limits.DefaultLimit {
		return fmt.Errorf("limits.max_limit (%d) must be >= default_limit (%d)", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}

	if c.Cache.Enabled {
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be at least 1, got %d", c.Cache.MaxEntries)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
