// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("validates", func(t *testing.T) {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("strategy weights sum to 1", func(t *testing.T) {
		sum := cfg.Strategies.UserBased.Weight + cfg.Strategies.Similarity.Weight + cfg.Strategies.Popularity.Weight
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("strategy weights sum = %f, want 1", sum)
		}
	})

	t.Run("affinity weights sum to 1", func(t *testing.T) {
		a := cfg.Affinity
		sum := a.Skill + a.Experience + a.Budget + a.Location + a.Type
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("affinity weights sum = %f, want 1", sum)
		}
	})

	t.Run("thresholds", func(t *testing.T) {
		if cfg.Strategies.UserBased.Threshold != 0.1 ||
			cfg.Strategies.Similarity.Threshold != 0.2 ||
			cfg.Strategies.Popularity.Threshold != 0.1 {
			t.Errorf("thresholds = %+v", cfg.Strategies)
		}
	})

	t.Run("cache and diversity", func(t *testing.T) {
		if !cfg.Cache.Enabled || cfg.Cache.MaxEntries != 1000 || cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("cache = %+v", cfg.Cache)
		}
		if !cfg.Diversity.Enabled || cfg.Diversity.MaxSimilarItemsPerCategory != 3 {
			t.Errorf("diversity = %+v", cfg.Diversity)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default", func(*Config) {}, false},
		{"negative strategy weight", func(c *Config) { c.Strategies.Popularity.Weight = -0.1 }, true},
		{"threshold of one", func(c *Config) { c.Strategies.Similarity.Threshold = 1 }, true},
		{"negative affinity weight", func(c *Config) { c.Affinity.Budget = -1 }, true},
		{"negative hybrid weight", func(c *Config) { c.Hybrid.RecentActivityScore = -0.5 }, true},
		{"diversity cap zero", func(c *Config) { c.Diversity.MaxSimilarItemsPerCategory = 0 }, true},
		{"diversity cap ignored when disabled", func(c *Config) {
			c.Diversity.Enabled = false
			c.Diversity.MaxSimilarItemsPerCategory = 0
		}, false},
		{"default limit zero", func(c *Config) { c.Limits.DefaultLimit = 0 }, true},
		{"max below default", func(c *Config) { c.Limits.MaxLimit = 5 }, true},
		{"cache without entries", func(c *Config) { c.Cache.MaxEntries = 0 }, true},
		{"cache without ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"cache settings ignored when disabled", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.TTL = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAffinityWeights_Combine(t *testing.T) {
	w := DefaultConfig().Affinity
	s := Score{SkillMatch: 1, ExperienceMatch: 1, BudgetMatch: 1, LocationMatch: 1, TypeMatch: 1, PopularityScore: 1}

	if got := w.Combine(s); got < 0.999 || got > 1.001 {
		t.Errorf("Combine(all ones) = %f, want 1", got)
	}
	if got := w.Combine(Score{SkillMatch: 1}); got != 0.3 {
		t.Errorf("Combine(skill only) = %f, want 0.3", got)
	}
}

func TestComponentWeights_Apply(t *testing.T) {
	w := DefaultConfig().Hybrid

	tests := []struct {
		name  string
		score Score
		want  float64
	}{
		{"empty score", Score{}, 0},
		{"similarity only", Score{SimilarityScore: 1}, 0.4},
		{"popularity and recency", Score{PopularityScore: 0.5, RecentActivityScore: 1}, 0.2},
		{"total is ignored", Score{Total: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Apply(tt.score); got < tt.want-1e-9 || got > tt.want+1e-9 {
				t.Errorf("Apply() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	clone := orig.Clone()

	clone.Limits.DefaultLimit = 42
	clone.Strategies.UserBased.Enabled = false

	if orig.Limits.DefaultLimit == 42 || !orig.Strategies.UserBased.Enabled {
		t.Error("modifying the clone changed the original")
	}
}
