// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/recommend/algorithms"
	"github.com/tomtom215/gigboard/internal/recommend/reranking"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// catalog is an in-memory DataProvider.
type catalog struct {
	profiles map[string]*recommend.UserProfile
	projects []recommend.Project
}

func (c *catalog) GetUserProfile(_ context.Context, id string) (*recommend.UserProfile, error) {
	return c.profiles[id], nil
}

func (c *catalog) GetAllProjects(_ context.Context, _ []string) ([]recommend.Project, error) {
	out := make([]recommend.Project, len(c.projects))
	copy(out, c.projects)
	return out, nil
}

func (c *catalog) GetProject(_ context.Context, id string) (*recommend.Project, error) {
	for i := range c.projects {
		if c.projects[i].ID == id {
			p := c.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func newCatalog() *catalog {
	projects := make([]recommend.Project, 0, 16)
	for i := 0; i < 8; i++ {
		projects = append(projects, recommend.Project{
			ID:              fmt.Sprintf("web-%d", i),
			Title:           "Frontend work",
			Category:        "web",
			Skills:          []string{"React", "TypeScript"},
			ProjectType:     recommend.ProjectContract,
			WorkType:        recommend.WorkRemote,
			ExperienceLevel: recommend.ExperienceSenior,
			BudgetMin:       4_000_000,
			BudgetMax:       7_000_000,
			Location:        "서울",
			Views:           80 + 10*i,
			Applications:    8 + i,
			BookmarkCount:   4,
			CreatedAt:       fixedNow.Add(-time.Duration(i) * 24 * time.Hour),
		})
	}
	for i := 0; i < 4; i++ {
		projects = append(projects, recommend.Project{
			ID:              fmt.Sprintf("data-%d", i),
			Title:           "Data engineering",
			Category:        "data",
			Skills:          []string{"Python", "SQL"},
			ProjectType:     recommend.ProjectFullTime,
			WorkType:        recommend.WorkOnsite,
			ExperienceLevel: recommend.ExperienceMid,
			BudgetMin:       6_000_000,
			BudgetMax:       9_000_000,
			Location:        "Busan",
			Views:           120,
			Applications:    12,
			BookmarkCount:   6,
			CreatedAt:       fixedNow.Add(-2 * 24 * time.Hour),
		})
	}

	return &catalog{
		profiles: map[string]*recommend.UserProfile{
			"u1": {
				ID:              "u1",
				Skills:          []string{"React", "Python"},
				ExperienceLevel: recommend.ExperienceSenior,
				PreferredBudget: &recommend.BudgetRange{Min: 3_000_000, Max: 8_000_000},
				Location:        "서울",
				AppliedProjects: []string{"web-0"},
			},
		},
		projects: projects,
	}
}

func newWiredEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	cfg := recommend.DefaultConfig()
	engine, err := recommend.NewEngine(cfg, newCatalog(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetClock(func() time.Time { return fixedNow })
	engine.RegisterStrategy(algorithms.NewUserBased(cfg.Strategies.UserBased, cfg.Affinity))
	engine.RegisterStrategy(algorithms.NewSimilarity(cfg.Strategies.Similarity))
	engine.RegisterStrategy(algorithms.NewPopularity(cfg.Strategies.Popularity))
	engine.RegisterReranker(reranking.NewCategoryCap(cfg.Diversity.MaxSimilarItemsPerCategory))
	return engine
}

func checkList(t *testing.T, resp *recommend.Response, limit int) {
	t.Helper()

	if len(resp.Recommendations) > limit {
		t.Errorf("got %d results, limit %d", len(resp.Recommendations), limit)
	}
	perCategory := make(map[string]int)
	seen := make(map[string]bool)
	for i, r := range resp.Recommendations {
		if r.Rank != i+1 {
			t.Errorf("rank at %d = %d", i, r.Rank)
		}
		if i > 0 && r.Score.Total > resp.Recommendations[i-1].Score.Total {
			t.Errorf("not sorted at %d", i)
		}
		if seen[r.Project.ID] {
			t.Errorf("duplicate %s", r.Project.ID)
		}
		seen[r.Project.ID] = true
		perCategory[strings.ToLower(r.Project.Category)]++
		for _, v := range r.Score.Components() {
			if v < 0 || v > 1 {
				t.Errorf("%s has component %f outside [0, 1]", r.Project.ID, v)
			}
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Errorf("%s confidence %f outside [0, 1]", r.Project.ID, r.Confidence)
		}
	}
	for c, n := range perCategory {
		if n > 3 {
			t.Errorf("category %s has %d results, cap 3", c, n)
		}
	}
}

func TestEngine_AllStrategies(t *testing.T) {
	tests := []struct {
		name string
		req  recommend.Request
	}{
		{"hybrid with user and project", recommend.Request{Type: recommend.StrategyHybrid, UserID: "u1", ProjectID: "web-3"}},
		{"hybrid anonymous", recommend.Request{Type: recommend.StrategyHybrid}},
		{"user-based", recommend.Request{Type: recommend.StrategyUserBased, UserID: "u1"}},
		{"user-based fallback", recommend.Request{Type: recommend.StrategyUserBased}},
		{"similarity", recommend.Request{Type: recommend.StrategyProjectSimilarity, ProjectID: "data-1"}},
		{"popularity", recommend.Request{Type: recommend.StrategyPopularity, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newWiredEngine(t)
			resp, err := engine.Recommend(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if len(resp.Recommendations) == 0 {
				t.Fatalf("expected results, warnings %v", resp.Metadata.Warnings)
			}
			limit := tt.req.Limit
			if limit == 0 {
				limit = 10
			}
			checkList(t, resp, limit)
		})
	}
}

func TestEngine_UserBasedSkipsApplied(t *testing.T) {
	engine := newWiredEngine(t)

	resp, err := engine.Recommend(context.Background(), recommend.Request{Type: recommend.StrategyUserBased, UserID: "u1"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range resp.Recommendations {
		if r.Project.ID == "web-0" {
			t.Error("applied project web-0 should not be recommended")
		}
	}
	if top := resp.Recommendations[0]; len(top.MatchingSkills) == 0 || top.MatchingSkills[0] != "React" {
		t.Errorf("top result matching skills = %v", top.MatchingSkills)
	}
}

func TestEngine_SimilarityExcludesBase(t *testing.T) {
	engine := newWiredEngine(t)

	resp, err := engine.Recommend(context.Background(), recommend.Request{Type: recommend.StrategyProjectSimilarity, ProjectID: "web-2"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range resp.Recommendations {
		if r.Project.ID == "web-2" {
			t.Error("base project should not be in its own similar list")
		}
	}
	if resp.Recommendations[0].Project.Category != "web" {
		t.Errorf("most similar project category = %q, want web", resp.Recommendations[0].Project.Category)
	}
}

func TestEngine_RepeatedRequestHitsCache(t *testing.T) {
	engine := newWiredEngine(t)
	req := recommend.Request{Type: recommend.StrategyHybrid, UserID: "u1"}

	first, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if first.Metadata.CacheHit || !second.Metadata.CacheHit {
		t.Errorf("cacheHit = %v then %v, want false then true", first.Metadata.CacheHit, second.Metadata.CacheHit)
	}
	if len(first.Recommendations) != len(second.Recommendations) {
		t.Fatalf("cached list length %d, want %d", len(second.Recommendations), len(first.Recommendations))
	}
	for i := range first.Recommendations {
		if first.Recommendations[i].Project.ID != second.Recommendations[i].Project.ID {
			t.Errorf("position %d: %s vs %s", i, first.Recommendations[i].Project.ID, second.Recommendations[i].Project.ID)
		}
	}
}
