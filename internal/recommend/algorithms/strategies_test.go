// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package algorithms

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/gigboard/internal/recommend"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func seoulUser() *recommend.UserProfile {
	return &recommend.UserProfile{
		ID:              "u1",
		Skills:          []string{"React", "Python"},
		ExperienceLevel: recommend.ExperienceSenior,
		PreferredBudget: &recommend.BudgetRange{Min: 3_000_000, Max: 8_000_000},
		Location:        "서울",
	}
}

func seoulProject() recommend.Project {
	return recommend.Project{
		ID:              "p1",
		Title:           "Admin dashboard",
		Category:        "web",
		Skills:          []string{"React", "TypeScript", "Node.js"},
		ExperienceLevel: recommend.ExperienceSenior,
		BudgetMin:       5_000_000,
		BudgetMax:       8_000_000,
		Location:        "서울",
	}
}

func findItem(items []recommend.RecommendedProject, id string) *recommend.RecommendedProject {
	for i := range items {
		if items[i].Project.ID == id {
			return &items[i]
		}
	}
	return nil
}

func TestUserBased_Type(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)
	if s.Type() != recommend.StrategyUserBased {
		t.Errorf("Type() = %q", s.Type())
	}
	if s.Weight() != 0.4 {
		t.Errorf("Weight() = %f, want 0.4", s.Weight())
	}
}

func TestUserBased_ProfileScenario(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		User:       seoulUser(),
		Candidates: []recommend.Project{seoulProject()},
		Now:        testNow,
	})
	if out.Warning != nil {
		t.Fatalf("unexpected warning %v", out.Warning)
	}

	item := findItem(out.Items, "p1")
	if item == nil {
		t.Fatal("p1 should be recommended")
	}

	score := item.Score
	if !approxEqual(score.SkillMatch, 1.0/3.0) {
		t.Errorf("SkillMatch = %f, want 1/3", score.SkillMatch)
	}
	if score.ExperienceMatch != 1 {
		t.Errorf("ExperienceMatch = %f, want 1", score.ExperienceMatch)
	}
	if score.BudgetMatch != 1 {
		t.Errorf("BudgetMatch = %f, want 1", score.BudgetMatch)
	}
	if score.LocationMatch != 1 {
		t.Errorf("LocationMatch = %f, want 1", score.LocationMatch)
	}
	if score.TypeMatch != 0.5 {
		t.Errorf("TypeMatch = %f, want neutral 0.5", score.TypeMatch)
	}
	if score.Total <= 0 {
		t.Errorf("Total = %f, want > 0", score.Total)
	}
	if want := 0.4 * cfg.Affinity.Combine(score); !approxEqual(score.Total, want) {
		t.Errorf("Total = %f, want %f", score.Total, want)
	}
	if !reflect.DeepEqual(item.MatchingSkills, []string{"React"}) {
		t.Errorf("MatchingSkills = %v, want [React]", item.MatchingSkills)
	}
	if len(item.Reasons) == 0 {
		t.Error("expected at least one reason")
	}
}

func TestUserBased_SkipsAppliedAndCompleted(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)

	user := seoulUser()
	user.AppliedProjects = []string{"p1"}
	user.CompletedProjects = []string{"p2"}

	p2 := seoulProject()
	p2.ID = "p2"
	p3 := seoulProject()
	p3.ID = "p3"

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		User:       user,
		Candidates: []recommend.Project{seoulProject(), p2, p3},
		Now:        testNow,
	})

	if len(out.Items) != 1 || out.Items[0].Project.ID != "p3" {
		t.Errorf("items = %v, want only p3", out.Items)
	}
}

func TestUserBased_ThresholdDropsWeakMatches(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)

	user := &recommend.UserProfile{
		ID:                    "u2",
		Skills:                []string{"React"},
		ExperienceLevel:       recommend.ExperienceJunior,
		PreferredBudget:       &recommend.BudgetRange{Min: 1_000_000, Max: 2_000_000},
		Location:              "Busan",
		PreferredProjectTypes: []recommend.ProjectType{recommend.ProjectFreelance},
	}
	weak := recommend.Project{
		ID:              "weak",
		Skills:          []string{"COBOL"},
		ExperienceLevel: recommend.ExperienceExpert,
		BudgetMin:       9_000_000,
		BudgetMax:       12_000_000,
		Location:        "Seoul",
		ProjectType:     recommend.ProjectFullTime,
	}

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		User:       user,
		Candidates: []recommend.Project{weak},
		Now:        testNow,
	})
	if len(out.Items) != 0 {
		t.Errorf("weak match total %f should fall below the threshold", out.Items[0].Score.Total)
	}
}

func TestUserBased_NoProfile(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		Candidates: []recommend.Project{seoulProject()},
	})
	if len(out.Items) != 0 {
		t.Errorf("items = %v, want none", out.Items)
	}
	if out.Warning == nil || out.Warning.Code != recommend.WarnProfileUnavailable {
		t.Errorf("warning = %v, want profile_unavailable", out.Warning)
	}
}

func TestUserBased_CancelledContext(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewUserBased(cfg.Strategies.UserBased, cfg.Affinity)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := s.Recommend(ctx, recommend.StrategyInput{
		User:       seoulUser(),
		Candidates: []recommend.Project{seoulProject()},
	})
	if len(out.Items) != 0 {
		t.Errorf("cancelled scoring should stop early, got %d items", len(out.Items))
	}
}

func TestSimilarity_Recommend(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewSimilarity(cfg.Strategies.Similarity)

	base := recommend.Project{
		ID:              "base",
		Category:        "web",
		ProjectType:     recommend.ProjectContract,
		WorkType:        recommend.WorkRemote,
		ExperienceLevel: recommend.ExperienceSenior,
		Skills:          []string{"React", "TypeScript", "Node.js"},
		BudgetMin:       3_000_000,
		BudgetMax:       5_000_000,
	}
	twin := base
	twin.ID = "twin"
	unrelated := recommend.Project{ID: "unrelated", Skills: []string{"Figma"}}

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		BaseProject: &base,
		Candidates:  []recommend.Project{base, twin, unrelated},
		Now:         testNow,
	})
	if out.Warning != nil {
		t.Fatalf("unexpected warning %v", out.Warning)
	}

	if findItem(out.Items, "base") != nil {
		t.Error("base project must not be recommended against itself")
	}
	if findItem(out.Items, "unrelated") != nil {
		t.Error("zero-similarity project should fall below the threshold")
	}

	item := findItem(out.Items, "twin")
	if item == nil {
		t.Fatal("twin should be recommended")
	}
	if !approxEqual(item.Score.SimilarityScore, 1) {
		t.Errorf("SimilarityScore = %f, want 1", item.Score.SimilarityScore)
	}
	if !approxEqual(item.Score.Total, 0.4) {
		t.Errorf("Total = %f, want 0.4", item.Score.Total)
	}

	wantReasons := []string{
		"Very similar to the project you viewed",
		"Same category: web",
		"Same project type: contract",
		"Shared skills: React, TypeScript, Node.js",
	}
	if !reflect.DeepEqual(item.Reasons, wantReasons) {
		t.Errorf("Reasons = %v, want %v", item.Reasons, wantReasons)
	}
	if !reflect.DeepEqual(item.MatchingSkills, base.Skills) {
		t.Errorf("MatchingSkills = %v", item.MatchingSkills)
	}
}

func TestSimilarity_NoBaseProject(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewSimilarity(cfg.Strategies.Similarity)

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		Candidates: []recommend.Project{seoulProject()},
	})
	if len(out.Items) != 0 {
		t.Errorf("items = %v, want none", out.Items)
	}
	if out.Warning == nil || out.Warning.Code != recommend.WarnBaseProjectMissing {
		t.Errorf("warning = %v, want base_project_unavailable", out.Warning)
	}
}

func TestPopularity_Recommend(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewPopularity(cfg.Strategies.Popularity)

	hot := recommend.Project{
		ID: "hot", Views: 300, Applications: 15, BookmarkCount: 6, CreatedAt: testNow.Add(-time.Hour),
	}
	cold := recommend.Project{
		ID: "cold", Views: 3, CreatedAt: testNow.Add(-90 * 24 * time.Hour),
	}

	out := s.Recommend(context.Background(), recommend.StrategyInput{
		Candidates: []recommend.Project{hot, cold},
		Now:        testNow,
	})
	if out.Warning != nil {
		t.Fatalf("unexpected warning %v", out.Warning)
	}
	if findItem(out.Items, "cold") != nil {
		t.Error("cold project should fall below the threshold")
	}

	item := findItem(out.Items, "hot")
	if item == nil {
		t.Fatal("hot project should be recommended")
	}
	if item.Score.PopularityScore <= 0.8 {
		t.Errorf("PopularityScore = %f, want > 0.8", item.Score.PopularityScore)
	}
	if !approxEqual(item.Score.Total, 0.2*item.Score.PopularityScore) {
		t.Errorf("Total = %f, want weight * trending", item.Score.Total)
	}
	if item.Score.RecentActivityScore <= 0.7 {
		t.Errorf("RecentActivityScore = %f", item.Score.RecentActivityScore)
	}

	wantReasons := []string{"Trending now", "Recently posted", "Popular with freelancers", "Frequently viewed"}
	if !reflect.DeepEqual(item.Reasons, wantReasons) {
		t.Errorf("Reasons = %v, want %v", item.Reasons, wantReasons)
	}
}

func TestPopularity_NeedsNoUser(t *testing.T) {
	cfg := recommend.DefaultConfig()
	s := NewPopularity(cfg.Strategies.Popularity)

	out := s.Recommend(context.Background(), recommend.StrategyInput{Now: testNow})
	if out.Warning != nil {
		t.Errorf("popularity should never degrade, got %v", out.Warning)
	}
}
