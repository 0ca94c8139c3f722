// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"context"
	"math"
	"strings"
	"time"
)

// StrategyType selects which scoring strategy the engine runs.
type StrategyType string

// Supported strategies.
const (
	StrategyUserBased         StrategyType = "user-based"
	StrategyProjectSimilarity StrategyType = "project-similarity"
	StrategyPopularity        StrategyType = "popularity"
	StrategyHybrid            StrategyType = "hybrid"
)

// String returns the wire name of the strategy.
func (s StrategyType) String() string {
	return string(s)
}

// IsValid reports whether s names a known strategy.
func (s StrategyType) IsValid() bool {
	switch s {
	case StrategyUserBased, StrategyProjectSimilarity, StrategyPopularity, StrategyHybrid:
		return true
	default:
		return false
	}
}

// BudgetRange is an inclusive budget interval in minor currency units.
// A zero bound is unspecified: Min defaults to 0 and Max to unbounded.
type BudgetRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Unspecified reports whether neither bound is set.
func (b *BudgetRange) Unspecified() bool {
	return b == nil || (b.Min == 0 && b.Max == 0)
}

// UserProfile is a read-only view of a freelancer profile.
type UserProfile struct {
	ID                    string          `json:"id"`
	Skills                []string        `json:"skills"`
	ExperienceLevel       ExperienceLevel `json:"experienceLevel,omitempty"`
	PreferredProjectTypes []ProjectType   `json:"preferredProjectTypes,omitempty"`
	PreferredBudget       *BudgetRange    `json:"preferredBudgetRange,omitempty"`
	Location              string          `json:"location,omitempty"`
	AppliedProjects       []string        `json:"appliedProjects,omitempty"`
	BookmarkedProjects    []string        `json:"bookmarkedProjects,omitempty"`
	CompletedProjects     []string        `json:"completedProjects,omitempty"`
}

// Project is a candidate marketplace project. It is never mutated during scoring.
type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	Skills          []string        `json:"skills"`
	BudgetMin       int64           `json:"budgetMin"`
	BudgetMax       int64           `json:"budgetMax"`
	ProjectType     ProjectType     `json:"projectType,omitempty"`
	WorkType        WorkType        `json:"workType,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	Location        string          `json:"location,omitempty"`
	Views           int             `json:"views"`
	Applications    int             `json:"applications"`
	BookmarkCount   int             `json:"bookmarkCount"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status,omitempty"`
}

// HasSkill reports whether the project lists skill, ignoring case.
func (p *Project) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

// Score holds the per-component match scores of a recommendation.
// Components a strategy does not compute stay at zero. Total is the
// weighted linear combination of the populated components.
type Score struct {
	SkillMatch          float64 `json:"skillMatch"`
	ExperienceMatch     float64 `json:"experienceMatch"`
	BudgetMatch         float64 `json:"budgetMatch"`
	LocationMatch       float64 `json:"locationMatch"`
	TypeMatch           float64 `json:"typeMatch"`
	PopularityScore     float64 `json:"popularityScore"`
	SimilarityScore     float64 `json:"similarityScore"`
	RecentActivityScore float64 `json:"recentActivityScore"`
	Total               float64 `json:"total"`
}

// Components returns the eight component scores in declaration order.
//
//nolint:gocritic // value receiver keeps Score immutable
func (s Score) Components() []float64 {
	return []float64{
		s.SkillMatch, s.ExperienceMatch, s.BudgetMatch, s.LocationMatch,
		s.TypeMatch, s.PopularityScore, s.SimilarityScore, s.RecentActivityScore,
	}
}

// Confidence rewards consistent agreement across signals over a single
// strong one: clamp01(mean - 0.5*stddev) over the non-zero components.
//
//nolint:gocritic // value receiver keeps Score immutable
func (s Score) Confidence() float64 {
	var values []float64
	for _, v := range s.Components() {
		if v != 0 {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(len(values)))

	return Clamp01(mean - 0.5*stddev)
}

// RecommendedProject is a scored candidate in a recommendation list.
// Rank is assigned only after the final sort.
type RecommendedProject struct {
	Project        Project  `json:"project"`
	Score          Score    `json:"recommendationScore"`
	Reasons        []string `json:"recommendationReason"`
	MatchingSkills []string `json:"matchingSkills"`
	Confidence     float64  `json:"confidence"`
	Rank           int      `json:"rank"`
}

// Request describes a single recommendation request.
type Request struct {
	// Type selects the strategy. Empty means hybrid.
	Type StrategyType `json:"type,omitempty"`

	// UserID is required by the user-based strategy.
	UserID string `json:"userId,omitempty"`

	// ProjectID is the base project for the similarity strategy.
	ProjectID string `json:"projectId,omitempty"`

	// ExcludeIDs are project IDs never returned.
	ExcludeIDs []string `json:"excludeIds,omitempty"`

	// Limit caps the number of results. Zero uses the configured default.
	Limit int `json:"limit,omitempty"`

	// Filters narrows the candidate set. See ApplyFilters for recognised keys.
	Filters map[string]any `json:"filters,omitempty"`

	// RequestID is propagated into logs and response metadata.
	RequestID string `json:"-"`
}

// Response is the result of a recommendation request.
type Response struct {
	Recommendations []RecommendedProject `json:"recommendations"`
	Metadata        ResponseMetadata     `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	TotalCount    int      `json:"totalCount"`
	Algorithm     string   `json:"algorithm"`
	ExecutionTime int64    `json:"executionTime"`
	Version       string   `json:"version"`
	CacheHit      bool     `json:"cacheHit"`
	Strategies    []string `json:"strategies,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	RequestID     string   `json:"requestId,omitempty"`
}

// FeedbackAction is a post-hoc user signal on a recommendation.
type FeedbackAction string

// Feedback actions.
const (
	FeedbackLike     FeedbackAction = "like"
	FeedbackDislike  FeedbackAction = "dislike"
	FeedbackApply    FeedbackAction = "apply"
	FeedbackBookmark FeedbackAction = "bookmark"
)

// IsValid reports whether a is a known feedback action.
func (a FeedbackAction) IsValid() bool {
	switch a {
	case FeedbackLike, FeedbackDislike, FeedbackApply, FeedbackBookmark:
		return true
	default:
		return false
	}
}

// FeedbackEvent is a single feedback signal.
type FeedbackEvent struct {
	UserID    string            `json:"userId"`
	ProjectID string            `json:"projectId"`
	Action    FeedbackAction    `json:"action"`
	Algorithm string            `json:"algorithm,omitempty"`
	Rank      int               `json:"rank,omitempty"`
	Context   map[string]string `json:"context,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// DataProvider fetches profiles and candidate projects.
// The engine logs provider errors and treats them as missing data.
type DataProvider interface {
	// GetUserProfile returns the profile for userID, or nil if unknown.
	GetUserProfile(ctx context.Context, userID string) (*UserProfile, error)

	// GetAllProjects returns every candidate project not listed in excludeIDs.
	GetAllProjects(ctx context.Context, excludeIDs []string) ([]Project, error)

	// GetProject returns a single project, or nil if unknown.
	GetProject(ctx context.Context, projectID string) (*Project, error)
}

// FeedbackSink receives feedback events. Submit must not block.
type FeedbackSink interface {
	Submit(ctx context.Context, event FeedbackEvent)
}

// StrategyInput is the data a strategy scores against.
type StrategyInput struct {
	// User is nil when no profile could be resolved.
	User *UserProfile

	// BaseProject is nil when no base project could be resolved.
	BaseProject *Project

	// Candidates is the filtered candidate set.
	Candidates []Project

	// Now is the reference time for recency calculations.
	Now time.Time
}

// Strategy produces scored candidates for one signal source.
type Strategy interface {
	// Type returns the strategy this implementation provides.
	Type() StrategyType

	// Recommend scores the candidates. Strategies never fail; missing
	// inputs produce an Outcome carrying a Warning.
	Recommend(ctx context.Context, in StrategyInput) Outcome
}

// Reranker post-processes a scored list before the final sort.
type Reranker interface {
	Name() string
	Rerank(ctx context.Context, items []RecommendedProject) []RecommendedProject
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
