// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/gigboard/internal/cache"
)

// Errors returned by the engine. Everything else degrades into warnings.
var (
	ErrUnknownStrategy = errors.New("unknown recommendation strategy")
	ErrNoDataProvider  = errors.New("data provider is required")
)

// CachedResult is a ranked list plus the metadata replayed on a cache hit.
type CachedResult struct {
	Items      []RecommendedProject
	Strategies []string
	Warnings   []Warning
}

// ResultCache is the cache type the engine stores ranked lists in.
type ResultCache = cache.FIFOCache[CachedResult]

// NewResultCache builds a result cache from the engine configuration.
func NewResultCache(cfg CacheConfig) *ResultCache {
	return cache.NewFIFOCache[CachedResult](cfg.MaxEntries, cfg.TTL)
}

// Observer receives per-request measurements. Implemented by the metrics package.
type Observer interface {
	ObserveRecommendation(strategy string, cacheHit bool, duration time.Duration, results int)
	ObserveWarning(strategy string, code string)
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests    int64       `json:"requests"`
	CacheHits   int64       `json:"cache_hits"`
	CacheMisses int64       `json:"cache_misses"`
	Fallbacks   int64       `json:"fallbacks"`
	Errors      int64       `json:"errors"`
	Cache       cache.Stats `json:"cache"`
}

// Engine runs recommendation strategies and post-processes their results.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	strategies map[StrategyType]Strategy
	rerankers  []Reranker
	regMu      sync.RWMutex

	dataProvider DataProvider
	results      *ResultCache
	feedback     FeedbackSink
	observer     Observer

	now func() time.Time

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	fallbacks    atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig.
// A nil results cache is created from cfg when caching is enabled.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, dp DataProvider, results *ResultCache, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if dp == nil {
		return nil, ErrNoDataProvider
	}
	if results == nil && cfg.Cache.Enabled {
		results = NewResultCache(cfg.Cache)
	}

	return &Engine{
		config:       cfg,
		logger:       logger.With().Str("component", "recommend").Logger(),
		strategies:   make(map[StrategyType]Strategy),
		dataProvider: dp,
		results:      results,
		now:          time.Now,
	}, nil
}

// RegisterStrategy adds or replaces the implementation of a strategy.
func (e *Engine) RegisterStrategy(s Strategy) {
	e.regMu.Lock()
	defer e.regMu.Unlock()

	e.strategies[s.Type()] = s
	e.logger.Info().Str("strategy", s.Type().String()).Msg("registered strategy")
}

// RegisterReranker appends a reranker to the post-processing pipeline.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.regMu.Lock()
	defer e.regMu.Unlock()

	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().Str("reranker", rr.Name()).Msg("registered reranker")
}

// SetFeedbackSink sets where SubmitFeedback forwards events.
func (e *Engine) SetFeedbackSink(sink FeedbackSink) {
	e.feedback = sink
}

// SetObserver sets the metrics observer.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// SetClock replaces the reference time used for recency scoring.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Recommend produces a ranked list for req.
//
// Missing inputs and upstream failures never fail the call: they degrade to
// a fallback strategy or an empty list and are reported in Metadata.Warnings.
// Only an unknown strategy type or a cancelled context return an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(req)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	logger := e.requestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := CacheKey(req)
	if resp := e.cachedResponse(key, req, start); resp != nil {
		logger.Debug().Msg("cache hit")
		return resp, nil
	}

	in, warnings, upstreamFailed := e.collectInput(ctx, req, logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked, ran, stratWarnings := e.runStrategy(ctx, req, in, logger)
	warnings = append(warnings, stratWarnings...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked = e.postProcess(ctx, ranked)
	if upstreamFailed {
		logger.Debug().Msg("upstream fetch failed; result not cached")
	} else {
		e.storeResults(key, req, CachedResult{Items: ranked, Strategies: ran, Warnings: warnings})
	}

	resp := e.buildResponse(req, truncate(ranked, req.Limit), ran, warnings, start, false)
	e.observe(req, resp, time.Since(start), warnings)

	logger.Debug().
		Int("candidates", len(in.Candidates)).
		Int("returned", len(resp.Recommendations)).
		Int64("latency_ms", resp.Metadata.ExecutionTime).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and validates the strategy type.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) (Request, error) {
	if req.Type == "" {
		req.Type = StrategyHybrid
	}
	if !req.Type.IsValid() {
		return req, fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Type)
	}
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.Limit <= 0 {
		req.Limit = e.config.Limits.DefaultLimit
	}
	if req.Limit > e.config.Limits.MaxLimit {
		req.Limit = e.config.Limits.MaxLimit
	}
	return req, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) requestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("type", req.Type.String()).
		Str("user_id", req.UserID).
		Str("project_id", req.ProjectID).
		Logger()
}

// cachedResponse returns a response built from the cache, or nil on a miss.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) cachedResponse(key string, req Request, start time.Time) *Response {
	if e.results == nil {
		return nil
	}

	entry, ok := e.results.Get(key)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	cached := entry.Value
	resp := e.buildResponse(req, truncate(cached.Items, req.Limit), copyStrings(cached.Strategies), cached.Warnings, start, true)
	e.observe(req, resp, time.Since(start), nil)
	return resp
}

// storeResults writes the ranked list once scoring has finished.
//
//nolint:gocritic // hugeParam: req and res passed by value for immutability
func (e *Engine) storeResults(key string, req Request, res CachedResult) {
	if e.results == nil {
		return
	}
	res.Items = copyItems(res.Items)
	res.Strategies = copyStrings(res.Strategies)
	res.Warnings = append([]Warning(nil), res.Warnings...)
	e.results.Set(key, res, req.Type.String(), e.config.Version)
}

// collectInput fetches the profile, base project and candidates concurrently.
// Provider errors are logged and treated as missing data; upstreamFailed
// reports that at least one fetch returned an error, so the result must not
// be cached.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) collectInput(ctx context.Context, req Request, logger zerolog.Logger) (in StrategyInput, warnings []Warning, upstreamFailed bool) {
	in = StrategyInput{Now: e.now()}

	wantUser := req.UserID != "" && (req.Type == StrategyUserBased || req.Type == StrategyHybrid)
	wantBase := req.ProjectID != "" && (req.Type == StrategyProjectSimilarity || req.Type == StrategyHybrid)

	var profileFailed, baseFailed, candidatesFailed bool
	g, gctx := errgroup.WithContext(ctx)

	if wantUser {
		g.Go(func() error {
			profile, err := e.dataProvider.GetUserProfile(gctx, req.UserID)
			if err != nil {
				logger.Warn().Err(err).Msg("fetch user profile failed")
				profileFailed = true
				return nil
			}
			in.User = profile
			return nil
		})
	}
	if wantBase {
		g.Go(func() error {
			project, err := e.dataProvider.GetProject(gctx, req.ProjectID)
			if err != nil {
				logger.Warn().Err(err).Msg("fetch base project failed")
				baseFailed = true
				return nil
			}
			in.BaseProject = project
			return nil
		})
	}
	g.Go(func() error {
		projects, err := e.dataProvider.GetAllProjects(gctx, req.ExcludeIDs)
		if err != nil {
			logger.Warn().Err(err).Msg("fetch candidate projects failed")
			candidatesFailed = true
			return nil
		}
		in.Candidates = projects
		return nil
	})
	_ = g.Wait() // fetches never return errors; failures are logged above

	if candidatesFailed {
		warnings = append(warnings, Warning{Code: WarnCandidatesMissing, Message: "candidate projects unavailable"})
	}

	in.Candidates = e.filterCandidates(in.Candidates, req, in.BaseProject)
	return in, warnings, profileFailed || baseFailed || candidatesFailed
}

// filterCandidates applies request exclusions and filters, and removes the
// base project from its own result list.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) filterCandidates(projects []Project, req Request, base *Project) []Project {
	exclude := make(map[string]struct{}, len(req.ExcludeIDs)+1)
	for _, id := range req.ExcludeIDs {
		exclude[id] = struct{}{}
	}
	if base != nil {
		exclude[base.ID] = struct{}{}
	}

	out := make([]Project, 0, len(projects))
	for i := range projects {
		if _, skip := exclude[projects[i].ID]; skip {
			continue
		}
		out = append(out, projects[i])
	}

	return ApplyFilters(out, req.Filters)
}

// runStrategy dispatches to the requested strategy and resolves fallbacks.
// It returns the scored items, the strategies that actually ran, and warnings.
//
//nolint:gocritic // hugeParam: req and in passed by value for immutability
func (e *Engine) runStrategy(ctx context.Context, req Request, in StrategyInput, logger zerolog.Logger) ([]RecommendedProject, []string, []Warning) {
	switch req.Type {
	case StrategyUserBased:
		var reason *Warning
		switch {
		case req.UserID == "":
			reason = &Warning{Code: WarnMissingUserID, Message: "no user id; using popularity"}
		case in.User == nil:
			reason = &Warning{Code: WarnProfileUnavailable, Message: "user profile unavailable; using popularity"}
		}
		if reason != nil {
			e.fallbacks.Add(1)
			logger.Debug().Str("reason", string(reason.Code)).Msg("falling back to popularity")
			out := e.run(ctx, StrategyPopularity, in)
			return out.Items, []string{StrategyPopularity.String()}, collect(reason, out.Warning)
		}
		out := e.run(ctx, StrategyUserBased, in)
		return out.Items, []string{StrategyUserBased.String()}, collect(out.Warning)

	case StrategyProjectSimilarity:
		if req.ProjectID == "" {
			return nil, nil, []Warning{{Code: WarnMissingProjectID, Message: "no project id for similarity"}}
		}
		out := e.run(ctx, StrategyProjectSimilarity, in)
		if out.Warning != nil {
			logger.Warn().Str("reason", out.Warning.Message).Msg("similarity recommendations unavailable")
		}
		return out.Items, []string{StrategyProjectSimilarity.String()}, collect(out.Warning)

	case StrategyPopularity:
		out := e.run(ctx, StrategyPopularity, in)
		return out.Items, []string{StrategyPopularity.String()}, collect(out.Warning)

	default:
		return e.runHybrid(ctx, req, in)
	}
}

// runHybrid runs every enabled sub-strategy whose inputs are present, merges
// the results keeping the higher total per project, and re-scores every
// survivor with the hybrid component weights.
//
//nolint:gocritic // hugeParam: req and in passed by value for immutability
func (e *Engine) runHybrid(ctx context.Context, req Request, in StrategyInput) ([]RecommendedProject, []string, []Warning) {
	cfg := e.config.Strategies
	var (
		outcomes []Outcome
		ran      []string
		warnings []Warning
	)

	if cfg.UserBased.Enabled && req.UserID != "" {
		if in.User != nil {
			outcomes = append(outcomes, e.run(ctx, StrategyUserBased, in))
			ran = append(ran, StrategyUserBased.String())
		} else {
			warnings = append(warnings, Warning{Code: WarnProfileUnavailable, Message: "user profile unavailable; skipped user-based"})
		}
	}
	if cfg.Similarity.Enabled && req.ProjectID != "" {
		if in.BaseProject != nil {
			outcomes = append(outcomes, e.run(ctx, StrategyProjectSimilarity, in))
			ran = append(ran, StrategyProjectSimilarity.String())
		} else {
			warnings = append(warnings, Warning{Code: WarnBaseProjectMissing, Message: "base project unavailable; skipped similarity"})
		}
	}
	if cfg.Popularity.Enabled {
		outcomes = append(outcomes, e.run(ctx, StrategyPopularity, in))
		ran = append(ran, StrategyPopularity.String())
	}

	var all []RecommendedProject
	for _, o := range outcomes {
		if o.Warning != nil {
			warnings = append(warnings, *o.Warning)
		}
		all = append(all, o.Items...)
	}

	merged := MergeByProject(all)
	for i := range merged {
		merged[i].Score.Total = e.config.Hybrid.Apply(merged[i].Score)
	}
	return merged, ran, warnings
}

// run executes a registered strategy. An unregistered strategy degrades.
func (e *Engine) run(ctx context.Context, t StrategyType, in StrategyInput) Outcome {
	e.regMu.RLock()
	s, ok := e.strategies[t]
	e.regMu.RUnlock()

	if !ok {
		return Degraded(WarnStrategyDisabled, "strategy %s is not registered", t)
	}
	return s.Recommend(ctx, in)
}

// MergeByProject deduplicates items by project ID, keeping the entry with the
// higher total. Order follows the first appearance of each project.
func MergeByProject(items []RecommendedProject) []RecommendedProject {
	index := make(map[string]int, len(items))
	merged := make([]RecommendedProject, 0, len(items))

	for i := range items {
		id := items[i].Project.ID
		if pos, ok := index[id]; ok {
			if items[i].Score.Total > merged[pos].Score.Total {
				merged[pos] = items[i]
			}
			continue
		}
		index[id] = len(merged)
		merged = append(merged, items[i])
	}

	return merged
}

// postProcess applies rerankers, sorts by total, caps the list at MaxLimit,
// and assigns confidence and rank.
func (e *Engine) postProcess(ctx context.Context, items []RecommendedProject) []RecommendedProject {
	e.regMu.RLock()
	rerankers := e.rerankers
	e.regMu.RUnlock()

	for _, rr := range rerankers {
		items = rr.Rerank(ctx, items)
	}

	SortByTotal(items)
	items = truncate(items, e.config.Limits.MaxLimit)

	for i := range items {
		items[i].Confidence = items[i].Score.Confidence()
		items[i].Rank = i + 1
	}
	return items
}

// SortByTotal orders items by descending total, breaking ties by project ID.
func SortByTotal(items []RecommendedProject) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score.Total != items[j].Score.Total {
			return items[i].Score.Total > items[j].Score.Total
		}
		return items[i].Project.ID < items[j].Project.ID
	})
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) buildResponse(req Request, items []RecommendedProject, ran []string, warnings []Warning, start time.Time, cacheHit bool) *Response {
	resp := &Response{
		Recommendations: items,
		Metadata: ResponseMetadata{
			TotalCount:    len(items),
			Algorithm:     req.Type.String(),
			ExecutionTime: time.Since(start).Milliseconds(),
			Version:       e.config.Version,
			CacheHit:      cacheHit,
			Strategies:    ran,
			RequestID:     req.RequestID,
		},
	}
	for _, w := range warnings {
		resp.Metadata.Warnings = append(resp.Metadata.Warnings, w.String())
	}
	return resp
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) observe(req Request, resp *Response, d time.Duration, warnings []Warning) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveRecommendation(req.Type.String(), resp.Metadata.CacheHit, d, len(resp.Recommendations))
	for _, w := range warnings {
		e.observer.ObserveWarning(req.Type.String(), string(w.Code))
	}
}

// SubmitFeedback forwards a feedback event to the configured sink.
// It never blocks on delivery and never fails the caller.
//
//nolint:gocritic // hugeParam: event passed by value for immutability
func (e *Engine) SubmitFeedback(ctx context.Context, event FeedbackEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = e.now()
	}
	if e.feedback == nil {
		e.logger.Debug().Str("action", string(event.Action)).Msg("no feedback sink configured; dropping event")
		return
	}
	e.feedback.Submit(ctx, event)
}

// InvalidateCache drops every cached result.
func (e *Engine) InvalidateCache() {
	if e.results == nil {
		return
	}
	e.results.Clear()
	e.logger.Debug().Msg("cache cleared")
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Fallbacks:   e.fallbacks.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.results != nil {
		s.Cache = e.results.Stats()
	}
	return s
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// truncate returns a copy of at most n items.
func truncate(items []RecommendedProject, n int) []RecommendedProject {
	if len(items) > n {
		items = items[:n]
	}
	return copyItems(items)
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func copyItems(items []RecommendedProject) []RecommendedProject {
	out := make([]RecommendedProject, len(items))
	copy(out, items)
	return out
}

// collect gathers non-nil warnings.
func collect(ws ...*Warning) []Warning {
	var out []Warning
	for _, w := range ws {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}
