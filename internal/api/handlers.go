// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/gigboard/internal/feedback"
	"github.com/tomtom215/gigboard/internal/middleware"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// Recommender is the engine surface the handlers use. *recommend.Engine
// implements it.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	SubmitFeedback(ctx context.Context, event recommend.FeedbackEvent)
	InvalidateCache()
	Stats() recommend.Stats
}

// FeedbackStatser reports consumed feedback. *feedback.Recorder implements it.
type FeedbackStatser interface {
	Stats() feedback.Stats
}

// BreakerReporter is a dependency guarded by a circuit breaker.
type BreakerReporter interface {
	BreakerState() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendation and cache endpoints
//   - handlers_feedback.go: feedback intake
//   - handlers_health.go: health and stats
type Handler struct {
	engine          Recommender
	feedbackStats   FeedbackStatser
	perfMon         *middleware.PerformanceMonitor
	dependencies    map[string]BreakerReporter
	requestTimeout  time.Duration
	version         string
	startTime       time.Time
	feedbackEnabled bool
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithFeedbackStats reports recorder statistics on the stats endpoint.
func WithFeedbackStats(s FeedbackStatser) HandlerOption {
	return func(h *Handler) { h.feedbackStats = s }
}

// WithPerformanceMonitor reports per-route latency on the stats endpoint.
func WithPerformanceMonitor(pm *middleware.PerformanceMonitor) HandlerOption {
	return func(h *Handler) { h.perfMon = pm }
}

// WithDependency adds a breaker-guarded dependency to the health report.
func WithDependency(name string, dep BreakerReporter) HandlerOption {
	return func(h *Handler) { h.dependencies[name] = dep }
}

// WithRequestTimeout bounds each recommendation computation.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) { h.requestTimeout = d }
}

// WithFeedbackDisabled makes the feedback endpoint answer 503.
func WithFeedbackDisabled() HandlerOption {
	return func(h *Handler) { h.feedbackEnabled = false }
}

// NewHandler creates the API handler. version is reported by the health endpoint.
func NewHandler(engine Recommender, version string, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:          engine,
		dependencies:    make(map[string]BreakerReporter),
		requestTimeout:  10 * time.Second,
		version:         version,
		startTime:       time.Now(),
		feedbackEnabled: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
