// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/tomtom215/gigboard/internal/feedback"
	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/middleware"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/resilience"
)

// Health states.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// DependencyHealth is the breaker state of one dependency.
type DependencyHealth struct {
	Name    string `json:"name"`
	Breaker string `json:"breaker"`
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status       string             `json:"status"`
	Version      string             `json:"version"`
	Uptime       float64            `json:"uptime_seconds"`
	Dependencies []DependencyHealth `json:"dependencies"`
}

// StatsResponse is the body of GET /api/v1/recommendations/stats.
type StatsResponse struct {
	Engine   recommend.Stats         `json:"engine"`
	Feedback *feedback.Stats         `json:"feedback,omitempty"`
	Routes   []middleware.RouteStats `json:"routes,omitempty"`
}

// Health handles GET /api/v1/health. Degraded dependencies are reported
// with 200: the engine keeps serving from fallbacks while a breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:       StatusHealthy,
		Version:      h.version,
		Uptime:       time.Since(h.startTime).Seconds(),
		Dependencies: make([]DependencyHealth, 0, len(h.dependencies)),
	}

	for name, dep := range h.dependencies {
		state := dep.BreakerState()
		if state == resilience.StateOpen {
			status.Status = StatusDegraded
		}
		status.Dependencies = append(status.Dependencies, DependencyHealth{Name: name, Breaker: state})
	}
	sort.Slice(status.Dependencies, func(i, j int) bool {
		return status.Dependencies[i].Name < status.Dependencies[j].Name
	})

	NewResponseWriter(w, r).Success(status)
}

// HealthLive handles GET /api/v1/health/live. It only proves the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// Stats handles GET /api/v1/recommendations/stats and refreshes the cache gauges.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp := StatsResponse{Engine: h.engine.Stats()}
	metrics.UpdateCacheStats("recommendations", resp.Engine.Cache.Size, resp.Engine.Cache.Evictions)

	if h.feedbackStats != nil {
		fs := h.feedbackStats.Stats()
		resp.Feedback = &fs
	}
	if h.perfMon != nil {
		resp.Routes = h.perfMon.Stats()
	}

	NewResponseWriter(w, r).Success(resp)
}
