// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"strategy", "cache"}, // cache: "hit", "miss"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to produce a recommendation list",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"strategy"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of projects returned per request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"strategy"},
	)

	RecommendationWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_warnings_total",
			Help: "Total number of degraded recommendation results",
		},
		[]string{"strategy", "code"},
	)

	// Cache Metrics
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_evictions",
			Help: "Entries evicted since start (capacity and TTL)",
		},
		[]string{"cache_type"},
	)

	// Catalog Metrics
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog lookups",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "operation"},
	)

	CatalogRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_request_errors_total",
			Help: "Total number of failed catalog lookups",
		},
		[]string{"source", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Feedback Metrics
	FeedbackSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submitted_total",
			Help: "Total number of feedback events accepted",
		},
		[]string{"action"},
	)

	FeedbackDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_dropped_total",
			Help: "Feedback events dropped because the buffer was full",
		},
	)

	FeedbackPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_published_total",
			Help: "Feedback events forwarded to the message broker",
		},
		[]string{"result"}, // "success", "failure"
	)

	FeedbackBufferDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_buffer_depth",
			Help: "Feedback events waiting to be forwarded",
		},
	)

	FeedbackWeightAdjustment = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedback_weight_adjustment",
			Help: "Cumulative weight adjustment derived from feedback",
		},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(strategy string, cacheHit bool, duration time.Duration, results int) {
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}
	RecommendationRequests.WithLabelValues(strategy, cache).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
}

// RecordRecommendationWarning counts a degraded result.
func RecordRecommendationWarning(strategy, code string) {
	RecommendationWarnings.WithLabelValues(strategy, code).Inc()
}

// UpdateCacheStats publishes a cache snapshot.
func UpdateCacheStats(cacheType string, entries int, evictions int64) {
	CacheEntries.WithLabelValues(cacheType).Set(float64(entries))
	CacheEvictions.WithLabelValues(cacheType).Set(float64(evictions))
}

// RecordCatalogRequest records a catalog lookup.
func RecordCatalogRequest(source, operation string, duration time.Duration, err error) {
	CatalogRequestDuration.WithLabelValues(source, operation).Observe(duration.Seconds())
	if err != nil {
		CatalogRequestErrors.WithLabelValues(source, operation).Inc()
	}
}

// RecordFeedbackSubmitted counts an accepted feedback event.
func RecordFeedbackSubmitted(action string) {
	FeedbackSubmitted.WithLabelValues(action).Inc()
}

// RecordFeedbackDropped counts a feedback event lost to a full buffer.
func RecordFeedbackDropped() {
	FeedbackDropped.Inc()
}

// RecordFeedbackPublished records a forwarding attempt.
func RecordFeedbackPublished(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	FeedbackPublished.WithLabelValues(result).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// EngineObserver feeds recommendation engine events into Prometheus.
type EngineObserver struct{}

// ObserveRecommendation records a completed request.
func (EngineObserver) ObserveRecommendation(strategy string, cacheHit bool, duration time.Duration, results int) {
	RecordRecommendation(strategy, cacheHit, duration, results)
}

// ObserveWarning records a degraded result by warning code.
func (EngineObserver) ObserveWarning(strategy, code string) {
	RecordRecommendationWarning(strategy, code)
}

// StatusCode formats an HTTP status for a metric label.
func StatusCode(code int) string {
	return strconv.Itoa(code)
}
