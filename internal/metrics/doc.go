// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry at package init via
promauto and exposed at /metrics by the API router.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the limiter (counter)

Recommendation Metrics:
  - recommendation_requests_total: Requests by strategy and cache outcome
  - recommendation_duration_seconds: Time to produce a list
  - recommendation_results: List sizes
  - recommendation_warnings_total: Degraded results by warning code

Cache Metrics:
  - cache_entries, cache_evictions: Snapshot of the result cache

Catalog Metrics:
  - catalog_request_duration_seconds, catalog_request_errors_total
    Labels: source ("http", "badger"), operation

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: success, failure, rejected
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

Feedback Metrics:
  - feedback_submitted_total, feedback_dropped_total
  - feedback_published_total: success, failure
  - feedback_buffer_depth
  - feedback_weight_adjustment

# Usage

	metrics.RecordAPIRequest("GET", "/api/v1/recommendations", "200", elapsed)
	engine.SetObserver(metrics.EngineObserver{})

# Example Alerts

	- alert: RecommendationLatencyHigh
	  expr: histogram_quantile(0.95, rate(recommendation_duration_seconds_bucket[5m])) > 0.5
	  for: 10m

	- alert: CatalogCircuitOpen
	  expr: circuit_breaker_state{name="catalog-api"} == 2
	  for: 1m
*/
package metrics
