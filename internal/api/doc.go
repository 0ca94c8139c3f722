// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package api exposes the recommendation engine over HTTP.

Routes (chi):

	GET    /api/v1/health                            dependency breaker states
	GET    /api/v1/health/live                       liveness probe
	GET    /api/v1/recommendations                   query-string request
	POST   /api/v1/recommendations                   JSON request body
	GET    /api/v1/recommendations/similar/{projectID}
	GET    /api/v1/recommendations/user/{userID}
	GET    /api/v1/recommendations/stats             engine, cache, feedback and route stats
	DELETE /api/v1/recommendations/cache             drop cached results
	POST   /api/v1/feedback                          202, forwarded asynchronously
	GET    /metrics                                  Prometheus

Every JSON response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {...}}, "meta": {...}}

Request bodies are validated with go-playground/validator through the
validation package. Engine fallbacks (unknown user, missing base project,
upstream outage) still answer 200 and carry warnings in the response
metadata; only an unknown strategy or an expired deadline becomes an error.

Middleware order: request ID, real IP, panic recovery and CORS globally; per
group rate limiting (httprate), security headers, Prometheus metrics, latency
tracking and gzip.
*/
package api
