// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package middleware provides the infrastructure HTTP middleware mounted on the
chi router.

  - RequestID: reuses or generates X-Request-ID and stores it in the context
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled by
    chi route pattern
  - PerformanceMonitor: sliding window of latencies with per-route percentiles,
    reported by the stats endpoint

All middleware has the func(http.Handler) http.Handler shape:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(perfMon.Middleware)

Route patterns are only known after chi has matched the route, so
PrometheusMetrics and PerformanceMonitor read them once the wrapped handler
returns.
*/
package middleware
