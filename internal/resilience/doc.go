// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package resilience wraps outbound calls in circuit breakers.
//
// A Breaker protects the catalog HTTP client and the feedback publisher.
// State changes and per-call outcomes are exported through the
// circuit_breaker_* metrics. Context cancellation by the caller is not
// counted against the upstream.
//
//	b := resilience.NewBreaker(resilience.DefaultBreakerConfig("catalog-api"), logger)
//	project, err := resilience.Do(b, func() (*recommend.Project, error) {
//	    return fetch(ctx, id)
//	})
package resilience
