// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"successful GET", "GET", "/api/v1/recommendations", "200", 25 * time.Millisecond},
		{"feedback POST", "POST", "/api/v1/feedback", "202", 5 * time.Millisecond},
		{"validation failure", "POST", "/api/v1/recommendations", "400", 2 * time.Millisecond},
		{"rate limited", "GET", "/api/v1/recommendations/similar/{projectID}", "429", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("counter delta = %f, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest_RequestLifecycle verifies the gauge returns to its start value
func TestTrackActiveRequest_RequestLifecycle(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+2 {
		t.Errorf("active = %f, want %f", got, start+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active = %f, want %f", got, start)
	}
}

func TestRecordRecommendation(t *testing.T) {
	hitBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues("hybrid", "hit"))
	missBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues("hybrid", "miss"))

	RecordRecommendation("hybrid", true, time.Millisecond, 10)
	RecordRecommendation("hybrid", false, 20*time.Millisecond, 7)
	RecordRecommendation("hybrid", false, 15*time.Millisecond, 0)

	if d := testutil.ToFloat64(RecommendationRequests.WithLabelValues("hybrid", "hit")) - hitBefore; d != 1 {
		t.Errorf("hit delta = %f, want 1", d)
	}
	if d := testutil.ToFloat64(RecommendationRequests.WithLabelValues("hybrid", "miss")) - missBefore; d != 2 {
		t.Errorf("miss delta = %f, want 2", d)
	}
}

func TestEngineObserver(t *testing.T) {
	var obs EngineObserver

	before := testutil.ToFloat64(RecommendationWarnings.WithLabelValues("user-based", "profile_unavailable"))
	obs.ObserveRecommendation("user-based", false, time.Millisecond, 3)
	obs.ObserveWarning("user-based", "profile_unavailable")

	if d := testutil.ToFloat64(RecommendationWarnings.WithLabelValues("user-based", "profile_unavailable")) - before; d != 1 {
		t.Errorf("warning delta = %f, want 1", d)
	}
}

func TestUpdateCacheStats(t *testing.T) {
	UpdateCacheStats("recommendations", 42, 3)

	if got := testutil.ToFloat64(CacheEntries.WithLabelValues("recommendations")); got != 42 {
		t.Errorf("entries = %f, want 42", got)
	}
	if got := testutil.ToFloat64(CacheEvictions.WithLabelValues("recommendations")); got != 3 {
		t.Errorf("evictions = %f, want 3", got)
	}
}

func TestRecordCatalogRequest(t *testing.T) {
	before := testutil.ToFloat64(CatalogRequestErrors.WithLabelValues("http", "get_project"))

	RecordCatalogRequest("http", "get_project", 3*time.Millisecond, nil)
	RecordCatalogRequest("http", "get_project", 3*time.Millisecond, errors.New("timeout"))

	if d := testutil.ToFloat64(CatalogRequestErrors.WithLabelValues("http", "get_project")) - before; d != 1 {
		t.Errorf("error delta = %f, want 1", d)
	}
}

func TestFeedbackMetrics(t *testing.T) {
	likeBefore := testutil.ToFloat64(FeedbackSubmitted.WithLabelValues("like"))
	droppedBefore := testutil.ToFloat64(FeedbackDropped)
	failBefore := testutil.ToFloat64(FeedbackPublished.WithLabelValues("failure"))

	RecordFeedbackSubmitted("like")
	RecordFeedbackDropped()
	RecordFeedbackPublished(true)
	RecordFeedbackPublished(false)

	if d := testutil.ToFloat64(FeedbackSubmitted.WithLabelValues("like")) - likeBefore; d != 1 {
		t.Errorf("submitted delta = %f", d)
	}
	if d := testutil.ToFloat64(FeedbackDropped) - droppedBefore; d != 1 {
		t.Errorf("dropped delta = %f", d)
	}
	if d := testutil.ToFloat64(FeedbackPublished.WithLabelValues("failure")) - failBefore; d != 1 {
		t.Errorf("failure delta = %f", d)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "test-breaker"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	CircuitBreakerRequests.WithLabelValues(cbName, "rejected").Inc()
	CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(5)
	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("state = %f, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerConsecutiveFailures.WithLabelValues(cbName)); got != 5 {
		t.Errorf("consecutive failures = %f, want 5", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", "go1.25")); got != 1 {
		t.Errorf("app_info = %f, want 1", got)
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(404); got != "404" {
		t.Errorf("StatusCode(404) = %q", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				RecordAPIRequest("GET", "/api/v1/health", "200", time.Millisecond)
				RecordRecommendation("popularity", j%2 == 0, time.Millisecond, j%10)
				TrackActiveRequest(true)
				TrackActiveRequest(false)
			}
		}()
	}
	wg.Wait()
}

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		RecommendationRequests,
		RecommendationDuration,
		RecommendationResults,
		RecommendationWarnings,
		CacheEntries,
		CacheEvictions,
		CatalogRequestDuration,
		CatalogRequestErrors,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		FeedbackSubmitted,
		FeedbackDropped,
		FeedbackPublished,
		FeedbackBufferDepth,
		FeedbackWeightAdjustment,
		AppInfo,
		AppUptime,
	}

	for _, c := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		c.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("collector has no descriptors")
		}
	}
}

func BenchmarkRecordRecommendation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRecommendation("hybrid", i%2 == 0, 5*time.Millisecond, 10)
	}
}
