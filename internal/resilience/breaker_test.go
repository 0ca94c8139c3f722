// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/gigboard/internal/metrics"
)

var errUpstream = errors.New("upstream failure")

func testBreaker(name string) *Breaker {
	return NewBreaker(BreakerConfig{
		Name:         name,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      50 * time.Millisecond,
		MinRequests:  2,
		FailureRatio: 0.5,
	}, zerolog.Nop())
}

func TestNewBreaker_Defaults(t *testing.T) {
	b := NewBreaker(BreakerConfig{}, zerolog.Nop())
	if b.Name() != "default" {
		t.Errorf("Name() = %q, want default", b.Name())
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}

	cfg := BreakerConfig{FailureRatio: 3}.withDefaults()
	if cfg.FailureRatio != 0.6 || cfg.MinRequests != 10 || cfg.MaxRequests != 3 {
		t.Errorf("withDefaults() = %+v", cfg)
	}
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := testBreaker("test-opens")

	for i := 0; i < 2; i++ {
		if _, err := b.Execute(func() (interface{}, error) { return nil, errUpstream }); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d error = %v, want upstream failure", i, err)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %q, want open", b.State())
	}

	called := false
	_, err := b.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	if !IsRejected(err) {
		t.Errorf("error = %v, want rejection", err)
	}
	if called {
		t.Error("function should not run while open")
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-opens")); got != 2 {
		t.Errorf("state metric = %f, want 2", got)
	}
}

func TestBreaker_MinimumRequests(t *testing.T) {
	b := NewBreaker(BreakerConfig{Name: "test-min", MinRequests: 5, FailureRatio: 0.5}, zerolog.Nop())

	for i := 0; i < 4; i++ {
		_, _ = b.Execute(func() (interface{}, error) { return nil, errUpstream })
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q after 4 failures, want closed", b.State())
	}
}

func TestBreaker_RecoversThroughHalfOpen(t *testing.T) {
	b := testBreaker("test-recover")

	for i := 0; i < 2; i++ {
		_, _ = b.Execute(func() (interface{}, error) { return nil, errUpstream })
	}
	time.Sleep(80 * time.Millisecond)

	if b.State() != "half-open" {
		t.Fatalf("State() = %q, want half-open", b.State())
	}

	if _, err := b.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("probe error = %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerConsecutiveFailures.WithLabelValues("test-recover")); got != 0 {
		t.Errorf("consecutive failures = %f, want 0", got)
	}
}

func TestBreaker_CancellationIsNotAFailure(t *testing.T) {
	b := testBreaker("test-cancel")

	for i := 0; i < 5; i++ {
		_, err := b.Execute(func() (interface{}, error) { return nil, context.Canceled })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestDo(t *testing.T) {
	b := testBreaker("test-do")

	type payload struct{ ID string }

	got, err := Do(b, func() (*payload, error) { return &payload{ID: "p1"}, nil })
	if err != nil || got == nil || got.ID != "p1" {
		t.Errorf("Do() = %v, %v", got, err)
	}

	got, err = Do(b, func() (*payload, error) { return nil, nil })
	if err != nil || got != nil {
		t.Errorf("Do() nil result = %v, %v", got, err)
	}

	list, err := Do(b, func() ([]string, error) { return nil, errUpstream })
	if !errors.Is(err, errUpstream) || list != nil {
		t.Errorf("Do() error path = %v, %v", list, err)
	}
}

func TestStateHelpers(t *testing.T) {
	tests := []struct {
		state gobreaker.State
		value float64
		str   string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
		{gobreaker.State(99), -1, "unknown"},
	}

	for _, tt := range tests {
		if got := StateValue(tt.state); got != tt.value {
			t.Errorf("StateValue(%v) = %f, want %f", tt.state, got, tt.value)
		}
		if got := StateString(tt.state); got != tt.str {
			t.Errorf("StateString(%v) = %q, want %q", tt.state, got, tt.str)
		}
	}
}
