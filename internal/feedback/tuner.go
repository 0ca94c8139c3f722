// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package feedback

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// Per-event adjustment deltas.
const (
	LikeDelta    = 0.1
	DislikeDelta = -0.05
)

// WeightTuner accumulates a weight adjustment from feedback. The value is
// logged and exported as feedback_weight_adjustment; the scoring weights in
// recommend.Config are not changed by it.
type WeightTuner struct {
	mu         sync.Mutex
	adjustment float64
	events     int64
	logger     zerolog.Logger
}

// NewWeightTuner creates a tuner starting at zero.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewWeightTuner(logger zerolog.Logger) *WeightTuner {
	return &WeightTuner{
		logger: logger.With().Str("component", "weight_tuner").Logger(),
	}
}

// Delta returns the adjustment a single action contributes.
func Delta(action recommend.FeedbackAction) float64 {
	switch action {
	case recommend.FeedbackLike:
		return LikeDelta
	case recommend.FeedbackDislike:
		return DislikeDelta
	default:
		return 0
	}
}

// UpdateWeights folds event into the running adjustment and returns the delta applied.
//
//nolint:gocritic // hugeParam: event passed by value for immutability
func (t *WeightTuner) UpdateWeights(event recommend.FeedbackEvent) float64 {
	delta := Delta(event.Action)

	t.mu.Lock()
	t.adjustment += delta
	t.events++
	total := t.adjustment
	t.mu.Unlock()

	metrics.FeedbackWeightAdjustment.Set(total)
	if delta != 0 {
		t.logger.Debug().
			Str("action", string(event.Action)).
			Str("algorithm", event.Algorithm).
			Float64("delta", delta).
			Float64("adjustment", total).
			Msg("Feedback weight adjustment")
	}
	return delta
}

// Adjustment returns the accumulated adjustment.
func (t *WeightTuner) Adjustment() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.adjustment
}

// Events returns how many events the tuner has seen.
func (t *WeightTuner) Events() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events
}
