// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package feedback

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// DefaultBufferSize is used when NewSink is given a non-positive size.
const DefaultBufferSize = 1024

// Sink is a recommend.FeedbackSink that buffers events for the Forwarder.
// Submit never blocks: when the buffer is full the event is dropped and counted.
type Sink struct {
	events chan recommend.FeedbackEvent
	tuner  *WeightTuner
	logger zerolog.Logger
}

var _ recommend.FeedbackSink = (*Sink)(nil)

// NewSink creates a sink buffering up to size events. tuner may be nil.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewSink(size int, tuner *WeightTuner, logger zerolog.Logger) *Sink {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Sink{
		events: make(chan recommend.FeedbackEvent, size),
		tuner:  tuner,
		logger: logger.With().Str("component", "feedback_sink").Logger(),
	}
}

// Submit implements recommend.FeedbackSink.
//
//nolint:gocritic // hugeParam: event passed by value to match the interface
func (s *Sink) Submit(_ context.Context, event recommend.FeedbackEvent) {
	if s.tuner != nil {
		s.tuner.UpdateWeights(event)
	}

	select {
	case s.events <- event:
		metrics.RecordFeedbackSubmitted(string(event.Action))
		metrics.FeedbackBufferDepth.Set(float64(len(s.events)))
	default:
		metrics.RecordFeedbackDropped()
		s.logger.Warn().
			Str("user_id", event.UserID).
			Str("project_id", event.ProjectID).
			Str("action", string(event.Action)).
			Msg("Feedback buffer full, dropping event")
	}
}

// Events is the channel the Forwarder drains.
func (s *Sink) Events() <-chan recommend.FeedbackEvent {
	return s.events
}

// Len returns the number of buffered events.
func (s *Sink) Len() int {
	return len(s.events)
}
