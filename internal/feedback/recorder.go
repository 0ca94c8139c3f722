// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package feedback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// Stats summarises the feedback a Recorder has consumed.
type Stats struct {
	Total      int64            `json:"total"`
	ByAction   map[string]int64 `json:"byAction"`
	Malformed  int64            `json:"malformed"`
	LastAt     time.Time        `json:"lastAt,omitempty"`
	Adjustment float64          `json:"weightAdjustment"`
}

// Recorder consumes published feedback and keeps per-action counts. It runs
// against the in-process transport, where nothing else reads the topic.
//
// Recorder implements suture.Service.
type Recorder struct {
	subscriber message.Subscriber
	topic      string
	tuner      *WeightTuner

	mu        sync.Mutex
	total     int64
	byAction  map[string]int64
	malformed int64
	lastAt    time.Time

	logger zerolog.Logger
}

// NewRecorder creates a recorder on topic. tuner may be nil.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewRecorder(subscriber message.Subscriber, topic string, tuner *WeightTuner, logger zerolog.Logger) *Recorder {
	return &Recorder{
		subscriber: subscriber,
		topic:      topic,
		tuner:      tuner,
		byAction:   make(map[string]int64),
		logger:     logger.With().Str("component", "feedback_recorder").Logger(),
	}
}

// Serve implements suture.Service.
func (r *Recorder) Serve(ctx context.Context) error {
	messages, err := r.subscriber.Subscribe(ctx, r.topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", r.topic, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.handle(msg)
		}
	}
}

// String implements fmt.Stringer for suture logging.
func (r *Recorder) String() string {
	return "feedback-recorder"
}

func (r *Recorder) handle(msg *message.Message) {
	var event recommend.FeedbackEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		r.mu.Lock()
		r.malformed++
		r.mu.Unlock()
		r.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Discarding malformed feedback message")
		msg.Ack() // redelivery would fail the same way
		return
	}

	r.mu.Lock()
	r.total++
	r.byAction[string(event.Action)]++
	r.lastAt = event.Timestamp
	r.mu.Unlock()

	msg.Ack()
}

// Stats returns a snapshot of the consumed feedback.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	byAction := make(map[string]int64, len(r.byAction))
	for k, v := range r.byAction {
		byAction[k] = v
	}
	s := Stats{
		Total:     r.total,
		ByAction:  byAction,
		Malformed: r.malformed,
		LastAt:    r.lastAt,
	}
	if r.tuner != nil {
		s.Adjustment = r.tuner.Adjustment()
	}
	return s
}
