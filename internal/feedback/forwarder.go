// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/metrics"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/resilience"
)

// Message metadata keys.
const (
	MetadataAction    = "action"
	MetadataUserID    = "user_id"
	MetadataProjectID = "project_id"
)

// Forwarder drains a Sink and publishes each event to the broker.
// Publish failures are logged and counted; they never reach the caller that
// submitted the feedback.
//
// Forwarder implements suture.Service. It does not close the publisher, so a
// restarted Serve keeps working.
type Forwarder struct {
	sink      *Sink
	publisher message.Publisher
	breaker   *resilience.Breaker
	topic     string
	timeout   time.Duration
	logger    zerolog.Logger
}

// NewForwarder creates a forwarder publishing to cfg.Topic.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewForwarder(sink *Sink, publisher message.Publisher, cfg *config.FeedbackConfig, logger zerolog.Logger) *Forwarder {
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Forwarder{
		sink:      sink,
		publisher: publisher,
		breaker:   resilience.NewBreaker(cfg.Breaker, logger),
		topic:     cfg.Topic,
		timeout:   timeout,
		logger:    logger.With().Str("component", "feedback_forwarder").Logger(),
	}
}

// Serve implements suture.Service.
func (f *Forwarder) Serve(ctx context.Context) error {
	f.logger.Info().Str("topic", f.topic).Msg("Feedback forwarder started")

	for {
		select {
		case <-ctx.Done():
			f.drain()
			f.logger.Info().Msg("Feedback forwarder stopped")
			return ctx.Err()
		case event := <-f.sink.Events():
			metrics.FeedbackBufferDepth.Set(float64(f.sink.Len()))
			_ = f.Forward(ctx, event)
		}
	}
}

// String implements fmt.Stringer for suture logging.
func (f *Forwarder) String() string {
	return "feedback-forwarder"
}

// BreakerState reports the publish circuit breaker state.
func (f *Forwarder) BreakerState() string {
	return f.breaker.State()
}

// Forward publishes a single event.
//
//nolint:gocritic // hugeParam: event passed by value for immutability
func (f *Forwarder) Forward(ctx context.Context, event recommend.FeedbackEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		metrics.RecordFeedbackPublished(false)
		f.logger.Error().Err(err).Msg("Failed to encode feedback event")
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	msg.SetContext(pubCtx)

	_, err = f.breaker.Execute(func() (interface{}, error) {
		return nil, f.publisher.Publish(f.topic, msg)
	})
	metrics.RecordFeedbackPublished(err == nil)
	if err != nil {
		f.logger.Warn().Err(err).
			Str("message_id", msg.UUID).
			Str("action", string(event.Action)).
			Msg("Failed to publish feedback event")
		return fmt.Errorf("publish feedback: %w", err)
	}

	f.logger.Debug().Str("message_id", msg.UUID).Str("action", string(event.Action)).Msg("Feedback forwarded")
	return nil
}

// drain publishes whatever is still buffered, bounded by one publish timeout.
func (f *Forwarder) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	for {
		select {
		case event := <-f.sink.Events():
			if ctx.Err() != nil {
				metrics.RecordFeedbackPublished(false)
				continue
			}
			_ = f.Forward(ctx, event)
		default:
			metrics.FeedbackBufferDepth.Set(0)
			return
		}
	}
}

//nolint:gocritic // hugeParam: event passed by value for immutability
func newMessage(event recommend.FeedbackEvent) (*message.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}
	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set(MetadataAction, string(event.Action))
	msg.Metadata.Set(MetadataUserID, event.UserID)
	msg.Metadata.Set(MetadataProjectID, event.ProjectID)
	return msg, nil
}
