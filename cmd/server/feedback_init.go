// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package main

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/gigboard/internal/config"
	"github.com/tomtom215/gigboard/internal/feedback"
	"github.com/tomtom215/gigboard/internal/logging"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/supervisor"
)

// feedbackComponents holds the feedback pipeline. recorder is nil on the
// nats transport, where consumers live outside this process.
type feedbackComponents struct {
	forwarder *feedback.Forwarder
	recorder  *feedback.Recorder
	publisher message.Publisher
}

// initFeedback wires sink → forwarder → broker and attaches the sink to the
// engine. It returns nil when feedback is disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initFeedback(cfg *config.FeedbackConfig, engine *recommend.Engine, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*feedbackComponents, error) {
	if !cfg.Enabled {
		logger.Info().Msg("Feedback forwarding disabled (FEEDBACK_ENABLED=false)")
		return nil, nil
	}

	publisher, subscriber, err := feedback.NewPubSub(cfg, logging.NewWatermillAdapter(logger))
	if err != nil {
		return nil, err
	}

	tuner := feedback.NewWeightTuner(logger)
	sink := feedback.NewSink(cfg.BufferSize, tuner, logger)
	engine.SetFeedbackSink(sink)

	fc := &feedbackComponents{publisher: publisher}
	if subscriber != nil {
		fc.recorder = feedback.NewRecorder(subscriber, cfg.Topic, tuner, logger)
		tree.AddMessagingService(fc.recorder)
	}
	fc.forwarder = feedback.NewForwarder(sink, publisher, cfg, logger)
	tree.AddMessagingService(fc.forwarder)

	logger.Info().
		Str("transport", cfg.Transport).
		Str("topic", cfg.Topic).
		Int("buffer", cfg.BufferSize).
		Msg("Feedback forwarding enabled")

	return fc, nil
}

// close releases the broker connection once the supervisor tree has stopped.
func (fc *feedbackComponents) close() {
	if fc == nil {
		return
	}
	if err := fc.publisher.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing feedback publisher")
	}
}
