// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package feedback carries user feedback on recommendations out of the request path.

	engine.SubmitFeedback ──► Sink (buffered chan) ──► Forwarder ──► watermill Publisher
	                            │                                      │
	                            └─► WeightTuner                        ├─ gochannel ─► Recorder
	                                                                   └─ nats (core)

Submit never blocks and never fails: a full buffer drops the event and
increments feedback_dropped_total. The Forwarder runs under the supervisor,
publishes each event as JSON with a UUID and action/user_id/project_id
metadata, and routes publishing through a circuit breaker so a dead broker
costs one fast rejection per event.

WeightTuner keeps the running adjustment (+0.1 like, -0.05 dislike). It is
logged and exported as feedback_weight_adjustment; scoring weights are left
untouched.

With the in-process gochannel transport a Recorder subscribes to the topic
and keeps per-action counts for the stats endpoint. With NATS, downstream
services own the subject.
*/
package feedback
