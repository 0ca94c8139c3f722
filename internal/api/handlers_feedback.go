// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"net/http"

	"github.com/tomtom215/gigboard/internal/logging"
	"github.com/tomtom215/gigboard/internal/validation"
)

// SubmitFeedback handles POST /api/v1/feedback. The event is handed to the
// engine's non-blocking sink and the handler answers 202 whether or not it is
// eventually published.
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if !h.feedbackEnabled {
		rw.ServiceUnavailable("Feedback collection is disabled")
		return
	}

	var req FeedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	h.engine.SubmitFeedback(r.Context(), req.ToEvent())

	logging.Ctx(r.Context()).Debug().
		Str("user_id", req.UserID).
		Str("project_id", req.ProjectID).
		Str("action", req.Action).
		Msg("Feedback accepted")

	rw.Accepted(map[string]any{"accepted": true})
}
