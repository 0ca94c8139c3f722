// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/gigboard/internal/logging"
	"github.com/tomtom215/gigboard/internal/recommend"
)

// ErrInvalidBody is returned when a request body is not valid JSON.
var ErrInvalidBody = errors.New("invalid request body")

// respondEngineError maps an engine error to a status code. Recommend only
// fails on an unknown strategy or a done context. Missing data is a fallback
// reported through metadata warnings, not an error.
func respondEngineError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrUnknownStrategy):
		rw.Error(http.StatusBadRequest, ErrCodeUnknownStrategy, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Recommendation timed out")
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "Recommendation timed out")
	case errors.Is(err, context.Canceled):
		rw.Error(http.StatusRequestTimeout, ErrCodeRequestCanceled, "Request canceled")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Recommendation failed")
		rw.InternalError("Failed to generate recommendations")
	}
}
