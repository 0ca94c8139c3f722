// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/gigboard/internal/logging"
	"github.com/tomtom215/gigboard/internal/recommend"
	"github.com/tomtom215/gigboard/internal/validation"
)

// GetRecommendations handles GET /api/v1/recommendations.
// Query: type, userId, projectId, limit, exclude (comma separated) and the
// candidate filter keys (category, skills, minBudget, ...).
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendationQuery(r.URL.Query())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	h.recommend(rw, r, &req)
}

// PostRecommendations handles POST /api/v1/recommendations with a JSON
// RecommendationRequest body. Filters may carry typed values here.
func (h *Handler) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	h.recommend(rw, r, &req)
}

// GetSimilarProjects handles GET /api/v1/recommendations/similar/{projectID}.
func (h *Handler) GetSimilarProjects(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendationQuery(r.URL.Query())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req.Type = string(recommend.StrategyProjectSimilarity)
	req.ProjectID = chi.URLParam(r, "projectID")
	h.recommend(rw, r, &req)
}

// GetUserRecommendations handles GET /api/v1/recommendations/user/{userID}.
// The strategy defaults to hybrid and may be overridden with ?type=.
func (h *Handler) GetUserRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, err := parseRecommendationQuery(r.URL.Query())
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	req.UserID = chi.URLParam(r, "userID")
	h.recommend(rw, r, &req)
}

// InvalidateCache handles DELETE /api/v1/recommendations/cache.
func (h *Handler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	h.engine.InvalidateCache()
	logging.Ctx(r.Context()).Info().Msg("Recommendation cache invalidated")
	NewResponseWriter(w, r).Success(map[string]any{"invalidated": true})
}

func (h *Handler) recommend(rw *ResponseWriter, r *http.Request, req *RecommendationRequest) {
	if verr := validation.ValidateStruct(req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, req.ToEngine(logging.RequestIDFromContext(r.Context())))
	if err != nil {
		respondEngineError(rw, r, err)
		return
	}
	rw.Success(resp)
}
