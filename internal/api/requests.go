// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package api

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gigboard/internal/recommend"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// RecommendationRequest is the wire form of recommend.Request.
type RecommendationRequest struct {
	Type       string         `json:"type" validate:"omitempty,strategy"`
	UserID     string         `json:"userId" validate:"omitempty,max=128"`
	ProjectID  string         `json:"projectId" validate:"omitempty,max=128"`
	ExcludeIDs []string       `json:"excludeIds" validate:"max=500,dive,required,max=128"`
	Limit      int            `json:"limit" validate:"gte=0,lte=1000"`
	Filters    map[string]any `json:"filters" validate:"max=32"`
}

// ToEngine converts the wire request. requestID is copied into the engine
// request so it reaches logs and response metadata.
func (req *RecommendationRequest) ToEngine(requestID string) recommend.Request {
	return recommend.Request{
		Type:       recommend.StrategyType(req.Type),
		UserID:     req.UserID,
		ProjectID:  req.ProjectID,
		ExcludeIDs: req.ExcludeIDs,
		Limit:      req.Limit,
		Filters:    req.Filters,
		RequestID:  requestID,
	}
}

// Query parameters of GET /api/v1/recommendations. Filter keys are passed
// through under their own names.
const (
	queryType      = "type"
	queryUserID    = "userId"
	queryProjectID = "projectId"
	queryLimit     = "limit"
	queryExclude   = "exclude"
)

var queryFilterKeys = []string{
	recommend.FilterCategory,
	recommend.FilterProjectType,
	recommend.FilterWorkType,
	recommend.FilterExperienceLevel,
	recommend.FilterLocation,
	recommend.FilterStatus,
	recommend.FilterMinBudget,
	recommend.FilterMaxBudget,
	recommend.FilterSkills,
}

// parseRecommendationQuery builds a request from query parameters. Only a
// malformed limit is rejected here; the rest is left to validation.
func parseRecommendationQuery(q url.Values) (RecommendationRequest, error) {
	req := RecommendationRequest{
		Type:      q.Get(queryType),
		UserID:    q.Get(queryUserID),
		ProjectID: q.Get(queryProjectID),
	}

	if s := q.Get(queryLimit); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return req, fmt.Errorf("limit must be an integer: %q", s)
		}
		req.Limit = limit
	}

	for _, v := range q[queryExclude] {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.ExcludeIDs = append(req.ExcludeIDs, id)
			}
		}
	}

	for _, key := range queryFilterKeys {
		if v := q.Get(key); v != "" {
			if req.Filters == nil {
				req.Filters = make(map[string]any)
			}
			req.Filters[key] = v
		}
	}
	return req, nil
}

// FeedbackRequest is the wire form of recommend.FeedbackEvent.
type FeedbackRequest struct {
	UserID    string            `json:"userId" validate:"required,max=128"`
	ProjectID string            `json:"projectId" validate:"required,max=128"`
	Action    string            `json:"action" validate:"required,feedback_action"`
	Algorithm string            `json:"algorithm" validate:"omitempty,max=64"`
	Rank      int               `json:"rank" validate:"gte=0"`
	Context   map[string]string `json:"context" validate:"max=32"`
}

// ToEvent converts the wire request. The engine stamps the timestamp.
func (req *FeedbackRequest) ToEvent() recommend.FeedbackEvent {
	return recommend.FeedbackEvent{
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Action:    recommend.FeedbackAction(req.Action),
		Algorithm: req.Algorithm,
		Rank:      req.Rank,
		Context:   req.Context,
	}
}

// decodeJSON decodes a bounded JSON body into v, rejecting trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidBody)
	}
	return nil
}
