// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

// Package validation validates API request structs with go-playground/validator v10.
//
// A single validator is shared process-wide; it caches struct metadata and
// reports fields by their JSON names. Two marketplace rules are registered on
// top of the built-ins:
//
//   - strategy: user-based, project-similarity, popularity or hybrid
//   - feedback_action: like, dislike, apply or bookmark
//
// Usage:
//
//	type FeedbackRequest struct {
//	    UserID string `json:"userId" validate:"required,max=128"`
//	    Action string `json:"action" validate:"required,feedback_action"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // 400 with apiErr.Code == "VALIDATION_FAILED"
//	}
package validation
