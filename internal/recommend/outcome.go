// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import "fmt"

// WarningCode classifies why a strategy degraded.
type WarningCode string

// Warning codes.
const (
	WarnMissingUserID      WarningCode = "missing_user_id"
	WarnProfileUnavailable WarningCode = "profile_unavailable"
	WarnMissingProjectID   WarningCode = "missing_project_id"
	WarnBaseProjectMissing WarningCode = "base_project_unavailable"
	WarnCandidatesMissing  WarningCode = "candidates_unavailable"
	WarnStrategyDisabled   WarningCode = "strategy_disabled"
)

// Warning explains a degraded result. It never crosses the public API as an
// error; the engine reports it in ResponseMetadata.Warnings.
type Warning struct {
	Code    WarningCode
	Message string
}

// String formats the warning for metadata.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Outcome is the result of running a strategy: scored items, or an empty
// list with the Warning that explains why.
type Outcome struct {
	Items   []RecommendedProject
	Warning *Warning
}

// Degraded returns an empty Outcome carrying a warning.
func Degraded(code WarningCode, format string, args ...any) Outcome {
	return Outcome{Warning: &Warning{Code: code, Message: fmt.Sprintf(format, args...)}}
}

// OK wraps scored items in an Outcome.
func OK(items []RecommendedProject) Outcome {
	return Outcome{Items: items}
}
