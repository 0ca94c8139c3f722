// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// CacheKey returns the deterministic cache key for req:
//
//	rec:{userId|anon}:{projectId|none}:{type}:{filters}
//
// Filters are normalised with NormalizeFilters and encoded as JSON with
// sorted keys. Limit is not part of the key;
// cached lists are truncated per request. When ExcludeIDs is set, the sorted
// IDs are appended so excluded projects never come back from the cache.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func CacheKey(req Request) string {
	user := req.UserID
	if user == "" {
		user = "anon"
	}
	project := req.ProjectID
	if project == "" {
		project = "none"
	}

	filters := "{}"
	if len(req.Filters) > 0 {
		normalized := NormalizeFilters(req.Filters)
		if b, err := json.Marshal(normalized); err == nil {
			filters = string(b)
		} else {
			filters = fmt.Sprintf("%v", normalized)
		}
	}

	key := fmt.Sprintf("rec:%s:%s:%s:%s", user, project, req.Type, filters)

	if len(req.ExcludeIDs) > 0 {
		excluded := make([]string, len(req.ExcludeIDs))
		copy(excluded, req.ExcludeIDs)
		sort.Strings(excluded)
		key += ":ex:" + strings.Join(excluded, ",")
	}

	return key
}
