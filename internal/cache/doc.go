// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

/*
Package cache provides the bounded TTL store used for recommendation results.

FIFOCache is a generic map plus an insertion-ordered linked list:

  - Get is O(1); expired entries are removed on read and counted as misses
  - Put is O(1); a full cache drops the entry inserted first
  - overwriting a key replaces the value but keeps its queue position
  - Stats reports size, capacity, hits, misses, evictions and expirations

Eviction ignores read recency: a hot key that ages out of the queue is
recomputed on the next miss.

Usage:

	c := cache.NewFIFOCache[[]recommend.RecommendedProject](1000, 30*time.Minute)
	c.Set(key, items, "hybrid", "1.0.0")
	if e, ok := c.Get(key); ok {
	    use(e.Value)
	}

Tests inject a clock with SetClock to exercise expiry without sleeping.
*/
package cache
