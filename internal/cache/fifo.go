// Gigboard - Freelancer Marketplace Project Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigboard

package cache

import (
	"sync"
	"time"
)

// Entry is a cached value with its bookkeeping.
type Entry[V any] struct {
	Key       string
	Value     V
	Timestamp time.Time
	TTL       time.Duration
	Hits      int64
	Algorithm string
	Version   string
}

// Expired reports whether the entry is older than its TTL at now.
func (e *Entry[V]) Expired(now time.Time) bool {
	return now.Sub(e.Timestamp) > e.TTL
}

// node is a doubly-linked list node in insertion order.
type node[V any] struct {
	entry Entry[V]
	prev  *node[V]
	next  *node[V]
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Size        int   `json:"size"`
	Capacity    int   `json:"capacity"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Evictions   int64 `json:"evictions"`
	Expirations int64 `json:"expirations"`
}

// FIFOCache is a thread-safe bounded cache with per-entry TTL.
//
// Eviction is by insertion order: when full, the entry inserted first is
// dropped regardless of how recently it was read. Overwriting a key keeps
// its original position. Expiry is lazy and checked on Get.
type FIFOCache[V any] struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	now      func() time.Time

	items map[string]*node[V]

	// head.next is the oldest inserted entry, tail.prev the newest
	head *node[V]
	tail *node[V]

	hits        int64
	misses      int64
	evictions   int64
	expirations int64
}

// NewFIFOCache creates a cache holding at most capacity entries that each
// live for ttl unless the entry sets its own.
func NewFIFOCache[V any](capacity int, ttl time.Duration) *FIFOCache[V] {
	if capacity <= 0 {
		capacity = 1000
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	c := &FIFOCache[V]{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		items:    make(map[string]*node[V], capacity),
		head:     &node[V]{},
		tail:     &node[V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// SetClock replaces the time source. Used by tests to simulate TTL expiry.
func (c *FIFOCache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the entry for key. An expired entry is removed and reported
// as a miss. A hit increments the entry's hit counter.
func (c *FIFOCache[V]) Get(key string) (Entry[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if !ok {
		c.misses++
		return Entry[V]{}, false
	}

	if n.entry.Expired(c.now()) {
		c.unlink(n)
		c.expirations++
		c.misses++
		return Entry[V]{}, false
	}

	n.entry.Hits++
	c.hits++
	return n.entry, true
}

// Put stores entry under key. A zero Timestamp or TTL is filled in from the
// cache clock and default TTL. At capacity the oldest inserted entry is
// evicted before the new key is added.
func (c *FIFOCache[V]) Put(key string, entry Entry[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry.Key = key
	if entry.Timestamp.IsZero() {
		entry.Timestamp = c.now()
	}
	if entry.TTL <= 0 {
		entry.TTL = c.ttl
	}

	if n, ok := c.items[key]; ok {
		n.entry = entry
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	n := &node[V]{entry: entry}
	n.prev = c.tail.prev
	n.next = c.tail
	c.tail.prev.next = n
	c.tail.prev = n
	c.items[key] = n
}

// Set stores value under key with the default TTL.
func (c *FIFOCache[V]) Set(key string, value V, algorithm, version string) {
	c.Put(key, Entry[V]{Value: value, Algorithm: algorithm, Version: version})
}

// Delete removes key. It reports whether the key was present.
func (c *FIFOCache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.items[key]
	if ok {
		c.unlink(n)
	}
	return ok
}

// Clear removes every entry. Counters are kept.
func (c *FIFOCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*node[V], c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
}

// Len returns the number of stored entries, including expired ones not yet read.
func (c *FIFOCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the stored keys from oldest to newest insertion.
func (c *FIFOCache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for n := c.head.next; n != c.tail; n = n.next {
		keys = append(keys, n.entry.Key)
	}
	return keys
}

// Stats returns the current counters.
func (c *FIFOCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Size:        len(c.items),
		Capacity:    c.capacity,
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
	}
}

// evictOldest drops the first inserted entry. Must be called with mu held.
func (c *FIFOCache[V]) evictOldest() {
	oldest := c.head.next
	if oldest == c.tail {
		return
	}
	c.unlink(oldest)
	c.evictions++
}

// unlink removes n from the list and the index. Must be called with mu held.
func (c *FIFOCache[V]) unlink(n *node[V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	delete(c.items, n.entry.Key)
}
