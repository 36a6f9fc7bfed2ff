// Copyright 2023 The acquirecloud Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lru

import (
	"fmt"

	"github.com/solarisdb/lrucache/golibs/container/iterable"
	"github.com/solarisdb/lrucache/golibs/errors"
)

type (
	// Cache is a fixed capacity key-value container with LRU discipline. Every
	// successful Get and every Put makes the key the most recently used one. When
	// a new key is put into the full cache, the least recently used entry is
	// evicted before the new one is inserted, so Len() never exceeds Capacity().
	Cache[K comparable, V any] struct {
		capacity int
		slots    []slot[K, V]
		index    map[K]int32
		front    int32
		back     int32
		onEvictF OnEvictF[K, V]

		hits      uint64
		misses    uint64
		evictions uint64
	}

	// Entry is a key-value pair reported by State and by the iterator
	Entry[K comparable, V any] struct {
		Key   K
		Value V
	}

	// OnEvictF is called for the entry evicted from the cache. The entry is
	// already removed when the function is called.
	OnEvictF[K comparable, V any] func(k K, v V)

	slot[K comparable, V any] struct {
		key  K
		val  V
		prev int32
		next int32
	}
)

// nilSlot marks the absence of a link
const nilSlot = int32(-1)

// NewCache creates the new Cache which can hold up to capacity entries. The
// capacity cannot be less than 1. onEvictF may be nil.
func NewCache[K comparable, V any](capacity int, onEvictF OnEvictF[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("NewCache(): the capacity=%d, but it cannot be less than 1: %w", capacity, errors.ErrInvalid)
	}
	if int64(capacity) > int64(1<<31-1) {
		return nil, fmt.Errorf("NewCache(): the capacity=%d is too big: %w", capacity, errors.ErrInvalid)
	}
	c := new(Cache[K, V])
	c.capacity = capacity
	c.index = make(map[K]int32)
	c.front, c.back = nilSlot, nilSlot
	c.onEvictF = onEvictF
	return c, nil
}

// Get returns the value for the key k and makes the entry the most recently
// used one. The second result is false if the key is not in the cache.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	i, ok := c.index[k]
	if !ok {
		c.misses++
		return *new(V), false
	}
	c.hits++
	c.moveToFront(i)
	return c.slots[i].val, true
}

// Peek returns the value for the key k without touching the recency order and
// the hit/miss counters.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	if i, ok := c.index[k]; ok {
		return c.slots[i].val, true
	}
	return *new(V), false
}

// Put stores the value v for the key k and makes the entry the most recently
// used one. If k is a new key and the cache is full, the least recently used
// entry is evicted first. Put doesn't change the hit/miss counters.
func (c *Cache[K, V]) Put(k K, v V) {
	if i, ok := c.index[k]; ok {
		c.slots[i].val = v
		c.moveToFront(i)
		return
	}

	if len(c.index) < c.capacity {
		// the arena and the index grow before any link is changed, so a
		// failed allocation leaves the cache as it was
		c.slots = append(c.slots, slot[K, V]{key: k, val: v, prev: nilSlot, next: nilSlot})
		i := int32(len(c.slots) - 1)
		c.index[k] = i
		c.pushFront(i)
		return
	}

	// full: the back slot is reused for the new entry
	i := c.back
	victim := c.slots[i]
	c.index[k] = i
	delete(c.index, victim.key)
	c.unlink(i)
	c.slots[i] = slot[K, V]{key: k, val: v, prev: nilSlot, next: nilSlot}
	c.pushFront(i)
	c.evictions++
	if c.onEvictF != nil {
		c.onEvictF(victim.key, victim.val)
	}
}

// State returns the snapshot of the cache entries ordered from the most
// recently used to the least recently used one. The cache is not changed.
func (c *Cache[K, V]) State() []Entry[K, V] {
	res := make([]Entry[K, V], 0, len(c.index))
	for i := c.front; i != nilSlot; i = c.slots[i].next {
		res = append(res, Entry[K, V]{Key: c.slots[i].key, Value: c.slots[i].val})
	}
	return res
}

// Iterator returns the iterator over the State() snapshot. Changes of the
// cache made after the call are not visible through the iterator.
func (c *Cache[K, V]) Iterator() iterable.Iterator[Entry[K, V]] {
	return iterable.NewSliceIterator(c.State())
}

// Len returns the number of entries in the cache
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Capacity returns the maximum number of entries the cache can hold
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Hits returns the number of Get calls which found the key since the cache
// creation or the last ResetStats call
func (c *Cache[K, V]) Hits() uint64 {
	return c.hits
}

// Misses returns the number of Get calls which didn't find the key since the
// cache creation or the last ResetStats call
func (c *Cache[K, V]) Misses() uint64 {
	return c.misses
}

// HitRatio returns the hits percentage in [0, 100]. It is 0 if there were no
// Get calls.
func (c *Cache[K, V]) HitRatio() float64 {
	return hitRatio(c.hits, c.misses)
}

// Stats returns the snapshot of the cache counters
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses, Evictions: c.evictions}
}

// ResetStats zeroes the counters. The cache content and the recency order
// are not changed.
func (c *Cache[K, V]) ResetStats() {
	c.hits, c.misses, c.evictions = 0, 0, 0
}

func (c *Cache[K, V]) moveToFront(i int32) {
	if c.front == i {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

func (c *Cache[K, V]) pushFront(i int32) {
	s := &c.slots[i]
	s.prev = nilSlot
	s.next = c.front
	if c.front != nilSlot {
		c.slots[c.front].prev = i
	}
	c.front = i
	if c.back == nilSlot {
		c.back = i
	}
}

func (c *Cache[K, V]) unlink(i int32) {
	s := &c.slots[i]
	if s.prev != nilSlot {
		c.slots[s.prev].next = s.next
	} else {
		c.front = s.next
	}
	if s.next != nilSlot {
		c.slots[s.next].prev = s.prev
	} else {
		c.back = s.prev
	}
	s.prev, s.next = nilSlot, nilSlot
}
