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

/*
Package lru contains the fixed capacity container with LRU (Least Recently Used)
pull out discipline. The container uses golang generics, so it can be
instantiated for different key and value types.

Entries live in an arena of slots which is never bigger than the capacity. The
recency order is an intrusive doubly-linked list over the slot indices (front
is the most recently used entry, back is the least recently used one), and the
index maps a key to its slot. Get, Put and the eviction are O(1).

The Cache is not safe for concurrent use. The callers that share one instance
between goroutines must serialize the access to it, for example, guarding the
instance with one mutex.
*/
package lru
