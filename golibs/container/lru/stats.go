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

// Stats is a point-in-time copy of the cache counters
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Total returns the number of Get calls counted
func (s Stats) Total() uint64 {
	return s.Hits + s.Misses
}

// HitRatio returns the hits percentage in [0, 100], or 0 if nothing was counted
func (s Stats) HitRatio() float64 {
	return hitRatio(s.Hits, s.Misses)
}

func hitRatio(hits, misses uint64) float64 {
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100.0
}
