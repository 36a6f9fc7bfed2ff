// Copyright 2024 The Solaris Authors
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

package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/solarisdb/lrucache/golibs/container/lru"
	"github.com/solarisdb/lrucache/golibs/logging"
	"golang.org/x/exp/slices"
)

type (
	// Cache is the part of the cache contract the simulation needs.
	// *lru.Cache[int, int] implements it.
	Cache interface {
		Get(key int) (int, bool)
		Put(key, value int)
		Hits() uint64
		Misses() uint64
		ResetStats()
	}

	// Result contains the outcome of one simulation run
	Result struct {
		Workload Workload      `json:"workload"`
		Hits     uint64        `json:"hits"`
		Misses   uint64        `json:"misses"`
		HitRatio float64       `json:"hitRatio"`
		Duration time.Duration `json:"duration"`
		// HitsOverTime contains the cumulative number of hits sampled every
		// tenth part of the requests and after the last request
		HitsOverTime []uint64 `json:"hitsOverTime"`
		// MissRatioOverTime contains the cumulative miss ratio (percent) sampled
		// at the same points as HitsOverTime
		MissRatioOverTime []float64 `json:"missRatioOverTime"`
	}

	// SizeResult is the outcome of the workload for one cache capacity
	SizeResult struct {
		CacheSize     int           `json:"cacheSize"`
		Hits          uint64        `json:"hits"`
		Misses        uint64        `json:"misses"`
		HitRatio      float64       `json:"hitRatio"`
		AvgAccessTime time.Duration `json:"avgAccessTime"`
	}

	// Analysis compares the same workload over different cache capacities
	Analysis struct {
		Workload Workload     `json:"workload"`
		Results  []SizeResult `json:"results"`
	}
)

// DefaultSizes are the capacities Analyze compares if nothing is provided
var DefaultSizes = []int{10, 50, 100, 200, 500}

var _ Cache = (*lru.Cache[int, int])(nil)

// ctxCheckEvery defines how often (in requests) the context is checked
const ctxCheckEvery = 1024

// Run resets the cache counters and sends the workload requests to the cache.
// Every request is a Get, and a missed key is put into the cache with the
// value key*10.
func Run(ctx context.Context, c Cache, w Workload) (Result, error) {
	keys, err := w.Keys()
	if err != nil {
		return Result{}, err
	}
	log := logging.NewLogger("simulation")
	log.Debugf("running %s", w)

	c.ResetStats()
	res := Result{Workload: w}
	sampleEvery := max(1, len(keys)/10)
	start := time.Now()
	for i, k := range keys {
		if i%ctxCheckEvery == 0 && ctx.Err() != nil {
			return Result{}, fmt.Errorf("simulation interrupted after %d requests: %w", i, ctx.Err())
		}
		if _, ok := c.Get(k); !ok {
			c.Put(k, k*10)
		}
		if (i+1)%sampleEvery == 0 || i == len(keys)-1 {
			hits, misses := c.Hits(), c.Misses()
			res.HitsOverTime = append(res.HitsOverTime, hits)
			res.MissRatioOverTime = append(res.MissRatioOverTime, missRatio(hits, misses))
		}
	}
	res.Duration = time.Since(start)
	res.Hits, res.Misses = c.Hits(), c.Misses()
	res.HitRatio = lru.Stats{Hits: res.Hits, Misses: res.Misses}.HitRatio()
	log.Debugf("%s is done in %s, hitRatio=%.2f%%", w, res.Duration, res.HitRatio)
	return res, nil
}

// Analyze runs the same key stream against a new cache of every capacity from
// sizes. The sizes are sorted and deduplicated, DefaultSizes is used if sizes
// is empty.
func Analyze(ctx context.Context, sizes []int, w Workload) (Analysis, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	sizes = slices.Clone(sizes)
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	keys, err := w.Keys()
	if err != nil {
		return Analysis{}, err
	}
	res := Analysis{Workload: w, Results: make([]SizeResult, 0, len(sizes))}
	for _, size := range sizes {
		c, err := lru.NewCache[int, int](size, nil)
		if err != nil {
			return Analysis{}, err
		}
		start := time.Now()
		for i, k := range keys {
			if i%ctxCheckEvery == 0 && ctx.Err() != nil {
				return Analysis{}, fmt.Errorf("analysis interrupted on size=%d: %w", size, ctx.Err())
			}
			if _, ok := c.Get(k); !ok {
				c.Put(k, k*10)
			}
		}
		elapsed := time.Since(start)
		st := c.Stats()
		res.Results = append(res.Results, SizeResult{
			CacheSize:     size,
			Hits:          st.Hits,
			Misses:        st.Misses,
			HitRatio:      st.HitRatio(),
			AvgAccessTime: elapsed / time.Duration(len(keys)),
		})
	}
	return res, nil
}

func missRatio(hits, misses uint64) float64 {
	if hits+misses == 0 {
		return 0
	}
	return float64(misses) / float64(hits+misses) * 100.0
}
