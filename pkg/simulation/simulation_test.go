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
	"testing"

	"github.com/solarisdb/lrucache/golibs/container/lru"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkload_Check(t *testing.T) {
	assert.Nil(t, DefaultWorkload().Check())
	assert.Equal(t, DefaultWorkload(), Workload{}.WithDefaults())
	assert.ErrorIs(t, Workload{Requests: 0, KeyRange: 1, Alpha: 1}.Check(), errors.ErrInvalid)
	assert.ErrorIs(t, Workload{Requests: 1, KeyRange: -1, Alpha: 1}.Check(), errors.ErrInvalid)
	assert.ErrorIs(t, Workload{Requests: 1, KeyRange: 1, Alpha: 0}.Check(), errors.ErrInvalid)
	_, err := Workload{}.Keys()
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestWorkload_Keys(t *testing.T) {
	w := Workload{Requests: 5000, KeyRange: 100, Alpha: 2.0, Seed: 7}
	keys, err := w.Keys()
	require.Nil(t, err)
	assert.Equal(t, 5000, len(keys))

	low := 0
	for _, k := range keys {
		assert.GreaterOrEqual(t, k, 1)
		assert.LessOrEqual(t, k, 100)
		if k <= 50 {
			low++
		}
	}
	// key <= 50 iff u^0.5 < 0.5, which is 25% of the requests
	assert.InDelta(t, 0.25, float64(low)/5000.0, 0.05)

	again, err := w.Keys()
	require.Nil(t, err)
	assert.Equal(t, keys, again)
}

func TestRun(t *testing.T) {
	c, err := lru.NewCache[int, int](20, nil)
	require.Nil(t, err)
	c.Get(1)

	w := Workload{Requests: 1000, KeyRange: 50, Alpha: 1.0, Seed: 11}
	res, err := Run(context.Background(), c, w)
	require.Nil(t, err)

	assert.Equal(t, uint64(1000), res.Hits+res.Misses)
	assert.Equal(t, c.Hits(), res.Hits)
	assert.Equal(t, c.Misses(), res.Misses)
	assert.InDelta(t, c.HitRatio(), res.HitRatio, 1e-9)
	assert.Equal(t, 10, len(res.HitsOverTime))
	assert.Equal(t, 10, len(res.MissRatioOverTime))
	assert.Equal(t, res.Hits, res.HitsOverTime[9])
	assert.InDelta(t, 100.0-res.HitRatio, res.MissRatioOverTime[9], 1e-9)
	for i := 1; i < len(res.HitsOverTime); i++ {
		assert.GreaterOrEqual(t, res.HitsOverTime[i], res.HitsOverTime[i-1])
	}
	assert.LessOrEqual(t, c.Len(), 20)
	for _, e := range c.State() {
		assert.Equal(t, e.Key*10, e.Value)
	}
}

func TestRun_SmallWorkload(t *testing.T) {
	c, err := lru.NewCache[int, int](2, nil)
	require.Nil(t, err)
	res, err := Run(context.Background(), c, Workload{Requests: 3, KeyRange: 1, Alpha: 1, Seed: 1})
	require.Nil(t, err)
	// the only key is 1: miss then hits
	assert.Equal(t, []uint64{0, 1, 2}, res.HitsOverTime)
	assert.Equal(t, uint64(2), res.Hits)
	assert.Equal(t, uint64(1), res.Misses)
}

func TestRun_Canceled(t *testing.T) {
	c, err := lru.NewCache[int, int](2, nil)
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, c, DefaultWorkload())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze(t *testing.T) {
	w := Workload{Requests: 2000, KeyRange: 200, Alpha: 1.5, Seed: 3}
	a, err := Analyze(context.Background(), []int{100, 10, 100, 300}, w)
	require.Nil(t, err)
	require.Equal(t, 3, len(a.Results))
	assert.Equal(t, 10, a.Results[0].CacheSize)
	assert.Equal(t, 100, a.Results[1].CacheSize)
	assert.Equal(t, 300, a.Results[2].CacheSize)
	for i, r := range a.Results {
		assert.Equal(t, uint64(2000), r.Hits+r.Misses)
		if i > 0 {
			// LRU has the stack property: a bigger cache never hits less
			assert.GreaterOrEqual(t, r.Hits, a.Results[i-1].Hits)
		}
	}
	// the whole key range fits, so only the first request of every key misses
	keys, _ := w.Keys()
	distinct := map[int]struct{}{}
	for _, k := range keys {
		distinct[k] = struct{}{}
	}
	assert.Equal(t, uint64(len(distinct)), a.Results[2].Misses)

	a, err = Analyze(context.Background(), nil, w)
	require.Nil(t, err)
	assert.Equal(t, len(DefaultSizes), len(a.Results))

	_, err = Analyze(context.Background(), []int{0}, w)
	assert.ErrorIs(t, err, errors.ErrInvalid)
}
