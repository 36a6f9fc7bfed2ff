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

package api

import (
	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ToWorkload returns the simulation workload by its API form, nil means all
// the parameters are default
func ToWorkload(w *lrucache.Workload) simulation.Workload {
	return simulation.Workload{
		Requests: int(w.GetRequests()),
		KeyRange: int(w.GetKeyRange()),
		Alpha:    w.GetAlpha(),
		Seed:     w.GetSeed(),
	}
}

// FromWorkload is the reverse of ToWorkload
func FromWorkload(w simulation.Workload) *lrucache.Workload {
	return &lrucache.Workload{
		Requests: int64(w.Requests),
		KeyRange: int64(w.KeyRange),
		Alpha:    w.Alpha,
		Seed:     w.Seed,
	}
}

func toSimulationResult(r simulation.Result) *lrucache.SimulationResult {
	return &lrucache.SimulationResult{
		Workload:          FromWorkload(r.Workload),
		Hits:              r.Hits,
		Misses:            r.Misses,
		HitRatio:          r.HitRatio,
		Duration:          durationpb.New(r.Duration),
		HitsOverTime:      r.HitsOverTime,
		MissRatioOverTime: r.MissRatioOverTime,
	}
}

func toAnalyzeResult(a simulation.Analysis) *lrucache.AnalyzeResult {
	res := &lrucache.AnalyzeResult{
		Workload: FromWorkload(a.Workload),
		Results:  make([]*lrucache.SizeResult, len(a.Results)),
	}
	for i, sr := range a.Results {
		res.Results[i] = &lrucache.SizeResult{
			CacheSize:     int64(sr.CacheSize),
			Hits:          sr.Hits,
			Misses:        sr.Misses,
			HitRatio:      sr.HitRatio,
			AvgAccessTime: durationpb.New(sr.AvgAccessTime),
		}
	}
	return res
}

func toCacheStats(s registry.Snapshot) *lrucache.CacheStats {
	res := &lrucache.CacheStats{
		Handle:        string(s.Handle),
		Capacity:      int64(s.Capacity),
		Size:          int64(s.Size),
		Hits:          s.Hits,
		Misses:        s.Misses,
		Evictions:     s.Evictions,
		HitRatio:      s.HitRatio,
		TotalAccesses: s.Hits + s.Misses,
		Items:         make([]*lrucache.Item, len(s.Items)),
	}
	for i, it := range s.Items {
		res.Items[i] = &lrucache.Item{Key: int64(it.Key), Value: int64(it.Value)}
	}
	return res
}

func toCacheInfo(i registry.Info) *lrucache.CacheInfo {
	return &lrucache.CacheInfo{Handle: string(i.Handle), Capacity: int64(i.Capacity), Size: int64(i.Size)}
}

func toInts(vals []int64) []int {
	if vals == nil {
		return nil
	}
	res := make([]int, len(vals))
	for i, v := range vals {
		res[i] = int(v)
	}
	return res
}
