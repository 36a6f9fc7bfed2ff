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
	"context"
	"net"
	"testing"

	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

func newTestClient(t *testing.T) (*Client, *registry.Registry) {
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	svc := NewService()
	svc.Registry = registry.New(3)
	require.Nil(t, svc.RegisterEndpoints(gs))
	go func() {
		_ = gs.Serve(lis)
	}()

	c, err := NewClient(context.Background(), "bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.Nil(t, err)
	t.Cleanup(func() {
		_ = c.Close()
		gs.Stop()
	})
	return c, svc.Registry
}

func TestService_Scenario(t *testing.T) {
	c, reg := newTestClient(t)
	ctx := context.Background()

	h, err := c.CreateCache(ctx, 2)
	require.Nil(t, err)
	assert.Equal(t, []registry.Handle{h}, reg.Handles())

	pr, err := c.Put(ctx, h, 1, 10)
	assert.Nil(t, err)
	assert.NotNil(t, pr.Latency)
	_, err = c.Put(ctx, h, 2, 20)
	assert.Nil(t, err)

	gr, err := c.Get(ctx, h, 1)
	assert.Nil(t, err)
	assert.True(t, gr.Found)
	assert.Equal(t, int64(10), gr.Value)
	assert.True(t, gr.Latency.IsValid())

	_, err = c.Put(ctx, h, 3, 30)
	assert.Nil(t, err)
	gr, err = c.Get(ctx, h, 2)
	assert.Nil(t, err)
	assert.False(t, gr.Found)
	assert.Equal(t, int64(2), gr.Key)

	st, err := c.Stats(ctx, h)
	assert.Nil(t, err)
	assert.Equal(t, string(h), st.Handle)
	assert.Equal(t, int64(2), st.Capacity)
	assert.Equal(t, int64(2), st.Size)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(1), st.Evictions)
	assert.Equal(t, uint64(2), st.TotalAccesses)
	assert.InDelta(t, 50.0, st.HitRatio, 1e-9)
	require.Equal(t, 2, len(st.Items))
	assert.True(t, proto.Equal(&lrucache.Item{Key: 3, Value: 30}, st.Items[0]))
	assert.True(t, proto.Equal(&lrucache.Item{Key: 1, Value: 10}, st.Items[1]))

	assert.Nil(t, c.ResetStats(ctx, h))
	st, err = c.Stats(ctx, h)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), st.TotalAccesses)
	assert.Equal(t, 2, len(st.Items))

	assert.Nil(t, c.DestroyCache(ctx, h))
	_, err = c.Get(ctx, h, 1)
	assert.ErrorIs(t, err, errors.ErrNotExist)
	assert.ErrorIs(t, c.DestroyCache(ctx, h), errors.ErrNotExist)
}

func TestService_ListCaches(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	infos, err := c.ListCaches(ctx)
	assert.Nil(t, err)
	assert.Empty(t, infos)

	h1, err := c.CreateCache(ctx, 2)
	require.Nil(t, err)
	h2, err := c.CreateCache(ctx, 7)
	require.Nil(t, err)
	_, err = c.Put(ctx, h2, 1, 1)
	require.Nil(t, err)

	infos, err = c.ListCaches(ctx)
	assert.Nil(t, err)
	require.Equal(t, 2, len(infos))
	assert.True(t, proto.Equal(&lrucache.CacheInfo{Handle: string(h1), Capacity: 2}, infos[0]))
	assert.True(t, proto.Equal(&lrucache.CacheInfo{Handle: string(h2), Capacity: 7, Size: 1}, infos[1]))
}

func TestService_Errors(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.CreateCache(ctx, 0)
	assert.ErrorIs(t, err, errors.ErrInvalid)

	for i := 0; i < 3; i++ {
		_, err = c.CreateCache(ctx, 1)
		require.Nil(t, err)
	}
	_, err = c.CreateCache(ctx, 1)
	assert.ErrorIs(t, err, errors.ErrExhausted)

	_, err = c.Stats(ctx, "unknown")
	assert.ErrorIs(t, err, errors.ErrNotExist)
	assert.Contains(t, err.Error(), "malformed handle")

	_, err = c.Stats(ctx, registry.Handle("01HX0000000000000000000000"))
	assert.ErrorIs(t, err, errors.ErrNotExist)
	assert.Contains(t, err.Error(), "01HX0000000000000000000000")
}

func TestService_Simulation(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	h, err := c.CreateCache(ctx, 50)
	require.Nil(t, err)
	res, err := c.RunSimulation(ctx, h, simulation.Workload{Requests: 500, Seed: 5})
	require.Nil(t, err)
	assert.Equal(t, uint64(500), res.Hits+res.Misses)
	assert.Equal(t, int64(simulation.DefaultKeyRange), res.Workload.KeyRange)
	assert.Equal(t, 10, len(res.HitsOverTime))
	assert.Equal(t, 10, len(res.MissRatioOverTime))
	assert.True(t, res.Duration.IsValid())

	st, err := c.Stats(ctx, h)
	assert.Nil(t, err)
	assert.Equal(t, res.Hits, st.Hits)
	assert.Equal(t, int64(50), st.Size)

	_, err = c.RunSimulation(ctx, h, simulation.Workload{Requests: -1})
	assert.ErrorIs(t, err, errors.ErrInvalid)

	a, err := c.AnalyzePerformance(ctx, []int{5, 500}, simulation.Workload{Requests: 300, KeyRange: 100, Seed: 9})
	require.Nil(t, err)
	require.Equal(t, 2, len(a.Results))
	assert.Equal(t, int64(5), a.Results[0].CacheSize)
	assert.GreaterOrEqual(t, a.Results[1].Hits, a.Results[0].Hits)
	assert.Equal(t, simulation.Workload{Requests: 300, KeyRange: 100, Alpha: simulation.DefaultAlpha, Seed: 9}, ToWorkload(a.Workload))
}

func TestWorkloadConversion(t *testing.T) {
	assert.Equal(t, simulation.Workload{}, ToWorkload(nil))
	w := simulation.Workload{Requests: 10, KeyRange: 20, Alpha: 0.5, Seed: 3}
	assert.Equal(t, w, ToWorkload(FromWorkload(w)))
}
