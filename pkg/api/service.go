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
	"time"

	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Service implements the grpc public API (see lrucache.CacheServiceServer)
type Service struct {
	lrucache.UnimplementedCacheServiceServer
	logger logging.Logger

	Registry *registry.Registry `inject:""`
}

var _ lrucache.CacheServiceServer = (*Service)(nil)

func NewService() *Service {
	return &Service{
		logger: logging.NewLogger("api.Service"),
	}
}

// RegisterEndpoints registers the service in the gRPC server
func (s *Service) RegisterEndpoints(gs *grpc.Server) error {
	lrucache.RegisterCacheServiceServer(gs, s)
	return nil
}

func (s *Service) CreateCache(ctx context.Context, req *lrucache.CreateCacheRequest) (*lrucache.CacheInfo, error) {
	h, err := s.Registry.Create(int(req.Capacity))
	if err != nil {
		s.logger.Warnf("could not create cache with capacity=%d: %v", req.Capacity, err)
		return nil, errors.GRPCWrap(err)
	}
	s.logger.Infof("cache %s is created, capacity=%d", h, req.Capacity)
	return &lrucache.CacheInfo{Handle: string(h), Capacity: req.Capacity}, nil
}

func (s *Service) DestroyCache(ctx context.Context, req *lrucache.HandleRequest) (*lrucache.Empty, error) {
	if err := s.Registry.Destroy(registry.Handle(req.Handle)); err != nil {
		return nil, errors.GRPCWrap(err)
	}
	s.logger.Infof("cache %s is destroyed", req.Handle)
	return &lrucache.Empty{}, nil
}

func (s *Service) ListCaches(ctx context.Context, _ *lrucache.Empty) (*lrucache.ListCachesResult, error) {
	infos := s.Registry.List()
	res := &lrucache.ListCachesResult{Caches: make([]*lrucache.CacheInfo, len(infos))}
	for i, inf := range infos {
		res.Caches[i] = toCacheInfo(inf)
	}
	return res, nil
}

func (s *Service) Get(ctx context.Context, req *lrucache.GetRequest) (*lrucache.GetResult, error) {
	start := time.Now()
	v, found, err := s.Registry.Get(registry.Handle(req.Handle), int(req.Key))
	if err != nil {
		return nil, errors.GRPCWrap(err)
	}
	return &lrucache.GetResult{Key: req.Key, Found: found, Value: int64(v), Latency: durationpb.New(time.Since(start))}, nil
}

func (s *Service) Put(ctx context.Context, req *lrucache.PutRequest) (*lrucache.PutResult, error) {
	start := time.Now()
	if err := s.Registry.Put(registry.Handle(req.Handle), int(req.Key), int(req.Value)); err != nil {
		return nil, errors.GRPCWrap(err)
	}
	return &lrucache.PutResult{Latency: durationpb.New(time.Since(start))}, nil
}

func (s *Service) Stats(ctx context.Context, req *lrucache.HandleRequest) (*lrucache.CacheStats, error) {
	snap, err := s.Registry.Snapshot(registry.Handle(req.Handle))
	if err != nil {
		return nil, errors.GRPCWrap(err)
	}
	return toCacheStats(snap), nil
}

func (s *Service) ResetStats(ctx context.Context, req *lrucache.HandleRequest) (*lrucache.Empty, error) {
	if err := s.Registry.ResetStats(registry.Handle(req.Handle)); err != nil {
		return nil, errors.GRPCWrap(err)
	}
	return &lrucache.Empty{}, nil
}

func (s *Service) RunSimulation(ctx context.Context, req *lrucache.SimulationRequest) (*lrucache.SimulationResult, error) {
	w := ToWorkload(req.Workload).WithDefaults()
	s.logger.Infof("running simulation %s on cache %s", w, req.Handle)
	var res simulation.Result
	err := s.Registry.ExecContext(ctx, registry.Handle(req.Handle), func(c *registry.Cache) error {
		var err error
		res, err = simulation.Run(ctx, c, w)
		return err
	})
	if err != nil {
		s.logger.Warnf("simulation on cache %s failed: %v", req.Handle, err)
		return nil, errors.GRPCWrap(err)
	}
	return toSimulationResult(res), nil
}

func (s *Service) AnalyzePerformance(ctx context.Context, req *lrucache.AnalyzeRequest) (*lrucache.AnalyzeResult, error) {
	w := ToWorkload(req.Workload).WithDefaults()
	sizes := toInts(req.Sizes)
	s.logger.Infof("analyzing %s over sizes %v", w, sizes)
	res, err := simulation.Analyze(ctx, sizes, w)
	if err != nil {
		s.logger.Warnf("analysis failed: %v", err)
		return nil, errors.GRPCWrap(err)
	}
	return toAnalyzeResult(res), nil
}
