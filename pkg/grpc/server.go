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

package grpc

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/solarisdb/lrucache/golibs/ulidutils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type (
	// EndpointsRegistrar registers the service endpoints in the gRPC server
	EndpointsRegistrar interface {
		RegisterEndpoints(gs *grpc.Server) error
	}

	// Config defines the gRPC server settings
	Config struct {
		Transport transport.Config
	}

	// Server is the linker component which serves the gRPC API. The server
	// starts listening in Init() and stops in Shutdown(). Endpoints is a
	// dependency of the server, so the linker stops the server before the
	// endpoints and everything they use.
	Server struct {
		cfg    Config
		logger logging.Logger

		Endpoints EndpointsRegistrar `inject:",optional"`

		lock   sync.Mutex
		gs     *grpc.Server
		lis    net.Listener
		health *health.Server
		wg     sync.WaitGroup
	}
)

// NewServer creates the new Server
func NewServer(cfg Config) *Server {
	return &Server{cfg: cfg, logger: logging.NewLogger("grpc.Server")}
}

// Init implements linker.Initializer
func (s *Server) Init(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.gs != nil {
		return fmt.Errorf("the server is already started: %w", errors.ErrExist)
	}

	lis, err := transport.NewServerListener(s.cfg.Transport)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", s.cfg.Transport.Addr(), err)
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(s.logRequest))
	s.health = health.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, s.health)
	if s.Endpoints != nil {
		if err := s.Endpoints.RegisterEndpoints(gs); err != nil {
			_ = lis.Close()
			return fmt.Errorf("could not register gRPC endpoints: %w", err)
		}
	}
	s.gs, s.lis = gs, lis

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Infof("serving gRPC on %s", lis.Addr())
		if err := gs.Serve(lis); err != nil {
			s.logger.Errorf("gRPC server stopped with error: %v", err)
		}
	}()
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown implements linker.Shutdowner. In-flight calls are completed before
// Shutdown returns.
func (s *Server) Shutdown() {
	s.lock.Lock()
	gs := s.gs
	s.gs = nil
	s.lock.Unlock()
	if gs == nil {
		return
	}
	s.health.Shutdown()
	s.logger.Infof("shutting down")
	gs.GracefulStop()
	s.wg.Wait()
}

// Addr returns the address the server listens on, or nil if it is not started
func (s *Server) Addr() net.Addr {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

func (s *Server) logRequest(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	rid := ulidutils.NewUUID()
	start := time.Now()
	s.logger.Tracef("%s [%s] request: %+v", info.FullMethod, rid, req)
	resp, err := handler(ctx, req)
	if err != nil {
		s.logger.Debugf("%s [%s] failed in %s: %v", info.FullMethod, rid, time.Since(start), err)
		return resp, err
	}
	s.logger.Tracef("%s [%s] done in %s", info.FullMethod, rid, time.Since(start))
	return resp, nil
}
