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
	"testing"

	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type registerF func(*grpc.Server) error

func (f registerF) RegisterEndpoints(gs *grpc.Server) error {
	return f(gs)
}

func TestServer_InitShutdown(t *testing.T) {
	registered := false
	s := NewServer(Config{Transport: transport.Config{Network: "tcp", Address: "127.0.0.1", Port: 0}})
	s.Endpoints = registerF(func(*grpc.Server) error {
		registered = true
		return nil
	})
	assert.Nil(t, s.Addr())
	require.Nil(t, s.Init(context.Background()))
	assert.True(t, registered)
	assert.NotNil(t, s.Addr())
	assert.NotNil(t, s.Init(context.Background()))

	conn, err := grpc.Dial(s.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.Nil(t, err)
	defer conn.Close()
	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.Nil(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)

	s.Shutdown()
	s.Shutdown()
}

func TestServer_RegisterError(t *testing.T) {
	s := NewServer(Config{Transport: transport.Config{Address: "127.0.0.1", Port: 0}})
	s.Endpoints = registerF(func(*grpc.Server) error {
		return assert.AnError
	})
	assert.ErrorIs(t, s.Init(context.Background()), assert.AnError)
	assert.Nil(t, s.Addr())
}

func TestServer_NoEndpoints(t *testing.T) {
	s := NewServer(Config{Transport: transport.Config{Address: "127.0.0.1", Port: 0}})
	require.Nil(t, s.Init(context.Background()))
	assert.NotNil(t, s.Addr())
	s.Shutdown()
}
