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

package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/solarisdb/lrucache/pkg/api"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	cfg := getDefaultConfig()
	cfg.GrpcTransport = &transport.Config{Network: "tcp", Address: "127.0.0.1", Port: 0}
	return cfg
}

func startInjector(t *testing.T) (*api.Client, *registry.Registry, func()) {
	inj, gs := newInjector(testConfig())
	require.Nil(t, initInjector(context.Background(), inj))
	svc, ok := gs.Endpoints.(*api.Service)
	require.True(t, ok)
	require.NotNil(t, svc.Registry)

	c, err := api.NewClient(context.Background(), gs.Addr().String())
	require.Nil(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, svc.Registry, inj.Shutdown
}

func TestInjector_Wiring(t *testing.T) {
	c, reg, shutdown := startInjector(t)
	defer shutdown()

	h, err := c.CreateCache(context.Background(), 1)
	require.Nil(t, err)
	assert.Equal(t, []registry.Handle{h}, reg.Handles())
}

func TestInjector_ShutdownOrder(t *testing.T) {
	c, reg, shutdown := startInjector(t)
	ctx := context.Background()
	h, err := c.CreateCache(ctx, 1)
	require.Nil(t, err)

	locked := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = reg.Exec(h, func(*registry.Cache) error {
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	getDone := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, h, 1)
		getDone <- err
	}()
	// let the call reach the server and wait for the cache lock
	time.Sleep(100 * time.Millisecond)

	shutDone := make(chan struct{})
	go func() {
		shutdown()
		close(shutDone)
	}()
	time.Sleep(50 * time.Millisecond)

	// the gRPC server waits for the call, the registry is still open
	assert.Equal(t, []registry.Handle{h}, reg.Handles())
	select {
	case <-shutDone:
		t.Fatal("the shutdown must wait for the in-flight call")
	default:
	}

	close(release)
	assert.Nil(t, <-getDone)
	<-shutDone
	_, err = reg.Create(1)
	assert.ErrorIs(t, err, errors.ErrClosed)
}

func TestInitInjector_Error(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	defer lis.Close()

	cfg := testConfig()
	cfg.GrpcTransport.Port = lis.Addr().(*net.TCPAddr).Port
	inj, _ := newInjector(cfg)
	err = initInjector(context.Background(), inj)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "could not start the server")
}
