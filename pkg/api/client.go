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
	"fmt"

	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client calls the cache service. The errors returned by the Client methods
// are the general errors (see golibs/errors) the server reported.
type Client struct {
	conn *grpc.ClientConn
	cc   lrucache.CacheServiceClient
}

// NewClient connects to the cache service by the addr. The addr is host:port,
// the default port is used if only the host is provided.
func NewClient(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	cfg, err := transport.ScanAddr(addr)
	if err != nil {
		return nil, err
	}
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.DialContext(ctx, cfg.Addr(), opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %s: %w", cfg.Addr(), err, errors.ErrCommunication)
	}
	return &Client{conn: conn, cc: lrucache.NewCacheServiceClient(conn)}, nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) CreateCache(ctx context.Context, capacity int) (registry.Handle, error) {
	res, err := c.cc.CreateCache(ctx, &lrucache.CreateCacheRequest{Capacity: int64(capacity)})
	if err != nil {
		return "", errors.FromGRPCErrorWithMsg(err)
	}
	return registry.Handle(res.Handle), nil
}

func (c *Client) DestroyCache(ctx context.Context, h registry.Handle) error {
	_, err := c.cc.DestroyCache(ctx, &lrucache.HandleRequest{Handle: string(h)})
	return errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) ListCaches(ctx context.Context) ([]*lrucache.CacheInfo, error) {
	res, err := c.cc.ListCaches(ctx, &lrucache.Empty{})
	if err != nil {
		return nil, errors.FromGRPCErrorWithMsg(err)
	}
	return res.Caches, nil
}

func (c *Client) Get(ctx context.Context, h registry.Handle, key int) (*lrucache.GetResult, error) {
	res, err := c.cc.Get(ctx, &lrucache.GetRequest{Handle: string(h), Key: int64(key)})
	return res, errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) Put(ctx context.Context, h registry.Handle, key, value int) (*lrucache.PutResult, error) {
	res, err := c.cc.Put(ctx, &lrucache.PutRequest{Handle: string(h), Key: int64(key), Value: int64(value)})
	return res, errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) Stats(ctx context.Context, h registry.Handle) (*lrucache.CacheStats, error) {
	res, err := c.cc.Stats(ctx, &lrucache.HandleRequest{Handle: string(h)})
	return res, errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) ResetStats(ctx context.Context, h registry.Handle) error {
	_, err := c.cc.ResetStats(ctx, &lrucache.HandleRequest{Handle: string(h)})
	return errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) RunSimulation(ctx context.Context, h registry.Handle, w simulation.Workload) (*lrucache.SimulationResult, error) {
	res, err := c.cc.RunSimulation(ctx, &lrucache.SimulationRequest{Handle: string(h), Workload: FromWorkload(w)})
	return res, errors.FromGRPCErrorWithMsg(err)
}

func (c *Client) AnalyzePerformance(ctx context.Context, sizes []int, w simulation.Workload) (*lrucache.AnalyzeResult, error) {
	req := &lrucache.AnalyzeRequest{Workload: FromWorkload(w), Sizes: make([]int64, len(sizes))}
	for i, s := range sizes {
		req.Sizes[i] = int64(s)
	}
	res, err := c.cc.AnalyzePerformance(ctx, req)
	return res, errors.FromGRPCErrorWithMsg(err)
}
