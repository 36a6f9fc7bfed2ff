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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/solarisdb/lrucache/pkg/api"
	"github.com/solarisdb/lrucache/pkg/grpc"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReplayCmd(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trace.txt")
	require.Nil(t, os.WriteFile(fn, []byte("create 1\nput 1 10\nget 1 -> 10\nput 2 20\nget 1 -> miss\n"), 0644))
	out, err := execute(t, "replay", fn)
	assert.Nil(t, err)
	assert.NotContains(t, out, "FAIL")

	require.Nil(t, os.WriteFile(fn, []byte("create 1\nget 1 -> 10\n"), 0644))
	out, err = execute(t, "replay", fn)
	assert.NotNil(t, err)
	assert.Contains(t, out, "FAIL")
}

func TestSimulateCmd(t *testing.T) {
	out, err := execute(t, "simulate", "--capacity", "10", "--requests", "100", "--seed", "1")
	assert.Nil(t, err)
	assert.Contains(t, out, `"hitsOverTime"`)

	_, err = execute(t, "simulate", "--capacity", "0")
	assert.NotNil(t, err)
}

func TestAnalyzeCmd(t *testing.T) {
	out, err := execute(t, "analyze", "--sizes", "5,10", "--requests", "100", "--seed", "1")
	assert.Nil(t, err)
	assert.Contains(t, out, `"cacheSize": 10`)
}

func startServer(t *testing.T) string {
	svc := api.NewService()
	svc.Registry = registry.New(0)
	gs := grpc.NewServer(grpc.Config{Transport: transport.Config{Network: "tcp", Address: "127.0.0.1"}})
	gs.Endpoints = svc
	require.Nil(t, gs.Init(context.Background()))
	t.Cleanup(gs.Shutdown)
	return gs.Addr().String()
}

func executeProto(t *testing.T, m proto.Message, args ...string) {
	out, err := execute(t, args...)
	require.Nil(t, err, out)
	require.Nil(t, protojson.Unmarshal([]byte(out), m), out)
}

func TestClientCmd(t *testing.T) {
	addr := startServer(t)

	out, err := execute(t, "client", "--addr", addr, "create", "2")
	require.Nil(t, err, out)
	h := strings.TrimSpace(out)

	_, err = execute(t, "client", "--addr", addr, "put", h, "1", "10")
	assert.Nil(t, err)
	var gr lrucache.GetResult
	executeProto(t, &gr, "client", "--addr", addr, "get", h, "1")
	assert.True(t, gr.Found)
	assert.Equal(t, int64(10), gr.Value)

	var st lrucache.CacheStats
	executeProto(t, &st, "client", "--addr", addr, "stats", h)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, 1, len(st.Items))

	var lr lrucache.ListCachesResult
	executeProto(t, &lr, "client", "--addr", addr, "list")
	require.Equal(t, 1, len(lr.Caches))
	assert.Equal(t, h, lr.Caches[0].Handle)
	assert.Equal(t, int64(2), lr.Caches[0].Capacity)

	_, err = execute(t, "client", "--addr", addr, "reset", h)
	assert.Nil(t, err)
	_, err = execute(t, "client", "--addr", addr, "destroy", h)
	assert.Nil(t, err)
	_, err = execute(t, "client", "--addr", addr, "stats", h)
	assert.NotNil(t, err)
}

func TestClientCmd_SimulateAnalyze(t *testing.T) {
	addr := startServer(t)
	out, err := execute(t, "client", "--addr", addr, "create", "10")
	require.Nil(t, err, out)
	h := strings.TrimSpace(out)

	var sr lrucache.SimulationResult
	executeProto(t, &sr, "client", "--addr", addr, "simulate", h, "--requests", "100", "--seed", "1")
	assert.Equal(t, uint64(100), sr.Hits+sr.Misses)
	assert.Equal(t, int64(100), sr.Workload.Requests)

	var ar lrucache.AnalyzeResult
	executeProto(t, &ar, "client", "--addr", addr, "analyze", "--sizes", "5,10", "--requests", "100", "--seed", "1")
	require.Equal(t, 2, len(ar.Results))
	assert.Equal(t, int64(10), ar.Results[1].CacheSize)
}

func TestClientCmd_BadAddr(t *testing.T) {
	_, err := execute(t, "client", "--addr", "localhost:port", "list")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "port")
}
