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
	"os"
	"path/filepath"
	"testing"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cfg, err := BuildConfig("")
	require.Nil(t, err)
	assert.Equal(t, getDefaultConfig(), cfg)
	assert.Equal(t, transport.DefaultGRPCPort, cfg.GrpcTransport.Port)
}

func TestBuildConfig_FileAndEnv(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	require.Nil(t, os.WriteFile(fn, []byte("grpcTransport:\n  port: 1234\nmaxCaches: 7\n"), 0644))

	cfg, err := BuildConfig(fn)
	require.Nil(t, err)
	assert.Equal(t, 1234, cfg.GrpcTransport.Port)
	assert.Equal(t, "tcp", cfg.GrpcTransport.Network)
	assert.Equal(t, 7, cfg.MaxCaches)

	t.Setenv("LRUCACHE_MAXCACHES", "3")
	t.Setenv("LRUCACHE_LOGLEVEL", "debug")
	cfg, err = BuildConfig(fn)
	require.Nil(t, err)
	assert.Equal(t, 3, cfg.MaxCaches)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1234, cfg.GrpcTransport.Port)
}

func TestBuildConfig_Errors(t *testing.T) {
	_, err := BuildConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, errors.ErrNotExist)

	t.Setenv("LRUCACHE_LOGLEVEL", "verbose")
	_, err = BuildConfig("")
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestConfig_String(t *testing.T) {
	assert.Contains(t, getDefaultConfig().String(), `"maxCaches": 1024`)
}
