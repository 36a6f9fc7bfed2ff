// Copyright 2023 The acquirecloud Authors
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

package transport

import (
	"testing"

	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/stretchr/testify/assert"
)

func TestScanAddr(t *testing.T) {
	cfg, err := ScanAddr("localhost:1234")
	assert.Nil(t, err)
	assert.Equal(t, Config{Network: "tcp", Address: "localhost", Port: 1234}, cfg)
	assert.Equal(t, "localhost:1234", cfg.Addr())

	cfg, err = ScanAddr(":80")
	assert.Nil(t, err)
	assert.Equal(t, ":80", cfg.Addr())

	cfg, err = ScanAddr("[::1]:80")
	assert.Nil(t, err)
	assert.Equal(t, "::1", cfg.Address)
	assert.Equal(t, "[::1]:80", cfg.Addr())

	cfg, err = ScanAddr("somehost")
	assert.Nil(t, err)
	assert.Equal(t, DefaultGRPCPort, cfg.Port)

	_, err = ScanAddr("host:port")
	assert.ErrorIs(t, err, errors.ErrInvalid)
	_, err = ScanAddr("host:700000")
	assert.ErrorIs(t, err, errors.ErrInvalid)
}

func TestNewServerListener(t *testing.T) {
	l, err := NewServerListener(Config{Address: "127.0.0.1"})
	assert.Nil(t, err)
	assert.NotEmpty(t, l.Addr().String())
	assert.Nil(t, l.Close())
}
