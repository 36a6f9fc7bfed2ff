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

// Package transport contains the network settings shared by the servers and
// the clients of the cache API.
package transport

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/solarisdb/lrucache/golibs/errors"
)

// Config provides a network transport configuration
type Config struct {
	// Network defines the network for a network connection, "tcp" by default
	Network string `json:"network"`

	// Address can have an interface for listening. Leave it empty to listen on all interfaces
	Address string `json:"address"`

	// Port is the port the server will listen on
	Port int `json:"port"`
}

// DefaultGRPCPort is the port the cache API is served on by default
const DefaultGRPCPort = 50061

// Addr returns the address string for the transport
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}

// ScanAddr turns a string in the format host:port into Config object. The
// Network field will be "tcp".
func ScanAddr(addr string) (Config, error) {
	res := Config{Network: "tcp"}
	idx := strings.LastIndex(addr, ":")
	if idx == -1 {
		res.Address = addr
		res.Port = DefaultGRPCPort
		return res, nil
	}
	port, err := strconv.ParseUint(addr[idx+1:], 10, 16)
	if err != nil {
		return res, fmt.Errorf("could not parse %q as a port number: %s: %w", addr[idx+1:], err, errors.ErrInvalid)
	}
	res.Address = strings.Trim(addr[:idx], "[]")
	res.Port = int(port)
	return res, nil
}

// String implements fmt.Stringify
func (c *Config) String() string {
	b, _ := json.Marshal(*c)
	return string(b)
}

// NewServerListener returns net.Listener by the config provided
func NewServerListener(cfg Config) (net.Listener, error) {
	network := cfg.Network
	if network == "" {
		network = "tcp"
	}
	return net.Listen(network, cfg.Addr())
}

// GetDefaultGRPCConfig returns default GRPC config
func GetDefaultGRPCConfig() *Config {
	return &Config{
		Network: "tcp",
		Address: "",
		Port:    DefaultGRPCPort,
	}
}
