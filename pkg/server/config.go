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
	"encoding/json"
	"fmt"

	"github.com/solarisdb/lrucache/golibs/config"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/golibs/transport"
)

type (
	// Config defines the cache server configuration
	Config struct {
		// GrpcTransport specifies grpc transport configuration
		GrpcTransport *transport.Config `json:"grpcTransport"`
		// MaxCaches limits the number of caches the server keeps at once, 0 means no limit
		MaxCaches int `json:"maxCaches"`
		// LogLevel is one of ERROR, WARN, INFO, DEBUG or TRACE
		LogLevel string `json:"logLevel"`
	}
)

// EnvPrefix is the prefix of the environment variables the config is read from,
// e.g. LRUCACHE_GRPCTRANSPORT_PORT=8080
const EnvPrefix = "LRUCACHE"

// getDefaultConfig returns the default server config
func getDefaultConfig() *Config {
	return &Config{
		GrpcTransport: transport.GetDefaultGRPCConfig(),
		MaxCaches:     1024,
		LogLevel:      logging.INFO.String(),
	}
}

// BuildConfig reads the configuration. The default values are overwritten by
// the cfgFile values (if the file name is not empty) and then by the
// environment variables.
func BuildConfig(cfgFile string) (*Config, error) {
	log := logging.NewLogger("lrucache.ConfigBuilder")
	log.Infof("trying to build config. cfgFile=%s", cfgFile)
	e := config.NewEnricher(*getDefaultConfig())
	fe := config.NewEnricher(Config{})
	err := fe.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("could not read data from the file %s: %w", cfgFile, err)
	}
	// overwrite default
	_ = e.ApplyOther(fe)
	if err = e.ApplyEnvVariables(EnvPrefix, "_"); err != nil {
		return nil, err
	}
	cfg := e.Value()
	if err = cfg.check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) check() error {
	if c.MaxCaches < 0 {
		return fmt.Errorf("maxCaches=%d must not be negative: %w", c.MaxCaches, errors.ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %w", err, errors.ErrInvalid)
	}
	return nil
}

// String implements fmt.Stringify interface in a pretty console form
func (c *Config) String() string {
	b, _ := json.MarshalIndent(*c, "", "  ")
	return string(b)
}
