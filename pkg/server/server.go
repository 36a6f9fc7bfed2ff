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
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrange/linker"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/pkg/api"
	"github.com/solarisdb/lrucache/pkg/grpc"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/version"
)

// Run is an entry point of the cache server. It blocks until ctx is closed.
func Run(ctx context.Context, cfg *Config) (err error) {
	log := logging.NewLogger("server")
	log.Infof("starting server: %s", version.BuildVersionString())

	var lvl logging.Level
	lvl, err = logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLevel(lvl)

	log.Infof("config: %s", spew.Sprint(cfg))
	defer log.Infof("server is stopped")

	inj, _ := newInjector(cfg)
	if err = initInjector(ctx, inj); err != nil {
		return err
	}
	<-ctx.Done()
	inj.Shutdown()
	return nil
}

// newInjector registers the server components. The gRPC server depends on the
// service, which depends on the registry, so the linker shuts them down in the
// order: the gRPC server, the service, the registry.
func newInjector(cfg *Config) (*linker.Injector, *grpc.Server) {
	gs := grpc.NewServer(grpc.Config{Transport: *cfg.GrpcTransport})
	inj := linker.New()
	inj.Register(linker.Component{Name: "", Value: registry.New(cfg.MaxCaches)})
	inj.Register(linker.Component{Name: "", Value: api.NewService()})
	inj.Register(linker.Component{Name: "", Value: gs})
	return inj, gs
}

// initInjector returns the error the injector panics with, if a component
// could not be initialized
func initInjector(ctx context.Context, inj *linker.Injector) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not start the server: %v", r)
		}
	}()
	inj.Init(ctx)
	return nil
}
