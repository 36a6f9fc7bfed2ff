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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/solarisdb/lrucache/golibs/container/lru"
	sigctx "github.com/solarisdb/lrucache/golibs/context"
	"github.com/solarisdb/lrucache/golibs/logging"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/server"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"github.com/solarisdb/lrucache/pkg/trace"
	"github.com/solarisdb/lrucache/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := sigctx.NewSignalsContext(os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:     "lrucache",
		Short:   "In-memory LRU cache server and tools",
		Version: version.BuildVersionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.SetLevel(lvl)
			return nil
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: ERROR, WARN, INFO, DEBUG or TRACE")
	root.AddCommand(newStartCmd(), newReplayCmd(), newSimulateCmd(), newAnalyzeCmd(), newClientCmd())
	return root
}

func newStartCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Runs the cache gRPC server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.BuildConfig(cfgFile)
			if err != nil {
				return err
			}
			return server.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "the server config file (.yaml or .json)")
	return cmd
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Replays the trace script against a local cache and checks the expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := trace.Parse(string(buf))
			if err != nil {
				return err
			}
			reg := registry.New(1)
			defer reg.Shutdown()
			rep, err := trace.Replay(cmd.Context(), reg, s)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rep.String())
			if !rep.OK() {
				return fmt.Errorf("%d of %d steps failed", len(rep.Failures()), len(rep.Steps))
			}
			return nil
		},
	}
}

func workloadFlags(cmd *cobra.Command, w *simulation.Workload) {
	cmd.Flags().IntVar(&w.Requests, "requests", simulation.DefaultRequests, "the number of requests")
	cmd.Flags().IntVar(&w.KeyRange, "key-range", simulation.DefaultKeyRange, "the keys are in [1, key-range]")
	cmd.Flags().Float64Var(&w.Alpha, "alpha", simulation.DefaultAlpha, "the key distribution parameter")
	cmd.Flags().Uint64Var(&w.Seed, "seed", 0, "the random seed, 0 means a time-based one")
}

func newSimulateCmd() *cobra.Command {
	var (
		w        simulation.Workload
		capacity int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Runs the workload against a local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lru.NewCache[int, int](capacity, nil)
			if err != nil {
				return err
			}
			res, err := simulation.Run(cmd.Context(), c, w)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().IntVar(&capacity, "capacity", 100, "the cache capacity")
	workloadFlags(cmd, &w)
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		w     simulation.Workload
		sizes []int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compares the workload over local caches of different capacities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := simulation.Analyze(cmd.Context(), sizes, w)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", simulation.DefaultSizes, "the cache capacities to compare")
	workloadFlags(cmd, &w)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func withContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
