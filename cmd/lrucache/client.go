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
	"fmt"
	"strconv"
	"time"

	lrucache "github.com/solarisdb/lrucache/api/gen/lrucache/v1"
	"github.com/solarisdb/lrucache/golibs/errors"
	"github.com/solarisdb/lrucache/golibs/transport"
	"github.com/solarisdb/lrucache/pkg/api"
	"github.com/solarisdb/lrucache/pkg/registry"
	"github.com/solarisdb/lrucache/pkg/simulation"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type clientOpts struct {
	addr    string
	timeout time.Duration
}

func newClientCmd() *cobra.Command {
	var opts clientOpts
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Calls the cache server",
	}
	cmd.PersistentFlags().StringVar(&opts.addr, "addr", fmt.Sprintf("localhost:%d", transport.DefaultGRPCPort), "the server address host:port")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "the call timeout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lists the caches of the server",
			Args:  cobra.NoArgs,
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				infos, err := c.ListCaches(ctx)
				if err != nil {
					return err
				}
				return printProto(cmd, &lrucache.ListCachesResult{Caches: infos})
			}),
		},
		&cobra.Command{
			Use:   "create <capacity>",
			Short: "Creates a cache and prints its handle",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				capacity, err := parseInt(args[0])
				if err != nil {
					return err
				}
				h, err := c.CreateCache(ctx, capacity)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), h)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "destroy <handle>",
			Short: "Destroys the cache",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				return c.DestroyCache(ctx, registry.Handle(args[0]))
			}),
		},
		&cobra.Command{
			Use:   "get <handle> <key>",
			Short: "Reads the key from the cache",
			Args:  cobra.ExactArgs(2),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				key, err := parseInt(args[1])
				if err != nil {
					return err
				}
				resp, err := c.Get(ctx, registry.Handle(args[0]), key)
				if err != nil {
					return err
				}
				return printProto(cmd, resp)
			}),
		},
		&cobra.Command{
			Use:   "put <handle> <key> <value>",
			Short: "Stores the key-value pair into the cache",
			Args:  cobra.ExactArgs(3),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				key, err := parseInt(args[1])
				if err != nil {
					return err
				}
				value, err := parseInt(args[2])
				if err != nil {
					return err
				}
				resp, err := c.Put(ctx, registry.Handle(args[0]), key, value)
				if err != nil {
					return err
				}
				return printProto(cmd, resp)
			}),
		},
		&cobra.Command{
			Use:   "stats <handle>",
			Short: "Prints the counters and the content of the cache",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				resp, err := c.Stats(ctx, registry.Handle(args[0]))
				if err != nil {
					return err
				}
				return printProto(cmd, resp)
			}),
		},
		&cobra.Command{
			Use:   "reset <handle>",
			Short: "Resets the hit and miss counters of the cache",
			Args:  cobra.ExactArgs(1),
			RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
				return c.ResetStats(ctx, registry.Handle(args[0]))
			}),
		},
		newClientSimulateCmd(&opts),
		newClientAnalyzeCmd(&opts),
	)
	return cmd
}

func newClientSimulateCmd(opts *clientOpts) *cobra.Command {
	var w simulation.Workload
	cmd := &cobra.Command{
		Use:   "simulate <handle>",
		Short: "Runs the workload against the cache of the server",
		Args:  cobra.ExactArgs(1),
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
			resp, err := c.RunSimulation(ctx, registry.Handle(args[0]), w)
			if err != nil {
				return err
			}
			return printProto(cmd, resp)
		}),
	}
	workloadFlags(cmd, &w)
	return cmd
}

func newClientAnalyzeCmd(opts *clientOpts) *cobra.Command {
	var (
		w     simulation.Workload
		sizes []int
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compares the workload over caches of different capacities on the server",
		Args:  cobra.NoArgs,
		RunE: opts.run(func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error {
			resp, err := c.AnalyzePerformance(ctx, sizes, w)
			if err != nil {
				return err
			}
			return printProto(cmd, resp)
		}),
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", simulation.DefaultSizes, "the cache capacities to compare")
	workloadFlags(cmd, &w)
	return cmd
}

// run connects to the server and calls f with the call context
func (o *clientOpts) run(f func(ctx context.Context, cmd *cobra.Command, c *api.Client, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(withContext(cmd), o.timeout)
		defer cancel()
		c, err := api.NewClient(ctx, o.addr)
		if err != nil {
			return err
		}
		defer c.Close()
		return f(ctx, cmd, c, args)
	}
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, errors.ErrInvalid)
	}
	return v, nil
}

// printProto writes the message in the JSON form, the zero fields included
func printProto(cmd *cobra.Command, m proto.Message) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
