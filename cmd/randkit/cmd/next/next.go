// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package next

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/randkit/internal/bootstrap"
	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/internal/output"
	"github.com/greenmaskio/randkit/internal/plan"
	"github.com/greenmaskio/randkit/internal/utils/logger"
)

var (
	BytesCmd = &cobra.Command{
		Use:   "bytes <count>",
		Short: "print a random byte sequence of the given length hex encoded",
		Args:  cobra.ExactArgs(1),
		Run:   runCmd(bytesRequest),
	}
	IntCmd = &cobra.Command{
		Use:   "int <min> <max>",
		Short: "print a random 32 bit integer from [min, max)",
		Args:  cobra.ExactArgs(2),
		Run:   runCmd(rangeRequest(plan.TypeInt)),
	}
	LongCmd = &cobra.Command{
		Use:   "long <min> <max>",
		Short: "print a random 64 bit integer from [min, max)",
		Args:  cobra.ExactArgs(2),
		Run:   runCmd(rangeRequest(plan.TypeLong)),
	}
	FloatCmd = &cobra.Command{
		Use:   "float <min> <max>",
		Short: "print a random float from [min, max]",
		Args:  cobra.ExactArgs(2),
		Run:   runCmd(rangeRequest(plan.TypeFloat)),
	}
	DoubleCmd = &cobra.Command{
		Use:   "double <min> <max>",
		Short: "print a random double from [min, max]",
		Args:  cobra.ExactArgs(2),
		Run:   runCmd(rangeRequest(plan.TypeDouble)),
	}
	BoolCmd = &cobra.Command{
		Use:   "bool",
		Short: "print a random boolean",
		Args:  cobra.NoArgs,
		Run:   runCmd(boolRequest),
	}
	Config = domains.NewConfig()
	count  int
)

type requestBuilder func(cmd *cobra.Command, args []string) (*plan.Request, error)

func runCmd(build requestBuilder) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
			log.Fatal().Err(err).Msg("")
		}

		req, err := build(cmd, args)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		if err := run(os.Stdout, Config, req); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}

func run(w io.Writer, cfg *domains.Config, req *plan.Request) error {
	if err := output.ValidateFormat(cfg.Output.Format); err != nil {
		return err
	}
	g, err := bootstrap.NewGenerator(&cfg.Generator, 0)
	if err != nil {
		return err
	}
	res, err := plan.Execute(g, &plan.Plan{Requests: []*plan.Request{req}})
	if err != nil {
		return err
	}
	return output.PrintResults(w, cfg.Output.Format, res)
}

func bytesRequest(cmd *cobra.Command, args []string) (*plan.Request, error) {
	size, err := cast.ToIntE(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot parse byte count \"%s\": %w", args[0], err)
	}
	return &plan.Request{
		Name:  cmd.Name(),
		Type:  plan.TypeBytes,
		Size:  size,
		Count: count,
	}, nil
}

func rangeRequest(requestType string) requestBuilder {
	return func(cmd *cobra.Command, args []string) (*plan.Request, error) {
		return &plan.Request{
			Name:  cmd.Name(),
			Type:  requestType,
			Min:   args[0],
			Max:   args[1],
			Count: count,
		}, nil
	}
}

func boolRequest(cmd *cobra.Command, _ []string) (*plan.Request, error) {
	return &plan.Request{
		Name:  cmd.Name(),
		Type:  plan.TypeBool,
		Count: count,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{BytesCmd, IntCmd, LongCmd, FloatCmd, DoubleCmd, BoolCmd} {
		c.Flags().IntVarP(&count, "count", "n", 1, "amount of values to generate")
	}
}
