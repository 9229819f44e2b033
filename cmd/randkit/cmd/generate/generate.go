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

package generate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/randkit/internal/bootstrap"
	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/internal/output"
	"github.com/greenmaskio/randkit/internal/plan"
	"github.com/greenmaskio/randkit/internal/utils/logger"
)

var (
	Cmd = &cobra.Command{
		Use:   "generate",
		Short: "run a generation plan from the plan file or the generate.requests config section",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			if err := run(os.Stdout, Config); err != nil {
				log.Fatal().Err(err).Msg("cannot execute plan")
			}
		},
	}
	Config = domains.NewConfig()
)

func loadPlan(cfg *domains.GenerateConfig) (*plan.Plan, error) {
	if cfg.PlanFile != "" {
		p, err := plan.ReadPlan(cfg.PlanFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read plan file: %w", err)
		}
		return p, nil
	}
	if len(cfg.Requests) == 0 {
		return nil, errors.New("neither plan file nor generate.requests are provided")
	}
	return &plan.Plan{Requests: cfg.Requests}, nil
}

func run(w io.Writer, cfg *domains.Config) error {
	if err := output.ValidateFormat(cfg.Output.Format); err != nil {
		return err
	}
	p, err := loadPlan(&cfg.Generate)
	if err != nil {
		return err
	}
	g, err := bootstrap.NewGenerator(&cfg.Generator, 0)
	if err != nil {
		return err
	}
	log.Debug().
		Str("Engine", cfg.Generator.Engine).
		Int("Requests", len(p.Requests)).
		Msg("executing plan")
	res, err := plan.Execute(g, p)
	if err != nil {
		return err
	}
	return output.PrintResults(w, cfg.Output.Format, res)
}

func init() {
	Cmd.Flags().StringP("plan", "p", "", "path to YAML or JSON plan file")
	if err := viper.BindPFlag("generate.plan_file", Cmd.Flags().Lookup("plan")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
