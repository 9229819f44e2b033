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

package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/randkit/internal/bootstrap"
	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/internal/output"
	"github.com/greenmaskio/randkit/internal/plan"
	"github.com/greenmaskio/randkit/internal/utils/logger"
	"github.com/greenmaskio/randkit/pkg/random"
	"github.com/greenmaskio/randkit/pkg/uniformity"
)

var ErrNotUniform = errors.New("values are not uniformly distributed")

var (
	Cmd = &cobra.Command{
		Use:   "check <int|long|float|double> <min> <max>",
		Short: "sample the engine and run chi-square goodness of fit test against the uniform distribution",
		Long: "Draws samples from the configured engine into a histogram with equal width buckets and compares " +
			"it against the uniform distribution. For int and long ranges [min, max) the width max - min " +
			"should be divisible by the bucket count, otherwise the buckets hold different amounts of values.",
		Args: cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("")
			}

			ctx, cancel := context.WithTimeout(context.Background(), Config.Check.Timeout)
			defer cancel()

			if err := run(ctx, os.Stdout, Config, args[0], args[1], args[2]); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
)

type Report struct {
	Histogram *uniformity.Histogram
	ChiSquare float64
	Critical  float64
	Uniform   bool
}

func sampler(cfg *domains.Config, valueType string, minValue, maxValue string) (uniformity.SamplerFactory, error) {
	var newSampleFunc func(g *random.Generator) uniformity.SampleFunc
	switch valueType {
	case plan.TypeInt, plan.TypeLong:
		lower, upper, err := plan.Int64Bounds(valueType, minValue, maxValue)
		if err != nil {
			return nil, err
		}
		l, err := random.NewInt64Limiter(lower, upper)
		if err != nil {
			return nil, err
		}
		newSampleFunc = func(g *random.Generator) uniformity.SampleFunc {
			return func() (float64, error) {
				v, err := g.LimitInt64(l)
				return float64(v), err
			}
		}
	case plan.TypeFloat:
		lower, upper, err := plan.Float64Bounds(valueType, minValue, maxValue)
		if err != nil {
			return nil, err
		}
		l, err := random.NewFloat32Limiter(float32(lower), float32(upper))
		if err != nil {
			return nil, err
		}
		newSampleFunc = func(g *random.Generator) uniformity.SampleFunc {
			return func() (float64, error) {
				v, err := g.LimitFloat32(l)
				return float64(v), err
			}
		}
	case plan.TypeDouble:
		lower, upper, err := plan.Float64Bounds(valueType, minValue, maxValue)
		if err != nil {
			return nil, err
		}
		l, err := random.NewFloat64Limiter(lower, upper)
		if err != nil {
			return nil, err
		}
		newSampleFunc = func(g *random.Generator) uniformity.SampleFunc {
			return func() (float64, error) {
				return g.LimitFloat64(l)
			}
		}
	default:
		return nil, fmt.Errorf("%w \"%s\"", plan.ErrUnknownType, valueType)
	}

	return func(worker int) (uniformity.SampleFunc, error) {
		g, err := bootstrap.NewGenerator(&cfg.Generator, worker)
		if err != nil {
			return nil, err
		}
		return newSampleFunc(g), nil
	}, nil
}

func Check(ctx context.Context, cfg *domains.Config, valueType, minValue, maxValue string) (*Report, error) {
	factory, err := sampler(cfg, valueType, minValue, maxValue)
	if err != nil {
		return nil, err
	}
	lower, upper, err := plan.Float64Bounds(valueType, minValue, maxValue)
	if err != nil {
		return nil, err
	}
	h, err := uniformity.NewHistogram(lower, upper, cfg.Check.Buckets)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("Engine", cfg.Generator.Engine).
		Int("Samples", cfg.Check.Samples).
		Int("Workers", cfg.Check.Workers).
		Msg("sampling")
	if err = uniformity.Sample(ctx, h, cfg.Check.Workers, cfg.Check.Samples, factory); err != nil {
		return nil, err
	}
	return &Report{
		Histogram: h,
		ChiSquare: h.ChiSquare(),
		Critical:  uniformity.CriticalValue(h.DegreesOfFreedom(), cfg.Check.Alpha),
		Uniform:   h.Uniform(cfg.Check.Alpha),
	}, nil
}

func run(ctx context.Context, w io.Writer, cfg *domains.Config, valueType, minValue, maxValue string) error {
	if err := output.ValidateFormat(cfg.Output.Format); err != nil {
		return err
	}
	report, err := Check(ctx, cfg, valueType, minValue, maxValue)
	if err != nil {
		return err
	}

	var data [][]string
	expected := strconv.FormatFloat(report.Histogram.Expected(), 'f', 2, 64)
	for idx, c := range report.Histogram.Counts() {
		lower, upper := report.Histogram.Bounds(idx)
		data = append(data, []string{
			strconv.Itoa(idx),
			strconv.FormatFloat(lower, 'g', 6, 64),
			strconv.FormatFloat(upper, 'g', 6, 64),
			strconv.FormatUint(c, 10),
			expected,
		})
	}
	if err = output.PrintTable(w, cfg.Output.Format, []string{"bucket", "from", "to", "count", "expected"}, data); err != nil {
		return err
	}

	log.Info().
		Float64("ChiSquare", report.ChiSquare).
		Float64("CriticalValue", report.Critical).
		Float64("Alpha", cfg.Check.Alpha).
		Bool("Uniform", report.Uniform).
		Msg("chi-square test")
	if !report.Uniform {
		return fmt.Errorf("%w: chi-square %f exceeds critical value %f", ErrNotUniform, report.ChiSquare, report.Critical)
	}
	return nil
}

func init() {
	Cmd.Flags().IntP("samples", "s", 100000, "amount of samples")
	Cmd.Flags().IntP("buckets", "b", 10, "amount of histogram buckets")
	Cmd.Flags().IntP("workers", "w", 4, "amount of sampling workers")
	Cmd.Flags().Float64P("alpha", "a", 0.001, "significance level")
	Cmd.Flags().StringP("timeout", "t", "1m", "sampling timeout. Accepts days and weeks, e.g. 1d")

	for _, name := range []string{"samples", "buckets", "workers", "alpha", "timeout"} {
		if err := viper.BindPFlag("check."+name, Cmd.Flags().Lookup(name)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}
}
