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

package domains

import (
	"sync"
	"time"

	"github.com/greenmaskio/randkit/internal/plan"
	"github.com/greenmaskio/randkit/pkg/generators"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	defaultEngine       = generators.CryptoEngineName
	defaultCheckSamples = 100000
	defaultCheckBuckets = 10
	defaultCheckWorkers = 4
	defaultCheckAlpha   = 0.001
	defaultCheckTimeout = time.Minute
	defaultOutputFormat = "plain"
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Log: LogConfig{
					Format: "text",
					Level:  "info",
				},
				Generator: GeneratorConfig{
					Engine: defaultEngine,
				},
				Output: OutputConfig{
					Format: defaultOutputFormat,
				},
				Check: CheckConfig{
					Samples: defaultCheckSamples,
					Buckets: defaultCheckBuckets,
					Workers: defaultCheckWorkers,
					Alpha:   defaultCheckAlpha,
					Timeout: defaultCheckTimeout,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log" json:"log"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator" json:"generator"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output" json:"output"`
	Check     CheckConfig     `mapstructure:"check" yaml:"check" json:"check"`
	Generate  GenerateConfig  `mapstructure:"generate" yaml:"generate" json:"generate"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

type GeneratorConfig struct {
	Engine string `mapstructure:"engine" yaml:"engine" json:"engine,omitempty"`
	// Seed - used by the random and murmur engines. Zero means draw a seed from crypto/rand
	Seed int64 `mapstructure:"seed" yaml:"seed" json:"seed,omitempty"`
	// Salt - used by the hash engines
	Salt Salt `mapstructure:"salt" yaml:"salt" json:"salt,omitempty"`
	// Size - bytes produced per engine call, at least 8. Hash engines are truncated, murmur accepts 8 or 16.
	// Zero keeps the engine default
	Size int `mapstructure:"size" yaml:"size" json:"size,omitempty"`
}

// Salt - hash engine salt. Values prefixed with "hex:" or "base64:" are decoded, any other value is used
// as plain text.
type Salt []byte

type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
}

type CheckConfig struct {
	Samples int           `mapstructure:"samples" yaml:"samples" json:"samples,omitempty"`
	Buckets int           `mapstructure:"buckets" yaml:"buckets" json:"buckets,omitempty"`
	Workers int           `mapstructure:"workers" yaml:"workers" json:"workers,omitempty"`
	Alpha   float64       `mapstructure:"alpha" yaml:"alpha" json:"alpha,omitempty"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout,omitempty"`
}

type GenerateConfig struct {
	// PlanFile - YAML or JSON file with requests. It takes precedence over Requests
	PlanFile string          `mapstructure:"plan_file" yaml:"plan_file" json:"plan_file,omitempty"`
	Requests []*plan.Request `mapstructure:"requests" yaml:"requests" json:"requests,omitempty"`
}
