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

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/randkit/cmd/randkit/cmd/check"
	"github.com/greenmaskio/randkit/cmd/randkit/cmd/generate"
	"github.com/greenmaskio/randkit/cmd/randkit/cmd/list_engines"
	"github.com/greenmaskio/randkit/cmd/randkit/cmd/next"
	"github.com/greenmaskio/randkit/internal/domains"
	configUtils "github.com/greenmaskio/randkit/internal/utils/config"
	"github.com/greenmaskio/randkit/pkg/generators"
)

const (
	appName               = "randkit"
	defaultConfigFileName = "config.yml"
)

var (
	Version    string
	Commit     string
	CommitDate string

	RootCmd = &cobra.Command{
		Use:   appName,
		Short: "randkit generates bounded random values",
		Long: "Generates random integers, longs, floats, doubles, booleans and byte sequences within the " +
			"requested bounds. Integer ranges are half-open [min, max), floating point ranges are closed " +
			"[min, max]. Values are drawn from a pluggable engine: the operating system CSPRNG, a seeded " +
			"math/rand stream or a salted hash over a counter for reproducible output.",
		SilenceUsage: true,
	}
	cfgFile string
	Config  = domains.NewConfig()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
			if setting.Key == "vcs.time" {
				CommitDate = setting.Value
			}
		}
	}
	if Version != "" {
		RootCmd.Version = fmt.Sprintf("%s %s %s", Version, Commit, CommitDate)
	} else {
		RootCmd.Version = fmt.Sprintf("%s %s", Commit, CommitDate)
	}

	cobra.OnInitialize(initConfig)
	// Removing short help flag from default
	RootCmd.PersistentFlags().BoolP("help", "", false, "help for randkit")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file ")
	RootCmd.PersistentFlags().StringP("log-format", "", "text", "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", zerolog.LevelInfoValue,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
			zerolog.LevelErrorValue,
		),
	)
	RootCmd.PersistentFlags().StringP("engine", "e", generators.CryptoEngineName,
		"random engine. See list-engines for the allowed values")
	RootCmd.PersistentFlags().Int64P("seed", "", 0, "seed of the random and murmur engines. 0 draws a random seed")
	RootCmd.PersistentFlags().StringP("salt", "", "",
		"salt of the hash engines. Prefix with hex: or base64: to pass binary salt")
	RootCmd.PersistentFlags().IntP("engine-size", "", 0,
		"bytes produced per engine call, at least 8. Hash engines are truncated, murmur accepts 8 or 16. 0 keeps the default")
	RootCmd.PersistentFlags().StringP("format", "f", "plain", "output format [plain|text|json]")

	RootCmd.AddCommand(next.BytesCmd)
	RootCmd.AddCommand(next.IntCmd)
	RootCmd.AddCommand(next.LongCmd)
	RootCmd.AddCommand(next.FloatCmd)
	RootCmd.AddCommand(next.DoubleCmd)
	RootCmd.AddCommand(next.BoolCmd)
	RootCmd.AddCommand(generate.Cmd)
	RootCmd.AddCommand(check.Cmd)
	RootCmd.AddCommand(list_engines.Cmd)

	bindings := map[string]string{
		"log.format":       "log-format",
		"log.level":        "log-level",
		"generator.engine": "engine",
		"generator.seed":   "seed",
		"generator.salt":   "salt",
		"generator.size":   "engine-size",
		"output.format":    "format",
	}
	for key, flagName := range bindings {
		if err := viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(flagName)); err != nil {
			log.Fatal().Err(err).Msg("")
		}
	}

	RootCmd.InitDefaultCompletionCmd()
	RootCmd.InitDefaultHelpCmd()
	RootCmd.InitDefaultVersionFlag()

	for _, c := range RootCmd.Commands() {
		if c.Name() == "completion" || c.Name() == "help" {
			c.DisableFlagParsing = true
			for _, subc := range c.Commands() {
				subc.DisableFlagParsing = true
			}
		}
	}
}

// defaultConfigPath - $XDG_CONFIG_HOME/randkit/config.yml or the platform equivalent if the file exists
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(configDir, appName, defaultConfigFileName)
	if _, err := os.Stat(p); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("Path", p).Msg("cannot access default config file")
		}
		return ""
	}
	return p
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = defaultConfigPath()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(appName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(Config, configUtils.DecoderConfig); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
