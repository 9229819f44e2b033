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

package list_engines

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mitchellh/go-wordwrap"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/internal/output"
	"github.com/greenmaskio/randkit/internal/utils/logger"
	"github.com/greenmaskio/randkit/pkg/generators"
)

const descriptionWidth = 60

var (
	Cmd = &cobra.Command{
		Use:   "list-engines [name...]",
		Short: "list of the available random engines",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Err(err).Msg("")
			}

			if err := run(os.Stdout, Config.Output.Format, args); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
)

func selectEngines(names []string) ([]*generators.EngineDefinition, error) {
	if len(names) == 0 {
		return generators.Engines(), nil
	}
	var res []*generators.EngineDefinition
	for _, name := range names {
		def, ok := generators.GetEngineDefinition(name)
		if !ok {
			return nil, fmt.Errorf("unknown engine name \"%s\"", name)
		}
		res = append(res, def)
	}
	return res, nil
}

func run(w io.Writer, format string, names []string) error {
	defs, err := selectEngines(names)
	if err != nil {
		return err
	}

	switch format {
	case output.JsonFormatName:
		return json.NewEncoder(w).Encode(defs)
	case output.PlainFormatName:
		for _, def := range defs {
			if _, err = fmt.Fprintln(w, def.Name); err != nil {
				return err
			}
		}
		return nil
	case output.TextFormatName:
		listEnginesText(w, defs)
		return nil
	}
	return fmt.Errorf(`unknown format %s`, format)
}

func listEnginesText(w io.Writer, defs []*generators.EngineDefinition) {
	var data [][]string
	for _, def := range defs {
		data = append(data, []string{
			def.Name,
			strconv.FormatBool(def.Deterministic),
			strconv.FormatBool(def.UsesSeed),
			strconv.FormatBool(def.UsesSalt),
			wordwrap.WrapString(def.Description, descriptionWidth),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"name", "deterministic", "uses seed", "uses salt", "description"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.Render()
}
