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

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/greenmaskio/randkit/internal/plan"
)

const (
	JsonFormatName  = "json"
	TextFormatName  = "text"
	PlainFormatName = "plain"
)

func ValidateFormat(format string) error {
	switch format {
	case JsonFormatName, TextFormatName, PlainFormatName:
		return nil
	}
	return fmt.Errorf(`unknown format %s`, format)
}

// PrintResults - text renders a table with one row per value, plain prints bare values one per line
func PrintResults(w io.Writer, format string, results []*plan.Result) error {
	switch format {
	case JsonFormatName:
		return json.NewEncoder(w).Encode(results)
	case PlainFormatName:
		for _, r := range results {
			for _, v := range r.Values {
				if _, err := fmt.Fprintln(w, v); err != nil {
					return err
				}
			}
		}
		return nil
	case TextFormatName:
		var data [][]string
		for _, r := range results {
			for idx, v := range r.Values {
				data = append(data, []string{r.Name, r.Type, fmt.Sprintf("%d", idx), v})
			}
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"name", "type", "#", "value"})
		table.AppendBulk(data)
		table.SetAutoMergeCellsByColumnIndex([]int{0, 1})
		table.SetRowLine(true)
		table.Render()
		return nil
	}
	return fmt.Errorf(`unknown format %s`, format)
}

// PrintTable - text renders a table, json encodes rows as objects keyed by header
func PrintTable(w io.Writer, format string, header []string, data [][]string) error {
	switch format {
	case JsonFormatName:
		rows := make([]map[string]string, 0, len(data))
		for _, row := range data {
			obj := make(map[string]string, len(header))
			for i, h := range header {
				if i < len(row) {
					obj[h] = row[i]
				}
			}
			rows = append(rows, obj)
		}
		return json.NewEncoder(w).Encode(rows)
	case TextFormatName, PlainFormatName:
		table := tablewriter.NewWriter(w)
		table.SetHeader(header)
		table.AppendBulk(data)
		table.SetRowLine(true)
		table.Render()
		return nil
	}
	return fmt.Errorf(`unknown format %s`, format)
}
