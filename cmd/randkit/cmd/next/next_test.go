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
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/internal/output"
	"github.com/greenmaskio/randkit/internal/plan"
	"github.com/greenmaskio/randkit/pkg/generators"
	"github.com/greenmaskio/randkit/pkg/random"
)

func testConfig() *domains.Config {
	return &domains.Config{
		Generator: domains.GeneratorConfig{Engine: generators.RandomEngineName, Seed: 1},
		Output:    domains.OutputConfig{Format: output.PlainFormatName},
	}
}

func TestRun_Long(t *testing.T) {
	req, err := rangeRequest(plan.TypeLong)(LongCmd, []string{"33", "42"})
	require.NoError(t, err)
	req.Count = 10

	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, testConfig(), req))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	for _, l := range lines {
		v, err := strconv.ParseInt(l, 10, 64)
		require.NoError(t, err)
		require.True(t, v >= 33 && v < 42)
	}
}

func TestRun_Bytes(t *testing.T) {
	req, err := bytesRequest(BytesCmd, []string{"20"})
	require.NoError(t, err)
	req.Count = 1

	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, testConfig(), req))
	require.Len(t, strings.TrimSpace(buf.String()), 40)

	_, err = bytesRequest(BytesCmd, []string{"twenty"})
	require.Error(t, err)
}

func TestRun_InvalidRange(t *testing.T) {
	req, err := rangeRequest(plan.TypeDouble)(DoubleCmd, []string{"2", "1"})
	require.NoError(t, err)
	err = run(&bytes.Buffer{}, testConfig(), req)
	require.ErrorIs(t, err, random.ErrInvalidArgument)
}

func TestRun_Bool(t *testing.T) {
	req, err := boolRequest(BoolCmd, nil)
	require.NoError(t, err)
	req.Count = 1
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, testConfig(), req))
	_, err = strconv.ParseBool(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
}

func TestRun_WrongFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Format = "xml"
	req, err := boolRequest(BoolCmd, nil)
	require.NoError(t, err)
	require.Error(t, run(&bytes.Buffer{}, cfg, req))
}

func TestRun_IntBoundsAreNotTruncated(t *testing.T) {
	for _, args := range [][]string{{"0", "4294967338"}, {"0", "2.9"}, {"0", "0x10"}} {
		req, err := rangeRequest(plan.TypeInt)(IntCmd, args)
		require.NoError(t, err)
		err = run(&bytes.Buffer{}, testConfig(), req)
		require.ErrorIs(t, err, random.ErrInvalidArgument, "args %v", args)
	}

	req, err := rangeRequest(plan.TypeLong)(LongCmd, []string{"010", "011"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, run(buf, testConfig(), req))
	require.Equal(t, "10", strings.TrimSpace(buf.String()))
}
