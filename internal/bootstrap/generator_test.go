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

package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/pkg/generators"
)

func TestNewGenerator_Deterministic(t *testing.T) {
	for _, engine := range []string{generators.RandomEngineName, generators.Sha256Name, generators.MurmurEngineName} {
		t.Run(engine, func(t *testing.T) {
			cfg := &domains.GeneratorConfig{Engine: engine, Seed: 7, Salt: domains.Salt("salt")}

			a, err := NewGenerator(cfg, 0)
			require.NoError(t, err)
			b, err := NewGenerator(cfg, 0)
			require.NoError(t, err)
			other, err := NewGenerator(cfg, 1)
			require.NoError(t, err)

			va, err := a.Bytes(32)
			require.NoError(t, err)
			vb, err := b.Bytes(32)
			require.NoError(t, err)
			vo, err := other.Bytes(32)
			require.NoError(t, err)

			require.Equal(t, va, vb)
			require.NotEqual(t, va, vo, "workers must get independent streams")
		})
	}
}

func TestNewGenerator_RandomSeed(t *testing.T) {
	cfg := &domains.GeneratorConfig{Engine: generators.RandomEngineName}
	g, err := NewGenerator(cfg, 0)
	require.NoError(t, err)
	v, err := g.Int64(0, 10)
	require.NoError(t, err)
	require.True(t, v >= 0 && v < 10)
	require.Equal(t, int64(0), cfg.Seed, "config must not be modified")
}

func TestNewGenerator_UnknownEngine(t *testing.T) {
	_, err := NewGenerator(&domains.GeneratorConfig{Engine: "md5"}, 0)
	require.ErrorContains(t, err, "unknown engine")
}

func TestNewGenerator_Size(t *testing.T) {
	cfg := &domains.GeneratorConfig{Engine: generators.MurmurEngineName, Seed: 3, Size: generators.MurMurHash64Size}
	g, err := NewGenerator(cfg, 0)
	require.NoError(t, err)
	v, err := g.Int64(0, 10)
	require.NoError(t, err)
	require.True(t, v >= 0 && v < 10)

	cfg.Size = generators.MurMurHash32Size
	_, err = NewGenerator(cfg, 0)
	require.ErrorContains(t, err, "at least 8 bytes")

	_, err = NewGenerator(&domains.GeneratorConfig{Engine: generators.Sha1Name, Size: 21}, 0)
	require.ErrorContains(t, err, "exceeds hash size")

	reduced, err := NewGenerator(&domains.GeneratorConfig{Engine: generators.Sha3512, Size: 8}, 0)
	require.NoError(t, err)
	b, err := reduced.Bytes(20)
	require.NoError(t, err)
	require.Len(t, b, 20)
}
