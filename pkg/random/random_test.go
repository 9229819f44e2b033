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

package random

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenmaskio/randkit/pkg/generators"
	"github.com/greenmaskio/randkit/pkg/generators/transformers"
)

const delta = 1e-5

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewFromEngine(generators.RandomEngineName, 0, nil)
	require.NoError(t, err)
	return g
}

func TestExceptions(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "bytes negative count", call: func() error { _, err := g.Bytes(-1); return err }},
		{name: "int inverted", call: func() error { _, err := g.Int32(2, 1); return err }},
		{name: "double inverted", call: func() error { _, err := g.Float64(2, 1); return err }},
		{name: "long inverted", call: func() error { _, err := g.Int64(2, 1); return err }},
		{name: "float inverted", call: func() error { _, err := g.Float32(2, 1); return err }},
		{name: "int negative", call: func() error { _, err := g.Int32(-1, 1); return err }},
		{name: "double negative", call: func() error { _, err := g.Float64(-1, 1); return err }},
		{name: "long negative", call: func() error { _, err := g.Int64(-1, 1); return err }},
		{name: "float negative", call: func() error { _, err := g.Float32(-1, 1); return err }},
		{name: "int negative max", call: func() error { _, err := g.Int32(0, -1); return err }},
		{name: "double nan", call: func() error { _, err := g.Float64(0, math.NaN()); return err }},
		{name: "double infinite", call: func() error { _, err := g.Float64(0, math.Inf(1)); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), ErrInvalidArgument)
		})
	}
}

func TestZeroLengthBytes(t *testing.T) {
	res, err := newTestGenerator(t).Bytes(0)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestBytes(t *testing.T) {
	g := newTestGenerator(t)
	for _, n := range []int{1, 7, 8, 9, 20, 1024} {
		res, err := g.Bytes(n)
		require.NoError(t, err)
		require.Len(t, res, n)
	}
}

func TestBytes_SameSeed(t *testing.T) {
	a, err := newTestGenerator(t).Bytes(20)
	require.NoError(t, err)
	b, err := newTestGenerator(t).Bytes(20)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestInt32MinimalRange(t *testing.T) {
	res, err := newTestGenerator(t).Int32(42, 42)
	require.NoError(t, err)
	require.Equal(t, int32(42), res)
}

func TestInt32(t *testing.T) {
	g := newTestGenerator(t)
	seen := make(map[int32]struct{})
	for i := 0; i < 1000; i++ {
		res, err := g.Int32(33, 42)
		require.NoError(t, err)
		require.True(t, res >= 33 && res < 42)
		seen[res] = struct{}{}
	}
	require.Len(t, seen, 9, "every value of the range must be reachable")
}

func TestInt64MinimalRange(t *testing.T) {
	res, err := newTestGenerator(t).Int64(42, 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), res)
}

func TestInt64(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 1000; i++ {
		res, err := g.Int64(33, 42)
		require.NoError(t, err)
		require.True(t, res >= 33 && res < 42)
	}
}

func TestFloat64MinimalRange(t *testing.T) {
	res, err := newTestGenerator(t).Float64(42.1, 42.1)
	require.NoError(t, err)
	require.InDelta(t, 42.1, res, delta)
}

func TestFloat32MinimalRange(t *testing.T) {
	res, err := newTestGenerator(t).Float32(42.1, 42.1)
	require.NoError(t, err)
	require.InDelta(t, float32(42.1), res, delta)
}

func TestFloat64(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 1000; i++ {
		res, err := g.Float64(33, 42)
		require.NoError(t, err)
		require.True(t, res >= 33 && res <= 42)
	}
}

func TestFloat32(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 1000; i++ {
		res, err := g.Float32(33, 42)
		require.NoError(t, err)
		require.True(t, res >= 33 && res <= 42)
	}
}

func TestExtremeRange(t *testing.T) {
	g := newTestGenerator(t)

	i, err := g.Int32(0, math.MaxInt32)
	require.NoError(t, err)
	require.True(t, i >= 0 && i < math.MaxInt32)

	l, err := g.Int64(0, math.MaxInt64)
	require.NoError(t, err)
	require.True(t, l >= 0 && l < math.MaxInt64)

	f, err := g.Float32(0, math.MaxFloat32)
	require.NoError(t, err)
	require.True(t, f >= 0 && f <= math.MaxFloat32)

	d, err := g.Float64(0, math.MaxFloat64)
	require.NoError(t, err)
	require.True(t, d >= 0 && d <= math.MaxFloat64)
}

func TestNoArgumentForms(t *testing.T) {
	g := newTestGenerator(t)

	i, err := g.Int()
	require.NoError(t, err)
	require.True(t, i >= 0 && i < math.MaxInt32)

	l, err := g.Long()
	require.NoError(t, err)
	require.True(t, l >= 0 && l < math.MaxInt64)

	f, err := g.Float()
	require.NoError(t, err)
	require.False(t, math.IsInf(float64(f), 0))

	d, err := g.Double()
	require.NoError(t, err)
	require.False(t, math.IsInf(d, 0))
}

func TestBool(t *testing.T) {
	g := newTestGenerator(t)
	var trueCount int
	for i := 0; i < 1000; i++ {
		v, err := g.Bool()
		require.NoError(t, err)
		if v {
			trueCount++
		}
	}
	require.Greater(t, trueCount, 0)
	require.Less(t, trueCount, 1000)
}

type shortGenerator struct{}

func (shortGenerator) Generate([]byte) ([]byte, error) {
	return []byte{1, 2, 3, 4}, nil
}

func (shortGenerator) Size() int {
	return 4
}

type failingGenerator struct{}

func (failingGenerator) Generate([]byte) ([]byte, error) {
	return nil, errors.New("source is closed")
}

func (failingGenerator) Size() int {
	return 8
}

func TestNew_ShortGenerator(t *testing.T) {
	_, err := New(shortGenerator{})
	require.ErrorContains(t, err, "at least 8 bytes")
}

func TestGenerator_SourceError(t *testing.T) {
	g, err := New(failingGenerator{})
	require.NoError(t, err)

	_, err = g.Int64(0, 10)
	require.ErrorContains(t, err, "source is closed")
	require.NotErrorIs(t, err, ErrInvalidArgument)

	_, err = g.Bytes(3)
	require.ErrorContains(t, err, "source is closed")

	// Degenerate ranges never touch the source
	v, err := g.Int64(5, 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), v)
}

func TestNewFromEngine_Unknown(t *testing.T) {
	_, err := NewFromEngine("unknown", 0, nil)
	require.Error(t, err)
}

func TestGenerator_Concurrent(t *testing.T) {
	g, err := NewFromEngine(generators.Sha3256, 0, []byte("salt"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v, err := g.Int64(10, 20)
				if err != nil {
					errs <- err
					return
				}
				if v < 10 || v >= 20 {
					errs <- errors.New("value out of range")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	b, err := Bytes(20)
	require.NoError(t, err)
	require.Len(t, b, 20)

	i, err := Int32(33, 42)
	require.NoError(t, err)
	require.True(t, i >= 33 && i < 42)

	l, err := Int64(42, 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), l)

	f, err := Float32(33, 42)
	require.NoError(t, err)
	require.True(t, f >= 33 && f <= 42)

	d, err := Float64(33, 42)
	require.NoError(t, err)
	require.True(t, d >= 33 && d <= 42)

	_, err = Bool()
	require.NoError(t, err)
	_, err = Int()
	require.NoError(t, err)
	_, err = Long()
	require.NoError(t, err)
	_, err = Float()
	require.NoError(t, err)
	_, err = Double()
	require.NoError(t, err)

	_, err = Float64(2, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLimiterConstructors(t *testing.T) {
	_, err := NewInt64Limiter(2, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, err, transformers.ErrWrongLimits)

	l, err := NewInt64Limiter(0, math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), l.MaxValue)

	_, err = NewFloat64Limiter(0, math.NaN())
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewFloat32Limiter(-1, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewFloat32Limiter(0, 1)
	require.NoError(t, err)
}
