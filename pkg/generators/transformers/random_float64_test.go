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

package transformers

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFloat64Limiter_WrongLimits(t *testing.T) {
	tests := []struct {
		name     string
		minValue float64
		maxValue float64
	}{
		{name: "min greater than max", minValue: 2, maxValue: 1},
		{name: "negative min", minValue: -1, maxValue: 1},
		{name: "negative max", minValue: 0, maxValue: -0.5},
		{name: "nan", minValue: 0, maxValue: math.NaN()},
		{name: "infinite max", minValue: 0, maxValue: math.Inf(1)},
		{name: "negative infinite min", minValue: math.Inf(-1), maxValue: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFloat64Limiter(tt.minValue, tt.maxValue)
			require.ErrorIs(t, err, ErrWrongLimits)
			_, err = NewFloat32Limiter(float32(tt.minValue), float32(tt.maxValue))
			require.ErrorIs(t, err, ErrWrongLimits)
		})
	}
}

func TestFloat64Limiter_Limit(t *testing.T) {
	l, err := NewFloat64Limiter(33, 42)
	require.NoError(t, err)

	require.Equal(t, float64(33), l.Limit(0))
	// Upper bound is inclusive
	require.Equal(t, float64(42), l.Limit(math.MaxUint64))

	r := rand.New(rand.NewSource(0))
	for i := 0; i < 10000; i++ {
		res := l.Limit(r.Uint64())
		require.True(t, res >= 33 && res <= 42)
	}
}

func TestFloat64Limiter_Degenerate(t *testing.T) {
	l, err := NewFloat64Limiter(42.1, 42.1)
	require.NoError(t, err)
	require.True(t, l.Degenerate())
	require.Equal(t, 42.1, l.Limit(math.MaxUint64))
}

func TestFloat64Limiter_ExtremeRange(t *testing.T) {
	l, err := NewFloat64Limiter(0, math.MaxFloat64)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, l.Limit(math.MaxUint64))
	require.Equal(t, float64(0), l.Limit(0))
	res := l.Limit(math.MaxUint64 / 2)
	require.False(t, math.IsInf(res, 0))
	require.True(t, res >= 0 && res <= math.MaxFloat64)
}

func TestFloat32Limiter_Limit(t *testing.T) {
	l, err := NewFloat32Limiter(33, 42)
	require.NoError(t, err)
	require.Equal(t, float32(33), l.Limit(0))
	require.Equal(t, float32(42), l.Limit(math.MaxUint64))

	degenerate, err := NewFloat32Limiter(42.1, 42.1)
	require.NoError(t, err)
	require.Equal(t, float32(42.1), degenerate.Limit(12345))

	extreme, err := NewFloat32Limiter(0, math.MaxFloat32)
	require.NoError(t, err)
	require.Equal(t, float32(math.MaxFloat32), extreme.Limit(math.MaxUint64))
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		res := extreme.Limit(r.Uint64())
		require.False(t, math.IsInf(float64(res), 0))
		require.True(t, res >= 0 && res <= math.MaxFloat32)
	}
}
