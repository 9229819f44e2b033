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

// Package random generates bounded random values. Integer ranges are half-open [min, max) except the
// degenerate range min == max which yields min. Floating point ranges are closed [min, max]. Negative bounds
// and inverted ranges are rejected with ErrInvalidArgument.
package random

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/greenmaskio/randkit/pkg/generators"
	"github.com/greenmaskio/randkit/pkg/generators/transformers"
)

const minGeneratorSize = 8

var ErrInvalidArgument = errors.New("invalid argument")

// Generator - bounded value generator over a uniform byte source. It is safe for concurrent use.
type Generator struct {
	mx sync.Mutex
	g  generators.Generator
}

func New(g generators.Generator) (*Generator, error) {
	if g.Size() < minGeneratorSize {
		return nil, fmt.Errorf(
			"generator must produce at least %d bytes per call, got %d", minGeneratorSize, g.Size(),
		)
	}
	return &Generator{g: g}, nil
}

// NewFromEngine - builds a generator on top of a named engine
func NewFromEngine(engine string, seed int64, salt []byte) (*Generator, error) {
	g, err := generators.NewEngine(engine, seed, salt)
	if err != nil {
		return nil, err
	}
	return New(g)
}

// Bytes - returns count random bytes. Zero count returns an empty slice.
func (r *Generator) Bytes(count int) ([]byte, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: byte count must be non-negative, got %d", ErrInvalidArgument, count)
	}
	res := make([]byte, 0, count)

	r.mx.Lock()
	defer r.mx.Unlock()
	for len(res) < count {
		chunk, err := r.g.Generate(nil)
		if err != nil {
			return nil, fmt.Errorf("error generating random bytes: %w", err)
		}
		res = append(res, chunk[:min(len(chunk), count-len(res))]...)
	}
	return res, nil
}

// Int32 - returns v such that minValue <= v < maxValue, or minValue when both are equal
func (r *Generator) Int32(minValue, maxValue int32) (int32, error) {
	res, err := r.Int64(int64(minValue), int64(maxValue))
	if err != nil {
		return 0, err
	}
	return int32(res), nil
}

// NewInt64Limiter - transformers.NewInt64Limiter with the error wrapped into ErrInvalidArgument
func NewInt64Limiter(minValue, maxValue int64) (*transformers.Int64Limiter, error) {
	l, err := transformers.NewInt64Limiter(minValue, maxValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return l, nil
}

func NewFloat64Limiter(minValue, maxValue float64) (*transformers.Float64Limiter, error) {
	l, err := transformers.NewFloat64Limiter(minValue, maxValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return l, nil
}

func NewFloat32Limiter(minValue, maxValue float32) (*transformers.Float32Limiter, error) {
	l, err := transformers.NewFloat32Limiter(minValue, maxValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return l, nil
}

// Int64 - returns v such that minValue <= v < maxValue, or minValue when both are equal
func (r *Generator) Int64(minValue, maxValue int64) (int64, error) {
	l, err := NewInt64Limiter(minValue, maxValue)
	if err != nil {
		return 0, err
	}
	return r.LimitInt64(l)
}

// LimitInt64 - draws words until the limiter accepts one
func (r *Generator) LimitInt64(l *transformers.Int64Limiter) (int64, error) {
	if l.Degenerate() {
		return l.MinValue, nil
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	for {
		v, err := r.next()
		if err != nil {
			return 0, err
		}
		if res, ok := l.Limit(v); ok {
			return res, nil
		}
	}
}

// Float32 - returns v such that minValue <= v <= maxValue
func (r *Generator) Float32(minValue, maxValue float32) (float32, error) {
	l, err := NewFloat32Limiter(minValue, maxValue)
	if err != nil {
		return 0, err
	}
	return r.LimitFloat32(l)
}

func (r *Generator) LimitFloat32(l *transformers.Float32Limiter) (float32, error) {
	if l.Degenerate() {
		return l.Limit(0), nil
	}
	v, err := r.lockedNext()
	if err != nil {
		return 0, err
	}
	return l.Limit(v), nil
}

// Float64 - returns v such that minValue <= v <= maxValue
func (r *Generator) Float64(minValue, maxValue float64) (float64, error) {
	l, err := NewFloat64Limiter(minValue, maxValue)
	if err != nil {
		return 0, err
	}
	return r.LimitFloat64(l)
}

func (r *Generator) LimitFloat64(l *transformers.Float64Limiter) (float64, error) {
	if l.Degenerate() {
		return l.Limit(0), nil
	}
	v, err := r.lockedNext()
	if err != nil {
		return 0, err
	}
	return l.Limit(v), nil
}

func (r *Generator) Bool() (bool, error) {
	v, err := r.lockedNext()
	if err != nil {
		return false, err
	}
	return v>>63 == 1, nil
}

// Int - random value in [0, math.MaxInt32)
func (r *Generator) Int() (int32, error) {
	return r.Int32(0, math.MaxInt32)
}

// Long - random value in [0, math.MaxInt64)
func (r *Generator) Long() (int64, error) {
	return r.Int64(0, math.MaxInt64)
}

// Float - random value in [0, math.MaxFloat32]
func (r *Generator) Float() (float32, error) {
	return r.Float32(0, math.MaxFloat32)
}

// Double - random value in [0, math.MaxFloat64]
func (r *Generator) Double() (float64, error) {
	return r.Float64(0, math.MaxFloat64)
}

func (r *Generator) lockedNext() (uint64, error) {
	r.mx.Lock()
	defer r.mx.Unlock()
	return r.next()
}

func (r *Generator) next() (uint64, error) {
	res, err := r.g.Generate(nil)
	if err != nil {
		return 0, fmt.Errorf("error generating random value: %w", err)
	}
	return generators.BuildUint64FromBytes(res[:minGeneratorSize]), nil
}
