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
	"fmt"
	"math"
)

const (
	float64MantissaBits = 53
	float32MantissaBits = 24
)

// Float64Limiter - maps uniform 64 bit words into the closed range [minValue, maxValue]
type Float64Limiter struct {
	minValue float64
	maxValue float64
	distance float64
}

func NewFloat64Limiter(minValue, maxValue float64) (*Float64Limiter, error) {
	if err := validateFloatLimits(minValue, maxValue, math.MaxFloat64); err != nil {
		return nil, err
	}
	return &Float64Limiter{
		minValue: minValue,
		maxValue: maxValue,
		distance: maxValue - minValue,
	}, nil
}

func (fl *Float64Limiter) Limit(v uint64) float64 {
	if fl.distance == 0 {
		return fl.minValue
	}
	return scale(v, float64MantissaBits, fl.minValue, fl.maxValue, fl.distance)
}

func (fl *Float64Limiter) Degenerate() bool {
	return fl.distance == 0
}

// Float32Limiter - maps uniform 64 bit words into the closed range [minValue, maxValue] of float32 values.
// The arithmetic is done in float64 so the range width never overflows.
type Float32Limiter struct {
	minValue float32
	maxValue float32
	distance float64
}

func NewFloat32Limiter(minValue, maxValue float32) (*Float32Limiter, error) {
	if err := validateFloatLimits(float64(minValue), float64(maxValue), math.MaxFloat32); err != nil {
		return nil, err
	}
	return &Float32Limiter{
		minValue: minValue,
		maxValue: maxValue,
		distance: float64(maxValue) - float64(minValue),
	}, nil
}

func (fl *Float32Limiter) Limit(v uint64) float32 {
	if fl.distance == 0 {
		return fl.minValue
	}
	return float32(scale(v, float32MantissaBits, float64(fl.minValue), float64(fl.maxValue), fl.distance))
}

func (fl *Float32Limiter) Degenerate() bool {
	return fl.distance == 0
}

// scale - takes the upper mantissaBits of v as a fraction of [0, 1] where both ends are reachable
func scale(v uint64, mantissaBits uint, minValue, maxValue, distance float64) float64 {
	top := float64(uint64(1)<<mantissaBits - 1)
	u := float64(v>>(64-mantissaBits)) / top
	res := minValue + u*distance
	if res > maxValue {
		res = maxValue
	}
	return res
}

func validateFloatLimits(minValue, maxValue, limit float64) error {
	if math.IsNaN(minValue) || math.IsNaN(maxValue) {
		return fmt.Errorf("%w: limits must be numbers: min %v max %v", ErrWrongLimits, minValue, maxValue)
	}
	if minValue > limit || maxValue > limit {
		return fmt.Errorf("%w: limits must be finite: min %v max %v", ErrWrongLimits, minValue, maxValue)
	}
	if minValue < 0 || maxValue < 0 {
		return fmt.Errorf("%w: limits must be non-negative: min %v max %v", ErrWrongLimits, minValue, maxValue)
	}
	if minValue > maxValue {
		return fmt.Errorf("%w: min value %v is greater than max value %v", ErrWrongLimits, minValue, maxValue)
	}
	return nil
}
