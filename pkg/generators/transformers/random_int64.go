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
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrWrongLimits = errors.New("wrong limits")
)

// Int64Limiter - maps uniform 64 bit words into the half-open range [MinValue, MaxValue). When both limits
// are equal the range degenerates to the single value MinValue.
type Int64Limiter struct {
	MinValue  int64
	MaxValue  int64
	distance  uint64
	threshold uint64
}

func NewInt64Limiter(minValue, maxValue int64) (*Int64Limiter, error) {
	if minValue < 0 || maxValue < 0 {
		return nil, fmt.Errorf("%w: limits must be non-negative: min %d max %d", ErrWrongLimits, minValue, maxValue)
	}
	if minValue > maxValue {
		return nil, fmt.Errorf("%w: min value %d is greater than max value %d", ErrWrongLimits, minValue, maxValue)
	}

	distance := uint64(maxValue - minValue)
	var threshold uint64
	if distance > 0 {
		// 2^64 mod distance
		threshold = -distance % distance
	}

	return &Int64Limiter{
		MinValue:  minValue,
		MaxValue:  maxValue,
		distance:  distance,
		threshold: threshold,
	}, nil
}

// Limit - multiply-shift reduction of v into the range. The second value is false when v falls into the
// biased part of the word space and must be replaced by a fresh one.
func (l *Int64Limiter) Limit(v uint64) (int64, bool) {
	if l.distance == 0 {
		return l.MinValue, true
	}
	hi, lo := bits.Mul64(v, l.distance)
	if lo < l.threshold {
		return 0, false
	}
	return l.MinValue + int64(hi), true
}

// Degenerate - the range contains exactly one value
func (l *Int64Limiter) Degenerate() bool {
	return l.distance == 0
}
