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

package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/greenmaskio/randkit/pkg/random"
)

// Int64Bounds - casts range bounds of the int and long types. Strings are parsed in base 10, floats must be
// integral and int bounds must fit into int32. Missing bounds are rejected.
func Int64Bounds(valueType string, minValue, maxValue any) (int64, int64, error) {
	lower, err := toInt64(minValue)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot cast min value %v to %s: %w", minValue, valueType, err)
	}
	upper, err := toInt64(maxValue)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot cast max value %v to %s: %w", maxValue, valueType, err)
	}
	if valueType == TypeInt {
		if lower > math.MaxInt32 || upper > math.MaxInt32 || lower < math.MinInt32 || upper < math.MinInt32 {
			return 0, 0, fmt.Errorf(
				"%w: int limits [%d, %d] exceed int32", random.ErrInvalidArgument, lower, upper,
			)
		}
	}
	return lower, upper, nil
}

// Float64Bounds - casts range bounds of the float and double types. Missing bounds are rejected.
func Float64Bounds(valueType string, minValue, maxValue any) (float64, float64, error) {
	lower, err := toFloat64(minValue)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot cast min value %v to %s: %w", minValue, valueType, err)
	}
	upper, err := toFloat64(maxValue)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot cast max value %v to %s: %w", maxValue, valueType, err)
	}
	return lower, upper, nil
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: value is not set", random.ErrInvalidArgument)
	case bool:
		return 0, fmt.Errorf("%w: boolean is not a number", random.ErrInvalidArgument)
	case string:
		s := strings.TrimSpace(x)
		if res, err := strconv.ParseInt(s, 10, 64); err == nil {
			return res, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: \"%s\" is not a number", random.ErrInvalidArgument, x)
		}
		return integralInt64(f)
	case float32:
		return integralInt64(float64(x))
	case float64:
		return integralInt64(x)
	}
	res, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", random.ErrInvalidArgument, err)
	}
	return res, nil
}

func integralInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", random.ErrInvalidArgument, f)
	}
	// float64(math.MaxInt64) rounds up to 2^63
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v overflows int64", random.ErrInvalidArgument, f)
	}
	return int64(f), nil
}

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: value is not set", random.ErrInvalidArgument)
	case bool:
		return 0, fmt.Errorf("%w: boolean is not a number", random.ErrInvalidArgument)
	case string:
		res, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: \"%s\" is not a number", random.ErrInvalidArgument, x)
		}
		return res, nil
	}
	res, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", random.ErrInvalidArgument, err)
	}
	return res, nil
}
