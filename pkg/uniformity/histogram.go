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

// Package uniformity checks that sampled values are spread evenly over their range using Pearson's
// chi-square goodness of fit test.
package uniformity

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfRange   = errors.New("value is out of histogram range")
	ErrWrongBuckets = errors.New("wrong bucket count")
)

// Histogram - equal width buckets over [minValue, maxValue]. The value maxValue itself lands into the last
// bucket. For integer samples from [min, max) the width max - min must be divisible by the bucket count.
type Histogram struct {
	minValue float64
	maxValue float64
	width    float64
	counts   []uint64
	total    uint64
}

func NewHistogram(minValue, maxValue float64, buckets int) (*Histogram, error) {
	if buckets < 2 {
		return nil, fmt.Errorf("%w: at least 2 buckets required, got %d", ErrWrongBuckets, buckets)
	}
	if !(minValue < maxValue) || math.IsInf(maxValue-minValue, 0) {
		return nil, fmt.Errorf("wrong histogram range [%v, %v]", minValue, maxValue)
	}
	return &Histogram{
		minValue: minValue,
		maxValue: maxValue,
		width:    maxValue - minValue,
		counts:   make([]uint64, buckets),
	}, nil
}

func (h *Histogram) Add(v float64) error {
	if v < h.minValue || v > h.maxValue || math.IsNaN(v) {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, h.minValue, h.maxValue)
	}
	idx := int((v - h.minValue) / h.width * float64(len(h.counts)))
	if idx >= len(h.counts) {
		idx = len(h.counts) - 1
	}
	h.counts[idx]++
	h.total++
	return nil
}

// Merge - adds the counts of other into h. Both histograms must have the same layout.
func (h *Histogram) Merge(other *Histogram) error {
	if len(h.counts) != len(other.counts) || h.minValue != other.minValue || h.maxValue != other.maxValue {
		return errors.New("cannot merge histograms with different layout")
	}
	for i, c := range other.counts {
		h.counts[i] += c
	}
	h.total += other.total
	return nil
}

// Clone - empty histogram with the same layout
func (h *Histogram) Clone() *Histogram {
	return &Histogram{
		minValue: h.minValue,
		maxValue: h.maxValue,
		width:    h.width,
		counts:   make([]uint64, len(h.counts)),
	}
}

func (h *Histogram) Counts() []uint64 {
	res := make([]uint64, len(h.counts))
	copy(res, h.counts)
	return res
}

func (h *Histogram) Total() uint64 {
	return h.total
}

// Bounds - the lower and upper edge of the bucket
func (h *Histogram) Bounds(idx int) (float64, float64) {
	step := h.width / float64(len(h.counts))
	lower := h.minValue + step*float64(idx)
	upper := h.minValue + step*float64(idx+1)
	if idx == len(h.counts)-1 {
		upper = h.maxValue
	}
	return lower, upper
}

func (h *Histogram) Expected() float64 {
	return float64(h.total) / float64(len(h.counts))
}

func (h *Histogram) DegreesOfFreedom() int {
	return len(h.counts) - 1
}

// ChiSquare - Pearson's statistic against the uniform distribution
func (h *Histogram) ChiSquare() float64 {
	if h.total == 0 {
		return 0
	}
	expected := h.Expected()
	var res float64
	for _, c := range h.counts {
		d := float64(c) - expected
		res += d * d / expected
	}
	return res
}

// Uniform - the hypothesis of uniformity is not rejected at significance level alpha
func (h *Histogram) Uniform(alpha float64) bool {
	return h.ChiSquare() <= CriticalValue(h.DegreesOfFreedom(), alpha)
}

// CriticalValue - upper alpha quantile of the chi-square distribution with df degrees of freedom using the
// Wilson-Hilferty approximation.
func CriticalValue(df int, alpha float64) float64 {
	k := float64(df)
	z := math.Sqrt2 * math.Erfinv(1-2*alpha)
	a := 2 / (9 * k)
	v := 1 - a + z*math.Sqrt(a)
	return k * v * v * v
}
