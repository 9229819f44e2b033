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
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/randkit/pkg/generators"
)

var (
	defaultGenerator *Generator
	defaultOnce      sync.Once
)

// NewSeed - reads a seed from crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Default - shared generator used by the package level functions. It is a math/rand stream seeded once
// from crypto/rand.
func Default() *Generator {
	defaultOnce.Do(func() {
		seed, err := NewSeed()
		if err != nil {
			log.Warn().Err(err).Msg("falling back to time based seed")
			seed = time.Now().UnixNano()
		}
		defaultGenerator = &Generator{
			g: generators.NewRandomBytes(seed, generators.DefaultStreamSize),
		}
	})
	return defaultGenerator
}

func Bytes(count int) ([]byte, error) {
	return Default().Bytes(count)
}

func Int32(minValue, maxValue int32) (int32, error) {
	return Default().Int32(minValue, maxValue)
}

func Int64(minValue, maxValue int64) (int64, error) {
	return Default().Int64(minValue, maxValue)
}

func Float32(minValue, maxValue float32) (float32, error) {
	return Default().Float32(minValue, maxValue)
}

func Float64(minValue, maxValue float64) (float64, error) {
	return Default().Float64(minValue, maxValue)
}

func Bool() (bool, error) {
	return Default().Bool()
}

func Int() (int32, error) {
	return Default().Int()
}

func Long() (int64, error) {
	return Default().Long()
}

func Float() (float32, error) {
	return Default().Float()
}

func Double() (float64, error) {
	return Default().Double()
}
