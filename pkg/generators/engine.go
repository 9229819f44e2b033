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

package generators

import (
	"fmt"
	"slices"
	"strings"
)

const (
	RandomEngineName  = "random"
	CryptoEngineName  = "crypto"
	SipHashEngineName = "siphash"
	MurmurEngineName  = "murmur"
)

type EngineDefinition struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Deterministic bool   `json:"deterministic"`
	// UsesSeed - the engine output depends on the numeric seed
	UsesSeed bool `json:"uses_seed"`
	// UsesSalt - the engine output depends on the salt
	UsesSalt bool `json:"uses_salt"`
}

var engines = []*EngineDefinition{
	{
		Name:          RandomEngineName,
		Description:   "math/rand pseudo random stream. The same seed always produces the same values.",
		Deterministic: true,
		UsesSeed:      true,
	},
	{
		Name:        CryptoEngineName,
		Description: "cryptographically secure random stream read from the operating system.",
	},
	{
		Name:          Sha1Name,
		Description:   "salted sha1 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha256Name,
		Description:   "salted sha256 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha512Name,
		Description:   "salted sha512 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha3224,
		Description:   "salted sha3-224 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha3256,
		Description:   "salted sha3-256 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha3384,
		Description:   "salted sha3-384 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          Sha3512,
		Description:   "salted sha3-512 over an incrementing counter.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name: SipHashEngineName,
		Description: "siphash-2-4 over an incrementing counter. The 128 bit key is derived from the salt " +
			"using sha3-224.",
		Deterministic: true,
		UsesSalt:      true,
	},
	{
		Name:          MurmurEngineName,
		Description:   "murmur3 128 bit hash over an incrementing counter. The lower 32 bits of the seed are used.",
		Deterministic: true,
		UsesSeed:      true,
	},
}

// Engines - list of the known engines sorted by name
func Engines() []*EngineDefinition {
	res := slices.Clone(engines)
	slices.SortFunc(res, func(a, b *EngineDefinition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res
}

func GetEngineDefinition(name string) (*EngineDefinition, bool) {
	idx := slices.IndexFunc(engines, func(e *EngineDefinition) bool {
		return e.Name == name
	})
	if idx == -1 {
		return nil, false
	}
	return engines[idx], true
}

// NewEngine - build a stream generator by engine name. Every engine produces at least 8 bytes per call.
func NewEngine(name string, seed int64, salt []byte) (Generator, error) {
	return NewEngineWithSize(name, seed, salt, 0)
}

// NewEngineWithSize - like NewEngine but the engine produces size bytes per call. Hash outputs are truncated
// to size, murmur computes the 32, 64 or 128 bit variant. Zero size keeps the engine default.
func NewEngineWithSize(name string, seed int64, salt []byte, size int) (Generator, error) {
	if size < 0 {
		return nil, fmt.Errorf("engine size must be non-negative, got %d", size)
	}
	switch name {
	case RandomEngineName:
		return NewRandomBytes(seed, sizeOrDefault(size, DefaultStreamSize)), nil
	case CryptoEngineName:
		return NewCryptoBytes(sizeOrDefault(size, DefaultStreamSize)), nil
	case Sha1Name, Sha256Name, Sha512Name, Sha3224, Sha3256, Sha3384, Sha3512:
		g, err := NewHash(salt, name)
		if err != nil {
			return nil, err
		}
		g, err = reduce(g, size)
		if err != nil {
			return nil, err
		}
		return NewSequence(g), nil
	case SipHashEngineName:
		g, err := NewSipHash(salt)
		if err != nil {
			return nil, fmt.Errorf("cannot create siphash backend: %w", err)
		}
		g, err = reduce(g, size)
		if err != nil {
			return nil, err
		}
		return NewSequence(g), nil
	case MurmurEngineName:
		g, err := NewMurmurHash(uint32(seed), sizeOrDefault(size, MurMurHash128Size))
		if err != nil {
			return nil, fmt.Errorf("cannot create murmur backend: %w", err)
		}
		return NewSequence(g), nil
	}
	return nil, fmt.Errorf("unknown engine \"%s\"", name)
}

func sizeOrDefault(size, defaultSize int) int {
	if size == 0 {
		return defaultSize
	}
	return size
}

func reduce(g Generator, size int) (Generator, error) {
	if size == 0 || size == g.Size() {
		return g, nil
	}
	if size > g.Size() {
		return nil, fmt.Errorf("engine size %d exceeds hash size %d", size, g.Size())
	}
	return NewHashReducer(g, size), nil
}
