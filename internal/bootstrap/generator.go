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
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/randkit/internal/domains"
	"github.com/greenmaskio/randkit/pkg/generators"
	"github.com/greenmaskio/randkit/pkg/random"
)

// NewGenerator - builds a generator from the config. Workers get independent streams: the worker index is
// added to the seed and appended to the salt of deterministic engines.
func NewGenerator(cfg *domains.GeneratorConfig, worker int) (*random.Generator, error) {
	def, ok := generators.GetEngineDefinition(cfg.Engine)
	if !ok {
		return nil, fmt.Errorf("unknown engine \"%s\"", cfg.Engine)
	}

	seed := cfg.Seed
	if def.UsesSeed && seed == 0 {
		var err error
		seed, err = random.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("cannot generate seed: %w", err)
		}
		log.Debug().
			Str("Engine", def.Name).
			Int64("Seed", seed).
			Msg("seed is not set: using random seed")
	}
	seed += int64(worker)

	salt := []byte(cfg.Salt)
	if def.UsesSalt && worker > 0 {
		salt = fmt.Appendf(append([]byte{}, salt...), "/%d", worker)
	}

	engine, err := generators.NewEngineWithSize(def.Name, seed, salt, cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("cannot create engine: %w", err)
	}
	g, err := random.New(engine)
	if err != nil {
		return nil, fmt.Errorf("cannot create generator: %w", err)
	}
	return g, nil
}
