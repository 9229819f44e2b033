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

package uniformity

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const cancelCheckInterval = 1024

// SampleFunc - produces the next sample
type SampleFunc func() (float64, error)

// SamplerFactory - builds an independent sampler for the worker with the provided index
type SamplerFactory func(worker int) (SampleFunc, error)

// Sample - draws samples values spread over workers goroutines into h. Every worker fills its own histogram
// which is merged into h when the worker is done.
func Sample(ctx context.Context, h *Histogram, workers, samples int, factory SamplerFactory) error {
	if workers < 1 {
		workers = 1
	}
	var mx sync.Mutex
	eg, gtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		quota := samples / workers
		if w < samples%workers {
			quota++
		}

		eg.Go(func() error {
			fn, err := factory(w)
			if err != nil {
				return fmt.Errorf("cannot create sampler for worker %d: %w", w, err)
			}
			local := h.Clone()
			for i := 0; i < quota; i++ {
				if i%cancelCheckInterval == 0 {
					select {
					case <-gtx.Done():
						return gtx.Err()
					default:
					}
				}
				v, err := fn()
				if err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
				if err = local.Add(v); err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
			}

			mx.Lock()
			defer mx.Unlock()
			log.Debug().
				Int("Worker", w).
				Uint64("Samples", local.Total()).
				Msg("sampling is done")
			return h.Merge(local)
		})
	}
	return eg.Wait()
}
