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
	"encoding/binary"
	"fmt"
)

// Sequence - turns a hash generator into a stream by hashing an incrementing little endian counter.
// The input of Generate is ignored.
type Sequence struct {
	g       Generator
	counter uint64
	buf     []byte
}

func NewSequence(g Generator) *Sequence {
	return &Sequence{
		g:   g,
		buf: make([]byte, 8),
	}
}

func (s *Sequence) Generate(_ []byte) ([]byte, error) {
	binary.LittleEndian.PutUint64(s.buf, s.counter)
	res, err := s.g.Generate(s.buf)
	if err != nil {
		return nil, fmt.Errorf("error generating data for counter %d: %w", s.counter, err)
	}
	s.counter++
	return res, nil
}

func (s *Sequence) Size() int {
	return s.g.Size()
}
