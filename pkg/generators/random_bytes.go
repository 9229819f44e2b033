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
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand"
)

const DefaultStreamSize = 8

// RandomBytes - deterministic stream backed by math/rand. The same seed always produces the same stream.
type RandomBytes struct {
	r     *mathrand.Rand
	size  int
	iters int
	buf   []byte
}

func NewRandomBytes(seed int64, size int) *RandomBytes {
	iters := size / 8
	if size%8 > 0 {
		iters += 1
	}
	return &RandomBytes{
		r:     mathrand.New(mathrand.NewSource(seed)),
		size:  size,
		iters: iters,
		buf:   make([]byte, 8),
	}
}

func (br *RandomBytes) Generate(_ []byte) ([]byte, error) {
	res := make([]byte, 0, br.iters*8)
	for i := 0; i < br.iters; i++ {
		binary.LittleEndian.PutUint64(br.buf, br.r.Uint64())
		res = append(res, br.buf...)
	}
	return res[:br.size], nil
}

func (br *RandomBytes) Size() int {
	return br.size
}

// CryptoBytes - non-deterministic stream read from the operating system CSPRNG
type CryptoBytes struct {
	r    io.Reader
	size int
}

func NewCryptoBytes(size int) *CryptoBytes {
	return &CryptoBytes{
		r:    rand.Reader,
		size: size,
	}
}

func (cb *CryptoBytes) Generate(_ []byte) ([]byte, error) {
	res := make([]byte, cb.size)
	if _, err := io.ReadFull(cb.r, res); err != nil {
		return nil, fmt.Errorf("unable to read random bytes: %w", err)
	}
	return res, nil
}

func (cb *CryptoBytes) Size() int {
	return cb.size
}
