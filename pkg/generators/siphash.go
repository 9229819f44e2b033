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
	"hash"

	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/sha3"
)

const (
	MurMurHash32Size  = 4
	MurMurHash64Size  = 8
	MurMurHash128Size = 16
)

// SipHash - siphash-2-4 keyed with the first 16 bytes of sha3-224(salt)
type SipHash struct {
	hash.Hash
	buf []byte
}

func NewSipHash(salt []byte) (Generator, error) {
	kh := sha3.New224()
	if _, err := kh.Write(salt); err != nil {
		return nil, fmt.Errorf("unable to derive siphash key: %w", err)
	}
	key := kh.Sum(nil)[:16]
	return &SipHash{
		Hash: siphash.New(key),
		buf:  make([]byte, 8),
	}, nil
}

func (s *SipHash) Generate(data []byte) ([]byte, error) {
	defer s.Reset()

	if _, err := s.Write(data); err != nil {
		return nil, fmt.Errorf("unable to write data into writer: %w", err)
	}

	s.buf = s.buf[:0]
	return s.Sum(s.buf), nil
}

type MurmurHash struct {
	hash.Hash
	size int
	buf  []byte
}

func NewMurmurHash(seed uint32, size int) (*MurmurHash, error) {
	var h hash.Hash
	switch size {
	case MurMurHash32Size:
		h = murmur3.New32WithSeed(seed)
	case MurMurHash64Size:
		h = murmur3.New64WithSeed(seed)
	case MurMurHash128Size:
		h = murmur3.New128WithSeed(seed)
	default:
		return nil, fmt.Errorf("unknown size for murmur hash %d", size)
	}
	return &MurmurHash{
		Hash: h,
		size: size,
		buf:  make([]byte, size),
	}, nil
}

func (mh *MurmurHash) Size() int {
	return mh.size
}

func (mh *MurmurHash) Generate(data []byte) ([]byte, error) {
	defer mh.Reset()

	if _, err := mh.Write(data); err != nil {
		return nil, fmt.Errorf("unable to write data into writer: %w", err)
	}

	mh.buf = mh.buf[:0]
	return mh.Sum(mh.buf), nil
}
