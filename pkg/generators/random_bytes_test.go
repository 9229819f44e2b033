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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesRandom_Generate(t *testing.T) {
	r := NewRandomBytes(0, 3)
	res, err := r.Generate(nil)
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, []byte{1, 148, 253}, res)
}

func TestBytesRandom_SameSeed(t *testing.T) {
	a := NewRandomBytes(42, 12)
	b := NewRandomBytes(42, 12)
	for i := 0; i < 10; i++ {
		resA, err := a.Generate(nil)
		require.NoError(t, err)
		resB, err := b.Generate(nil)
		require.NoError(t, err)
		require.Equal(t, resA, resB)
		require.Len(t, resA, 12)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestCryptoBytes_Generate(t *testing.T) {
	cb := NewCryptoBytes(16)
	require.Equal(t, 16, cb.Size())
	first, err := cb.Generate(nil)
	require.NoError(t, err)
	require.Len(t, first, 16)
	second, err := cb.Generate(nil)
	require.NoError(t, err)
	require.False(t, bytes.Equal(first, second))

	cb.r = failingReader{}
	_, err = cb.Generate(nil)
	require.ErrorContains(t, err, "entropy exhausted")
}

func TestBuildUint64FromBytes(t *testing.T) {
	value := uint64(123)
	intBytes := BuildBytesFromUint64(value)[:3]
	require.Equal(t, value, BuildUint64FromBytes(intBytes))
	require.Equal(t, uint64(0x0807060504030201), BuildUint64FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
}
