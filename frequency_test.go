// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestComputeFreqs(t *testing.T) {
	ft := ComputeFreqs(nil)
	assert.Equal(t, 0, ft.NumSymbols())
	assert.Equal(t, uint64(0), ft.Total())

	ft = ComputeFreqs([]byte("abracadabra"))
	assert.Equal(t, 5, ft.NumSymbols())
	assert.Equal(t, uint64(11), ft.Total())
	assert.Equal(t, uint32(5), ft['a'])
	assert.Equal(t, uint32(2), ft['b'])
	assert.Equal(t, uint32(1), ft['c'])
	assert.Equal(t, uint32(1), ft['d'])
	assert.Equal(t, uint32(2), ft['r'])
	assert.Equal(t, uint32(0), ft['z'])

	// Every byte value must be countable.
	full := make([]byte, 256)
	for i := range full {
		full[i] = byte(i)
	}
	ft = ComputeFreqs(full)
	assert.Equal(t, 256, ft.NumSymbols())
	assert.Equal(t, uint64(256), ft.Total())

	// The sum of counts always equals the input length.
	data := testutil.NewRand(0).Bytes(4096)
	ft = ComputeFreqs(data)
	assert.Equal(t, uint64(len(data)), ft.Total())
}
