// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"io"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInterfaces(t *testing.T) {
	assert.Implements(t, (*io.WriteCloser)(nil), new(Writer))
	assert.Implements(t, (*io.ByteWriter)(nil), new(Writer))
	assert.Implements(t, (*io.Reader)(nil), new(Reader))
	assert.Implements(t, (*io.ByteReader)(nil), new(Reader))
}

func TestRoundTrip(t *testing.T) {
	rand := testutil.NewRand(0)
	vectors := [][]byte{
		nil,
		[]byte("a"),
		[]byte("aaaaaaaa"),
		[]byte("abracadabra"),
		[]byte("hello, world"),
		[]byte("Mississippi"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte{0x00, 0xff}, 500),
		rand.Bytes(255),
		rand.Bytes(256), // All symbol values likely present
		rand.Bytes(1 << 14),
		testutil.ResizeData([]byte("binary"), 100000),
	}

	for i, input := range vectors {
		var buf bytes.Buffer
		hw := NewWriter(&buf)
		cnt, err := hw.Write(input)
		assert.Nil(t, err)
		assert.Equal(t, len(input), cnt)
		assert.Nil(t, hw.Close())

		hr := NewReader(&buf)
		output, err := io.ReadAll(hr)
		assert.Nil(t, err)
		if !bytes.Equal(input, output) {
			t.Errorf("test %d, round trip mismatch", i)
		}
	}
}

func TestRoundTripReset(t *testing.T) {
	// A single Writer and Reader pair, Reset between streams, must behave
	// identically to freshly allocated ones.
	var buf bytes.Buffer
	hw := NewWriter(nil)
	hr := NewReader(nil)
	rand := testutil.NewRand(1)

	for i := 0; i < 10; i++ {
		input := rand.Bytes(rand.Intn(4096))
		buf.Reset()
		hw.Reset(&buf)
		hw.Write(input)
		assert.Nil(t, hw.Close())

		hr.Reset(&buf)
		output, err := io.ReadAll(hr)
		assert.Nil(t, err)
		assert.Equal(t, input, output)
		assert.Equal(t, hw.WriteCount(), hr.ReadCount())
	}
}
