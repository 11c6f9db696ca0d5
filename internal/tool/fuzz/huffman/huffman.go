// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package huffman

import (
	"bytes"
	"io"

	"github.com/dsnet/huffman"
)

func Fuzz(data []byte) int {
	ok := testDecoder(data)
	testRoundTrip(data)
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testDecoder tests that the decoder never panics on arbitrary input and
// that any error it reports is one of the declared failure modes.
func testDecoder(data []byte) bool {
	r := huffman.NewReader(bytes.NewReader(data))
	_, err := io.ReadAll(r)
	switch err {
	case nil:
		return true
	case huffman.ErrCorrupt, io.ErrUnexpectedEOF:
		return false
	default:
		panic(err)
	}
}

// testRoundTrip encodes the input and checks that decoding the output
// recovers the input exactly.
func testRoundTrip(data []byte) {
	bb := new(bytes.Buffer)
	w := huffman.NewWriter(bb)
	n, err := w.Write(data)
	if n != len(data) || err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}

	r := huffman.NewReader(bb)
	b, err := io.ReadAll(r)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching bytes")
	}
}
