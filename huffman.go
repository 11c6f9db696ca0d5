// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a static Huffman codec with a self-describing
// stream format.
//
// The codec performs classic two-pass Huffman coding: one pass over the input
// computes a symbol frequency table, from which an optimal prefix-free binary
// code is derived; a second pass maps every input byte to its codeword. The
// frequency table is serialized ahead of the payload so that the decoder can
// rebuild the identical code without any side-channel.
//
// The stream format is as follows (all integers little-endian, all bit
// sequences packed starting from the least-significant bit of each byte):
//
//	magic    "HF"                       2 bytes
//	numSyms  uint16                     number of distinct symbols, 0..256
//	entries  numSyms * {sym, count}     sym is 1 byte, count is uint32;
//	         entries are sorted by strictly ascending sym and every
//	         count is at least 1
//	bitLen   uint64                     exact number of valid payload bits
//	payload  ceil(bitLen/8) bytes       concatenated codewords; the unused
//	         bits of the final byte are zero
//
// Tree construction is deterministic: ties between equal weights are broken
// by node creation order, so any two parties that agree on the frequency
// table agree on every codeword. The explicit bitLen allows the decoder to
// distinguish real payload bits from byte-alignment padding, and lets it
// reject streams whose payload was truncated in transit.
package huffman

// maxSymbols is the alphabet size; symbols are bytes.
const maxSymbols = 256

// maxCodeBits bounds the length of any codeword. A codeword of length n
// requires a total symbol weight of at least Fibonacci(n+1); with counts
// capped at MaxUint32 and at most 256 symbols, the total weight stays below
// 2^40 and no codeword can come close to this bound.
const maxCodeBits = 64

const hdrMagic = "HF"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrCorrupt reports a stream that is truncated or corrupted in a way
	// the decoder can structurally observe, such as a payload that ends in
	// the middle of a codeword.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrUnknownSymbol reports an attempt to encode a symbol that has no
	// codeword. This indicates caller misuse: the code table was not
	// derived from a frequency table covering the input.
	ErrUnknownSymbol error = Error("symbol not in code table")

	errClosed error = Error("stream is closed")
)

// Divide n by m and round up to the nearest multiple of m.
func divCeil(n, m int) int {
	return (n + m - 1) / m
}

// Number of bits needed to pad n-bits to a byte alignment.
func numPads(n int) int {
	return divCeil(n, 8)*8 - n
}
