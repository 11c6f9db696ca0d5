// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/golib/bits"
)

// Encoder maps a symbol sequence to a Huffman-coded bit sequence.
// An Encoder must be initialized from the frequency table of the input it
// will encode; encoding against a foreign table fails with ErrUnknownSymbol.
type Encoder struct {
	codes   CodeTable
	numSyms int
	bitLen  uint64 // Exact payload size in bits for the Init table
}

// Init derives the code table for the given frequency table by building the
// code tree and walking it. Init may be called again to reuse the Encoder.
func (e *Encoder) Init(ft *FreqTable) {
	t := BuildTree(ft)
	e.codes = *t.CodeTable()
	e.numSyms = t.NumSyms()
	e.bitLen = 0
	for sym, c := range &e.codes {
		e.bitLen += uint64(ft[sym]) * uint64(c.Len)
	}
}

// Codes returns the symbol-to-codeword table. The table is read-only;
// callers must not mutate it.
func (e *Encoder) Codes() *CodeTable { return &e.codes }

// BitLen reports the exact number of payload bits that encoding the
// initializing input will produce: the sum over all symbols of
// count times codeword length.
func (e *Encoder) BitLen() uint64 { return e.bitLen }

// EncodeSym writes the codeword for a single symbol.
func (e *Encoder) EncodeSym(bw bits.BitsWriter, sym byte) error {
	c := e.codes[sym]
	if c.Len == 0 {
		return ErrUnknownSymbol
	}
	return writeCode(bw, c)
}

// Encode writes the in-order concatenation of the codewords for every
// symbol in data. It fails with ErrUnknownSymbol, writing nothing further,
// if some symbol has no codeword.
func (e *Encoder) Encode(bw bits.BitsWriter, data []byte) error {
	for _, sym := range data {
		if err := e.EncodeSym(bw, sym); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a programmer-readable dump of the code assignment to the
// given writer. It is intended for diagnostics only.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tNumSyms() = %d\n", e.numSyms)
	fmt.Fprintf(&buf, "\tBitLen()  = %d\n", e.bitLen)
	for sym, c := range &e.codes {
		if c.Len > 0 {
			fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", byte(sym), c)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// writeCode writes the codeword bits in transmission order. Codewords may
// exceed the width of uint on 32-bit targets, so the write is chunked.
func writeCode(bw bits.BitsWriter, c Code) error {
	val, n := c.Val, int(c.Len)
	for n > 0 {
		nb := n
		if nb > 16 {
			nb = 16
		}
		if _, err := bw.WriteBits(uint(val)&(1<<uint(nb)-1), nb); err != nil {
			return err
		}
		val >>= uint(nb)
		n -= nb
	}
	return nil
}
