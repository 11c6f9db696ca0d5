// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/dsnet/golib/bits"
)

// Decoder maps a Huffman-coded bit sequence back to the original symbol
// sequence by walking the code tree. The tree may be supplied directly, or
// rebuilt from a frequency table; construction is deterministic, so both
// routes yield the identical code.
type Decoder struct {
	tree Tree
}

// Init rebuilds the code tree from the given frequency table.
func (d *Decoder) Init(ft *FreqTable) {
	d.tree = *BuildTree(ft)
}

// InitTree initializes the Decoder with a retained tree.
func (d *Decoder) InitTree(t *Tree) {
	d.tree = *t
}

// DecodeSym consumes bits until a codeword is complete and returns the
// corresponding symbol. A walk starts at the root and follows the left
// child on a 0 bit and the right child on a 1 bit until it lands on a leaf.
//
// If the stream is exhausted before the first bit of a codeword, DecodeSym
// returns io.EOF: the previous codeword ended exactly at the stream
// boundary. If the stream is exhausted mid-codeword, it returns ErrCorrupt;
// a truncated stream is never silently accepted.
//
// When the code holds a single symbol, the root is itself a leaf: each
// consumed bit emits that symbol regardless of the bit's value.
func (d *Decoder) DecodeSym(br bits.BitsReader) (byte, error) {
	n := d.tree.root
	if n == nil {
		return 0, io.EOF
	}
	first := true
	for !n.leaf {
		bit, err := br.ReadBit()
		if err != nil {
			if err == io.EOF && !first {
				err = ErrCorrupt
			}
			return 0, err
		}
		first = false
		if bit {
			n = n.right
		} else {
			n = n.left
		}
	}
	if first {
		// Lone-symbol code: the walk consumed nothing, but every symbol
		// still occupies one bit on the wire.
		if _, err := br.ReadBit(); err != nil {
			return 0, err
		}
	}
	return n.sym, nil
}

// Decode consumes bits until the stream is exhausted and returns the
// decoded symbol sequence. It fails with ErrCorrupt, returning no output,
// if the stream ends in the middle of a codeword.
func (d *Decoder) Decode(br bits.BitsReader) ([]byte, error) {
	var data []byte
	for {
		sym, err := d.DecodeSym(br)
		if err == io.EOF {
			return data, nil
		}
		if err != nil {
			return nil, err
		}
		data = append(data, sym)
	}
}

// DecodeSym consumes bits until the accumulated bit sequence matches a
// codeword and returns the corresponding symbol. This is the tree-free
// decode form; prefix-freedom guarantees the first match is the only one.
// The end-of-stream semantics match Decoder.DecodeSym.
func (rt ReverseTable) DecodeSym(br bits.BitsReader) (byte, error) {
	var c Code
	for {
		bit, err := br.ReadBit()
		if err != nil {
			if err == io.EOF && c.Len > 0 {
				err = ErrCorrupt
			}
			return 0, err
		}
		if bit {
			c.Val |= 1 << c.Len
		}
		c.Len++
		if sym, ok := rt[c]; ok {
			return sym, nil
		}
		if len(rt) == 1 && c.Len == 1 {
			// Lone-symbol code: either bit value decodes to the symbol.
			for _, sym := range rt {
				return sym, nil
			}
		}
		if c.Len >= maxCodeBits {
			return 0, ErrCorrupt
		}
	}
}
