// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "strconv"

// Code is a single codeword: a sequence of Len bits stored in Val with the
// first transmitted bit in the least-significant position. This matches the
// order in which bits are written to and read from the underlying bit
// stream, so a codeword can be emitted directly without reversal.
type Code struct {
	Val uint64 // The bits of the codeword, LSB first
	Len uint   // Number of valid bits, zero means no codeword
}

// String returns the codeword as a quoted binary string with the first
// transmitted bit on the left.
func (c Code) String() string {
	if c.Len == 0 {
		return `""`
	}
	b := make([]byte, c.Len)
	for i := uint(0); i < c.Len; i++ {
		b[i] = '0' + byte(c.Val>>i&1)
	}
	return strconv.Quote(string(b))
}

// CodeTable maps every symbol to its codeword. A zero Len means the symbol
// has no codeword; every present symbol has Len of at least 1, so Len is an
// unambiguous presence test.
//
// Structural invariant: codewords correspond one-to-one with tree leaves,
// so no codeword is a prefix of any other.
type CodeTable [256]Code

// CodeTable derives the symbol-to-codeword mapping from the tree.
//
// The traversal is depth-first with an explicit stack: a left edge appends
// a 0 bit and a right edge appends a 1 bit, and the accumulated path at each
// leaf becomes that symbol's codeword. The explicit stack keeps maximally
// skewed trees (Fibonacci-like weight distributions) from consuming call
// stack proportional to the alphabet size.
//
// When the tree holds a single symbol, its root is itself a leaf and the
// path would be empty; the symbol is assigned the fixed one-bit codeword "0"
// instead so that decoders account for one bit per symbol uniformly.
func (t *Tree) CodeTable() *CodeTable {
	ct := new(CodeTable)
	if t.root == nil {
		return ct
	}
	if t.root.leaf {
		ct[t.root.sym] = Code{Val: 0, Len: 1}
		return ct
	}

	type frame struct {
		n *node
		c Code
	}
	stack := make([]frame, 0, maxCodeBits)
	stack = append(stack, frame{t.root, Code{}})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.leaf {
			ct[f.n.sym] = f.c
			continue
		}
		stack = append(stack,
			frame{f.n.right, Code{Val: f.c.Val | 1<<f.c.Len, Len: f.c.Len + 1}},
			frame{f.n.left, Code{Val: f.c.Val, Len: f.c.Len + 1}},
		)
	}
	return ct
}

// ReverseTable maps every codeword back to its symbol. It is the inverse
// bijection of a CodeTable and supports decoding without a tree walk.
type ReverseTable map[Code]byte

// Reverse returns the codeword-to-symbol mapping for the table.
func (ct *CodeTable) Reverse() ReverseTable {
	rt := make(ReverseTable, maxSymbols)
	for sym, c := range ct {
		if c.Len > 0 {
			rt[c] = byte(sym)
		}
	}
	return rt
}
