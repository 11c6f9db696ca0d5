// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates skewed.bin. This test file has a heavily skewed symbol
// distribution with no positional structure, so it favors entropy coding
// over LZ77 based compression. Symbol i appears roughly twice as often as
// symbol i+1 for the first few symbols, approaching the distribution that
// produces the deepest prefix trees.
package main

import (
	"math/rand"
	"os"
)

const (
	name = "skewed.bin"
	size = 1 << 18
)

func main() {
	r := rand.New(rand.NewSource(0))
	b := make([]byte, size)
	for i := range b {
		// Count trailing zero bits of a random word. P(sym=k) = 2^-(k+1).
		var sym byte
		for v := r.Uint64(); v&1 == 0 && sym < 63; v >>= 1 {
			sym++
		}
		b[i] = sym
	}
	if err := os.WriteFile(name, b, 0664); err != nil {
		panic(err)
	}
}
