// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_hf_lib
// +build !no_hf_lib

package bench

import (
	"io"

	"github.com/dsnet/huffman"
)

func init() {
	RegisterEncoder("hf",
		func(w io.Writer, lvl int) io.WriteCloser {
			return huffman.NewWriter(w) // An entropy coder has no levels
		})
	RegisterDecoder("hf",
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(huffman.NewReader(r))
		})
}
