// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "math"

// FreqTable records the number of occurrences of every symbol in some input.
// A zero count means the symbol is absent. The table is the sole input to
// tree construction, and doubles as the reconstructible stream header: any
// two parties holding equal tables derive the identical code.
type FreqTable [256]uint32

// ComputeFreqs counts symbol occurrences in data with a single pass.
// An empty input yields the zero table. Counts saturate at MaxUint32;
// saturation skews code lengths on absurdly large inputs but cannot break
// the round-trip, since the encoder and decoder share the same table.
func ComputeFreqs(data []byte) *FreqTable {
	ft := new(FreqTable)
	for _, b := range data {
		if ft[b] != math.MaxUint32 {
			ft[b]++
		}
	}
	return ft
}

// NumSymbols reports the number of distinct symbols in the table.
func (ft *FreqTable) NumSymbols() (n int) {
	for _, cnt := range ft {
		if cnt > 0 {
			n++
		}
	}
	return n
}

// Total reports the sum of all counts, which is the length of the input the
// table was computed from (barring saturation).
func (ft *FreqTable) Total() (total uint64) {
	for _, cnt := range ft {
		total += uint64(cnt)
	}
	return total
}
