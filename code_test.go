// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"math"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, `""`, Code{}.String())
	assert.Equal(t, `"0"`, Code{Val: 0, Len: 1}.String())
	assert.Equal(t, `"1"`, Code{Val: 1, Len: 1}.String())
	assert.Equal(t, `"110"`, Code{Val: 3, Len: 3}.String())
	assert.Equal(t, `"100"`, Code{Val: 1, Len: 3}.String())
	assert.Equal(t, `"00010"`, Code{Val: 8, Len: 5}.String())
}

func TestCodeTableKnown(t *testing.T) {
	// For "abracadabra" (a:5 b:2 c:1 d:1 r:2), the creation-order
	// tie-break fixes the merge sequence: c+d=2, b+r=4, (c+d)+(b+r)=6,
	// a+6=11. The resulting codewords are exactly:
	//
	//	a = "0"
	//	c = "100"
	//	d = "101"
	//	b = "110"
	//	r = "111"
	ct := BuildTree(ComputeFreqs([]byte("abracadabra"))).CodeTable()
	assert.Equal(t, `"0"`, ct['a'].String())
	assert.Equal(t, `"100"`, ct['c'].String())
	assert.Equal(t, `"101"`, ct['d'].String())
	assert.Equal(t, `"110"`, ct['b'].String())
	assert.Equal(t, `"111"`, ct['r'].String())
	assert.Equal(t, Code{}, ct['z'])
}

func TestCodeTableSingle(t *testing.T) {
	// A lone symbol gets the fixed one-bit codeword "0", never an empty
	// codeword, so end-of-stream accounting stays uniform.
	ct := BuildTree(ComputeFreqs([]byte("aaaa"))).CodeTable()
	assert.Equal(t, Code{Val: 0, Len: 1}, ct['a'])
}

// isPrefix reports whether codeword a is a prefix of codeword b.
func isPrefix(a, b Code) bool {
	if a.Len > b.Len {
		return false
	}
	return a.Val == b.Val&(1<<a.Len-1)
}

func TestPrefixFree(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := [][]byte{
		[]byte("abracadabra"),
		[]byte("the cat sat on the mat"),
		[]byte("Mississippi"),
		rand.Bytes(256),
		rand.Bytes(4096),
		testutil.ResizeData([]byte("to be or not to be"), 1000),
	}
	for _, input := range inputs {
		ct := BuildTree(ComputeFreqs(input)).CodeTable()
		var codes []Code
		for _, c := range ct {
			if c.Len > 0 {
				codes = append(codes, c)
			}
		}
		for i, a := range codes {
			for j, b := range codes {
				if i == j {
					continue
				}
				assert.False(t, isPrefix(a, b), "%s is a prefix of %s", a, b)
			}
		}
	}
}

// bruteForceCost computes the minimum of sum(freq*len) over all prefix-free
// length assignments for the given weights, by exhaustively enumerating
// length vectors and keeping those satisfying the Kraft inequality.
func bruteForceCost(freqs []uint32) uint64 {
	k := len(freqs)
	if k == 1 {
		return uint64(freqs[0]) // One-bit convention
	}
	best := uint64(math.MaxUint64)
	lens := make([]int, k)
	var enum func(i int)
	enum = func(i int) {
		if i == k {
			// Kraft: a prefix-free code with these lengths exists iff
			// sum(2^-len) <= 1.
			var kraft float64
			var cost uint64
			for j, l := range lens {
				kraft += math.Pow(2, float64(-l))
				cost += uint64(freqs[j]) * uint64(l)
			}
			if kraft <= 1 && cost < best {
				best = cost
			}
			return
		}
		for l := 1; l < k; l++ {
			lens[i] = l
			enum(i + 1)
		}
	}
	enum(0)
	return best
}

func TestOptimality(t *testing.T) {
	// Exhaustive check against the brute-force optimum for every small
	// alphabet shape worth distinguishing.
	vectors := [][]uint32{
		{1},
		{1, 1},
		{1, 3},
		{5, 2, 1, 1, 2},    // abracadabra
		{1, 1, 1, 1},       // uniform, power of two
		{1, 1, 1, 1, 1},    // uniform, non-power of two
		{1, 1, 2, 3, 5, 8}, // fibonacci, maximally skewed
		{9, 1, 1, 1, 1, 1},
		{4, 4, 4, 1, 1, 2},
	}
	for _, freqs := range vectors {
		var ft FreqTable
		for i, f := range freqs {
			ft[i] = f
		}
		ct := BuildTree(&ft).CodeTable()
		var cost uint64
		for i, f := range freqs {
			assert.True(t, ct[i].Len > 0)
			cost += uint64(f) * uint64(ct[i].Len)
		}
		assert.Equal(t, bruteForceCost(freqs), cost, "weights %v", freqs)
	}
}

func TestReverseTable(t *testing.T) {
	ct := BuildTree(ComputeFreqs([]byte("abracadabra"))).CodeTable()
	rt := ct.Reverse()
	assert.Equal(t, 5, len(rt))
	for sym, c := range ct {
		if c.Len == 0 {
			continue
		}
		got, ok := rt[c]
		assert.True(t, ok)
		assert.Equal(t, byte(sym), got)
	}
}
