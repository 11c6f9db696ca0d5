// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildTreeEmpty(t *testing.T) {
	tr := BuildTree(new(FreqTable))
	assert.Nil(t, tr.root)
	assert.Equal(t, 0, tr.NumSyms())
	assert.Equal(t, 0, len(tr.CodeTable().Reverse()))
}

func TestBuildTreeSingle(t *testing.T) {
	ft := ComputeFreqs([]byte("aaaa"))
	tr := BuildTree(ft)
	assert.Equal(t, 1, tr.NumSyms())
	assert.True(t, tr.root.leaf)
	assert.Equal(t, byte('a'), tr.root.sym)
	assert.Equal(t, uint64(4), tr.root.weight)
}

func TestBuildTreeWeights(t *testing.T) {
	// The root weight is always the total input length, and every internal
	// node's weight is the sum of its children's.
	ft := ComputeFreqs([]byte("abracadabra"))
	tr := BuildTree(ft)
	assert.Equal(t, uint64(11), tr.root.weight)

	var check func(n *node)
	check = func(n *node) {
		if n.leaf {
			return
		}
		assert.Equal(t, n.weight, n.left.weight+n.right.weight)
		assert.True(t, n.order > n.left.order)
		assert.True(t, n.order > n.right.order)
		check(n.left)
		check(n.right)
	}
	check(tr.root)
}

func TestTreeDeterminism(t *testing.T) {
	// All weights equal: every merge is a tie, so the result depends
	// entirely on the creation-order tie-break. Two independent builds
	// must produce the identical code assignment.
	var ft FreqTable
	for sym := 'a'; sym <= 'z'; sym++ {
		ft[sym] = 7
	}
	ct1 := BuildTree(&ft).CodeTable()
	ct2 := BuildTree(&ft).CodeTable()
	if diff := cmp.Diff(ct1, ct2); diff != "" {
		t.Errorf("code table mismatch (-first +second):\n%s", diff)
	}

	// With 26 equally likely symbols, code lengths must be 4 or 5.
	for sym := 'a'; sym <= 'z'; sym++ {
		l := ct1[sym].Len
		assert.True(t, l == 4 || l == 5, "len(%q) = %d", sym, l)
	}
}

func TestTreeSkewed(t *testing.T) {
	// Fibonacci-distributed weights build the deepest possible tree:
	// each merge immediately becomes one operand of the next. With k
	// symbols the two rarest sit at depth k-1. This exercises the
	// explicit-stack traversal on an adversarial shape.
	const k = 40
	var ft FreqTable
	f0, f1 := uint32(1), uint32(1)
	for i := 0; i < k; i++ {
		ft[i] = f0
		f0, f1 = f1, f0+f1
	}
	ct := BuildTree(&ft).CodeTable()

	var minLen, maxLen uint
	for sym := 0; sym < k; sym++ {
		l := ct[sym].Len
		assert.True(t, l > 0, "missing code for %d", sym)
		if minLen == 0 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	assert.Equal(t, uint(1), minLen)
	assert.Equal(t, uint(k-1), maxLen)
}

func TestTreeDump(t *testing.T) {
	tr := BuildTree(ComputeFreqs([]byte("abracadabra")))
	var buf bytes.Buffer
	_, err := tr.Dump(&buf)
	assert.Nil(t, err)
	s := buf.String()
	assert.True(t, strings.HasPrefix(s, "Tree{\n"))
	assert.Contains(t, s, `'a' (weight=5)`)
	assert.Contains(t, s, `* (weight=11)`)
}
