// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// node is a node in the code tree. Leaves carry a symbol; internal nodes
// carry only the aggregated weight of their subtree. Every internal node
// exclusively owns its two children, so the structure is a strict binary
// tree with no sharing and no cycles.
type node struct {
	sym    byte
	leaf   bool
	weight uint64
	order  uint32 // creation order, secondary sort key
	left   *node
	right  *node
}

// Tree is the Huffman code tree for some frequency table. The zero Tree is
// the empty tree. Trees are immutable after construction and may be shared
// across goroutines.
type Tree struct {
	root    *node
	numSyms int
}

// BuildTree constructs the code tree for the given frequency table.
//
// Construction seeds a min-heap with one leaf per symbol in ascending symbol
// order, then repeatedly merges the two lightest nodes until one remains.
// The heap orders nodes by weight and breaks ties by creation order (lower
// wins), with every merged node receiving the next order value. This makes
// the tree a pure function of the table: re-running construction anywhere,
// any time, yields the same shape and therefore the same codewords.
//
// An empty table yields the empty tree. A table with one symbol yields a
// tree whose root is the sole leaf.
func BuildTree(ft *FreqTable) *Tree {
	t := new(Tree)
	h := make(nodeHeap, 0, ft.NumSymbols())
	var order uint32
	for sym := 0; sym < maxSymbols; sym++ {
		if ft[sym] == 0 {
			continue
		}
		h = append(h, &node{
			sym:    byte(sym),
			leaf:   true,
			weight: uint64(ft[sym]),
			order:  order,
		})
		order++
	}
	t.numSyms = len(h)
	if len(h) == 0 {
		return t
	}

	heap.Init(&h)
	for h.Len() > 1 {
		l := heap.Pop(&h).(*node)
		r := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: l.weight + r.weight,
			order:  order,
			left:   l,
			right:  r,
		})
		order++
	}
	t.root = h[0]
	return t
}

// NumSyms reports the number of distinct symbols the tree encodes.
func (t *Tree) NumSyms() int { return t.numSyms }

// Dump writes a programmer-readable dump of the tree structure to the given
// writer. It is intended for diagnostics only.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	type frame struct {
		n     *node
		depth int
	}
	var stack []frame
	if t.root != nil {
		stack = append(stack, frame{t.root, 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < f.depth; i++ {
			buf.WriteByte('\t')
		}
		if f.n.leaf {
			fmt.Fprintf(&buf, "%q (weight=%d)\n", f.n.sym, f.n.weight)
		} else {
			fmt.Fprintf(&buf, "* (weight=%d)\n", f.n.weight)
			stack = append(stack,
				frame{f.n.right, f.depth + 1},
				frame{f.n.left, f.depth + 1},
			)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

// nodeHeap is a min-heap of tree nodes ordered by (weight, order).
// The order field is unique across all nodes, so the ordering is total.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].order < h[j].order
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
