package huffpack

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// nilNode marks an absent child link.  Only leaves carry nil links.
const nilNode = int32(-1)

// node is one slot in a tree's arena.  A node is either a leaf holding a
// Symbol, or an internal node holding exactly two children; never a mix.
type node struct {
	left   int32
	right  int32
	symbol Symbol
}

func (n node) leaf() bool {
	return n.left == nilNode
}

// tree is a Huffman coding trie.  Nodes live in a flat arena and refer to
// each other by index, so the whole trie is owned and discarded as a unit.
type tree struct {
	nodes []node
	root  int32
}

func (t *tree) addLeaf(sym Symbol) int32 {
	t.nodes = append(t.nodes, node{left: nilNode, right: nilNode, symbol: sym})
	return int32(len(t.nodes)) - 1
}

func (t *tree) addInternal(left, right int32) int32 {
	assert.Assertf(left != nilNode && right != nilNode, "internal node requires two children, got %d and %d", left, right)
	t.nodes = append(t.nodes, node{left: left, right: right})
	return int32(len(t.nodes)) - 1
}

// numLeaves reports how many leaves the trie holds.
func (t *tree) numLeaves() int {
	var count int
	for _, n := range t.nodes {
		if n.leaf() {
			count++
		}
	}
	return count
}

// buildTree greedily assembles the coding trie from a weight table: seed one
// leaf per symbol with non-zero weight, then repeatedly combine the two
// lightest subtrees into a new internal node until a single root remains.
//
// Ties between equal weights are broken by arena index, which is a
// monotonically increasing creation sequence number, so identical input
// always produces identical header bytes.
func buildTree(weights *[AlphabetSize]uint32) *tree {
	t := &tree{nodes: make([]node, 0, 2*AlphabetSize-1)}

	var h weightHeap
	h.list = make([]weightedNode, 0, AlphabetSize)
	for sym := Symbol(0); sym < AlphabetSize; sym++ {
		if w := weights[sym]; w != 0 {
			h.list = append(h.list, weightedNode{index: t.addLeaf(sym), weight: w})
		}
	}
	assert.Assertf(h.Len() != 0, "empty weight table, EOB weight must be at least 1")
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		// Compute the combined weight using saturating addition.
		sum := a.weight + b.weight
		if sum < a.weight {
			sum = math.MaxUint32
		}

		heap.Push(&h, weightedNode{index: t.addInternal(a.index, b.index), weight: sum})
	}

	t.root = heap.Pop(&h).(weightedNode).index
	return t
}

// type weightedNode + type weightHeap {{{

// weightedNode pairs an arena index with its subtree weight.  Weight only
// matters during construction; it is not stored in the arena.
type weightedNode struct {
	index  int32
	weight uint32
}

type weightHeap struct {
	list []weightedNode
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
