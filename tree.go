package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// noNode marks an absent child or parent link.
const noNode = -1

// node is one entry of a Tree's node arena.  Links are arena indices.
type node struct {
	weight uint64
	left   int32
	right  int32
	parent int32
	symbol byte
}

func (n node) isLeaf() bool {
	return n.left == noNode
}

// Tree is a Huffman prefix tree over the byte alphabet.
//
// The zero Tree is empty: it has no root, encodes nothing and cannot decode.
// A Tree is read-only once built and may be used from one goroutine at a time.
type Tree struct {
	nodes []node
	root  int32

	// leaves maps a symbol to 1 + the arena index of its leaf; 0 means the
	// symbol is absent.
	leaves    [NumSymbols]int32
	numLeaves int
}

// NewTree builds a Tree from the given frequencies.
func NewTree(freqs *FrequencyTable) *Tree {
	t := new(Tree)
	t.Init(freqs)
	return t
}

// Init builds this Tree from the given frequencies.  Every symbol with a
// nonzero frequency gets a leaf.
//
// Nodes are combined lowest weight first.  Among nodes of equal weight, the
// one with the larger representative symbol goes first.  The first node
// popped becomes the left child, and its symbol becomes the parent's
// representative symbol.  Representative symbols of queued nodes are always
// distinct, so identical frequencies always produce an identical tree.
//
// A single distinct symbol yields a one-node tree whose root is also its
// only leaf.  No distinct symbols yields the empty Tree.
//
func (t *Tree) Init(freqs *FrequencyTable) {
	*t = Tree{}

	numLeaves := freqs.Distinct()
	if numLeaves == 0 {
		return
	}

	nodes := make([]node, 0, 2*numLeaves-1)
	h := nodeHeap{nodes: &nodes}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			index := int32(len(nodes))
			nodes = append(nodes, node{
				weight: freq,
				left:   noNode,
				right:  noNode,
				parent: noNode,
				symbol: byte(symbol),
			})
			t.leaves[symbol] = index + 1
			h.list = append(h.list, index)
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		index := int32(len(nodes))
		nodes = append(nodes, node{
			weight: nodes[a].weight + nodes[b].weight,
			left:   a,
			right:  b,
			parent: noNode,
			symbol: nodes[a].symbol,
		})
		nodes[a].parent = index
		nodes[b].parent = index
		heap.Push(&h, index)
	}

	assert.Assertf(len(nodes) == 2*numLeaves-1, "built %d nodes for %d leaves", len(nodes), numLeaves)

	t.nodes = nodes
	t.root = heap.Pop(&h).(int32)
	t.numLeaves = numLeaves
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Leaves returns the number of distinct symbols in the tree.
func (t *Tree) Leaves() int {
	return t.numLeaves
}

// Weight returns the aggregate frequency of the root.  Trees read back by
// Deserialize carry no frequencies and have weight 0.
func (t *Tree) Weight() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.root].weight
}

// Contains reports whether symbol has a leaf in the tree.
func (t *Tree) Contains(symbol byte) bool {
	return t.leaves[symbol] != 0
}

// SerializedBits returns the length in bits of the serialized tree: one bit
// per internal node plus nine bits per leaf.
func (t *Tree) SerializedBits() uint32 {
	if t.numLeaves == 0 {
		return 0
	}
	return uint32(10*t.numLeaves - 1)
}

// String returns a short description of this Tree.
func (t *Tree) String() string {
	if t.IsEmpty() {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, root weight %d)", t.numLeaves, t.Weight())
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc, ok := t.Code(byte(symbol)); ok {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

func (t *Tree) leaf(symbol byte) (int32, bool) {
	index := t.leaves[symbol] - 1
	return index, index >= 0
}

// type nodeHeap {{{

type nodeHeap struct {
	nodes *[]node
	list  []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := (*h.nodes)[h.list[i]], (*h.nodes)[h.list[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.symbol > b.symbol
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
