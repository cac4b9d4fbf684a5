package huffman

import (
	"github.com/pkg/errors"
)

// Code returns the code for symbol, found by walking from its leaf up to the
// root.  The one-node tree assigns its symbol the single bit 0.  ok is false
// if symbol has no leaf.
func (t *Tree) Code(symbol byte) (hc Code, ok bool) {
	index, ok := t.leaf(symbol)
	if !ok {
		return Code{}, false
	}
	if index == t.root {
		return Code{Size: 1}, true
	}

	var path [MaxCodeSize]uint8
	var depth int
	for index != t.root {
		parent := t.nodes[index].parent
		if t.nodes[parent].left == index {
			path[depth] = 0
		} else {
			path[depth] = 1
		}
		depth++
		index = parent
	}
	for depth > 0 {
		depth--
		hc.push(path[depth])
	}
	return hc, true
}

// Codes returns the code of every symbol.  Absent symbols have a zero-size
// code.
func (t *Tree) Codes() [NumSymbols]Code {
	var codes [NumSymbols]Code
	for symbol := 0; symbol < NumSymbols; symbol++ {
		codes[symbol], _ = t.Code(byte(symbol))
	}
	return codes
}

// Encode writes the code for symbol to w.  Encoding into an empty Tree is a
// no-op.  Encoding a symbol the tree was not built with is a caller error and
// reports ErrSymbolNotInTree without writing anything.
func (t *Tree) Encode(symbol byte, w BitSink) error {
	if t.IsEmpty() {
		return nil
	}
	hc, ok := t.Code(symbol)
	if !ok {
		return errors.Wrapf(ErrSymbolNotInTree, "symbol %d", symbol)
	}
	return hc.WriteBits(w)
}

// Serialize writes the shape of the tree to w in preorder: a 0 bit for each
// internal node, and a 1 bit followed by the 8-bit symbol for each leaf.
// Exactly SerializedBits bits are written.  An empty Tree writes nothing.
func (t *Tree) Serialize(w BitSink) error {
	if t.IsEmpty() {
		return nil
	}

	stack := make([]int32, 0, t.numLeaves)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		last := len(stack) - 1
		index := stack[last]
		stack = stack[:last]

		n := t.nodes[index]
		if !n.isLeaf() {
			if err := w.WriteBit(0); err != nil {
				return err
			}
			stack = append(stack, n.right, n.left)
			continue
		}

		if err := w.WriteBit(1); err != nil {
			return err
		}
		for shift := 7; shift >= 0; shift-- {
			if err := w.WriteBit((n.symbol >> uint(shift)) & 1); err != nil {
				return err
			}
		}
	}
	return nil
}
