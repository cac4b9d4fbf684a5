package huffman

import (
	"io"
)

// Decode reads bits from r, descending left on 0 and right on 1, until it
// reaches a leaf, and returns the leaf's symbol.  The one-node tree consumes
// exactly one bit, whatever its value.
//
// Running out of bits mid-code yields io.ErrUnexpectedEOF, or io.EOF if no
// bit at all could be read.
//
func (t *Tree) Decode(r BitSource) (byte, error) {
	if t.IsEmpty() {
		return 0, ErrEmptyTree
	}

	index := t.root
	if t.nodes[index].isLeaf() {
		if _, err := r.ReadBit(); err != nil {
			return 0, err
		}
		return t.nodes[index].symbol, nil
	}

	first := true
	for !t.nodes[index].isLeaf() {
		bit, err := r.ReadBit()
		if err != nil {
			if err == io.EOF && !first {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		first = false
		if bit == 0 {
			index = t.nodes[index].left
		} else {
			index = t.nodes[index].right
		}
	}
	return t.nodes[index].symbol, nil
}

// Deserialize replaces this Tree with one read from r in the format written
// by Serialize, consuming exactly nbits bits.  The result has the same shape
// and symbols as the serialized tree, but all weights are 0.
func (t *Tree) Deserialize(r BitSource, nbits uint32) (err error) {
	*t = Tree{}
	defer func() {
		if err != nil {
			*t = Tree{}
		}
	}()

	var nodes []node
	var stack []int32
	var consumed uint32

	readBit := func() (uint8, error) {
		if consumed >= nbits {
			return 0, corruptf("tree overruns its %d-bit length", nbits)
		}
		bit, err := r.ReadBit()
		if err != nil {
			if err == io.EOF {
				return 0, corruptf("tree truncated after %d bits", consumed)
			}
			return 0, err
		}
		consumed++
		return bit, nil
	}

	// attach links a freshly appended node to the innermost internal node
	// still missing a child.
	attach := func(index int32) {
		if len(stack) == 0 {
			return
		}
		last := len(stack) - 1
		parent := stack[last]
		nodes[index].parent = parent
		if nodes[parent].left == noNode {
			nodes[parent].left = index
		} else {
			nodes[parent].right = index
			stack = stack[:last]
		}
	}

	for {
		bit, err := readBit()
		if err != nil {
			return err
		}

		index := int32(len(nodes))
		if bit == 0 {
			if len(nodes) >= 2*NumSymbols-1 {
				return corruptf("tree has more than %d nodes", 2*NumSymbols-1)
			}
			nodes = append(nodes, node{left: noNode, right: noNode, parent: noNode})
			attach(index)
			stack = append(stack, index)
			continue
		}

		var symbol byte
		for i := 0; i < 8; i++ {
			bit, err := readBit()
			if err != nil {
				return err
			}
			symbol = (symbol << 1) | bit
		}
		if t.leaves[symbol] != 0 {
			return corruptf("symbol %d appears twice in tree", symbol)
		}
		nodes = append(nodes, node{left: noNode, right: noNode, parent: noNode, symbol: symbol})
		t.leaves[symbol] = index + 1
		t.numLeaves++
		attach(index)

		if len(stack) == 0 {
			break
		}
	}

	if consumed != nbits {
		return corruptf("tree used %d of its %d-bit length", consumed, nbits)
	}

	// Internal nodes take the symbol of their left child, as in Init.
	for index := len(nodes) - 1; index >= 0; index-- {
		if !nodes[index].isLeaf() {
			nodes[index].symbol = nodes[nodes[index].left].symbol
		}
	}

	t.nodes = nodes
	t.root = 0
	return nil
}

// readAll decodes symbols from r until exactly limit bits have been consumed,
// as counted by consumed.
func (t *Tree) readAll(r BitSource, consumed func() uint64, limit uint64, out []byte) ([]byte, error) {
	for consumed() < limit {
		symbol, err := t.Decode(r)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return out, corruptf("payload truncated after %d of %d bits", consumed(), limit)
			}
			return out, err
		}
		if consumed() > limit {
			return out, corruptf("final code overruns payload by %d bits", consumed()-limit)
		}
		out = append(out, symbol)
	}
	return out, nil
}
