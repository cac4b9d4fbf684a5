package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCodeSize is the longest possible code: a fully skewed tree over the
// whole alphabet.
const MaxCodeSize = NumSymbols - 1

// Code represents a sequence of bits, the path from the root of a Tree to a
// leaf (0 = left, 1 = right).
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant bit of Bits[0].
	Bits [4]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	var hc Code
	if len(s) > MaxCodeSize {
		return hc, fmt.Errorf("code %q is longer than %d bits", s, MaxCodeSize)
	}
	for _, ch := range s {
		switch ch {
		case '0':
			hc.push(0)
		case '1':
			hc.push(1)
		default:
			return Code{}, fmt.Errorf("invalid character %q in code %q", ch, s)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code, counting from the root.
func (hc Code) Bit(i int) uint8 {
	return uint8(hc.Bits[i>>6]>>(63-uint(i&63))) & 1
}

// HasPrefix reports whether prefix is a prefix of hc.  Every code has the
// empty code as a prefix, and every code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < int(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// WriteBits writes the bits of the code, root first, to w.
func (hc Code) WriteBits(w BitSink) error {
	for i := 0; i < int(hc.Size); i++ {
		if err := w.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

func (hc *Code) push(bit uint8) {
	i := uint(hc.Size)
	if bit != 0 {
		hc.Bits[i>>6] |= uint64(1) << (63 - (i & 63))
	}
	hc.Size++
}
