package huffman

// BitSink is the destination for encoded bits.  *BitWriter implements it, as
// does the '0'/'1' character writer used by the ascii format.
type BitSink interface {
	WriteBit(bit uint8) error
}

// BitSource is the origin of bits to be decoded.  *BitReader implements it,
// as does the '0'/'1' character reader used by the ascii format.
type BitSource interface {
	ReadBit() (uint8, error)
}

// DefaultBufferSize is the capacity in bytes of a BitWriter or BitReader
// buffer when none is given.
const DefaultBufferSize = 4000

var (
	_ BitSink   = (*BitWriter)(nil)
	_ BitSource = (*BitReader)(nil)
)
