package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// BitReader unpacks bits, most significant bit first, from an underlying
// io.Reader through a fixed-capacity buffer.
//
// Once a read would go beyond the last available byte the reader is past
// end: that read and every later one return a zero bit together with
// io.EOF (or the underlying read error), and EOF reports true.
type BitReader struct {
	r        io.Reader
	buf      []byte
	n        int
	pos      uint
	consumed uint64
	eof      bool
	err      error
}

// NewBitReader returns a BitReader with a buffer of size bytes.  A size of
// zero or less selects DefaultBufferSize.
func NewBitReader(r io.Reader, size int) *BitReader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BitReader{r: r, buf: make([]byte, size)}
}

// ReadBit returns the next bit.
func (br *BitReader) ReadBit() (uint8, error) {
	if br.eof {
		return 0, br.err
	}
	if br.pos == uint(br.n)<<3 {
		br.fill()
		if br.n == 0 {
			br.eof = true
			return 0, br.err
		}
	}
	bit := (br.buf[br.pos>>3] >> (7 - (br.pos & 7))) & 1
	br.pos++
	br.consumed++
	return bit, nil
}

// ReadByte returns the next 8 bits as a byte, most significant bit first.
func (br *BitReader) ReadByte() (byte, error) {
	x, err := br.readUint(8)
	return byte(x), err
}

// ReadInt returns the next 32 bits as an integer, most significant bit first.
func (br *BitReader) ReadInt() (uint32, error) {
	return br.readUint(32)
}

func (br *BitReader) readUint(size uint) (uint32, error) {
	var x uint32
	for ; size > 0; size-- {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		x = (x << 1) | uint32(bit)
	}
	return x, nil
}

// Align discards the unread bits of the current byte, if any.
func (br *BitReader) Align() {
	if rem := br.pos & 7; rem != 0 {
		skip := 8 - rem
		br.pos += skip
		br.consumed += uint64(skip)
	}
}

// Consumed returns the number of bits read or skipped so far.
func (br *BitReader) Consumed() uint64 {
	return br.consumed
}

// EOF reports whether a read has gone past the end of the stream.
func (br *BitReader) EOF() bool {
	return br.eof
}

// Err returns the first non-EOF error from the underlying reader, if any.
func (br *BitReader) Err() error {
	if br.err == io.EOF {
		return nil
	}
	return br.err
}

func (br *BitReader) fill() {
	br.pos = 0
	n, err := io.ReadFull(br.r, br.buf)
	br.n = n
	switch {
	case err == nil:
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		br.err = io.EOF
	default:
		br.err = errors.WithStack(err)
	}
}

var _ io.ByteReader = (*BitReader)(nil)
