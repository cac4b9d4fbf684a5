package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BitWriter packs bits, most significant bit first, into a fixed-capacity
// buffer and hands whole buffers to an underlying io.Writer.
//
// A full buffer is flushed automatically before the next bit is accepted,
// so automatic flushes always fall on byte boundaries.  An explicit Flush
// may emit a partially filled final byte; its unused low bits are zero.
//
// Errors from the underlying writer are sticky.
type BitWriter struct {
	w       io.Writer
	buf     []byte
	nbits   uint
	written uint64
	onFlush func(nbytes int)
	err     error
}

// NewBitWriter returns a BitWriter with a buffer of size bytes.  A size of
// zero or less selects DefaultBufferSize.
func NewBitWriter(w io.Writer, size int) *BitWriter {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &BitWriter{w: w, buf: make([]byte, size)}
}

// OnFlush registers fn to be called after every flush that emits at least
// one byte, with the number of bytes emitted.
func (bw *BitWriter) OnFlush(fn func(nbytes int)) {
	bw.onFlush = fn
}

// WriteBit appends a single bit, which must be 0 or 1.
func (bw *BitWriter) WriteBit(bit uint8) error {
	assert.Assertf(bit <= 1, "bit %d is not 0 or 1", bit)
	if bw.err != nil {
		return bw.err
	}
	if bw.nbits == uint(len(bw.buf))<<3 {
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	if bit != 0 {
		bw.buf[bw.nbits>>3] |= 0x80 >> (bw.nbits & 7)
	}
	bw.nbits++
	bw.written++
	return nil
}

// WriteByte appends the 8 bits of b, most significant bit first.
func (bw *BitWriter) WriteByte(b byte) error {
	return bw.writeUint(uint32(b), 8)
}

// WriteInt appends the 32 bits of x, most significant bit first, so that a
// byte-aligned value reads back as big-endian.
func (bw *BitWriter) WriteInt(x uint32) error {
	return bw.writeUint(x, 32)
}

func (bw *BitWriter) writeUint(x uint32, size uint) error {
	for size > 0 {
		size--
		if err := bw.WriteBit(uint8(x>>size) & 1); err != nil {
			return err
		}
	}
	return nil
}

// Flush emits every buffered bit, padding the final byte with zero bits, and
// leaves the buffer empty and zeroed.  The next bit written starts a new byte.
func (bw *BitWriter) Flush() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.nbits == 0 {
		return nil
	}

	nbytes := int(bytesForBits(uint64(bw.nbits)))
	_, err := bw.w.Write(bw.buf[:nbytes])
	for i := 0; i < nbytes; i++ {
		bw.buf[i] = 0
	}
	bw.nbits = 0
	if err != nil {
		bw.err = errors.WithStack(err)
		return bw.err
	}
	if bw.onFlush != nil {
		bw.onFlush(nbytes)
	}
	return nil
}

// Buffered returns the number of bits waiting in the buffer.
func (bw *BitWriter) Buffered() uint {
	return bw.nbits
}

// Written returns the number of bits accepted so far, not counting padding.
func (bw *BitWriter) Written() uint64 {
	return bw.written
}

var _ io.ByteWriter = (*BitWriter)(nil)
