package huffman

import (
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// headerBits is the size of the two fixed u32 headers.
const headerBits = 64

// Codec compresses and decompresses whole byte slices in the binary archive
// format.  The zero Codec is ready to use.
type Codec struct {
	// BufferSize is the capacity in bytes of the bit buffers.  Zero or less
	// selects DefaultBufferSize.
	BufferSize int

	// DumpTree, if not nil, receives a Tree.Dump of every tree built or
	// read back.
	DumpTree io.Writer
}

// Compress compresses input with the zero Codec.
func Compress(input []byte) ([]byte, error) {
	return Codec{}.Compress(input)
}

// Decompress decompresses input with the zero Codec.
func Decompress(input []byte) ([]byte, error) {
	return Codec{}.Decompress(input)
}

// Compress returns the archive for input.  Empty input yields empty output.
//
// The payload length is known before anything is written, because it is the
// sum over all symbols of frequency times code length, so the archive is
// produced in a single forward pass into a staging buffer.
//
func (c Codec) Compress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	freqs := CountFrequencies(input)
	var t Tree
	t.Init(&freqs)
	if err := c.dump(&t); err != nil {
		return nil, err
	}

	codes := t.Codes()
	var payloadBits uint64
	for symbol, freq := range freqs {
		payloadBits += freq * uint64(codes[symbol].Size)
	}
	treeBits := t.SerializedBits()

	var out bytes.Buffer
	out.Grow(int(8 + bytesForBits(uint64(treeBits)) + bytesForBits(payloadBits)))

	bw := NewBitWriter(&out, c.BufferSize)
	if err := bw.WriteInt(bitsInFinalByte(payloadBits)); err != nil {
		return nil, err
	}
	if err := bw.WriteInt(treeBits); err != nil {
		return nil, err
	}
	if err := t.Serialize(bw); err != nil {
		return nil, err
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}

	start := bw.Written()
	for _, b := range input {
		if err := codes[b].WriteBits(bw); err != nil {
			return nil, err
		}
	}
	if err := bw.Flush(); err != nil {
		return nil, err
	}
	assert.Assertf(bw.Written()-start == payloadBits, "wrote %d payload bits, expected %d", bw.Written()-start, payloadBits)

	return out.Bytes(), nil
}

// Decompress returns the original bytes of an archive produced by Compress.
// Empty input yields empty output.  Archives whose headers disagree with
// their length or contents yield an error wrapping ErrCorruptArchive.
func (c Codec) Decompress(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}
	if len(input) < headerBits/8 {
		return nil, corruptf("archive is %d bytes, shorter than its %d-byte header", len(input), headerBits/8)
	}

	br := NewBitReader(bytes.NewReader(input), c.BufferSize)
	finalBits, err := br.ReadInt()
	if err != nil {
		return nil, corruptf("reading header: %v", err)
	}
	treeBits, err := br.ReadInt()
	if err != nil {
		return nil, corruptf("reading header: %v", err)
	}

	if finalBits < 1 || finalBits > 8 {
		return nil, corruptf("final payload byte claims %d valid bits", finalBits)
	}
	if treeBits < 9 || treeBits > 10*NumSymbols-1 || treeBits%10 != 9 {
		return nil, corruptf("invalid tree length %d bits", treeBits)
	}
	treeBytes := bytesForBits(uint64(treeBits))
	available := uint64(len(input)) - headerBits/8
	if treeBytes >= available {
		return nil, corruptf("tree of %d bytes leaves no room for payload in %d bytes", treeBytes, available)
	}
	payloadBytes := available - treeBytes
	payloadBits := (payloadBytes-1)*8 + uint64(finalBits)

	var t Tree
	if err := t.Deserialize(br, treeBits); err != nil {
		return nil, err
	}
	if err := c.dump(&t); err != nil {
		return nil, err
	}
	br.Align()

	limit := br.Consumed() + payloadBits
	out := make([]byte, 0, payloadBits)
	out, err = t.readAll(br, br.Consumed, limit, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c Codec) dump(t *Tree) error {
	if c.DumpTree == nil {
		return nil
	}
	if _, err := t.Dump(c.DumpTree); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
