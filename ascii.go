package huffman

import (
	"bytes"
	"io"
	"strconv"
)

// CompressASCII returns input in the human-readable debug format: the 256
// symbol frequencies as newline-terminated decimal numbers, in symbol order,
// followed by one '0' or '1' character per encoded bit.  Empty input yields
// empty output.
func CompressASCII(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	freqs := CountFrequencies(input)
	var t Tree
	t.Init(&freqs)

	var out bytes.Buffer
	for _, freq := range freqs {
		out.WriteString(strconv.FormatUint(freq, 10))
		out.WriteByte('\n')
	}

	w := asciiBitWriter{&out}
	for _, b := range input {
		if err := t.Encode(b, w); err != nil {
			return nil, err
		}
	}
	return out.Bytes(), nil
}

// DecompressASCII reverses CompressASCII.  The tree is rebuilt from the
// frequency lines rather than read from the input, and exactly as many
// symbols are decoded as the frequencies add up to.
func DecompressASCII(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	var freqs FrequencyTable
	rest := input
	for symbol := 0; symbol < NumSymbols; symbol++ {
		eol := bytes.IndexByte(rest, '\n')
		if eol < 0 {
			return nil, corruptf("missing frequency line for symbol %d", symbol)
		}
		freq, err := strconv.ParseUint(string(rest[:eol]), 10, 64)
		if err != nil {
			return nil, corruptf("frequency line for symbol %d: %v", symbol, err)
		}
		freqs[symbol] = freq
		rest = rest[eol+1:]
	}

	var t Tree
	t.Init(&freqs)
	if t.IsEmpty() {
		if len(rest) != 0 {
			return nil, corruptf("%d code characters follow an empty frequency table", len(rest))
		}
		return nil, nil
	}

	total := freqs.Total()
	size := total
	if size > uint64(len(rest)) {
		size = uint64(len(rest))
	}
	out := make([]byte, 0, size)

	r := &asciiBitReader{p: rest}
	for n := uint64(0); n < total; n++ {
		symbol, err := t.Decode(r)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, corruptf("code characters ran out after %d of %d symbols", n, total)
			}
			return nil, err
		}
		out = append(out, symbol)
	}
	if extra := len(rest) - r.pos; extra != 0 {
		return nil, corruptf("%d code characters follow the last of %d symbols", extra, total)
	}
	return out, nil
}

// asciiBitWriter writes each bit as a '0' or '1' character.
type asciiBitWriter struct {
	buf *bytes.Buffer
}

func (w asciiBitWriter) WriteBit(bit uint8) error {
	return w.buf.WriteByte('0' + bit)
}

// asciiBitReader reads bits written by asciiBitWriter.
type asciiBitReader struct {
	p   []byte
	pos int
}

func (r *asciiBitReader) ReadBit() (uint8, error) {
	if r.pos >= len(r.p) {
		return 0, io.EOF
	}
	ch := r.p[r.pos]
	switch ch {
	case '0', '1':
		r.pos++
		return ch - '0', nil
	default:
		return 0, corruptf("invalid code character %q at offset %d", ch, r.pos)
	}
}

var (
	_ BitSink   = asciiBitWriter{}
	_ BitSource = (*asciiBitReader)(nil)
)
