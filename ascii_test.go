package huffman

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func asciiHeader(pairs map[byte]uint64) string {
	var sb strings.Builder
	for symbol := 0; symbol < NumSymbols; symbol++ {
		sb.WriteString(strconv.FormatUint(pairs[byte(symbol)], 10))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestCompressASCII(t *testing.T) {
	out, err := CompressASCII([]byte("aab"))
	require.NoError(t, err)
	require.Equal(t, asciiHeader(map[byte]uint64{'a': 2, 'b': 1})+"110", string(out))

	decoded, err := DecompressASCII(out)
	require.NoError(t, err)
	require.Equal(t, "aab", string(decoded))
}

func TestCompressASCII_Empty(t *testing.T) {
	out, err := CompressASCII(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	decoded, err := DecompressASCII(nil)
	require.NoError(t, err)
	require.Empty(t, decoded)

	// An all-zero table with no code characters is also empty.
	decoded, err = DecompressASCII([]byte(asciiHeader(nil)))
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestCompressASCII_RoundTrip(t *testing.T) {
	for _, input := range []string{
		"x",
		"\n\n\n",
		"mississippi",
		"The five boxing wizards jump quickly.\x00\xff\x80",
	} {
		out, err := CompressASCII([]byte(input))
		require.NoError(t, err)

		decoded, err := DecompressASCII(out)
		require.NoError(t, err)
		require.Equal(t, input, string(decoded))
	}
}

func TestDecompressASCII_Corrupt(t *testing.T) {
	header := asciiHeader(map[byte]uint64{'a': 1, 'b': 1, 'c': 1})
	aab := asciiHeader(map[byte]uint64{'a': 2, 'b': 1})

	tt := []struct {
		name  string
		input string
	}{
		{"missing lines", "1\n2\n3\n"},
		{"bad number", strings.Replace(header, "1\n", "x\n", 1)},
		{"bad code character", header + "01x"},
		{"truncated code", header + "01"},
		{"codes without table", asciiHeader(nil) + "0"},
		// 'b' = "0", 'a' = "1", so "aab" is "110".
		{"missing final code", aab + "11"},
		{"missing every code", aab},
		{"surplus codes", aab + "110" + "11"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out, err := DecompressASCII([]byte(tc.input))
			require.ErrorIs(t, err, ErrCorruptArchive)
			require.Nil(t, out)
		})
	}
}
