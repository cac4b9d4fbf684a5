package huffman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func encodeString(t *testing.T, tree *Tree, symbol byte) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tree.Encode(symbol, asciiBitWriter{&buf}); err != nil {
		t.Fatalf("Encode(%q) failed: %v", symbol, err)
	}
	return buf.String()
}

func serializeString(t *testing.T, tree *Tree) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tree.Serialize(asciiBitWriter{&buf}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	return buf.String()
}

func TestTree_Encode(t *testing.T) {
	simple := NewTree(makeFreqs(map[byte]uint64{'a': 2, 'b': 3}))
	mixed := makeTestTree()
	single := NewTree(makeFreqs(map[byte]uint64{'A': 2}))

	type testRow struct {
		name   string
		tree   *Tree
		symbol byte
		expect string
	}

	testData := [...]testRow{
		{"simple/a", simple, 'a', "0"},
		{"simple/b", simple, 'b', "1"},
		{"mixed/z", &mixed, 'z', "0"},
		{"mixed/a", &mixed, 'a', "100"},
		{"mixed/b", &mixed, 'b', "101"},
		{"mixed/B", &mixed, 'B', "110"},
		{"mixed/A", &mixed, 'A', "111"},
		{"single/A", single, 'A', "0"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := encodeString(t, row.tree, row.symbol)
			if actual != row.expect {
				t.Errorf("expected %q, got %q", row.expect, actual)
			}
		})
	}
}

func TestTree_Encode_Absent(t *testing.T) {
	tree := makeTestTree()

	var buf bytes.Buffer
	err := tree.Encode('q', asciiBitWriter{&buf})
	if !errors.Is(err, ErrSymbolNotInTree) {
		t.Errorf("expected ErrSymbolNotInTree, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTree_Encode_Empty(t *testing.T) {
	var tree Tree

	var buf bytes.Buffer
	if err := tree.Encode('B', asciiBitWriter{&buf}); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestTree_Codes_PrefixFree(t *testing.T) {
	var ft FrequencyTable
	ft.Add([]byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 17)))
	ft.Add([]byte{0, 0, 0, 255, 128, 7})
	tree := NewTree(&ft)
	codes := tree.Codes()

	for x := 0; x < NumSymbols; x++ {
		if !tree.Contains(byte(x)) {
			if codes[x].Size != 0 {
				t.Errorf("absent symbol %d has code %s", x, codes[x])
			}
			continue
		}
		for y := 0; y < NumSymbols; y++ {
			if x == y || !tree.Contains(byte(y)) {
				continue
			}
			if codes[x].HasPrefix(codes[y]) {
				t.Errorf("code %s for %d has prefix %s for %d", codes[x], x, codes[y], y)
			}
		}
	}
}

func TestTree_Code_Skewed(t *testing.T) {
	// Fibonacci weights produce the deepest possible tree.
	var ft FrequencyTable
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		ft[i] = a
		a, b = b, a+b
	}
	tree := NewTree(&ft)

	hc, ok := tree.Code(0)
	if !ok {
		t.Fatalf("symbol 0 missing")
	}
	if hc.Size != 39 {
		t.Errorf("expected a 39-bit code for the rarest symbol, got %d bits", hc.Size)
	}
}

func TestTree_Serialize(t *testing.T) {
	tree := makeTestTree()

	expect := strings.Join([]string{
		"0",
		"1" + "01111010",
		"0",
		"0",
		"1" + "01100001",
		"1" + "01100010",
		"0",
		"1" + "01000010",
		"1" + "01000001",
	}, "")
	actual := serializeString(t, &tree)
	if expect != actual {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if uint32(len(actual)) != tree.SerializedBits() {
		t.Errorf("SerializedBits() = %d, wrote %d", tree.SerializedBits(), len(actual))
	}
}

func TestTree_Serialize_Deterministic(t *testing.T) {
	ft := CountFrequencies([]byte("abracadabra, mississippi, banana bandana"))

	first := serializeString(t, NewTree(&ft))
	for i := 0; i < 10; i++ {
		again := serializeString(t, NewTree(&ft))
		if first != again {
			t.Fatalf("build %d differs:\n\tfirst: %s\n\tagain: %s", i, first, again)
		}
	}
}

func TestTree_Serialize_Empty(t *testing.T) {
	var tree Tree
	if s := serializeString(t, &tree); s != "" {
		t.Errorf("expected nothing, got %q", s)
	}
}
