package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrCorruptArchive is returned when compressed input is truncated or
	// its headers disagree with its contents.
	ErrCorruptArchive = errors.New("huffman: truncated or corrupt archive")

	// ErrSymbolNotInTree is returned when asked to encode a symbol that the
	// tree was not built with.
	ErrSymbolNotInTree = errors.New("huffman: symbol not in tree")

	// ErrEmptyTree is returned when asked to decode with an empty tree.
	ErrEmptyTree = errors.New("huffman: tree is empty")
)

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptArchive, format, args...)
}
