// Package huffman implements a self-describing Huffman file format.
//
// A compressed archive is laid out as follows, with every multi-byte integer
// stored big-endian and bits packed most significant bit first:
//
//     [u32 valid bits in the final payload byte]
//     [u32 serialized tree bit length]
//     [serialized tree, padded to a byte boundary]
//     [encoded payload, padded to a byte boundary]
//
// The tree is serialized in preorder using the grammar
//
//     node := '0' node node | '1' byte
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
