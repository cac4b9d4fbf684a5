package huffman

// bytesForBits returns the number of whole bytes needed to hold n bits.
func bytesForBits(n uint64) uint64 {
	return (n + 7) >> 3
}

// bitsInFinalByte returns how many of the n bits land in the last byte, in
// the range 1..8.  Zero bits occupy zero bytes, so n == 0 yields 0.
func bitsInFinalByte(n uint64) uint32 {
	if n == 0 {
		return 0
	}
	rem := uint32(n & 7)
	if rem == 0 {
		rem = 8
	}
	return rem
}
