package huffman

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// FrequencyTable holds the number of occurrences of each byte value, indexed
// by the byte value itself.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies builds a FrequencyTable from a single pass over p.
func CountFrequencies(p []byte) FrequencyTable {
	var ft FrequencyTable
	ft.Add(p)
	return ft
}

// Add counts every byte of p.
func (ft *FrequencyTable) Add(p []byte) {
	for _, b := range p {
		ft[b]++
	}
}

// Distinct returns the number of symbols with a nonzero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}
