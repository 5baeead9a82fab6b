package huffman

// FreqMap records how many times each symbol occurs in an input.
type FreqMap map[Symbol]int

// CountSymbols scans the input text and counts each symbol's occurrences.
// An empty input yields an empty map.
func CountSymbols(input string) FreqMap {
	freqs := make(FreqMap)
	for _, r := range input {
		freqs[Symbol(r)]++
	}
	return freqs
}

// Total is the number of occurrences recorded across all symbols, i.e. the
// length in symbols of the counted input.
func (m FreqMap) Total() int {
	var total int
	for _, count := range m {
		total += count
	}
	return total
}
