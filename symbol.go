package huffman

// NumSymbols is the size of the alphabet: one symbol per byte value.
const NumSymbols = 256

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [NumSymbols]int

// CountFrequencies builds the frequency table of data.
func CountFrequencies(data []byte) Frequencies {
	var f Frequencies
	for _, b := range data {
		f[b]++
	}
	return f
}

// Distinct returns the number of byte values with a non-zero frequency.
func (f *Frequencies) Distinct() int {
	var n int
	for _, freq := range f {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all frequencies.
func (f *Frequencies) Total() int {
	var n int
	for _, freq := range f {
		n += freq
	}
	return n
}
