package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder builds a Huffman tree from byte frequencies and assigns each byte
// its root-to-leaf Code.
type Encoder struct {
	root       *Node
	codes      [NumSymbols]Code
	numSymbols int
	minSize    int
	maxSize    int
}

// Init initializes this Encoder from a frequency table.  Symbols with a
// frequency of 0 are left out of the code entirely.
//
// Leaves are queued in ascending symbol order, and each step dequeues the two
// lightest nodes (the first becomes the left child) and queues their parent.
// Ties are broken by queue order, so the same table always yields the same
// tree.
//
// A table with a single symbol produces a tree that is just one leaf; that
// symbol is given the one-bit Code "0".  An empty table produces an Encoder
// with no root and no codes.
//
func (e *Encoder) Init(freqs Frequencies) {
	*e = Encoder{}

	q := newNodeQueue(freqs.Distinct())
	var leaves [NumSymbols]*Node
	for symbol := 0; symbol < NumSymbols; symbol++ {
		freq := freqs[symbol]
		assert.Assertf(freq >= 0, "negative frequency %d for symbol %d", freq, symbol)
		if freq == 0 {
			continue
		}
		leaves[symbol] = newLeaf(byte(symbol), freq)
		q.Enqueue(leaves[symbol], freq)
	}

	if q.Len() == 0 {
		return
	}

	for q.Len() > 1 {
		left, _ := q.Dequeue()
		right, _ := q.Dequeue()
		parent := newInternal(left, right)
		q.Enqueue(parent, parent.weight)
	}
	e.root, _ = q.Dequeue()

	for symbol, leaf := range leaves {
		if leaf == nil {
			continue
		}
		hc := leaf.Path()
		if len(hc) == 0 {
			hc = Code{false}
		}
		assert.Assertf(len(hc) < NumSymbols, "code for symbol %d is %d bits long", symbol, len(hc))

		size := len(hc)
		if e.numSymbols == 0 {
			e.minSize, e.maxSize = size, size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
		e.codes[symbol] = hc
		e.numSymbols++
	}
}

// Encode returns the Code for symbol, or nil if symbol had no occurrences.
func (e *Encoder) Encode(symbol byte) Code {
	return e.codes[symbol]
}

// Root returns the root of the Huffman tree, or nil if no symbol occurred.
func (e *Encoder) Root() *Node {
	return e.root
}

// NumSymbols returns the number of symbols with a Code.
func (e *Encoder) NumSymbols() int {
	return e.numSymbols
}

// MinSize is the bit length of the shortest Code.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest Code.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// SizeBySymbol returns the bit length of the Code for each symbol, with 0 for
// symbols that have no Code.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range e.codes {
		out[symbol] = byte(len(hc))
	}
	return out
}

// EncodedSize returns the number of payload bits needed to encode data.  It
// panics if data holds a symbol this Encoder has no Code for.
func (e *Encoder) EncodedSize(data []byte) int {
	var n int
	for _, b := range data {
		hc := e.codes[b]
		assert.Assertf(hc != nil, "no code for symbol %d", b)
		n += len(hc)
	}
	return n
}

// String returns a one-line summary of this Encoder.
func (e *Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", e.numSymbols, e.minSize, e.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc == nil {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Encoder)(nil)
