package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/huffman/v2/bitfield"
)

// Decoder walks a Huffman tree to turn Codes back into symbols.
type Decoder struct {
	root       *Node
	codes      map[byte]Code
	numSymbols int
	minSize    int
	maxSize    int
}

// Init initializes this Decoder with the tree rooted at root.  A nil root
// yields a Decoder that rejects every input.
func (d *Decoder) Init(root *Node) {
	*d = Decoder{root: root}
	if root == nil {
		return
	}

	d.codes = make(map[byte]Code, NumSymbols)
	if root.leaf {
		d.codes[root.symbol] = Code{false}
		d.numSymbols, d.minSize, d.maxSize = 1, 1, 1
		return
	}

	// Walk the tree with an explicit stack; leaves never get
	// pushed, only internal nodes.
	stack := make([]*Node, 0, log2int(NumSymbols))
	stack = append(stack, root)
	var hasMinMax bool
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range [2]*Node{n.right, n.left} {
			if !child.leaf {
				stack = append(stack, child)
				continue
			}
			size := d.record(child)
			if !hasMinMax {
				hasMinMax = true
				d.minSize, d.maxSize = size, size
			} else if d.minSize > size {
				d.minSize = size
			} else if d.maxSize < size {
				d.maxSize = size
			}
		}
	}
}

func (d *Decoder) record(leaf *Node) int {
	hc := leaf.Path()
	if _, found := d.codes[leaf.symbol]; !found {
		d.numSymbols++
	}
	d.codes[leaf.symbol] = hc
	return len(hc)
}

// Decode consumes one Code from r and returns its symbol.
//
// With a single-leaf tree every 0 bit decodes to the leaf's symbol.  Running
// out of bits in the middle of a Code, or a 1 bit in a single-leaf tree, is
// reported as ErrCorruptData.
//
func (d *Decoder) Decode(r *bitfield.Reader) (byte, error) {
	if d.root == nil {
		return 0, corrupt("no Huffman tree")
	}

	start := r.Offset()
	if d.root.leaf {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, corrupt("truncated code at bit %d", start)
		}
		if bit {
			return 0, corrupt("unexpected 1 bit at bit %d in single-symbol code", start)
		}
		return d.root.symbol, nil
	}

	n := d.root
	for !n.leaf {
		bit, err := r.ReadBool()
		if err != nil {
			return 0, corrupt("truncated code starting at bit %d", start)
		}
		if bit {
			n = n.right
		} else {
			n = n.left
		}
		if n == nil {
			return 0, corrupt("code starting at bit %d leaves the tree", start)
		}
	}
	return n.symbol, nil
}

// Root returns the root of the tree.
func (d *Decoder) Root() *Node {
	return d.root
}

// NumSymbols returns the number of leaves in the tree.
func (d *Decoder) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() int {
	return d.maxSize
}

// String returns a one-line summary of this Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.numSymbols, d.minSize, d.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.codes))
	symbols := make(map[string]byte, len(d.codes))
	for symbol, hc := range d.codes {
		keys = append(keys, hc)
		symbols[hc.String()] = symbol
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, symbols[hc.String()])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Decoder)(nil)
