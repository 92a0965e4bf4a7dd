package huffman

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/huffman/v2/bitfield"
)

// Code is the path from the root of a Huffman tree to a leaf.  Element 0 is
// the first step taken from the root: false for the left child, true for the
// right child.
type Code []bool

// MakeCode is a convenience function that parses a Code from a string of '0'
// and '1' characters.  It panics on any other character.
func MakeCode(s string) Code {
	hc := make(Code, 0, len(s))
	for _, ch := range s {
		switch ch {
		case '0':
			hc = append(hc, false)
		case '1':
			hc = append(hc, true)
		default:
			panic(fmt.Errorf("invalid character %q in Huffman code %q", ch, s))
		}
	}
	return hc
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bitfield returns this Code as a BigEndian Bitfield, in path order.
func (hc Code) Bitfield() *bitfield.Bitfield {
	bf := bitfield.New(bitfield.BigEndian)
	bf.AddBools(hc...)
	return bf
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(len(hc))
	for _, bit := range hc {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code(nil)

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for k := range a {
		if a[k] != b[k] {
			return b[k]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
