package bitfield

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Endianness selects which end of a Bitfield is the most significant.
type Endianness byte

const (
	// LittleEndian means index 0 is the least significant bit.
	LittleEndian Endianness = iota

	// BigEndian means index 0 is the most significant bit.
	BigEndian
)

// String returns the name of this Endianness.
func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return fmt.Sprintf("Endianness(%d)", byte(e))
	}
}

func (e Endianness) opposite() Endianness {
	if e == BigEndian {
		return LittleEndian
	}
	return BigEndian
}

var _ fmt.Stringer = Endianness(0)

// Bitfield is an ordered, growable sequence of bits tagged with an
// Endianness.  The zero value is an empty LittleEndian Bitfield.
type Bitfield struct {
	bits   []bool
	endian Endianness
}

// New returns an empty Bitfield.
func New(e Endianness) *Bitfield {
	return &Bitfield{endian: e}
}

// NewSize returns a Bitfield holding count false bits.
func NewSize(count int, e Endianness) (*Bitfield, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative count %d", count)
	}
	return &Bitfield{bits: make([]bool, count), endian: e}, nil
}

// FromBools returns a Bitfield holding a copy of bits.
func FromBools(bits []bool, e Endianness) (*Bitfield, error) {
	if bits == nil {
		return nil, errors.Wrap(ErrNullArgument, "bits")
	}
	bf := &Bitfield{bits: make([]bool, len(bits)), endian: e}
	copy(bf.bits, bits)
	return bf, nil
}

// Clone returns a deep copy of this Bitfield.
func (bf *Bitfield) Clone() *Bitfield {
	out := &Bitfield{bits: make([]bool, len(bf.bits)), endian: bf.endian}
	copy(out.bits, bf.bits)
	return out
}

// Len returns the number of bits.
func (bf *Bitfield) Len() int {
	return len(bf.bits)
}

// Endian returns the endianness tag.
func (bf *Bitfield) Endian() Endianness {
	return bf.endian
}

// Bools returns a copy of the bits in stored order.
func (bf *Bitfield) Bools() []bool {
	out := make([]bool, len(bf.bits))
	copy(out, bf.bits)
	return out
}

// ByteDivisible reports whether Len is a multiple of 8.
func (bf *Bitfield) ByteDivisible() bool {
	return len(bf.bits)%8 == 0
}

// ByteCount returns the number of whole bytes held.
func (bf *Bitfield) ByteCount() int {
	return len(bf.bits) / 8
}

// CountToByteDivisible returns how many bits PadToByte would add.
func (bf *Bitfield) CountToByteDivisible() int {
	if rem := len(bf.bits) % 8; rem != 0 {
		return 8 - rem
	}
	return 0
}

// Get returns the bit at index i.
func (bf *Bitfield) Get(i int) (bool, error) {
	if i < 0 || i >= len(bf.bits) {
		return false, outOfRange(i, len(bf.bits))
	}
	return bf.bits[i], nil
}

// Set replaces the bit at index i.
func (bf *Bitfield) Set(i int, bit bool) error {
	if i < 0 || i >= len(bf.bits) {
		return outOfRange(i, len(bf.bits))
	}
	bf.bits[i] = bit
	return nil
}

// Flip inverts the bit at index i.
func (bf *Bitfield) Flip(i int) error {
	if i < 0 || i >= len(bf.bits) {
		return outOfRange(i, len(bf.bits))
	}
	bf.bits[i] = !bf.bits[i]
	return nil
}

// Add appends one bit at the end.
func (bf *Bitfield) Add(bit bool) {
	bf.bits = append(bf.bits, bit)
}

// AddBools appends bits at the end, in order.
func (bf *Bitfield) AddBools(bits ...bool) {
	bf.bits = append(bf.bits, bits...)
}

// Append appends the bits of src at the end.  If src has the other
// endianness, its bits are appended in reverse order, so the appended field
// keeps its numeric value under this Bitfield's endianness.
func (bf *Bitfield) Append(src *Bitfield) error {
	if src == nil {
		return errors.Wrap(ErrNullArgument, "src")
	}
	if src.endian == bf.endian {
		bf.bits = append(bf.bits, src.bits...)
		return nil
	}
	for i := len(src.bits) - 1; i >= 0; i-- {
		bf.bits = append(bf.bits, src.bits[i])
	}
	return nil
}

// Insert inserts bit before index i.  i may equal Len.
func (bf *Bitfield) Insert(i int, bit bool) error {
	if i < 0 || i > len(bf.bits) {
		return outOfRange(i, len(bf.bits))
	}
	bf.bits = append(bf.bits, false)
	copy(bf.bits[i+1:], bf.bits[i:])
	bf.bits[i] = bit
	return nil
}

// RemoveAt removes the bit at index i.
func (bf *Bitfield) RemoveAt(i int) error {
	if i < 0 || i >= len(bf.bits) {
		return outOfRange(i, len(bf.bits))
	}
	bf.bits = append(bf.bits[:i], bf.bits[i+1:]...)
	return nil
}

// Remove removes the first bit equal to bit, and reports whether one was
// found.
func (bf *Bitfield) Remove(bit bool) bool {
	i := bf.IndexOf(bit)
	if i < 0 {
		return false
	}
	bf.bits = append(bf.bits[:i], bf.bits[i+1:]...)
	return true
}

// IndexOf returns the index of the first bit equal to bit, or -1.
func (bf *Bitfield) IndexOf(bit bool) int {
	for i, b := range bf.bits {
		if b == bit {
			return i
		}
	}
	return -1
}

// Contains reports whether any bit equals bit.
func (bf *Bitfield) Contains(bit bool) bool {
	return bf.IndexOf(bit) >= 0
}

// Clear removes all bits.  The endianness is kept.
func (bf *Bitfield) Clear() {
	bf.bits = bf.bits[:0]
}

// Reverse reverses the stored order and toggles the endianness, so the
// numeric value represented is unchanged.
func (bf *Bitfield) Reverse() {
	for i, j := 0, len(bf.bits)-1; i < j; i, j = i+1, j-1 {
		bf.bits[i], bf.bits[j] = bf.bits[j], bf.bits[i]
	}
	bf.endian = bf.endian.opposite()
}

// Equal reports whether both Bitfields hold the same bits with the same
// endianness.
func (bf *Bitfield) Equal(other *Bitfield) bool {
	if other == nil || bf.endian != other.endian || len(bf.bits) != len(other.bits) {
		return false
	}
	for i, b := range bf.bits {
		if other.bits[i] != b {
			return false
		}
	}
	return true
}

// String returns the bits in stored order as '0' and '1' characters.
func (bf *Bitfield) String() string {
	var sb strings.Builder
	sb.Grow(len(bf.bits))
	for _, b := range bf.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// GoString returns a Go-like representation, for debugging.
func (bf *Bitfield) GoString() string {
	return fmt.Sprintf("bitfield.Parse(%q, bitfield.%s)", bf.String(), bf.endian)
}

// Parse builds a Bitfield from a string of '0' and '1' characters in stored
// order.  Underscores and spaces are ignored.
func Parse(s string, e Endianness) (*Bitfield, error) {
	bf := &Bitfield{bits: make([]bool, 0, len(s)), endian: e}
	for i, ch := range s {
		switch ch {
		case '0':
			bf.bits = append(bf.bits, false)
		case '1':
			bf.bits = append(bf.bits, true)
		case '_', ' ':
		default:
			return nil, errors.Wrapf(ErrInvalidArgument, "unexpected %q at offset %d", ch, i)
		}
	}
	return bf, nil
}

var (
	_ fmt.Stringer   = (*Bitfield)(nil)
	_ fmt.GoStringer = (*Bitfield)(nil)
)
