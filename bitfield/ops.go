package bitfield

import (
	"github.com/pkg/errors"
)

// And returns the bitwise AND of a and b.  See combine for length and
// endianness rules.
func And(a, b *Bitfield) (*Bitfield, error) {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or returns the bitwise OR of a and b.
func Or(a, b *Bitfield) (*Bitfield, error) {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b *Bitfield) (*Bitfield, error) {
	return combine(a, b, func(x, y bool) bool { return x != y })
}

// Not returns the complement of a.
func Not(a *Bitfield) *Bitfield {
	out := a.Clone()
	for i, bit := range out.bits {
		out.bits[i] = !bit
	}
	return out
}

// combine applies op element-wise.  The longer operand (a on ties) supplies
// the length and endianness of the result; if the endianness tags differ, the
// other operand is reversed first.  Bits of the longer operand past the end
// of the shorter one are copied through unchanged.  Neither operand is
// modified.
func combine(a, b *Bitfield, op func(x, y bool) bool) (*Bitfield, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrNullArgument, "operand")
	}
	if len(a.bits) == 0 || len(b.bits) == 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "zero-length operand (%d, %d bits)", len(a.bits), len(b.bits))
	}

	larger, smaller := a, b
	if len(b.bits) > len(a.bits) {
		larger, smaller = b, a
	}
	if smaller.endian != larger.endian {
		smaller = smaller.Clone()
		smaller.Reverse()
	}

	out := larger.Clone()
	for i, bit := range smaller.bits {
		out.bits[i] = op(bit, out.bits[i])
	}
	return out, nil
}

// RotateLeft returns a copy rotated circularly by n positions towards index
// 0.  The bit at index 0 wraps around to the end.
func (bf *Bitfield) RotateLeft(n int) (*Bitfield, error) {
	if err := bf.checkRotate(n); err != nil {
		return nil, err
	}
	out := bf.Clone()
	rotateLeft(out.bits, n%len(out.bits))
	return out, nil
}

// RotateRight returns a copy rotated circularly by n positions away from
// index 0.  It is equivalent to Reverse, RotateLeft(n), Reverse.
func (bf *Bitfield) RotateRight(n int) (*Bitfield, error) {
	if err := bf.checkRotate(n); err != nil {
		return nil, err
	}
	out := bf.Clone()
	out.Reverse()
	rotateLeft(out.bits, n%len(out.bits))
	out.Reverse()
	return out, nil
}

func (bf *Bitfield) checkRotate(n int) error {
	if len(bf.bits) == 0 {
		return errors.Wrap(ErrInvalidArgument, "rotate of empty bitfield")
	}
	if n < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative rotate count %d", n)
	}
	return nil
}

// rotateLeft rotates in place using three reversals.
func rotateLeft(bits []bool, n int) {
	reverseBools(bits[:n])
	reverseBools(bits[n:])
	reverseBools(bits)
}

func reverseBools(bits []bool) {
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
}

// Increment returns a copy incremented by one, treating the Bitfield as an
// unsigned integer under its endianness.  The width never grows: the maximum
// value wraps around to zero.
func (bf *Bitfield) Increment() (*Bitfield, error) {
	return bf.ripple(true)
}

// Decrement returns a copy decremented by one.  Zero wraps around to the
// maximum value.
func (bf *Bitfield) Decrement() (*Bitfield, error) {
	return bf.ripple(false)
}

// ripple walks from the least significant bit, flipping bits until one flips
// from !stop to stop.
func (bf *Bitfield) ripple(stop bool) (*Bitfield, error) {
	if len(bf.bits) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "counter on empty bitfield")
	}
	out := bf.Clone()
	reversed := false
	if out.endian != LittleEndian {
		out.Reverse()
		reversed = true
	}
	for i, bit := range out.bits {
		out.bits[i] = !bit
		if !bit == stop {
			break
		}
	}
	if reversed {
		out.Reverse()
	}
	return out, nil
}
