package bitfield

import (
	"github.com/pkg/errors"
)

// Pad inserts count copies of bit on the least significant side: at the end
// for LittleEndian, at index 0 for BigEndian.  Padding never changes which
// end is the most significant.
func (bf *Bitfield) Pad(count int, bit bool) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative pad count %d", count)
	}
	if count == 0 {
		return nil
	}
	out := make([]bool, 0, len(bf.bits)+count)
	if bf.endian == BigEndian {
		out = appendRepeat(out, bit, count)
		out = append(out, bf.bits...)
	} else {
		out = append(out, bf.bits...)
		out = appendRepeat(out, bit, count)
	}
	bf.bits = out
	return nil
}

// PadToByte pads with false bits until Len is a multiple of 8.
func (bf *Bitfield) PadToByte() {
	_ = bf.Pad(bf.CountToByteDivisible(), false)
}

// TrimStart removes every leading bit equal to bit.
func (bf *Bitfield) TrimStart(bit bool) {
	i := 0
	for i < len(bf.bits) && bf.bits[i] == bit {
		i++
	}
	bf.bits = append(bf.bits[:0], bf.bits[i:]...)
}

// TrimEnd removes every trailing bit equal to bit.
func (bf *Bitfield) TrimEnd(bit bool) {
	n := len(bf.bits)
	for n > 0 && bf.bits[n-1] == bit {
		n--
	}
	bf.bits = bf.bits[:n]
}

// Trim is TrimStart followed by TrimEnd.
func (bf *Bitfield) Trim(bit bool) {
	bf.TrimStart(bit)
	bf.TrimEnd(bit)
}

// TrimEndian trims the side that Pad would pad: TrimEnd for LittleEndian,
// TrimStart for BigEndian.
func (bf *Bitfield) TrimEndian(bit bool) {
	if bf.endian == LittleEndian {
		bf.TrimEnd(bit)
	} else {
		bf.TrimStart(bit)
	}
}

// TrimStartN removes exactly n bits from the start.
func (bf *Bitfield) TrimStartN(n int) error {
	if n < 0 || n > len(bf.bits) {
		return errors.Wrapf(ErrOutOfRange, "trim %d of %d bits", n, len(bf.bits))
	}
	bf.bits = append(bf.bits[:0], bf.bits[n:]...)
	return nil
}

// TrimEndN removes exactly n bits from the end.
func (bf *Bitfield) TrimEndN(n int) error {
	if n < 0 || n > len(bf.bits) {
		return errors.Wrapf(ErrOutOfRange, "trim %d of %d bits", n, len(bf.bits))
	}
	bf.bits = bf.bits[:len(bf.bits)-n]
	return nil
}

// TrimEndianN removes exactly n bits from the side that Pad would pad.
func (bf *Bitfield) TrimEndianN(n int) error {
	if bf.endian == LittleEndian {
		return bf.TrimEndN(n)
	}
	return bf.TrimStartN(n)
}

func appendRepeat(out []bool, bit bool, count int) []bool {
	for i := 0; i < count; i++ {
		out = append(out, bit)
	}
	return out
}
