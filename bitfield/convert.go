package bitfield

import (
	"bytes"
	"encoding/binary"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// FromByteArray returns a LittleEndian Bitfield holding the bits of value,
// with byte k bit j stored at index 8k+j.
func FromByteArray(value []byte) (*Bitfield, error) {
	if value == nil {
		return nil, errors.Wrap(ErrNullArgument, "value")
	}
	return fromBytes(value, LittleEndian)
}

// FromByteArrayBigEndian returns a BigEndian Bitfield holding the bits of
// value in MSB-first stream order.
func FromByteArrayBigEndian(value []byte) (*Bitfield, error) {
	if value == nil {
		return nil, errors.Wrap(ErrNullArgument, "value")
	}
	return fromBytes(value, BigEndian)
}

// FromByte returns the 8-bit LittleEndian Bitfield for value.
func FromByte(value byte) *Bitfield {
	return mustFromBytes([]byte{value})
}

// FromInt8 returns the 8-bit LittleEndian Bitfield for value.
func FromInt8(value int8) *Bitfield {
	return mustFromBytes([]byte{byte(value)})
}

// FromUint16 returns the 16-bit LittleEndian Bitfield for value.
func FromUint16(value uint16) *Bitfield {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	return mustFromBytes(buf[:])
}

// FromInt16 returns the 16-bit LittleEndian Bitfield for value.
func FromInt16(value int16) *Bitfield {
	return FromUint16(uint16(value))
}

// FromUint32 returns the 32-bit LittleEndian Bitfield for value.
func FromUint32(value uint32) *Bitfield {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	return mustFromBytes(buf[:])
}

// FromInt32 returns the 32-bit LittleEndian Bitfield for value.
func FromInt32(value int32) *Bitfield {
	return FromUint32(uint32(value))
}

// FromUint64 returns the 64-bit LittleEndian Bitfield for value.
func FromUint64(value uint64) *Bitfield {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], value)
	return mustFromBytes(buf[:])
}

// FromInt64 returns the 64-bit LittleEndian Bitfield for value.
func FromInt64(value int64) *Bitfield {
	return FromUint64(uint64(value))
}

// FromString returns the LittleEndian Bitfield for the UTF-8 bytes of s.
func FromString(s string) *Bitfield {
	return mustFromBytes([]byte(s))
}

// ToByteArray converts bitCount bits starting at offset into bytes, using the
// byte layout of this Bitfield's endianness.  bitCount must be a positive
// multiple of 8 and the range must lie within the Bitfield.
func (bf *Bitfield) ToByteArray(bitCount int, offset int) ([]byte, error) {
	if bitCount <= 0 || bitCount%8 != 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "bit count %d is not a positive multiple of 8", bitCount)
	}
	if offset < 0 || offset > len(bf.bits)-bitCount {
		return nil, errors.Wrapf(ErrOutOfRange, "range [%d, %d) exceeds length %d", offset, offset+bitCount, len(bf.bits))
	}

	var buf bytes.Buffer
	buf.Grow(bitCount / 8)
	w := bitio.NewWriter(&buf)
	for k := offset; k < offset+bitCount; k += 8 {
		chunk := bf.bits[k : k+8]
		for j := 0; j < 8; j++ {
			bit := chunk[j]
			if bf.endian == LittleEndian {
				bit = chunk[7-j]
			}
			if err := w.WriteBool(bit); err != nil {
				return nil, errors.Wrap(err, "pack bits")
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "pack bits")
	}
	return buf.Bytes(), nil
}

// Bytes returns the whole Bitfield as bytes.  A copy is padded with PadToByte
// first, so the Bitfield itself is not modified.
func (bf *Bitfield) Bytes() ([]byte, error) {
	if len(bf.bits) == 0 {
		return []byte{}, nil
	}
	c := bf.Clone()
	c.PadToByte()
	return c.ToByteArray(c.Len(), 0)
}

// ToByte returns the 8 bits starting at offset as a byte.
func (bf *Bitfield) ToByte(offset int) (byte, error) {
	b, err := bf.fixed(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ToInt8 returns the 8 bits starting at offset as an int8.
func (bf *Bitfield) ToInt8(offset int) (int8, error) {
	v, err := bf.ToByte(offset)
	return int8(v), err
}

// ToUint16 returns the 16 bits starting at offset as a uint16.
func (bf *Bitfield) ToUint16(offset int) (uint16, error) {
	b, err := bf.fixed(offset, 2)
	if err != nil {
		return 0, err
	}
	return bf.byteOrder().Uint16(b), nil
}

// ToInt16 returns the 16 bits starting at offset as an int16.
func (bf *Bitfield) ToInt16(offset int) (int16, error) {
	v, err := bf.ToUint16(offset)
	return int16(v), err
}

// ToUint32 returns the 32 bits starting at offset as a uint32.
func (bf *Bitfield) ToUint32(offset int) (uint32, error) {
	b, err := bf.fixed(offset, 4)
	if err != nil {
		return 0, err
	}
	return bf.byteOrder().Uint32(b), nil
}

// ToInt32 returns the 32 bits starting at offset as an int32.
func (bf *Bitfield) ToInt32(offset int) (int32, error) {
	v, err := bf.ToUint32(offset)
	return int32(v), err
}

// ToUint64 returns the 64 bits starting at offset as a uint64.
func (bf *Bitfield) ToUint64(offset int) (uint64, error) {
	b, err := bf.fixed(offset, 8)
	if err != nil {
		return 0, err
	}
	return bf.byteOrder().Uint64(b), nil
}

// ToInt64 returns the 64 bits starting at offset as an int64.
func (bf *Bitfield) ToInt64(offset int) (int64, error) {
	v, err := bf.ToUint64(offset)
	return int64(v), err
}

// ToString decodes every whole byte after offset as UTF-8 text.
func (bf *Bitfield) ToString(offset int) (string, error) {
	if offset < 0 || offset > len(bf.bits) {
		return "", errors.Wrapf(ErrBoundaryOutOfRange, "offset %d, length %d", offset, len(bf.bits))
	}
	n := (len(bf.bits) - offset) &^ 7
	if n == 0 {
		return "", nil
	}
	b, err := bf.ToByteArray(n, offset)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (bf *Bitfield) fixed(offset int, size int) ([]byte, error) {
	if offset < 0 || offset > len(bf.bits)-size*8 {
		return nil, errors.Wrapf(ErrBoundaryOutOfRange, "need %d bits at offset %d, length %d", size*8, offset, len(bf.bits))
	}
	return bf.ToByteArray(size*8, offset)
}

func (bf *Bitfield) byteOrder() binary.ByteOrder {
	if bf.endian == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func fromBytes(value []byte, e Endianness) (*Bitfield, error) {
	bf := &Bitfield{bits: make([]bool, 0, len(value)*8), endian: e}
	r := bitio.NewReader(bytes.NewReader(value))
	var chunk [8]bool
	for range value {
		for j := 0; j < 8; j++ {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, errors.Wrap(err, "unpack bits")
			}
			if e == LittleEndian {
				chunk[7-j] = bit
			} else {
				chunk[j] = bit
			}
		}
		bf.bits = append(bf.bits, chunk[:]...)
	}
	return bf, nil
}

func mustFromBytes(value []byte) *Bitfield {
	bf, err := fromBytes(value, LittleEndian)
	assert.Assertf(err == nil, "unpack %d bytes: %v", len(value), err)
	return bf
}
