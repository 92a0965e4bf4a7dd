package bitfield

import (
	"io"

	"github.com/pkg/errors"
)

// Reader consumes a Bitfield from index 0 onward without modifying it.
type Reader struct {
	bf  *Bitfield
	pos int
}

// NewReader returns a Reader positioned at the first bit of bf.
func NewReader(bf *Bitfield) *Reader {
	return &Reader{bf: bf}
}

// ReadBool returns the next bit.  It returns io.ErrUnexpectedEOF once every
// bit has been consumed.
func (r *Reader) ReadBool() (bool, error) {
	if r.pos >= len(r.bf.bits) {
		return false, io.ErrUnexpectedEOF
	}
	bit := r.bf.bits[r.pos]
	r.pos++
	return bit, nil
}

// ReadByte returns the next 8 bits as a byte, decoded under the Bitfield's
// endianness.
func (r *Reader) ReadByte() (byte, error) {
	if r.Remaining() < 8 {
		return 0, io.ErrUnexpectedEOF
	}
	b, err := r.bf.ToByte(r.pos)
	if err != nil {
		return 0, errors.Wrap(err, "read byte")
	}
	r.pos += 8
	return b, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.bf.bits) - r.pos
}

// Offset returns the index of the next bit to be read.
func (r *Reader) Offset() int {
	return r.pos
}

var _ io.ByteReader = (*Reader)(nil)
