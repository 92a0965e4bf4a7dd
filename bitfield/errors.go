package bitfield

import (
	"github.com/pkg/errors"
)

var (
	// ErrOutOfRange is returned when an index or length lies outside the
	// current bounds of the Bitfield.
	ErrOutOfRange = errors.New("bitfield: index out of range")

	// ErrBoundaryOutOfRange is returned when a conversion needs more bits
	// than are available after the given offset.
	ErrBoundaryOutOfRange = errors.New("bitfield: not enough bits after offset")

	// ErrInvalidArgument is returned for malformed arguments, such as a
	// negative count or a zero-length operand.
	ErrInvalidArgument = errors.New("bitfield: invalid argument")

	// ErrNullArgument is returned when a required argument is nil.
	ErrNullArgument = errors.New("bitfield: nil argument")
)

func outOfRange(index, length int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, length %d", index, length)
}
