package huffman

import (
	"github.com/pkg/errors"
)

// ErrCorruptData is returned by Decompress when the input is not a valid
// compressed stream.  No partial output is returned alongside it.
var ErrCorruptData = errors.New("huffman: corrupt data")

func corrupt(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptData, format, args...)
}
