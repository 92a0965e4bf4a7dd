package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, e Endianness) *Bitfield {
	t.Helper()
	bf, err := Parse(s, e)
	require.NoError(t, err)
	return bf
}

func TestNew(t *testing.T) {
	bf := New(BigEndian)
	require.Equal(t, 0, bf.Len())
	require.Equal(t, BigEndian, bf.Endian())

	var zero Bitfield
	require.Equal(t, LittleEndian, zero.Endian())
	zero.Add(true)
	require.Equal(t, "1", zero.String())
}

func TestNewSize(t *testing.T) {
	bf, err := NewSize(5, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, "00000", bf.String())

	_, err = NewSize(-1, LittleEndian)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromBools(t *testing.T) {
	src := []bool{true, false, true}
	bf, err := FromBools(src, BigEndian)
	require.NoError(t, err)
	require.Equal(t, "101", bf.String())

	src[0] = false
	require.Equal(t, "101", bf.String(), "FromBools must copy")

	_, err = FromBools(nil, LittleEndian)
	require.ErrorIs(t, err, ErrNullArgument)

	empty, err := FromBools([]bool{}, LittleEndian)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

func TestClone(t *testing.T) {
	bf := mustParse(t, "1100", BigEndian)
	c := bf.Clone()
	require.True(t, bf.Equal(c))

	require.NoError(t, c.Flip(0))
	require.Equal(t, "1100", bf.String())
	require.Equal(t, "0100", c.String())
}

func TestIndexing(t *testing.T) {
	bf := mustParse(t, "0101", LittleEndian)

	bit, err := bf.Get(1)
	require.NoError(t, err)
	require.True(t, bit)

	require.NoError(t, bf.Set(0, true))
	require.NoError(t, bf.Flip(3))
	require.Equal(t, "1100", bf.String())

	for _, i := range []int{-1, 4} {
		_, err = bf.Get(i)
		require.ErrorIs(t, err, ErrOutOfRange)
		require.ErrorIs(t, bf.Set(i, true), ErrOutOfRange)
		require.ErrorIs(t, bf.Flip(i), ErrOutOfRange)
		require.ErrorIs(t, bf.RemoveAt(i), ErrOutOfRange)
	}
}

func TestListOperations(t *testing.T) {
	bf := mustParse(t, "000", LittleEndian)

	require.NoError(t, bf.Insert(1, true))
	require.Equal(t, "0100", bf.String())
	require.NoError(t, bf.Insert(4, true))
	require.Equal(t, "01001", bf.String())
	require.ErrorIs(t, bf.Insert(6, true), ErrOutOfRange)

	require.Equal(t, 1, bf.IndexOf(true))
	require.True(t, bf.Contains(true))
	require.True(t, bf.Remove(true))
	require.Equal(t, "0001", bf.String())

	require.NoError(t, bf.RemoveAt(3))
	require.Equal(t, "000", bf.String())
	require.False(t, bf.Remove(true))
	require.Equal(t, -1, bf.IndexOf(true))

	bf.AddBools(true, true)
	require.Equal(t, []bool{false, false, false, true, true}, bf.Bools())

	bf.Clear()
	require.Equal(t, 0, bf.Len())
	require.Equal(t, LittleEndian, bf.Endian())
}

func TestByteCounts(t *testing.T) {
	bf := mustParse(t, "1010_1010_101", LittleEndian)
	require.False(t, bf.ByteDivisible())
	require.Equal(t, 1, bf.ByteCount())
	require.Equal(t, 5, bf.CountToByteDivisible())

	bf.PadToByte()
	require.True(t, bf.ByteDivisible())
	require.Equal(t, 0, bf.CountToByteDivisible())
	require.Equal(t, "1010101010100000", bf.String())
}

func TestReverse(t *testing.T) {
	bf := mustParse(t, "1101", LittleEndian)
	bf.Reverse()
	require.Equal(t, "1011", bf.String())
	require.Equal(t, BigEndian, bf.Endian())

	bf.Reverse()
	require.True(t, bf.Equal(mustParse(t, "1101", LittleEndian)))
}

func TestAppend(t *testing.T) {
	be := mustParse(t, "1", BigEndian)
	require.NoError(t, be.Append(FromByte(0x41)))
	require.Equal(t, "101000001", be.String())

	require.NoError(t, be.Append(mustParse(t, "011", BigEndian)))
	require.Equal(t, "101000001011", be.String())

	require.ErrorIs(t, be.Append(nil), ErrNullArgument)
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "10", LittleEndian)
	require.True(t, a.Equal(mustParse(t, "10", LittleEndian)))
	require.False(t, a.Equal(mustParse(t, "10", BigEndian)))
	require.False(t, a.Equal(mustParse(t, "100", LittleEndian)))
	require.False(t, a.Equal(mustParse(t, "11", LittleEndian)))
	require.False(t, a.Equal(nil))
}

func TestParse(t *testing.T) {
	_, err := Parse("10x", LittleEndian)
	require.ErrorIs(t, err, ErrInvalidArgument)

	bf := mustParse(t, "10 01", BigEndian)
	require.Equal(t, `bitfield.Parse("1001", bitfield.BigEndian)`, bf.GoString())
	require.Equal(t, "Endianness(7)", Endianness(7).String())
}

func TestPad(t *testing.T) {
	le := mustParse(t, "11", LittleEndian)
	require.NoError(t, le.Pad(3, false))
	require.Equal(t, "11000", le.String())

	be := mustParse(t, "11", BigEndian)
	require.NoError(t, be.Pad(3, false))
	require.Equal(t, "00011", be.String())

	require.NoError(t, be.Pad(0, true))
	require.Equal(t, "00011", be.String())
	require.ErrorIs(t, be.Pad(-1, true), ErrInvalidArgument)

	be.PadToByte()
	require.Equal(t, "00000011", be.String())
}

func TestPadTrimInverse(t *testing.T) {
	for _, e := range []Endianness{LittleEndian, BigEndian} {
		for _, bit := range []bool{false, true} {
			for n := 0; n < 10; n++ {
				// neither end of orig equals bit
				orig := mustParse(t, "1011", e)
				if bit {
					orig = mustParse(t, "0100", e)
				}
				bf := orig.Clone()
				require.NoError(t, bf.Pad(n, bit))
				require.Equal(t, orig.Len()+n, bf.Len())

				byCount := bf.Clone()
				require.NoError(t, byCount.TrimEndianN(n))
				require.True(t, orig.Equal(byCount), "%s n=%d bit=%v: %s", e, n, bit, byCount)

				byValue := bf.Clone()
				byValue.TrimEndian(bit)
				require.True(t, orig.Equal(byValue), "%s n=%d bit=%v: %s", e, n, bit, byValue)
			}
		}
	}
}

func TestTrim(t *testing.T) {
	bf := mustParse(t, "0011010100", LittleEndian)
	bf.TrimStart(false)
	require.Equal(t, "11010100", bf.String())
	bf.TrimEnd(false)
	require.Equal(t, "110101", bf.String())
	bf.Trim(true)
	require.Equal(t, "010", bf.String())

	all := mustParse(t, "1111", BigEndian)
	all.TrimStart(true)
	require.Equal(t, 0, all.Len())
	all.TrimEnd(true)
	require.Equal(t, 0, all.Len())

	bf = mustParse(t, "110011", BigEndian)
	require.NoError(t, bf.TrimStartN(2))
	require.Equal(t, "0011", bf.String())
	require.NoError(t, bf.TrimEndN(1))
	require.Equal(t, "001", bf.String())
	require.ErrorIs(t, bf.TrimStartN(4), ErrOutOfRange)
	require.ErrorIs(t, bf.TrimEndN(-1), ErrOutOfRange)
	require.NoError(t, bf.TrimEndN(3))
	require.Equal(t, 0, bf.Len())
}
