package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNode_Links(t *testing.T) {
	a := newLeaf('a', 1)
	b := newLeaf('b', 2)
	c := newLeaf('c', 4)
	ab := newInternal(a, b)
	root := newInternal(ab, c)

	require.Equal(t, 7, root.Weight())
	require.False(t, root.IsLeaf())
	require.True(t, a.IsLeaf())
	require.Nil(t, a.Left())
	require.Nil(t, a.Right())

	require.Same(t, ab, a.Parent())
	require.Same(t, root, ab.Parent())
	require.Nil(t, root.Parent())

	require.Equal(t, NoSide, root.Side())
	require.Equal(t, LeftSide, ab.Side())
	require.Equal(t, RightSide, c.Side())
	require.Equal(t, RightSide, b.Side())

	require.Equal(t, `"00"`, a.Path().String())
	require.Equal(t, `"01"`, b.Path().String())
	require.Equal(t, `"1"`, c.Path().String())
	require.Empty(t, root.Path())

	require.Equal(t, "leaf(0x61, weight 1)", a.String())
	require.Equal(t, "internal(weight 7)", root.String())
}

func TestCode(t *testing.T) {
	hc := MakeCode("0110")
	require.Equal(t, 4, hc.Size())
	require.Equal(t, `"0110"`, hc.String())
	require.Equal(t, `""`, Code(nil).String())
	require.Equal(t, "0110", hc.Bitfield().String())
	require.Panics(t, func() { MakeCode("012") })
}
