package huffman

import (
	"github.com/chronos-tachyon/huffman/v2/bitfield"
)

// maxTreeDepth bounds the depth of any leaf: a tree over NumSymbols leaves
// is at most NumSymbols-1 levels deep.
const maxTreeDepth = NumSymbols - 1

// writeTree appends the pre-order serialization of the tree rooted at n to
// out: "1" and the 8-bit symbol for a leaf, "0" followed by the left and
// right subtrees for an internal node.  out must be BigEndian so that the
// symbol is written MSB first.
func writeTree(out *bitfield.Bitfield, n *Node) {
	if n.leaf {
		out.Add(true)
		_ = out.Append(bitfield.FromByte(n.symbol))
		return
	}
	out.Add(false)
	writeTree(out, n.left)
	writeTree(out, n.right)
}

// treeReader rebuilds a tree written by writeTree.
type treeReader struct {
	r      *bitfield.Reader
	leaves int
}

func readTree(r *bitfield.Reader) (*Node, error) {
	tr := treeReader{r: r}
	return tr.read(0)
}

func (tr *treeReader) read(depth int) (*Node, error) {
	offset := tr.r.Offset()
	isLeaf, err := tr.r.ReadBool()
	if err != nil {
		return nil, corrupt("truncated tree at bit %d", offset)
	}

	if isLeaf {
		tr.leaves++
		if tr.leaves > NumSymbols {
			return nil, corrupt("tree has more than %d leaves", NumSymbols)
		}
		symbol, err := tr.r.ReadByte()
		if err != nil {
			return nil, corrupt("truncated leaf at bit %d", offset)
		}
		return newLeaf(symbol, 0), nil
	}

	if depth >= maxTreeDepth {
		return nil, corrupt("tree deeper than %d levels at bit %d", maxTreeDepth, offset)
	}
	left, err := tr.read(depth + 1)
	if err != nil {
		return nil, err
	}
	right, err := tr.read(depth + 1)
	if err != nil {
		return nil, err
	}
	return newInternal(left, right), nil
}
