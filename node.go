package huffman

import (
	"fmt"
)

// Side identifies which child of its parent a Node is.
type Side byte

const (
	// NoSide is the Side of a root Node.
	NoSide Side = iota

	// LeftSide marks a left child, reached with a 0 bit.
	LeftSide

	// RightSide marks a right child, reached with a 1 bit.
	RightSide
)

// String returns the name of this Side.
func (s Side) String() string {
	switch s {
	case NoSide:
		return "NoSide"
	case LeftSide:
		return "LeftSide"
	case RightSide:
		return "RightSide"
	default:
		return fmt.Sprintf("Side(%d)", byte(s))
	}
}

// Node is a node of a Huffman tree.  A leaf carries a symbol; an internal
// node carries the combined weight of its subtree and always has exactly two
// children.
//
// The root owns the tree through the child edges.  Parent is a back
// reference only, used to derive codes by walking from a leaf upward.
//
type Node struct {
	left   *Node
	right  *Node
	parent *Node
	weight int
	symbol byte
	leaf   bool
}

func newLeaf(symbol byte, weight int) *Node {
	return &Node{symbol: symbol, weight: weight, leaf: true}
}

func newInternal(left, right *Node) *Node {
	n := &Node{left: left, right: right, weight: left.weight + right.weight}
	left.parent = n
	right.parent = n
	return n
}

// IsLeaf reports whether this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Symbol returns the byte value of a leaf.  It is 0 for internal nodes.
func (n *Node) Symbol() byte {
	return n.symbol
}

// Weight returns the frequency of a leaf, or the sum of the frequencies in
// the subtree of an internal node.  Trees read back from a compressed stream
// carry zero weights.
func (n *Node) Weight() int {
	return n.weight
}

// Left returns the left child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Side returns which child of its parent this Node is.
func (n *Node) Side() Side {
	switch {
	case n.parent == nil:
		return NoSide
	case n.parent.left == n:
		return LeftSide
	default:
		return RightSide
	}
}

// Path returns the Code leading from the root to this Node.  The root's Path
// is empty.
func (n *Node) Path() Code {
	var hc Code
	for cur := n; cur.parent != nil; cur = cur.parent {
		hc = append(hc, cur.Side() == RightSide)
	}
	for i, j := 0, len(hc)-1; i < j; i, j = i+1, j-1 {
		hc[i], hc[j] = hc[j], hc[i]
	}
	return hc
}

// String returns a short description of this Node.
func (n *Node) String() string {
	if n.leaf {
		return fmt.Sprintf("leaf(%#02x, weight %d)", n.symbol, n.weight)
	}
	return fmt.Sprintf("internal(weight %d)", n.weight)
}

var _ fmt.Stringer = (*Node)(nil)
