package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a cell of a binary tree with parent links.
// A node is owned by whichever node holds it in Left or Right.
// Parent is only a back pointer and must be nil or point at
// the node whose Left or Right is this node.
type Node[T any] struct {
	Key                 T
	Left, Right, Parent *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// ReplaceChild makes whichever child slot of n currently holds from
// hold to instead. It does nothing if n is nil or from is not a child
// of n. Parent links are left alone, the caller fixes those up.
func (n *Node[T]) ReplaceChild(from, to *Node[T]) {
	if n == nil {
		return
	}

	if n.Left == from {
		n.Left = to
	}

	if n.Right == from {
		n.Right = to
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
