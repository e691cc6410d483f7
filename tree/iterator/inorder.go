package iterator

import (
	"go.lepak.sg/splay/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// It walks the tree by following the Parent links, so it
// only gives a correct sequence if those links are intact.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
// Note that searching a splay tree mutates it.
type InOrder[T constraints.Ordered] struct {
	root, at *tree.Node[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T constraints.Ordered](root *tree.Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil {
		return false
	}

	if i.at == nil {
		// If Next returned false, calling it again starts over
		// from the first key in order.
		i.at = i.root
		if i.at == nil {
			return false
		}

		for i.at.Left != nil {
			i.at = i.at.Left
		}
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right

		for i.at.Left != nil {
			i.at = i.at.Left
		}

		return true
	}

	// may not succeed
	var child *tree.Node[T]

	for i.at != nil && i.at != i.root {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	i.at = nil
	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key
}
