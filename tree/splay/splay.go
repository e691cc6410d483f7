// Package splay implements a splay tree: a binary search tree that
// moves every node it touches to the root, which gives amortized
// O(log n) searches and insertions without any balance bookkeeping.
//
// The functions in this package operate on *tree.Node values and
// always return the new root. Searching restructures the tree, so the
// root passed in is generally not the root any more once the call
// returns, and the returned node must be used for the next call.
//
// Nothing here is safe for concurrent use, not even Find.
// Wrap every call sequence in a single exclusive lock if a tree has
// to be shared between goroutines.
//
// Duplicate keys are accepted. Equal keys end a search, and a
// duplicate is inserted above (and in order after) the equal key
// that search stops at. An in-order walk of the tree is therefore
// non-decreasing rather than strictly increasing.
package splay

import (
	"go.lepak.sg/splay/tree"
	"golang.org/x/exp/constraints"
)

// Expose splays n to the root of its tree by rotations.
// When Expose returns, n.Parent is nil.
//
// Each step looks at n's parent p and grandparent g:
//   - zig: p is the root. Rotate p once to bring n up.
//   - zig-zig: n and p are both left (or both right) children.
//     Rotate g, then p, in the same direction.
//   - zig-zag: n is a left child of a right child, or the other way
//     round. Rotate p, then g, in opposite directions.
//
// The order of the rotations in the zig-zig case is what gives the
// amortized bound; rotating n up one level at a time does not.
func Expose[T any](n *tree.Node[T]) {
	if n == nil {
		return
	}

	for n.Parent != nil {
		p := n.Parent
		g := p.Parent

		switch {
		case g == nil:
			if p.Left == n {
				p.RotateRight()
			} else {
				p.RotateLeft()
			}
		case g.Left == p && p.Left == n:
			g.RotateRight()
			p.RotateRight()
		case g.Right == p && p.Right == n:
			g.RotateLeft()
			p.RotateLeft()
		case g.Left == p:
			// n is p.Right
			p.RotateLeft()
			g.RotateRight()
		default:
			// g.Right == p, n is p.Left
			p.RotateRight()
			g.RotateLeft()
		}
	}
}

// Find searches the tree rooted at root for k and returns the new root.
// If k is in the tree, the node holding it is splayed and returned.
// Otherwise the last node visited is splayed and returned instead,
// and its key is either the next smaller or the next larger key than k.
// Callers tell the two apart by comparing the returned node's Key to k.
// Find returns nil only if root is nil.
func Find[T constraints.Ordered](root *tree.Node[T], k T) *tree.Node[T] {
	n, last := root, root

	for n != nil {
		last = n
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			n = nil
		default:
			panic("unreachable")
		}
	}

	Expose(last)
	return last
}

// Insert adds a new node holding k to the tree rooted at root
// and returns it, since it is the new root.
// k is inserted even if it is already in the tree.
//
// Insert first splays the node f that Find stops at, then puts the
// new node above it, splitting f's subtrees between the two so that the
// in-order sequence is kept:
//
//	  k < f:            k >= f:
//	    f        k        f         k
//	   / \      / \      / \       / \
//	  a   b -> a   f    a   b ->  f   b
//	                \            /
//	                 b          a
func Insert[T constraints.Ordered](root *tree.Node[T], k T) *tree.Node[T] {
	n := tree.NodeOf(k)
	if root == nil {
		return n
	}

	root = Find(root, k)

	if tree.Compare(k, root.Key) == tree.Less {
		n.Left, root.Left = root.Left, nil
		n.Right = root
	} else {
		n.Right, root.Right = root.Right, nil
		n.Left = root
	}

	root.Parent = n
	if n.Left != nil {
		n.Left.Parent = n
	}
	if n.Right != nil {
		n.Right.Parent = n
	}

	return n
}
