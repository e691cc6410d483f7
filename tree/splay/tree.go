package splay

import (
	"github.com/xlab/treeprint"
	"go.lepak.sg/splay/tree"
	"golang.org/x/exp/constraints"
)

// Tree is a splay tree that keeps track of its own root.
//
// The zero Tree may be used immediately. Tree should not be copied
// after the first insertion, use &Tree{} when creating one.
//
// Every method except Len, Height, Verify and String restructures the
// tree, so Tree is not safe for concurrent use, including concurrent
// calls to Find or Contains.
//
// This tree implementation does not support removal.
type Tree[T constraints.Ordered] struct {
	// don't return nodes directly - client could mutate keys or children!
	root *tree.Node[T]
	len  int
}

// Insert inserts k into the tree. Duplicates are kept.
func (t *Tree[T]) Insert(k T) {
	t.root = Insert(t.root, k)
	t.len++
}

// Find searches for k and splays what it finds to the root.
// If k is in the tree, Find returns k and true.
// Otherwise it returns the nearest key that the search ended on
// (the next smaller or next larger key) and false.
// On an empty tree it returns the zero T and false.
func (t *Tree[T]) Find(k T) (nearest T, ok bool) {
	t.root = Find(t.root, k)
	if t.root == nil {
		return
	}

	return t.root.Key, t.root.Key == k
}

// Contains searches for k and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	_, ok := t.Find(k)
	return ok
}

// Len returns the number of keys in the tree, counting duplicates.
func (t *Tree[_]) Len() int {
	return t.len
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*tree.Node[T]{t.root}
	var next []*tree.Node[T]

	for len(level) > 0 {
		height++
		next = next[:0]
		for _, n := range level {
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level, next = next, level
	}

	return height
}

// Verify checks the tree's structure. See the package-level Verify.
func (t *Tree[T]) Verify() error {
	return Verify(t.root)
}

// String returns a string representation of the tree,
// with the left and right children of each node marked L and R:
//
//	4
//	├── [L]  2
//	│   ├── [L]  1
//	│   └── [R]  3
//	└── [R]  6
func (t *Tree[T]) String() string {
	if t.root == nil {
		return ""
	}

	type frame struct {
		n      *tree.Node[T]
		branch treeprint.Tree
	}

	out := treeprint.NewWithRoot(t.root.Key)
	stack := []frame{{t.root, out}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// branches print in the order they are added
		if f.n.Left != nil {
			stack = append(stack, frame{f.n.Left, f.branch.AddMetaBranch("L", f.n.Left.Key)})
		}
		if f.n.Right != nil {
			stack = append(stack, frame{f.n.Right, f.branch.AddMetaBranch("R", f.n.Right.Key)})
		}
	}

	return out.String()
}
