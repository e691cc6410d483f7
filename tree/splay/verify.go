package splay

import (
	"errors"
	"fmt"

	"go.lepak.sg/splay/tree"
	"go.lepak.sg/splay/tree/iterator"
	"golang.org/x/exp/constraints"
)

var (
	ErrRootHasParent = errors.New("root has a parent")
	ErrParentLink    = errors.New("child does not point back at its parent")
	ErrCycle         = errors.New("node is reachable more than once")
	ErrOrder         = errors.New("keys are out of order")
)

// Verify checks the structure of the tree rooted at root and returns
// the first problem found, wrapping one of the Err* values above.
// It checks that:
//   - root has no parent
//   - every child's Parent points at the node holding it
//   - no node can be reached twice by following child links
//   - an in-order walk gives non-decreasing keys
//
// Verify does not modify the tree. A nil root is a valid empty tree.
func Verify[T constraints.Ordered](root *tree.Node[T]) error {
	if root == nil {
		return nil
	}

	if root.Parent != nil {
		return fmt.Errorf("%w: root %v", ErrRootHasParent, root.Key)
	}

	if err := verifyLinks(root); err != nil {
		return err
	}

	// The links are consistent past this point, so walking
	// by parent links terminates.
	i := iterator.NewInOrder(root)
	first := true
	var prev T

	for i.Next() {
		k := i.Item()
		if !first && k < prev {
			return fmt.Errorf("%w: %v comes after %v", ErrOrder, k, prev)
		}
		first, prev = false, k
	}

	return nil
}

// verifyLinks walks the tree by child links.
func verifyLinks[T any](root *tree.Node[T]) error {
	seen := make(map[*tree.Node[T]]struct{})
	stack := []*tree.Node[T]{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: %v", ErrCycle, n.Key)
		}
		seen[n] = struct{}{}

		for _, c := range [2]*tree.Node[T]{n.Left, n.Right} {
			if c == nil {
				continue
			}
			if c.Parent != n {
				return fmt.Errorf("%w: %v under %v", ErrParentLink, c.Key, n.Key)
			}
			stack = append(stack, c)
		}
	}

	return nil
}
