package kdtree

import "iter"

// Node holds one point of a KD-tree and its two subtrees. Nodes are built once
// and never mutated.
type Node[T Coordinate] struct {
	location Point[T]
	left     *Node[T]
	right    *Node[T]
}

// newNode takes ownership of both (already built) subtrees.
func newNode[T Coordinate](location Point[T], left, right *Node[T]) *Node[T] {
	return &Node[T]{
		location: location,
		left:     left,
		right:    right,
	}
}

// Location returns the point stored at the node. The returned point must not
// be modified.
func (n *Node[T]) Location() Point[T] {
	return n.location
}

// Left returns the subtree below the split plane, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the subtree above the split plane, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf checks if the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// All walks the subtree rooted at n in pre-order: the node, then its left
// subtree, then its right subtree.
//
// Every call starts a fresh walk; the tree is never modified.
func (n *Node[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if n == nil {
			return
		}
		stack := []*Node[T]{n}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top.location) {
				return
			}
			// right first so left is popped first
			if top.right != nil {
				stack = append(stack, top.right)
			}
			if top.left != nil {
				stack = append(stack, top.left)
			}
		}
	}
}

// height of the subtree, 0 for nil
func (n *Node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
