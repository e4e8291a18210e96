package kdtree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - every stored point has K coordinates;
//   - for a node at depth d with axis a = d mod K, every point of its left
//     subtree has coordinate a <= the node's, every point of its right
//     subtree has coordinate a >= the node's;
//   - the number of reachable points equals Len().
//
// It visits each subtree once per ancestor and is meant for tests and
// debugging.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		if t != nil && t.size != 0 {
			return fmt.Errorf("%w: empty tree reports %d points", ErrInvariantViolation, t.size)
		}
		return nil
	}
	if t.k <= 0 {
		return fmt.Errorf("%w: non-empty tree must have k > 0", ErrInvariantViolation)
	}
	count, err := t.checkNode(t.root, 0)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable, %d recorded)", ErrInvariantViolation, count, t.size)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *Node[T], depth int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if len(n.location) != t.k {
		return 0, fmt.Errorf("%w: point %s at depth %d has %d coordinates, want %d",
			ErrInvariantViolation, n.location, depth, len(n.location), t.k)
	}
	axis := depth % t.k
	split := n.location[axis]
	for p := range n.left.All() {
		if p[axis] > split {
			return 0, fmt.Errorf("%w: %s left of %s exceeds split on axis %d",
				ErrInvariantViolation, p, n.location, axis)
		}
	}
	for p := range n.right.All() {
		if p[axis] < split {
			return 0, fmt.Errorf("%w: %s right of %s is below split on axis %d",
				ErrInvariantViolation, p, n.location, axis)
		}
	}
	left, err := t.checkNode(n.left, depth+1)
	if err != nil {
		return 0, err
	}
	right, err := t.checkNode(n.right, depth+1)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
