package kdtree

import (
	"cmp"
	"iter"
	"log/slog"
	"math"
	"slices"
)

// Tree is a KD-tree built once from a complete point set.
//
// The zero value is an empty tree. A Tree is not safe for concurrent use while
// it is being built; once Build returns it may be read from many goroutines.
type Tree[T Coordinate] struct {
	root *Node[T]
	k    int
	size int
}

// Split describes one node of the tree as a split plane: the node's point, the
// axis it splits on, its depth and the region of space it partitions.
type Split[T Coordinate] struct {
	Location Point[T]
	Axis     int
	Depth    int
	Region   Bounds[T]
}

// Build creates a balanced KD-tree from points.
//
// The dimension K of the tree is the length of the first point, every other
// point must have the same length. An empty input yields an empty tree.
//
// At depth d the points are sorted by coordinate d mod K and the point at
// index len/2 becomes the node; the points before it form the left subtree
// and the points after it the right subtree. The caller's slice is not
// reordered.
//
// Returns:
//   - the tree, or an *ArityMismatchError (matching ErrArityMismatch).
func Build[T Coordinate](points []Point[T]) (*Tree[T], error) {
	if len(points) == 0 {
		return &Tree[T]{}, nil
	}
	k := len(points[0])
	for i, p := range points {
		if k == 0 || len(p) != k {
			return nil, &ArityMismatchError{Index: i, Want: k, Got: len(p)}
		}
	}

	work := slices.Clone(points)
	tree := &Tree[T]{
		root: build(work, 0, k),
		k:    k,
		size: len(points),
	}
	slog.Debug("kdtree built", "points", tree.size, "k", k, "height", tree.Height())
	return tree, nil
}

// build returns the subtree for points at the given depth. Both children are
// materialized before the node holding them is created.
func build[T Coordinate](points []Point[T], depth, k int) *Node[T] {
	if len(points) == 0 {
		return nil
	}
	axis := depth % k
	slices.SortFunc(points, func(a, b Point[T]) int {
		return cmp.Compare(a[axis], b[axis])
	})
	median := len(points) / 2

	left := build(points[:median], depth+1, k)
	right := build(points[median+1:], depth+1, k)
	return newNode(points[median], left, right)
}

// Len returns the number of points in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// K returns the dimension of the tree, 0 for an empty tree.
func (t *Tree[T]) K() int {
	if t == nil {
		return 0
	}
	return t.k
}

// IsEmpty checks if the tree holds no points.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

// Axis returns the split axis used at depth.
func (t *Tree[T]) Axis(depth int) int {
	if t == nil || t.k == 0 {
		return 0
	}
	return depth % t.k
}

// All returns a pre-order walk over every point of the tree.
// An empty tree yields nothing.
func (t *Tree[T]) All() iter.Seq[Point[T]] {
	return t.Root().All()
}

// Points collects the pre-order walk into a slice.
func (t *Tree[T]) Points() []Point[T] {
	return slices.Collect(t.All())
}

// Bounds returns the tight bounding box of all points, false if the tree is
// empty.
func (t *Tree[T]) Bounds() (Bounds[T], bool) {
	if t.IsEmpty() {
		return Bounds[T]{}, false
	}
	b := Bounds[T]{Min: t.root.location.Clone(), Max: t.root.location.Clone()}
	for p := range t.All() {
		b.extend(p)
	}
	return b, true
}

// Splits walks the tree in pre-order and yields the split plane of every node.
// The root partitions frame; each child partitions the half of its parent's
// region on its own side of the parent's split coordinate.
//
// frame must have the tree's dimension, otherwise nothing is yielded.
func (t *Tree[T]) Splits(frame Bounds[T]) iter.Seq[Split[T]] {
	return func(yield func(Split[T]) bool) {
		if t.IsEmpty() || frame.Dims() != t.k || len(frame.Max) != t.k {
			return
		}
		type item struct {
			node   *Node[T]
			depth  int
			region Bounds[T]
		}
		stack := []item{{t.root, 0, frame}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			axis := top.depth % t.k
			if !yield(Split[T]{
				Location: top.node.location,
				Axis:     axis,
				Depth:    top.depth,
				Region:   top.region,
			}) {
				return
			}
			below, above := top.region.Cut(axis, top.node.location[axis])
			if top.node.right != nil {
				stack = append(stack, item{top.node.right, top.depth + 1, above})
			}
			if top.node.left != nil {
				stack = append(stack, item{top.node.left, top.depth + 1, below})
			}
		}
	}
}

// Contains reports whether a point equal to p is stored in the tree.
// Points equal to a node on its split coordinate may sit on either side, so
// both subtrees are searched in that case.
func (t *Tree[T]) Contains(p Point[T]) bool {
	if t.IsEmpty() || len(p) != t.k {
		return false
	}
	return t.contains(t.root, p, 0)
}

func (t *Tree[T]) contains(n *Node[T], p Point[T], depth int) bool {
	for n != nil {
		if n.location.Equal(p) {
			return true
		}
		axis := depth % t.k
		switch c := cmp.Compare(p[axis], n.location[axis]); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			if t.contains(n.left, p, depth+1) {
				return true
			}
			n = n.right
		}
		depth++
	}
	return false
}

// InRange returns every point inside the closed box b, in pre-order.
// Subtrees entirely on the far side of a split plane are skipped.
func (t *Tree[T]) InRange(b Bounds[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if t.IsEmpty() || b.Dims() != t.k || len(b.Max) != t.k {
			return
		}
		type item struct {
			node  *Node[T]
			depth int
		}
		stack := []item{{t.root, 0}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			loc := top.node.location
			if b.Contains(loc) && !yield(loc) {
				return
			}
			axis := top.depth % t.k
			if top.node.right != nil && b.Max[axis] >= loc[axis] {
				stack = append(stack, item{top.node.right, top.depth + 1})
			}
			if top.node.left != nil && b.Min[axis] <= loc[axis] {
				stack = append(stack, item{top.node.left, top.depth + 1})
			}
		}
	}
}

// Nearest returns the stored point closest to q and its squared euclidean
// distance. It returns false for an empty tree or if q has the wrong length.
// A query with infinite or NaN coordinates still returns a stored point; its
// distance is then +Inf or NaN.
func (t *Tree[T]) Nearest(q Point[T]) (Point[T], float64, bool) {
	if t.IsEmpty() || len(q) != t.k {
		return nil, 0, false
	}
	var best *Node[T]
	bestDist := math.Inf(1)
	t.nearest(t.root, q, 0, &best, &bestDist)
	return best.location, bestDist, true
}

func (t *Tree[T]) nearest(n *Node[T], q Point[T], depth int, best **Node[T], bestDist *float64) {
	if n == nil {
		return
	}
	// the first node always counts, its distance may be +Inf or NaN
	if d := n.location.sqDist(q); *best == nil || d < *bestDist {
		*best = n
		*bestDist = d
	}
	axis := depth % t.k
	diff := float64(q[axis]) - float64(n.location[axis])

	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.nearest(near, q, depth+1, best, bestDist)
	// the far side can only hold a closer point if the split plane is closer
	if diff*diff <= *bestDist {
		t.nearest(far, q, depth+1, best, bestDist)
	}
}

// Remove is not supported: a KD-tree is built once from its full point set.
func (t *Tree[T]) Remove(p Point[T]) error {
	return ErrUnsupportedOperation
}
