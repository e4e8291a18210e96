package kdtree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Coordinate is the numeric type a point is made of.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// Point is an ordered tuple of K coordinates. All points of one tree share K.
type Point[T Coordinate] []T

// Dims returns the number of coordinates.
func (p Point[T]) Dims() int {
	return len(p)
}

// Equal reports whether p and q have the same coordinates.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of p that does not share its backing array.
func (p Point[T]) Clone() Point[T] {
	if p == nil {
		return nil
	}
	return append(Point[T](nil), p...)
}

func (p Point[T]) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprint(c)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// squared euclidean distance, computed in float64 so integer points cannot overflow
func (p Point[T]) sqDist(q Point[T]) float64 {
	var sum float64
	for i := range p {
		d := float64(p[i]) - float64(q[i])
		sum += d * d
	}
	return sum
}

// Bounds is a closed axis-aligned box. Min and Max have the same length.
type Bounds[T Coordinate] struct {
	Min Point[T]
	Max Point[T]
}

// NewBounds returns the tight bounding box of points, or false if points is
// empty or the points do not share one dimension.
func NewBounds[T Coordinate](points ...Point[T]) (Bounds[T], bool) {
	if len(points) == 0 || len(points[0]) == 0 {
		return Bounds[T]{}, false
	}
	b := Bounds[T]{Min: points[0].Clone(), Max: points[0].Clone()}
	for _, p := range points[1:] {
		if len(p) != len(b.Min) {
			return Bounds[T]{}, false
		}
		b.extend(p)
	}
	return b, true
}

func (b *Bounds[T]) extend(p Point[T]) {
	for i, c := range p {
		if c < b.Min[i] {
			b.Min[i] = c
		}
		if c > b.Max[i] {
			b.Max[i] = c
		}
	}
}

// Dims returns the dimension of the box.
func (b Bounds[T]) Dims() int {
	return len(b.Min)
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds[T]) Contains(p Point[T]) bool {
	if len(p) != len(b.Min) || len(p) != len(b.Max) {
		return false
	}
	for i, c := range p {
		if c < b.Min[i] || c > b.Max[i] {
			return false
		}
	}
	return true
}

// Cut splits the box along axis at value into the part below (Max[axis] = at)
// and the part above (Min[axis] = at).
func (b Bounds[T]) Cut(axis int, at T) (below, above Bounds[T]) {
	below = Bounds[T]{Min: b.Min.Clone(), Max: b.Max.Clone()}
	above = Bounds[T]{Min: b.Min.Clone(), Max: b.Max.Clone()}
	below.Max[axis] = at
	above.Min[axis] = at
	return below, above
}

// Pad returns a copy of the box grown by margin on every side.
// Integer coordinates saturate instead of wrapping: an unsigned box stops at 0
// and at the largest value of T, a signed one keeps an edge that would
// overflow.
func (b Bounds[T]) Pad(margin T) Bounds[T] {
	out := Bounds[T]{Min: b.Min.Clone(), Max: b.Max.Clone()}
	var zero T
	unsigned := zero-1 > zero
	for i := range out.Min {
		lo, hi := out.Min[i]-margin, out.Max[i]+margin
		if margin > 0 && lo > out.Min[i] {
			lo = out.Min[i]
			if unsigned {
				lo = zero
			}
		}
		if margin > 0 && hi < out.Max[i] {
			hi = out.Max[i]
			if unsigned {
				hi = zero - 1
			}
		}
		out.Min[i], out.Max[i] = lo, hi
	}
	return out
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("[%s %s]", b.Min, b.Max)
}
