package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrArityMismatch signals points of inconsistent length in one tree.
	ErrArityMismatch = errors.New("kdtree: arity mismatch")
	// ErrUnsupportedOperation marks operations a built tree does not support.
	ErrUnsupportedOperation = errors.New("kdtree: unsupported operation")
	// ErrInvariantViolation is reported by Check when the tree shape is broken.
	ErrInvariantViolation = errors.New("kdtree: invariant violation")
)

// ArityMismatchError reports the first point whose length differs from the
// tree's dimension.
type ArityMismatchError struct {
	Index int // position of the offending point in the input
	Want  int // dimension of the tree (length of the first point)
	Got   int // length of the offending point
}

func (e *ArityMismatchError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("%s: point %d has no coordinates", ErrArityMismatch, e.Index)
	}
	return fmt.Sprintf("%s: point %d has %d coordinates, want %d", ErrArityMismatch, e.Index, e.Got, e.Want)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}
