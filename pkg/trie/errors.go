package trie

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a sequence item with no matching child while tracing.
	ErrNotFound = errors.New("trie: sequence not found")
	// ErrUnsupportedOperation marks operations the trie does not support.
	ErrUnsupportedOperation = errors.New("trie: unsupported operation")
)

// NotFoundError reports where a traced sequence left the trie.
type NotFoundError struct {
	Position int  // index of the first unmatched item in the sequence
	Item     any  // the unmatched item
	Empty    bool // nothing was inserted, not even the empty sequence
}

func (e *NotFoundError) Error() string {
	if e.Empty {
		return fmt.Sprintf("%s: trie is empty", ErrNotFound)
	}
	return fmt.Sprintf("%s: no child %v at position %d", ErrNotFound, e.Item, e.Position)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
