package trie

import (
	"iter"
	"slices"
)

// Trie is a prefix tree over sequences of comparable items.
//
// Sequences sharing a prefix share the nodes of that prefix. Children are kept
// in insertion order and searched linearly, which keeps nodes small and is
// fast for the low branching factors of words and paths.
//
// A Trie is not safe for concurrent use; readers must wait for inserts to
// finish.
type Trie[T comparable] struct {
	root *Node[T]
	size int
}

// NewTrie creates a trie containing only its root.
func NewTrie[T comparable]() *Trie[T] {
	var zero T
	root := newNode(zero)
	root.isRoot = true
	return &Trie[T]{root: root}
}

// Root returns the sentinel root node.
func (t *Trie[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of inserted sequences, repeats included.
func (t *Trie[T]) Len() int {
	return t.size
}

// Insert adds seq to the trie, extending the path from the root as needed and
// marking its last node as an end. Inserting the same sequence again only
// increments the end count of that node; the empty sequence marks the root.
func (t *Trie[T]) Insert(seq []T) {
	node := t.root
	for _, item := range seq {
		node = node.childOrAdd(item)
	}
	node.markEnd()
	t.size++
}

// FindPrefix walks the trie along seq and returns the node reached after the
// last item. It returns false as soon as an item has no matching child, and
// immediately if nothing was inserted yet.
func (t *Trie[T]) FindPrefix(seq []T) (*Node[T], bool) {
	if t.isBare() {
		return nil, false
	}
	node := t.root
	for _, item := range seq {
		child, _ := node.findChild(item)
		if child == nil {
			return nil, false
		}
		node = child
	}
	return node, true
}

// isBare checks if the trie holds nothing but an unmarked root.
func (t *Trie[T]) isBare() bool {
	return t.root.IsLeaf() && !t.root.IsEnd()
}

// ContainsSequence checks if seq itself was inserted, not just a longer
// sequence starting with it.
func (t *Trie[T]) ContainsSequence(seq []T) bool {
	node, ok := t.FindPrefix(seq)
	return ok && node.IsEnd()
}

// ContainsPrefix checks if seq is a prefix of (or equal to) an inserted
// sequence.
func (t *Trie[T]) ContainsPrefix(seq []T) bool {
	_, ok := t.FindPrefix(seq)
	return ok
}

// Count returns how many times seq was inserted.
func (t *Trie[T]) Count(seq []T) uint {
	node, ok := t.FindPrefix(seq)
	if !ok {
		return 0
	}
	return node.EndCount()
}

// Trace walks the trie along seq and yields, for every item, the position of
// the matching child within its parent's children.
//
// If an item has no matching child, Trace yields (-1, err) once, with err a
// *NotFoundError matching ErrNotFound, and stops. Positions already yielded
// belong to the matched prefix; nothing follows the error. Tracing the empty
// sequence fails the same way when nothing was inserted yet, as FindPrefix does.
func (t *Trie[T]) Trace(seq []T) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if len(seq) == 0 && t.isBare() {
			yield(-1, &NotFoundError{Position: 0, Empty: true})
			return
		}
		node := t.root
		for pos, item := range seq {
			child, i := node.findChild(item)
			if child == nil {
				yield(-1, &NotFoundError{Position: pos, Item: item})
				return
			}
			if !yield(i, nil) {
				return
			}
			node = child
		}
	}
}

// TracePath collects Trace into a slice of child positions, one per item.
func (t *Trie[T]) TracePath(seq []T) ([]int, error) {
	path := make([]int, 0, len(seq))
	for i, err := range t.Trace(seq) {
		if err != nil {
			return nil, err
		}
		path = append(path, i)
	}
	return path, nil
}

// Sequences yields every inserted sequence with its count, depth first and in
// insertion order of the children. Each yielded slice is a fresh copy.
func (t *Trie[T]) Sequences() iter.Seq2[[]T, uint] {
	return func(yield func([]T, uint) bool) {
		t.root.walk(nil, yield)
	}
}

// WithPrefix yields every inserted sequence starting with prefix, with its
// count, in the same order as Sequences.
func (t *Trie[T]) WithPrefix(prefix []T) iter.Seq2[[]T, uint] {
	return func(yield func([]T, uint) bool) {
		node, ok := t.FindPrefix(prefix)
		if !ok {
			return
		}
		node.walk(slices.Clone(prefix), yield)
	}
}

// walk visits n and its descendants, path being the sequence leading to n.
// It returns false once yield asked to stop.
func (n *Node[T]) walk(path []T, yield func([]T, uint) bool) bool {
	if n.end > 0 && !yield(slices.Clone(path), n.end) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(append(path, child.value), yield) {
			return false
		}
	}
	return true
}

// Remove is not supported yet.
//
// TODO: prune the path bottom-up, dropping nodes left without children and
// end marks.
func (t *Trie[T]) Remove(seq []T) error {
	return ErrUnsupportedOperation
}
