package trie

import "fmt"

// Node is a single node of a trie, holding one item of the sequences passing
// through it.
type Node[T comparable] struct {
	value    T
	children []*Node[T] // insertion order, searched linearly
	end      uint       // number of inserted sequences ending here
	depth    int        // the depth of this node in the trie, 0 for the root
	isRoot   bool
}

// newNode creates a detached node holding value.
func newNode[T comparable](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the item stored at the node. The root holds the zero value,
// which is never compared against query items.
func (n *Node[T]) Value() T {
	return n.value
}

// GetDepth returns the depth of the node in the trie.
func (n *Node[T]) GetDepth() int {
	return n.depth
}

// IsRoot checks if the node is the sentinel root of its trie.
func (n *Node[T]) IsRoot() bool {
	return n.isRoot
}

// EndCount returns how many inserted sequences end at this node.
func (n *Node[T]) EndCount() uint {
	return n.end
}

// IsEnd checks if at least one inserted sequence ends at this node.
func (n *Node[T]) IsEnd() bool {
	return n.end > 0
}

// checks if the node is a leaf (has no children).
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Children returns the children in insertion order. The slice must not be
// modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// returns the child at position i, or nil if there is none
func (n *Node[T]) ChildAt(i int) *Node[T] {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// findChild returns the first child holding item and its position, or -1.
func (n *Node[T]) findChild(item T) (*Node[T], int) {
	for i, child := range n.children {
		if child.value == item {
			return child, i
		}
	}
	return nil, -1
}

// addChild appends child and returns it.
func (n *Node[T]) addChild(child *Node[T]) *Node[T] {
	if child.isRoot {
		panic("[BUG] addChild: the root can not become a child")
	}
	child.depth = n.depth + 1
	n.children = append(n.children, child)
	return child
}

// childOrAdd returns the first child holding item, adding one if needed.
func (n *Node[T]) childOrAdd(item T) *Node[T] {
	if child, _ := n.findChild(item); child != nil {
		return child
	}
	return n.addChild(newNode(item))
}

func (n *Node[T]) markEnd() {
	n.end++
}

// applies a function to each child of the node, in insertion order.
// will return the original node n
func (n *Node[T]) ForEachChild(f func(child *Node[T])) *Node[T] {
	for _, child := range n.children {
		f(child)
	}
	return n
}

// recursively applies a function (f) to each descendant node, depth first, as
// long as a (while) condition holds for the parent.
// if no condition is needed you can pass nil as while parameter
// will return the original node n
func (n *Node[T]) ForEachStepDown(f func(node *Node[T]), while func(node *Node[T]) bool) *Node[T] {
	n.ForEachChild(func(child *Node[T]) {
		if while == nil || while(n) {
			f(child)
			child.ForEachStepDown(f, while)
		}
	})
	return n
}

// String renders the item, with a trailing '*' if a sequence ends here.
func (n *Node[T]) String() string {
	s := "ROOT"
	if !n.isRoot {
		s = fmt.Sprint(n.value)
	}
	if n.end > 0 {
		s += "*"
	}
	return s
}
