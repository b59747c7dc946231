package tree

import "iter"

// Node is a minimal mutable Tree implementation, used to assemble trees by
// hand before flattening and as the parser's build target.
//
// Node is not safe for concurrent mutation; build it first, then share it
// read-only (or flatten it, which copies the structure out).
type Node[T any] struct {
	value    T
	children []*Node[T]
}

// New returns a new leaf node holding v.
func New[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Attach appends the given nodes as direct children of n, in order,
// and returns n for chaining. Nil children are ignored.
func (n *Node[T]) Attach(children ...*Node[T]) *Node[T] {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// AttachValues appends one new leaf child per value, in order,
// and returns n for chaining.
func (n *Node[T]) AttachValues(values ...T) *Node[T] {
	for _, v := range values {
		n.children = append(n.children, New(v))
	}
	return n
}

// SetValue replaces the value stored at n.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Value returns the value stored at n.
func (n *Node[T]) Value() T { return n.value }

// ChildCount returns the number of direct children.
func (n *Node[T]) ChildCount() int { return len(n.children) }

// Child returns the i-th direct child, or ErrChildIndex if i is out of range.
func (n *Node[T]) Child(i int) (Tree[T], error) {
	if i < 0 || i >= len(n.children) {
		return nil, ErrChildIndex
	}
	return n.children[i], nil
}

// ChildNode returns the i-th direct child as a concrete *Node,
// or ErrChildIndex if i is out of range.
func (n *Node[T]) ChildNode(i int) (*Node[T], error) {
	if i < 0 || i >= len(n.children) {
		return nil, ErrChildIndex
	}
	return n.children[i], nil
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// BreadthFirst returns a restartable level-order sequence of the subtree
// rooted at n.
func (n *Node[T]) BreadthFirst() iter.Seq[Tree[T]] {
	return BreadthFirst[T](n)
}

// String renders n in the parentheses grammar.
func (n *Node[T]) String() string {
	return ParenthesesString[T](n)
}
