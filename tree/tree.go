// Package tree: the generic tree capability, breadth-first traversal,
// structural equality, and the parentheses writer.
package tree

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrChildIndex is returned when a child index is outside [0, ChildCount()).
var ErrChildIndex = errors.New("tree: child index out of range")

// Tree is the read-only capability of a rooted, acyclic, finite tree.
//
// Implementations must be navigable from any node: Child returns the i-th
// direct child, Size the number of nodes in the subtree rooted here, and
// BreadthFirst a restartable level-order sequence of that subtree.
type Tree[T any] interface {
	// Value returns the value stored at this node.
	Value() T

	// ChildCount returns the number of direct children.
	ChildCount() int

	// Child returns the i-th direct child, or ErrChildIndex if
	// i is outside [0, ChildCount()).
	Child(i int) (Tree[T], error)

	// IsLeaf reports whether this node has no children.
	IsLeaf() bool

	// Size returns the number of nodes in the subtree rooted at this node,
	// including the node itself. Always >= 1.
	Size() int

	// BreadthFirst returns a restartable level-order sequence of the
	// subtree rooted at this node, starting with the node itself.
	BreadthFirst() iter.Seq[Tree[T]]
}

// BreadthFirst returns a queue-based level-order traversal of the subtree
// rooted at root. Implementations of Tree typically delegate their
// BreadthFirst method to this helper.
//
// The sequence is restartable: ranging over it again replays the traversal.
func BreadthFirst[T any](root Tree[T]) iter.Seq[Tree[T]] {
	return func(yield func(Tree[T]) bool) {
		queue := []Tree[T]{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			for i := 0; i < cur.ChildCount(); i++ {
				child, err := cur.Child(i)
				if err != nil {
					// Child contract violated by the implementation;
					// nothing sensible left to traverse.
					return
				}
				queue = append(queue, child)
			}
		}
	}
}

// Equal reports generic structural equality of two trees: equal value at
// every corresponding node and equal shape. Either argument may be any
// Tree implementation.
func Equal[T comparable](a, b Tree[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Value() != b.Value() || a.ChildCount() != b.ChildCount() {
		return false
	}
	for i := 0; i < a.ChildCount(); i++ {
		ca, err := a.Child(i)
		if err != nil {
			return false
		}
		cb, err := b.Child(i)
		if err != nil {
			return false
		}
		if !Equal(ca, cb) {
			return false
		}
	}
	return true
}

// ParenthesesString writes t in the parentheses grammar using fmt.Sprint
// for the node values. See ParenthesesStringFunc.
func ParenthesesString[T any](t Tree[T]) string {
	return ParenthesesStringFunc(t, func(v T) string { return fmt.Sprint(v) })
}

// ParenthesesStringFunc writes t in the parentheses grammar
//
//	node := label ( '(' node (',' node)* ')' )?
//
// using format to render each node value. The result round-trips through
// Parse/ParseFunc as long as the rendered labels contain none of
// '(', ')' or ','.
func ParenthesesStringFunc[T any](t Tree[T], format func(T) string) string {
	var sb strings.Builder
	writeParentheses(t, format, &sb)
	return sb.String()
}

func writeParentheses[T any](t Tree[T], format func(T) string, sb *strings.Builder) {
	sb.WriteString(format(t.Value()))
	if t.IsLeaf() {
		return
	}
	sb.WriteByte('(')
	for i := 0; i < t.ChildCount(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		child, err := t.Child(i)
		if err != nil {
			break
		}
		writeParentheses(child, format, sb)
	}
	sb.WriteByte(')')
}
