// Package flatree: flattening constructor and navigation over the
// three-array encoding.
package flatree

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/malvaren/gentree/tree"
)

// LeafOffset is the childOffsets entry of a node without children.
const LeafOffset = -1

// Sentinel errors for construction and navigation.
var (
	// ErrNilTree is returned when the source tree reference is absent.
	ErrNilTree = errors.New("flatree: source tree is nil")

	// ErrEmptyTree is returned when the source tree reports a size below 1.
	// A conforming tree.Tree always contains at least its root, so this
	// signals a broken source implementation.
	ErrEmptyTree = errors.New("flatree: source tree reports size < 1")

	// ErrTreeSize is returned when the source's breadth-first traversal
	// yields a different number of nodes than its reported size.
	ErrTreeSize = errors.New("flatree: traversal disagrees with reported size")

	// ErrChildIndex is returned when a child index is outside
	// [0, ChildCount()).
	ErrChildIndex = errors.New("flatree: child index out of range")
)

// Node is a view into a flattened tree: a reference to the shared backing
// arrays plus the index of one node. The zero Node is invalid; obtain one
// via Flatten, Parse, ParseFunc or Decode.
//
// Nodes are cheap value handles. The backing arrays are write-once and
// never mutated afterwards, so any number of views may read them from any
// number of goroutines without locking.
type Node[T comparable] struct {
	index        int
	elements     []T
	childOffsets []int
	childCounts  []int
}

// Flatten creates an immutable flattened tree from src.
//
// It walks src once in breadth-first order, assigning array positions in
// visitation order. Breadth-first visitation guarantees that every node's
// children land in one contiguous range, so a single running offset
// counter suffices. Returns ErrNilTree if src is nil.
func Flatten[T comparable](src tree.Tree[T]) (Node[T], error) {
	if src == nil {
		return Node[T]{}, ErrNilTree
	}
	size := src.Size()
	if size < 1 {
		return Node[T]{}, fmt.Errorf("%w: got %d", ErrEmptyTree, size)
	}

	elements := make([]T, size)
	childOffsets := make([]int, size)
	childCounts := make([]int, size)

	// nextOffset starts immediately after the root.
	nextOffset := 1
	index := 0
	for n := range src.BreadthFirst() {
		if index == size {
			return Node[T]{}, fmt.Errorf("%w: more than %d nodes", ErrTreeSize, size)
		}
		elements[index] = n.Value()
		childCounts[index] = n.ChildCount()
		if n.IsLeaf() {
			childOffsets[index] = LeafOffset
		} else {
			childOffsets[index] = nextOffset
		}
		nextOffset += n.ChildCount()
		index++
	}
	if index != size {
		return Node[T]{}, fmt.Errorf("%w: %d nodes, reported %d", ErrTreeSize, index, size)
	}

	return Node[T]{
		index:        0,
		elements:     elements,
		childOffsets: childOffsets,
		childCounts:  childCounts,
	}, nil
}

// Parse reads a parentheses tree string (see tree.Parse) and flattens it.
// Node values are the raw labels.
func Parse(s string) (Node[string], error) {
	n, err := tree.Parse(s)
	if err != nil {
		return Node[string]{}, err
	}
	return Flatten[string](n)
}

// ParseFunc reads a parentheses tree string, converts every label with
// mapper (see tree.ParseFunc), and flattens the result.
func ParseFunc[T comparable](s string, mapper func(string) (T, error)) (Node[T], error) {
	n, err := tree.ParseFunc(s, mapper)
	if err != nil {
		return Node[T]{}, err
	}
	return Flatten[T](n)
}

// at returns the view of position i in the same backing arrays.
func (n Node[T]) at(i int) Node[T] {
	return Node[T]{
		index:        i,
		elements:     n.elements,
		childOffsets: n.childOffsets,
		childCounts:  n.childCounts,
	}
}

// Index returns this view's position in the backing arrays.
func (n Node[T]) Index() int { return n.index }

// Root returns the view of the whole underlying tree's root. O(1).
func (n Node[T]) Root() Node[T] { return n.at(0) }

// IsRoot reports whether this view denotes index 0.
func (n Node[T]) IsRoot() bool { return n.index == 0 }

// Value returns the value stored at this node.
func (n Node[T]) Value() T { return n.elements[n.index] }

// ChildCount returns the number of direct children of this node.
func (n Node[T]) ChildCount() int { return n.childCounts[n.index] }

// ChildOffset returns the index of this node's first child in the backing
// arrays, or LeafOffset if the node is a leaf.
func (n Node[T]) ChildOffset() int { return n.childOffsets[n.index] }

// IsLeaf reports whether this node has no children.
func (n Node[T]) IsLeaf() bool { return n.childCounts[n.index] == 0 }

// ChildAt returns the view of the k-th direct child, or ErrChildIndex if
// k is outside [0, ChildCount()). O(1).
func (n Node[T]) ChildAt(k int) (Node[T], error) {
	if k < 0 || k >= n.childCounts[n.index] {
		return Node[T]{}, fmt.Errorf("%w: index %d, child count %d",
			ErrChildIndex, k, n.childCounts[n.index])
	}
	return n.at(n.childOffsets[n.index] + k), nil
}

// Child implements tree.Tree.
func (n Node[T]) Child(k int) (tree.Tree[T], error) {
	c, err := n.ChildAt(k)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Parent returns the view of this node's parent, or false for the root.
//
// The parent is found by scanning backwards from index-1 for the first
// non-leaf whose child range covers this index; worst case O(index).
func (n Node[T]) Parent() (Node[T], bool) {
	for i := n.index - 1; i >= 0; i-- {
		if n.childCounts[i] > 0 &&
			n.childOffsets[i] <= n.index &&
			n.index < n.childOffsets[i]+n.childCounts[i] {
			return n.at(i), true
		}
	}
	return Node[T]{}, false
}

// Size returns the number of nodes in the subtree rooted at this view,
// including the node itself. Recomputed on each call.
func (n Node[T]) Size() int {
	return 1 + n.descendants(n.index)
}

// descendants counts all nodes below position i.
func (n Node[T]) descendants(i int) int {
	count := n.childCounts[i]
	for k := 0; k < n.childCounts[i]; k++ {
		count += n.descendants(n.childOffsets[i] + k)
	}
	return count
}

// All returns a restartable sequence of views over every position of the
// backing arrays in ascending index order — the breadth-first order of the
// whole underlying tree, regardless of which view initiated the call.
func (n Node[T]) All() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for i := range n.elements {
			if !yield(n.at(i)) {
				return
			}
		}
	}
}

// BreadthFirst implements tree.Tree: a restartable level-order sequence of
// the subtree rooted at this view. For a root view it agrees with All.
func (n Node[T]) BreadthFirst() iter.Seq[tree.Tree[T]] {
	return tree.BreadthFirst[T](n)
}

// Identical reports whether other denotes the same node of the same
// backing arrays. O(1) fast path; Equal falls back to it first.
func (n Node[T]) Identical(other Node[T]) bool {
	return n.index == other.index &&
		len(n.elements) > 0 && len(other.elements) > 0 &&
		&n.elements[0] == &other.elements[0]
}

// Equal reports value equality with another flattened view: identical, or
// same index with element-wise equal backing arrays.
func (n Node[T]) Equal(other Node[T]) bool {
	if n.Identical(other) {
		return true
	}
	return n.index == other.index &&
		slices.Equal(n.elements, other.elements) &&
		slices.Equal(n.childOffsets, other.childOffsets) &&
		slices.Equal(n.childCounts, other.childCounts)
}

// EqualTree reports generic structural equality of this view's subtree
// with any tree.Tree: equal value at every corresponding node, equal shape.
func (n Node[T]) EqualTree(other tree.Tree[T]) bool {
	return tree.Equal[T](n, other)
}

// String renders the subtree rooted at this view in the parentheses
// grammar.
func (n Node[T]) String() string {
	return tree.ParenthesesString[T](n)
}
