// Package lazy: the once-only memoized value cell.
package lazy

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNilSupplier is returned when New is given a nil supplier.
var ErrNilSupplier = errors.New("lazy: nil supplier")

// Cell holds a supplier and realizes its value at most once. After the
// first Get the value is fixed for the cell's lifetime and the supplier is
// released. Safe for concurrent use; see the package documentation for
// the single-evaluation contract.
type Cell[T any] struct {
	once     sync.Once
	realized atomic.Bool
	supplier func() T
	value    T
}

// New returns an unrealized cell over supplier, or ErrNilSupplier.
func New[T any](supplier func() T) (*Cell[T], error) {
	if supplier == nil {
		return nil, ErrNilSupplier
	}
	return &Cell[T]{supplier: supplier}, nil
}

// OfValue returns a cell already realized with v; no supplier is involved
// and Get never computes anything.
func OfValue[T any](v T) *Cell[T] {
	c := &Cell[T]{value: v}
	c.once.Do(func() {})
	c.realized.Store(true)
	return c
}

// Get returns the cell's value, realizing it on first call. Concurrent
// first calls invoke the supplier exactly once; all callers observe the
// same value.
func (c *Cell[T]) Get() T {
	c.once.Do(func() {
		c.value = c.supplier()
		c.supplier = nil
		c.realized.Store(true)
	})
	return c.value
}

// Realized reports whether the value has been computed and published.
func (c *Cell[T]) Realized() bool {
	return c.realized.Load()
}
