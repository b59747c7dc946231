// Package mov: the multi-objective value capability and the generalized
// Pareto-dominance order.
package mov

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for multi-objective comparison.
var (
	// ErrAxisOutOfRange is returned when an axis index is outside
	// [0, Size()).
	ErrAxisOutOfRange = errors.New("mov: axis index out of range")

	// ErrDimensionMismatch is returned when two values disagree on their
	// number of axes.
	ErrDimensionMismatch = errors.New("mov: dimension mismatch")
)

// Value is the multi-objective value capability: a fixed number of axes
// and a per-axis three-way comparison.
type Value[V any] interface {
	// Size returns the number of axes. Constant per value.
	Size() int

	// Compare returns the three-way order of the receiver against other
	// along the given axis: negative, zero or positive. Returns
	// ErrAxisOutOfRange when axis is outside [0, Size()).
	Compare(other V, axis int) (int, error)
}

// Dominance returns the Pareto-dominance order of u and v:
//
//	+1  u dominates v (no worse on every axis, better on at least one)
//	-1  v dominates u
//	 0  equal or incomparable (no distinction is made)
//
// The relation is antisymmetric: Dominance(u, v) == -Dominance(v, u).
// Returns ErrDimensionMismatch when u and v disagree on dimensionality.
func Dominance[V Value[V]](u, v V) (int, error) {
	d := u.Size()
	if d != v.Size() {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, d, v.Size())
	}

	uDom, vDom := false, false
	for axis := 0; axis < d; axis++ {
		c, err := u.Compare(v, axis)
		if err != nil {
			return 0, err
		}
		switch {
		case c > 0:
			uDom = true
			if vDom {
				// Mutual domination already established.
				return 0, nil
			}
		case c < 0:
			vDom = true
			if uDom {
				return 0, nil
			}
		}
	}

	switch {
	case uDom == vDom:
		return 0, nil
	case uDom:
		return 1, nil
	default:
		return -1, nil
	}
}

// Floats is a multi-objective value of arbitrary dimension, one float64
// per axis. Its dimensionality is its length.
type Floats []float64

// Size returns the number of axes.
func (f Floats) Size() int { return len(f) }

// Compare returns the three-way cmp.Compare order along the given axis.
// Returns ErrAxisOutOfRange for an axis outside [0, Size()) and
// ErrDimensionMismatch when other has fewer axes than the receiver.
func (f Floats) Compare(other Floats, axis int) (int, error) {
	if axis < 0 || axis >= len(f) {
		return 0, fmt.Errorf("%w: axis %d, size %d", ErrAxisOutOfRange, axis, len(f))
	}
	if axis >= len(other) {
		return 0, fmt.Errorf("%w: axis %d, other size %d", ErrDimensionMismatch, axis, len(other))
	}
	return cmp.Compare(f[axis], other[axis]), nil
}
