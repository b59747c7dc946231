package mov

import (
	"cmp"
	"fmt"
)

// Point2 is an immutable 2-dimensional point with axes x, then y.
// The zero Point2 is the origin and is valid.
type Point2 struct {
	x, y float64
}

// NewPoint2 returns the point (x, y).
func NewPoint2(x, y float64) Point2 {
	return Point2{x: x, y: y}
}

// X returns the x value of the point.
func (p Point2) X() float64 { return p.x }

// Y returns the y value of the point.
func (p Point2) Y() float64 { return p.y }

// Size returns 2.
func (p Point2) Size() int { return 2 }

// Compare returns the three-way cmp.Compare order along axis 0 (x) or
// axis 1 (y); ErrAxisOutOfRange otherwise.
func (p Point2) Compare(other Point2, axis int) (int, error) {
	switch axis {
	case 0:
		return cmp.Compare(p.x, other.x), nil
	case 1:
		return cmp.Compare(p.y, other.y), nil
	default:
		return 0, fmt.Errorf("%w: axis %d, size 2", ErrAxisOutOfRange, axis)
	}
}

// Dominance is the loop-free specialization of the generalized Dominance
// for exactly two axes, x then y. Results are identical to
// Dominance[Point2](p, other).
func (p Point2) Dominance(other Point2) int {
	pDom, oDom := false, false

	if c := cmp.Compare(p.x, other.x); c > 0 {
		pDom = true
	} else if c < 0 {
		oDom = true
	}

	if c := cmp.Compare(p.y, other.y); c > 0 {
		pDom = true
		if oDom {
			return 0
		}
	} else if c < 0 {
		oDom = true
		if pDom {
			return 0
		}
	}

	switch {
	case pDom == oDom:
		return 0
	case pDom:
		return 1
	default:
		return -1
	}
}

// String renders the point as [x, y].
func (p Point2) String() string {
	return fmt.Sprintf("[%f, %f]", p.x, p.y)
}
