// Package mov provides multi-objective value comparison: a per-axis
// total-order capability over fixed-dimensionality values, and the derived
// Pareto-dominance partial order.
//
// What
//
//   - Value[V]: the capability — Size() reports the number of axes,
//     Compare(other, axis) the three-way order along one axis.
//   - Dominance(u, v): the generalized Pareto order. u dominates v (+1)
//     when u is no worse on every axis and strictly better on at least
//     one; -1 for the mirror case; 0 when equal or mutually dominating
//     ("incomparable" — no distinction is made).
//   - Point2: an immutable 2-D point specializing the dominance check
//     without a loop, with results identical to the generalized algorithm.
//   - Floats: a []float64 value of arbitrary dimension.
//
// Why
//
//   - Multi-objective ranking (non-dominated sorting, Pareto fronts) needs
//     only this capability from its fitness values; keeping it an
//     interface lets any fixed-dimensionality type participate.
//
// Determinism
//
//	Float axes order via cmp.Compare, a total order that places NaN below
//	every other value and equal to itself, so dominance results are
//	reproducible even with NaN coordinates.
//
// Complexity
//
//   - Dominance: O(d) with early exit once mutual domination is
//     established; Point2's specialized form is branch-only.
//
// Errors
//
//   - ErrAxisOutOfRange     if an axis is outside [0, Size()).
//   - ErrDimensionMismatch  if two values disagree on dimensionality.
package mov
