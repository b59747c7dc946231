// Package lazy provides a memoized value cell: a holder that computes its
// contents from a supplier at most once and returns the realized value
// thereafter.
//
// What
//
//   - Cell[T]: states {unrealized, realized}. Get on an unrealized cell
//     invokes the supplier exactly once across all callers, stores the
//     result, and returns it; every later Get returns the stored value
//     without re-invoking the supplier.
//   - OfValue constructs an already-realized cell, bypassing the supplier.
//
// Concurrency
//
//	If multiple goroutines call Get before realization, the supplier runs
//	at most once and every caller — arriving before or after realization —
//	observes the same value. Losers of the race block until the winner has
//	published it (sync.Once underneath).
//
// Why
//
//   - Ephemeral terminals in expression trees (package op) need a value
//     that is freshly generated per tree instance yet fixed from its first
//     read onward; the cell is exactly that single-evaluation guarantee.
//
// Errors
//
//   - ErrNilSupplier  if New is given a nil supplier.
package lazy
