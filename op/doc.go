// Package op provides the ephemeral terminal: a terminal symbol of an
// expression tree whose concrete value is freshly generated for every tree
// instance but fixed from its first read onward.
//
// What
//
//   - Ephemeral[T] is created once from a value supplier (and an optional
//     name) — the prototype. Each Instantiate call returns a new instance
//     sharing name and supplier but wrapping a brand-new unrealized
//     lazy.Cell: one instance per terminal occurrence.
//   - Value fixes and returns the occurrence's constant on first read;
//     later reads return the same value.
//   - String renders "name(value)" when named, otherwise just the value.
//     Note that rendering forces realization.
//
// Why
//
//   - Genetic programming inserts random constants into operation trees:
//     each chosen terminal must get its own independent value, which must
//     then stay stable for that tree's lifetime. The prototype/instance
//     split plus the once-only cell gives exactly that.
//
// Concurrency
//
//	Instances are independent; concurrent Instantiate calls need no
//	coordination. Each instance's cell carries the single-evaluation
//	guarantee of package lazy.
//
// Errors
//
//   - ErrNilSupplier  if a constructor is given a nil supplier.
package op
