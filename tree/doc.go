// Package tree defines the generic tree capability consumed and re-exposed
// by the flattened representation, plus the helpers every tree user needs:
// breadth-first traversal, structural equality, a mutable build node, and
// the parentheses grammar reader/writer.
//
// What
//
//   - Tree[T]: the read-only capability — value access, child count,
//     indexed child access, leaf test, subtree size, breadth-first
//     iteration. Any rooted, acyclic, finite hierarchy can implement it.
//   - Node[T]: a minimal mutable implementation used to assemble trees by
//     hand and as the parser's build target.
//   - BreadthFirst: a restartable iter.Seq traversal any implementation can
//     delegate to.
//   - Equal: generic structural equality (same shape, same values).
//   - ParenthesesString / ParenthesesStringFunc: writes the grammar
//     node := label ( '(' node (',' node)* ')' )?
//   - Parse / ParseFunc: recursive-descent reader for the same grammar,
//     with an optional label mapper.
//
// Why
//
//   - The flattening constructor in package flatree consumes exactly this
//     capability, so any external tree can be flattened without adapters.
//   - The grammar round-trips: Parse(ParenthesesString(t)) is structurally
//     equal to t for labels free of '(', ')' and ','.
//
// Complexity (n = number of nodes)
//
//   - BreadthFirst: O(n) time, O(width) memory.
//   - Equal: O(n) time.
//   - Parse / ParenthesesString: O(len(input)) time.
//
// Errors
//
//   - ErrChildIndex  if a child index is outside [0, ChildCount()).
//   - ErrMalformed   if a parentheses string violates the grammar or the
//     label mapper rejects a label.
package tree
