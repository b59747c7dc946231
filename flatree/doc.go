// Package flatree provides an immutable, array-backed ("flattened")
// encoding of an arbitrary rooted tree with O(1) root and child access,
// structural equality, a parentheses parser, and a versioned binary codec.
//
// What
//
//   - Flatten(src) walks any tree.Tree once in breadth-first order and
//     packs it into three parallel arrays:
//     elements[i]      — value at breadth-first position i
//     childOffsets[i]  — index of node i's first child, or LeafOffset (-1)
//     childCounts[i]   — number of direct children of node i
//     Index 0 is always the root; for every non-leaf i the contiguous
//     range [childOffsets[i], childOffsets[i]+childCounts[i]) holds
//     exactly its children, and the ranges are pairwise disjoint.
//   - A Node is a cheap value handle (shared arrays + integer index); many
//     views share one backing array set, which is never mutated after
//     construction. Safe to share across goroutines without locking.
//   - Node implements tree.Tree, so a flattened tree (or any of its
//     subtree views) can itself be flattened again or written back to the
//     parentheses grammar.
//   - Encode/Decode persist the array triple behind a fixed magic+version
//     header; encoding a non-root view first re-flattens its subtree into
//     fresh zero-based arrays, so only the subtree is ever persisted.
//
// Why
//
//   - Node-object trees need pointer chasing and ownership graphs; the
//     arena layout makes views trivially copyable and comparison, cloning
//     and sharing free of aliasing concerns.
//   - Expression-tree evolution flattens each program once and then reads
//     it many times — exactly the write-once-read-many lifecycle this
//     layout is optimal for.
//
// Complexity (n = number of nodes)
//
//   - Flatten:          O(n) time, O(n) memory (single pass).
//   - Root, ChildAt:    O(1).
//   - Parent:           O(index) backward scan.
//   - Size:             O(size of the subtree), recomputed per call.
//   - All, BreadthFirst: O(n) per full iteration, restartable.
//
// Errors
//
//   - ErrNilTree        if Flatten receives a nil source.
//   - ErrEmptyTree      if the source reports size < 1 (broken source
//     implementation, not user-recoverable).
//   - ErrTreeSize       if the source's traversal disagrees with its
//     reported size (likewise a broken source).
//   - ErrChildIndex     if a child index is outside [0, ChildCount()).
//   - ErrInvalidStream  if Decode is handed a corrupted or foreign-origin
//     byte stream.
package flatree
