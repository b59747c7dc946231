// Package gentree provides the low-level building blocks for tree-based
// evolutionary computation: immutable flattened expression trees,
// multi-objective value comparison, and once-only lazy terminals.
//
// What is gentree?
//
//	A small, thread-safe library that brings together:
//		• tree/    — the generic tree capability, a mutable build node,
//		             breadth-first traversal, structural equality, and the
//		             parentheses grammar reader/writer
//		• flatree/ — an immutable, array-backed ("flattened") tree with O(1)
//		             root and child access, binary encoding, and parsing
//		• mov/     — multi-objective values: per-axis comparison and the
//		             Pareto-dominance partial order (generalized + 2-D point)
//		• lazy/    — a memoized cell realizing its supplier at most once,
//		             even under concurrent first reads
//		• op/      — ephemeral terminals: per-occurrence constants fixed on
//		             first read, fresh per tree instance
//
// Why gentree?
//
//   - Arena layout – a flattened tree is three parallel arrays plus an
//     integer index, so node views are trivially copyable value handles
//   - Rock-solid guarantees – arrays are write-once-then-immutable; share
//     them across goroutines without locking
//   - Clear errors – every package exposes errors.Is-matchable sentinels,
//     nothing user-triggered panics
//
// Quick ASCII example:
//
//	     mul
//	    /   \
//	   2     x
//
//	is the parentheses string "mul(2,x)" and flattens to the arrays
//	elements=[mul 2 x], childOffsets=[1 -1 -1], childCounts=[2 0 0].
//
// Dive into each package's doc.go for tutorials, complexity notes, and the
// full error taxonomy.
package gentree
