// Package order defines the pluggable comparison policies that drive
// github.com/katalvlaran/pairheap.
//
// What:
//
//   - Ordering: the three-way result of a comparison (Less, Equal, Greater).
//   - Comparator[T]: a pure function (T, T) → Ordering expressing a total
//     preorder over T. Every heap is built around exactly one Comparator.
//   - Builders: Natural (for cmp.Ordered types), By (key extraction),
//     Using (verbatim three-way function), FromLess (adapt a boolean
//     less-than function), ThenBy / Then (lexicographic tie-breaking),
//     Reversed (direction inversion for biggest-first heaps).
//
// Why:
//   - Order arbitrary, non-trivially-comparable values (structs, composite
//     keys) with one heap implementation.
//   - Compose multi-field orderings declaratively: compare by rule 1;
//     if Equal, by rule 2; and so on to arbitrary depth.
//   - Realize descending ("biggest-first") order without a second heap type.
//
// Contract:
//
//	A Comparator must be a valid total preorder: reflexive, transitive and
//	total. The library never verifies this; violating it yields undefined
//	heap-property results, not a crash. Reversed swaps Less and Greater and
//	leaves Equal untouched, so composition and reversal preserve validity.
//
// Complexity:
//
//   - Every builder returns a closure in O(1).
//   - An assembled Comparator evaluates in O(chain length) calls of the
//     underlying functions.
//
// Errors:
//
//   - Builders panic with ErrNilKeyFunc / ErrNilCompareFunc / ErrNilLessFunc
//     when handed a nil function; comparison itself has no failure mode.
package order
