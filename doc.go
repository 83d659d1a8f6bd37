// Package pairheap is your in-memory toolkit for persistent priority
// queues – an immutable pairing heap ordered by pluggable comparison
// policies.
//
// 🚀 What is pairheap?
//
//	A small, focused library that brings together:
//		• Persistent heaps: Push/Pop/Merge return new values; old versions stay valid
//		• Pairing-heap core: O(1) push & merge, amortized O(log n) pop
//		• Comparator policies: natural order, key extraction, custom functions,
//		  lexicographic tie-breaking chains, biggest-first reversal
//		• Bulk operations: build from a slice, drain to sorted / reverse /
//		  unordered slices, iterate lazily, compare two whole heaps
//
// ✨ Why choose pairheap?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – no operation ever mutates shared structure,
//     so every heap is a free snapshot, safe to read from any goroutine
//   - Pure Go – no cgo, no hidden deps
//   - Composable – build multi-field orderings with order.By / Then / ThenBy
//
// The comparison policies live in their own subpackage:
//
//	order/ – Ordering, Comparator[T] and its combinators
//
// Quick ASCII example:
//
//	    1
//	   /|\
//	  3 2 5
//	  |
//	  4
//
//	a pairing heap after a few pushes: every parent sorts no later than
//	any of its children; siblings are unordered among themselves.
//
// See the type and function docs for complexity tables and runnable examples.
//
//	go get github.com/katalvlaran/pairheap
package pairheap
