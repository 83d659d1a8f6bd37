package pairheap

import "iter"

// All returns an iterator over the heap's values in extraction order
// (the same order as ToSortedSlice). Because heaps are persistent the
// iteration works on the receiver's version: pushes and pops performed
// elsewhere while iterating are never observed, and the iterator may be
// ranged over multiple times, each time from the full heap.
//
//	for v := range h.All() {
//	    ...
//	}
//
// Complexity: O(log n) amortized per element yielded.
func (h Heap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := h
		for {
			v, rest, ok := cur.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
			cur = rest
		}
	}
}
