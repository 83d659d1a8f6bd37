package pairheap

import "github.com/katalvlaran/pairheap/order"

// ToSortedSlice drains a copy of the heap and returns the values in
// extraction order: ascending for a MinFirst heap, descending for MaxFirst.
// The receiver is unchanged.
//
// Complexity: O(n log n) time, O(n) extra space.
func (h Heap[T]) ToSortedSlice() []T {
	out := make([]T, 0, h.size)

	cur := h
	for {
		v, rest, ok := cur.Pop()
		if !ok {
			break
		}
		out = append(out, v)
		cur = rest
	}

	return out
}

// ToReverseSortedSlice returns exactly the reverse of ToSortedSlice. It is
// computed directly by writing extraction order back-to-front into a
// pre-sized slice – one pass, no final reversal.
//
// Complexity: O(n log n) time, O(n) extra space.
func (h Heap[T]) ToReverseSortedSlice() []T {
	out := make([]T, h.size)

	cur := h
	i := h.size
	for {
		v, rest, ok := cur.Pop()
		if !ok {
			break
		}
		i--
		out[i] = v
		cur = rest
	}

	return out
}

// ToSlice flattens the heap into a slice in tree preorder (root, then each
// child subtree in turn) with NO ordering guarantee beyond the first
// element being the Peek value. Useful when extraction order is irrelevant:
// it performs no pops and runs in O(n).
func (h Heap[T]) ToSlice() []T {
	return h.root.flatten(make([]T, 0, h.size))
}

// Compare orders two whole heaps lexicographically by extraction order,
// using a's comparator throughout:
//
//   - an empty heap sorts strictly before every non-empty heap;
//   - otherwise the current roots are compared; on a tie one element is
//     popped from each side and comparison continues;
//   - if one side runs out first, it is Less.
//
// Two heaps built from the same multiset under the same policy compare
// Equal. Heaps holding the same elements under disagreeing comparators
// generally do not, because extraction order drives the comparison.
//
// Complexity: O(min(n, m) log min(n, m)) worst case; O(1) when the roots
// already differ.
func Compare[T any](a, b Heap[T]) order.Ordering {
	x, y := a, b
	for {
		switch {
		case x.root == nil && y.root == nil:
			return order.Equal
		case x.root == nil:
			return order.Less
		case y.root == nil:
			return order.Greater
		}

		if r := a.cmp(x.root.value, y.root.value); r != order.Equal {
			return r
		}

		// Roots tie under a's policy: advance both sides and keep going.
		x, _ = x.Drop()
		y, _ = y.Drop()
	}
}
