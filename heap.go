package pairheap

import "github.com/katalvlaran/pairheap/order"

// Heap is a persistent priority queue over T. It couples a pairing-heap
// tree with its cached size and the comparison policy fixed at
// construction. The zero value is not usable; build heaps with New,
// Singleton or FromSlice.
//
// Heap has value semantics: operations return new Heap values and never
// modify the receiver or any structure shared with other live heaps, so a
// Heap may be copied, stored and read from multiple goroutines freely.
type Heap[T any] struct {
	root  *node[T]
	size  int
	cmp   order.Comparator[T] // direction-adjusted at construction
	order SortOrder
}

// New returns an empty heap ordered by cmp. The sort direction defaults to
// MinFirst; pass WithOrder(MaxFirst) for a biggest-first heap, in which
// case cmp is applied reversed internally.
//
// Panics with ErrNilComparator if cmp is nil.
//
// Complexity: O(1).
func New[T any](cmp order.Comparator[T], opts ...Option) Heap[T] {
	if cmp == nil {
		panic(ErrNilComparator.Error())
	}

	// Build and apply construction options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// MaxFirst is realized by inverting the comparator once, here; every
	// later comparison goes through the adjusted function unchanged.
	if cfg.Order == MaxFirst {
		cmp = cmp.Reversed()
	}

	return Heap[T]{cmp: cmp, order: cfg.Order}
}

// Singleton returns a one-element heap ordered by cmp.
//
// Panics with ErrNilComparator if cmp is nil.
//
// Complexity: O(1).
func Singleton[T any](cmp order.Comparator[T], v T, opts ...Option) Heap[T] {
	return New(cmp, opts...).Push(v)
}

// FromSlice returns a heap containing every element of values, ordered by
// cmp. Equivalent to folding Push over values starting from New; the input
// slice is not retained.
//
// Panics with ErrNilComparator if cmp is nil.
//
// Complexity: O(n) – n pushes at O(1) amortized each.
func FromSlice[T any](cmp order.Comparator[T], values []T, opts ...Option) Heap[T] {
	return New(cmp, opts...).PushAll(values...)
}

// Push returns a new heap with v added. The receiver is unchanged.
//
// Complexity: O(1) amortized.
func (h Heap[T]) Push(v T) Heap[T] {
	return Heap[T]{
		root:  merge(h.root, &node[T]{value: v}, h.cmp),
		size:  h.size + 1,
		cmp:   h.cmp,
		order: h.order,
	}
}

// PushAll returns a new heap with every value added, left to right.
//
// Complexity: O(len(values)) amortized.
func (h Heap[T]) PushAll(values ...T) Heap[T] {
	out := h
	for _, v := range values {
		out = out.Push(v)
	}

	return out
}

// Peek returns the highest-priority value (smallest under MinFirst, largest
// under MaxFirst) without removing it. ok is false when the heap is empty.
//
// Complexity: O(1).
func (h Heap[T]) Peek() (v T, ok bool) {
	if h.root == nil {
		return v, false
	}

	return h.root.value, true
}

// Pop returns the highest-priority value together with the heap of the
// remaining elements. ok is false – and rest is the receiver itself – when
// the heap is empty. The receiver is unchanged in every case.
//
// The removed root's children are recombined with the pairing pass
// (see mergePairs), which is where the amortized bound comes from.
//
// Complexity: O(log n) amortized.
func (h Heap[T]) Pop() (v T, rest Heap[T], ok bool) {
	if h.root == nil {
		return v, h, false
	}

	rest = Heap[T]{
		root:  mergePairs(h.root.children, h.cmp),
		size:  h.size - 1,
		cmp:   h.cmp,
		order: h.order,
	}

	return h.root.value, rest, true
}

// Drop is Pop without the value: it returns the heap minus its
// highest-priority element. ok is false when the heap is empty.
//
// Complexity: O(log n) amortized.
func (h Heap[T]) Drop() (rest Heap[T], ok bool) {
	_, rest, ok = h.Pop()

	return rest, ok
}

// Merge returns a heap holding every element of h and other.
//
// The result keeps the receiver's comparator and SortOrder; other's policy
// is discarded. This asymmetry is deliberate and load-bearing: merging a
// custom-policy heap into an empty accumulator of the same policy is the
// idiomatic reduce step, and comparisons only ever run the receiver's
// function, so the result still satisfies the heap property under it.
// Merging heaps whose comparators genuinely disagree does not fail or
// corrupt anything – the result is simply ordered by the receiver's rule.
//
// Complexity: O(1).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	return Heap[T]{
		root:  merge(h.root, other.root, h.cmp),
		size:  h.size + other.size,
		cmp:   h.cmp,
		order: h.order,
	}
}

// Len returns the number of elements. O(1) – the size is cached, never
// recounted.
func (h Heap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements. O(1).
func (h Heap[T]) IsEmpty() bool { return h.root == nil }

// Order returns the SortOrder the heap was constructed with.
func (h Heap[T]) Order() SortOrder { return h.order }
