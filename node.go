package pairheap

import "github.com/katalvlaran/pairheap/order"

// node is one vertex of the pairing-heap tree: a value plus an immutable
// list of child subtrees. A nil *node is the empty heap. Nodes are never
// modified after creation – merge allocates fresh nodes and shares the
// rest – which is what makes Heap values persistent.
type node[T any] struct {
	value    T
	children *childList[T]
}

// childList is an immutable cons list of child nodes. Prepending allocates
// one cell and shares the tail, so a child can be added to a node in O(1)
// without disturbing heaps that still reference the old list.
type childList[T any] struct {
	head *node[T]
	tail *childList[T]
}

// merge combines two heap trees in O(1): the root whose value does not come
// after the other's (Less or Equal under cmp) becomes the new root, and the
// other tree is prepended to its children. On Equal the first argument's
// value wins; callers rely on that rule being stable.
func merge[T any](a, b *node[T], cmp order.Comparator[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	if cmp(a.value, b.value) == order.Greater {
		return &node[T]{value: b.value, children: &childList[T]{head: a, tail: b.children}}
	}

	return &node[T]{value: a.value, children: &childList[T]{head: b, tail: a.children}}
}

// mergePairs combines the children of a removed root into a single tree
// using the pairing heap's two-pass shape: merge the first pair, then merge
// that result into the recursive combination of the rest.
//
//	mergePairs([])            = empty
//	mergePairs([x])           = x
//	mergePairs([x, y] ++ rest) = merge(merge(x, y), mergePairs(rest))
//
// This exact right-associated pairing is what yields the amortized
// O(log n) Pop; a left-to-right sequential fold would degrade to O(k).
func mergePairs[T any](l *childList[T], cmp order.Comparator[T]) *node[T] {
	if l == nil {
		return nil
	}
	if l.tail == nil {
		return l.head
	}

	return merge(merge(l.head, l.tail.head, cmp), mergePairs(l.tail.tail, cmp), cmp)
}

// flatten appends the subtree's values to out in preorder: root first, then
// each child's flattening in children-list order. No sorted-order guarantee.
func (n *node[T]) flatten(out []T) []T {
	if n == nil {
		return out
	}

	out = append(out, n.value)
	for l := n.children; l != nil; l = l.tail {
		out = l.head.flatten(out)
	}

	return out
}
