package order

import (
	"cmp"
	"errors"
)

// Sentinel errors used as panic messages by the builder functions.
// A nil function is a construction-time programming error, not a runtime
// condition, so builders fail fast instead of returning an error value.
var (
	// ErrNilKeyFunc indicates a nil key-extraction function was passed to By or ThenBy.
	ErrNilKeyFunc = errors.New("order: key function must be non-nil")
	// ErrNilCompareFunc indicates a nil comparison function was passed to Using or Then.
	ErrNilCompareFunc = errors.New("order: compare function must be non-nil")
	// ErrNilLessFunc indicates a nil less function was passed to FromLess.
	ErrNilLessFunc = errors.New("order: less function must be non-nil")
)

// Ordering is the three-way result of comparing two values.
type Ordering int

const (
	// Less means the first value sorts strictly before the second.
	Less Ordering = -1
	// Equal means the two values are interchangeable under the comparator.
	Equal Ordering = 0
	// Greater means the first value sorts strictly after the second.
	Greater Ordering = 1
)

// String returns "Less", "Equal" or "Greater" for the three defined values,
// and "Ordering(n)" for anything else.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// Comparator is a pure three-way comparison over T.
// It must implement a total preorder; see the package documentation.
type Comparator[T any] func(a, b T) Ordering

// Natural returns the Comparator induced by T's built-in ordering.
// Works for every cmp.Ordered type (integers, floats, strings).
//
// Complexity: O(1) per comparison.
func Natural[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// By returns a Comparator that extracts a naturally ordered key from each
// value and compares the keys: compare(a, b) = naturalCompare(key(a), key(b)).
//
// Panics with ErrNilKeyFunc if key is nil.
//
// Complexity: O(1) per comparison plus the cost of key.
func By[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	if key == nil {
		panic(ErrNilKeyFunc.Error())
	}

	return func(a, b T) Ordering {
		return Ordering(cmp.Compare(key(a), key(b)))
	}
}

// Using wraps a caller-supplied three-way comparison function verbatim.
// The function must implement a total preorder over T.
//
// Panics with ErrNilCompareFunc if fn is nil.
func Using[T any](fn func(a, b T) Ordering) Comparator[T] {
	if fn == nil {
		panic(ErrNilCompareFunc.Error())
	}

	return Comparator[T](fn)
}

// FromLess adapts a boolean strict-less function into a Comparator:
// two values neither of which is less than the other compare Equal.
//
// Panics with ErrNilLessFunc if less is nil.
//
// Complexity: up to two calls of less per comparison.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	if less == nil {
		panic(ErrNilLessFunc.Error())
	}

	return func(a, b T) Ordering {
		switch {
		case less(a, b):
			return Less
		case less(b, a):
			return Greater
		default:
			return Equal
		}
	}
}

// ThenBy refines c with a key-extraction tie-breaker: values that compare
// Equal under c are re-compared by key. Chainable to arbitrary depth:
//
//	byRank := order.ThenBy(order.By(rankOf), nameOf) // rank first, then name
//
// Panics with ErrNilKeyFunc if key is nil.
func ThenBy[T any, K cmp.Ordered](c Comparator[T], key func(T) K) Comparator[T] {
	return c.Then(By(key))
}

// Then refines c with another Comparator: next is consulted only when c
// reports Equal. Composition is associative, so long chains may be built
// in any grouping with identical results.
//
// Panics with ErrNilCompareFunc if next is nil.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	if next == nil {
		panic(ErrNilCompareFunc.Error())
	}

	return func(a, b T) Ordering {
		if r := c(a, b); r != Equal {
			return r
		}

		return next(a, b)
	}
}

// Reversed returns the direction-inverted Comparator: Less and Greater are
// swapped, Equal is unchanged. Reversing twice yields the original ordering.
// The heap package uses this to realize biggest-first (MaxFirst) heaps.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) Ordering {
		return -c(a, b)
	}
}
