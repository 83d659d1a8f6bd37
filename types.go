// Package pairheap: core types, options, and sentinel errors.
package pairheap

import "errors"

// Sentinel errors for pairheap construction.
var (
	// ErrNilComparator indicates a heap constructor was given a nil comparator.
	ErrNilComparator = errors.New("pairheap: comparator must be non-nil")
)

// SortOrder selects which end of the ordering has retrieval priority.
// It is fixed at heap construction and never changes afterwards.
type SortOrder int

const (
	// MinFirst gives priority to the smallest value under the comparator.
	MinFirst SortOrder = iota
	// MaxFirst gives priority to the largest value under the comparator.
	MaxFirst
)

// String returns "MinFirst" or "MaxFirst".
func (o SortOrder) String() string {
	if o == MaxFirst {
		return "MaxFirst"
	}

	return "MinFirst"
}

// Options contains tunable construction parameters for a Heap.
//
// Order – which end of the ordering has retrieval priority.
// Default is MinFirst (smallest-first).
type Options struct {
	Order SortOrder
}

// Option represents a functional option for heap construction.
type Option func(*Options)

// WithOrder sets the sort direction of the heap being constructed.
// MaxFirst makes Peek/Pop yield the largest value under the comparator.
func WithOrder(order SortOrder) Option {
	return func(o *Options) {
		o.Order = order
	}
}

// DefaultOptions returns an Options struct with default settings:
// Order=MinFirst (the smallest value has priority).
func DefaultOptions() Options {
	return Options{
		Order: MinFirst,
	}
}
