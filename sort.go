// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdqsort provides an in-place, unstable, comparator-parameterized
// sort with O(n log n) worst-case behavior.
//
// The algorithm is a pattern-defeating quicksort: quicksort partitioning
// augmented with insertion sort for short ranges, a cheap already-sorted
// detection pass, a duplicate-skipping partition for inputs with few
// distinct values, a deterministic shuffle that breaks inputs crafted
// against the pivot heuristics, and a heap-sort fallback that caps the
// worst case once too many unbalanced partitions have been seen.
//
// Sorting is not stable: elements that compare equal may be reordered.
// To sort a sub-range, slice the input first: Sort(v[i:j]).
package pdqsort

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

const (
	// Ranges at or below this length are insertion sorted.
	maxInsertion = 20

	// Ranges at or above this length select pivots with the ninther
	// instead of a plain median of three.
	nintherThreshold = 200

	// A partition is bad when either side holds fewer than a
	// 1/badPartitionFraction share of the range.
	badPartitionFraction = 8

	// partialInsertionSort gives up after this many element moves.
	maxPartialSwaps = 8
)

// Sort sorts a slice of any ordered type in ascending order.
// The sort is not guaranteed to be stable.
func Sort[E constraints.Ordered](list []E) {
	sortOrdered(list)
}

// SortFunc sorts the slice using the provided less function.
//
// The function must describe a strict weak ordering: irreflexive,
// transitive, and with transitive incomparability. SortFunc does not
// verify this; if the contract is violated the result is an unspecified
// permutation of the input. The sort is not guaranteed to be stable.
func SortFunc[E any](list []E, less func(a, b E) bool) {
	sortLessFunc(list, less)
}

// IsSorted reports whether the slice is sorted in ascending order.
func IsSorted[E constraints.Ordered](list []E) bool {
	for i := len(list) - 1; i > 0; i-- {
		if list[i] < list[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether the slice is sorted with respect to less.
func IsSortedFunc[E any](list []E, less func(a, b E) bool) bool {
	for i := len(list) - 1; i > 0; i-- {
		if less(list[i], list[i-1]) {
			return false
		}
	}
	return true
}

// log2Floor returns ⌊log2(n)⌋ for n > 0.
func log2Floor(n int) int {
	return bits.Len(uint(n)) - 1
}
