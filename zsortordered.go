// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdqsort

import "golang.org/x/exp/constraints"

// orderedSorter carries the sort state for element types with a natural
// order. The bad-partition budget in limit is shared by every recursive
// call over descendants of the initial range.
type orderedSorter[E constraints.Ordered] struct {
	list  []E
	limit int
}

func sortOrdered[E constraints.Ordered](list []E) {
	size := len(list)
	if size < 2 {
		return
	}
	s := orderedSorter[E]{list: list, limit: log2Floor(size)}
	s.sort(0, size, true)
}

func (s *orderedSorter[E]) less(i, j int) bool {
	return s.list[i] < s.list[j]
}

func (s *orderedSorter[E]) swap(i, j int) {
	s.list[i], s.list[j] = s.list[j], s.list[i]
}

// sort sorts list[a:b). leftmost records whether the range starts at the
// leftmost position processed so far; only a non-leftmost range has a
// predecessor element to compare pivots against.
//
// Only the smaller half of each partition is handled by a recursive call;
// the larger half stays in the loop, keeping stack depth logarithmic.
func (s *orderedSorter[E]) sort(a, b int, leftmost bool) {
	for {
		length := b - a

		if length <= maxInsertion {
			s.insertionSort(a, b)
			return
		}

		// Too many bad pivots: cap the worst case with heap sort.
		if s.limit <= 0 {
			s.heapSort(a, b)
			return
		}

		s.selectPivot(a, b)

		// A predecessor not less than the pivot signals many elements
		// equal to it. Group the equal run in one pass and continue
		// with whatever follows it.
		if !leftmost && !s.less(a-1, a) {
			a = s.partitionEqual(a, b)
			continue
		}

		mid, alreadyPartitioned := s.partition(a, b)

		lower, upper := mid-a, b-(mid+1)
		if lower < length/badPartitionFraction || upper < length/badPartitionFraction {
			s.limit--
			s.breakPatterns(a, mid)
			s.breakPatterns(mid+1, b)
		} else if alreadyPartitioned {
			// The partition pass needed no swaps; the range is likely
			// sorted already. A swap-bounded insertion pass over both
			// halves either confirms that cheaply or gives up.
			if s.partialInsertionSort(a, mid) && s.partialInsertionSort(mid+1, b) {
				return
			}
		}

		if lower < upper {
			s.sort(a, mid, leftmost)
			a, leftmost = mid+1, false
		} else {
			s.sort(mid+1, b, false)
			b = mid
		}
	}
}

// insertionSort sorts list[a:b).
func (s *orderedSorter[E]) insertionSort(a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && s.less(j, j-1); j-- {
			s.swap(j, j-1)
		}
	}
}

// partialInsertionSort runs insertion sort over list[a:b) but gives up
// once more than maxPartialSwaps element moves have happened, reporting
// whether the range ended up sorted. On failure the range holds a
// partially shifted permutation of its input.
func (s *orderedSorter[E]) partialInsertionSort(a, b int) bool {
	swaps := 0
	for i := a + 1; i < b; i++ {
		for j := i; j > a && s.less(j, j-1); j-- {
			s.swap(j, j-1)
			if swaps++; swaps > maxPartialSwaps {
				return false
			}
		}
	}
	return true
}

// selectPivot picks a pivot for list[a:b) and swaps it to position a.
// Short ranges take the median of the first, middle and last elements.
// Long ranges take a ninther: the median of the medians of three spread
// groups of three, sampled from the first, middle and last thirds.
//
// Each group is sorted in index order, so a sorted range stays sorted
// here apart from the single staging swap, which the partition pass
// puts back.
func (s *orderedSorter[E]) selectPivot(a, b int) {
	length := b - a
	m := a + length/2
	if length >= nintherThreshold {
		t := length / 8
		s.sort3(a, a+t, a+2*t)
		s.sort3(m-t, m, m+t)
		s.sort3(b-1-2*t, b-1-t, b-1)
		s.sort3(a+t, m, b-1-t)
	} else {
		s.sort3(a, m, b-1)
	}
	s.swap(a, m)
}

// sort3 orders the elements at m0, m1, m2 so the median sits at m1.
func (s *orderedSorter[E]) sort3(m0, m1, m2 int) {
	if s.less(m1, m0) {
		s.swap(m1, m0)
	}
	if s.less(m2, m1) {
		s.swap(m2, m1)
		if s.less(m1, m0) {
			s.swap(m1, m0)
		}
	}
}

// partition splits list[a:b) around the pivot staged at a. On return the
// pivot sits at newpivot, everything left of it compares not-greater and
// everything right of it compares not-less. alreadyPartitioned reports
// that no elements had to be swapped.
func (s *orderedSorter[E]) partition(a, b int) (newpivot int, alreadyPartitioned bool) {
	i, j := a+1, b-1

	for i <= j && s.less(i, a) {
		i++
	}
	for i <= j && !s.less(j, a) {
		j--
	}
	if i > j {
		s.swap(j, a)
		return j, true
	}
	s.swap(i, j)
	i++
	j--

	for {
		for i <= j && s.less(i, a) {
			i++
		}
		for i <= j && !s.less(j, a) {
			j--
		}
		if i > j {
			break
		}
		s.swap(i, j)
		i++
		j--
	}
	s.swap(j, a)
	return j, false
}

// partitionEqual groups elements equal to the pivot staged at a in front
// of the elements greater than it, returning the first index past the
// equal run. It requires that list[a:b) holds nothing smaller than the
// pivot.
func (s *orderedSorter[E]) partitionEqual(a, b int) int {
	i, j := a+1, b-1
	for {
		for i <= j && !s.less(a, i) {
			i++
		}
		for i <= j && s.less(a, j) {
			j--
		}
		if i > j {
			break
		}
		s.swap(i, j)
		i++
		j--
	}
	return i
}

// breakPatterns swaps a few fixed positions around the quarter points of
// list[a:b) to perturb patterned inputs that keep defeating the pivot
// heuristics. Ranges short enough for insertion sort are left alone.
func (s *orderedSorter[E]) breakPatterns(a, b int) {
	length := b - a
	if length <= maxInsertion {
		return
	}
	q := length / 4
	s.swap(a, a+q)
	s.swap(b-1, b-1-q)
	if length >= nintherThreshold {
		s.swap(a+1, a+q+1)
		s.swap(b-2, b-2-q)
	}
}

// heapSort sorts list[a:b) via a binary max-heap.
func (s *orderedSorter[E]) heapSort(a, b int) {
	first := a
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		s.siftDown(i, hi, first)
	}
	for i := hi - 1; i >= 0; i-- {
		s.swap(first, first+i)
		s.siftDown(0, i, first)
	}
}

// siftDown restores the heap property below root for the heap stored at
// offset first with hi elements.
func (s *orderedSorter[E]) siftDown(root, hi, first int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && s.less(first+child, first+child+1) {
			child++
		}
		if !s.less(first+root, first+child) {
			return
		}
		s.swap(first+root, first+child)
		root = child
	}
}
