// Copyright (C) 2017-2020  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

package list
// in-place sorting

// Sort sorts elements of list anchored at l.
//
// cmp(a, b) must return 0 if a and b are equal, > 0 if a sorts after b, and
// < 0 otherwise. Ascending order is produced if ascending=true, descending
// order otherwise.
//
// Sorting is done with quicksort that moves list heads themselves via
// Exchange - elements data is never copied and no memory is allocated. Sort
// recurses; on already sorted in reverse order input recursion depth and
// running time degrade to O(n) and O(n²).
//
// Sorting already sorted list does not change any link.
func (l *Head[T]) Sort(cmp func(a, b *Head[T]) int, ascending bool) {
	qsort(l, l, cmp)
	if !ascending {
		l.Reverse()
	}
}

// qsort sorts span strictly in between before and after.
//
// before and after are outside of the span and so are never moved while the
// span is being sorted.
func qsort[T any](before, after *Head[T], cmp func(a, b *Head[T]) int) {
	// empty or 1-element span
	if before.next == after || before.next.next == after {
		return
	}

	pivot := partition(before, after, cmp)
	qsort(before, pivot, cmp)
	qsort(pivot, after, cmp)
}

// partition partitions span in between before and after around its last element.
//
// After partition elements that are <= pivot go before the pivot and
// elements > pivot after it. The pivot is returned.
func partition[T any](before, after *Head[T], cmp func(a, b *Head[T]) int) *Head[T] {
	pivot := after.prev

	// lo is the last head of [<= pivot] prefix.
	// Exchange moves heads, so after exchanging lo.next with j, j stands
	// where lo.next was and becomes new lo, while the old lo.next stands
	// where j was and scanning continues after it.
	lo := before
	for j := before.next; j != pivot; {
		if cmp(j, pivot) <= 0 {
			x := lo.next
			Exchange(x, j)
			lo = j
			j = x.next
		} else {
			j = j.next
		}
	}

	Exchange(lo.next, pivot)
	return pivot
}
