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
// queries

// Count returns how many elements of list anchored at l satisfy match.
//
// match is called exactly once for every element; the anchor is never passed to it.
func (l *Head[T]) Count(match func(h *Head[T]) bool) int {
	n := 0
	for h := l.next; h != l; h = h.next {
		if match(h) {
			n++
		}
	}
	return n
}

// CountValue returns how many elements of list anchored at l match value v.
//
// It is Count cousin for comparing elements against data living outside of the list.
func CountValue[T, V any](l *Head[T], v V, match func(v V, h *Head[T]) bool) int {
	n := 0
	for h := l.next; h != l; h = h.next {
		if match(v, h) {
			n++
		}
	}
	return n
}
