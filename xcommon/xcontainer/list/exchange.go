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
// topology changes: exchange & reverse

// Exchange swaps positions of a and b.
//
// a and b must be linked, either into the same list or into different
// lists, and must not be list anchors. Elements data is not touched - only
// links are changed. Exchange is O(1).
func Exchange[T any](a, b *Head[T]) {
	switch {
	case a == b:
		return

	case a.next == b:
		exchangeAdjacent(a, b)

	case b.next == a:
		exchangeAdjacent(b, a)

	default:
		a.prev.next, a.next.prev = b, b
		b.prev.next, b.next.prev = a, a
		a.next, b.next = b.next, a.next
		a.prev, b.prev = b.prev, a.prev
	}
}

// exchangeAdjacent swaps x and y provided that x is right before y.
func exchangeAdjacent[T any](x, y *Head[T]) {
	prev, next := x.prev, y.next
	prev.next, y.prev = y, prev
	y.next, x.prev = x, y
	x.next, next.prev = next, x
}

// Reverse reverses order of elements in list anchored at l.
//
// It is O(n) and does not allocate.
func (l *Head[T]) Reverse() {
	h := l
	for {
		h.next, h.prev = h.prev, h.next
		h = h.prev // was .next before the flip
		if h == l {
			break
		}
	}
}
