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
// range deletion

// Clear deletes all heads in span [from, to] following .next links.
//
// It is not safe to call Clear with span containing list anchor - use
// ClearSafe for that.
func Clear[T any](from, to *Head[T]) {
	for h := from; ; {
		next := h.next
		h.Delete()
		if h == to {
			break
		}
		h = next
	}
}

// ClearSafe deletes all heads in span [from, to] following .next links.
//
// Contrary to Clear, the span may wrap across list anchor l: the anchor is
// skipped and stays in place.
func (l *Head[T]) ClearSafe(from, to *Head[T]) {
	for h := from; ; {
		next := h.next
		if h != l {
			h.Delete()
		}
		if h == to {
			break
		}
		h = next
	}
}

// ClearAll deletes all elements of list anchored at l and makes l empty.
func (l *Head[T]) ClearAll() {
	for h := l.next; h != l; {
		next := h.next
		h.next = nil
		h.prev = nil
		h = next
	}
	l.Init()
}
