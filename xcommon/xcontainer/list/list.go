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

// Package list provides intrusive circular double-linked lists.
//
// Go standard library has container/list package which already provides
// double-linked lists. However in that implementation list itself is kept
// separate from data structures representing elements. This package provides
// alternative approach where elements embed necessary list heads which is
// sometimes more convenient, for example when one wants to move a list
// element in O(1) starting from pointer to just its data.
//
// A list is represented by an anchor head which is not part of any element:
//
//	type item struct {
//		value int
//		link  list.Head[item]
//	}
//
//	var l list.Head[item]
//	l.Init()
//
//	x := &item{value: 1}
//	l.PushBack(x.link.Bind(x))
//
// The element owning a head is retrieved with Head.Entry. The anchor has no
// owner and its Entry is nil.
//
// A head removed from a list via Delete has both its links nil. Inserting a
// head which is still linked into some list corrupts both lists. The package
// does not detect that, nor it does any locking: all operations assume
// exclusive access to the list and to the heads passed in.
package list

// Head is a list head entry for an element in an intrusive doubly-linked list.
//
// Zero HEAD value is NOT valid as list anchor - always call Init() to
// initialize an anchor before using it.
type Head[T any] struct {
	next, prev *Head[T]
	entry      *T // element embedding this head; nil for anchor
}

func (h *Head[T]) Next() *Head[T] { return h.next }
func (h *Head[T]) Prev() *Head[T] { return h.prev }

// Entry returns element that embeds h.
func (h *Head[T]) Entry() *T { return h.entry }

// Bind associates h with element that embeds it and returns h.
func (h *Head[T]) Bind(entry *T) *Head[T] {
	h.entry = entry
	return h
}

// Init initializes a head making it point to itself via .next and .prev
//
// Initialized head represents an empty list.
func (h *Head[T]) Init() {
	h.next = h
	h.prev = h
}

// Linked returns whether h is currently linked into a list.
func (h *Head[T]) Linked() bool { return h.next != nil }

// Empty returns whether list anchored at l has no elements.
func (l *Head[T]) Empty() bool { return l.next == l }

// Len returns number of elements in list anchored at l.
//
// It is O(n).
func (l *Head[T]) Len() int {
	n := 0
	for h := l.next; h != l; h = h.next {
		n++
	}
	return n
}

// splice links elem in between adjacent prev and next.
func splice[T any](prev, elem, next *Head[T]) {
	prev.next = elem
	next.prev = elem
	elem.next = next
	elem.prev = prev
}

// unlink removes h from its list leaving h's own links as they are.
func (h *Head[T]) unlink() {
	h.next.prev = h.prev
	h.prev.next = h.next
}

// InsertBefore links h to be right before mark.
//
// h must not be linked anywhere.
func (h *Head[T]) InsertBefore(mark *Head[T]) {
	splice(mark.prev, h, mark)
}

// InsertAfter links h to be right after mark.
//
// h must not be linked anywhere.
func (h *Head[T]) InsertAfter(mark *Head[T]) {
	splice(mark, h, mark.next)
}

// PushFront inserts elem at head of list anchored at l.
func (l *Head[T]) PushFront(elem *Head[T]) { elem.InsertAfter(l) }

// PushBack inserts elem at tail of list anchored at l.
func (l *Head[T]) PushBack(elem *Head[T]) { elem.InsertBefore(l) }

// Delete deletes h from its list.
//
// After Delete h is detached: both its links are nil.
func (h *Head[T]) Delete() {
	h.unlink()
	h.next = nil
	h.prev = nil
}

// MoveBefore moves a to be before b.
//
// a might be either linked (to the same or another list) or detached.
func (a *Head[T]) MoveBefore(b *Head[T]) {
	if a == b {
		return
	}
	if a.Linked() {
		a.unlink()
	}
	a.InsertBefore(b)
}

// MoveAfter moves a to be after b.
//
// a might be either linked (to the same or another list) or detached.
func (a *Head[T]) MoveAfter(b *Head[T]) {
	if a == b {
		return
	}
	if a.Linked() {
		a.unlink()
	}
	a.InsertAfter(b)
}

// ForEach calls f for every element of list anchored at l in link order.
//
// f must not modify the list.
func (l *Head[T]) ForEach(f func(h *Head[T])) {
	for h := l.next; h != l; h = h.next {
		f(h)
	}
}

// ForEachReverse is like ForEach but goes from tail to head.
func (l *Head[T]) ForEachReverse(f func(h *Head[T])) {
	for h := l.prev; h != l; h = h.prev {
		f(h)
	}
}

// ForEachSafe is like ForEach but f is allowed to delete the head it was
// called with.
func (l *Head[T]) ForEachSafe(f func(h *Head[T])) {
	for h, next := l.next, l.next.next; h != l; h, next = next, next.next {
		f(h)
	}
}

// ForEachIn calls f for every head in span [from, to] following .next links.
//
// The span must not contain list anchor.
func ForEachIn[T any](from, to *Head[T], f func(h *Head[T])) {
	for h := from; ; h = h.next {
		f(h)
		if h == to {
			break
		}
	}
}
