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
// positional insertion

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the error reported when insertion offset lies outside of the list.
var ErrOutOfBounds = errors.New("offset out of bounds")

// OutOfBoundsError is returned by InsertAt when requested offset cannot be reached.
type OutOfBoundsError struct {
	Offset int // requested offset
	Len    int // list length seen while walking
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("insert at %d: list has %d elements: %s", e.Offset, e.Len, ErrOutOfBounds)
}

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// InsertAt inserts elem at logical offset n of list anchored at l.
//
// For n >= 0 the offset is counted forward from list head: elem becomes the
// n-th element, 0 meaning new head. n must be < list length.
//
// For n < 0 the offset is counted backward from list tail: -1 makes elem the
// new last element, and -k puts elem right after the element that is k-1
// steps back from the tail. n must be >= -(list length).
//
// If n is out of bounds *OutOfBoundsError is returned and the list is left
// unmodified.
func (l *Head[T]) InsertAt(elem *Head[T], n int) error {
	// walk at most |n| steps; hitting the anchor means we ran out of elements
	steps := 0
	if n >= 0 {
		at := l.next
		for ; steps < n && at != l; steps++ {
			at = at.next
		}
		if at == l {
			return &OutOfBoundsError{Offset: n, Len: steps}
		}
		elem.InsertBefore(at)
		return nil
	}

	at := l.prev
	for ; steps < -n-1 && at != l; steps++ {
		at = at.prev
	}
	if at == l {
		return &OutOfBoundsError{Offset: n, Len: steps}
	}
	elem.InsertAfter(at)
	return nil
}

// InsertAtUnchecked is like InsertAt but does not verify n against list length.
//
// The walk goes |n| steps from the anchor, with the anchor itself counting
// as one step when it is passed. An offset beyond list length thus wraps
// around: for a list of size elements, n behaves as n - (size+1).
func (l *Head[T]) InsertAtUnchecked(elem *Head[T], n int) {
	at := l
	for ; n > 0; n-- {
		at = at.next
	}
	for ; n < 0; n++ {
		at = at.prev
	}
	elem.InsertAfter(at)
}
