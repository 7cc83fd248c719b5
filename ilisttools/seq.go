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

package ilisttools
// sequences of integers kept on intrusive list

import (
	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/ilist/xcommon/xcontainer/list"
)

// Item is one integer of a sequence.
type Item struct {
	Value int64
	link  list.Head[Item]
}

// Seq is sequence of integers represented as intrusive list of Items.
//
// Seq is not safe for concurrent use.
type Seq struct {
	head list.Head[Item]
}

// Load creates new sequence with items holding valuev.
func Load(valuev []int64) *Seq {
	s := &Seq{}
	s.head.Init()

	// items live in one array; the list only links them
	itemv := make([]Item, len(valuev))
	for i, v := range valuev {
		x := &itemv[i]
		x.Value = v
		s.head.PushBack(x.link.Bind(x))
	}
	return s
}

// Values returns sequence items values in order.
func (s *Seq) Values() []int64 {
	valuev := []int64{}
	s.head.ForEach(func(h *list.Head[Item]) {
		valuev = append(valuev, h.Entry().Value)
	})
	return valuev
}

// Len returns number of items in the sequence.
func (s *Seq) Len() int { return s.head.Len() }

// At returns i-th item of the sequence, or nil if there is no such item.
func (s *Seq) At(i int) *Item {
	if i < 0 {
		return nil
	}
	for h := s.head.Next(); h != &s.head; h = h.Next() {
		if i == 0 {
			return h.Entry()
		}
		i--
	}
	return nil
}

// at is At that reports missing item as error.
func (s *Seq) at(i int) (*Item, error) {
	x := s.At(i)
	if x == nil {
		return nil, errors.Errorf("index %d out of range [0:%d)", i, s.Len())
	}
	return x, nil
}

func cmpItem(a, b *list.Head[Item]) int {
	av, bv := a.Entry().Value, b.Entry().Value
	switch {
	case av < bv:
		return -1
	case av > bv:
		return +1
	}
	return 0
}

// Sort sorts the sequence in ascending, or, if desc, in descending order.
func (s *Seq) Sort(desc bool) {
	s.head.Sort(cmpItem, !desc)
}

// Reverse reverses order of the sequence.
func (s *Seq) Reverse() {
	s.head.Reverse()
}

// Insert inserts v at logical offset n.
//
// See list.Head.InsertAt for offset semantic. If unchecked, offset is not
// verified and wraps around instead.
func (s *Seq) Insert(n int, v int64, unchecked bool) error {
	x := &Item{Value: v}
	x.link.Bind(x)
	if unchecked {
		s.head.InsertAtUnchecked(&x.link, n)
		return nil
	}
	return s.head.InsertAt(&x.link, n)
}

// Swap exchanges items at positions i and j.
func (s *Seq) Swap(i, j int) error {
	xi, err := s.at(i)
	if err != nil {
		return err
	}
	xj, err := s.at(j)
	if err != nil {
		return err
	}
	list.Exchange(&xi.link, &xj.link)
	return nil
}

// Clear deletes items in between positions from and to inclusive.
//
// If from > to the span wraps around the end of the sequence: items from
// position from up to the end and items from the beginning up to position to
// are deleted.
func (s *Seq) Clear(from, to int) error {
	xfrom, err := s.at(from)
	if err != nil {
		return err
	}
	xto, err := s.at(to)
	if err != nil {
		return err
	}
	s.head.ClearSafe(&xfrom.link, &xto.link)
	return nil
}

// Count returns how many items have value v.
func (s *Seq) Count(v int64) int {
	return list.CountValue(&s.head, v, func(v int64, h *list.Head[Item]) bool {
		return h.Entry().Value == v
	})
}
