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
// insert, swap & clear

import (
	"context"
	"flag"
	"fmt"
	"io"

	"lab.nexedi.com/kirr/go123/prog"
)

// InsertOp returns operation that inserts value at logical offset n.
//
// Offset semantic is that of list.Head.InsertAt. If unchecked, offset is not
// verified and wraps around the sequence.
func InsertOp(n int, value int64, unchecked bool) Op {
	return Op{Name: "insert", Do: func(_ context.Context, s *Seq) (string, error) {
		return "", s.Insert(n, value, unchecked)
	}}
}

// SwapOp returns operation that exchanges items at positions i and j.
func SwapOp(i, j int) Op {
	return Op{Name: "swap", Do: func(_ context.Context, s *Seq) (string, error) {
		return "", s.Swap(i, j)
	}}
}

// ClearOp returns operation that deletes items at positions [from, to].
func ClearOp(from, to int) Op {
	return Op{Name: "clear", Do: func(_ context.Context, s *Seq) (string, error) {
		return "", s.Clear(from, to)
	}}
}

// ----------------------------------------

const insertSummary = "insert value into sequences"

func insertUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist insert [options] -at <n> -value <v> <input>...
Insert value v into sequences at logical offset n.

Non-negative n counts from the beginning: v becomes n-th item, 0 meaning
the first one. Negative n counts from the end: -1 makes v the last item.
n must satisfy -len <= n < len unless -unchecked is given, in which case
an offset beyond sequence length wraps around.

Options:

`)
}

func insertMain(argv []string) {
	var opts Options
	var at int
	var value int64
	var unchecked bool
	inputv := parseArgs(argv, insertUsage, &opts, func(flags *flag.FlagSet) {
		flags.IntVar(&at, "at", 0, "logical offset to insert at")
		flags.Int64Var(&value, "value", 0, "value to insert")
		flags.BoolVar(&unchecked, "unchecked", false, "do not verify offset and let it wrap around")
	})

	runMain(opts, inputv, InsertOp(at, value, unchecked))
}

// ----------------------------------------

const swapSummary = "exchange two items of sequences"

func swapUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist swap [options] -i <i> -j <j> <input>...
Exchange items at positions i and j (counting from 0) in sequences.

Options:

`)
}

func swapMain(argv []string) {
	var opts Options
	var i, j int
	inputv := parseArgs(argv, swapUsage, &opts, func(flags *flag.FlagSet) {
		flags.IntVar(&i, "i", -1, "position of first item")
		flags.IntVar(&j, "j", -1, "position of second item")
	})
	if i < 0 || j < 0 {
		prog.Fatal("swap: -i and -j must be provided")
	}

	runMain(opts, inputv, SwapOp(i, j))
}

// ----------------------------------------

const clearSummary = "delete span of items from sequences"

func clearUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist clear [options] -from <i> -to <j> <input>...
Delete items at positions i through j inclusive (counting from 0) from sequences.

If i > j the span wraps around the end of a sequence: items from position i
till the end, and from the beginning till position j, are deleted.

Options:

`)
}

func clearMain(argv []string) {
	var opts Options
	var from, to int
	inputv := parseArgs(argv, clearUsage, &opts, func(flags *flag.FlagSet) {
		flags.IntVar(&from, "from", -1, "position of first item to delete")
		flags.IntVar(&to, "to", -1, "position of last item to delete")
	})
	if from < 0 || to < 0 {
		prog.Fatal("clear: -from and -to must be provided")
	}

	runMain(opts, inputv, ClearOp(from, to))
}
