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
// sort & reverse

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// SortOp returns operation that sorts sequence in ascending, or, if desc, in descending order.
func SortOp(desc bool) Op {
	return Op{Name: "sort", Do: func(_ context.Context, s *Seq) (string, error) {
		s.Sort(desc)
		return "", nil
	}}
}

// ReverseOp returns operation that reverses sequence.
func ReverseOp() Op {
	return Op{Name: "reverse", Do: func(_ context.Context, s *Seq) (string, error) {
		s.Reverse()
		return "", nil
	}}
}

// ----------------------------------------

const sortSummary = "sort sequences"

func sortUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist sort [options] <input>...
Sort sequences of integers.

<input> is path to file with a sequence; "-" means standard input.
Every input is sorted on its own; results are printed in the order of inputs.

Options:

`)
}

func sortMain(argv []string) {
	var opts Options
	var desc bool
	inputv := parseArgs(argv, sortUsage, &opts, func(flags *flag.FlagSet) {
		flags.BoolVar(&desc, "desc", false, "sort in descending order")
	})

	runMain(opts, inputv, SortOp(desc))
}

// ----------------------------------------

const reverseSummary = "reverse sequences"

func reverseUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist reverse [options] <input>...
Reverse order of sequences of integers.

Options:

`)
}

func reverseMain(argv []string) {
	var opts Options
	inputv := parseArgs(argv, reverseUsage, &opts, nil)
	runMain(opts, inputv, ReverseOp())
}
