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
// count

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
)

// CountOp returns operation that reports how many items have value v.
func CountOp(value int64) Op {
	return Op{Name: "count", Do: func(_ context.Context, s *Seq) (string, error) {
		return strconv.Itoa(s.Count(value)), nil
	}}
}

const countSummary = "count items with given value"

func countUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: ilist count [options] -value <v> <input>...
Count items equal to v in sequences.

For every input "<input>\t<count>" line is printed.

Options:

`)
}

func countMain(argv []string) {
	var opts Options
	var value int64
	inputv := parseArgs(argv, countUsage, &opts, func(flags *flag.FlagSet) {
		flags.Int64Var(&value, "value", 0, "value to count")
	})

	runMain(opts, inputv, CountOp(value))
}
