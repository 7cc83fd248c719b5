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

// Package ilisttools provides tools for manipulating sequences of integers
// kept on intrusive lists.
package ilisttools

import (
	"context"
	"flag"
	"io"
	"os"

	"lab.nexedi.com/kirr/go123/prog"

	"lab.nexedi.com/kirr/ilist/internal/log"
)

// registry of all ilist commands
var commands = prog.CommandRegistry{
	// NOTE the order commands are listed here is the order how they will appear in help
	{Name: "sort",    Summary: sortSummary,    Usage: sortUsage,    Main: sortMain},
	{Name: "reverse", Summary: reverseSummary, Usage: reverseUsage, Main: reverseMain},
	{Name: "insert",  Summary: insertSummary,  Usage: insertUsage,  Main: insertMain},
	{Name: "swap",    Summary: swapSummary,    Usage: swapUsage,    Main: swapMain},
	{Name: "clear",   Summary: clearSummary,   Usage: clearUsage,   Main: clearMain},
	{Name: "count",   Summary: countSummary,   Usage: countUsage,   Main: countMain},
}

// main ilist driver
var Prog = prog.MainProg{
	Name:       "ilist",
	Summary:    "Ilist is a tool to manipulate sequences of integers",
	Commands:   commands,
	HelpTopics: helpTopics,
}

// parseArgs parses argv of a command working on inputs.
//
// setup, if !nil, registers command-specific flags. Inputs are returned.
func parseArgs(argv []string, usage func(w io.Writer), opts *Options, setup func(flags *flag.FlagSet)) []string {
	flags := flag.NewFlagSet("", flag.ExitOnError)
	flags.Usage = func() { usage(os.Stderr); flags.PrintDefaults() }
	opts.registerFlags(flags)
	if setup != nil {
		setup(flags)
	}
	flags.Parse(argv[1:])

	inputv := flags.Args()
	if len(inputv) < 1 {
		flags.Usage()
		prog.Exit(2)
	}
	return inputv
}

// runMain runs op over inputs on behalf of a command and exits on error.
func runMain(opts Options, inputv []string, op Op) {
	if opts.Verbose {
		err := log.SetVerbosity(1)
		if err != nil {
			prog.Fatal(err)
		}
	}

	err := Run(context.Background(), os.Stdout, opts, inputv, op)
	log.Flush()
	if err != nil {
		prog.Fatal(err)
	}
}
