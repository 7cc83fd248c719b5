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
// registry for all help topics

import "lab.nexedi.com/kirr/go123/prog"

const helpFormat =
`Every ilist command reads sequences of integers from its inputs and, unless
it prints a report, writes resulting sequences to standard output.

Input format is selected with -format, output format with -oformat (by
default output format is the same as input one). The following formats are
supported:

- text      whitespace-separated decimal integers. '#' starts a comment
            that lasts till end of line. On output a sequence is printed on
            one line.

- msgpack   one msgpack array of integers. On output one array is written
            per sequence.
`

var helpTopics = prog.HelpRegistry{
	{Name: "format", Summary: "input and output formats", Text: helpFormat},
}
