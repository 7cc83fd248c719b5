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
// input/output formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shamaton/msgpack"
)

// supported formats
const (
	FormatText    = "text"
	FormatMsgpack = "msgpack"
)

var formatv = []string{FormatText, FormatMsgpack}

func checkFormat(format string) error {
	for _, f := range formatv {
		if f == format {
			return nil
		}
	}
	return errors.Errorf("unknown format %q (supported: %s)", format, strings.Join(formatv, ", "))
}

// ReadValues reads sequence of integers from r in specified format.
func ReadValues(r io.Reader, format string) ([]int64, error) {
	switch format {
	case FormatText:
		return readText(r)
	case FormatMsgpack:
		return readMsgpack(r)
	}
	return nil, checkFormat(format)
}

// WriteValues writes valuev to w in specified format.
func WriteValues(w io.Writer, format string, valuev []int64) error {
	switch format {
	case FormatText:
		return writeText(w, valuev)
	case FormatMsgpack:
		return writeMsgpack(w, valuev)
	}
	return checkFormat(format)
}

// readText reads whitespace-separated decimal integers.
//
// '#' starts comment that lasts till end of line. Lines are not limited in
// length: writeText emits a whole sequence as one line.
func readText(r io.Reader) ([]int64, error) {
	valuev := []int64{}
	br := bufio.NewReader(r)
	for lineno := 1; ; lineno++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read")
		}

		if i := strings.IndexByte(line, '#'); i != -1 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineno)
			}
			valuev = append(valuev, v)
		}

		if err == io.EOF {
			return valuev, nil
		}
	}
}

// writeText writes valuev space-separated on one line.
func writeText(w io.Writer, valuev []int64) error {
	bw := bufio.NewWriter(w)
	for i, v := range valuev {
		if i != 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatInt(v, 10))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// readMsgpack reads one msgpack array of integers.
func readMsgpack(r io.Reader) ([]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	valuev := []int64{}
	err = msgpack.Decode(data, &valuev)
	if err != nil {
		return nil, errors.Wrap(err, "msgpack")
	}
	return valuev, nil
}

func writeMsgpack(w io.Writer, valuev []int64) error {
	data, err := msgpack.Encode(valuev)
	if err != nil {
		return errors.Wrap(err, "msgpack")
	}
	_, err = w.Write(data)
	return err
}

// formatSummary returns one-line description of formats for usage texts.
func formatSummary() string {
	return fmt.Sprintf("one of: %s (see 'ilist help format')", strings.Join(formatv, ", "))
}
