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

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"lab.nexedi.com/kirr/ilist/xcommon/xcontainer/list"
)

// diff computes difference for two strings a and b.
func diff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffv := dmp.DiffMain(a, b, /*checklines=*/false)
	return dmp.DiffPrettyText(diffv)
}

// writeInputs creates files with given content in a temporary directory and returns their paths.
func writeInputs(t *testing.T, contentv ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var pathv []string
	for i, content := range contentv {
		path := filepath.Join(dir, string(rune('a'+i))+".txt")
		err := os.WriteFile(path, []byte(content), 0644)
		if err != nil {
			t.Fatal(err)
		}
		pathv = append(pathv, path)
	}
	return pathv
}

func TestRun(t *testing.T) {
	inputv := writeInputs(t,
		"10 20 30 40\n",
		"40 10 30 20\n",
		"5 5 10 5\n",
	)

	for _, tt := range []struct {
		op    Op
		outOk string
	}{
		{InsertOp(2, 25, false), "10 20 25 30 40\n40 10 25 30 20\n5 5 25 10 5\n"},
		{SortOp(false),          "10 20 30 40\n10 20 30 40\n5 5 5 10\n"},
		{SortOp(true),           "40 30 20 10\n40 30 20 10\n10 5 5 5\n"},
		{ReverseOp(),            "40 30 20 10\n20 30 10 40\n5 10 5 5\n"},
		{SwapOp(1, 2),           "10 30 20 40\n40 30 10 20\n5 10 5 5\n"},
		{ClearOp(3, 0),          "20 30\n10 30\n5 10\n"},
		{CountOp(5),             inputv[0] + "\t0\n" + inputv[1] + "\t0\n" + inputv[2] + "\t3\n"},
	} {
		t.Run(tt.op.Name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := Run(context.Background(), out, Options{Format: FormatText}, inputv, tt.op)
			if err != nil {
				t.Fatal(err)
			}
			if out.String() != tt.outOk {
				t.Errorf("output different:\n%v", diff(tt.outOk, out.String()))
			}
		})
	}
}

func TestRunJobs(t *testing.T) {
	var contentv []string
	var outOk strings.Builder
	for i := 0; i < 10; i++ {
		contentv = append(contentv, "3 1 2\n")
		outOk.WriteString("1 2 3\n")
	}
	inputv := writeInputs(t, contentv...)

	out := &bytes.Buffer{}
	err := Run(context.Background(), out, Options{Format: FormatText, Jobs: 2}, inputv, SortOp(false))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != outOk.String() {
		t.Errorf("output different:\n%v", diff(outOk.String(), out.String()))
	}
}

func TestRunMsgpack(t *testing.T) {
	inputv := writeInputs(t, "3 -1 2\n")

	// text -> msgpack
	out := &bytes.Buffer{}
	opts := Options{Format: FormatText, OutFormat: FormatMsgpack}
	err := Run(context.Background(), out, opts, inputv, SortOp(false))
	if err != nil {
		t.Fatal(err)
	}

	// msgpack -> text
	dir := t.TempDir()
	mpath := filepath.Join(dir, "x.msgpack")
	if err := os.WriteFile(mpath, out.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	opts = Options{Format: FormatMsgpack, OutFormat: FormatText}
	err = Run(context.Background(), out, opts, []string{mpath}, ReverseOp())
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "3 2 -1\n" {
		t.Errorf("output different:\n%v", diff("3 2 -1\n", out.String()))
	}
}

func TestRunError(t *testing.T) {
	inputv := writeInputs(t, "10 20 30 40\n", "1 2 3 4 5 6\n")

	// out of bounds for first input only
	out := &bytes.Buffer{}
	err := Run(context.Background(), out, Options{Format: FormatText}, inputv, InsertOp(5, 0, false))
	if err == nil || !strings.Contains(err.Error(), list.ErrOutOfBounds.Error()) {
		t.Fatalf("insert: err = %v; want out of bounds", err)
	}
	if !strings.HasPrefix(err.Error(), "insert: "+inputv[0]+": ") {
		t.Fatalf("insert: error does not mention input: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("insert: output written on error:\n%s", out)
	}

	// missing file
	err = Run(context.Background(), out, Options{Format: FormatText}, []string{inputv[0] + ".missing"}, ReverseOp())
	if err == nil || !strings.Contains(err.Error(), ".missing") {
		t.Fatalf("reverse: err = %v; want error about missing input", err)
	}

	// bad options
	err = Run(context.Background(), out, Options{Format: "xml"}, inputv, ReverseOp())
	if err == nil {
		t.Fatal("reverse -format=xml: no error")
	}
	err = Run(context.Background(), out, Options{Format: FormatText, Jobs: -1}, inputv, ReverseOp())
	if err == nil {
		t.Fatal("reverse -j=-1: no error")
	}
}
