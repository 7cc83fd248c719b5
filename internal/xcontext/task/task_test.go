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

package task

import (
	"context"
	"errors"
	"testing"
)

func TestTask(t *testing.T) {
	ctx := context.Background()
	if task := Current(ctx); task != nil {
		t.Fatalf("current task on empty context: %v", task)
	}
	if s := Current(ctx).String(); s != "" {
		t.Fatalf("nil task: %q", s)
	}

	ctx = Running(ctx, "sort")
	ctx = Runningf(ctx, "input %d", 2)
	if s := Current(ctx).String(); s != "sort: input 2" {
		t.Fatalf("task stack: %q", s)
	}
	if s := Current(Running(ctx, "line 7")).String(); s != "sort: input 2: line 7" {
		t.Fatalf("task stack: %q", s)
	}

	err := errors.New("boom")
	ErrContext(&err, ctx)
	if err.Error() != "input 2: boom" {
		t.Fatalf("err context: %q", err)
	}

	var noerr error
	ErrContext(&noerr, ctx)
	if noerr != nil {
		t.Fatalf("err context on nil error: %v", noerr)
	}
}
