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

// Package log provides logging with severity levels and tasks integration.
//
// Messages are emitted via glog and are prefixed with current operational
// task stack (see internal/xcontext/task), for example:
//
//	I1015 12:00:00.000000  1234 ilist.go:80] sort data.txt: loaded 1000 values
package log

import (
	"context"
	"flag"
	"fmt"

	"github.com/golang/glog"

	"lab.nexedi.com/kirr/ilist/internal/xcontext/task"
)

// withTask prepends string describing current operational task stack to argv and returns it.
func withTask(ctx context.Context, argv ...interface{}) []interface{} {
	task := task.Current(ctx).String()
	if task == "" {
		return argv
	}

	if len(argv) != 0 {
		task += ": "
	}

	return append([]interface{}{task}, argv...)
}

// Depth allows to log with caller frame adjusted by Depth frames.
type Depth int

func (d Depth) Infof(ctx context.Context, format string, argv ...interface{}) {
	glog.InfoDepth(int(d+1), withTask(ctx, fmt.Sprintf(format, argv...))...)
}

func (d Depth) Warning(ctx context.Context, argv ...interface{}) {
	glog.WarningDepth(int(d+1), withTask(ctx, argv...)...)
}

func Infof(ctx context.Context, format string, argv ...interface{}) {
	Depth(1).Infof(ctx, format, argv...)
}

// Verbose logs info messages only if glog verbosity is at least its level.
type Verbose glog.Level

// V returns Verbose for level.
//
//	log.V(1).Info(ctx, "start")
func V(level int) Verbose { return Verbose(level) }

func (v Verbose) Info(ctx context.Context, argv ...interface{}) {
	if glog.V(glog.Level(v)) {
		glog.InfoDepth(1, withTask(ctx, argv...)...)
	}
}

// SetVerbosity sets glog verbosity level.
//
// Programs call it once from their entry point with the level coming from
// their own configuration.
func SetVerbosity(level int) error {
	return flag.Set("v", fmt.Sprint(level))
}

func Flush() { glog.Flush() }
