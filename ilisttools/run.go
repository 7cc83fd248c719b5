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
// running operations over inputs

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"

	"lab.nexedi.com/kirr/go123/xerr"

	"lab.nexedi.com/kirr/ilist/internal/log"
	"lab.nexedi.com/kirr/ilist/internal/task"
	"lab.nexedi.com/kirr/ilist/internal/xio"
	taskctx "lab.nexedi.com/kirr/ilist/internal/xcontext/task"
	"lab.nexedi.com/kirr/ilist/xcommon/xsync"
)

// Options is configuration common to all ilist commands.
type Options struct {
	Format    string // input format
	OutFormat string // output format; "" means the same as Format
	Verbose   bool   // log progress
	Jobs      int    // process not more than Jobs inputs simultaneously; 0 - no limit
}

// outFormat returns effective output format.
func (o *Options) outFormat() string {
	if o.OutFormat == "" {
		return o.Format
	}
	return o.OutFormat
}

// Validate verifies options consistency.
func (o *Options) Validate() error {
	if err := checkFormat(o.Format); err != nil {
		return err
	}
	if err := checkFormat(o.outFormat()); err != nil {
		return err
	}
	if o.Jobs < 0 {
		return fmt.Errorf("invalid jobs: %d", o.Jobs)
	}
	return nil
}

// registerFlags registers command line flags that set o.
func (o *Options) registerFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Format, "format", FormatText, "input format; "+formatSummary())
	flags.StringVar(&o.OutFormat, "oformat", "", "output format (default: same as input)")
	flags.BoolVar(&o.Verbose, "v", false, "verbose: log what is being done")
	flags.IntVar(&o.Jobs, "j", 0, "process not more than j inputs simultaneously (0 - no limit)")
}

// Op is an operation to apply to a sequence.
type Op struct {
	Name string

	// Do applies the operation to s.
	//
	// If Do returns non-empty report it is printed instead of resulting sequence.
	Do func(ctx context.Context, s *Seq) (report string, err error)
}

// Run loads every input, applies op to it and writes results to w.
//
// Every input is loaded into its own list and processed in its own
// goroutine. Results are written in the order of inputv. "-" means standard input.
func Run(ctx context.Context, w io.Writer, opts Options, inputv []string, op Op) (err error) {
	defer xerr.Contextf(&err, "%s", op.Name)

	err = opts.Validate()
	if err != nil {
		return err
	}

	ctx = taskctx.Running(ctx, op.Name)
	outv := make([]bytes.Buffer, len(inputv))
	wg, ctx := xsync.WorkGroupCtx(ctx, opts.Jobs)
	for i, input := range inputv {
		i, input := i, input
		wg.Go(func() error {
			return runOne(ctx, &outv[i], opts, input, op)
		})
	}
	err = wg.Wait()
	if err != nil {
		return err
	}

	for i := range outv {
		_, err = outv[i].WriteTo(w)
		if err != nil {
			return err
		}
	}
	return nil
}

// runOne handles one input.
func runOne(ctx context.Context, w io.Writer, opts Options, input string, op Op) (err error) {
	defer task.Running(&ctx, input)(&err)

	f, err := xio.OpenInput(input)
	if err != nil {
		return err
	}
	defer func() {
		err2 := f.Close()
		err = xerr.First(err, err2)
	}()

	r := &xio.CountReader{Reader: f}
	valuev, err := ReadValues(r, opts.Format)
	if err != nil {
		return err
	}
	if opts.Verbose {
		log.Infof(ctx, "loaded %d values (%d bytes)", len(valuev), r.Nread)
	}

	// check for cancel only after input is loaded as list operations are not interruptible
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s := Load(valuev)
	report, err := op.Do(ctx, s)
	if err != nil {
		return err
	}

	if report != "" {
		_, err = fmt.Fprintf(w, "%s\t%s\n", input, report)
		return err
	}
	return WriteValues(w, opts.outFormat(), s.Values())
}
