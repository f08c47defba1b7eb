// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package assert implements the programming-error checks used by the
// stitching protocol.
//
// A failed check panics with *Error. Checks are compiled in by default and
// compiled out with the stitch_noassert build tag, in which case That is a
// no-op and callers must not depend on it for control flow.
package assert

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the panic value of a failed assertion. It records the operation
// that detected the violation and carries the stack of the failing call,
// printed with the %+v verb.
type Error struct {
	Op  string
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "stitch: " + e.Op + ": " + e.err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.err }

// Format prints the stack trace of the failed assertion with %+v.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "stitch: %s: %+v", e.Op, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// That panics with *Error if cond is false and assertions are enabled.
func That(cond bool, op, format string, args ...any) {
	if Enabled && !cond {
		panic(&Error{Op: op, err: errors.Errorf(format, args...)})
	}
}

// Fail panics unconditionally when assertions are enabled.
func Fail(op, format string, args ...any) {
	That(false, op, format, args...)
}

// Wrap converts err into an assertion failure for op. A nil err is ignored.
func Wrap(err error, op string) {
	if Enabled && err != nil {
		panic(&Error{Op: op, err: errors.WithStack(err)})
	}
}
