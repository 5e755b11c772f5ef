// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cyclerr defines the typed error surface shared by every package
// in this module.
package cyclerr

import "fmt"

// Error codes for cycle-ratio computation failures.
const (
	// CodeMalformedInput marks a DIMACS parse failure or an out-of-range
	// node/edge reference (K1).
	CodeMalformedInput = "MALFORMED_INPUT"
	// CodeInfeasible marks a modeling error in the caller's graph, such as
	// a zero-transit-time cycle discovered by Burns's method (K2).
	CodeInfeasible = "INFEASIBLE_INSTANCE"
	// CodeNumericalGuard marks a violated solver invariant, such as a
	// decrease in lambda across tree-solver iterations (K3).
	CodeNumericalGuard = "NUMERICAL_GUARD"
	// CodeConfig marks an invalid configuration or command-line flag
	// combination.
	CodeConfig = "CONFIG_ERROR"
)

// Error is an application error carrying a stable code, a human-readable
// message, and an optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// New returns an *Error with no wrapped cause.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap returns an *Error wrapping err.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

// Unwrap supports errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, cyclerr.New(cyclerr.CodeInfeasible, "")) works as a
// code-match test.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
