// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

// Error is the generic error of the glprog library. Descriptor
// construction never fails; Error surfaces from the surrounding
// facilities, such as source reflection.
type Error struct {
	// Op names the failing operation, e.g. "reflect".
	Op string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "glprog: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }
