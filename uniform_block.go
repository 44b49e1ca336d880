// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

import "fmt"

// Binder reads and writes uniform block binding points on the driver.
//
// The interface is the capability a UniformBlock needs from its owning
// context: nothing more than the two binding calls. Implementations are
// expected to issue the corresponding driver calls synchronously. The
// descriptor holds a non-owning reference; the Binder must outlive every
// descriptor built against it.
type Binder interface {
	// UniformBlockBinding returns the current binding point of the
	// uniform block at index in program.
	UniformBlockBinding(program ProgramID, index int) int

	// SetUniformBlockBinding assigns the uniform block at index in
	// program to a binding point.
	SetUniformBlockBinding(program ProgramID, index, binding int)
}

// UniformBlock describes one active uniform block of a linked program:
// its name, block index, byte size, and owning program.
//
// The binding point is deliberately not stored. Binding and SetBinding
// proxy every call through the Binder so the descriptor always reflects
// live driver state, even when other code rebinds the block.
type UniformBlock struct {
	name    string
	program ProgramID
	index   int
	size    int
	binder  Binder

	// Extra is a free slot for user defined objects.
	Extra any
}

// NewUniformBlock builds a uniform block descriptor. All arguments are
// stored verbatim; there is no lookup table and no validation. binder
// must be non-nil for Binding and SetBinding to work.
func NewUniformBlock(name string, program ProgramID, index, size int, binder Binder) *UniformBlock {
	return &UniformBlock{
		name:    name,
		program: program,
		index:   index,
		size:    size,
		binder:  binder,
	}
}

// Name returns the uniform block name.
func (u *UniformBlock) Name() string { return u.name }

// Program returns the handle of the owning program.
func (u *UniformBlock) Program() ProgramID { return u.program }

// Index returns the block index reported by the driver.
func (u *UniformBlock) Index() int { return u.index }

// Size returns the byte size of the block.
func (u *UniformBlock) Size() int { return u.size }

// Binding returns the current binding point, read through the Binder.
func (u *UniformBlock) Binding() int {
	return u.binder.UniformBlockBinding(u.program, u.index)
}

// SetBinding assigns the block to a binding point, written through the
// Binder.
func (u *UniformBlock) SetBinding(binding int) {
	u.binder.SetUniformBlockBinding(u.program, u.index, binding)
}

// String implements fmt.Stringer.
func (u *UniformBlock) String() string {
	return fmt.Sprintf("<UniformBlock: %d>", u.index)
}
