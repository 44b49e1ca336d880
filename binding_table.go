// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

// bindingKey identifies one uniform block across programs.
type bindingKey struct {
	program ProgramID
	index   int
}

// BindingTable is an in-memory Binder. It records binding assignments in
// a map keyed by (program, index) and plays the role of a live context
// in headless tools and tests. Blocks that were never assigned read as
// binding point 0, matching the driver default.
type BindingTable struct {
	bindings map[bindingKey]int
}

// NewBindingTable returns an empty binding table.
func NewBindingTable() *BindingTable {
	return &BindingTable{bindings: make(map[bindingKey]int)}
}

// UniformBlockBinding returns the recorded binding point, or 0.
func (t *BindingTable) UniformBlockBinding(program ProgramID, index int) int {
	return t.bindings[bindingKey{program, index}]
}

// SetUniformBlockBinding records a binding point.
func (t *BindingTable) SetUniformBlockBinding(program ProgramID, index, binding int) {
	t.bindings[bindingKey{program, index}] = binding
}

// Ensure BindingTable implements Binder.
var _ Binder = (*BindingTable)(nil)
