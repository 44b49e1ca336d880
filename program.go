// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

import "sort"

// Program is the introspected interface of one linked shader program:
// its attribute and uniform block descriptors, keyed by name.
//
// A Program is a read-only registry. It is built once, from the rows of
// a driver query or a source reflection, and never mutated afterwards.
type Program struct {
	id         ProgramID
	attributes map[string]*Attribute
	blocks     map[string]*UniformBlock
}

// NewProgram builds a program registry from descriptor lists. Later
// entries win on duplicate names.
func NewProgram(id ProgramID, attributes []*Attribute, blocks []*UniformBlock) *Program {
	p := &Program{
		id:         id,
		attributes: make(map[string]*Attribute, len(attributes)),
		blocks:     make(map[string]*UniformBlock, len(blocks)),
	}
	for _, a := range attributes {
		p.attributes[a.Name()] = a
	}
	for _, b := range blocks {
		p.blocks[b.Name()] = b
	}
	return p
}

// ID returns the program handle.
func (p *Program) ID() ProgramID { return p.id }

// Attribute returns the named attribute, or nil.
func (p *Program) Attribute(name string) *Attribute {
	return p.attributes[name]
}

// UniformBlock returns the named uniform block, or nil.
func (p *Program) UniformBlock(name string) *UniformBlock {
	return p.blocks[name]
}

// Attributes returns all attributes ordered by location.
func (p *Program) Attributes() []*Attribute {
	out := make([]*Attribute, 0, len(p.attributes))
	for _, a := range p.attributes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location() < out[j].Location() })
	return out
}

// UniformBlocks returns all uniform blocks ordered by block index.
func (p *Program) UniformBlocks() []*UniformBlock {
	out := make([]*UniformBlock, 0, len(p.blocks))
	for _, b := range p.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
