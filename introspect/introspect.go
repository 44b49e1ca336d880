// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package introspect

import (
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glprog"
)

// Attribute is one raw introspection row for a vertex input: the same
// values a glGetActiveAttrib query would report.
type Attribute struct {
	// Name is the input name as written in the shader.
	Name string

	// Type is the GL type code the input maps to, or 0 when the WGSL
	// type has no GL attribute equivalent.
	Type glprog.TypeCode

	// Location is the @location index.
	Location int

	// ArrayLength is the declared array length, 1 for non-arrays.
	ArrayLength int
}

// UniformBlock is one raw introspection row for a var<uniform> global.
type UniformBlock struct {
	// Name is the variable name as written in the shader.
	Name string

	// Index is the block index, assigned in declaration order.
	Index int

	// Size is the byte size of the block under WGSL uniform layout
	// rules.
	Size int

	// Group and Binding are the @group and @binding indices.
	Group   uint32
	Binding uint32
}

// Module is the reflected interface of one shader module.
type Module struct {
	Attributes    []Attribute
	UniformBlocks []UniformBlock
}

// Reflect parses and lowers WGSL source and returns its program
// interface. A module without a vertex entry point reflects with an
// empty attribute list; only parse and lowering failures are errors.
func Reflect(source string) (*Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, &glprog.Error{Op: "reflect", Err: err}
	}
	mod, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, &glprog.Error{Op: "reflect", Err: err}
	}

	m := &Module{}
	m.collectAttributes(mod)
	m.collectUniformBlocks(mod)
	glprog.Logger().Debug("reflected shader module",
		"attributes", len(m.Attributes),
		"uniformBlocks", len(m.UniformBlocks))
	return m, nil
}

// Bind materializes the reflected rows into descriptors owned by
// program id, with uniform block bindings proxied through binder.
func (m *Module) Bind(id glprog.ProgramID, binder glprog.Binder) *glprog.Program {
	attrs := make([]*glprog.Attribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		name := glprog.TrimArraySuffix(a.Name)
		attrs = append(attrs, glprog.NewAttribute(name, a.Type, id, a.Location, a.ArrayLength))
	}
	blocks := make([]*glprog.UniformBlock, 0, len(m.UniformBlocks))
	for _, b := range m.UniformBlocks {
		blocks = append(blocks, glprog.NewUniformBlock(b.Name, id, b.Index, b.Size, binder))
	}
	return glprog.NewProgram(id, attrs, blocks)
}

// collectAttributes walks the first vertex entry point's arguments.
// Location-bound arguments map directly; struct arguments contribute
// one attribute per location-bound member.
func (m *Module) collectAttributes(mod *ir.Module) {
	for _, ep := range mod.EntryPoints {
		if ep.Stage != ir.StageVertex {
			continue
		}
		fn := &ep.Function
		for _, arg := range fn.Arguments {
			if arg.Binding != nil {
				if loc, ok := (*arg.Binding).(ir.LocationBinding); ok {
					m.addAttribute(mod, arg.Name, arg.Type, loc.Location)
				}
				// Builtins (vertex_index etc.) are not attributes.
				continue
			}
			st, ok := mod.Types[arg.Type].Inner.(ir.StructType)
			if !ok {
				continue
			}
			for _, member := range st.Members {
				if member.Binding == nil {
					continue
				}
				if loc, ok := (*member.Binding).(ir.LocationBinding); ok {
					m.addAttribute(mod, member.Name, member.Type, loc.Location)
				}
			}
		}
		return
	}
}

func (m *Module) addAttribute(mod *ir.Module, name string, typ ir.TypeHandle, location uint32) {
	code, arrayLength := typeCodeOf(mod, typ)
	m.Attributes = append(m.Attributes, Attribute{
		Name:        name,
		Type:        code,
		Location:    int(location),
		ArrayLength: arrayLength,
	})
}

// collectUniformBlocks enumerates var<uniform> globals in declaration
// order, mirroring GL block indices.
func (m *Module) collectUniformBlocks(mod *ir.Module) {
	index := 0
	for _, gv := range mod.GlobalVariables {
		if gv.Space != ir.SpaceUniform {
			continue
		}
		var group, binding uint32
		if gv.Binding != nil {
			group = gv.Binding.Group
			binding = gv.Binding.Binding
		}
		m.UniformBlocks = append(m.UniformBlocks, UniformBlock{
			Name:    gv.Name,
			Index:   index,
			Size:    int(byteSize(mod, gv.Type)),
			Group:   group,
			Binding: binding,
		})
		index++
	}
}
