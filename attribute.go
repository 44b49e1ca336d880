// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

import "fmt"

// ProgramID is an opaque handle to a linked shader program. The value is
// the driver's program name; this layer never dereferences it.
type ProgramID uint32

// Attribute describes one active per-vertex input of a linked program.
//
// Attributes are immutable after construction, except for the Extra slot.
// Equality is allocation identity: two attributes built from identical
// arguments are distinct values and distinct map keys. A registry that
// needs to key collections by attribute can rely on pointer identity
// without defining value equality.
type Attribute struct {
	name         string
	program      ProgramID
	typeCode     TypeCode
	scalarType   TypeCode
	location     int
	arrayLength  int
	dimension    int
	rows         int
	rowLength    int
	normalizable bool
	shape        Shape

	// Extra is a free slot for user defined objects.
	Extra any
}

// NewAttribute builds an attribute descriptor from the raw values of a
// driver attribute query. name must already have any trailing "[0]" array
// suffix removed (see TrimArraySuffix). typ is looked up in the type
// table; unknown codes degrade to a sentinel descriptor with dimension 1
// and ShapeUnknown rather than failing. arrayLength is 1 for non-array
// attributes. No further validation is performed: the driver, not this
// layer, is the authority on valid type codes.
func NewAttribute(name string, typ TypeCode, program ProgramID, location, arrayLength int) *Attribute {
	info := lookupType(typ)
	return &Attribute{
		name:         name,
		program:      program,
		typeCode:     typ,
		scalarType:   info.scalarType,
		location:     location,
		arrayLength:  arrayLength,
		dimension:    info.components,
		rows:         info.rows,
		rowLength:    info.rowComponents * arrayLength,
		normalizable: info.normalizable,
		shape:        info.shape,
	}
}

// Name returns the attribute name, without array suffix.
func (a *Attribute) Name() string { return a.name }

// Program returns the handle of the owning program.
func (a *Attribute) Program() ProgramID { return a.program }

// Type returns the raw GL type code of the attribute.
func (a *Attribute) Type() TypeCode { return a.typeCode }

// ScalarType returns the base scalar type code (TypeInt, TypeUnsignedInt,
// TypeFloat or TypeDouble; 0 for unknown types).
func (a *Attribute) ScalarType() TypeCode { return a.scalarType }

// Location returns the attribute location, the result of the driver's
// glGetAttribLocation query.
func (a *Attribute) Location() int { return a.location }

// ArrayLength returns the declared array length, or 1 if the attribute
// is not an array.
func (a *Attribute) ArrayLength() int { return a.arrayLength }

// Dimension returns the total scalar component count of one array
// element: 3 for vec3, 16 for mat4, 1 for scalars and unknown types.
func (a *Attribute) Dimension() int { return a.dimension }

// Rows returns the number of attribute locations one array element
// occupies: the column count for matrices, 1 otherwise.
func (a *Attribute) Rows() int { return a.rows }

// RowLength returns the per-location component count scaled by the array
// length. Buffer layout code uses it to size interleaved rows.
func (a *Attribute) RowLength() int { return a.rowLength }

// Normalizable reports whether the attribute accepts normalized
// fixed-point data.
func (a *Attribute) Normalizable() bool { return a.normalizable }

// Shape returns the single-character scalar kind of the attribute.
func (a *Attribute) Shape() Shape { return a.shape }

// String implements fmt.Stringer.
func (a *Attribute) String() string {
	return fmt.Sprintf("<Attribute: %d>", a.location)
}

// TrimArraySuffix removes a trailing "[0]" from a driver-reported
// attribute or uniform name. GL reports array variables as "name[0]";
// descriptors store the bare name.
func TrimArraySuffix(name string) string {
	if n := len(name); n >= 3 && name[n-3:] == "[0]" {
		return name[:n-3]
	}
	return name
}
