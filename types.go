// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

// TypeCode is an OpenGL type enumerant describing the declared type of a
// program attribute, as reported by glGetActiveAttrib.
type TypeCode uint32

// Attribute type codes for the four scalar families the introspection
// layer understands: 32-bit signed integer, 32-bit unsigned integer,
// 32-bit float, and 64-bit double. Values are the GL enumerants.
const (
	TypeInt     TypeCode = 0x1404
	TypeIntVec2 TypeCode = 0x8B53
	TypeIntVec3 TypeCode = 0x8B54
	TypeIntVec4 TypeCode = 0x8B55

	TypeUnsignedInt     TypeCode = 0x1405
	TypeUnsignedIntVec2 TypeCode = 0x8DC6
	TypeUnsignedIntVec3 TypeCode = 0x8DC7
	TypeUnsignedIntVec4 TypeCode = 0x8DC8

	TypeFloat     TypeCode = 0x1406
	TypeFloatVec2 TypeCode = 0x8B50
	TypeFloatVec3 TypeCode = 0x8B51
	TypeFloatVec4 TypeCode = 0x8B52

	TypeDouble     TypeCode = 0x140A
	TypeDoubleVec2 TypeCode = 0x8FFC
	TypeDoubleVec3 TypeCode = 0x8FFD
	TypeDoubleVec4 TypeCode = 0x8FFE

	TypeFloatMat2   TypeCode = 0x8B5A
	TypeFloatMat2x3 TypeCode = 0x8B65
	TypeFloatMat2x4 TypeCode = 0x8B66
	TypeFloatMat3x2 TypeCode = 0x8B67
	TypeFloatMat3   TypeCode = 0x8B5B
	TypeFloatMat3x4 TypeCode = 0x8B68
	TypeFloatMat4x2 TypeCode = 0x8B69
	TypeFloatMat4x3 TypeCode = 0x8B6A
	TypeFloatMat4   TypeCode = 0x8B5C

	TypeDoubleMat2   TypeCode = 0x8F46
	TypeDoubleMat2x3 TypeCode = 0x8F49
	TypeDoubleMat2x4 TypeCode = 0x8F4A
	TypeDoubleMat3x2 TypeCode = 0x8F4B
	TypeDoubleMat3   TypeCode = 0x8F47
	TypeDoubleMat3x4 TypeCode = 0x8F4C
	TypeDoubleMat4x2 TypeCode = 0x8F4D
	TypeDoubleMat4x3 TypeCode = 0x8F4E
	TypeDoubleMat4   TypeCode = 0x8F48
)

// Shape is a single-character classification of an attribute's scalar kind.
type Shape byte

// Shape values.
const (
	// ShapeInt marks signed integer attributes (int, ivec2..ivec4).
	// Unsigned integer attributes also report ShapeInt: both families
	// share the 'i' buffer format.
	ShapeInt Shape = 'i'

	// ShapeUint is reserved for unsigned integer attributes. The lookup
	// table reports ShapeInt for the uint family, so this value never
	// appears on an Attribute.
	ShapeUint Shape = 'I'

	// ShapeFloat marks single-precision float attributes, including all
	// float vectors and matrices.
	ShapeFloat Shape = 'f'

	// ShapeDouble marks double-precision attributes, including all
	// double vectors and matrices.
	ShapeDouble Shape = 'd'

	// ShapeUnknown marks attributes whose type code is not in the
	// lookup table.
	ShapeUnknown Shape = '?'
)

// String returns the shape character.
func (s Shape) String() string { return string(byte(s)) }

// typeInfo describes the structure of one attribute type code.
type typeInfo struct {
	components    int      // total scalar components (array length 1)
	scalarType    TypeCode // base scalar enumerant
	rows          int      // locations occupied (matrix columns, else 1)
	rowComponents int      // scalar components per location
	normalizable  bool     // convertible to a normalized fixed-point format
	shape         Shape
}

// typeTable maps every supported attribute type code to its structure.
// Scalars, vectors and matrices (square and non-square) for the int,
// uint, float and double families.
var typeTable = map[TypeCode]typeInfo{
	TypeInt:     {1, TypeInt, 1, 1, false, ShapeInt},
	TypeIntVec2: {2, TypeInt, 1, 2, false, ShapeInt},
	TypeIntVec3: {3, TypeInt, 1, 3, false, ShapeInt},
	TypeIntVec4: {4, TypeInt, 1, 4, false, ShapeInt},

	TypeUnsignedInt:     {1, TypeUnsignedInt, 1, 1, false, ShapeInt},
	TypeUnsignedIntVec2: {2, TypeUnsignedInt, 1, 2, false, ShapeInt},
	TypeUnsignedIntVec3: {3, TypeUnsignedInt, 1, 3, false, ShapeInt},
	TypeUnsignedIntVec4: {4, TypeUnsignedInt, 1, 4, false, ShapeInt},

	TypeFloat:     {1, TypeFloat, 1, 1, true, ShapeFloat},
	TypeFloatVec2: {2, TypeFloat, 1, 2, true, ShapeFloat},
	TypeFloatVec3: {3, TypeFloat, 1, 3, true, ShapeFloat},
	TypeFloatVec4: {4, TypeFloat, 1, 4, true, ShapeFloat},

	TypeDouble:     {1, TypeDouble, 1, 1, false, ShapeDouble},
	TypeDoubleVec2: {2, TypeDouble, 1, 2, false, ShapeDouble},
	TypeDoubleVec3: {3, TypeDouble, 1, 3, false, ShapeDouble},
	TypeDoubleVec4: {4, TypeDouble, 1, 4, false, ShapeDouble},

	TypeFloatMat2:   {4, TypeFloat, 2, 2, true, ShapeFloat},
	TypeFloatMat2x3: {6, TypeFloat, 2, 3, true, ShapeFloat},
	TypeFloatMat2x4: {8, TypeFloat, 2, 4, true, ShapeFloat},
	TypeFloatMat3x2: {6, TypeFloat, 3, 2, true, ShapeFloat},
	TypeFloatMat3:   {9, TypeFloat, 3, 3, true, ShapeFloat},
	TypeFloatMat3x4: {12, TypeFloat, 3, 4, true, ShapeFloat},
	TypeFloatMat4x2: {8, TypeFloat, 4, 2, true, ShapeFloat},
	TypeFloatMat4x3: {12, TypeFloat, 4, 3, true, ShapeFloat},
	TypeFloatMat4:   {16, TypeFloat, 4, 4, true, ShapeFloat},

	TypeDoubleMat2:   {4, TypeDouble, 2, 2, false, ShapeDouble},
	TypeDoubleMat2x3: {6, TypeDouble, 2, 3, false, ShapeDouble},
	TypeDoubleMat2x4: {8, TypeDouble, 2, 4, false, ShapeDouble},
	TypeDoubleMat3x2: {6, TypeDouble, 3, 2, false, ShapeDouble},
	TypeDoubleMat3:   {9, TypeDouble, 3, 3, false, ShapeDouble},
	TypeDoubleMat3x4: {12, TypeDouble, 3, 4, false, ShapeDouble},
	TypeDoubleMat4x2: {8, TypeDouble, 4, 2, false, ShapeDouble},
	TypeDoubleMat4x3: {12, TypeDouble, 4, 3, false, ShapeDouble},
	TypeDoubleMat4:   {16, TypeDouble, 4, 4, false, ShapeDouble},
}

// unknownType is the fallback for type codes outside the table. Callers
// enumerating a whole program must keep working when the driver reports
// an exotic or future type, so lookup degrades instead of failing.
var unknownType = typeInfo{
	components:    1,
	scalarType:    0,
	rows:          1,
	rowComponents: 1,
	normalizable:  false,
	shape:         ShapeUnknown,
}

// lookupType returns the table entry for code, or the unknown fallback.
func lookupType(code TypeCode) typeInfo {
	if info, ok := typeTable[code]; ok {
		return info
	}
	return unknownType
}
