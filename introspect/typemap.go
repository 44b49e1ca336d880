// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package introspect

import (
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glprog"
)

// scalarCodes maps IR scalar kinds to GL base type codes, keyed by
// scalar byte width. WGSL today only produces 4-byte numeric scalars;
// the 8-byte row exists for front ends that lower doubles.
var scalarCodes = map[uint8]map[ir.ScalarKind]glprog.TypeCode{
	4: {
		ir.ScalarSint:  glprog.TypeInt,
		ir.ScalarUint:  glprog.TypeUnsignedInt,
		ir.ScalarFloat: glprog.TypeFloat,
	},
	8: {
		ir.ScalarFloat: glprog.TypeDouble,
	},
}

// vecCodes maps a base scalar code and component count to the vector
// type code.
var vecCodes = map[glprog.TypeCode][3]glprog.TypeCode{
	glprog.TypeInt:         {glprog.TypeIntVec2, glprog.TypeIntVec3, glprog.TypeIntVec4},
	glprog.TypeUnsignedInt: {glprog.TypeUnsignedIntVec2, glprog.TypeUnsignedIntVec3, glprog.TypeUnsignedIntVec4},
	glprog.TypeFloat:       {glprog.TypeFloatVec2, glprog.TypeFloatVec3, glprog.TypeFloatVec4},
	glprog.TypeDouble:      {glprog.TypeDoubleVec2, glprog.TypeDoubleVec3, glprog.TypeDoubleVec4},
}

// matCodes maps [columns-2][rows-2] to the matrix type code, per base
// scalar. WGSL matCxR and GL matCxR agree on column/row order.
var matCodes = map[glprog.TypeCode][3][3]glprog.TypeCode{
	glprog.TypeFloat: {
		{glprog.TypeFloatMat2, glprog.TypeFloatMat2x3, glprog.TypeFloatMat2x4},
		{glprog.TypeFloatMat3x2, glprog.TypeFloatMat3, glprog.TypeFloatMat3x4},
		{glprog.TypeFloatMat4x2, glprog.TypeFloatMat4x3, glprog.TypeFloatMat4},
	},
	glprog.TypeDouble: {
		{glprog.TypeDoubleMat2, glprog.TypeDoubleMat2x3, glprog.TypeDoubleMat2x4},
		{glprog.TypeDoubleMat3x2, glprog.TypeDoubleMat3, glprog.TypeDoubleMat3x4},
		{glprog.TypeDoubleMat4x2, glprog.TypeDoubleMat4x3, glprog.TypeDoubleMat4},
	},
}

// typeCodeOf translates an IR type into a GL type code and array
// length. Types with no GL attribute equivalent (bool, structs,
// textures) translate to code 0, which the descriptor factory resolves
// to its sentinel entry.
func typeCodeOf(mod *ir.Module, h ir.TypeHandle) (glprog.TypeCode, int) {
	switch t := mod.Types[h].Inner.(type) {
	case ir.ScalarType:
		return scalarCodes[t.Width][t.Kind], 1

	case ir.VectorType:
		base := scalarCodes[t.Scalar.Width][t.Scalar.Kind]
		if base == 0 || t.Size < ir.Vec2 || t.Size > ir.Vec4 {
			return 0, 1
		}
		return vecCodes[base][t.Size-ir.Vec2], 1

	case ir.MatrixType:
		base := scalarCodes[t.Scalar.Width][t.Scalar.Kind]
		codes, ok := matCodes[base]
		if !ok || t.Columns < ir.Vec2 || t.Columns > ir.Vec4 || t.Rows < ir.Vec2 || t.Rows > ir.Vec4 {
			return 0, 1
		}
		return codes[t.Columns-ir.Vec2][t.Rows-ir.Vec2], 1

	case ir.ArrayType:
		code, _ := typeCodeOf(mod, t.Base)
		length := 1
		if t.Size.Constant != nil {
			length = int(*t.Size.Constant)
		}
		return code, length

	default:
		return 0, 1
	}
}

// byteSize returns the size of a type under WGSL uniform buffer layout
// rules, matching the sizes naga's lowerer computes for struct spans:
// vec3 occupies 12 bytes at alignment 16, matrix columns are padded to
// vector alignment, array strides round up to 16.
func byteSize(mod *ir.Module, h ir.TypeHandle) uint32 {
	_, size := alignAndSize(mod, h)
	return size
}

func alignAndSize(mod *ir.Module, h ir.TypeHandle) (align, size uint32) {
	switch t := mod.Types[h].Inner.(type) {
	case ir.ScalarType:
		return 4, 4

	case ir.VectorType:
		return vectorAlignAndSize(uint8(t.Size))

	case ir.MatrixType:
		colAlign, colSize := vectorAlignAndSize(uint8(t.Rows))
		return colAlign, colSize * uint32(t.Columns)

	case ir.ArrayType:
		elemAlign, elemSize := alignAndSize(mod, t.Base)
		stride := (elemSize + 15) &^ 15
		if elemAlign < 16 {
			elemAlign = 16
		}
		if t.Size.Constant != nil {
			return elemAlign, stride * *t.Size.Constant
		}
		return elemAlign, stride

	case ir.StructType:
		var maxAlign uint32 = 1
		for _, member := range t.Members {
			memberAlign, _ := alignAndSize(mod, member.Type)
			if memberAlign > maxAlign {
				maxAlign = memberAlign
			}
		}
		return maxAlign, t.Span

	default:
		return 4, 4
	}
}

func vectorAlignAndSize(components uint8) (align, size uint32) {
	switch components {
	case 2:
		return 8, 8
	case 3:
		return 16, 12
	case 4:
		return 16, 16
	default:
		return 4, 4
	}
}
