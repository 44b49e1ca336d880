// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glprog

import "testing"

func TestTypeTable_Dimensions(t *testing.T) {
	tests := []struct {
		name      string
		code      TypeCode
		dimension int
		shape     Shape
	}{
		{"int", TypeInt, 1, ShapeInt},
		{"ivec2", TypeIntVec2, 2, ShapeInt},
		{"ivec3", TypeIntVec3, 3, ShapeInt},
		{"ivec4", TypeIntVec4, 4, ShapeInt},
		{"uint", TypeUnsignedInt, 1, ShapeInt},
		{"uvec2", TypeUnsignedIntVec2, 2, ShapeInt},
		{"uvec3", TypeUnsignedIntVec3, 3, ShapeInt},
		{"uvec4", TypeUnsignedIntVec4, 4, ShapeInt},
		{"float", TypeFloat, 1, ShapeFloat},
		{"vec2", TypeFloatVec2, 2, ShapeFloat},
		{"vec3", TypeFloatVec3, 3, ShapeFloat},
		{"vec4", TypeFloatVec4, 4, ShapeFloat},
		{"double", TypeDouble, 1, ShapeDouble},
		{"dvec2", TypeDoubleVec2, 2, ShapeDouble},
		{"dvec3", TypeDoubleVec3, 3, ShapeDouble},
		{"dvec4", TypeDoubleVec4, 4, ShapeDouble},
		{"mat2", TypeFloatMat2, 4, ShapeFloat},
		{"mat2x3", TypeFloatMat2x3, 6, ShapeFloat},
		{"mat2x4", TypeFloatMat2x4, 8, ShapeFloat},
		{"mat3x2", TypeFloatMat3x2, 6, ShapeFloat},
		{"mat3", TypeFloatMat3, 9, ShapeFloat},
		{"mat3x4", TypeFloatMat3x4, 12, ShapeFloat},
		{"mat4x2", TypeFloatMat4x2, 8, ShapeFloat},
		{"mat4x3", TypeFloatMat4x3, 12, ShapeFloat},
		{"mat4", TypeFloatMat4, 16, ShapeFloat},
		{"dmat2", TypeDoubleMat2, 4, ShapeDouble},
		{"dmat2x3", TypeDoubleMat2x3, 6, ShapeDouble},
		{"dmat2x4", TypeDoubleMat2x4, 8, ShapeDouble},
		{"dmat3x2", TypeDoubleMat3x2, 6, ShapeDouble},
		{"dmat3", TypeDoubleMat3, 9, ShapeDouble},
		{"dmat3x4", TypeDoubleMat3x4, 12, ShapeDouble},
		{"dmat4x2", TypeDoubleMat4x2, 8, ShapeDouble},
		{"dmat4x3", TypeDoubleMat4x3, 12, ShapeDouble},
		{"dmat4", TypeDoubleMat4, 16, ShapeDouble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttribute(tt.name, tt.code, 1, 0, 1)
			if a.Dimension() != tt.dimension {
				t.Errorf("Dimension() = %d, want %d", a.Dimension(), tt.dimension)
			}
			if a.Shape() != tt.shape {
				t.Errorf("Shape() = %q, want %q", a.Shape(), tt.shape)
			}
		})
	}
}

func TestTypeTable_DimensionMatchesStructure(t *testing.T) {
	// Every table entry must satisfy dimension == rows × rowComponents.
	for code, info := range typeTable {
		if info.components != info.rows*info.rowComponents {
			t.Errorf("type %#x: components = %d, rows × rowComponents = %d",
				uint32(code), info.components, info.rows*info.rowComponents)
		}
	}
}

func TestTypeTable_ScalarFamilies(t *testing.T) {
	// Only the single-precision float family is normalizable.
	for code, info := range typeTable {
		wantNormalizable := info.scalarType == TypeFloat
		if info.normalizable != wantNormalizable {
			t.Errorf("type %#x: normalizable = %v, want %v",
				uint32(code), info.normalizable, wantNormalizable)
		}
	}
}

func TestLookupType_UnknownCode(t *testing.T) {
	tests := []TypeCode{0, 0x8B56 /* GL_BOOL */, 0xFFFF, 0xDEAD}
	for _, code := range tests {
		info := lookupType(code)
		if info != unknownType {
			t.Errorf("lookupType(%#x) = %+v, want unknown fallback", uint32(code), info)
		}
	}
}
