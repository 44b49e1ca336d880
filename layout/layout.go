// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glprog"
)

// ErrUnknownType reports an attribute carrying the unknown sentinel
// shape. Callers decide how to size such attributes; this package
// refuses to guess.
var ErrUnknownType = errors.New("attribute type unknown")

// ErrNoVertexFormat reports an attribute with no WebGPU vertex format
// equivalent, such as the double-precision family.
var ErrNoVertexFormat = errors.New("no vertex format for attribute type")

// scalarBytes returns the byte width of one scalar component.
func scalarBytes(shape glprog.Shape) (int, error) {
	switch shape {
	case glprog.ShapeInt, glprog.ShapeUint, glprog.ShapeFloat:
		return 4, nil
	case glprog.ShapeDouble:
		return 8, nil
	default:
		return 0, ErrUnknownType
	}
}

// Format returns the buffer format string for attributes interleaved
// in order: one "<count><shape>" token per attribute, where count is
// the array length times the dimension. A vec3 renders as "3f", an
// array of two mat4 as "32f". Unknown attributes render with the '?'
// shape; Format never fails because the string is descriptive, not a
// sizing decision.
func Format(attrs []*glprog.Attribute) string {
	tokens := make([]string, len(attrs))
	for i, a := range attrs {
		tokens[i] = fmt.Sprintf("%d%s", a.ArrayLength()*a.Dimension(), a.Shape())
	}
	return strings.Join(tokens, " ")
}

// Stride returns the tight byte stride of one vertex with the
// attributes interleaved in order.
func Stride(attrs []*glprog.Attribute) (int, error) {
	stride := 0
	for _, a := range attrs {
		width, err := scalarBytes(a.Shape())
		if err != nil {
			return 0, fmt.Errorf("layout: attribute %q: %w", a.Name(), err)
		}
		stride += width * a.ArrayLength() * a.Dimension()
	}
	return stride, nil
}

// vertexFormats maps a base scalar type to the WebGPU formats for 1 to
// 4 components per location.
var vertexFormats = map[glprog.TypeCode][4]gputypes.VertexFormat{
	glprog.TypeFloat: {
		gputypes.VertexFormatFloat32,
		gputypes.VertexFormatFloat32x2,
		gputypes.VertexFormatFloat32x3,
		gputypes.VertexFormatFloat32x4,
	},
	glprog.TypeInt: {
		gputypes.VertexFormatSint32,
		gputypes.VertexFormatSint32x2,
		gputypes.VertexFormatSint32x3,
		gputypes.VertexFormatSint32x4,
	},
	glprog.TypeUnsignedInt: {
		gputypes.VertexFormatUint32,
		gputypes.VertexFormatUint32x2,
		gputypes.VertexFormatUint32x3,
		gputypes.VertexFormatUint32x4,
	},
}

// VertexLayout converts attribute descriptors into one interleaved
// vertex buffer layout, attributes tightly packed in the given order.
//
// Matrix attributes expand to one entry per column at consecutive
// shader locations, matching how GL assigns matrix locations. Array
// attributes repeat per element. Double-precision attributes have no
// WebGPU vertex format and return ErrNoVertexFormat; unknown
// attributes return ErrUnknownType.
func VertexLayout(attrs []*glprog.Attribute) (gputypes.VertexBufferLayout, error) {
	var out []gputypes.VertexAttribute
	var offset uint64

	for _, a := range attrs {
		formats, ok := vertexFormats[a.ScalarType()]
		if !ok {
			err := ErrNoVertexFormat
			if a.Shape() == glprog.ShapeUnknown {
				err = ErrUnknownType
			}
			return gputypes.VertexBufferLayout{}, fmt.Errorf("layout: attribute %q: %w", a.Name(), err)
		}

		// Components per location: the full dimension for vectors and
		// scalars, one column's worth for matrices.
		rowComponents := a.Dimension() / a.Rows()
		location := uint32(a.Location())

		for element := 0; element < a.ArrayLength(); element++ {
			for row := 0; row < a.Rows(); row++ {
				out = append(out, gputypes.VertexAttribute{
					Format:         formats[rowComponents-1],
					Offset:         offset,
					ShaderLocation: location,
				})
				offset += uint64(4 * rowComponents)
				location++
			}
		}
	}

	return gputypes.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  out,
	}, nil
}
