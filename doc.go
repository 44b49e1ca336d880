// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glprog describes the interface of linked shader programs as
// plain data objects.
//
// # Overview
//
// glprog is the metadata layer of an OpenGL binding: it shapes the raw
// results of program introspection queries (glGetActiveAttrib,
// glGetActiveUniformBlockiv and friends) into friendly descriptor
// objects. There is no device or context management here, no program
// compilation and no draw submission; the package is a fixed type-code
// lookup table plus value objects around it.
//
// # Descriptors
//
// Attribute describes one per-vertex input: location, array length,
// scalar dimension and a one-character shape tag classifying the scalar
// kind. UniformBlock describes one named block: index, byte size, and a
// live binding point proxied through a Binder capability rather than
// cached on the descriptor.
//
// Unknown type codes never fail: they produce a sentinel descriptor
// with dimension 1 and ShapeUnknown, so enumerating a program keeps
// working when the driver reports a type this layer does not know.
//
// # Reflection without a driver
//
// The introspect subpackage derives the same descriptors from WGSL
// shader source using gogpu/naga, so program interfaces can be
// inspected in tools and tests with no GPU attached. The layout
// subpackage converts attribute descriptors into gputypes vertex buffer
// layouts for WebGPU-style pipelines.
package glprog

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
