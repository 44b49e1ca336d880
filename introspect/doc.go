// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package introspect derives shader program metadata from WGSL source.
//
// A live GL driver answers program introspection queries only for a
// compiled and linked program. This package produces the same raw rows
// with no GPU attached: it parses and lowers WGSL through gogpu/naga
// and walks the IR for the vertex entry point's location-bound inputs
// and the module's uniform variables. Bind materializes the rows into
// glprog descriptors.
package introspect
