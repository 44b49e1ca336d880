// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout derives buffer layouts from attribute descriptors.
//
// Two views are provided: a compact buffer format string in the
// "<count><shape>" notation GL bindings use to describe interleaved
// vertex data, and a gputypes.VertexBufferLayout for WebGPU-style
// pipelines. Attributes with the unknown sentinel shape are a hard
// error in both views: sizing a buffer for a type this layer cannot
// classify has to be an explicit caller decision.
package layout
