// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glproginfo prints the program interface of a WGSL shader:
// its vertex attributes, uniform blocks, and the derived buffer layout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/glprog"
	"github.com/gogpu/glprog/introspect"
	"github.com/gogpu/glprog/layout"
)

func main() {
	var (
		jsonOut    = flag.Bool("json", false, "emit the reflected module as JSON")
		showLayout = flag.Bool("layout", true, "print the derived vertex buffer layout")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: glproginfo [flags] shader.wgsl")
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read shader: %v", err)
	}

	module, err := introspect.Reflect(string(source))
	if err != nil {
		log.Fatalf("Failed to reflect shader: %v", err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(module); err != nil {
			log.Fatalf("Failed to encode: %v", err)
		}
		return
	}

	program := module.Bind(0, glprog.NewBindingTable())

	fmt.Println("attributes:")
	for _, a := range program.Attributes() {
		fmt.Printf("  %3d  %-24s dim=%-3d shape=%s array=%d\n",
			a.Location(), a.Name(), a.Dimension(), a.Shape(), a.ArrayLength())
	}

	fmt.Println("uniform blocks:")
	for _, b := range program.UniformBlocks() {
		fmt.Printf("  %3d  %-24s %d bytes\n", b.Index(), b.Name(), b.Size())
	}

	if !*showLayout {
		return
	}

	attrs := program.Attributes()
	fmt.Printf("buffer format: %q\n", layout.Format(attrs))

	vl, err := layout.VertexLayout(attrs)
	if err != nil {
		log.Printf("No vertex buffer layout: %v", err)
		return
	}
	fmt.Printf("vertex stride: %d bytes\n", vl.ArrayStride)
	for _, va := range vl.Attributes {
		fmt.Printf("  @location(%d) format=%v offset=%d\n",
			va.ShaderLocation, va.Format, va.Offset)
	}
}
