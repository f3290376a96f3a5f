// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package eg is used to test and demonstrate different aspects of
// the lux renderer. Examples both showcase a capability and act as
// high level test cases for the engine. The examples are run using:
//
//	eg [example name]
//
// Invoking eg without parameters will list the examples that can
// be run. Each example writes its image to the working directory.
package main

import (
	"fmt"
	"os"
)

// example combines example code with descriptions.
type example struct {
	tag         string // example identifier.
	description string // short description of the example.
	function    func() // function to run the example.
}

// Launch the requested example or list available examples, roughly
// ordered from basic at the top to more involved at the bottom.
func main() {
	examples := []example{
		{"sp", "sp: Matte sphere under a point light", sp},
		{"mr", "mr: Mirror over a checker floor", mr},
		{"gl", "gl: Glass sphere in a gradient sky", gl},
		{"sc", "sc: Render a yaml scene description", sc},
	}
	for _, ex := range examples {
		if len(os.Args) > 1 && os.Args[1] == ex.tag {
			ex.function()
			return
		}
	}
	fmt.Println("usage: eg [example]")
	for _, ex := range examples {
		fmt.Println("   ", ex.description)
	}
}
