// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// texture.go declares the texture capabilities the shading system
// consumes. Concrete textures live with the engine; shading only
// needs to sample them.

import "github.com/gazed/lux/math/lin"

// Wrap says how texture coordinates outside [0,1] behave.
type Wrap int

// Wrap policies.
const (
	WrapRepeat Wrap = iota // coordinates tile.
	WrapClamp              // coordinates stick to the border texel.
)

// Texture is a 2D color source sampled by material lobes.
type Texture interface {
	// Sample2D returns the linear RGBA value at the uv coordinate.
	Sample2D(uv lin.V2) lin.V4
	// Size returns the texel dimensions, 1x1 for procedurals.
	Size() (w, h int)
}

// Environment is a directional light texture: an infinitely distant
// sphere of incoming radiance.
type Environment interface {
	// Evaluate returns the radiance arriving from a unit direction.
	Evaluate(dir lin.V3) lin.V3
	// Sample draws a direction with density proportional to the
	// radiance, returning the radiance, direction and pdf.
	Sample(u, v float32) (radiance lin.V3, dir lin.V3, pdf float32)
	// PDF returns the density Sample uses for a direction.
	PDF(dir lin.V3) float32
	// Prepare builds sampling tables. Must be called before Sample.
	Prepare()
	// Average returns the mean radiance over all directions.
	Average() lin.V3
}

// Constant is the trivial texture: one value everywhere. The zero
// value is black.
type Constant struct {
	Value lin.V4
}

// NewConstant returns a constant color texture.
func NewConstant(rgb lin.V3) *Constant {
	return &Constant{Value: rgb.V4(1)}
}

// Sample2D returns the constant value for every coordinate.
func (c *Constant) Sample2D(uv lin.V2) lin.V4 { return c.Value }

// Size returns 1x1.
func (c *Constant) Size() (w, h int) { return 1, 1 }
