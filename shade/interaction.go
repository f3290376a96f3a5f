// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// interaction.go holds the packet describing one ray surface hit,
// passed from the tracer to the material and on to the evaluator.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/trace"
)

// Interaction describes a surface hit. The evaluator fills in the
// geometry, the material's Scatter fills in the BSDF.
type Interaction struct {
	Point    lin.V3      // world space hit point.
	Normal   lin.V3      // unit geometric normal.
	Shading  lin.V3      // unit shading normal after normal mapping.
	Outgoing lin.V3      // unit direction back toward the ray origin.
	Texcoord lin.V2      // surface parameterization at the hit.
	Distance float32     // parametric hit distance.
	Token    trace.Token // the geometry that was hit.

	Material *Material // shading policy of the hit surface.
	BSDF     *BSDF     // valid only until the arena resets.
}

// FrontFace returns true when the outgoing direction leaves the
// geometric front of the surface.
func (it *Interaction) FrontFace() bool {
	return it.Outgoing.Dot(it.Normal) > 0
}

// Spawn returns the origin for a continuation ray leaving the hit
// point along dir, offset to avoid self intersection.
func (it *Interaction) Spawn(dir lin.V3) trace.Ray {
	return trace.NewRayShift(it.Point, dir)
}
