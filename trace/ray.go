// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package trace provides the ray tracing hot path: rays, bounding
// boxes, prepared primitives and the bounding volume hierarchy that
// accelerates their intersection queries. Data here is laid out for
// cache friendliness: rays and boxes are 16 byte lane aligned and a
// hierarchy node is exactly half a cache line.
//
// Package trace is provided as part of the lux ray tracing engine.
package trace

// ray.go holds the ray structure shared by every intersection query.

import "github.com/gazed/lux/math/lin"

// ShiftEpsilon is the distance a continuation ray is moved along its
// direction so that it does not immediately hit the surface it left.
const ShiftEpsilon = 5e-4

// Ray is a world space half line from an origin along a unit length
// direction. The reciprocal direction is precomputed for the slab
// test and clamped to finite values so axis aligned rays stay usable.
// The fourth lane of each vector is dead padding for 128 bit loads.
type Ray struct {
	Origin lin.V4 // ray start point, W unused.
	Dir    lin.V4 // unit direction, W unused.
	InvDir lin.V4 // 1/Dir clamped to ±MaxFloat, W unused.
}

// NewRay returns a ray from origin along the unit direction dir.
func NewRay(origin, dir lin.V3) Ray {
	return Ray{
		Origin: origin.V4(0),
		Dir:    dir.V4(0),
		InvDir: lin.V4{
			X: lin.SafeRcp(dir.X),
			Y: lin.SafeRcp(dir.Y),
			Z: lin.SafeRcp(dir.Z),
		},
	}
}

// NewRayShift returns a ray whose origin is moved ShiftEpsilon along
// dir. Used for continuation and shadow rays spawned at a surface so
// that float error does not report the surface itself as a hit.
func NewRayShift(origin, dir lin.V3) Ray {
	return NewRay(origin.Add(dir.Scale(ShiftEpsilon)), dir)
}

// At returns the point a parametric distance t along the ray.
func (r *Ray) At(t float32) lin.V3 {
	return r.Origin.V3().Add(r.Dir.V3().Scale(t))
}
