// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// aabb.go holds the axis aligned bounding box and its slab
// intersection test, the single most executed piece of code in
// the renderer.

import "github.com/gazed/lux/math/lin"

// FarMultiplier pushes the slab test's far plane out by two units in
// the last place. Float rounding in the slab test can otherwise
// reject rays that graze a box containing real geometry; scaling the
// far distance turns those false misses into conservative false hits.
// See Ize, "Robust BVH Ray Traversal".
const FarMultiplier = 1.00000024

// AABB is an axis aligned bounding box with min and max corners.
// Invariant: Max >= Min componentwise for any box holding geometry.
// The W lanes are dead padding for 128 bit loads.
type AABB struct {
	Min lin.V4
	Max lin.V4
}

// EmptyAABB returns the box that contains nothing: min at +infinity
// and max at -infinity, so any Encapsulate fixes it up.
func EmptyAABB() AABB {
	return AABB{
		Min: lin.V4{X: lin.Inf, Y: lin.Inf, Z: lin.Inf},
		Max: lin.V4{X: -lin.Inf, Y: -lin.Inf, Z: -lin.Inf},
	}
}

// NewAABB returns the box spanning the two corner points.
func NewAABB(min, max lin.V3) AABB {
	return AABB{Min: min.V4(0), Max: max.V4(0)}
}

// Intersect runs the slab test, returning the nearest non-negative
// entry distance, or +infinity for a miss. A ray starting inside the
// box intersects at distance zero. 6 multiplies plus horizontal
// min/max reductions; branch free until the final accept test.
func (b *AABB) Intersect(r *Ray) float32 {
	return slab(b.Min.V3(), b.Max.V3(), r)
}

// slab is the shared slab kernel used by AABB and hierarchy nodes.
func slab(min, max lin.V3, r *Ray) float32 {
	o, inv := r.Origin, r.InvDir
	tx0 := (min.X - o.X) * inv.X
	tx1 := (max.X - o.X) * inv.X
	ty0 := (min.Y - o.Y) * inv.Y
	ty1 := (max.Y - o.Y) * inv.Y
	tz0 := (min.Z - o.Z) * inv.Z
	tz1 := (max.Z - o.Z) * inv.Z

	near := lin.Max(lin.Max(lin.Min(tx0, tx1), lin.Min(ty0, ty1)), lin.Min(tz0, tz1))
	far := lin.Min(lin.Min(lin.Max(tx0, tx1), lin.Max(ty0, ty1)), lin.Max(tz0, tz1))
	far *= FarMultiplier

	if near <= far && far >= 0 {
		return lin.Max(near, 0)
	}
	return lin.Inf
}

// Encapsulate returns the smallest box containing both b and a.
func (b AABB) Encapsulate(a AABB) AABB {
	return AABB{Min: b.Min.Min(a.Min), Max: b.Max.Max(a.Max)}
}

// EncapsulatePoint returns the smallest box containing b and point p.
func (b AABB) EncapsulatePoint(p lin.V3) AABB {
	v := p.V4(0)
	return AABB{Min: b.Min.Min(v), Max: b.Max.Max(v)}
}

// HalfArea returns half the surface area of the box, the quantity the
// surface area heuristic compares. Cheaper than full area and the
// constant factor cancels in the heuristic's ratio.
func (b *AABB) HalfArea() float32 {
	d := b.Max.Sub(b.Min)
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 0 // empty box.
	}
	return d.X*d.Y + d.Y*d.Z + d.Z*d.X
}

// Center returns the center point of the box.
func (b *AABB) Center() lin.V3 {
	return b.Min.Add(b.Max).Scale(0.5).V3()
}

// MajorAxis returns 0, 1, or 2 for the longest extent of the box.
func (b *AABB) MajorAxis() int {
	return b.Max.Sub(b.Min).V3().MajorAxis()
}

// Contains reports whether point p is inside or on the box.
func (b *AABB) Contains(p lin.V3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
