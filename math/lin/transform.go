// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Transform combines location, rotation and scale into a single
// affine transform used for scene graph nodes.

// T is a location:Loc, rotation:Rot, and scale:Scl transform.
// Applying T to a point scales, then rotates, then translates.
type T struct {
	Loc V3 // location or position.
	Rot Q  // rotation or direction.
	Scl V3 // per axis scale, 1 is unscaled.
}

// TI returns the identity transform: no translation, no rotation,
// scale 1.
func TI() T { return T{Rot: QI, Scl: V3{1, 1, 1}} }

// AppPoint applies the transform t to point p.
func (t T) AppPoint(p V3) V3 {
	return t.Rot.App(p.Mul(t.Scl)).Add(t.Loc)
}

// AppDir applies the transform t to direction d. Directions are
// scaled and rotated, never translated.
func (t T) AppDir(d V3) V3 {
	return t.Rot.App(d.Mul(t.Scl))
}

// AppNorm applies the transform t to normal n. Normals rotate like
// directions but scale by the inverse so that they stay perpendicular
// under non-uniform scaling. The result is unit length.
func (t T) AppNorm(n V3) V3 {
	inv := V3{SafeRcp(t.Scl.X), SafeRcp(t.Scl.Y), SafeRcp(t.Scl.Z)}
	return t.Rot.App(n.Mul(inv)).Unit()
}

// Mul (*) returns the composition of t with child c: c applied first,
// then t. Composition assumes uniform or axis-aligned scaling, the
// only kind the scene graph permits.
func (t T) Mul(c T) T {
	return T{
		Loc: t.AppPoint(c.Loc),
		Rot: t.Rot.Mul(c.Rot).Unit(),
		Scl: t.Scl.Mul(c.Scl),
	}
}

// M4 returns the matrix form of the transform for callers that batch
// transform many points.
func (t T) M4() M4 {
	r := t.Rot.M3()
	return M4{
		Xx: r.Xx * t.Scl.X, Xy: r.Xy * t.Scl.Y, Xz: r.Xz * t.Scl.Z, Xw: t.Loc.X,
		Yx: r.Yx * t.Scl.X, Yy: r.Yy * t.Scl.Y, Yz: r.Yz * t.Scl.Z, Yw: t.Loc.Y,
		Zx: r.Zx * t.Scl.X, Zy: r.Zy * t.Scl.Y, Zz: r.Zz * t.Scl.Z, Zw: t.Loc.Z,
		Ww: 1,
	}
}
