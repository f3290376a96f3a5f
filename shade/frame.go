// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// frame.go builds the local reflection frame. The tangent basis uses
// the branchless construction of Duff et al., "Building an
// Orthonormal Basis, Revisited" (JCGT 2017), which stays stable when
// the normal approaches ±Z.

import "github.com/gazed/lux/math/lin"

// Frame is an orthonormal basis with the shading normal as +Z.
type Frame struct {
	Tangent   lin.V3 // local +X.
	Bitangent lin.V3 // local +Y.
	Normal    lin.V3 // local +Z.
}

// NewFrame builds the frame around a unit normal.
func NewFrame(normal lin.V3) Frame {
	sign := float32(1)
	if normal.Z < 0 {
		sign = -1
	}
	a := -1 / (sign + normal.Z)
	b := normal.X * normal.Y * a
	return Frame{
		Tangent:   lin.V3{X: 1 + sign*normal.X*normal.X*a, Y: sign * b, Z: -sign * normal.X},
		Bitangent: lin.V3{X: b, Y: sign + normal.Y*normal.Y*a, Z: -normal.Y},
		Normal:    normal,
	}
}

// ToLocal expresses the world direction w in the frame.
func (f *Frame) ToLocal(w lin.V3) lin.V3 {
	return lin.V3{X: w.Dot(f.Tangent), Y: w.Dot(f.Bitangent), Z: w.Dot(f.Normal)}
}

// ToWorld expresses the local direction l in world space.
func (f *Frame) ToWorld(l lin.V3) lin.V3 {
	return f.Tangent.Scale(l.X).Add(f.Bitangent.Scale(l.Y)).Add(f.Normal.Scale(l.Z))
}
