// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// sphere.go holds the prepared sphere. The intersection math follows
// the classic quadratic solution, returning polar coordinates scaled
// into [0,1]² so they can be used directly as texture coordinates.

import "github.com/gazed/lux/math/lin"

// Sphere is an immutable prepared sphere.
type Sphere struct {
	Center   lin.V3
	Radius   float32
	Material uint32 // index into the prepared material array.
}

// NewSphere returns a prepared sphere.
func NewSphere(center lin.V3, radius float32, material uint32) Sphere {
	return Sphere{Center: center, Radius: radius, Material: material}
}

// Intersect returns the nearest positive hit distance and the polar
// texture coordinate of the hit point. Rays starting inside the
// sphere hit its back wall.
func (s *Sphere) Intersect(r *Ray) (dist, u, v float32, ok bool) {
	o := r.Origin.V3().Sub(s.Center)
	d := r.Dir.V3()
	b := o.Dot(d) // half b: direction is unit length so a == 1.
	c := o.Dot(o) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, 0, 0, false
	}
	root := lin.Sqrt(disc)
	dist = -b - root
	if dist <= 0 {
		dist = -b + root // inside the sphere: use the far wall.
		if dist <= 0 {
			return 0, 0, 0, false
		}
	}
	p := r.At(dist).Sub(s.Center).Scale(1 / s.Radius)
	u = (lin.Atan2(p.Y, p.X) + lin.Pi) / lin.Pix2
	v = lin.Acos(p.Z) / lin.Pi
	return dist, u, v, true
}

// NormalAt returns the unit outward normal for a surface point.
func (s *Sphere) NormalAt(point lin.V3) lin.V3 {
	return point.Sub(s.Center).Unit()
}

// Area returns the surface area of the sphere.
func (s *Sphere) Area() float32 {
	return 2 * lin.Pix2 * s.Radius * s.Radius
}

// Bounds returns the bounding box of the sphere.
func (s *Sphere) Bounds() AABB {
	r := lin.V3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Sample returns a uniformly distributed surface point and its normal
// given a 2D uniform variate. Used when the sphere is a light.
func (s *Sphere) Sample(u, v float32) (point, normal lin.V3) {
	z := 1 - 2*u
	r := lin.Sqrt(lin.Max(0, 1-z*z))
	phi := lin.Pix2 * v
	normal = lin.V3{X: r * lin.Cos(phi), Y: r * lin.Sin(phi), Z: z}
	return s.Center.Add(normal.Scale(s.Radius)), normal
}
