// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// triangle.go holds the prepared triangle: vertices pressed into the
// vertex plus two edge form that the Möller–Trumbore intersection
// wants, along with the shading attributes interpolated at a hit.

import "github.com/gazed/lux/math/lin"

// Triangle is an immutable prepared triangle. The second and third
// vertices are stored as edges from the first so intersection needs
// no subtraction, and the geometric normal is precomputed.
type Triangle struct {
	V0 lin.V3 // first vertex.
	E1 lin.V3 // v1 - v0.
	E2 lin.V3 // v2 - v0.

	N0, N1, N2 lin.V3 // per vertex shading normals.
	T0, T1, T2 lin.V2 // per vertex texture coordinates.

	Normal   lin.V3 // unit geometric normal: normalize(e1×e2).
	Material uint32 // index into the prepared material array.
}

// NewTriangle presses three vertices into a prepared triangle with
// the geometric normal used for shading. Texcoords default to the
// vertex barycentrics.
func NewTriangle(v0, v1, v2 lin.V3, material uint32) Triangle {
	t := Triangle{
		V0: v0, E1: v1.Sub(v0), E2: v2.Sub(v0),
		T1: lin.V2{X: 1}, T2: lin.V2{Y: 1},
		Material: material,
	}
	t.Normal = t.E1.Cross(t.E2).Unit()
	t.N0, t.N1, t.N2 = t.Normal, t.Normal, t.Normal
	return t
}

// SetNormals installs per vertex shading normals.
func (t *Triangle) SetNormals(n0, n1, n2 lin.V3) {
	t.N0, t.N1, t.N2 = n0, n1, n2
}

// SetTexcoords installs per vertex texture coordinates.
func (t *Triangle) SetTexcoords(t0, t1, t2 lin.V2) {
	t.T0, t.T1, t.T2 = t0, t1, t2
}

// Vertices returns the three corner points.
func (t *Triangle) Vertices() (v0, v1, v2 lin.V3) {
	return t.V0, t.V0.Add(t.E1), t.V0.Add(t.E2)
}

// Intersect runs Möller–Trumbore against the ray. On a hit it returns
// the parametric distance and the barycentric coordinates of the hit
// point. Degenerate triangles never hit: a zero area determinant
// fails the epsilon test and NaN vertices fail the distance check.
func (t *Triangle) Intersect(r *Ray) (dist, u, v float32, ok bool) {
	d := r.Dir.V3()
	p := d.Cross(t.E2)
	det := t.E1.Dot(p)
	if det > -lin.Epsilon && det < lin.Epsilon {
		return 0, 0, 0, false // parallel or degenerate.
	}
	inv := 1 / det
	s := r.Origin.V3().Sub(t.V0)
	u = s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	q := s.Cross(t.E1)
	v = d.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	dist = t.E2.Dot(q) * inv
	if dist <= 0 || lin.IsNaN(dist) {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}

// Area returns the surface area: half the cross product magnitude.
func (t *Triangle) Area() float32 {
	return t.E1.Cross(t.E2).Len() * 0.5
}

// Bounds returns the bounding box of the triangle.
func (t *Triangle) Bounds() AABB {
	v0, v1, v2 := t.Vertices()
	return NewAABB(v0.Min(v1).Min(v2), v0.Max(v1).Max(v2))
}

// Centroid returns the barycentric center, the point hierarchy
// builders bin on.
func (t *Triangle) Centroid() lin.V3 {
	v0, v1, v2 := t.Vertices()
	return v0.Add(v1).Add(v2).Scale(1.0 / 3.0)
}

// PointAt returns the surface point at barycentrics (u,v).
func (t *Triangle) PointAt(u, v float32) lin.V3 {
	return t.V0.Add(t.E1.Scale(u)).Add(t.E2.Scale(v))
}

// TexcoordAt returns the interpolated texture coordinate at (u,v).
func (t *Triangle) TexcoordAt(u, v float32) lin.V2 {
	w := 1 - u - v
	return lin.V2{
		X: t.T0.X*w + t.T1.X*u + t.T2.X*v,
		Y: t.T0.Y*w + t.T1.Y*u + t.T2.Y*v,
	}
}

// NormalAt returns the interpolated unit shading normal at (u,v).
func (t *Triangle) NormalAt(u, v float32) lin.V3 {
	w := 1 - u - v
	return t.N0.Scale(w).Add(t.N1.Scale(u)).Add(t.N2.Scale(v)).Unit()
}

// Sample returns a uniformly distributed surface point and its normal
// given a 2D uniform variate. Used when the triangle is a light.
func (t *Triangle) Sample(u, v float32) (point, normal lin.V3) {
	su := lin.Sqrt(u)
	b1, b2 := 1-su, v*su
	return t.PointAt(b1, b2), t.Normal
}

// Subdivide splits the triangle at its edge midpoints, returning four
// triangles of equal area that inherit the material and interpolate
// texcoords and shading normals. Repeated subdivision of oversized
// triangles keeps hierarchy nodes tight.
func (t *Triangle) Subdivide() [4]Triangle {
	v0, v1, v2 := t.Vertices()
	m01 := v0.Lerp(v1, 0.5)
	m12 := v1.Lerp(v2, 0.5)
	m20 := v2.Lerp(v0, 0.5)

	sub := func(a, b, c lin.V3, ua, ub, uc lin.V2, na, nb, nc lin.V3) Triangle {
		s := NewTriangle(a, b, c, t.Material)
		s.SetTexcoords(ua, ub, uc)
		s.SetNormals(na, nb, nc)
		s.Normal = t.Normal // keep the parent plane, midpoints are exact.
		return s
	}

	t01 := t.T0.Lerp(t.T1, 0.5)
	t12 := t.T1.Lerp(t.T2, 0.5)
	t20 := t.T2.Lerp(t.T0, 0.5)
	n01 := t.N0.Lerp(t.N1, 0.5).Unit()
	n12 := t.N1.Lerp(t.N2, 0.5).Unit()
	n20 := t.N2.Lerp(t.N0, 0.5).Unit()

	return [4]Triangle{
		sub(v0, m01, m20, t.T0, t01, t20, t.N0, n01, n20),
		sub(m01, v1, m12, t01, t.T1, t12, n01, t.N1, n12),
		sub(m20, m12, v2, t20, t12, t.T2, n20, n12, t.N2),
		sub(m01, m12, m20, t01, t12, t20, n01, n12, n20),
	}
}
