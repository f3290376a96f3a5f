// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs the 2, 3 and 4 element vector math needed by the
// ray tracing hot path. Vectors are small value types: operations
// return new values instead of writing through pointers so that the
// compiler keeps them in registers.

// V2 is a 2 element vector. Used for texture coordinates,
// barycentrics and 2D sample points.
type V2 struct {
	X float32
	Y float32
}

// V3 is a 3 element vector. This can also be used as a point
// or as an RGB colour triple.
type V3 struct {
	X float32 // increments as X moves to the right.
	Y float32 // increments as Y moves up.
	Z float32 // increments as Z moves away from the default camera view.
}

// V4 is a 4 element vector. It is the 16 byte unit of the renderer:
// as a colour it is RGBA, and as a point or direction the W lane is
// dead padding that keeps structures aligned for 128 bit loads.
type V4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// V2 methods.

// Add (+) returns the element sum of v and a.
func (v V2) Add(a V2) V2 { return V2{v.X + a.X, v.Y + a.Y} }

// Sub (-) returns the element difference of v and a.
func (v V2) Sub(a V2) V2 { return V2{v.X - a.X, v.Y - a.Y} }

// Scale (*) returns v with each element multiplied by s.
func (v V2) Scale(s float32) V2 { return V2{v.X * s, v.Y * s} }

// Lerp returns the interpolation between v at t=0 and a at t=1.
func (v V2) Lerp(a V2, t float32) V2 {
	return V2{Lerp(v.X, a.X, t), Lerp(v.Y, a.Y, t)}
}

// V2
// =============================================================================
// V3

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v V3) Eq(a V3) bool { return v.Z == a.Z && v.Y == a.Y && v.X == a.X }

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
func (v V3) Aeq(a V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns the element sum of v and a.
func (v V3) Add(a V3) V3 { return V3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns the element difference of v and a.
func (v V3) Sub(a V3) V3 { return V3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Neg (-) returns the vector with each element negated.
func (v V3) Neg() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Scale (*) returns v with each element multiplied by the scalar s.
func (v V3) Scale(s float32) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Mul (⊙) returns the element-wise product of v and a.
// Used for colour modulation.
func (v V3) Mul(a V3) V3 { return V3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Div (⊘) returns the element-wise quotient of v and a.
func (v V3) Div(a V3) V3 { return V3{v.X / a.X, v.Y / a.Y, v.Z / a.Z} }

// Dot (·) returns the dot product of v and a. The dot product relates
// to the angle between two vectors.
func (v V3) Dot(a V3) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross (×) returns the vector perpendicular to both v and a.
func (v V3) Cross(a V3) V3 {
	return V3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// Len returns the length of the vector.
func (v V3) Len() float32 { return Sqrt(v.Dot(v)) }

// LenSqr returns the squared length of the vector. Cheaper than Len
// and sufficient for comparisons.
func (v V3) LenSqr() float32 { return v.Dot(v) }

// Unit returns the vector scaled to length 1. A zero length input
// is returned unchanged rather than becoming NaN.
func (v V3) Unit() V3 {
	l2 := v.Dot(v)
	if l2 <= 0 {
		return v
	}
	return v.Scale(1 / Sqrt(l2))
}

// Abs returns the vector with each element made non-negative.
func (v V3) Abs() V3 { return V3{Abs(v.X), Abs(v.Y), Abs(v.Z)} }

// Min returns the element minimum of v and a.
func (v V3) Min(a V3) V3 { return V3{Min(v.X, a.X), Min(v.Y, a.Y), Min(v.Z, a.Z)} }

// Max returns the element maximum of v and a.
func (v V3) Max(a V3) V3 { return V3{Max(v.X, a.X), Max(v.Y, a.Y), Max(v.Z, a.Z)} }

// Lerp returns the interpolation between v at t=0 and a at t=1.
func (v V3) Lerp(a V3, t float32) V3 {
	return V3{Lerp(v.X, a.X, t), Lerp(v.Y, a.Y, t), Lerp(v.Z, a.Z, t)}
}

// MaxComp returns the largest of the three elements.
func (v V3) MaxComp() float32 { return Max(v.X, Max(v.Y, v.Z)) }

// MinComp returns the smallest of the three elements.
func (v V3) MinComp() float32 { return Min(v.X, Min(v.Y, v.Z)) }

// MajorAxis returns 0, 1, or 2 for the axis with the largest magnitude.
func (v V3) MajorAxis() int {
	a := v.Abs()
	switch {
	case a.X >= a.Y && a.X >= a.Z:
		return 0
	case a.Y >= a.Z:
		return 1
	}
	return 2
}

// Axis returns the element selected by axis 0, 1, or 2.
func (v V3) Axis(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// IsFinite reports whether every element is neither NaN nor infinite.
func (v V3) IsFinite() bool { return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z) }

// IsZero reports whether every element is exactly zero.
func (v V3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// V4 returns the vector extended with the given fourth lane.
func (v V3) V4(w float32) V4 { return V4{v.X, v.Y, v.Z, w} }

// Luminance returns the perceptual brightness of the vector
// interpreted as linear RGB.
func (v V3) Luminance() float32 { return 0.212671*v.X + 0.715160*v.Y + 0.072169*v.Z }

// V3
// =============================================================================
// V4

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v V4) Eq(a V4) bool { return v.W == a.W && v.Z == a.Z && v.Y == a.Y && v.X == a.X }

// Add (+) returns the element sum of v and a.
func (v V4) Add(a V4) V4 { return V4{v.X + a.X, v.Y + a.Y, v.Z + a.Z, v.W + a.W} }

// Sub (-) returns the element difference of v and a.
func (v V4) Sub(a V4) V4 { return V4{v.X - a.X, v.Y - a.Y, v.Z - a.Z, v.W - a.W} }

// Scale (*) returns v with each element multiplied by the scalar s.
func (v V4) Scale(s float32) V4 { return V4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// Mul (⊙) returns the element-wise product of v and a.
func (v V4) Mul(a V4) V4 { return V4{v.X * a.X, v.Y * a.Y, v.Z * a.Z, v.W * a.W} }

// Dot (·) returns the 4 element dot product of v and a.
func (v V4) Dot(a V4) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W }

// Min returns the element minimum of v and a.
func (v V4) Min(a V4) V4 {
	return V4{Min(v.X, a.X), Min(v.Y, a.Y), Min(v.Z, a.Z), Min(v.W, a.W)}
}

// Max returns the element maximum of v and a.
func (v V4) Max(a V4) V4 {
	return V4{Max(v.X, a.X), Max(v.Y, a.Y), Max(v.Z, a.Z), Max(v.W, a.W)}
}

// V3 returns the first three lanes, dropping W.
func (v V4) V3() V3 { return V3{v.X, v.Y, v.Z} }
