// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix deals with 3x3 and 4x4 matrices needed to transform points
// and directions. Data is organized as rows where Xy means row X
// column y.

// M3 is a 3x3 matrix. Used for rotations and tangent space bases.
type M3 struct {
	Xx, Xy, Xz float32 // row 1 : indices 0, 1, 2
	Yx, Yy, Yz float32 // row 2 : indices 3, 4, 5
	Zx, Zy, Zz float32 // row 3 : indices 6, 7, 8
}

// M4 is a 4x4 matrix treating points as column vectors with W=1.
// Used to compose node transforms when flattening a scene graph.
type M4 struct {
	Xx, Xy, Xz, Xw float32 // row 1 : indices 0, 1, 2, 3
	Yx, Yy, Yz, Yw float32 // row 2 : indices 4, 5, 6, 7
	Zx, Zy, Zz, Zw float32 // row 3 : indices 8, 9, a, b
	Wx, Wy, Wz, Ww float32 // row 4 : indices c, d, e, f
}

// M3I is the 3x3 identity matrix. It should never be changed.
var M3I = M3{
	Xx: 1, Yy: 1, Zz: 1,
}

// M4I is the 4x4 identity matrix. It should never be changed.
var M4I = M4{
	Xx: 1, Yy: 1, Zz: 1, Ww: 1,
}

// AppV applies matrix m to vector v, returning m*v.
func (m M3) AppV(v V3) V3 {
	return V3{
		m.Xx*v.X + m.Xy*v.Y + m.Xz*v.Z,
		m.Yx*v.X + m.Yy*v.Y + m.Yz*v.Z,
		m.Zx*v.X + m.Zy*v.Y + m.Zz*v.Z,
	}
}

// Mul (*) returns the matrix product m*a.
func (m M3) Mul(a M3) M3 {
	return M3{
		Xx: m.Xx*a.Xx + m.Xy*a.Yx + m.Xz*a.Zx,
		Xy: m.Xx*a.Xy + m.Xy*a.Yy + m.Xz*a.Zy,
		Xz: m.Xx*a.Xz + m.Xy*a.Yz + m.Xz*a.Zz,
		Yx: m.Yx*a.Xx + m.Yy*a.Yx + m.Yz*a.Zx,
		Yy: m.Yx*a.Xy + m.Yy*a.Yy + m.Yz*a.Zy,
		Yz: m.Yx*a.Xz + m.Yy*a.Yz + m.Yz*a.Zz,
		Zx: m.Zx*a.Xx + m.Zy*a.Yx + m.Zz*a.Zx,
		Zy: m.Zx*a.Xy + m.Zy*a.Yy + m.Zz*a.Zy,
		Zz: m.Zx*a.Xz + m.Zy*a.Yz + m.Zz*a.Zz,
	}
}

// Transpose returns the matrix flipped across its diagonal.
// For pure rotations the transpose is the inverse.
func (m M3) Transpose() M3 {
	return M3{
		Xx: m.Xx, Xy: m.Yx, Xz: m.Zx,
		Yx: m.Xy, Yy: m.Yy, Yz: m.Zy,
		Zx: m.Xz, Zy: m.Yz, Zz: m.Zz,
	}
}

// M3
// =============================================================================
// M4

// AppPoint applies matrix m to point p, including translation.
func (m M4) AppPoint(p V3) V3 {
	return V3{
		m.Xx*p.X + m.Xy*p.Y + m.Xz*p.Z + m.Xw,
		m.Yx*p.X + m.Yy*p.Y + m.Yz*p.Z + m.Yw,
		m.Zx*p.X + m.Zy*p.Y + m.Zz*p.Z + m.Zw,
	}
}

// AppDir applies matrix m to direction d, ignoring translation.
func (m M4) AppDir(d V3) V3 {
	return V3{
		m.Xx*d.X + m.Xy*d.Y + m.Xz*d.Z,
		m.Yx*d.X + m.Yy*d.Y + m.Yz*d.Z,
		m.Zx*d.X + m.Zy*d.Y + m.Zz*d.Z,
	}
}

// Mul (*) returns the matrix product m*a: transform a followed by m.
func (m M4) Mul(a M4) M4 {
	return M4{
		Xx: m.Xx*a.Xx + m.Xy*a.Yx + m.Xz*a.Zx + m.Xw*a.Wx,
		Xy: m.Xx*a.Xy + m.Xy*a.Yy + m.Xz*a.Zy + m.Xw*a.Wy,
		Xz: m.Xx*a.Xz + m.Xy*a.Yz + m.Xz*a.Zz + m.Xw*a.Wz,
		Xw: m.Xx*a.Xw + m.Xy*a.Yw + m.Xz*a.Zw + m.Xw*a.Ww,
		Yx: m.Yx*a.Xx + m.Yy*a.Yx + m.Yz*a.Zx + m.Yw*a.Wx,
		Yy: m.Yx*a.Xy + m.Yy*a.Yy + m.Yz*a.Zy + m.Yw*a.Wy,
		Yz: m.Yx*a.Xz + m.Yy*a.Yz + m.Yz*a.Zz + m.Yw*a.Wz,
		Yw: m.Yx*a.Xw + m.Yy*a.Yw + m.Yz*a.Zw + m.Yw*a.Ww,
		Zx: m.Zx*a.Xx + m.Zy*a.Yx + m.Zz*a.Zx + m.Zw*a.Wx,
		Zy: m.Zx*a.Xy + m.Zy*a.Yy + m.Zz*a.Zy + m.Zw*a.Wy,
		Zz: m.Zx*a.Xz + m.Zy*a.Yz + m.Zz*a.Zz + m.Zw*a.Wz,
		Zw: m.Zx*a.Xw + m.Zy*a.Yw + m.Zz*a.Zw + m.Zw*a.Ww,
		Wx: m.Wx*a.Xx + m.Wy*a.Yx + m.Wz*a.Zx + m.Ww*a.Wx,
		Wy: m.Wx*a.Xy + m.Wy*a.Yy + m.Wz*a.Zy + m.Ww*a.Wy,
		Wz: m.Wx*a.Xz + m.Wy*a.Yz + m.Wz*a.Zz + m.Ww*a.Wz,
		Ww: m.Wx*a.Xw + m.Wy*a.Yw + m.Wz*a.Zw + m.Ww*a.Ww,
	}
}
