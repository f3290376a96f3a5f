// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion deals with quaternion math specifically for rotations.
// For a nice explanation of quaternions see http://3dgep.com/?p=1815

// Q is a unit length quaternion (versor) representing an angle of
// rotation about a direction. Quaternions behave nicely for
// mathematical operations other than they are not commutative.
type Q struct {
	X float32 // X component of direction vector.
	Y float32 // Y component of direction vector.
	Z float32 // Z component of direction vector.
	W float32 // Cosine of half the angle of rotation.
}

// QI is the identity quaternion: no rotation.
var QI = Q{0, 0, 0, 1}

// QAxisAngle returns the versor rotating angle degrees about axis.
// The axis is expected to be unit length.
func QAxisAngle(axis V3, deg float32) Q {
	half := deg * DegRad * 0.5
	s := Sin(half)
	return Q{axis.X * s, axis.Y * s, axis.Z * s, Cos(half)}
}

// Eq (==) returns true if each element in the quaternion q has the same
// value as the corresponding element in quaternion r.
func (q Q) Eq(r Q) bool { return q.W == r.W && q.Z == r.Z && q.Y == r.Y && q.X == r.X }

// Aeq (~=) almost-equals returns true if all the elements in quaternion q
// have essentially the same value as the corresponding elements in r.
func (q Q) Aeq(r Q) bool {
	return Aeq(q.X, r.X) && Aeq(q.Y, r.Y) && Aeq(q.Z, r.Z) && Aeq(q.W, r.W)
}

// Inv returns the inverse of q. The inverse of a unit quaternion is
// the same as its conjugate.
func (q Q) Inv() Q { return Q{-q.X, -q.Y, -q.Z, q.W} }

// Len returns the length of the quaternion. Unit quaternions,
// the only valid rotations, have length 1.
func (q Q) Len() float32 { return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W) }

// Unit returns the quaternion scaled to length 1.
func (q Q) Unit() Q {
	l := q.Len()
	if l <= 0 {
		return QI
	}
	s := 1 / l
	return Q{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// IsUnit reports whether the quaternion is close enough to length 1
// to be a valid rotation.
func (q Q) IsUnit() bool { return Abs(q.Len()-1) < 1e-3 }

// Mul (*) returns the product q*r: the rotation r followed by the
// rotation q.
// Remember that quaternion multiplication is not commutative.
func (q Q) Mul(r Q) Q {
	return Q{
		q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		q.W*r.Y + q.Y*r.W + q.Z*r.X - q.X*r.Z,
		q.W*r.Z + q.Z*r.W + q.X*r.Y - q.Y*r.X,
		q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// App applies the rotation q to vector v, returning the rotated vector.
// Uses the expanded q*v*q⁻¹ form which is cheaper than building a matrix
// for a single vector.
func (q Q) App(v V3) V3 {
	u := V3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// M3 returns the rotation matrix equivalent of the quaternion.
// Used when the same rotation is applied to many vectors.
func (q Q) M3() M3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return M3{
		Xx: 1 - 2*(yy+zz), Xy: 2 * (xy - wz), Xz: 2 * (xz + wy),
		Yx: 2 * (xy + wz), Yy: 1 - 2*(xx+zz), Yz: 2 * (yz - wx),
		Zx: 2 * (xz - wy), Zy: 2 * (yz + wx), Zz: 1 - 2*(xx+yy),
	}
}
