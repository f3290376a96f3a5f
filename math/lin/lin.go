// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear math needed by an offline renderer:
// vectors, matrices, versors, transforms and scalar utility functions.
//
// Package lin is provided as part of the lux ray tracing engine.
package lin

// Design Notes:
//
// 1) This is a CPU based 3D math library called from ray tracing loops
//    where performance is key. Some general guidelines, verified with
//    benchmarks, can be seen throughout the library.
//     - small value types that fit in registers
//     - prefer multiply over divide
//     - branchless selects where the compiler can see them
//
// 2) The default scalar size is float32. Rays, bounding boxes and colour
//    samples are four 32 bit lanes wide so that structures line up with
//    128 bit vector loads. Scene preparation, which runs once, is not
//    performance sensitive and uses the same types for simplicity.

import "math"

// Various linear math constants.
const (

	// Pi and its commonly needed variants.
	Pi     float32 = math.Pi
	Pix2   float32 = Pi * 2
	HalfPi float32 = Pi * 0.5
	InvPi  float32 = 1 / Pi
	DegRad float32 = Pix2 / 360.0 // X degrees * DegRad = Y radians.
	RadDeg float32 = 360.0 / Pix2 // Y radians * RadDeg = X degrees.

	// Epsilon is the common allowance for float comparisons.
	Epsilon float32 = 1e-6
)

// MaxFloat is the largest finite float32. Used to clamp reciprocals
// so that later multiplies stay finite.
var MaxFloat = float32(math.MaxFloat32)

// Inf is the positive float32 infinity. Used as the "no hit" distance.
var Inf = float32(math.Inf(1))

// Aeq (~=) almost-equals returns true if the two scalars are within
// Epsilon of each other. Used where a direct comparison is unlikely
// to return true due to floats.
func Aeq(a, b float32) bool {
	d := a - b
	return d < Epsilon && d > -Epsilon
}

// AeqZ (~=0) almost-equals-zero returns true if the scalar is close
// enough to zero that it makes no difference.
func AeqZ(a float32) bool { return a < Epsilon && a > -Epsilon }

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp returns x limited to the range min..max.
func Clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// Saturate returns x limited to the range 0..1.
func Saturate(x float32) float32 { return Clamp(x, 0, 1) }

// Lerp returns the linear interpolation between a at t=0 and b at t=1.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Sqr returns x squared.
func Sqr(x float32) float32 { return x * x }

// Sqrt returns the square root of x as a float32.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

// Atan2 returns the arc tangent of y/x in the correct quadrant.
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Acos returns the arc cosine of x clamped into its valid domain.
// Out of range inputs happen with accumulated float error on unit vectors.
func Acos(x float32) float32 { return float32(math.Acos(float64(Clamp(x, -1, 1)))) }

// Pow returns x raised to the power y.
func Pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

// Floor returns the largest integer value less than or equal to x.
func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// IsNaN reports whether x is a not-a-number value.
func IsNaN(x float32) bool { return x != x }

// IsInf reports whether x is an infinity.
func IsInf(x float32) bool { return x > MaxFloat || x < -MaxFloat }

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool { return x == x && x <= MaxFloat && x >= -MaxFloat }

// SafeRcp returns 1/x clamped into the finite float range so that
// multiplying by it never produces NaN from a zero denominator.
func SafeRcp(x float32) float32 {
	r := 1 / x
	if r > MaxFloat {
		return MaxFloat
	}
	if r < -MaxFloat {
		return -MaxFloat
	}
	return r
}
