// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

// warp.go maps uniform 2D variates onto the shapes Monte Carlo
// rendering integrates over. Each warp has a matching PDF function
// in the same measure so estimators stay unbiased.

import "github.com/gazed/lux/math/lin"

// UniformDisk maps a uniform square sample to the unit disk using
// Shirley's concentric mapping, which preserves stratification better
// than the polar mapping.
func UniformDisk(u, v float32) (x, y float32) {
	// map to [-1,1]² and handle the degenerate center.
	ox, oy := 2*u-1, 2*v-1
	if ox == 0 && oy == 0 {
		return 0, 0
	}
	var r, theta float32
	if lin.Abs(ox) > lin.Abs(oy) {
		r = ox
		theta = (lin.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = lin.HalfPi - (lin.Pi/4)*(ox/oy)
	}
	return r * lin.Cos(theta), r * lin.Sin(theta)
}

// CosineHemisphere maps a uniform square sample to a direction on the
// +Z hemisphere with density proportional to cosθ. Implemented by
// lifting a concentric disk sample, Malley's method.
func CosineHemisphere(u, v float32) lin.V3 {
	x, y := UniformDisk(u, v)
	z := lin.Sqrt(lin.Max(0, 1-x*x-y*y))
	return lin.V3{X: x, Y: y, Z: z}
}

// CosineHemispherePDF returns the solid angle density of
// CosineHemisphere for a direction with the given cosθ.
func CosineHemispherePDF(cosTheta float32) float32 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta * lin.InvPi
}

// UniformHemisphere maps a uniform square sample to a direction on
// the +Z hemisphere with constant density.
func UniformHemisphere(u, v float32) lin.V3 {
	z := u
	r := lin.Sqrt(lin.Max(0, 1-z*z))
	phi := lin.Pix2 * v
	return lin.V3{X: r * lin.Cos(phi), Y: r * lin.Sin(phi), Z: z}
}

// UniformHemispherePDF returns the constant density of UniformHemisphere.
func UniformHemispherePDF() float32 { return 1 / lin.Pix2 }

// UniformSphere maps a uniform square sample to a direction on the
// full sphere with constant density.
func UniformSphere(u, v float32) lin.V3 {
	z := 1 - 2*u
	r := lin.Sqrt(lin.Max(0, 1-z*z))
	phi := lin.Pix2 * v
	return lin.V3{X: r * lin.Cos(phi), Y: r * lin.Sin(phi), Z: z}
}

// UniformSpherePDF returns the constant density of UniformSphere.
func UniformSpherePDF() float32 { return 1 / (2 * lin.Pix2) }

// UniformTriangle maps a uniform square sample to barycentric
// coordinates with constant density over the triangle.
func UniformTriangle(u, v float32) (b0, b1 float32) {
	su := lin.Sqrt(u)
	return 1 - su, v * su
}

// PowerHeuristic returns the multiple importance sampling weight for
// an estimator that took nf samples with density fPdf against one that
// took ng samples with density gPdf, using the power heuristic β=2.
func PowerHeuristic(nf int, fPdf float32, ng int, gPdf float32) float32 {
	f, g := float32(nf)*fPdf, float32(ng)*gPdf
	if f == 0 && g == 0 {
		return 0
	}
	return (f * f) / (f*f + g*g)
}
