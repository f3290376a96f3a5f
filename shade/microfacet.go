// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// microfacet.go holds the Trowbridge–Reitz (GGX) microfacet
// distribution behind the glossy lobes: the normal distribution D,
// the Smith shadowing term G, and half vector sampling.

import "github.com/gazed/lux/math/lin"

// TrowbridgeReitz is an isotropic GGX microfacet distribution.
type TrowbridgeReitz struct {
	Alpha float32 // surface slope spread, from RoughnessToAlpha.
}

// RoughnessToAlpha maps perceptual roughness in [0,1] to the
// distribution width. The square remap keeps the low end usable.
func RoughnessToAlpha(roughness float32) float32 {
	r := lin.Max(roughness, 1e-3)
	return r * r
}

// D returns the differential area of microfacets oriented along the
// local half vector wh.
func (d TrowbridgeReitz) D(wh lin.V3) float32 {
	cos2 := wh.Z * wh.Z
	if cos2 <= 0 {
		return 0
	}
	a2 := d.Alpha * d.Alpha
	e := cos2*(a2-1) + 1
	return a2 / (lin.Pi * e * e)
}

// lambda is the Smith auxiliary function: the ratio of masked to
// visible microfacet area for a direction.
func (d TrowbridgeReitz) lambda(w lin.V3) float32 {
	cos2 := w.Z * w.Z
	if cos2 >= 1 {
		return 0
	}
	tan2 := (1 - cos2) / cos2
	a2 := d.Alpha * d.Alpha
	return (lin.Sqrt(1+a2*tan2) - 1) * 0.5
}

// G1 returns the fraction of microfacets visible from direction w.
func (d TrowbridgeReitz) G1(w lin.V3) float32 {
	return 1 / (1 + d.lambda(w))
}

// G returns the fraction of microfacets visible from both
// directions, using the Smith height-correlated form.
func (d TrowbridgeReitz) G(wo, wi lin.V3) float32 {
	return 1 / (1 + d.lambda(wo) + d.lambda(wi))
}

// SampleWh draws a half vector in the hemisphere of wo with density
// D(wh)·cosθh.
func (d TrowbridgeReitz) SampleWh(wo lin.V3, u, v float32) lin.V3 {
	a2 := d.Alpha * d.Alpha
	cos2 := (1 - u) / (u*(a2-1) + 1)
	cosT := lin.Sqrt(cos2)
	sinT := lin.Sqrt(lin.Max(0, 1-cos2))
	phi := lin.Pix2 * v
	wh := lin.V3{X: sinT * lin.Cos(phi), Y: sinT * lin.Sin(phi), Z: cosT}
	if !sameHemisphere(wo, wh) {
		wh = wh.Neg()
	}
	return wh
}

// PDF returns the solid angle density of SampleWh for wh given wo.
func (d TrowbridgeReitz) PDF(wo, wh lin.V3) float32 {
	return d.D(wh) * absCosTheta(wh)
}
