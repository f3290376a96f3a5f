// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// lambert.go holds the ideal diffuse lobe.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
)

// Lambert scatters light equally in all directions: value albedo/π,
// importance sampled with the cosine hemisphere so the cosine factor
// cancels against the pdf.
type Lambert struct {
	Albedo lin.V3
}

// Type classifies Lambert as reflective diffuse.
func (l *Lambert) Type() FunctionType { return Reflective | Diffuse }

// Evaluate returns albedo/π for directions on the same side.
func (l *Lambert) Evaluate(wo, wi lin.V3) lin.V3 {
	if !sameHemisphere(wo, wi) {
		return lin.V3{}
	}
	return l.Albedo.Scale(lin.InvPi)
}

// PDF returns the cosine hemisphere density cosθ/π.
func (l *Lambert) PDF(wo, wi lin.V3) float32 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	return sample.CosineHemispherePDF(absCosTheta(wi))
}

// Sample draws a cosine distributed direction on wo's side.
func (l *Lambert) Sample(wo lin.V3, u, v float32) (lin.V3, lin.V3, float32) {
	wi := sample.CosineHemisphere(u, v)
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}
	return l.Evaluate(wo, wi), wi, l.PDF(wo, wi)
}
