// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// fresnel.go holds the dielectric Fresnel equations used by the
// specular and glossy lobes.

import "github.com/gazed/lux/math/lin"

// Fresnel computes the fraction of light a boundary reflects for a
// given incident angle.
type Fresnel interface {
	// Evaluate returns the reflected fraction for cosθ measured from
	// the boundary normal on the incident side.
	Evaluate(cosI float32) float32
}

// FresnelNone reflects everything: the Fresnel of a perfect mirror.
type FresnelNone struct{}

// Evaluate always returns 1.
func (FresnelNone) Evaluate(cosI float32) float32 { return 1 }

// FresnelDielectric is the real valued Fresnel for a boundary
// between two dielectrics, parameterized by the refractive indices
// on the outside (the side the shading normal points into) and the
// inside of the surface.
type FresnelDielectric struct {
	EtaOut float32 // refractive index on the normal side.
	EtaIn  float32 // refractive index inside the surface.
}

// Evaluate returns the unpolarized reflectance. A negative cosI means
// the direction is inside the surface and the indices swap. Total
// internal reflection returns 1.
func (f FresnelDielectric) Evaluate(cosI float32) float32 {
	r, _ := DielectricFresnel(cosI, f.EtaOut, f.EtaIn)
	return r
}

// DielectricFresnel returns the reflectance and whether the ray is
// totally internally reflected. cosI is measured on the incident
// side; a negative value flips the interface.
func DielectricFresnel(cosI, etaI, etaT float32) (r float32, tir bool) {
	cosI = lin.Clamp(cosI, -1, 1)
	if cosI < 0 {
		etaI, etaT = etaT, etaI
		cosI = -cosI
	}
	// Snell's law for the transmitted angle.
	sinI := lin.Sqrt(lin.Max(0, 1-cosI*cosI))
	sinT := etaI / etaT * sinI
	if sinT >= 1 {
		return 1, true
	}
	cosT := lin.Sqrt(lin.Max(0, 1-sinT*sinT))

	rPara := (etaT*cosI - etaI*cosT) / (etaT*cosI + etaI*cosT)
	rPerp := (etaI*cosI - etaT*cosT) / (etaI*cosI + etaT*cosT)
	return (rPara*rPara + rPerp*rPerp) * 0.5, false
}

// Refract bends the local direction w through the +Z boundary with
// the relative index eta = etaIncident/etaTransmitted. Returns false
// on total internal reflection. n is the boundary normal oriented to
// the incident side.
func Refract(w, n lin.V3, eta float32) (lin.V3, bool) {
	cosI := n.Dot(w)
	sin2T := eta * eta * lin.Max(0, 1-cosI*cosI)
	if sin2T >= 1 {
		return lin.V3{}, false
	}
	cosT := lin.Sqrt(1 - sin2T)
	return w.Neg().Scale(eta).Add(n.Scale(eta*cosI - cosT)), true
}
