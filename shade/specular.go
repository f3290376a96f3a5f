// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// specular.go holds the two Dirac delta lobes: mirror reflection and
// Snell refraction. Delta lobes cannot be evaluated at an arbitrary
// direction pair, only sampled; Evaluate and PDF return zero and the
// sampled value carries the full 1/|cosθ| weighted contribution.

import "github.com/gazed/lux/math/lin"

// SpecularReflect is a perfect mirror weighted by a Fresnel term.
type SpecularReflect struct {
	Albedo  lin.V3
	Fresnel Fresnel
}

// Type classifies the lobe as reflective specular.
func (s *SpecularReflect) Type() FunctionType { return Reflective | Specular }

// Evaluate returns zero: a delta lobe never matches a given pair.
func (s *SpecularReflect) Evaluate(wo, wi lin.V3) lin.V3 { return lin.V3{} }

// PDF returns zero: the delta density has no finite value.
func (s *SpecularReflect) PDF(wo, wi lin.V3) float32 { return 0 }

// Sample mirrors wo across the shading normal. The variates go
// unused: there is exactly one direction.
func (s *SpecularReflect) Sample(wo lin.V3, u, v float32) (lin.V3, lin.V3, float32) {
	wi := lin.V3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	cosI := absCosTheta(wi)
	if cosI == 0 {
		return lin.V3{}, wi, 0
	}
	f := s.Fresnel.Evaluate(cosTheta(wo))
	return s.Albedo.Scale(f / cosI), wi, 1
}

// SpecularReflect
// =============================================================================
// SpecularTransmit

// SpecularTransmit refracts through a dielectric boundary. EtaOut is
// the refractive index on the shading normal side, EtaIn the index
// inside the surface.
type SpecularTransmit struct {
	Albedo lin.V3
	EtaOut float32
	EtaIn  float32
}

// Type classifies the lobe as transmissive specular.
func (s *SpecularTransmit) Type() FunctionType { return Transmissive | Specular }

// Evaluate returns zero: a delta lobe never matches a given pair.
func (s *SpecularTransmit) Evaluate(wo, wi lin.V3) lin.V3 { return lin.V3{} }

// PDF returns zero: the delta density has no finite value.
func (s *SpecularTransmit) PDF(wo, wi lin.V3) float32 { return 0 }

// Sample refracts wo through the boundary. Total internal reflection
// returns the impossible sample: the matching reflection lobe carries
// that energy. The η² ratio compresses radiance across the boundary.
func (s *SpecularTransmit) Sample(wo lin.V3, u, v float32) (lin.V3, lin.V3, float32) {
	etaI, etaT := s.EtaOut, s.EtaIn
	n := lin.V3{Z: 1}
	if cosTheta(wo) < 0 {
		etaI, etaT = etaT, etaI
		n.Z = -1 // leaving the surface: flip the boundary.
	}
	wi, ok := Refract(wo, n, etaI/etaT)
	if !ok {
		return lin.V3{}, wi, 0
	}
	cosI := absCosTheta(wi)
	if cosI == 0 {
		return lin.V3{}, wi, 0
	}
	f, _ := DielectricFresnel(cosTheta(wo), s.EtaOut, s.EtaIn)
	scale := (1 - f) * (etaI * etaI) / (etaT * etaT) / cosI
	return s.Albedo.Scale(scale), wi, 1
}
