// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// glossy.go holds the microfacet lobes. Reflection uses the half
// vector h = normalize(o+i); transmission uses the refraction half
// vector h = normalize(o + i·η) with the matching change of measure
// Jacobian.

import "github.com/gazed/lux/math/lin"

// GlossyReflect is microfacet reflection from a Trowbridge–Reitz
// surface behind a Fresnel boundary.
type GlossyReflect struct {
	Albedo  lin.V3
	Dist    TrowbridgeReitz
	Fresnel Fresnel
}

// Type classifies the lobe as reflective glossy.
func (g *GlossyReflect) Type() FunctionType { return Reflective | Glossy }

// Evaluate returns F·D·G / (4·|cosθo·cosθi|).
func (g *GlossyReflect) Evaluate(wo, wi lin.V3) lin.V3 {
	cosO, cosI := absCosTheta(wo), absCosTheta(wi)
	if cosO == 0 || cosI == 0 || !sameHemisphere(wo, wi) {
		return lin.V3{}
	}
	wh := wo.Add(wi)
	if wh.IsZero() {
		return lin.V3{}
	}
	wh = wh.Unit()
	f := g.Fresnel.Evaluate(wo.Dot(wh))
	return g.Albedo.Scale(g.Dist.D(wh) * g.Dist.G(wo, wi) * f / (4 * cosO * cosI))
}

// PDF returns the half vector density divided by the reflection
// Jacobian dωh/dωi = 1/(4·o·h).
func (g *GlossyReflect) PDF(wo, wi lin.V3) float32 {
	if !sameHemisphere(wo, wi) {
		return 0
	}
	wh := wo.Add(wi)
	if wh.IsZero() {
		return 0
	}
	wh = wh.Unit()
	dot := lin.Abs(wo.Dot(wh))
	if dot == 0 {
		return 0
	}
	return g.Dist.PDF(wo, wh) / (4 * dot)
}

// Sample draws a half vector and mirrors wo about it.
func (g *GlossyReflect) Sample(wo lin.V3, u, v float32) (lin.V3, lin.V3, float32) {
	if wo.Z == 0 {
		return lin.V3{}, wo, 0
	}
	wh := g.Dist.SampleWh(wo, u, v)
	if wo.Dot(wh) < 0 {
		return lin.V3{}, wo, 0
	}
	wi := wh.Scale(2 * wo.Dot(wh)).Sub(wo)
	if !sameHemisphere(wo, wi) {
		return lin.V3{}, wi, 0
	}
	return g.Evaluate(wo, wi), wi, g.PDF(wo, wi)
}

// GlossyReflect
// =============================================================================
// GlossyTransmit

// GlossyTransmit is microfacet transmission through a rough
// dielectric boundary. EtaOut is the refractive index on the shading
// normal side, EtaIn the index inside the surface.
type GlossyTransmit struct {
	Albedo lin.V3
	Dist   TrowbridgeReitz
	EtaOut float32
	EtaIn  float32
}

// Type classifies the lobe as transmissive glossy.
func (g *GlossyTransmit) Type() FunctionType { return Transmissive | Glossy }

// eta returns the relative index ηin/ηout for the side wo is on.
func (g *GlossyTransmit) eta(wo lin.V3) float32 {
	if cosTheta(wo) > 0 {
		return g.EtaIn / g.EtaOut
	}
	return g.EtaOut / g.EtaIn
}

// halfVector returns the refraction half vector oriented to +Z, or
// false for a pair that no microfacet can refract between.
func (g *GlossyTransmit) halfVector(wo, wi lin.V3) (lin.V3, bool) {
	wh := wo.Add(wi.Scale(g.eta(wo)))
	if wh.IsZero() {
		return wh, false
	}
	wh = wh.Unit()
	if wh.Z < 0 {
		wh = wh.Neg()
	}
	// both directions must be on opposite sides of the microfacet.
	if wo.Dot(wh)*wi.Dot(wh) > 0 {
		return wh, false
	}
	return wh, true
}

// Evaluate returns the rough transmission value with the η² radiance
// compression and the refraction Jacobian denominator.
func (g *GlossyTransmit) Evaluate(wo, wi lin.V3) lin.V3 {
	cosO, cosI := cosTheta(wo), cosTheta(wi)
	if cosO == 0 || cosI == 0 || sameHemisphere(wo, wi) {
		return lin.V3{}
	}
	wh, ok := g.halfVector(wo, wi)
	if !ok {
		return lin.V3{}
	}
	eta := g.eta(wo)
	f, _ := DielectricFresnel(wo.Dot(wh), g.EtaOut, g.EtaIn)
	if f >= 1 {
		return lin.V3{}
	}
	denom := wo.Dot(wh) + eta*wi.Dot(wh)
	denom *= denom
	if denom == 0 {
		return lin.V3{}
	}
	// the measure conversion η² cancels against the radiance
	// compression 1/η², leaving the bare refractive form.
	val := g.Dist.D(wh) * g.Dist.G(wo, wi) * (1 - f) *
		lin.Abs(wi.Dot(wh)*wo.Dot(wh)/(cosI*cosO*denom))
	return g.Albedo.Scale(val)
}

// PDF returns the half vector density times the refraction Jacobian
// dωh/dωi = |η²·(i·h)| / (o·h + η·(i·h))².
func (g *GlossyTransmit) PDF(wo, wi lin.V3) float32 {
	if sameHemisphere(wo, wi) {
		return 0
	}
	wh, ok := g.halfVector(wo, wi)
	if !ok {
		return 0
	}
	eta := g.eta(wo)
	denom := wo.Dot(wh) + eta*wi.Dot(wh)
	denom *= denom
	if denom == 0 {
		return 0
	}
	jacobian := lin.Abs(eta * eta * wi.Dot(wh) / denom)
	return g.Dist.PDF(wo, wh) * jacobian
}

// Sample draws a half vector and refracts wo through it. Total
// internal reflection returns the impossible sample.
func (g *GlossyTransmit) Sample(wo lin.V3, u, v float32) (lin.V3, lin.V3, float32) {
	if wo.Z == 0 {
		return lin.V3{}, wo, 0
	}
	wh := g.Dist.SampleWh(wo, u, v)
	if wo.Dot(wh) < 0 {
		return lin.V3{}, wo, 0
	}
	wi, ok := Refract(wo, wh, 1/g.eta(wo))
	if !ok {
		return lin.V3{}, wi, 0
	}
	return g.Evaluate(wo, wi), wi, g.PDF(wo, wi)
}
