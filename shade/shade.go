// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package shade provides the surface shading system: per hit BSDF
// containers assembled from BxDF lobes, the materials that choose the
// lobes, and the arena that owns their short lived allocations.
//
// All lobe math happens in a local reflection frame where the shading
// normal is +Z and the incident and outgoing directions both point
// away from the surface.
//
// Package shade is provided as part of the lux ray tracing engine.
package shade

import (
	"github.com/gazed/lux/math/lin"
)

// FunctionType is a bitmask classifying a lobe on two orthogonal
// axes: transport direction (reflective, transmissive) and sharpness
// (diffuse, glossy, specular).
type FunctionType uint32

// FunctionType bits and useful combinations.
const (
	Reflective FunctionType = 1 << iota
	Transmissive
	Diffuse
	Glossy
	Specular

	AllTypes FunctionType = Reflective | Transmissive | Diffuse | Glossy | Specular

	// NonSpecular selects everything a light sample can hit:
	// delta lobes never match a sampled direction.
	NonSpecular FunctionType = AllTypes &^ Specular
)

// Has returns true if every bit of sub is set in t.
func (t FunctionType) Has(sub FunctionType) bool { return t&sub == sub }

// HasAny returns true if any bit of sub is set in t.
func (t FunctionType) HasAny(sub FunctionType) bool { return t&sub != 0 }

// BxDF is a single reflectance or transmittance lobe. Directions are
// unit length and local to the shading frame: +Z is the shading
// normal, both directions point away from the surface.
type BxDF interface {
	// Type classifies the lobe for masking and specular handling.
	Type() FunctionType

	// Evaluate returns the lobe value for an outgoing/incident pair,
	// without the cosine factor. Delta lobes return zero: they cannot
	// be evaluated at a sampled direction.
	Evaluate(wo, wi lin.V3) lin.V3

	// PDF returns the solid angle density Sample uses for wi given
	// wo. Zero for delta lobes and impossible pairs.
	PDF(wo, wi lin.V3) float32

	// Sample draws an incident direction for wo using the 2D uniform
	// variate, returning the lobe value, the direction and its pdf.
	// A pdf of zero means the sample is impossible and must be
	// discarded.
	Sample(wo lin.V3, u, v float32) (value lin.V3, wi lin.V3, pdf float32)
}

// cosTheta returns the cosine of the angle to the shading normal for
// a local direction: simply its Z component.
func cosTheta(w lin.V3) float32 { return w.Z }

// absCosTheta returns |cosθ| for a local direction.
func absCosTheta(w lin.V3) float32 { return lin.Abs(w.Z) }

// sameHemisphere returns true when both local directions are on the
// same side of the shading normal.
func sameHemisphere(a, b lin.V3) bool { return a.Z*b.Z > 0 }
