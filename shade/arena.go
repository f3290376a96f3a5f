// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

import "github.com/gazed/lux/math/lin"

// arena.go holds the per worker scratch allocator. Every BSDF and
// lobe for a pixel sample is taken from the arena and released in
// one Reset, so after a few samples of warmup the shading hot path
// performs no heap allocation at all.

// Arena is a typed bump allocator for shading scratch state. One
// arena per worker: it must not be shared across goroutines, and
// values handed out are only valid until the next Reset.
type Arena struct {
	bsdfs []BSDF
	nB    int

	lamberts []Lambert
	nL       int
	specR    []SpecularReflect
	nSR      int
	specT    []SpecularTransmit
	nST      int
	glossR   []GlossyReflect
	nGR      int
	glossT   []GlossyTransmit
	nGT      int
}

// NewArena returns an empty arena. Pools grow on demand and are
// retained across Resets.
func NewArena() *Arena { return &Arena{} }

// Reset releases everything allocated since the previous Reset.
// The backing memory is kept for reuse.
func (a *Arena) Reset() {
	a.nB, a.nL, a.nSR, a.nST, a.nGR, a.nGT = 0, 0, 0, 0, 0, 0
}

// BSDF returns a cleared BSDF valid until the next Reset.
func (a *Arena) BSDF() *BSDF {
	if a.nB == len(a.bsdfs) {
		a.bsdfs = append(a.bsdfs, BSDF{})
	}
	b := &a.bsdfs[a.nB]
	a.nB++
	b.clear()
	return b
}

// Lambert returns an arena owned Lambert lobe.
func (a *Arena) Lambert(albedo lin.V3) *Lambert {
	if a.nL == len(a.lamberts) {
		a.lamberts = append(a.lamberts, Lambert{})
	}
	l := &a.lamberts[a.nL]
	a.nL++
	l.Albedo = albedo
	return l
}

// SpecularReflect returns an arena owned specular reflection lobe.
func (a *Arena) SpecularReflect(albedo lin.V3, fresnel Fresnel) *SpecularReflect {
	if a.nSR == len(a.specR) {
		a.specR = append(a.specR, SpecularReflect{})
	}
	l := &a.specR[a.nSR]
	a.nSR++
	l.Albedo, l.Fresnel = albedo, fresnel
	return l
}

// SpecularTransmit returns an arena owned specular transmission lobe.
func (a *Arena) SpecularTransmit(albedo lin.V3, etaOut, etaIn float32) *SpecularTransmit {
	if a.nST == len(a.specT) {
		a.specT = append(a.specT, SpecularTransmit{})
	}
	l := &a.specT[a.nST]
	a.nST++
	l.Albedo, l.EtaOut, l.EtaIn = albedo, etaOut, etaIn
	return l
}

// GlossyReflect returns an arena owned microfacet reflection lobe.
func (a *Arena) GlossyReflect(albedo lin.V3, dist TrowbridgeReitz, fresnel Fresnel) *GlossyReflect {
	if a.nGR == len(a.glossR) {
		a.glossR = append(a.glossR, GlossyReflect{})
	}
	l := &a.glossR[a.nGR]
	a.nGR++
	l.Albedo, l.Dist, l.Fresnel = albedo, dist, fresnel
	return l
}

// GlossyTransmit returns an arena owned microfacet transmission lobe.
func (a *Arena) GlossyTransmit(albedo lin.V3, dist TrowbridgeReitz, etaOut, etaIn float32) *GlossyTransmit {
	if a.nGT == len(a.glossT) {
		a.glossT = append(a.glossT, GlossyTransmit{})
	}
	l := &a.glossT[a.nGT]
	a.nGT++
	l.Albedo, l.Dist, l.EtaOut, l.EtaIn = albedo, dist, etaOut, etaIn
	return l
}
