// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// material.go holds the pressed material: the per surface shading
// policy that turns texture samples into BxDF lobes at each hit.

import "github.com/gazed/lux/math/lin"

// smoothLimit is the roughness below which glossy lobes degenerate
// into their delta counterparts.
const smoothLimit = 0.01

// Material is the immutable shading policy pressed from a scene
// material. Prepare must run once before shading.
type Material struct {
	Albedo    Texture // base color, sampled at the hit texcoord.
	Emission  lin.V3  // emitted radiance, zero for non lights.
	Roughness float32 // microfacet roughness in [0,1].
	Specular  float32 // weight of the glossy coat on diffuse surfaces.
	IOR       float32 // refractive index for transmissive surfaces.

	Mirror       bool // perfect mirror: one specular lobe.
	Transmissive bool // dielectric: paired reflect and transmit lobes.

	NormalMap       Texture // tangent space normal map, may be nil.
	NormalIntensity lin.V3  // per channel normal map scale.

	// invariants precomputed by Prepare.
	albedoFlat  bool   // albedo is the same everywhere.
	albedoValue lin.V3 // the constant when albedoFlat.
	emissive    bool   // any emission at all.
	flatNormals bool   // normal map missing or identity.
	alpha       float32
	smooth      bool
}

// Prepare precomputes the shading invariants. It is idempotent and
// must be called before the first Scatter.
func (m *Material) Prepare() {
	if m.Albedo == nil {
		m.Albedo = NewConstant(lin.V3{X: 1, Y: 1, Z: 1})
	}
	if m.IOR == 0 {
		m.IOR = 1.5
	}
	if m.NormalIntensity.IsZero() {
		m.NormalIntensity = lin.V3{X: 1, Y: 1, Z: 1}
	}
	if c, ok := m.Albedo.(*Constant); ok {
		m.albedoFlat = true
		m.albedoValue = c.Value.V3()
	}
	m.emissive = !m.Emission.IsZero()
	m.flatNormals = m.NormalMap == nil
	m.alpha = RoughnessToAlpha(m.Roughness)
	m.smooth = m.Roughness < smoothLimit
}

// Emissive returns true if the material emits light.
func (m *Material) Emissive() bool { return m.emissive }

// PassThrough returns true for surfaces the albedo evaluator should
// look through: smooth dielectrics show what is behind them.
func (m *Material) PassThrough() bool { return m.Transmissive && m.smooth }

// SampleAlbedo returns the base color at an interaction.
func (m *Material) SampleAlbedo(it *Interaction) lin.V3 {
	if m.albedoFlat {
		return m.albedoValue
	}
	return m.Albedo.Sample2D(it.Texcoord).V3()
}

// ApplyNormalMap perturbs the shading normal with the material's
// normal map, returning true if the normal changed. The tangent
// frame is built from the interpolated normal.
func (m *Material) ApplyNormalMap(texcoord lin.V2, normal *lin.V3) bool {
	if m.flatNormals {
		return false
	}
	s := m.NormalMap.Sample2D(texcoord).V3()
	t := lin.V3{X: s.X*2 - 1, Y: s.Y*2 - 1, Z: s.Z*2 - 1}.Mul(m.NormalIntensity)
	if t.IsZero() {
		return false
	}
	f := NewFrame(*normal)
	mapped := f.ToWorld(t).Unit()
	if mapped.Aeq(*normal) {
		return false
	}
	*normal = mapped
	return true
}

// Scatter allocates a BSDF from the arena, fills it with the lobes
// this material shows at the interaction, and attaches it to the
// interaction. The BSDF lives until the arena resets.
func (m *Material) Scatter(it *Interaction, arena *Arena) {
	b := arena.BSDF()
	eta := float32(1)
	if m.Transmissive {
		eta = m.IOR
	}
	b.Reset(it.Shading, it.Normal, eta)
	albedo := m.SampleAlbedo(it)
	white := lin.V3{X: 1, Y: 1, Z: 1}

	switch {
	case m.Mirror:
		b.Add(arena.SpecularReflect(albedo, FresnelNone{}))

	case m.Transmissive:
		fres := FresnelDielectric{EtaOut: 1, EtaIn: m.IOR}
		if m.smooth {
			b.Add(arena.SpecularReflect(white, fres))
			b.Add(arena.SpecularTransmit(albedo, 1, m.IOR))
		} else {
			dist := TrowbridgeReitz{Alpha: m.alpha}
			b.Add(arena.GlossyReflect(white, dist, fres))
			b.Add(arena.GlossyTransmit(albedo, dist, 1, m.IOR))
		}

	default:
		b.Add(arena.Lambert(albedo))
		if m.Specular > 0 {
			dist := TrowbridgeReitz{Alpha: m.alpha}
			coat := white.Scale(m.Specular)
			fres := FresnelDielectric{EtaOut: 1, EtaIn: m.IOR}
			b.Add(arena.GlossyReflect(coat, dist, fres))
		}
	}
	it.BSDF = b
}
