// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

// bsdf.go holds the per hit container that sums BxDF lobes. The
// container translates between world and shading space and decides
// reflect versus transmit with the geometric normal so that shading
// normals cannot leak light through the surface.

import "github.com/gazed/lux/math/lin"

// BSDF is the full scattering behaviour at one surface interaction:
// a shading frame plus a small set of lobes. BSDFs live in an Arena
// and are valid only until its next Reset.
type BSDF struct {
	frame   Frame   // local frame built from the shading normal.
	geoNorm lin.V3  // geometric normal for side decisions.
	eta     float32 // relative index over the boundary, 1 if opaque.
	lobes   []BxDF  // reused backing store across resets.
}

// Reset clears the lobes and installs the frames for a new hit.
// eta is the relative refractive index over the boundary, 1 for
// opaque surfaces.
func (b *BSDF) Reset(shadingNormal, geometricNormal lin.V3, eta float32) {
	b.frame = NewFrame(shadingNormal)
	b.geoNorm = geometricNormal
	b.eta = eta
	b.lobes = b.lobes[:0]
}

// clear readies a recycled container before Reset installs frames.
func (b *BSDF) clear() {
	b.lobes = b.lobes[:0]
	b.eta = 1
}

// Add appends a lobe. Lobes are evaluated in insertion order; order
// has no effect on results.
func (b *BSDF) Add(lobe BxDF) { b.lobes = append(b.lobes, lobe) }

// Count returns the number of lobes matching the mask.
func (b *BSDF) Count(mask FunctionType) int {
	n := 0
	for _, l := range b.lobes {
		if mask.Has(l.Type()) {
			n++
		}
	}
	return n
}

// Eta returns the relative refractive index installed at Reset.
func (b *BSDF) Eta() float32 { return b.eta }

// sideMask restricts the mask to reflection or transmission based on
// which sides of the *geometric* surface the two world directions
// are on. Using the shading normal here leaks light through bumps.
func (b *BSDF) sideMask(woW, wiW lin.V3, mask FunctionType) FunctionType {
	if woW.Dot(b.geoNorm)*wiW.Dot(b.geoNorm) > 0 {
		return mask &^ Transmissive
	}
	return mask &^ Reflective
}

// Evaluate sums the matching lobe values for a world space direction
// pair, without the cosine factor.
func (b *BSDF) Evaluate(woW, wiW lin.V3, mask FunctionType) lin.V3 {
	wo, wi := b.frame.ToLocal(woW), b.frame.ToLocal(wiW)
	if wo.Z == 0 {
		return lin.V3{}
	}
	mask = b.sideMask(woW, wiW, mask)
	sum := lin.V3{}
	for _, l := range b.lobes {
		if mask.Has(l.Type()) {
			sum = sum.Add(l.Evaluate(wo, wi))
		}
	}
	return sum
}

// PDF returns the mean density over the matching lobes for a world
// space direction pair, matching how Sample picks a lobe uniformly.
func (b *BSDF) PDF(woW, wiW lin.V3, mask FunctionType) float32 {
	wo, wi := b.frame.ToLocal(woW), b.frame.ToLocal(wiW)
	if wo.Z == 0 {
		return 0
	}
	sum := float32(0)
	n := 0
	for _, l := range b.lobes {
		if mask.Has(l.Type()) {
			sum += l.PDF(wo, wi)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float32(n)
}

// Sample picks one matching lobe uniformly with u, remaps u to keep
// its stratification, samples the lobe, and folds in the value and
// pdf contributions of the other matching lobes when the chosen lobe
// is not specular. The returned pdf is already averaged over the
// matched count. A zero pdf means no scattering: stop the path.
func (b *BSDF) Sample(woW lin.V3, u, v float32, mask FunctionType) (value lin.V3, wiW lin.V3, pdf float32, sampled FunctionType) {
	matching := b.Count(mask)
	if matching == 0 {
		return lin.V3{}, lin.V3{}, 0, 0
	}
	wo := b.frame.ToLocal(woW)
	if wo.Z == 0 {
		return lin.V3{}, lin.V3{}, 0, 0
	}

	// uniform lobe choice from the integer part, remap the rest.
	choice := int(u * float32(matching))
	if choice == matching {
		choice = matching - 1
	}
	u = u*float32(matching) - float32(choice)

	var chosen BxDF
	for _, l := range b.lobes {
		if !mask.Has(l.Type()) {
			continue
		}
		if choice == 0 {
			chosen = l
			break
		}
		choice--
	}

	value, wi, pdf := chosen.Sample(wo, u, v)
	if pdf == 0 {
		return lin.V3{}, lin.V3{}, 0, chosen.Type()
	}
	wiW = b.frame.ToWorld(wi)
	sampled = chosen.Type()

	if matching > 1 && !sampled.HasAny(Specular) {
		// fold in the other lobes that can see this direction.
		side := b.sideMask(woW, wiW, mask)
		for _, l := range b.lobes {
			if l == chosen || !mask.Has(l.Type()) {
				continue
			}
			pdf += l.PDF(wo, wi)
			if side.Has(l.Type()) {
				value = value.Add(l.Evaluate(wo, wi))
			}
		}
	}
	pdf /= float32(matching)
	return value, wiW, pdf, sampled
}
