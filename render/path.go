// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// path.go holds the path tracing evaluator: unidirectional path
// tracing with next event estimation against the light distribution
// and power heuristic multiple importance sampling between the light
// and BSDF strategies.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// Evaluator estimates the radiance arriving along a primary ray.
// Implementations must be safe for concurrent use: all per ray
// scratch lives in the caller's source, arena and query.
type Evaluator interface {
	Evaluate(s *Scene, ray trace.Ray, src *sample.Source, arena *shade.Arena, q *trace.Query) lin.V4
}

// PathEvaluator is the main light transport integrator.
type PathEvaluator struct {
	// BounceLimit caps the path length.
	BounceLimit int
	// EnergyEpsilon stops paths whose throughput cannot contribute
	// a visible amount.
	EnergyEpsilon float32
	// RouletteStart is the bounce Russian roulette begins at.
	RouletteStart int
}

// NewPathEvaluator returns an evaluator with the default limits.
func NewPathEvaluator() *PathEvaluator {
	return &PathEvaluator{BounceLimit: 8, EnergyEpsilon: 1e-3, RouletteStart: 4}
}

// Evaluate traces one complete light path, returning linear radiance
// with alpha one. Non finite results are clamped to black and
// counted on the scene.
func (e *PathEvaluator) Evaluate(s *Scene, ray trace.Ray, src *sample.Source, arena *shade.Arena, q *trace.Query) lin.V4 {
	arena.Reset()
	energy := lin.V3{X: 1, Y: 1, Z: 1}
	radiance := lin.V3{}
	specular := true // the camera counts as a specular bounce.
	prevPdf := float32(0)
	ignore := trace.TokenNone

	for bounce := 0; bounce < e.BounceLimit; bounce++ {
		q.Reset(ray, lin.Inf, ignore)
		s.Trace(q)
		if !q.Hit() {
			// escaped: the ambient environment lights the path. Next
			// event estimation also samples it, so weight by MIS
			// unless this direction came from a delta lobe.
			if len(s.Ambients) > 0 {
				dir := ray.Dir.V3()
				weight := float32(1)
				if !specular {
					weight = sample.PowerHeuristic(1, prevPdf, 1, s.AmbientPDF(dir))
				}
				radiance = radiance.Add(energy.Mul(s.AmbientRadiance(dir)).Scale(weight))
			}
			break
		}

		it := s.Interact(q)
		hitToken := q.Token
		it.Material.Scatter(&it, arena)

		// emission counts only when next event estimation could not
		// have reached this surface: the first hit or a delta bounce.
		if it.Material.Emissive() && specular && it.FrontFace() {
			radiance = radiance.Add(energy.Mul(it.Material.Emission))
		}

		// next event estimation toward one power sampled light.
		if it.BSDF.Count(shade.NonSpecular) > 0 {
			radiance = radiance.Add(energy.Mul(e.directLight(s, &it, src, q)))
		}

		// continue the path along a BSDF sample.
		value, wi, pdf, sampled := it.BSDF.Sample(it.Outgoing, src.Float(), src.Float(), shade.AllTypes)
		if pdf <= 0 || value.IsZero() {
			break
		}
		cos := lin.Abs(wi.Dot(it.Shading))
		energy = energy.Mul(value.Scale(cos / pdf))
		specular = sampled.HasAny(shade.Specular)
		prevPdf = pdf

		// terminate paths that can no longer contribute.
		peak := energy.MaxComp()
		if peak <= e.EnergyEpsilon {
			break
		}
		if bounce >= e.RouletteStart {
			survive := lin.Min(1, peak)
			if src.Float() >= survive {
				break
			}
			energy = energy.Scale(1 / survive)
		}

		ray = it.Spawn(wi)
		ignore = hitToken
	}

	if !radiance.IsFinite() {
		s.countNan()
		radiance = lin.V3{}
	}
	return radiance.V4(1)
}

// directLight estimates the direct contribution at an interaction by
// sampling one light from the power distribution, testing occlusion,
// and weighting with the power heuristic against the BSDF strategy.
func (e *PathEvaluator) directLight(s *Scene, it *shade.Interaction, src *sample.Source, q *trace.Query) lin.V3 {
	light, pickPdf := s.SampleLight(src.Float())
	if light == nil {
		return lin.V3{}
	}
	emitted, dir, travel, lightPdf := light.Sample(it.Point, src.Float(), src.Float())
	if lightPdf <= 0 || emitted.IsZero() {
		return lin.V3{}
	}
	f := it.BSDF.Evaluate(it.Outgoing, dir, shade.NonSpecular)
	if f.IsZero() {
		return lin.V3{}
	}
	cos := lin.Abs(dir.Dot(it.Shading))

	// shadow probe: reuse the caller's query, the hit is consumed.
	q.Reset(it.Spawn(dir), travel-2*trace.ShiftEpsilon, it.Token)
	if s.Occlude(q) {
		return lin.V3{}
	}

	pdf := lightPdf * pickPdf
	weight := float32(1)
	if !light.Delta() {
		// the competing strategy samples over every lobe, so its
		// density here is the all-lobe mean: delta lobes contribute
		// zero continuous density.
		weight = sample.PowerHeuristic(1, pdf, 1, it.BSDF.PDF(it.Outgoing, dir, shade.AllTypes))
	}
	return emitted.Mul(f).Scale(cos * weight / pdf)
}
