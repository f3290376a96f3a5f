// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// scene.go holds the prepared scene: the compact immutable form of
// the scene graph that rendering reads from many workers at once.

import (
	"sync/atomic"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// Scene is the immutable prepared scene. Built once by Prepare and
// read concurrently: every mutating method touches only atomic
// counters.
type Scene struct {
	Tris      []trace.Triangle
	Spheres   []trace.Sphere
	Materials []*shade.Material
	Camera    Camera

	Ambients []*AmbientLight // environments, evaluated on escape.
	Lights   []Light         // all lights including the ambients.

	bvh       *trace.BVH
	bounds    trace.AABB
	radius    float32
	lightPick lightDistribution

	// statistical counters, relaxed atomics.
	traceCount   atomic.Uint64
	occludeCount atomic.Uint64
	nanCount     atomic.Uint64
}

// Bounds returns the world bounds of the scene geometry.
func (s *Scene) Bounds() trace.AABB { return s.bounds }

// Radius returns the bounding radius used to scale unbounded lights.
func (s *Scene) Radius() float32 { return s.radius }

// Trace finds the nearest hit for the query, counting the probe.
func (s *Scene) Trace(q *trace.Query) {
	s.traceCount.Add(1)
	s.bvh.Trace(q)
}

// Occlude reports whether the query's ray is blocked within its
// bound, counting the probe.
func (s *Scene) Occlude(q *trace.Query) bool {
	s.occludeCount.Add(1)
	return s.bvh.Occlude(q)
}

// TraceCost returns the hierarchy work metric for a ray.
func (s *Scene) TraceCost(r *trace.Ray) int { return s.bvh.TraceCost(r) }

// TraceCount returns the number of trace queries so far.
func (s *Scene) TraceCount() uint64 { return s.traceCount.Load() }

// OccludeCount returns the number of occlusion queries so far.
func (s *Scene) OccludeCount() uint64 { return s.occludeCount.Load() }

// NanCount returns how many non finite radiance samples were
// clamped to black.
func (s *Scene) NanCount() uint64 { return s.nanCount.Load() }

// countNan increments the clamp counter.
func (s *Scene) countNan() { s.nanCount.Add(1) }

// SampleLight picks a light in proportion to power. The returned pdf
// is the pick probability; zero means the scene has no lights.
func (s *Scene) SampleLight(u float32) (Light, float32) {
	i, pdf := s.lightPick.pick(u)
	if pdf <= 0 {
		return nil, 0
	}
	return s.Lights[i], pdf
}

// AmbientRadiance returns the summed environment radiance arriving
// from dir, for paths that left the scene.
func (s *Scene) AmbientRadiance(dir lin.V3) lin.V3 {
	sum := lin.V3{}
	for _, a := range s.Ambients {
		sum = sum.Add(a.Evaluate(dir))
	}
	return sum
}

// AmbientPDF returns the combined solid angle density of next event
// estimation producing dir: the pick probability of each ambient
// light times its directional pdf. Used to weight escaped paths.
func (s *Scene) AmbientPDF(dir lin.V3) float32 {
	pdf := float32(0)
	for i, l := range s.Lights {
		if a, ok := l.(*AmbientLight); ok {
			pdf += s.lightPick.pdf(i) * a.PDF(lin.V3{}, dir)
		}
	}
	return pdf
}

// Interact expands a successful trace query into the surface
// interaction shading needs: hit point, normals with normal mapping
// applied, texture coordinate and material.
func (s *Scene) Interact(q *trace.Query) shade.Interaction {
	it := shade.Interaction{
		Point:    q.Ray.At(q.Distance),
		Outgoing: q.Ray.Dir.V3().Neg(),
		Distance: q.Distance,
		Token:    q.Token,
	}
	switch q.Token.Kind() {
	case trace.KindTriangle:
		tri := &s.Tris[q.Token.Index()]
		it.Normal = tri.Normal
		it.Shading = tri.NormalAt(q.U, q.V)
		it.Texcoord = tri.TexcoordAt(q.U, q.V)
		it.Material = s.Materials[tri.Material]
	case trace.KindSphere:
		sph := &s.Spheres[q.Token.Index()]
		it.Normal = sph.NormalAt(it.Point)
		it.Shading = it.Normal
		it.Texcoord = lin.V2{X: q.U, Y: q.V}
		it.Material = s.Materials[sph.Material]
	}
	it.Material.ApplyNormalMap(it.Texcoord, &it.Shading)
	// a mapped normal must stay on the outgoing side of the surface.
	if it.Shading.Dot(it.Normal) < 0 {
		it.Shading = it.Normal
	}
	return it
}

// AreaLightFor returns the area light attached to a primitive token,
// or nil when the primitive does not emit.
func (s *Scene) AreaLightFor(token trace.Token) *AreaLight {
	for _, l := range s.Lights {
		if a, ok := l.(*AreaLight); ok && a.Token == token {
			return a
		}
	}
	return nil
}
