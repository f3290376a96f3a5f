// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// albedo.go holds the diagnostic evaluators: flat albedo for
// denoiser feature buffers and hierarchy cost for judging the
// quality of the acceleration structure.

import (
	"sync/atomic"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// AlbedoEvaluator returns the base color of the first opaque surface
// a ray sees, looking through pass through surfaces such as smooth
// glass. Escaped rays return the ambient radiance.
type AlbedoEvaluator struct {
	// Limit caps how many pass through surfaces a ray crosses.
	Limit int
}

// NewAlbedoEvaluator returns an albedo evaluator.
func NewAlbedoEvaluator() *AlbedoEvaluator { return &AlbedoEvaluator{Limit: 8} }

// Evaluate returns the first real albedo along the ray.
func (e *AlbedoEvaluator) Evaluate(s *Scene, ray trace.Ray, src *sample.Source, arena *shade.Arena, q *trace.Query) lin.V4 {
	arena.Reset()
	ignore := trace.TokenNone
	for i := 0; i < e.Limit; i++ {
		q.Reset(ray, lin.Inf, ignore)
		s.Trace(q)
		if !q.Hit() {
			return s.AmbientRadiance(ray.Dir.V3()).V4(1)
		}
		it := s.Interact(q)
		if !it.Material.PassThrough() {
			return it.Material.SampleAlbedo(&it).V4(1)
		}
		// glass: continue straight through.
		ignore = q.Token
		ray = it.Spawn(ray.Dir.V3())
	}
	return lin.V4{W: 1}
}

// AlbedoEvaluator
// =============================================================================
// CostEvaluator

// CostEvaluator visualizes the hierarchy work per ray and tracks the
// running totals across all rays it has seen.
type CostEvaluator struct {
	cost    atomic.Uint64
	samples atomic.Uint64
}

// NewCostEvaluator returns a cost evaluator with zeroed totals.
func NewCostEvaluator() *CostEvaluator { return &CostEvaluator{} }

// Evaluate returns the per ray cost in X with the cumulative cost
// and cumulative sample count in Y and Z.
func (e *CostEvaluator) Evaluate(s *Scene, ray trace.Ray, src *sample.Source, arena *shade.Arena, q *trace.Query) lin.V4 {
	cost := s.TraceCost(&ray)
	total := e.cost.Add(uint64(cost))
	n := e.samples.Add(1)
	return lin.V4{X: float32(cost), Y: float32(total), Z: float32(n), W: 1}
}

// Totals returns the cumulative cost and sample count.
func (e *CostEvaluator) Totals() (cost, samples uint64) {
	return e.cost.Load(), e.samples.Load()
}
