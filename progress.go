// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// progress.go exposes the rendering statistics applications poll
// for progress bars and diagnostics. Counters are relaxed atomics:
// statistical, not consistency critical.

import "sync/atomic"

// Progress is a point in time snapshot of a render.
type Progress struct {
	State State // engine state when the snapshot was taken.

	Pixels      uint64 // pixels fully sampled so far.
	TotalPixels uint64 // pixels in the render buffer.
	Samples     uint64 // pixel samples taken so far.
	Tiles       uint64 // tiles completed so far.
	TotalTiles  uint64 // tiles the render is divided into.

	Traces   uint64 // trace queries issued by evaluators.
	Occludes uint64 // occlusion queries issued by evaluators.
	NanClamp uint64 // non finite radiance samples clamped to black.
}

// Fraction returns completion in 0..1 by pixels.
func (p Progress) Fraction() float64 {
	if p.TotalPixels == 0 {
		return 0
	}
	return float64(p.Pixels) / float64(p.TotalPixels)
}

// counters is the engine's writable side of Progress.
type counters struct {
	pixels  atomic.Uint64
	samples atomic.Uint64
	tiles   atomic.Uint64
}

func (c *counters) reset() {
	c.pixels.Store(0)
	c.samples.Store(0)
	c.tiles.Store(0)
}
