// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// profile.go reduces the render configuration API footprint using
// functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import (
	"fmt"
	"runtime"

	"github.com/gazed/lux/render"
)

// Render passes selecting the evaluator a render runs.
const (
	// PassPath is the full path tracing integrator.
	PassPath = iota
	// PassAlbedo renders flat base colors.
	PassAlbedo
	// PassCost visualizes hierarchy traversal cost.
	PassCost
)

// Profile contains the render settings assembled from options before
// a render begins.
type Profile struct {
	workers       int     // worker threads.
	bounceLimit   int     // path length cap.
	energyEps     float32 // throughput floor before termination.
	rouletteStart int     // bounce Russian roulette begins at.

	tileSize        int     // pixels per tile edge.
	baseSamples     int     // samples every pixel takes.
	adaptiveSamples int     // per pixel sample ceiling for noisy pixels.
	noiseThreshold  float32 // relative confidence target.
	seed            uint32  // reproducibility seed.

	pass      int              // PassPath, PassAlbedo or PassCost.
	evaluator render.Evaluator // custom override, usually nil.

	fragmentScale   float32 // oversized triangle threshold.
	fragmentMaxIter int     // subdivision cap.
}

// profileDefaults provides reasonable defaults so a render runs even
// if no options are set.
func profileDefaults() Profile {
	return Profile{
		workers:         runtime.NumCPU(),
		bounceLimit:     8,
		energyEps:       1e-3,
		rouletteStart:   4,
		tileSize:        32,
		baseSamples:     16,
		adaptiveSamples: 64,
		noiseThreshold:  0.05,
		seed:            0,
		pass:            PassPath,
		fragmentScale:   4.8,
		fragmentMaxIter: 3,
	}
}

// validate rejects settings the scheduler cannot run with.
func (p *Profile) validate() error {
	if p.workers <= 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidProfile, p.workers)
	}
	if p.bounceLimit < 0 {
		return fmt.Errorf("%w: bounce limit %d", ErrInvalidProfile, p.bounceLimit)
	}
	if p.energyEps < 0 {
		return fmt.Errorf("%w: energy epsilon %f", ErrInvalidProfile, p.energyEps)
	}
	if p.tileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidProfile, p.tileSize)
	}
	if p.baseSamples <= 0 || p.adaptiveSamples < p.baseSamples {
		return fmt.Errorf("%w: samples %d..%d", ErrInvalidProfile, p.baseSamples, p.adaptiveSamples)
	}
	if p.fragmentScale <= 0 || p.fragmentMaxIter < 0 || p.fragmentMaxIter > 10 {
		return fmt.Errorf("%w: fragmentation %f/%d", ErrInvalidProfile, p.fragmentScale, p.fragmentMaxIter)
	}
	return nil
}

// Option overrides one profile setting.
//
//	err := eng.Begin(
//	   lux.Workers(8),
//	   lux.Samples(16, 256),
//	   lux.BounceLimit(6),
//	)
type Option func(*Profile)

// Workers sets the number of worker threads. The default is one per
// logical CPU.
func Workers(n int) Option {
	return func(p *Profile) { p.workers = n }
}

// BounceLimit caps the path length.
func BounceLimit(n int) Option {
	return func(p *Profile) { p.bounceLimit = n }
}

// EnergyEpsilon sets the throughput floor below which paths stop.
func EnergyEpsilon(eps float32) Option {
	return func(p *Profile) { p.energyEps = eps }
}

// RouletteStart sets the bounce Russian roulette termination
// begins at.
func RouletteStart(bounce int) Option {
	return func(p *Profile) { p.rouletteStart = bounce }
}

// TileSize sets the pixel edge of scheduler tiles.
func TileSize(n int) Option {
	return func(p *Profile) { p.tileSize = n }
}

// Samples sets the guaranteed samples per pixel and the adaptive
// ceiling noisy pixels may use.
func Samples(base, adaptive int) Option {
	return func(p *Profile) { p.baseSamples, p.adaptiveSamples = base, adaptive }
}

// NoiseThreshold sets the relative confidence interval width at
// which adaptive sampling stops early.
func NoiseThreshold(t float32) Option {
	return func(p *Profile) { p.noiseThreshold = t }
}

// Seed makes renders reproducible: equal seeds and settings produce
// bit identical images.
func Seed(seed uint32) Option {
	return func(p *Profile) { p.seed = seed }
}

// Pass selects the evaluator kind: PassPath, PassAlbedo, PassCost.
func Pass(pass int) Option {
	return func(p *Profile) { p.pass = pass }
}

// EvaluateWith installs a custom evaluator, overriding Pass.
func EvaluateWith(e render.Evaluator) Option {
	return func(p *Profile) { p.evaluator = e }
}

// Fragmentation tunes oversized triangle subdivision during scene
// preparation: triangles larger than scale times the mean area split
// up to maxIter times.
func Fragmentation(scale float32, maxIter int) Option {
	return func(p *Profile) { p.fragmentScale, p.fragmentMaxIter = scale, maxIter }
}
