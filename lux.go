// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lux is an offline, physically based path tracing renderer.
// Lux presses a scene description into compact immutable data, then
// integrates the light transport equation with Monte Carlo sampling
// across a pool of worker threads, producing a floating point image.
// The pieces fit together as:
//   - Scenes group entities: a camera, lights, and shapes with
//     materials, positioned by transforms.
//   - An Engine prepares the scene once and renders it into a
//     RenderBuffer under a configurable render Profile.
//   - Progress is observable while rendering, and a render can be
//     paused, resumed or aborted at any time.
//
// Lux subpackages hold the machinery:
//   - math/lin: vectors, versors and transforms.     See lux/math/lin.
//   - sample:   random numbers and distributions.    See lux/sample.
//   - trace:    primitives and the ray hierarchy.    See lux/trace.
//   - shade:    materials, BSDF lobes and arenas.    See lux/shade.
//   - render:   scene pressing and the evaluators.   See lux/render.
//   - load:     scene, mesh, texture and image IO.   See lux/load.
//
// Refer to the lux/eg examples package for working code samples.
package lux

import (
	"errors"

	"github.com/gazed/lux/render"
	"github.com/gazed/lux/shade"
)

// Error kinds surfaced by the engine. Wrapped errors carry detail;
// test with errors.Is.
var (
	// ErrInvalidScene flags scenes that cannot be prepared: no
	// camera, non positive scales, non finite geometry, non unit
	// rotations.
	ErrInvalidScene = render.ErrInvalidScene

	// ErrInvalidBuffer flags missing or zero sized render buffers.
	ErrInvalidBuffer = errors.New("invalid render buffer")

	// ErrInvalidState flags operations that are not legal in the
	// engine's current state, like Begin while rendering.
	ErrInvalidState = errors.New("invalid engine state")

	// ErrInvalidProfile flags render profiles with out of range
	// values, like a non positive worker count.
	ErrInvalidProfile = errors.New("invalid render profile")
)

// Material is the surface shading description attached to shapes.
// Set the public fields, the engine presses and prepares it during
// scene preparation. Materials may be shared between shapes; shared
// materials press once.
type Material = shade.Material

// Texture is the sampling capability materials consume.
type Texture = shade.Texture

// Environment is the directional texture capability ambient light
// consumes.
type Environment = shade.Environment
