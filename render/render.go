// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render turns a scene graph into the immutable prepared
// scene the evaluators consume: flattened world space primitives, a
// bounding volume hierarchy, pressed materials, gathered lights and
// a power distribution for picking them. The evaluators themselves,
// path tracing, albedo and hierarchy cost, live here too.
//
// Package render is provided as part of the lux ray tracing engine.
package render

import (
	"errors"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// ErrInvalidScene flags scenes that cannot be prepared: no camera,
// non positive scales, non finite geometry, non unit rotations.
// Wrapped errors carry detail; test with errors.Is.
var ErrInvalidScene = errors.New("invalid scene")

// Node is one entity of the source scene graph hierarchy.
// Implementations expose their children and local transform; the
// preparer composes world transforms while walking. Nodes that are
// also a Renderable, CameraNode, LightNode or AmbientNode contribute
// content.
type Node interface {
	// Nodes returns the child entities.
	Nodes() []Node
	// Transform returns the node's local position, rotation, scale.
	Transform() lin.T
}

// MaterialPress maps a pressed material to its index in the prepared
// scene, registering it on first use.
type MaterialPress func(*shade.Material) uint32

// Renderable is a node that produces geometry. The world transform
// is the composed transform of the node; produced primitives are in
// world space.
type Renderable interface {
	// ExtractTriangles returns the node's triangles in world space.
	ExtractTriangles(world lin.T, press MaterialPress) []trace.Triangle
	// ExtractSpheres returns the node's spheres in world space.
	ExtractSpheres(world lin.T, press MaterialPress) []trace.Sphere
}

// CameraNode is a node that carries the camera. The first one found
// wins; duplicates are logged and ignored.
type CameraNode interface {
	// RenderCamera returns the pressed camera for the node's world
	// transform.
	RenderCamera(world lin.T) Camera
}

// LightNode is a node that carries a delta light.
type LightNode interface {
	// RenderLight returns the light positioned by the node's world
	// transform.
	RenderLight(world lin.T) Light
}

// AmbientNode is a node that carries an environment light.
type AmbientNode interface {
	// RenderAmbient returns the environment. Prepare calls its
	// Prepare before sampling.
	RenderAmbient() shade.Environment
}

// registry assigns monotonically increasing indices to pressed
// materials as geometry producers reference them.
type registry struct {
	materials []*shade.Material
	index     map[*shade.Material]uint32
}

func newRegistry() *registry {
	return &registry{index: map[*shade.Material]uint32{}}
}

// press returns the index for a material, registering and preparing
// it on first use.
func (r *registry) press(m *shade.Material) uint32 {
	if i, ok := r.index[m]; ok {
		return i
	}
	i := uint32(len(r.materials))
	m.Prepare()
	r.materials = append(r.materials, m)
	r.index[m] = i
	return i
}
