// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// model.go provides the content attached to scene entities: the
// camera, lights, and the shapes that produce prepared primitives.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/render"
	"github.com/gazed/lux/trace"
)

// Camera is a perspective camera definition. Its position and
// orientation come from the entity it is attached to.
type Camera struct {
	FOV float32 // vertical field of view in degrees.
}

// Light definition kinds.
const (
	// PointLight radiates from the entity position.
	PointLight = iota
	// DirectionalLight radiates along the entity's +Z axis from
	// infinitely far away.
	DirectionalLight
)

// Light is a delta light definition. Its placement comes from the
// entity it is attached to.
type Light struct {
	Kind      int     // PointLight or DirectionalLight.
	Color     lin.V3  // linear RGB, each channel 0 to 1.
	Intensity float32 // scales the color into radiometric units.
}

// NewLight returns a white light of the given kind with intensity 1.
func NewLight(kind int) *Light {
	return &Light{Kind: kind, Color: lin.V3{X: 1, Y: 1, Z: 1}, Intensity: 1}
}

// SetColor sets the light color. The updated light is returned.
func (l *Light) SetColor(r, g, b float32) *Light {
	l.Color = lin.V3{X: r, Y: g, Z: b}
	return l
}

// SetIntensity scales the light. The updated light is returned.
func (l *Light) SetIntensity(i float32) *Light {
	l.Intensity = i
	return l
}

// render presses the definition into a sampled light.
func (l *Light) render(world lin.T) render.Light {
	c := l.Color.Scale(l.Intensity)
	switch l.Kind {
	case DirectionalLight:
		return &render.DirectionalLight{Dir: world.Rot.App(lin.V3{Z: 1}).Unit(), Radiance: c}
	default:
		return &render.PointLight{Pos: world.Loc, Intensity: c}
	}
}

// Light
// =============================================================================
// Mesh

// Mesh is indexed triangle geometry. Normals and texture coordinates
// are optional; missing normals use the face normal.
type Mesh struct {
	Verts   []lin.V3 // vertex positions.
	Normals []lin.V3 // optional per vertex normals, len 0 or len(Verts).
	UVs     []lin.V2 // optional texture coordinates, len 0 or len(Verts).
	Indices []uint32 // triangle list, length a multiple of 3.
}

// Mesh
// =============================================================================
// shapes

// shape produces world space prepared primitives for an entity.
type shape interface {
	triangles(world lin.T, press render.MaterialPress) []trace.Triangle
	spheres(world lin.T, press render.MaterialPress) []trace.Sphere
}

// sphereShape is a sphere of the given radius at the entity origin.
// Sphere primitives stay spheres under scaling, so only the X axis
// scale applies.
type sphereShape struct {
	radius float32
	mat    *Material
}

func (s *sphereShape) triangles(world lin.T, press render.MaterialPress) []trace.Triangle {
	return nil
}

func (s *sphereShape) spheres(world lin.T, press render.MaterialPress) []trace.Sphere {
	return []trace.Sphere{trace.NewSphere(world.Loc, s.radius*world.Scl.X, press(s.mat))}
}

// quadShape is a w by h rectangle facing +Z, pressed to two
// triangles with texture coordinates spanning the quad.
type quadShape struct {
	w, h float32
	mat  *Material
}

func (s *quadShape) triangles(world lin.T, press render.MaterialPress) []trace.Triangle {
	hw, hh := s.w*0.5, s.h*0.5
	idx := press(s.mat)
	p00 := world.AppPoint(lin.V3{X: -hw, Y: -hh})
	p10 := world.AppPoint(lin.V3{X: hw, Y: -hh})
	p11 := world.AppPoint(lin.V3{X: hw, Y: hh})
	p01 := world.AppPoint(lin.V3{X: -hw, Y: hh})

	a := trace.NewTriangle(p00, p10, p11, idx)
	a.SetTexcoords(lin.V2{}, lin.V2{X: 1}, lin.V2{X: 1, Y: 1})
	b := trace.NewTriangle(p00, p11, p01, idx)
	b.SetTexcoords(lin.V2{}, lin.V2{X: 1, Y: 1}, lin.V2{Y: 1})
	return []trace.Triangle{a, b}
}

func (s *quadShape) spheres(world lin.T, press render.MaterialPress) []trace.Sphere {
	return nil
}

// meshShape presses an indexed mesh into world space triangles.
type meshShape struct {
	mesh *Mesh
	mat  *Material
}

func (s *meshShape) triangles(world lin.T, press render.MaterialPress) []trace.Triangle {
	m := s.mesh
	idx := press(s.mat)
	out := make([]trace.Triangle, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		t := trace.NewTriangle(
			world.AppPoint(m.Verts[i0]),
			world.AppPoint(m.Verts[i1]),
			world.AppPoint(m.Verts[i2]), idx)
		if len(m.Normals) == len(m.Verts) {
			t.SetNormals(
				world.AppNorm(m.Normals[i0]),
				world.AppNorm(m.Normals[i1]),
				world.AppNorm(m.Normals[i2]))
		}
		if len(m.UVs) == len(m.Verts) {
			t.SetTexcoords(m.UVs[i0], m.UVs[i1], m.UVs[i2])
		}
		out = append(out, t)
	}
	return out
}

func (s *meshShape) spheres(world lin.T, press render.MaterialPress) []trace.Sphere {
	return nil
}
