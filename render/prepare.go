// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// prepare.go presses a mutable scene graph into the immutable
// prepared scene: flatten transforms, extract primitives, fragment
// oversized triangles, gather lights, build the hierarchy and the
// light power distribution.

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/trace"
)

// Config tunes scene preparation.
type Config struct {
	// FragmentScale marks triangles larger than this multiple of the
	// mean triangle area for subdivision.
	FragmentScale float32
	// FragmentMaxIter caps the subdivision levels per triangle.
	FragmentMaxIter int
}

// DefaultConfig returns the preparation defaults.
func DefaultConfig() Config {
	return Config{FragmentScale: 4.8, FragmentMaxIter: 3}
}

// Prepare walks the scene graph and builds the prepared scene.
// Fails fast on the first invalid input: missing camera, non
// positive scale, non unit rotation, or non finite geometry.
func Prepare(root Node, cfg Config) (*Scene, error) {
	if cfg.FragmentScale <= 0 {
		cfg.FragmentScale = 4.8
	}
	if cfg.FragmentMaxIter < 0 || cfg.FragmentMaxIter > 10 {
		return nil, fmt.Errorf("%w: fragmentation iterations %d out of range", ErrInvalidScene, cfg.FragmentMaxIter)
	}

	s := &Scene{}
	reg := newRegistry()
	haveCamera := false

	var walk func(n Node, parent lin.T) error
	walk = func(n Node, parent lin.T) error {
		local := n.Transform()
		if local.Scl.X <= 0 || local.Scl.Y <= 0 || local.Scl.Z <= 0 {
			return fmt.Errorf("%w: non positive scale %v", ErrInvalidScene, local.Scl)
		}
		if !local.Rot.IsUnit() {
			return fmt.Errorf("%w: non unit rotation %v", ErrInvalidScene, local.Rot)
		}
		world := parent.Mul(local)

		if c, ok := n.(CameraNode); ok {
			if haveCamera {
				slog.Warn("scene has multiple cameras, first wins")
			} else {
				s.Camera = c.RenderCamera(world)
				haveCamera = true
			}
		}
		if l, ok := n.(LightNode); ok {
			s.Lights = append(s.Lights, l.RenderLight(world))
		}
		if a, ok := n.(AmbientNode); ok {
			env := a.RenderAmbient()
			env.Prepare()
			amb := &AmbientLight{Env: env}
			s.Ambients = append(s.Ambients, amb)
			s.Lights = append(s.Lights, amb)
		}
		if r, ok := n.(Renderable); ok {
			s.Tris = append(s.Tris, r.ExtractTriangles(world, reg.press)...)
			s.Spheres = append(s.Spheres, r.ExtractSpheres(world, reg.press)...)
		}
		for _, child := range n.Nodes() {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root, lin.TI()); err != nil {
		return nil, err
	}
	if !haveCamera {
		return nil, fmt.Errorf("%w: no camera", ErrInvalidScene)
	}
	for i := range s.Tris {
		v0, v1, v2 := s.Tris[i].Vertices()
		if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
			return nil, fmt.Errorf("%w: non finite triangle %d", ErrInvalidScene, i)
		}
	}
	for i := range s.Spheres {
		if !s.Spheres[i].Center.IsFinite() || !lin.IsFinite(s.Spheres[i].Radius) || s.Spheres[i].Radius <= 0 {
			return nil, fmt.Errorf("%w: invalid sphere %d", ErrInvalidScene, i)
		}
	}

	s.Materials = reg.materials
	s.Tris = fragment(s.Tris, cfg)
	s.bvh = trace.NewBVH(s.Tris, s.Spheres)
	s.bounds = s.bvh.Bounds()
	s.radius = boundsRadius(s.bounds)

	gatherAreaLights(s)
	for _, a := range s.Ambients {
		a.Radius = s.radius
	}
	s.lightPick = newLightDistribution(s.Lights, s.radius)
	slog.Debug("scene prepared",
		"triangles", len(s.Tris), "spheres", len(s.Spheres),
		"materials", len(s.Materials), "lights", len(s.Lights),
		"nodes", s.bvh.NodeCount(), "depth", s.bvh.MaxDepth())
	return s, nil
}

// boundsRadius returns the bounding sphere radius of a box, with a
// floor of one so empty scenes still scale ambient power sensibly.
func boundsRadius(b trace.AABB) float32 {
	d := b.Max.Sub(b.Min).V3()
	if d.X < 0 || d.Y < 0 || d.Z < 0 {
		return 1 // empty scene.
	}
	return lin.Max(d.Len()*0.5, 1)
}

// fragment subdivides triangles whose area exceeds scale times the
// mean. A triangle going in returns 4^levels children where levels
// is ceil(log2(area/threshold)) clamped to the configured maximum.
// Long thin geometry otherwise produces hierarchy nodes that overlap
// everything.
func fragment(tris []trace.Triangle, cfg Config) []trace.Triangle {
	if len(tris) == 0 || cfg.FragmentMaxIter == 0 {
		return tris
	}
	mean := float32(0)
	for i := range tris {
		mean += tris[i].Area()
	}
	mean /= float32(len(tris))
	threshold := mean * cfg.FragmentScale
	if threshold <= 0 {
		return tris
	}

	out := make([]trace.Triangle, 0, len(tris))
	fragmented := 0
	for i := range tris {
		area := tris[i].Area()
		if area <= threshold {
			out = append(out, tris[i])
			continue
		}
		levels := int(math.Ceil(math.Log2(float64(area / threshold))))
		if levels > cfg.FragmentMaxIter {
			levels = cfg.FragmentMaxIter
		}
		fragmented++
		out = subdivideInto(out, tris[i], levels)
	}
	if fragmented > 0 {
		slog.Debug("fragmented oversized triangles",
			"triangles", fragmented, "total", len(out))
	}
	return out
}

// subdivideInto appends the 4^levels uniform children of a triangle.
func subdivideInto(out []trace.Triangle, t trace.Triangle, levels int) []trace.Triangle {
	if levels <= 0 {
		return append(out, t)
	}
	for _, child := range t.Subdivide() {
		out = subdivideInto(out, child, levels-1)
	}
	return out
}

// gatherAreaLights attaches an area light to every primitive with an
// emissive material.
func gatherAreaLights(s *Scene) {
	for i := range s.Tris {
		m := s.Materials[s.Tris[i].Material]
		if m.Emissive() {
			l := NewTriangleLight(trace.NewToken(trace.KindTriangle, i), &s.Tris[i], m.Emission)
			s.Lights = append(s.Lights, l)
		}
	}
	for i := range s.Spheres {
		m := s.Materials[s.Spheres[i].Material]
		if m.Emissive() {
			l := NewSphereLight(trace.NewToken(trace.KindSphere, i), &s.Spheres[i], m.Emission)
			s.Lights = append(s.Lights, l)
		}
	}
}
