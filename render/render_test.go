// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// Test scaffolding: minimal scene graph nodes and environments with
// known analytic answers. Each node type implements only the content
// interface it carries, the way real scene entities do.

import (
	"errors"
	"testing"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// baseNode is a plain hierarchy node.
type baseNode struct {
	t        lin.T
	children []Node
}

func newBase() *baseNode { return &baseNode{t: lin.TI()} }

func (n *baseNode) Nodes() []Node    { return n.children }
func (n *baseNode) Transform() lin.T { return n.t }
func (n *baseNode) add(c Node) Node  { n.children = append(n.children, c); return c }

// cameraNode carries the camera.
type cameraNode struct {
	baseNode
	cam Camera
}

func newCameraNode() *cameraNode {
	return &cameraNode{baseNode: *newBase(), cam: NewCamera()}
}

func (n *cameraNode) RenderCamera(world lin.T) Camera {
	c := n.cam
	c.Loc = world.Loc
	c.Rot = world.Rot
	return c
}

// lightNode carries a delta light.
type lightNode struct {
	baseNode
	light Light
}

func (n *lightNode) RenderLight(world lin.T) Light { return n.light }

// ambientNode carries an environment.
type ambientNode struct {
	baseNode
	env shade.Environment
}

func (n *ambientNode) RenderAmbient() shade.Environment { return n.env }

// geomNode produces primitives with one material.
type geomNode struct {
	baseNode
	tris    []trace.Triangle
	spheres []trace.Sphere
	mat     *shade.Material
}

func newGeomNode(mat *shade.Material) *geomNode {
	return &geomNode{baseNode: *newBase(), mat: mat}
}

func (n *geomNode) ExtractTriangles(world lin.T, press MaterialPress) []trace.Triangle {
	out := make([]trace.Triangle, 0, len(n.tris))
	for _, t := range n.tris {
		v0, v1, v2 := t.Vertices()
		nt := trace.NewTriangle(world.AppPoint(v0), world.AppPoint(v1), world.AppPoint(v2), press(n.mat))
		nt.SetTexcoords(t.T0, t.T1, t.T2)
		out = append(out, nt)
	}
	return out
}

func (n *geomNode) ExtractSpheres(world lin.T, press MaterialPress) []trace.Sphere {
	out := make([]trace.Sphere, 0, len(n.spheres))
	for _, s := range n.spheres {
		out = append(out, trace.NewSphere(world.AppPoint(s.Center), s.Radius*world.Scl.X, press(n.mat)))
	}
	return out
}

// constEnv is a constant environment sampled uniformly.
type constEnv struct {
	color lin.V3
}

func (e *constEnv) Evaluate(dir lin.V3) lin.V3 { return e.color }
func (e *constEnv) Sample(u, v float32) (lin.V3, lin.V3, float32) {
	return e.color, sample.UniformSphere(u, v), sample.UniformSpherePDF()
}
func (e *constEnv) PDF(dir lin.V3) float32 { return sample.UniformSpherePDF() }
func (e *constEnv) Prepare()               {}
func (e *constEnv) Average() lin.V3        { return e.color }

// gradientEnv varies with direction for mirror reflection tests.
type gradientEnv struct{}

func (e *gradientEnv) Evaluate(dir lin.V3) lin.V3 {
	t := 0.5 * (dir.Y + 1)
	return lin.V3{X: 1 - t, Y: t, Z: 0.25}
}
func (e *gradientEnv) Sample(u, v float32) (lin.V3, lin.V3, float32) {
	dir := sample.UniformSphere(u, v)
	return e.Evaluate(dir), dir, sample.UniformSpherePDF()
}
func (e *gradientEnv) PDF(dir lin.V3) float32 { return sample.UniformSpherePDF() }
func (e *gradientEnv) Prepare()               {}
func (e *gradientEnv) Average() lin.V3        { return lin.V3{X: 0.5, Y: 0.5, Z: 0.25} }

// buildScene prepares a root with a default camera plus whatever the
// builder adds.
func buildScene(t *testing.T, build func(root *baseNode)) *Scene {
	t.Helper()
	root := newBase()
	root.add(newCameraNode())
	build(root)
	s, err := Prepare(root, DefaultConfig())
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	return s
}

func TestPrepareNoCamera(t *testing.T) {
	if _, err := Prepare(newBase(), DefaultConfig()); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("expecting ErrInvalidScene, got %v", err)
	}
}

func TestPrepareBadScale(t *testing.T) {
	root := newBase()
	root.add(newCameraNode())
	bad := newBase()
	bad.t.Scl = lin.V3{X: -1, Y: 1, Z: 1}
	root.add(bad)
	if _, err := Prepare(root, DefaultConfig()); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("expecting ErrInvalidScene for negative scale, got %v", err)
	}
}

func TestPrepareBadRotation(t *testing.T) {
	root := newBase()
	root.add(newCameraNode())
	bad := newBase()
	bad.t.Rot = lin.Q{X: 2, W: 2}
	root.add(bad)
	if _, err := Prepare(root, DefaultConfig()); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("expecting ErrInvalidScene for non unit rotation, got %v", err)
	}
}

func TestPrepareRegistry(t *testing.T) {
	shared := &shade.Material{Albedo: shade.NewConstant(lin.V3{X: 0.5, Y: 0.5, Z: 0.5})}
	s := buildScene(t, func(root *baseNode) {
		for i := 0; i < 3; i++ {
			n := newGeomNode(shared)
			n.spheres = []trace.Sphere{trace.NewSphere(lin.V3{Z: float32(5 + i)}, 0.5, 0)}
			root.add(n)
		}
	})
	if len(s.Materials) != 1 {
		t.Errorf("expecting one pressed material for a shared definition, got %d", len(s.Materials))
	}
	if len(s.Spheres) != 3 {
		t.Errorf("expecting 3 spheres got %d", len(s.Spheres))
	}
}

func TestPrepareTransforms(t *testing.T) {
	mat := &shade.Material{}
	s := buildScene(t, func(root *baseNode) {
		parent := newBase()
		parent.t.Loc = lin.V3{X: 10}
		child := newGeomNode(mat)
		child.t.Loc = lin.V3{Z: 5}
		child.spheres = []trace.Sphere{trace.NewSphere(lin.V3{}, 1, 0)}
		parent.add(child)
		root.add(parent)
	})
	if got := s.Spheres[0].Center; !got.Aeq(lin.V3{X: 10, Z: 5}) {
		t.Errorf("expecting composed world position, got %v", got)
	}
}

func TestPrepareAreaLights(t *testing.T) {
	mat := &shade.Material{Emission: lin.V3{X: 5, Y: 5, Z: 5}}
	s := buildScene(t, func(root *baseNode) {
		n := newGeomNode(mat)
		n.spheres = []trace.Sphere{trace.NewSphere(lin.V3{Z: 5}, 1, 0)}
		root.add(n)
	})
	if len(s.Lights) != 1 {
		t.Fatalf("expecting one gathered area light, got %d", len(s.Lights))
	}
	if _, ok := s.Lights[0].(*AreaLight); !ok {
		t.Fatalf("expecting an area light")
	}
	if s.AreaLightFor(trace.NewToken(trace.KindSphere, 0)) == nil {
		t.Errorf("expecting the light to be attached to the sphere token")
	}
}

func TestFragmentation(t *testing.T) {
	big := trace.NewTriangle(lin.V3{}, lin.V3{X: 20}, lin.V3{Y: 20}, 0)
	small := trace.NewTriangle(lin.V3{}, lin.V3{X: 0.1}, lin.V3{Y: 0.1}, 0)
	tris := []trace.Triangle{big}
	for i := 0; i < 99; i++ {
		tris = append(tris, small)
	}
	out := fragment(tris, DefaultConfig())
	// the big triangle dwarfs the mean and must split the maximum
	// 3 levels into 64 children; the small ones pass through.
	if want := 99 + 64; len(out) != want {
		t.Errorf("expecting %d triangles after fragmentation, got %d", want, len(out))
	}
	sum := float32(0)
	for i := range out {
		sum += out[i].Area()
	}
	want := big.Area() + 99*small.Area()
	if lin.Abs(sum-want) > want*1e-4 {
		t.Errorf("expecting fragmentation to conserve area: %f vs %f", sum, want)
	}
}

func TestCameraSpawn(t *testing.T) {
	cam := NewCamera()
	t.Run("center ray looks forward", func(t *testing.T) {
		r := cam.SpawnRay(8, 8, 0.5, 0.5, 17, 17)
		if !r.Dir.V3().Aeq(lin.V3{Z: 1}) {
			t.Errorf("expecting the center ray along +z, got %v", r.Dir)
		}
	})
	t.Run("top of image looks up", func(t *testing.T) {
		r := cam.SpawnRay(8, 0, 0.5, 0, 16, 16)
		if r.Dir.Y <= 0 {
			t.Errorf("expecting an upward ray, got %v", r.Dir)
		}
	})
	t.Run("rotation turns the view", func(t *testing.T) {
		cam := NewCamera()
		cam.Rot = lin.QAxisAngle(lin.V3{Y: 1}, 90)
		r := cam.SpawnRay(8, 8, 0.5, 0.5, 17, 17)
		if !r.Dir.V3().Aeq(lin.V3{X: 1}) {
			t.Errorf("expecting the rotated center ray along +x, got %v", r.Dir)
		}
	})
}

func TestLightKinds(t *testing.T) {
	t.Run("point falls off squared", func(t *testing.T) {
		l := &PointLight{Pos: lin.V3{Y: 2}, Intensity: lin.V3{X: 8, Y: 8, Z: 8}}
		radiance, dir, travel, pdf := l.Sample(lin.V3{}, 0, 0)
		if pdf != 1 || !lin.Aeq(travel, 2) {
			t.Fatalf("expecting pdf 1 travel 2, got %f %f", pdf, travel)
		}
		if !dir.Aeq(lin.V3{Y: 1}) {
			t.Errorf("expecting the direction toward the light")
		}
		if !lin.Aeq(radiance.X, 2) {
			t.Errorf("expecting 8/4 falloff, got %v", radiance)
		}
		if !l.Delta() || l.PDF(lin.V3{}, dir) != 0 {
			t.Errorf("expecting a delta light")
		}
	})
	t.Run("directional ignores position", func(t *testing.T) {
		l := &DirectionalLight{Dir: lin.V3{Y: -1}, Radiance: lin.V3{X: 3, Y: 3, Z: 3}}
		radiance, dir, _, pdf := l.Sample(lin.V3{X: 100}, 0, 0)
		if pdf != 1 || !dir.Aeq(lin.V3{Y: 1}) || !lin.Aeq(radiance.X, 3) {
			t.Errorf("expecting fixed direction and radiance")
		}
	})
	t.Run("area light pdf positive for sampled directions", func(t *testing.T) {
		sph := trace.NewSphere(lin.V3{Y: 5}, 1, 0)
		l := NewSphereLight(trace.NewToken(trace.KindSphere, 0), &sph, lin.V3{X: 1, Y: 1, Z: 1})
		src := sample.NewSource(8)
		point := lin.V3{}
		for i := 0; i < 500; i++ {
			_, dir, _, pdf := l.Sample(point, src.Float(), src.Float())
			if pdf <= 0 {
				continue // back face sample.
			}
			if got := l.PDF(point, dir); got <= 0 {
				t.Fatalf("expecting a positive pdf for a sampled direction")
			}
		}
	})
	t.Run("power scales pick probability", func(t *testing.T) {
		dim := &PointLight{Pos: lin.V3{}, Intensity: lin.V3{X: 1, Y: 1, Z: 1}}
		bright := &PointLight{Pos: lin.V3{}, Intensity: lin.V3{X: 9, Y: 9, Z: 9}}
		dist := newLightDistribution([]Light{dim, bright}, 1)
		if pdf := dist.pdf(1); !lin.Aeq(pdf, 0.9) {
			t.Errorf("expecting the bright light picked 90%%, got %f", pdf)
		}
	})
}
