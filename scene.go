// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// scene.go provides the mutable scene graph the application builds:
// a tree of entities carrying transforms and content. The graph
// stays editable until the engine prepares it; preparation does not
// modify the graph, so an edited graph can be prepared again.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/render"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// Scene is a tree of entities with one camera, any number of lights
// and any number of shapes.
type Scene struct {
	root *Ent
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{root: newEnt()}
}

// AddEnt adds and returns a new entity parented to the scene root.
func (s *Scene) AddEnt() *Ent { return s.root.AddEnt() }

// Root returns the root entity for applications that transform the
// entire scene at once.
func (s *Scene) Root() *Ent { return s.root }

// Scene
// =============================================================================
// Ent

// Ent is one node of the scene graph: a transform, optional content,
// and child entities that inherit the transform.
type Ent struct {
	loc lin.V3
	rot lin.Q
	scl lin.V3

	kids    []*Ent
	camera  *Camera
	light   *Light
	ambient shade.Environment
	shapes  []shape
}

func newEnt() *Ent {
	return &Ent{rot: lin.QI, scl: lin.V3{X: 1, Y: 1, Z: 1}}
}

// AddEnt adds and returns a new child entity.
func (e *Ent) AddEnt() *Ent {
	kid := newEnt()
	e.kids = append(e.kids, kid)
	return kid
}

// SetAt places the entity at the given location relative to its
// parent. The updated entity is returned for chaining.
func (e *Ent) SetAt(x, y, z float32) *Ent {
	e.loc = lin.V3{X: x, Y: y, Z: z}
	return e
}

// At returns the entity location relative to its parent.
func (e *Ent) At() (x, y, z float32) { return e.loc.X, e.loc.Y, e.loc.Z }

// SetScale sets the per axis scale. Scales must be positive;
// preparation rejects anything else.
func (e *Ent) SetScale(x, y, z float32) *Ent {
	e.scl = lin.V3{X: x, Y: y, Z: z}
	return e
}

// SetRotation sets the entity orientation.
func (e *Ent) SetRotation(q lin.Q) *Ent {
	e.rot = q
	return e
}

// Spin rotates the entity the given degrees about the axis,
// composing with the current rotation.
func (e *Ent) Spin(axis lin.V3, deg float32) *Ent {
	e.rot = e.rot.Mul(lin.QAxisAngle(axis.Unit(), deg)).Unit()
	return e
}

// AddCamera attaches a perspective camera with the given vertical
// field of view in degrees. The first camera found during
// preparation wins.
func (e *Ent) AddCamera(fov float32) *Ent {
	e.camera = &Camera{FOV: fov}
	return e
}

// AddLight attaches a light definition.
func (e *Ent) AddLight(l *Light) *Ent {
	e.light = l
	return e
}

// AddAmbient attaches an environment that lights the scene from
// every direction.
func (e *Ent) AddAmbient(env Environment) *Ent {
	e.ambient = env
	return e
}

// AddSphere attaches a unit sphere scaled by radius.
func (e *Ent) AddSphere(radius float32, mat *Material) *Ent {
	e.shapes = append(e.shapes, &sphereShape{radius: radius, mat: mat})
	return e
}

// AddQuad attaches a w by h planar quad, centered on the entity,
// facing +Z, built from two triangles.
func (e *Ent) AddQuad(w, h float32, mat *Material) *Ent {
	e.shapes = append(e.shapes, &quadShape{w: w, h: h, mat: mat})
	return e
}

// AddMesh attaches an indexed triangle mesh.
func (e *Ent) AddMesh(m *Mesh, mat *Material) *Ent {
	e.shapes = append(e.shapes, &meshShape{mesh: m, mat: mat})
	return e
}

// Ent
// =============================================================================
// scene graph to render graph adapters.
//
// Preparation consumes narrow per content interfaces. Each entity
// exposes its content as leaf nodes so that an entity without a
// camera never answers camera queries.

// Nodes returns the child entities plus one leaf per content item.
func (e *Ent) Nodes() []render.Node {
	out := make([]render.Node, 0, len(e.kids)+3)
	if e.camera != nil {
		out = append(out, &cameraLeaf{cam: e.camera})
	}
	if e.light != nil {
		out = append(out, &lightLeaf{light: e.light})
	}
	if e.ambient != nil {
		out = append(out, &ambientLeaf{env: e.ambient})
	}
	for _, s := range e.shapes {
		out = append(out, &shapeLeaf{shape: s})
	}
	for _, kid := range e.kids {
		out = append(out, kid)
	}
	return out
}

// Transform returns the entity's local transform.
func (e *Ent) Transform() lin.T {
	return lin.T{Loc: e.loc, Rot: e.rot, Scl: e.scl}
}

// leaf is the common identity transform of content leaves.
type leaf struct{}

func (leaf) Nodes() []render.Node { return nil }
func (leaf) Transform() lin.T     { return lin.TI() }

type cameraLeaf struct {
	leaf
	cam *Camera
}

func (l *cameraLeaf) RenderCamera(world lin.T) render.Camera {
	return render.Camera{Loc: world.Loc, Rot: world.Rot, FOV: l.cam.FOV}
}

type lightLeaf struct {
	leaf
	light *Light
}

func (l *lightLeaf) RenderLight(world lin.T) render.Light {
	return l.light.render(world)
}

type ambientLeaf struct {
	leaf
	env shade.Environment
}

func (l *ambientLeaf) RenderAmbient() shade.Environment { return l.env }

type shapeLeaf struct {
	leaf
	shape shape
}

func (l *shapeLeaf) ExtractTriangles(world lin.T, press render.MaterialPress) []trace.Triangle {
	return l.shape.triangles(world, press)
}

func (l *shapeLeaf) ExtractSpheres(world lin.T, press render.MaterialPress) []trace.Sphere {
	return l.shape.spheres(world, press)
}
