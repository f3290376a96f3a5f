// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// light.go holds the light kinds next event estimation samples:
// point and directional delta lights, area lights attached to
// emissive primitives, and the ambient environment.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
	"github.com/gazed/lux/trace"
)

// Light is anything next event estimation can sample toward.
type Light interface {
	// Sample draws a direction from the shading point toward the
	// light: the incident radiance, the unit direction, the distance
	// an occlusion ray must travel, and the solid angle pdf.
	// A zero pdf means the light cannot illuminate the point.
	Sample(point lin.V3, u, v float32) (radiance, dir lin.V3, travel, pdf float32)

	// PDF returns the solid angle density of Sample choosing dir
	// from point. Zero for delta lights, which no sampled direction
	// can hit.
	PDF(point, dir lin.V3) float32

	// Power returns the scalar emitted power used to weight the
	// light in the pick distribution. The scene bounding radius
	// converts unbounded lights to a comparable scale.
	Power(sceneRadius float32) float32

	// Delta reports lights with a singular distribution: multiple
	// importance sampling gives their samples full weight.
	Delta() bool
}

// PointLight radiates intensity equally in all directions from a
// single position.
type PointLight struct {
	Pos       lin.V3
	Intensity lin.V3 // radiant intensity, power per solid angle.
}

// Sample returns the direction to the light with inverse square
// falloff.
func (l *PointLight) Sample(point lin.V3, u, v float32) (lin.V3, lin.V3, float32, float32) {
	to := l.Pos.Sub(point)
	d2 := to.LenSqr()
	if d2 <= 0 {
		return lin.V3{}, lin.V3{}, 0, 0
	}
	travel := lin.Sqrt(d2)
	return l.Intensity.Scale(1 / d2), to.Scale(1 / travel), travel, 1
}

// PDF is zero: a delta light is never hit by a sampled direction.
func (l *PointLight) PDF(point, dir lin.V3) float32 { return 0 }

// Power returns the intensity integrated over the sphere.
func (l *PointLight) Power(sceneRadius float32) float32 {
	return 2 * lin.Pix2 * l.Intensity.Luminance()
}

// Delta returns true.
func (l *PointLight) Delta() bool { return true }

// PointLight
// =============================================================================
// DirectionalLight

// DirectionalLight radiates parallel light from infinitely far away.
type DirectionalLight struct {
	Dir      lin.V3 // unit direction the light travels.
	Radiance lin.V3
}

// Sample returns the fixed direction toward the light. The travel
// distance spans the whole scene.
func (l *DirectionalLight) Sample(point lin.V3, u, v float32) (lin.V3, lin.V3, float32, float32) {
	return l.Radiance, l.Dir.Neg(), lin.MaxFloat, 1
}

// PDF is zero: a delta light is never hit by a sampled direction.
func (l *DirectionalLight) PDF(point, dir lin.V3) float32 { return 0 }

// Power returns the radiance through the scene's cross section.
func (l *DirectionalLight) Power(sceneRadius float32) float32 {
	return lin.Pi * sceneRadius * sceneRadius * l.Radiance.Luminance()
}

// Delta returns true.
func (l *DirectionalLight) Delta() bool { return true }

// DirectionalLight
// =============================================================================
// AreaLight

// AreaLight is an emissive primitive sampled by surface area and
// converted to solid angle at the shading point.
type AreaLight struct {
	Token    trace.Token // the emissive primitive.
	Radiance lin.V3      // emitted from the geometric front face.

	tri    *trace.Triangle // exactly one of tri or sphere is set.
	sphere *trace.Sphere
	area   float32
}

// NewTriangleLight returns an area light over a prepared triangle.
func NewTriangleLight(token trace.Token, tri *trace.Triangle, radiance lin.V3) *AreaLight {
	return &AreaLight{Token: token, Radiance: radiance, tri: tri, area: tri.Area()}
}

// NewSphereLight returns an area light over a prepared sphere.
func NewSphereLight(token trace.Token, sphere *trace.Sphere, radiance lin.V3) *AreaLight {
	return &AreaLight{Token: token, Radiance: radiance, sphere: sphere, area: sphere.Area()}
}

// Sample draws a surface point and converts the area density to
// solid angle: pdf = d² / (cosθ_light · area).
func (l *AreaLight) Sample(point lin.V3, u, v float32) (lin.V3, lin.V3, float32, float32) {
	var p, n lin.V3
	if l.tri != nil {
		p, n = l.tri.Sample(u, v)
	} else {
		p, n = l.sphere.Sample(u, v)
	}
	to := p.Sub(point)
	d2 := to.LenSqr()
	if d2 <= 0 || l.area <= 0 {
		return lin.V3{}, lin.V3{}, 0, 0
	}
	travel := lin.Sqrt(d2)
	dir := to.Scale(1 / travel)
	cosL := n.Dot(dir.Neg())
	if cosL <= 0 {
		return lin.V3{}, lin.V3{}, 0, 0 // back face of the light.
	}
	return l.Radiance, dir, travel, d2 / (cosL * l.area)
}

// PDF returns the solid angle density for a direction by
// intersecting the primitive directly.
func (l *AreaLight) PDF(point, dir lin.V3) float32 {
	r := trace.NewRay(point, dir)
	var dist float32
	var n lin.V3
	var ok bool
	if l.tri != nil {
		dist, _, _, ok = l.tri.Intersect(&r)
		n = l.tri.Normal
	} else {
		var hit lin.V3
		dist, _, _, ok = l.sphere.Intersect(&r)
		if ok {
			hit = r.At(dist)
			n = l.sphere.NormalAt(hit)
		}
	}
	if !ok {
		return 0
	}
	cosL := n.Dot(dir.Neg())
	if cosL <= 0 {
		return 0
	}
	return dist * dist / (cosL * l.area)
}

// Power returns radiance times area times the projected hemisphere.
func (l *AreaLight) Power(sceneRadius float32) float32 {
	return l.Radiance.Luminance() * l.area * lin.Pi
}

// Delta returns false.
func (l *AreaLight) Delta() bool { return false }

// AreaLight
// =============================================================================
// AmbientLight

// AmbientLight wraps the scene in an environment of incoming
// radiance at infinity.
type AmbientLight struct {
	Env    shade.Environment
	Radius float32 // scene bounding radius, set during prepare.
}

// Sample defers to the environment's importance sampling.
func (l *AmbientLight) Sample(point lin.V3, u, v float32) (lin.V3, lin.V3, float32, float32) {
	radiance, dir, pdf := l.Env.Sample(u, v)
	return radiance, dir, lin.MaxFloat, pdf
}

// PDF defers to the environment.
func (l *AmbientLight) PDF(point, dir lin.V3) float32 { return l.Env.PDF(dir) }

// Evaluate returns the radiance arriving from dir, used when a path
// escapes the scene.
func (l *AmbientLight) Evaluate(dir lin.V3) lin.V3 { return l.Env.Evaluate(dir) }

// Power is π·r²·average luminance: the flux the environment pushes
// through the scene's bounding disk.
func (l *AmbientLight) Power(sceneRadius float32) float32 {
	return lin.Pi * sceneRadius * sceneRadius * l.Env.Average().Luminance()
}

// Delta returns false.
func (l *AmbientLight) Delta() bool { return false }

// AmbientLight
// =============================================================================
// light distribution

// lightDistribution picks lights in proportion to their power.
type lightDistribution struct {
	dist *sample.Distribution1D
}

func newLightDistribution(lights []Light, radius float32) lightDistribution {
	weights := make([]float32, len(lights))
	for i, l := range lights {
		weights[i] = l.Power(radius)
	}
	return lightDistribution{dist: sample.NewDistribution1D(weights)}
}

// pick selects a light index with probability proportional to power.
func (d lightDistribution) pick(u float32) (index int, pdf float32) {
	if d.dist == nil || d.dist.Count() == 0 {
		return 0, 0
	}
	index, pdf, _ = d.dist.SampleDiscrete(u)
	return index, pdf
}

// pdf returns the probability of picking light index i.
func (d lightDistribution) pdf(i int) float32 {
	if d.dist == nil {
		return 0
	}
	return d.dist.DiscretePDF(i)
}
