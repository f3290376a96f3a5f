// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// texture.go provides the concrete textures: a texel grid with wrap
// policies, a procedural checker, and the environments that light
// scenes from every direction, including an importance sampled
// image environment.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
	"github.com/gazed/lux/shade"
)

// Grid is a 2D grid of linear RGBA texels with bilinear filtering.
type Grid struct {
	Wrap   shade.Wrap
	w, h   int
	texels []lin.V4
}

// NewGrid returns a black grid of the given size.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{w: w, h: h, texels: make([]lin.V4, w*h)}
}

// Size returns the texel dimensions.
func (g *Grid) Size() (w, h int) { return g.w, g.h }

// Set writes one texel.
func (g *Grid) Set(x, y int, v lin.V4) { g.texels[y*g.w+x] = v }

// At reads one texel with the grid's wrap policy.
func (g *Grid) At(x, y int) lin.V4 {
	x, y = g.wrap(x, g.w), g.wrap(y, g.h)
	return g.texels[y*g.w+x]
}

func (g *Grid) wrap(i, n int) int {
	if g.Wrap == shade.WrapClamp {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Sample2D returns the bilinearly filtered value at uv.
func (g *Grid) Sample2D(uv lin.V2) lin.V4 {
	fx := uv.X*float32(g.w) - 0.5
	fy := uv.Y*float32(g.h) - 0.5
	x0, y0 := int(lin.Floor(fx)), int(lin.Floor(fy))
	tx, ty := fx-float32(x0), fy-float32(y0)

	a := g.At(x0, y0).Scale((1 - tx) * (1 - ty))
	b := g.At(x0+1, y0).Scale(tx * (1 - ty))
	c := g.At(x0, y0+1).Scale((1 - tx) * ty)
	d := g.At(x0+1, y0+1).Scale(tx * ty)
	return a.Add(b).Add(c).Add(d)
}

// Grid
// =============================================================================
// Checker

// Checker alternates two colors in a square grid, the classic
// debugging floor.
type Checker struct {
	A, B  lin.V3
	Scale float32 // squares per unit of texture space.
}

// NewChecker returns a black and white checker with 8 squares.
func NewChecker() *Checker {
	return &Checker{B: lin.V3{X: 1, Y: 1, Z: 1}, Scale: 8}
}

// Sample2D returns color A or B by square parity.
func (c *Checker) Sample2D(uv lin.V2) lin.V4 {
	x := int(lin.Floor(uv.X * c.Scale))
	y := int(lin.Floor(uv.Y * c.Scale))
	if (x+y)&1 == 0 {
		return c.A.V4(1)
	}
	return c.B.V4(1)
}

// Size returns 1x1: the checker is resolution free.
func (c *Checker) Size() (w, h int) { return 1, 1 }

// Checker
// =============================================================================
// environments

// ConstantEnvironment lights the scene equally from every direction.
type ConstantEnvironment struct {
	Color lin.V3
}

// Evaluate returns the constant color.
func (e *ConstantEnvironment) Evaluate(dir lin.V3) lin.V3 { return e.Color }

// Sample draws a uniform direction over the sphere.
func (e *ConstantEnvironment) Sample(u, v float32) (lin.V3, lin.V3, float32) {
	return e.Color, sample.UniformSphere(u, v), sample.UniformSpherePDF()
}

// PDF returns the uniform sphere density.
func (e *ConstantEnvironment) PDF(dir lin.V3) float32 { return sample.UniformSpherePDF() }

// Prepare does nothing: there is nothing to tabulate.
func (e *ConstantEnvironment) Prepare() {}

// Average returns the constant color.
func (e *ConstantEnvironment) Average() lin.V3 { return e.Color }

// GradientSky blends from a ground color at the bottom pole to a
// sky color at the top.
type GradientSky struct {
	Ground lin.V3
	Sky    lin.V3
}

// Evaluate lerps on the direction's height.
func (e *GradientSky) Evaluate(dir lin.V3) lin.V3 {
	return e.Ground.Lerp(e.Sky, (dir.Y+1)*0.5)
}

// Sample draws a uniform direction: the gradient is smooth enough
// that uniform sampling stays efficient.
func (e *GradientSky) Sample(u, v float32) (lin.V3, lin.V3, float32) {
	dir := sample.UniformSphere(u, v)
	return e.Evaluate(dir), dir, sample.UniformSpherePDF()
}

// PDF returns the uniform sphere density.
func (e *GradientSky) PDF(dir lin.V3) float32 { return sample.UniformSpherePDF() }

// Prepare does nothing.
func (e *GradientSky) Prepare() {}

// Average returns the mid gradient.
func (e *GradientSky) Average() lin.V3 { return e.Ground.Lerp(e.Sky, 0.5) }

// EnvironmentMap wraps a lat-long image around the scene, importance
// sampled so bright texels are picked in proportion to the light
// they contribute.
type EnvironmentMap struct {
	Image *Grid

	dist *sample.Distribution2D
	avg  lin.V3
}

// NewEnvironmentMap returns an environment over the image.
// Call Prepare before rendering with it.
func NewEnvironmentMap(img *Grid) *EnvironmentMap {
	return &EnvironmentMap{Image: img}
}

// Prepare tabulates the sampling distribution: per texel luminance
// weighted by sinθ to undo the pole stretching of the lat-long
// mapping. Also precomputes the average radiance.
func (e *EnvironmentMap) Prepare() {
	w, h := e.Image.Size()
	weights := make([]float32, w*h)
	sum := lin.V3{}
	for y := 0; y < h; y++ {
		sinT := lin.Sin(lin.Pi * (float32(y) + 0.5) / float32(h))
		for x := 0; x < w; x++ {
			texel := e.Image.At(x, y).V3()
			weights[y*w+x] = texel.Luminance() * sinT
			sum = sum.Add(texel.Scale(sinT))
		}
	}
	e.dist = sample.NewDistribution2D(weights, w)
	// sinθ weighting makes the average a true sphere integral.
	norm := float32(w) * float32(h) * 2 / lin.Pi
	e.avg = sum.Scale(1 / norm)
}

// dirToUV maps a unit direction to lat-long texture coordinates,
// y up.
func dirToUV(dir lin.V3) lin.V2 {
	return lin.V2{
		X: (lin.Atan2(dir.X, dir.Z) + lin.Pi) / lin.Pix2,
		Y: lin.Acos(dir.Y) / lin.Pi,
	}
}

// uvToDir inverts dirToUV.
func uvToDir(uv lin.V2) lin.V3 {
	phi := uv.X*lin.Pix2 - lin.Pi
	theta := uv.Y * lin.Pi
	sinT := lin.Sin(theta)
	return lin.V3{X: sinT * lin.Sin(phi), Y: lin.Cos(theta), Z: sinT * lin.Cos(phi)}
}

// Evaluate returns the image radiance arriving from dir.
func (e *EnvironmentMap) Evaluate(dir lin.V3) lin.V3 {
	return e.Image.Sample2D(dirToUV(dir)).V3()
}

// Sample draws a direction with density proportional to texel
// luminance, converting the image density to solid angle.
func (e *EnvironmentMap) Sample(u, v float32) (lin.V3, lin.V3, float32) {
	x, y, pdfUV := e.dist.Sample(u, v)
	uv := lin.V2{X: x, Y: y}
	dir := uvToDir(uv)
	sinT := lin.Sin(uv.Y * lin.Pi)
	if sinT <= 0 || pdfUV <= 0 {
		return lin.V3{}, dir, 0
	}
	pdf := pdfUV / (2 * lin.Pi * lin.Pi * sinT)
	return e.Image.Sample2D(uv).V3(), dir, pdf
}

// PDF returns the solid angle density of Sample for dir.
func (e *EnvironmentMap) PDF(dir lin.V3) float32 {
	uv := dirToUV(dir)
	sinT := lin.Sin(uv.Y * lin.Pi)
	if sinT <= 0 {
		return 0
	}
	return e.dist.PDF(uv.X, uv.Y) / (2 * lin.Pi * lin.Pi * sinT)
}

// Average returns the mean radiance over the sphere.
func (e *EnvironmentMap) Average() lin.V3 { return e.avg }
