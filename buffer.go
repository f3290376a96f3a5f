// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

// buffer.go provides the render target: a grid of accumulating
// radiance samples. The buffer itself is not locked; the scheduler
// guarantees one writer per pixel at a time by owning pixels through
// tiles, and a full barrier at render completion publishes every
// write before readers look.

import (
	"fmt"

	"github.com/gazed/lux/math/lin"
)

// RenderBuffer accumulates weighted radiance samples per pixel.
// Reallocate between renders, never during one.
type RenderBuffer struct {
	w, h   int
	pixels []Pixel
}

// Pixel is one accumulation cell.
type Pixel struct {
	Radiance lin.V4  // weighted sum of samples, alpha accumulates 1s.
	Weight   float32 // sum of sample weights.
	Samples  uint32  // number of samples taken.
}

// NewRenderBuffer returns a buffer of the given pixel size.
func NewRenderBuffer(w, h int) (*RenderBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidBuffer, w, h)
	}
	return &RenderBuffer{w: w, h: h, pixels: make([]Pixel, w*h)}, nil
}

// Size returns the pixel dimensions.
func (b *RenderBuffer) Size() (w, h int) { return b.w, b.h }

// SizeR returns the reciprocal dimensions used to scale pixel
// coordinates into [0,1].
func (b *RenderBuffer) SizeR() (rw, rh float32) {
	return 1 / float32(b.w), 1 / float32(b.h)
}

// Aspects returns the dimensions divided by the smaller of the two.
func (b *RenderBuffer) Aspects() (ax, ay float32) {
	m := float32(min(b.w, b.h))
	return float32(b.w) / m, float32(b.h) / m
}

// At returns the accumulation cell for a pixel.
func (b *RenderBuffer) At(x, y int) Pixel { return b.pixels[y*b.w+x] }

// Color returns the resolved radiance for a pixel: the weighted
// average of its samples, black if none arrived yet.
func (b *RenderBuffer) Color(x, y int) lin.V4 {
	p := &b.pixels[y*b.w+x]
	if p.Weight <= 0 {
		return lin.V4{}
	}
	return p.Radiance.Scale(1 / p.Weight)
}

// Float4s returns the resolved image as a row-major slice, the form
// image encoders consume.
func (b *RenderBuffer) Float4s() []lin.V4 {
	out := make([]lin.V4, b.w*b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			out[y*b.w+x] = b.Color(x, y)
		}
	}
	return out
}

// Reset zeroes the accumulation for the next render.
func (b *RenderBuffer) Reset() {
	for i := range b.pixels {
		b.pixels[i] = Pixel{}
	}
}

// add accumulates a sample. Only the worker owning the pixel's tile
// may call it.
func (b *RenderBuffer) add(x, y int, radiance lin.V4, weight float32, samples uint32) {
	p := &b.pixels[y*b.w+x]
	p.Radiance = p.Radiance.Add(radiance)
	p.Weight += weight
	p.Samples += samples
}
