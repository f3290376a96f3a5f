// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

// distrib.go holds piecewise constant probability distributions.
// A Distribution1D picks lights in proportion to their power and rows
// of an environment map in proportion to their brightness.

import (
	"sort"

	"github.com/gazed/lux/math/lin"
)

// Distribution1D is a piecewise constant distribution over n buckets
// proportional to the non-negative weights it was built from.
// Sampling is O(log n) through a binary search of the running sum.
type Distribution1D struct {
	weights  []float32 // original bucket weights.
	cdf      []float32 // n+1 running sums normalized to end at 1.
	integral float32   // sum of weights before normalizing.
}

// NewDistribution1D builds a distribution from bucket weights.
// Negative weights are treated as zero. A distribution where every
// weight is zero samples uniformly.
func NewDistribution1D(weights []float32) *Distribution1D {
	d := &Distribution1D{
		weights: append([]float32(nil), weights...),
		cdf:     make([]float32, len(weights)+1),
	}
	sum := float32(0)
	for i, w := range d.weights {
		if w < 0 {
			w = 0
			d.weights[i] = 0
		}
		sum += w
		d.cdf[i+1] = sum
	}
	d.integral = sum
	if len(weights) == 0 {
		return d // no buckets: callers check Count.
	}
	if sum == 0 {
		// degenerate: fall back to a uniform pick.
		n := float32(len(weights))
		for i := range d.cdf {
			d.cdf[i] = float32(i) / n
		}
		return d
	}
	inv := 1 / sum
	for i := range d.cdf {
		d.cdf[i] *= inv
	}
	d.cdf[len(d.cdf)-1] = 1
	return d
}

// Count returns the number of buckets.
func (d *Distribution1D) Count() int { return len(d.weights) }

// Integral returns the sum of the weights the distribution was
// built from.
func (d *Distribution1D) Integral() float32 { return d.integral }

// SampleDiscrete maps the uniform variate u to a bucket index.
// It returns the index, the probability of that index, and u remapped
// to a fresh uniform variate so callers can reuse it.
func (d *Distribution1D) SampleDiscrete(u float32) (index int, pdf, remapped float32) {
	index = d.find(u)
	lo, hi := d.cdf[index], d.cdf[index+1]
	pdf = hi - lo
	if pdf > 0 {
		remapped = (u - lo) / pdf
	}
	return index, pdf, lin.Saturate(remapped)
}

// SampleContinuous maps the uniform variate u to a point x in [0,1)
// with density proportional to the bucket weights. It returns x, the
// value of the pdf at x, and the bucket index.
func (d *Distribution1D) SampleContinuous(u float32) (x, pdf float32, index int) {
	index = d.find(u)
	lo, hi := d.cdf[index], d.cdf[index+1]
	width := hi - lo
	du := float32(0)
	if width > 0 {
		du = (u - lo) / width
	}
	n := float32(len(d.weights))
	x = (float32(index) + du) / n
	pdf = width * n // piecewise constant density over a 1/n bucket.
	return x, pdf, index
}

// DiscretePDF returns the probability of sampling bucket i.
func (d *Distribution1D) DiscretePDF(i int) float32 {
	if i < 0 || i >= len(d.weights) {
		return 0
	}
	return d.cdf[i+1] - d.cdf[i]
}

// ContinuousPDF returns the density at the point x in [0,1).
func (d *Distribution1D) ContinuousPDF(x float32) float32 {
	i := int(x * float32(len(d.weights)))
	if i < 0 || i >= len(d.weights) {
		return 0
	}
	return (d.cdf[i+1] - d.cdf[i]) * float32(len(d.weights))
}

// find returns the bucket whose cdf span contains u.
func (d *Distribution1D) find(u float32) int {
	// sort.Search returns the first index with cdf > u; the bucket
	// containing u is the one before it.
	i := sort.Search(len(d.cdf), func(i int) bool { return d.cdf[i] > u }) - 1
	if i < 0 {
		i = 0
	}
	if i > len(d.weights)-1 {
		i = len(d.weights) - 1
	}
	return i
}

// Distribution1D
// =============================================================================
// Distribution2D

// Distribution2D is a piecewise constant distribution over a 2D grid,
// factored into a marginal distribution over rows and a conditional
// distribution per row. Built from environment map luminance so bright
// sky texels are sampled in proportion to their contribution.
type Distribution2D struct {
	conditional []*Distribution1D // one per row: p(u|v).
	marginal    *Distribution1D   // p(v) from row integrals.
}

// NewDistribution2D builds a distribution from a row-major grid of
// non-negative weights with the given width. len(weights) must be a
// multiple of width.
func NewDistribution2D(weights []float32, width int) *Distribution2D {
	rows := len(weights) / width
	d := &Distribution2D{conditional: make([]*Distribution1D, rows)}
	rowInt := make([]float32, rows)
	for y := 0; y < rows; y++ {
		d.conditional[y] = NewDistribution1D(weights[y*width : (y+1)*width])
		rowInt[y] = d.conditional[y].Integral()
	}
	d.marginal = NewDistribution1D(rowInt)
	return d
}

// Sample maps a uniform 2D variate to a grid point in [0,1)² with
// density proportional to the weights. Returns the point and its pdf
// with respect to unit area.
func (d *Distribution2D) Sample(u, v float32) (x, y, pdf float32) {
	yy, pdfY, row := d.marginal.SampleContinuous(v)
	xx, pdfX, _ := d.conditional[row].SampleContinuous(u)
	return xx, yy, pdfX * pdfY
}

// PDF returns the density at the point (x,y) in [0,1)².
func (d *Distribution2D) PDF(x, y float32) float32 {
	row := int(y * float32(len(d.conditional)))
	if row < 0 || row >= len(d.conditional) {
		return 0
	}
	return d.marginal.ContinuousPDF(y) * d.conditional[row].ContinuousPDF(x)
}
