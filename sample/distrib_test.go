// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

import (
	"testing"

	"github.com/gazed/lux/math/lin"
)

func TestDistribution1D(t *testing.T) {
	d := NewDistribution1D([]float32{1, 3, 0, 4})
	t.Run("discrete pdfs sum to one", func(t *testing.T) {
		sum := float32(0)
		for i := 0; i < d.Count(); i++ {
			sum += d.DiscretePDF(i)
		}
		if !lin.Aeq(sum, 1) {
			t.Errorf("expecting pdf sum 1 got %f", sum)
		}
	})
	t.Run("weights set probabilities", func(t *testing.T) {
		if !lin.Aeq(d.DiscretePDF(1), 3.0/8.0) {
			t.Errorf("expecting 3/8 got %f", d.DiscretePDF(1))
		}
		if d.DiscretePDF(2) != 0 {
			t.Errorf("expecting zero weight bucket to have zero pdf")
		}
	})
	t.Run("sample lands in the right bucket", func(t *testing.T) {
		index, pdf, _ := d.SampleDiscrete(0.05) // inside the first 1/8.
		if index != 0 || !lin.Aeq(pdf, 1.0/8.0) {
			t.Errorf("expecting bucket 0 with pdf 1/8, got %d %f", index, pdf)
		}
		if index, _, _ = d.SampleDiscrete(0.99); index != 3 {
			t.Errorf("expecting bucket 3, got %d", index)
		}
	})
	t.Run("zero weight buckets are never sampled", func(t *testing.T) {
		src := NewSource(11)
		for i := 0; i < 1000; i++ {
			if index, _, _ := d.SampleDiscrete(src.Float()); index == 2 {
				t.Fatalf("sampled a zero weight bucket")
			}
		}
	})
	t.Run("remapped variate stays uniform range", func(t *testing.T) {
		src := NewSource(7)
		for i := 0; i < 1000; i++ {
			if _, _, remapped := d.SampleDiscrete(src.Float()); remapped < 0 || remapped > 1 {
				t.Fatalf("remapped variate %f outside [0,1]", remapped)
			}
		}
	})
}

func TestDistribution1DContinuous(t *testing.T) {
	d := NewDistribution1D([]float32{0, 2})
	x, pdf, index := d.SampleContinuous(0.5)
	if index != 1 {
		t.Errorf("expecting all mass in bucket 1, got %d", index)
	}
	if x < 0.5 || x >= 1 {
		t.Errorf("expecting x in the second half, got %f", x)
	}
	if !lin.Aeq(pdf, 2) {
		t.Errorf("expecting density 2 over half the domain, got %f", pdf)
	}
}

func TestDistribution1DDegenerate(t *testing.T) {
	d := NewDistribution1D([]float32{0, 0, 0})
	index, pdf, _ := d.SampleDiscrete(0.5)
	if index < 0 || index > 2 {
		t.Errorf("expecting a valid index from a degenerate distribution")
	}
	if !lin.Aeq(pdf, 1.0/3.0) {
		t.Errorf("expecting uniform fallback pdf 1/3 got %f", pdf)
	}
}

func TestDistribution2D(t *testing.T) {
	// 2x2 grid with all the mass in the top right texel.
	d := NewDistribution2D([]float32{0, 0, 0, 5}, 2)
	x, y, pdf := d.Sample(0.3, 0.7)
	if x < 0.5 || y < 0.5 {
		t.Errorf("expecting sample in the bright texel, got %f %f", x, y)
	}
	if !lin.Aeq(pdf, 4) {
		t.Errorf("expecting density 4 over a quarter texel, got %f", pdf)
	}
	if got := d.PDF(x, y); !lin.Aeq(got, pdf) {
		t.Errorf("expecting PDF %f to match sample pdf %f", got, pdf)
	}
	if got := d.PDF(0.1, 0.1); got != 0 {
		t.Errorf("expecting zero density in a black texel, got %f", got)
	}
}

func TestHashDeterminism(t *testing.T) {
	if Hash(1, 2, 3) != Hash(1, 2, 3) {
		t.Errorf("expecting hash to be deterministic")
	}
	if Hash(1, 2, 3) == Hash(3, 2, 1) {
		t.Errorf("expecting hash to depend on argument order")
	}
}

func TestSourceRange(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 10000; i++ {
		if f := src.Float(); f < 0 || f >= 1 {
			t.Fatalf("sample %f outside [0,1)", f)
		}
	}
}

func TestSourceDeterminism(t *testing.T) {
	a, b := NewSource(9), NewSource(9)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("expecting equal streams from equal seeds")
		}
	}
}
