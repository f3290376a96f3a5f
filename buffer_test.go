// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

import (
	"testing"

	"github.com/gazed/lux/math/lin"
)

func TestRenderBuffer(t *testing.T) {
	buf, err := NewRenderBuffer(4, 2)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	t.Run("reciprocal size", func(t *testing.T) {
		rw, rh := buf.SizeR()
		if !lin.Aeq(rw, 0.25) || !lin.Aeq(rh, 0.5) {
			t.Errorf("expecting 1/4 and 1/2, got %f %f", rw, rh)
		}
	})
	t.Run("aspects", func(t *testing.T) {
		ax, ay := buf.Aspects()
		if !lin.Aeq(ax, 2) || !lin.Aeq(ay, 1) {
			t.Errorf("expecting 2,1 got %f,%f", ax, ay)
		}
	})
	t.Run("weighted accumulation", func(t *testing.T) {
		buf.add(1, 1, lin.V4{X: 2, W: 1}, 1, 1)
		buf.add(1, 1, lin.V4{X: 4, W: 1}, 1, 1)
		c := buf.Color(1, 1)
		if !lin.Aeq(c.X, 3) || !lin.Aeq(c.W, 1) {
			t.Errorf("expecting the weighted mean (3, alpha 1), got %v", c)
		}
		if p := buf.At(1, 1); p.Samples != 2 {
			t.Errorf("expecting 2 samples, got %d", p.Samples)
		}
	})
	t.Run("empty pixel is black", func(t *testing.T) {
		if c := buf.Color(0, 0); c != (lin.V4{}) {
			t.Errorf("expecting black, got %v", c)
		}
	})
	t.Run("reset clears", func(t *testing.T) {
		buf.Reset()
		if p := buf.At(1, 1); p.Samples != 0 || p.Weight != 0 {
			t.Errorf("expecting a cleared buffer")
		}
	})
	t.Run("float4 export", func(t *testing.T) {
		buf.add(3, 0, lin.V4{Y: 5, W: 1}, 1, 1)
		out := buf.Float4s()
		if len(out) != 8 {
			t.Fatalf("expecting 8 pixels, got %d", len(out))
		}
		if !lin.Aeq(out[3].Y, 5) {
			t.Errorf("expecting pixel 3 radiance, got %v", out[3])
		}
	})
}
