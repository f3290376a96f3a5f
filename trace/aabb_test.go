// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"testing"
	"unsafe"

	"github.com/gazed/lux/math/lin"
)

func TestSlabBasics(t *testing.T) {
	box := NewAABB(lin.V3{X: -1, Y: -1, Z: -1}, lin.V3{X: 1, Y: 1, Z: 1})
	t.Run("head on hit", func(t *testing.T) {
		r := NewRay(lin.V3{Z: -5}, lin.V3{Z: 1})
		if d := box.Intersect(&r); !lin.Aeq(d, 4) {
			t.Errorf("expecting entry at 4 got %f", d)
		}
	})
	t.Run("miss", func(t *testing.T) {
		r := NewRay(lin.V3{X: 5, Z: -5}, lin.V3{Z: 1})
		if d := box.Intersect(&r); d != lin.Inf {
			t.Errorf("expecting miss got %f", d)
		}
	})
	t.Run("behind the origin", func(t *testing.T) {
		r := NewRay(lin.V3{Z: 5}, lin.V3{Z: 1})
		if d := box.Intersect(&r); d != lin.Inf {
			t.Errorf("expecting a box behind the ray to miss, got %f", d)
		}
	})
	t.Run("origin inside", func(t *testing.T) {
		r := NewRay(lin.V3{}, lin.V3{Z: 1})
		if d := box.Intersect(&r); d != 0 {
			t.Errorf("expecting distance 0 from inside, got %f", d)
		}
	})
	t.Run("axis aligned ray", func(t *testing.T) {
		// a direction with zero components exercises the clamped
		// reciprocal: no NaN may escape.
		r := NewRay(lin.V3{X: 0.5, Y: 0.5, Z: -5}, lin.V3{Z: 1})
		if d := box.Intersect(&r); lin.IsNaN(d) {
			t.Errorf("expecting a finite result for an axis aligned ray")
		}
	})
}

// Any box containing another must be entered at or before it.
func TestSlabMonotonicity(t *testing.T) {
	inner := NewAABB(lin.V3{X: -1, Y: -1, Z: 2}, lin.V3{X: 1, Y: 1, Z: 3})
	outer := NewAABB(lin.V3{X: -2, Y: -2, Z: 1}, lin.V3{X: 2, Y: 2, Z: 4})
	r := NewRay(lin.V3{Z: -1}, lin.V3{Z: 1})
	di, do := inner.Intersect(&r), outer.Intersect(&r)
	if di == lin.Inf || do == lin.Inf {
		t.Fatalf("expecting both boxes to hit")
	}
	if di < do {
		t.Errorf("expecting inner entry %f >= outer entry %f", di, do)
	}
}

// A ray grazing an edge where entry equals exit must return a finite
// value or a miss, never NaN, and the far multiplier keeps flat boxes
// hittable.
func TestSlabGrazing(t *testing.T) {
	t.Run("flat box", func(t *testing.T) {
		flat := NewAABB(lin.V3{X: -1, Y: -1, Z: 2}, lin.V3{X: 1, Y: 1, Z: 2})
		r := NewRay(lin.V3{}, lin.V3{Z: 1})
		if d := flat.Intersect(&r); lin.IsNaN(d) || d == lin.Inf {
			t.Errorf("expecting a zero thickness box to hit, got %f", d)
		}
	})
	t.Run("edge graze", func(t *testing.T) {
		box := NewAABB(lin.V3{X: 1, Y: -1, Z: 2}, lin.V3{X: 2, Y: 1, Z: 3})
		r := NewRay(lin.V3{X: 1}, lin.V3{Z: 1})
		if d := box.Intersect(&r); lin.IsNaN(d) {
			t.Errorf("expecting graze to be finite or a miss")
		}
	})
}

func TestAABBHelpers(t *testing.T) {
	box := NewAABB(lin.V3{}, lin.V3{X: 2, Y: 1, Z: 3})
	t.Run("half area", func(t *testing.T) {
		if a := box.HalfArea(); !lin.Aeq(a, 2*1+1*3+3*2) {
			t.Errorf("expecting half area 11 got %f", a)
		}
	})
	t.Run("major axis", func(t *testing.T) {
		if axis := box.MajorAxis(); axis != 2 {
			t.Errorf("expecting axis 2 got %d", axis)
		}
	})
	t.Run("encapsulate", func(t *testing.T) {
		grown := box.Encapsulate(NewAABB(lin.V3{X: -1, Y: 0, Z: 0}, lin.V3{X: 0, Y: 5, Z: 0}))
		if grown.Min.X != -1 || grown.Max.Y != 5 {
			t.Errorf("expecting the union of both boxes, got %v", grown)
		}
	})
	t.Run("empty box has no area", func(t *testing.T) {
		e := EmptyAABB()
		if a := e.HalfArea(); a != 0 {
			t.Errorf("expecting empty box area 0 got %f", a)
		}
	})
}

// The padded layouts are the point: a node must stay half a cache
// line and a ray three 16 byte lanes.
func TestLayoutSizes(t *testing.T) {
	if s := unsafe.Sizeof(node{}); s != 32 {
		t.Errorf("expecting 32 byte nodes got %d", s)
	}
	if s := unsafe.Sizeof(Ray{}); s != 48 {
		t.Errorf("expecting 48 byte rays got %d", s)
	}
	if s := unsafe.Sizeof(AABB{}); s != 32 {
		t.Errorf("expecting 32 byte boxes got %d", s)
	}
}
