// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/sample"
)

// randomTriangles returns triangles scattered through the unit-ish cube.
func randomTriangles(n int, seed uint64) []Triangle {
	src := sample.NewSource(seed)
	point := func() lin.V3 {
		return lin.V3{X: src.Float()*10 - 5, Y: src.Float()*10 - 5, Z: src.Float()*10 - 5}
	}
	tris := make([]Triangle, 0, n)
	for i := 0; i < n; i++ {
		v0 := point()
		v1 := v0.Add(lin.V3{X: src.Float(), Y: src.Float(), Z: src.Float()})
		v2 := v0.Add(lin.V3{X: -src.Float(), Y: src.Float(), Z: src.Float()})
		tris = append(tris, NewTriangle(v0, v1, v2, uint32(i)))
	}
	return tris
}

// The hierarchy must agree with the linear reference on hit token,
// distance and barycentrics for random rays against random geometry.
func TestBVHLinearParity(t *testing.T) {
	tris := randomTriangles(500, 1)
	spheres := []Sphere{
		NewSphere(lin.V3{X: 2, Y: 1, Z: 0}, 1.5, 0),
		NewSphere(lin.V3{X: -3, Y: -2, Z: 2}, 0.75, 1),
	}
	bvh := NewBVH(tris, spheres)
	linear := NewLinear(tris, spheres)

	src := sample.NewSource(2)
	qb, ql := NewQuery(), NewQuery()
	hits := 0
	for i := 0; i < 100; i++ {
		origin := lin.V3{X: src.Float()*16 - 8, Y: src.Float()*16 - 8, Z: src.Float()*16 - 8}
		dir := sample.UniformSphere(src.Float2())
		ray := NewRay(origin, dir)

		qb.Reset(ray, lin.Inf, TokenNone)
		ql.Reset(ray, lin.Inf, TokenNone)
		bvh.Trace(qb)
		linear.Trace(ql)

		if qb.Hit() != ql.Hit() {
			t.Fatalf("ray %d: hierarchy hit=%v linear hit=%v", i, qb.Hit(), ql.Hit())
		}
		if !qb.Hit() {
			continue
		}
		hits++
		if qb.Token != ql.Token {
			// two primitives can tie at the same distance; accept if so.
			if lin.Abs(qb.Distance-ql.Distance) > 1e-5 {
				t.Fatalf("ray %d: token %v vs %v at %f vs %f", i, qb.Token, ql.Token, qb.Distance, ql.Distance)
			}
			continue
		}
		if lin.Abs(qb.Distance-ql.Distance) > 1e-5 {
			t.Fatalf("ray %d: distance %f vs %f", i, qb.Distance, ql.Distance)
		}
		if lin.Abs(qb.U-ql.U) > 1e-5 || lin.Abs(qb.V-ql.V) > 1e-5 {
			t.Fatalf("ray %d: uv (%f,%f) vs (%f,%f)", i, qb.U, qb.V, ql.U, ql.V)
		}
	}
	if hits == 0 {
		t.Fatalf("expecting some rays to hit the scene")
	}
}

// Occlusion must agree with whether a full trace finds a closer hit.
func TestBVHOccludeParity(t *testing.T) {
	tris := randomTriangles(200, 3)
	bvh := NewBVH(tris, nil)
	src := sample.NewSource(4)
	qt, qo := NewQuery(), NewQuery()
	for i := 0; i < 200; i++ {
		origin := lin.V3{X: src.Float()*16 - 8, Y: src.Float()*16 - 8, Z: src.Float()*16 - 8}
		ray := NewRay(origin, sample.UniformSphere(src.Float2()))
		travel := src.Float() * 10

		qt.Reset(ray, lin.Inf, TokenNone)
		bvh.Trace(qt)
		want := qt.Hit() && qt.Distance < travel

		qo.Reset(ray, travel, TokenNone)
		if got := bvh.Occlude(qo); got != want {
			t.Fatalf("ray %d: occlude=%v but trace found distance %f against travel %f",
				i, got, qt.Distance, travel)
		}
	}
}

// Every primitive must be findable: shoot a ray straight at each
// triangle's centroid.
func TestBVHCompleteness(t *testing.T) {
	tris := randomTriangles(300, 5)
	bvh := NewBVH(tris, nil)
	q := NewQuery()
	for i := range tris {
		c := tris[i].PointAt(1.0/3.0, 1.0/3.0)
		origin := c.Add(tris[i].Normal.Scale(0.5))
		q.Reset(NewRay(origin, tris[i].Normal.Neg()), lin.Inf, TokenNone)
		bvh.Trace(q)
		if !q.Hit() {
			t.Fatalf("triangle %d not reachable through the hierarchy", i)
		}
		if q.Distance > 0.5+1e-4 {
			t.Fatalf("triangle %d: found %v at %f, expecting a hit at 0.5 or closer",
				i, q.Token, q.Distance)
		}
	}
}

func TestBVHIgnoreToken(t *testing.T) {
	tris := []Triangle{
		NewTriangle(lin.V3{X: -1, Y: -1, Z: 2}, lin.V3{X: 1, Y: -1, Z: 2}, lin.V3{Y: 1, Z: 2}, 0),
		NewTriangle(lin.V3{X: -1, Y: -1, Z: 4}, lin.V3{X: 1, Y: -1, Z: 4}, lin.V3{Y: 1, Z: 4}, 0),
	}
	bvh := NewBVH(tris, nil)
	q := NewQuery()
	q.Reset(NewRay(lin.V3{Y: -0.5}, lin.V3{Z: 1}), lin.Inf, NewToken(KindTriangle, 0))
	bvh.Trace(q)
	if !q.Hit() || q.Token.Index() != 1 {
		t.Errorf("expecting the ignored front triangle to be skipped, got %v", q.Token)
	}
}

func TestBVHEmpty(t *testing.T) {
	bvh := NewBVH(nil, nil)
	q := NewQuery()
	q.Reset(NewRay(lin.V3{}, lin.V3{Z: 1}), lin.Inf, TokenNone)
	bvh.Trace(q)
	if q.Hit() {
		t.Errorf("expecting an empty hierarchy to miss")
	}
	if bvh.Occlude(q) {
		t.Errorf("expecting an empty hierarchy to not occlude")
	}
}

func TestBVHShape(t *testing.T) {
	tris := randomTriangles(128, 6)
	bvh := NewBVH(tris, nil)
	t.Run("leaf per primitive", func(t *testing.T) {
		// a binary tree with n leaves has 2n-1 nodes.
		if got := bvh.NodeCount(); got != 2*len(tris)-1 {
			t.Errorf("expecting %d nodes got %d", 2*len(tris)-1, got)
		}
	})
	t.Run("depth recorded", func(t *testing.T) {
		// log2(128)=7 is the best case; a SAH tree stays well under n.
		if d := bvh.MaxDepth(); d < 7 || d > 64 {
			t.Errorf("expecting a sane depth, got %d", d)
		}
	})
	t.Run("cost probe counts work", func(t *testing.T) {
		r := NewRay(lin.V3{Z: -20}, lin.V3{Z: 1})
		if c := bvh.TraceCost(&r); c <= 0 {
			t.Errorf("expecting positive cost got %d", c)
		}
	})
}

func TestTokenPacking(t *testing.T) {
	for _, kind := range []Kind{KindNode, KindTriangle, KindSphere, KindInstance} {
		tok := NewToken(kind, 12345)
		if tok.Kind() != kind || tok.Index() != 12345 {
			t.Errorf("expecting kind %d index 12345 got %d %d", kind, tok.Kind(), tok.Index())
		}
	}
	if TokenNone.IsGeometry() {
		t.Errorf("expecting TokenNone to reference nothing")
	}
}
