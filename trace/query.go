// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// query.go holds the trace query and the hierarchy traversal
// algorithms: nearest hit, boolean occlusion, and a cost probe used
// to instrument hierarchy quality.

import "github.com/gazed/lux/math/lin"

// Query carries a ray through an aggregate and the best hit found so
// far. Distance doubles as the search bound going in (use lin.Inf for
// unbounded) and the hit distance coming out. A Query owns a reusable
// traversal stack: create one per worker and Reset it per ray so the
// hot path never allocates.
type Query struct {
	Ray      Ray
	Distance float32 // in: upper bound. out: hit distance.
	Ignore   Token   // geometry to skip, usually the spawning surface.

	Token Token   // out: hit geometry, valid when Hit() is true.
	U, V  float32 // out: triangle barycentrics or sphere polar coords.

	stack []stackEntry
}

type stackEntry struct {
	index int
	enter float32
}

// NewQuery returns a query with a traversal stack ready for use.
func NewQuery() *Query {
	return &Query{stack: make([]stackEntry, 0, 64)}
}

// Reset readies the query for a new ray with the given search bound.
func (q *Query) Reset(ray Ray, bound float32, ignore Token) {
	q.Ray = ray
	q.Distance = bound
	q.Ignore = ignore
	q.Token = TokenNone
	q.U, q.V = 0, 0
	q.stack = q.stack[:0]
}

// Hit returns true once the query has found geometry.
func (q *Query) Hit() bool { return q.Token != TokenNone }

// hitGeometry tests the leaf geometry behind token and updates the
// query's best hit. Returns true if the hit improved.
func (q *Query) hitGeometry(token Token, tris []Triangle, spheres []Sphere) bool {
	if token == q.Ignore {
		return false
	}
	switch token.Kind() {
	case KindTriangle:
		if dist, u, v, ok := q.hitCheck(tris[token.Index()].Intersect(&q.Ray)); ok {
			q.Distance, q.U, q.V, q.Token = dist, u, v, token
			return true
		}
	case KindSphere:
		if dist, u, v, ok := q.hitCheck(spheres[token.Index()].Intersect(&q.Ray)); ok {
			q.Distance, q.U, q.V, q.Token = dist, u, v, token
			return true
		}
	}
	return false
}

// hitCheck filters an intersection result by the current best.
func (q *Query) hitCheck(dist, u, v float32, ok bool) (float32, float32, float32, bool) {
	if !ok || dist >= q.Distance {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}

// Aggregate is the intersection interface shared by the hierarchy and
// the linear fallback, letting tests check them against each other.
type Aggregate interface {
	// Trace finds the nearest hit within the query's bound.
	Trace(q *Query)
	// Occlude reports whether anything blocks the query's ray closer
	// than its bound. Cheaper than Trace: stops at the first hit.
	Occlude(q *Query) bool
	// TraceCost counts the intersection tests the ray would cost.
	TraceCost(r *Ray) int
}

// Trace walks the hierarchy front to back, pruning nodes whose entry
// distance already exceeds the best hit. The nearer child is visited
// first by pushing the farther one deeper on the stack.
func (b *BVH) Trace(q *Query) {
	if len(b.nodes) == 0 {
		return
	}
	if enter := b.nodes[0].intersect(&q.Ray); enter >= q.Distance || enter == lin.Inf {
		return
	}
	q.stack = append(q.stack[:0], stackEntry{index: 0})
	for len(q.stack) > 0 {
		top := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		if top.enter >= q.Distance {
			continue // a closer hit arrived after this was pushed.
		}
		n := &b.nodes[top.index]
		if !n.token.IsNode() {
			q.hitGeometry(n.token, b.tris, b.spheres)
			continue
		}
		ci := n.token.Index()
		near, far := ci, ci+1
		enterNear := b.nodes[near].intersect(&q.Ray)
		enterFar := b.nodes[far].intersect(&q.Ray)
		if enterFar < enterNear {
			near, far = far, near
			enterNear, enterFar = enterFar, enterNear
		}
		if enterFar < q.Distance {
			q.stack = append(q.stack, stackEntry{index: far, enter: enterFar})
		}
		if enterNear < q.Distance {
			q.stack = append(q.stack, stackEntry{index: near, enter: enterNear})
		}
	}
}

// Occlude walks the hierarchy and returns on the first hit closer
// than the query bound. Visit order does not matter so there is no
// near/far bookkeeping.
func (b *BVH) Occlude(q *Query) bool {
	if len(b.nodes) == 0 {
		return false
	}
	if b.nodes[0].intersect(&q.Ray) >= q.Distance {
		return false
	}
	travel := q.Distance
	q.stack = append(q.stack[:0], stackEntry{index: 0})
	for len(q.stack) > 0 {
		top := q.stack[len(q.stack)-1]
		q.stack = q.stack[:len(q.stack)-1]
		n := &b.nodes[top.index]
		if !n.token.IsNode() {
			if q.hitGeometry(n.token, b.tris, b.spheres) && q.Distance < travel {
				return true
			}
			continue
		}
		ci := n.token.Index()
		if b.nodes[ci].intersect(&q.Ray) < travel {
			q.stack = append(q.stack, stackEntry{index: ci})
		}
		if b.nodes[ci+1].intersect(&q.Ray) < travel {
			q.stack = append(q.stack, stackEntry{index: ci + 1})
		}
	}
	return false
}

// TraceCost descends every node the ray touches and counts the box
// and geometry tests, approximating the work Trace would do. Used by
// the hierarchy quality evaluator.
func (b *BVH) TraceCost(r *Ray) int {
	if len(b.nodes) == 0 {
		return 0
	}
	return b.nodeCost(r, 0)
}

func (b *BVH) nodeCost(r *Ray, index int) int {
	cost := 1 // this node's box test.
	n := &b.nodes[index]
	if n.intersect(r) == lin.Inf {
		return cost
	}
	if !n.token.IsNode() {
		return cost + 1 // the leaf geometry test.
	}
	ci := n.token.Index()
	return cost + b.nodeCost(r, ci) + b.nodeCost(r, ci+1)
}

// BVH traversal
// =============================================================================
// Linear fallback

// Linear is the O(n) aggregate: it tests every primitive. Too slow
// for real scenes but the obviously correct reference the hierarchy
// is checked against, and the cheaper choice for trivial scenes.
type Linear struct {
	tris    []Triangle
	spheres []Sphere
}

// NewLinear returns a linear aggregate over the given primitives.
func NewLinear(tris []Triangle, spheres []Sphere) *Linear {
	return &Linear{tris: tris, spheres: spheres}
}

// Trace tests every primitive, keeping the nearest hit.
func (l *Linear) Trace(q *Query) {
	for i := range l.tris {
		q.hitGeometry(NewToken(KindTriangle, i), l.tris, l.spheres)
	}
	for i := range l.spheres {
		q.hitGeometry(NewToken(KindSphere, i), l.tris, l.spheres)
	}
}

// Occlude tests primitives until one blocks the ray.
func (l *Linear) Occlude(q *Query) bool {
	travel := q.Distance
	for i := range l.tris {
		if q.hitGeometry(NewToken(KindTriangle, i), l.tris, l.spheres) && q.Distance < travel {
			return true
		}
	}
	for i := range l.spheres {
		if q.hitGeometry(NewToken(KindSphere, i), l.tris, l.spheres) && q.Distance < travel {
			return true
		}
	}
	return false
}

// TraceCost counts one test per primitive.
func (l *Linear) TraceCost(r *Ray) int { return len(l.tris) + len(l.spheres) }
