// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// bvh.go builds the bounding volume hierarchy. The builder bins
// primitive centroids along the longest axis and splits where the
// surface area heuristic predicts the cheapest traversal. Nodes are
// pressed into a dense array where an internal node's token indexes
// its first child and the second child follows consecutively.

import "github.com/gazed/lux/math/lin"

// sahBins is how many centroid buckets the builder considers per
// split. 12 is the usual sweet spot between build time and quality.
const sahBins = 12

// node is exactly 32 bytes, half a cache line: a bounding box with
// the padding lane of the min corner reused for the token.
type node struct {
	min   lin.V3
	token Token // first child for internal nodes, geometry for leaves.
	max   lin.V3
	_     uint32 // keep the node 32 bytes.
}

// intersect runs the shared slab kernel against the node bounds.
func (n *node) intersect(r *Ray) float32 {
	return slab(n.min, n.max, r)
}

// BVH is an immutable binary bounding volume hierarchy over prepared
// triangles and spheres. Build once per prepared scene; queries are
// read only and safe for concurrent use.
type BVH struct {
	nodes    []node
	tris     []Triangle
	spheres  []Sphere
	maxDepth int // deepest node; sizes traversal stacks.
}

// buildItem pairs a primitive's bounds with its token while building.
type buildItem struct {
	box      AABB
	centroid lin.V3
	token    Token
}

// NewBVH builds a hierarchy over the given primitives. The primitive
// slices are referenced, not copied: they must not change afterwards.
// An empty scene returns a hierarchy that misses everything.
func NewBVH(tris []Triangle, spheres []Sphere) *BVH {
	b := &BVH{tris: tris, spheres: spheres}
	items := make([]buildItem, 0, len(tris)+len(spheres))
	for i := range tris {
		box := tris[i].Bounds()
		items = append(items, buildItem{box: box, centroid: tris[i].Centroid(), token: NewToken(KindTriangle, i)})
	}
	for i := range spheres {
		box := spheres[i].Bounds()
		items = append(items, buildItem{box: box, centroid: spheres[i].Center, token: NewToken(KindSphere, i)})
	}
	if len(items) == 0 {
		return b
	}
	// a full binary tree over n leaves has 2n-1 nodes.
	b.nodes = make([]node, 1, 2*len(items)-1)
	b.build(items, 0, 1)
	return b
}

// MaxDepth returns the deepest node level, the size a traversal
// stack needs.
func (b *BVH) MaxDepth() int { return b.maxDepth }

// NodeCount returns the number of pressed nodes.
func (b *BVH) NodeCount() int { return len(b.nodes) }

// Bounds returns the root bounding box of the hierarchy.
func (b *BVH) Bounds() AABB {
	if len(b.nodes) == 0 {
		return EmptyAABB()
	}
	return AABB{Min: b.nodes[0].min.V4(0), Max: b.nodes[0].max.V4(0)}
}

// build fills in nodes[at] for the given items, appending child pairs
// as needed. Recursion depth is bounded by the partitioning always
// splitting off at least one item.
func (b *BVH) build(items []buildItem, at, depth int) {
	if depth > b.maxDepth {
		b.maxDepth = depth
	}
	box := EmptyAABB()
	for i := range items {
		box = box.Encapsulate(items[i].box)
	}
	b.nodes[at].min = box.Min.V3()
	b.nodes[at].max = box.Max.V3()

	if len(items) == 1 {
		b.nodes[at].token = items[0].token
		return
	}

	mid := splitSAH(items, box)

	// allocate the child pair consecutively and link through the token.
	ci := len(b.nodes)
	b.nodes = append(b.nodes, node{}, node{})
	b.nodes[at].token = NewToken(KindNode, ci)
	b.build(items[:mid], ci, depth+1)
	b.build(items[mid:], ci+1, depth+1)
}

// splitSAH partitions items about the cheapest binned surface area
// heuristic split and returns the partition point. Falls back to a
// median split when the centroids give the heuristic nothing to
// work with.
func splitSAH(items []buildItem, box AABB) int {
	// bin on the longest axis of the centroid bounds.
	cb := EmptyAABB()
	for i := range items {
		cb = cb.EncapsulatePoint(items[i].centroid)
	}
	axis := cb.MajorAxis()
	lo := cb.Min.V3().Axis(axis)
	extent := cb.Max.V3().Axis(axis) - lo
	if extent <= lin.Epsilon {
		return len(items) / 2 // all centroids coincide.
	}
	scale := float32(sahBins) * (1 - lin.Epsilon) / extent

	type bin struct {
		count int
		box   AABB
	}
	var bins [sahBins]bin
	for i := range bins {
		bins[i].box = EmptyAABB()
	}
	binOf := func(it *buildItem) int {
		return int((it.centroid.Axis(axis) - lo) * scale)
	}
	for i := range items {
		bi := binOf(&items[i])
		bins[bi].count++
		bins[bi].box = bins[bi].box.Encapsulate(items[i].box)
	}

	// sweep: cost of splitting after bin i is areaL·nL + areaR·nR.
	var rightArea [sahBins]float32
	rbox := EmptyAABB()
	rcount := 0
	var rightCount [sahBins]int
	for i := sahBins - 1; i > 0; i-- {
		rbox = rbox.Encapsulate(bins[i].box)
		rcount += bins[i].count
		rightArea[i] = rbox.HalfArea()
		rightCount[i] = rcount
	}
	bestBin, bestCost := -1, lin.Inf
	lbox := EmptyAABB()
	lcount := 0
	for i := 0; i < sahBins-1; i++ {
		lbox = lbox.Encapsulate(bins[i].box)
		lcount += bins[i].count
		if lcount == 0 || rightCount[i+1] == 0 {
			continue
		}
		cost := lbox.HalfArea()*float32(lcount) + rightArea[i+1]*float32(rightCount[i+1])
		if cost < bestCost {
			bestCost, bestBin = cost, i
		}
	}
	if bestBin < 0 {
		return len(items) / 2 // every centroid landed in one bin.
	}

	// partition in place: bins <= bestBin to the left.
	mid := 0
	for i := range items {
		if binOf(&items[i]) <= bestBin {
			items[mid], items[i] = items[i], items[mid]
			mid++
		}
	}
	if mid == 0 || mid == len(items) {
		return len(items) / 2
	}
	return mid
}
