// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// glb.go imports triangle meshes from the binary glTF format, the
// interchange format every modeller exports. Node transforms are
// baked into the vertex data so callers receive flat world space
// primitives with their material factors.

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/gazed/lux/math/lin"
)

// MeshData is the intermediate form of an imported mesh file: one
// primitive per glTF mesh primitive, transforms baked in.
type MeshData struct {
	Primitives []MeshPrimitive
}

// MeshPrimitive is one drawable group of triangles with the subset
// of glTF PBR material factors the renderer maps onto its own
// materials.
type MeshPrimitive struct {
	Name    string
	Verts   []lin.V3
	Normals []lin.V3 // empty when the file carries none.
	UVs     []lin.V2 // empty when the file carries none.
	Indices []uint32

	BaseColor lin.V4  // base color factor.
	Roughness float32 // PBR roughness factor.
	Metallic  float32 // PBR metallic factor.
	Emissive  lin.V3  // emissive factor.
}

// Glb decodes a .glb or .gltf stream into flat mesh primitives.
func Glb(r io.Reader) (*MeshData, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("Glb: decode %w", err)
	}

	data := &MeshData{}
	roots := rootNodes(doc)
	for _, ni := range roots {
		if err := importNode(doc, data, ni, lin.M4I); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// rootNodes returns the default scene's nodes, or every parentless
// node when the file names no scene.
func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	roots := []int{}
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// importNode bakes one node's mesh into world space and recurses
// into its children.
func importNode(doc *gltf.Document, data *MeshData, ni int, parent lin.M4) error {
	if ni < 0 || ni >= len(doc.Nodes) {
		return fmt.Errorf("Glb: node index %d out of range", ni)
	}
	n := doc.Nodes[ni]
	world := parent.Mul(nodeTransform(n))

	if n.Mesh != nil && *n.Mesh < len(doc.Meshes) {
		mesh := doc.Meshes[*n.Mesh]
		for pi, prim := range mesh.Primitives {
			mp, err := importPrimitive(doc, mesh.Name, pi, prim, world)
			if err != nil {
				return err
			}
			data.Primitives = append(data.Primitives, mp)
		}
	}
	for _, child := range n.Children {
		if err := importNode(doc, data, child, world); err != nil {
			return err
		}
	}
	return nil
}

// nodeTransform returns the node's local transform matrix from its
// translation, rotation and scale.
func nodeTransform(n *gltf.Node) lin.M4 {
	tr := n.TranslationOrDefault()
	ro := n.RotationOrDefault() // x, y, z, w.
	sc := n.ScaleOrDefault()
	t := lin.T{
		Loc: lin.V3{X: float32(tr[0]), Y: float32(tr[1]), Z: float32(tr[2])},
		Rot: lin.Q{X: float32(ro[0]), Y: float32(ro[1]), Z: float32(ro[2]), W: float32(ro[3])}.Unit(),
		Scl: lin.V3{X: float32(sc[0]), Y: float32(sc[1]), Z: float32(sc[2])},
	}
	return t.M4()
}

// importPrimitive reads one primitive's vertex streams and material
// factors, applying the world transform.
func importPrimitive(doc *gltf.Document, meshName string, pi int, prim *gltf.Primitive, world lin.M4) (MeshPrimitive, error) {
	mp := MeshPrimitive{
		Name:      fmt.Sprintf("%s_p%d", meshName, pi),
		BaseColor: lin.V4{X: 1, Y: 1, Z: 1, W: 1},
		Roughness: 1,
	}

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return mp, fmt.Errorf("Glb: primitive %s has no positions", mp.Name)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return mp, fmt.Errorf("Glb: positions %w", err)
	}
	mp.Verts = make([]lin.V3, len(positions))
	for i, p := range positions {
		mp.Verts[i] = world.AppPoint(lin.V3{X: p[0], Y: p[1], Z: p[2]})
	}

	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err := modeler.ReadNormal(doc, doc.Accessors[idx], nil); err == nil {
			mp.Normals = make([]lin.V3, len(normals))
			for i, n := range normals {
				mp.Normals[i] = world.AppDir(lin.V3{X: n[0], Y: n[1], Z: n[2]}).Unit()
			}
		}
	}
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err == nil {
			mp.UVs = make([]lin.V2, len(uvs))
			for i, uv := range uvs {
				mp.UVs[i] = lin.V2{X: uv[0], Y: uv[1]}
			}
		}
	}

	if prim.Indices != nil {
		mp.Indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return mp, fmt.Errorf("Glb: indices %w", err)
		}
	} else {
		// non indexed: synthesize a triangle list.
		mp.Indices = make([]uint32, len(mp.Verts))
		for i := range mp.Indices {
			mp.Indices[i] = uint32(i)
		}
	}

	if prim.Material != nil && *prim.Material < len(doc.Materials) {
		gm := doc.Materials[*prim.Material]
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mp.BaseColor = lin.V4{
				X: float32(cf[0]), Y: float32(cf[1]),
				Z: float32(cf[2]), W: float32(cf[3]),
			}
			mp.Roughness = float32(pbr.RoughnessFactorOrDefault())
			mp.Metallic = float32(pbr.MetallicFactorOrDefault())
		}
		ef := gm.EmissiveFactor
		mp.Emissive = lin.V3{X: float32(ef[0]), Y: float32(ef[1]), Z: float32(ef[2])}
	}
	return mp, nil
}
