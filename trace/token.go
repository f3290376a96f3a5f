// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package trace

// token.go holds the compact tagged index that hierarchy nodes use to
// reference either another node or a piece of geometry.

// Token is a tagged 30 bit index. The tag says what array the index
// points into: hierarchy nodes, triangles, spheres, or instances.
// Instances are reserved for hierarchical instancing which the
// current pipeline does not enable.
type Token uint32

// Kind is the tag portion of a Token.
type Kind uint32

// Token kinds.
const (
	KindNode     Kind = iota // index into the hierarchy node array.
	KindTriangle             // index into the triangle array.
	KindSphere               // index into the sphere array.
	KindInstance             // reserved: index into an instance array.
)

const (
	tokenKindShift = 30
	tokenIndexMask = 1<<tokenKindShift - 1

	// TokenNone is a token that matches no geometry. Used as the
	// "ignore nothing" value in queries. It is an instance token with
	// an all ones index, which the pipeline never produces.
	TokenNone Token = ^Token(0)
)

// NewToken returns a token with the given kind and index.
func NewToken(kind Kind, index int) Token {
	return Token(uint32(kind)<<tokenKindShift | uint32(index)&tokenIndexMask)
}

// Kind returns the tag of the token.
func (t Token) Kind() Kind { return Kind(t >> tokenKindShift) }

// Index returns the array index of the token.
func (t Token) Index() int { return int(t & tokenIndexMask) }

// IsNode returns true for tokens referencing a hierarchy node.
func (t Token) IsNode() bool { return t.Kind() == KindNode }

// IsGeometry returns true for tokens referencing a triangle or sphere.
func (t Token) IsGeometry() bool {
	k := t.Kind()
	return k == KindTriangle || k == KindSphere
}

// String returns a short human readable form for logs and tests.
func (t Token) String() string {
	switch t.Kind() {
	case KindNode:
		return "node:" + itoa(t.Index())
	case KindTriangle:
		return "tri:" + itoa(t.Index())
	case KindSphere:
		return "sph:" + itoa(t.Index())
	}
	return "inst:" + itoa(t.Index())
}

// itoa avoids pulling strconv into the hot path package for one
// debug helper.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [12]byte
	pos := len(b)
	for i > 0 {
		pos--
		b[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(b[pos:])
}
