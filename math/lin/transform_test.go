// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTransformPoint(t *testing.T) {
	tr := T{Loc: V3{10, 0, 0}, Rot: QAxisAngle(V3{0, 0, 1}, 90), Scl: V3{2, 2, 2}}
	got := tr.AppPoint(V3{1, 0, 0})
	if !got.Aeq(V3{10, 2, 0}) {
		t.Errorf("expecting scale then rotate then translate, got %v", got)
	}
}

func TestTransformDir(t *testing.T) {
	tr := T{Loc: V3{10, 0, 0}, Rot: QI, Scl: V3{1, 1, 1}}
	if !tr.AppDir(V3{0, 0, 1}).Aeq(V3{0, 0, 1}) {
		t.Errorf("expecting directions to ignore translation")
	}
}

func TestTransformNormal(t *testing.T) {
	// squashing in y must keep the normal of an xz plane pointing up.
	tr := T{Rot: QI, Scl: V3{1, 0.5, 1}}
	got := tr.AppNorm(V3{0, 1, 0})
	if !got.Aeq(V3{0, 1, 0}) {
		t.Errorf("expecting normal to survive non-uniform scale, got %v", got)
	}
}

func TestTransformCompose(t *testing.T) {
	parent := T{Loc: V3{5, 0, 0}, Rot: QAxisAngle(V3{0, 1, 0}, 90), Scl: V3{1, 1, 1}}
	child := T{Loc: V3{0, 0, 1}, Rot: QI, Scl: V3{1, 1, 1}}
	p := V3{1, 2, 3}
	composed := parent.Mul(child).AppPoint(p)
	nested := parent.AppPoint(child.AppPoint(p))
	if !composed.Aeq(nested) {
		t.Errorf("expecting composed transform %v to equal nested %v", composed, nested)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := T{Loc: V3{1, 2, 3}, Rot: QAxisAngle(V3{1, 0, 0}, 30), Scl: V3{2, 1, 1}}
	p := V3{-1, 4, 0.5}
	if !tr.M4().AppPoint(p).Aeq(tr.AppPoint(p)) {
		t.Errorf("expecting matrix form to match transform")
	}
}
