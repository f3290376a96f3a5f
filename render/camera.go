// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// camera.go holds the pressed pinhole camera. The default view looks
// down the positive Z axis, matching the scene graph convention.

import (
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/trace"
)

// Camera is the immutable pinhole camera primary rays spawn from.
type Camera struct {
	Loc lin.V3  // eye position.
	Rot lin.Q   // view orientation; identity looks down +Z.
	FOV float32 // vertical field of view in degrees.
}

// NewCamera returns a camera at the origin looking down +Z with a
// 60 degree vertical field of view.
func NewCamera() Camera {
	return Camera{Rot: lin.QI, FOV: 60}
}

// SpawnRay returns the primary ray through pixel (px,py) of a w by h
// buffer. The 2D variate jitters the sample point inside the pixel;
// 0.5,0.5 is the pixel center. The image plane is scaled so the
// vertical field of view is exact and the horizontal follows the
// aspect ratio.
func (c *Camera) SpawnRay(px, py int, u, v float32, w, h int) trace.Ray {
	tan := float32(1)
	if c.FOV > 0 {
		half := c.FOV * 0.5 * lin.DegRad
		tan = lin.Sin(half) / lin.Cos(half)
	}
	aspect := float32(w) / float32(h)

	// pixel to [-1,1] normalized device coordinates, y up.
	nx := ((float32(px)+u)/float32(w))*2 - 1
	ny := 1 - ((float32(py)+v)/float32(h))*2

	local := lin.V3{X: nx * tan * aspect, Y: ny * tan, Z: 1}
	return trace.NewRay(c.Loc, c.Rot.App(local).Unit())
}
