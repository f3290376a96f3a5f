// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"github.com/gazed/lux"
	"github.com/gazed/lux/math/lin"
)

// mr renders a mirror sphere hovering over a checkered floor under a
// gradient sky: reflections, textures and multiple bounces together.
func mr() {
	scene := lux.NewScene()
	scene.AddEnt().SetAt(0, 1, -6).AddCamera(50)
	scene.AddEnt().AddAmbient(&lux.GradientSky{
		Ground: lin.V3{X: 0.3, Y: 0.25, Z: 0.2},
		Sky:    lin.V3{X: 0.4, Y: 0.6, Z: 0.9},
	})

	mirror := &lux.Material{Mirror: true}
	scene.AddEnt().SetAt(0, 1, 0).AddSphere(1, mirror)

	floor := &lux.Material{Albedo: lux.NewChecker()}
	scene.AddEnt().SetAt(0, 0, 0).
		Spin(lin.V3{X: 1}, -90).
		AddQuad(40, 40, floor)

	renderTo("mr.png", scene, lux.Samples(16, 128), lux.BounceLimit(6))
}
