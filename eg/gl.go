// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"github.com/gazed/lux"
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/shade"
)

// gl renders a glass sphere beside a matte one: refraction, total
// internal reflection and Fresnel edges against a bright sky.
func gl() {
	scene := lux.NewScene()
	scene.AddEnt().SetAt(0, 0, -5).AddCamera(55)
	scene.AddEnt().AddAmbient(&lux.GradientSky{
		Ground: lin.V3{X: 0.8, Y: 0.7, Z: 0.6},
		Sky:    lin.V3{X: 0.5, Y: 0.7, Z: 1.0},
	})

	glass := &lux.Material{Transmissive: true, IOR: 1.5}
	scene.AddEnt().SetAt(-1.1, 0, 0).AddSphere(1, glass)

	matte := &lux.Material{Albedo: shade.NewConstant(lin.V3{X: 0.9, Y: 0.3, Z: 0.2})}
	scene.AddEnt().SetAt(1.1, 0, 0).AddSphere(1, matte)

	renderTo("gl.png", scene, lux.Samples(32, 256), lux.BounceLimit(10))
}
