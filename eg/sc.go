// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/gazed/lux"
)

// sc renders a scene described in yaml, exercising the description
// loader end to end. The scene file is written to the working
// directory so the example is self contained.
func sc() {
	const doc = `
camera:
  at: [0, 1, -6]
  fov: 50
ambient:
  kind: gradient
  ground: [0.25, 0.2, 0.2]
  sky: [0.5, 0.7, 1.0]
materials:
  floor:
    checker: true
  ball:
    albedo: [0.2, 0.4, 0.8]
    roughness: 0.2
    specular: 0.5
models:
  - shape: quad
    w: 30
    h: 30
    spin: [1, 0, 0, -90]
    material: floor
  - shape: sphere
    radius: 1
    at: [0, 1, 0]
    material: ball
profile:
  samples: [16, 64]
  bounces: 6
  seed: 11
`
	if err := os.WriteFile("sc.yaml", []byte(doc), 0o644); err != nil {
		slog.Error("sc: write scene", "err", err)
		return
	}
	scene, opts, err := lux.LoadScene("sc.yaml")
	if err != nil {
		slog.Error("sc: load scene", "err", err)
		return
	}
	renderTo("sc.png", scene, opts...)
}
