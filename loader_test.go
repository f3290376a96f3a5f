// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

import (
	"os"
	"path/filepath"
	"testing"
)

const loaderYaml = `
camera:
  at: [0, 0, -4]
ambient:
  kind: constant
  color: [1, 1, 1]
lights:
  - kind: point
    at: [5, 5, 0]
    intensity: 100
materials:
  matte:
    albedo: [0.8, 0.8, 0.8]
models:
  - shape: sphere
    radius: 1
    at: [0, 0, 5]
    material: matte
  - shape: quad
    w: 4
    h: 4
profile:
  samples: [2, 2]
  workers: 1
  seed: 3
`

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(name, []byte(loaderYaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	scene, opts, err := LoadScene(name)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(opts) != 3 {
		t.Errorf("expecting 3 profile options, got %d", len(opts))
	}

	// the loaded scene must render end to end.
	buf, err := NewRenderBuffer(8, 8)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	eng, err := NewEngine(scene, buf)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if err := eng.Begin(opts...); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got := eng.Wait(); got != Completed {
		t.Fatalf("expecting completion, got %s", got)
	}
	if c := buf.Color(4, 4); c.W != 1 {
		t.Errorf("expecting rendered pixels, got %v", c)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()
	t.Run("missing file", func(t *testing.T) {
		if _, _, err := LoadScene(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Errorf("expecting an error for a missing file")
		}
	})
	t.Run("bad ambient kind", func(t *testing.T) {
		name := filepath.Join(dir, "bad.yaml")
		os.WriteFile(name, []byte("ambient: {kind: plasma}\n"), 0o644)
		if _, _, err := LoadScene(name); err == nil {
			t.Errorf("expecting an error for an unknown ambient kind")
		}
	})
}
