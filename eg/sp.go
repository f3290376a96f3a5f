// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log/slog"
	"os"

	"github.com/gazed/lux"
	"github.com/gazed/lux/load"
	"github.com/gazed/lux/math/lin"
	"github.com/gazed/lux/shade"
)

// sp renders a matte sphere under a single point light: the smallest
// scene where direct lighting and soft shadow falloff are visible.
func sp() {
	scene := lux.NewScene()
	scene.AddEnt().AddCamera(60)
	scene.AddEnt().SetAt(0, 0, 5).AddSphere(1,
		&lux.Material{Albedo: shade.NewConstant(lin.V3{X: 0.8, Y: 0.8, Z: 0.8})})
	scene.AddEnt().SetAt(5, 5, 0).AddLight(
		lux.NewLight(lux.PointLight).SetIntensity(100))

	renderTo("sp.png", scene, lux.Samples(64, 64), lux.BounceLimit(3))
}

// renderTo runs a render to completion and writes the image.
func renderTo(name string, scene *lux.Scene, opts ...lux.Option) {
	buf, err := lux.NewRenderBuffer(512, 512)
	if err != nil {
		slog.Error("eg: buffer", "err", err)
		return
	}
	eng, err := lux.NewEngine(scene, buf)
	if err != nil {
		slog.Error("eg: engine", "err", err)
		return
	}
	if err = eng.Begin(opts...); err != nil {
		slog.Error("eg: begin", "err", err)
		return
	}
	if state := eng.Wait(); state != lux.Completed {
		slog.Error("eg: render did not complete", "state", state)
		return
	}

	f, err := os.Create(name)
	if err != nil {
		slog.Error("eg: create", "err", err)
		return
	}
	defer f.Close()
	w, h := buf.Size()
	if err = load.WritePng(f, w, h, buf.Float4s()); err != nil {
		slog.Error("eg: write", "err", err)
		return
	}
	p := eng.Progress()
	slog.Info("render written", "file", name,
		"samples", p.Samples, "traces", p.Traces)
}
