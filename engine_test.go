// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lux

import (
	"errors"
	"testing"
	"time"

	"github.com/gazed/lux/math/lin"
)

// testScene returns a small scene: camera at the origin looking +Z,
// a matte sphere ahead, under a constant white ambient.
func testScene() *Scene {
	s := NewScene()
	s.AddEnt().AddCamera(60)
	s.AddEnt().AddAmbient(&ConstantEnvironment{Color: lin.V3{X: 1, Y: 1, Z: 1}})
	mat := &Material{}
	s.AddEnt().SetAt(0, 0, 5).AddSphere(1, mat)
	return s
}

func newTestEngine(t *testing.T, w, h int) (*Engine, *RenderBuffer) {
	t.Helper()
	buf, err := NewRenderBuffer(w, h)
	if err != nil {
		t.Fatalf("buffer: %v", err)
	}
	eng, err := NewEngine(testScene(), buf)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return eng, buf
}

func TestEngineValidation(t *testing.T) {
	t.Run("nil buffer", func(t *testing.T) {
		if _, err := NewEngine(NewScene(), nil); !errors.Is(err, ErrInvalidBuffer) {
			t.Errorf("expecting ErrInvalidBuffer, got %v", err)
		}
	})
	t.Run("nil scene", func(t *testing.T) {
		buf, _ := NewRenderBuffer(4, 4)
		if _, err := NewEngine(nil, buf); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("expecting ErrInvalidScene, got %v", err)
		}
	})
	t.Run("zero buffer size", func(t *testing.T) {
		if _, err := NewRenderBuffer(0, 4); !errors.Is(err, ErrInvalidBuffer) {
			t.Errorf("expecting ErrInvalidBuffer, got %v", err)
		}
	})
	t.Run("bad profile", func(t *testing.T) {
		eng, _ := newTestEngine(t, 4, 4)
		if err := eng.Begin(Workers(0)); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("expecting ErrInvalidProfile for zero workers, got %v", err)
		}
		if err := eng.Begin(BounceLimit(-1)); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("expecting ErrInvalidProfile for negative bounces, got %v", err)
		}
		if err := eng.Begin(EnergyEpsilon(-0.5)); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("expecting ErrInvalidProfile for negative epsilon, got %v", err)
		}
		if err := eng.Begin(Fragmentation(4.8, 99)); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("expecting ErrInvalidProfile for fragmentation range, got %v", err)
		}
	})
	t.Run("scene without camera", func(t *testing.T) {
		buf, _ := NewRenderBuffer(4, 4)
		eng, err := NewEngine(NewScene(), buf)
		if err != nil {
			t.Fatalf("engine: %v", err)
		}
		if err := eng.Begin(); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("expecting ErrInvalidScene, got %v", err)
		}
	})
}

func TestEngineStateMachine(t *testing.T) {
	eng, _ := newTestEngine(t, 16, 16)
	if eng.State() != Ready {
		t.Fatalf("expecting a new engine to be ready, got %s", eng.State())
	}
	t.Run("illegal before begin", func(t *testing.T) {
		if err := eng.Pause(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("expecting pause before begin to fail, got %v", err)
		}
		if err := eng.Resume(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("expecting resume before begin to fail, got %v", err)
		}
		if err := eng.Abort(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("expecting abort before begin to fail, got %v", err)
		}
	})
	t.Run("render to completion", func(t *testing.T) {
		if err := eng.Begin(Workers(2), Samples(1, 1)); err != nil {
			t.Fatalf("begin: %v", err)
		}
		if err := eng.Begin(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("expecting begin while rendering to fail, got %v", err)
		}
		if got := eng.Wait(); got != Completed {
			t.Fatalf("expecting completed, got %s", got)
		}
		if err := eng.Resume(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("expecting resume after completion to fail, got %v", err)
		}
	})
	t.Run("begin again after completion", func(t *testing.T) {
		if err := eng.Begin(Workers(1), Samples(1, 1)); err != nil {
			t.Fatalf("second begin: %v", err)
		}
		if got := eng.Wait(); got != Completed {
			t.Fatalf("expecting completed, got %s", got)
		}
	})
}

func TestEngineAbort(t *testing.T) {
	eng, _ := newTestEngine(t, 64, 64)
	if err := eng.Begin(Workers(2), Samples(64, 64), TileSize(8)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := eng.Abort(); err != nil {
		t.Fatalf("abort: %v", err)
	}
	if got := eng.Wait(); got != Aborted {
		t.Fatalf("expecting aborted, got %s", got)
	}
	if err := eng.Abort(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expecting a second abort to fail, got %v", err)
	}
}

func TestEnginePauseResume(t *testing.T) {
	eng, _ := newTestEngine(t, 64, 64)
	if err := eng.Begin(Workers(2), Samples(32, 32), TileSize(8)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := eng.Pause(); err != nil {
		// the small render may already have drained.
		if eng.State() == Completed {
			t.Skip("render finished before pause")
		}
		t.Fatalf("pause: %v", err)
	}

	// workers need a boundary to observe the pause.
	time.Sleep(20 * time.Millisecond)
	before := eng.Progress().Samples
	time.Sleep(30 * time.Millisecond)
	after := eng.Progress().Samples
	if before != after {
		t.Errorf("expecting progress to stand still while paused: %d vs %d", before, after)
	}

	if err := eng.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if got := eng.Wait(); got != Completed {
		t.Fatalf("expecting completed after resume, got %s", got)
	}
	if eng.Progress().Samples <= after {
		t.Errorf("expecting progress to advance after resume")
	}
}

// Two identical runs must produce bit identical pixels regardless of
// worker count.
func TestEngineDeterminism(t *testing.T) {
	render := func(workers int) []lin.V4 {
		eng, buf := newTestEngine(t, 32, 32)
		if err := eng.Begin(Workers(workers), Samples(4, 4), Seed(99), TileSize(8)); err != nil {
			t.Fatalf("begin: %v", err)
		}
		if got := eng.Wait(); got != Completed {
			t.Fatalf("expecting completion, got %s", got)
		}
		return buf.Float4s()
	}
	a, b, c := render(1), render(4), render(4)
	for i := range a {
		if a[i] != b[i] || b[i] != c[i] {
			t.Fatalf("pixel %d differs across runs: %v %v %v", i, a[i], b[i], c[i])
		}
	}
}

// An empty scene under a constant white ambient renders pure white.
func TestEngineEmptySceneAmbient(t *testing.T) {
	s := NewScene()
	s.AddEnt().AddCamera(60)
	s.AddEnt().AddAmbient(&ConstantEnvironment{Color: lin.V3{X: 1, Y: 1, Z: 1}})
	buf, _ := NewRenderBuffer(16, 16)
	eng, err := NewEngine(s, buf)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if err := eng.Begin(Workers(2), Samples(1, 1), BounceLimit(2)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if got := eng.Wait(); got != Completed {
		t.Fatalf("expecting completion, got %s", got)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := buf.Color(x, y)
			if lin.Abs(c.X-1) > 1e-6 || lin.Abs(c.Y-1) > 1e-6 ||
				lin.Abs(c.Z-1) > 1e-6 || lin.Abs(c.W-1) > 1e-6 {
				t.Fatalf("pixel %d,%d not white: %v", x, y, c)
			}
		}
	}
}

func TestEngineProgress(t *testing.T) {
	eng, _ := newTestEngine(t, 32, 32)
	if err := eng.Begin(Workers(2), Samples(2, 2), TileSize(16)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	eng.Wait()
	p := eng.Progress()
	if p.Pixels != 32*32 {
		t.Errorf("expecting %d pixels, got %d", 32*32, p.Pixels)
	}
	if p.Samples != 32*32*2 {
		t.Errorf("expecting %d samples, got %d", 32*32*2, p.Samples)
	}
	if p.Tiles != 4 || p.TotalTiles != 4 {
		t.Errorf("expecting 4 of 4 tiles, got %d of %d", p.Tiles, p.TotalTiles)
	}
	if p.Traces == 0 {
		t.Errorf("expecting trace queries to be counted")
	}
	if p.Fraction() != 1 {
		t.Errorf("expecting fraction 1, got %f", p.Fraction())
	}
}

func TestEngineAlbedoPass(t *testing.T) {
	s := NewScene()
	s.AddEnt().AddCamera(60)
	mat := &Material{Albedo: NewGrid(1, 1)}
	mat.Albedo.(*Grid).Set(0, 0, lin.V4{X: 0.25, Y: 0.5, Z: 0.75, W: 1})
	s.AddEnt().SetAt(0, 0, 5).AddSphere(2, mat)
	buf, _ := NewRenderBuffer(8, 8)
	eng, err := NewEngine(s, buf)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if err := eng.Begin(Workers(1), Samples(1, 1), Pass(PassAlbedo)); err != nil {
		t.Fatalf("begin: %v", err)
	}
	eng.Wait()
	c := buf.Color(4, 4)
	if lin.Abs(c.X-0.25) > 1e-3 || lin.Abs(c.Y-0.5) > 1e-3 || lin.Abs(c.Z-0.75) > 1e-3 {
		t.Errorf("expecting the albedo at the center pixel, got %v", c)
	}
}
