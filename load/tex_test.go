// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bytes"
	"testing"

	"github.com/gazed/lux/math/lin"
)

func TestPngRoundTrip(t *testing.T) {
	pixels := []lin.V4{
		{X: 1, W: 1}, {Y: 1, W: 1},
		{Z: 1, W: 1}, {X: 0.5, Y: 0.5, Z: 0.5, W: 1},
	}
	var buf bytes.Buffer
	if err := WritePng(&buf, 2, 2, pixels); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := Img(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("expecting 2x2, got %dx%d", img.Width, img.Height)
	}
	for i, want := range pixels {
		got := img.Pixels[i]
		// 8 bit quantization plus the sRGB round trip costs a little.
		if lin.Abs(got.X-want.X) > 0.01 || lin.Abs(got.Y-want.Y) > 0.01 ||
			lin.Abs(got.Z-want.Z) > 0.01 {
			t.Errorf("pixel %d: expecting %v got %v", i, want, got)
		}
	}
}

func TestPngClampsRadiance(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePng(&buf, 1, 1, []lin.V4{{X: 100, Y: -2, W: 1}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	img, err := Img(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if img.Pixels[0].X < 0.99 || img.Pixels[0].Y > 0.01 {
		t.Errorf("expecting clamped channels, got %v", img.Pixels[0])
	}
}

func TestPngValidation(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePng(&buf, 2, 2, make([]lin.V4, 1)); err == nil {
		t.Errorf("expecting an error for a short pixel slice")
	}
}

func TestSrgbTransfer(t *testing.T) {
	for _, c := range []float32{0, 0.001, 0.1, 0.5, 0.9, 1} {
		back := linearToSrgb(srgbToLinear(c))
		if lin.Abs(back-c) > 1e-4 {
			t.Errorf("transfer curve does not round trip at %f: %f", c, back)
		}
	}
	if srgbToLinear(0.5) >= 0.5 {
		t.Errorf("expecting the transfer curve to darken mid greys")
	}
}

func TestDownscale(t *testing.T) {
	img := &ImageData{Width: 4, Height: 4, Pixels: make([]lin.V4, 16)}
	for i := range img.Pixels {
		img.Pixels[i] = lin.V4{X: 0.5, Y: 0.25, Z: 0.75, W: 1}
	}
	out := Downscale(img, 2, 2)
	if out.Width != 2 || out.Height != 2 {
		t.Fatalf("expecting 2x2, got %dx%d", out.Width, out.Height)
	}
	for i, p := range out.Pixels {
		if lin.Abs(p.X-0.5) > 0.01 || lin.Abs(p.Z-0.75) > 0.01 {
			t.Errorf("pixel %d: expecting the flat color, got %v", i, p)
		}
	}
}

func TestReaderDispatch(t *testing.T) {
	if _, err := Reader(".exr", bytes.NewReader(nil)); err == nil {
		t.Errorf("expecting unsupported extensions to error")
	}
	if _, err := Reader(".yaml", bytes.NewReader([]byte("camera: {}"))); err != nil {
		t.Errorf("expecting yaml dispatch, got %v", err)
	}
}
