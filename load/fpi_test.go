// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"math"
	"testing"

	"github.com/gazed/lux/math/lin"
)

func TestFpiRoundTrip(t *testing.T) {
	img := &FloatImageData{Width: 3, Height: 2, Pixels: []lin.V4{
		{X: 0.5, Y: 0.25, Z: 0.125, W: 1},
		{X: 0.5, Y: 0.25, Z: 0.125, W: 1}, // repeats delta to zero.
		{X: 1e-8, Y: 1e8, Z: -3.5, W: 1},  // extreme magnitudes survive.
		{},
		{X: float32(math.Inf(1)), W: 1}, // raw bits, infinities included.
		{X: float32(math.Copysign(0, -1)), Y: 42, W: 1},
	}}
	var buf bytes.Buffer
	if err := WriteFpi(&buf, img); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Fpi(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Width != 3 || got.Height != 2 {
		t.Fatalf("expecting 3x2, got %dx%d", got.Width, got.Height)
	}
	for i := range img.Pixels {
		// compare raw bits: the codec must be exact, including the
		// sign of zero.
		for c := 0; c < 4; c++ {
			a, b := channel(img.Pixels[i], c), channel(got.Pixels[i], c)
			if math.Float32bits(a) != math.Float32bits(b) {
				t.Fatalf("pixel %d channel %d: %x vs %x", i, c,
					math.Float32bits(a), math.Float32bits(b))
			}
		}
	}
}

func channel(v lin.V4, c int) float32 {
	switch c {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return v.W
}

// flat images must compress to almost nothing: every delta is zero.
func TestFpiDeltaCompression(t *testing.T) {
	flat := &FloatImageData{Width: 64, Height: 64, Pixels: make([]lin.V4, 64*64)}
	for i := range flat.Pixels {
		flat.Pixels[i] = lin.V4{X: 0.25, Y: 0.5, Z: 0.75, W: 1}
	}
	var buf bytes.Buffer
	if err := WriteFpi(&buf, flat); err != nil {
		t.Fatalf("write: %v", err)
	}
	// 64*64*4 floats raw is 64KiB; the delta stream gzips far below.
	if buf.Len() > 1024 {
		t.Errorf("expecting a flat image to compress below 1KiB, got %d", buf.Len())
	}
}

// version 0 is the raw little endian fallback.
func TestFpiRawVersion(t *testing.T) {
	var plain bytes.Buffer
	zw := gzip.NewWriter(&plain)
	bw := bufio.NewWriter(zw)
	binary.Write(bw, binary.LittleEndian, FpiVersionRaw)
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], 2)
	bw.Write(scratch[:n])
	n = binary.PutUvarint(scratch[:], 1)
	bw.Write(scratch[:n])
	binary.Write(bw, binary.LittleEndian, [4]float32{1, 2, 3, 4})
	binary.Write(bw, binary.LittleEndian, [4]float32{5, 6, 7, 8})
	bw.Flush()
	zw.Close()

	img, err := Fpi(&plain)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("expecting 2x1, got %dx%d", img.Width, img.Height)
	}
	if img.Pixels[1] != (lin.V4{X: 5, Y: 6, Z: 7, W: 8}) {
		t.Errorf("expecting raw pixel values, got %v", img.Pixels[1])
	}
}

func TestFpiErrors(t *testing.T) {
	t.Run("not gzip", func(t *testing.T) {
		if _, err := Fpi(bytes.NewReader([]byte("not a stream"))); err == nil {
			t.Errorf("expecting an error for a non gzip stream")
		}
	})
	t.Run("unknown version", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		binary.Write(zw, binary.LittleEndian, int32(9))
		zw.Write([]byte{1, 1})
		zw.Close()
		if _, err := Fpi(&buf); err == nil {
			t.Errorf("expecting an error for an unknown version")
		}
	})
	t.Run("inconsistent write", func(t *testing.T) {
		bad := &FloatImageData{Width: 2, Height: 2, Pixels: make([]lin.V4, 1)}
		if err := WriteFpi(&bad2buf{}, bad); err == nil {
			t.Errorf("expecting an error for a short pixel slice")
		}
	})
	t.Run("truncated stream", func(t *testing.T) {
		img := &FloatImageData{Width: 8, Height: 8, Pixels: make([]lin.V4, 64)}
		var buf bytes.Buffer
		if err := WriteFpi(&buf, img); err != nil {
			t.Fatalf("write: %v", err)
		}
		cut := buf.Bytes()[:buf.Len()/2]
		if _, err := Fpi(bytes.NewReader(cut)); err == nil {
			t.Errorf("expecting an error for a truncated stream")
		}
	})
}

// bad2buf is a writer for calls that must fail before writing.
type bad2buf struct{}

func (*bad2buf) Write(p []byte) (int, error) { return len(p), nil }
