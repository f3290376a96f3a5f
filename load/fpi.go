// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// fpi.go reads and writes the float point image format used to
// snapshot render buffers without losing precision. The stream is
// gzip compressed; inside, neighbouring pixels are XOR-delta coded
// so slowly varying images collapse to small varints.

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/gazed/lux/math/lin"
)

// Float image format versions.
const (
	// FpiVersionRaw stores size then raw little endian floats.
	FpiVersionRaw int32 = 0
	// FpiVersionDelta stores size then per pixel four varint u32s,
	// each the XOR of the current and previous pixel's IEEE-754
	// bits, row-major. The pixel before the first is zero.
	FpiVersionDelta int32 = 1
)

// FloatImageData is a decoded float image: a row-major grid of
// linear RGBA values.
type FloatImageData struct {
	Width  int
	Height int
	Pixels []lin.V4 // len is Width*Height.
}

// Fpi decodes a float point image stream.
func Fpi(r io.Reader) (*FloatImageData, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("Fpi: gzip %w", err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var version int32
	if err = binary.Read(br, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("Fpi: version %w", err)
	}
	w, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("Fpi: width %w", err)
	}
	h, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, fmt.Errorf("Fpi: height %w", err)
	}
	if w == 0 || h == 0 || w*h > 1<<28 {
		return nil, fmt.Errorf("Fpi: unreasonable size %dx%d", w, h)
	}
	img := &FloatImageData{Width: int(w), Height: int(h), Pixels: make([]lin.V4, w*h)}

	switch version {
	case FpiVersionRaw:
		for i := range img.Pixels {
			var raw [4]float32
			if err = binary.Read(br, binary.LittleEndian, &raw); err != nil {
				return nil, fmt.Errorf("Fpi: pixel %d %w", i, err)
			}
			img.Pixels[i] = lin.V4{X: raw[0], Y: raw[1], Z: raw[2], W: raw[3]}
		}
	case FpiVersionDelta:
		var prev [4]uint32
		for i := range img.Pixels {
			var bits [4]uint32
			for c := 0; c < 4; c++ {
				delta, err := binary.ReadUvarint(br)
				if err != nil {
					return nil, fmt.Errorf("Fpi: pixel %d %w", i, err)
				}
				if delta > math.MaxUint32 {
					return nil, fmt.Errorf("Fpi: pixel %d delta overflow", i)
				}
				bits[c] = prev[c] ^ uint32(delta)
			}
			prev = bits
			img.Pixels[i] = lin.V4{
				X: math.Float32frombits(bits[0]),
				Y: math.Float32frombits(bits[1]),
				Z: math.Float32frombits(bits[2]),
				W: math.Float32frombits(bits[3]),
			}
		}
	default:
		return nil, fmt.Errorf("Fpi: unsupported version %d", version)
	}
	return img, nil
}

// WriteFpi encodes a float image with the XOR-delta format.
func WriteFpi(w io.Writer, img *FloatImageData) error {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) != img.Width*img.Height {
		return fmt.Errorf("WriteFpi: inconsistent image %dx%d with %d pixels",
			img.Width, img.Height, len(img.Pixels))
	}
	zw := gzip.NewWriter(w)
	bw := bufio.NewWriter(zw)

	if err := binary.Write(bw, binary.LittleEndian, FpiVersionDelta); err != nil {
		return fmt.Errorf("WriteFpi: version %w", err)
	}
	var scratch [binary.MaxVarintLen64]byte
	putUvarint := func(v uint64) error {
		n := binary.PutUvarint(scratch[:], v)
		_, err := bw.Write(scratch[:n])
		return err
	}
	if err := putUvarint(uint64(img.Width)); err != nil {
		return fmt.Errorf("WriteFpi: width %w", err)
	}
	if err := putUvarint(uint64(img.Height)); err != nil {
		return fmt.Errorf("WriteFpi: height %w", err)
	}

	var prev [4]uint32
	for i := range img.Pixels {
		p := &img.Pixels[i]
		bits := [4]uint32{
			math.Float32bits(p.X),
			math.Float32bits(p.Y),
			math.Float32bits(p.Z),
			math.Float32bits(p.W),
		}
		for c := 0; c < 4; c++ {
			if err := putUvarint(uint64(prev[c] ^ bits[c])); err != nil {
				return fmt.Errorf("WriteFpi: pixel %d %w", i, err)
			}
		}
		prev = bits
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteFpi: flush %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("WriteFpi: gzip %w", err)
	}
	return nil
}
