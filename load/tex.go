// Copyright © 2025-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

// tex.go decodes texture images into linear color and writes
// display images back out. PNG and JPEG come from the standard
// library; TIFF support comes from golang.org/x/image.

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	_ "image/jpeg" // register .jpg decoding.

	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register .tif decoding.

	"github.com/gazed/lux/math/lin"
)

// ImageData is a decoded texture image in linear color.
type ImageData struct {
	Width  int
	Height int
	Pixels []lin.V4 // row-major linear RGBA.
}

// Img decodes a png, jpeg or tiff stream into linear color.
func Img(r io.Reader) (*ImageData, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("Img: decode %w", err)
	}
	b := src.Bounds()
	img := &ImageData{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: make([]lin.V4, b.Dx()*b.Dy()),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, a16 := src.At(x, y).RGBA()
			img.Pixels[i] = lin.V4{
				X: srgbToLinear(float32(r16) / 0xffff),
				Y: srgbToLinear(float32(g16) / 0xffff),
				Z: srgbToLinear(float32(b16) / 0xffff),
				W: float32(a16) / 0xffff,
			}
			i++
		}
	}
	return img, nil
}

// Downscale resamples an image with bilinear filtering. Environment
// importance tables do not need full resolution: a small table keeps
// preparation fast without visibly changing the sampling.
func Downscale(img *ImageData, w, h int) *ImageData {
	src := image.NewRGBA64(image.Rect(0, 0, img.Width, img.Height))
	i := 0
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixels[i]
			src.SetRGBA64(x, y, color.RGBA64{
				R: unit16(p.X), G: unit16(p.Y), B: unit16(p.Z), A: unit16(p.W),
			})
			i++
		}
	}
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := &ImageData{Width: w, Height: h, Pixels: make([]lin.V4, w*h)}
	i = 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := dst.RGBA64At(x, y)
			out.Pixels[i] = lin.V4{
				X: float32(c.R) / 0xffff,
				Y: float32(c.G) / 0xffff,
				Z: float32(c.B) / 0xffff,
				W: float32(c.A) / 0xffff,
			}
			i++
		}
	}
	return out
}

// WritePng writes a linear float image as an 8 bit sRGB png,
// clamping out of range radiance.
func WritePng(w io.Writer, width, height int, pixels []lin.V4) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height {
		return fmt.Errorf("WritePng: inconsistent image %dx%d with %d pixels",
			width, height, len(pixels))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[i]
			img.SetNRGBA(x, y, color.NRGBA{
				R: unit8(linearToSrgb(p.X)),
				G: unit8(linearToSrgb(p.Y)),
				B: unit8(linearToSrgb(p.Z)),
				A: unit8(p.W),
			})
			i++
		}
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("WritePng: encode %w", err)
	}
	return nil
}

// srgbToLinear undoes the sRGB transfer curve.
func srgbToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return lin.Pow((c+0.055)/1.055, 2.4)
}

// linearToSrgb applies the sRGB transfer curve.
func linearToSrgb(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*lin.Pow(c, 1/2.4) - 0.055
}

// unit8 clamps a 0..1 float to an 8 bit channel.
func unit8(c float32) uint8 {
	return uint8(lin.Saturate(c)*255 + 0.5)
}

// unit16 clamps a 0..1 float to a 16 bit channel.
func unit16(c float32) uint16 {
	return uint16(lin.Saturate(c)*0xffff + 0.5)
}
