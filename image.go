// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import (
	"log"
	"math"
)

// Image is a fixed-size row-major RGB8 raster. It is used both as the
// engine's render target (an owned buffer filled pixel-by-pixel) and as
// the in-memory form of a texture loaded from disk (a borrowed buffer
// handed in by an ImageCodec). The distinction between the two is
// lifecycle only; the layout is identical.
type Image struct {
	Width, Height int
	Channels      int // always 3 (RGB).
	Pix           []uint8
}

// NewImage allocates a zeroed width x height x 3 RGB8 buffer.
func NewImage(width, height int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: 3,
		Pix:      make([]uint8, width*height*3),
	}
}

// outOfBounds is the diagnostic color returned by Get on a bad coordinate.
// It is a defensive fallback, never something calling code should rely on.
var outOfBounds = Color{1, 0, 1}

// Get returns the color at (x,y) with channels in [0,1]. Reading out of
// bounds logs a warning and returns magenta.
func (img *Image) Get(x, y int) Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		log.Printf("tracer: Image.Get out of bounds (%d,%d) on %dx%d image", x, y, img.Width, img.Height)
		return outOfBounds
	}
	i := (y*img.Width + x) * img.Channels
	return Color{
		float64(img.Pix[i]) / 255.0,
		float64(img.Pix[i+1]) / 255.0,
		float64(img.Pix[i+2]) / 255.0,
	}
}

// Set writes color c at (x,y), clamping both the coordinates and the
// per-channel color to valid ranges. When gamma is true each channel is
// encoded with c ← √c before quantization; the encode happens exactly
// once per write.
func (img *Image) Set(x, y int, c Color, gamma bool) {
	if x < 0 {
		x = 0
	}
	if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	if gamma {
		c = gammaEncode(c)
	}
	i := (y*img.Width + x) * img.Channels
	img.Pix[i] = quantize(c.X)
	img.Pix[i+1] = quantize(c.Y)
	img.Pix[i+2] = quantize(c.Z)
}

// gammaEncode applies componentwise c ← √c for c > 0, leaving non-positive
// channels untouched.
func gammaEncode(c Color) Color {
	return Color{gammaChannel(c.X), gammaChannel(c.Y), gammaChannel(c.Z)}
}

func gammaChannel(c float64) float64 {
	if c > 0 {
		return math.Sqrt(c)
	}
	return c
}

// quantize clamps c to [0,1] and maps it to an 8-bit channel value.
func quantize(c float64) uint8 {
	c = Clamp(c, 0, 1)
	return uint8(255.999 * c)
}
