// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package imgio loads and saves the tracer's RGB8 image buffers as PNG
// files. It is the one place in the module that touches the filesystem
// for image data, keeping the core tracer package free of I/O concerns.
package imgio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazed/tracer"
)

// Load reads a PNG file from path and converts it to a tracer.Image.
func Load(path string) (*tracer.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &tracer.IoError{Path: path, Err: err}
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, &tracer.IoError{Path: path, Err: fmt.Errorf("decode png: %w", err)}
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	img := tracer.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Pix[(y*w+x)*3+0] = uint8(r >> 8)
			img.Pix[(y*w+x)*3+1] = uint8(g >> 8)
			img.Pix[(y*w+x)*3+2] = uint8(b >> 8)
		}
	}
	return img, nil
}

// Save writes img to path as a PNG, appending a .png extension if path
// doesn't already carry an image extension.
func Save(img *tracer.Image, path string) error {
	if !hasImageExt(path) {
		path += ".png"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &tracer.IoError{Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &tracer.IoError{Path: path, Err: err}
	}
	defer f.Close()

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * img.Channels
			di := dst.PixOffset(x, y)
			dst.Pix[di+0] = img.Pix[i+0]
			dst.Pix[di+1] = img.Pix[i+1]
			dst.Pix[di+2] = img.Pix[i+2]
			dst.Pix[di+3] = 255
		}
	}

	if err := png.Encode(f, dst); err != nil {
		return &tracer.IoError{Path: path, Err: fmt.Errorf("encode png: %w", err)}
	}
	return nil
}

func hasImageExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
