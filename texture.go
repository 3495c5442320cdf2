// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import "math"

// Texture is anything that can be sampled for a color at a surface point.
// Like Hittable and Material, this is the spec's tagged union expressed as
// an interface over a closed set of concrete types: SolidTexture,
// Checker3DTexture, CheckerUVTexture, ImageTexture, CubemapTexture.
type Texture interface {
	// Sample returns the color at surface UV (u,v) and world point p. dir
	// is only meaningful for CubemapTexture, where it is the sampling
	// direction rather than a surface point; other textures ignore it.
	Sample(u, v float64, p, dir Vec3) Color
}

// SolidTexture is a constant color, independent of u, v, or p.
type SolidTexture struct {
	Value Color
}

func (t SolidTexture) Sample(u, v float64, p, dir Vec3) Color { return t.Value }

// Checker3DTexture alternates between two child textures based on the
// parity of floor(Scale·p.X)+floor(Scale·p.Y)+floor(Scale·p.Z), giving a
// checker pattern that is stable in world space regardless of surface
// parameterization.
type Checker3DTexture struct {
	Scale    float64
	Even, Odd Texture
}

func (t Checker3DTexture) Sample(u, v float64, p, dir Vec3) Color {
	x := int(math.Floor(t.Scale * p.X))
	y := int(math.Floor(t.Scale * p.Y))
	z := int(math.Floor(t.Scale * p.Z))
	if (x+y+z)%2 == 0 {
		return t.Even.Sample(u, v, p, dir)
	}
	return t.Odd.Sample(u, v, p, dir)
}

// CheckerUVTexture is the same alternation as Checker3DTexture but driven
// by the surface UV instead of world position, so the pattern follows the
// parameterization (useful on curved surfaces like spheres).
type CheckerUVTexture struct {
	Scale     float64
	Even, Odd Texture
}

func (t CheckerUVTexture) Sample(u, v float64, p, dir Vec3) Color {
	x := int(math.Floor(u * t.Scale))
	y := int(math.Floor(v * t.Scale))
	if (x+y)%2 == 0 {
		return t.Even.Sample(u, v, p, dir)
	}
	return t.Odd.Sample(u, v, p, dir)
}

// ImageTexture samples a loaded raster by wrapping UV to its fractional
// part (so values outside [0,1] repeat the texture) and mapping that
// fraction to pixel coordinates over [0,width-1]x[0,height-1], with V
// flipped since image row 0 is the top of the image but v=0 is
// conventionally the bottom of a texture.
type ImageTexture struct {
	Img *Image
}

func (t ImageTexture) Sample(u, v float64, p, dir Vec3) Color {
	if t.Img == nil || t.Img.Width <= 0 || t.Img.Height <= 0 {
		return Color{0, 1, 1}
	}
	u = frac(u)
	v = 1 - frac(v)
	x := int(u * float64(t.Img.Width-1))
	y := int(v * float64(t.Img.Height-1))
	return t.Img.Get(x, y)
}

// frac returns the fractional part of x, always in [0,1) even for
// negative x, matching the repeat/tiling behavior of std::modf-based UV
// wrapping.
func frac(x float64) float64 {
	f := x - math.Floor(x)
	if f < 0 {
		f += 1
	}
	return f
}

// cubeFace names the six faces of a CubemapTexture in the order they are
// stored: +X, -X, +Y, -Y, +Z, -Z.
type cubeFace int

const (
	facePosX cubeFace = iota
	faceNegX
	facePosY
	faceNegY
	facePosZ
	faceNegZ
)

// CubemapTexture samples one of six rasters, selected by the axis of dir
// with the largest magnitude, with the remaining two axes remapped to a
// per-face UV. This is used exclusively as a skybox/background texture;
// its u,v parameters are ignored in favor of dir.
type CubemapTexture struct {
	Faces [6]*Image // indexed by cubeFace.
}

func (t CubemapTexture) Sample(u, v float64, p, dir Vec3) Color {
	face, faceU, faceV := selectCubeFace(dir)
	img := t.Faces[face]
	if img == nil {
		return Color{0, 1, 1}
	}
	return ImageTexture{Img: img}.Sample(faceU, faceV, p, dir)
}

// selectCubeFace picks the face struck by dir and returns the per-face UV
// in [0,1]², built from the two minor axis components divided by the
// major axis magnitude. On the four side faces (±X, ±Z) v is 0 at the +Y
// edge and grows toward -Y.
func selectCubeFace(dir Vec3) (face cubeFace, u, v float64) {
	ax, ay, az := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	switch {
	case ax >= ay && ax >= az:
		if dir.X > 0 {
			u, v = faceUV(-dir.Z, -dir.Y, ax)
			return facePosX, u, v
		}
		u, v = faceUV(dir.Z, -dir.Y, ax)
		return faceNegX, u, v
	case ay >= ax && ay >= az:
		if dir.Y > 0 {
			u, v = faceUV(dir.X, dir.Z, ay)
			return facePosY, u, v
		}
		u, v = faceUV(dir.X, -dir.Z, ay)
		return faceNegY, u, v
	default:
		if dir.Z > 0 {
			u, v = faceUV(dir.X, -dir.Y, az)
			return facePosZ, u, v
		}
		u, v = faceUV(-dir.X, -dir.Y, az)
		return faceNegZ, u, v
	}
}

// faceUV remaps the two minor axis components by the major axis magnitude
// into [0,1]².
func faceUV(sc, tc, maxAxis float64) (u, v float64) {
	u = 0.5 * (sc/maxAxis + 1)
	v = 0.5 * (tc/maxAxis + 1)
	return u, v
}
