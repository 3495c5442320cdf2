// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import (
	"math"
	"math/rand"
)

// RNG is a per-worker uniform random source. Samplers never share an RNG
// across goroutines; each row worker owns one (see renderer.go).
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded with the given value. Two RNGs created with
// the same seed produce the same sample sequence.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Random returns a uniform float64 in [0,1).
func (g *RNG) Random() float64 { return g.r.Float64() }

// RandomRange returns a uniform float64 in [a,b).
func (g *RNG) RandomRange(a, b float64) float64 { return a + (b-a)*g.Random() }

// RandomInSquare returns a random point in [-½,½]².
func (g *RNG) RandomInSquare() (x, y float64) {
	return g.Random() - 0.5, g.Random() - 0.5
}

// RandomInStratifiedSquare returns a point in the (i,j) stratum of a pixel
// square subdivided into cells of the given size, offset so strata tile
// [-½,½]².
func (g *RNG) RandomInStratifiedSquare(i, j int, size float64) (x, y float64) {
	x = (float64(i)+g.Random())*size - 0.5
	y = (float64(j)+g.Random())*size - 0.5
	return x, y
}

// RandomUnitVec returns a uniformly distributed unit vector, found by
// rejection sampling the unit ball. This is the only acceptable algorithm:
// substituting a cosine-biased hemisphere sampler changes the statistics
// of every material that calls it.
func (g *RNG) RandomUnitVec() Vec3 {
	for {
		v := Vec3{
			g.RandomRange(-1, 1),
			g.RandomRange(-1, 1),
			g.RandomRange(-1, 1),
		}
		lenSq := v.LenSqr()
		if lenSq > 1e-160 && lenSq <= 1 {
			return v.Scale(1 / math.Sqrt(lenSq))
		}
	}
}

// RandomOnDisk returns a point uniformly distributed on the unit disk in
// the XY plane (Z is always 0), found by rejection sampling.
func (g *RNG) RandomOnDisk() Vec3 {
	for {
		p := Vec3{g.RandomRange(-1, 1), g.RandomRange(-1, 1), 0}
		if p.LenSqr() < 1 {
			return p
		}
	}
}

// SchlickReflectance computes the Schlick approximation to the Fresnel
// reflectance at the given cosine of the incident angle and relative
// index of refraction eta.
func SchlickReflectance(cos, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
