// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import "math"

// Vec3 is a 3 element vector. Depending on context it is used as a point,
// a direction, or a color where X,Y,Z map to R,G,B.
type Vec3 struct {
	X, Y, Z float64
}

// Color is an alias for Vec3 used wherever a value represents radiance
// or reflectance rather than a point or direction.
type Color = Vec3

// V3 is shorthand for creating a Vec3 from its three components.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns v+a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub returns v-a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul returns the componentwise product v*a.
func (v Vec3) Mul(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns the negation of v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and a.
func (v Vec3) Dot(a Vec3) float64 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the squared Euclidean length of v.
func (v Vec3) LenSqr() float64 { return v.Dot(v) }

// Unit returns v normalized to unit length. Calling Unit on a zero vector
// returns a zero vector.
func (v Vec3) Unit() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// NearZero returns true if all components of v are within Epsilon of zero.
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < Epsilon && math.Abs(v.Y) < Epsilon && math.Abs(v.Z) < Epsilon
}

// Cross returns the cross product a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// Mix linearly interpolates componentwise between a and b by t.
func Mix(a, b Vec3, t float64) Vec3 {
	return Vec3{
		Lerp(a.X, b.X, t),
		Lerp(a.Y, b.Y, t),
		Lerp(a.Z, b.Z, t),
	}
}

// Reflect returns the reflection of direction d about the unit normal n.
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// Refract returns the refraction of unit direction d through the unit
// normal n given the ratio of indices of refraction etaOverEta.
func Refract(d, n Vec3, etaOverEta float64) Vec3 {
	cosTheta := math.Min(d.Neg().Dot(n), 1.0)
	rOutPerp := d.Add(n.Scale(cosTheta)).Scale(etaOverEta)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LenSqr())))
	return rOutPerp.Add(rOutParallel)
}

// White is the identity color (1,1,1).
var White = Vec3{1, 1, 1}

// Black is the zero color (0,0,0).
var Black = Vec3{0, 0, 0}
