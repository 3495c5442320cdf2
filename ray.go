// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

// Ray is a parametric line: origin plus a direction, not required to be
// of unit length. Callers that need a unit direction normalize it
// themselves.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Interval is a closed scalar range [Min, Max] used to bound a ray
// parameter t.
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains no values: Min > Max by construction.
func EmptyInterval() Interval { return Interval{Min: Infinity, Max: -Infinity} }

// FullInterval contains every finite value.
func FullInterval() Interval { return Interval{Min: -Infinity, Max: Infinity} }

// Contains reports whether x lies in the closed interval [Min, Max].
func (iv Interval) Contains(x float64) bool { return iv.Min <= x && x <= iv.Max }

// Surrounds reports whether x lies strictly inside (Min, Max). Used where
// a boundary hit (t at exactly Min) would re-intersect the same surface.
func (iv Interval) Surrounds(x float64) bool { return iv.Min < x && x < iv.Max }

// Size returns Max - Min.
func (iv Interval) Size() float64 { return iv.Max - iv.Min }
