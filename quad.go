// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import "math"

// Quad is a planar parallelogram anchored at Q and spanned by the edge
// vectors U and V. Setting OneSided discards hits against the back face
// instead of shading them, which is how one-sided light-emitting quads
// avoid lighting the scene from both sides.
//
// Prepare must be called once, single-threaded, before the first Hit —
// Scene.Prepare does this for every quad in a scene. Hit itself only
// reads the precomputed plane basis, so it is safe to call concurrently
// from the render worker pool.
type Quad struct {
	Q, U, V  Vec3
	Mat      Material
	OneSided bool

	normal Vec3
	d      float64
	w      Vec3
}

// Prepare derives the plane's normal, offset, and the w vector used for
// the planar alpha/beta interior test.
func (q *Quad) Prepare() {
	n := Cross(q.U, q.V)
	q.normal = n.Unit()
	q.d = q.normal.Dot(q.Q)
	q.w = n.Scale(1 / n.Dot(n))
}

func (q *Quad) Hit(r Ray, tSpan Interval, info *HitInfo) bool {
	denom := q.normal.Dot(r.Dir)
	if math.Abs(denom) < Epsilon {
		return false
	}
	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !tSpan.Contains(t) {
		return false
	}

	intersection := r.At(t)
	hp := intersection.Sub(q.Q)
	alpha := q.w.Dot(Cross(hp, q.V))
	beta := q.w.Dot(Cross(q.U, hp))
	if !quadInterior(alpha, beta) {
		return false
	}

	info.Tval = t
	info.P = intersection
	info.U, info.V = alpha, beta
	info.SetFaceNormal(r, q.normal)
	if q.OneSided && !info.FrontFace {
		return false
	}
	info.T = q.U.Unit()
	info.B = Cross(q.normal, info.T)
	info.Mat = q.Mat
	return true
}

// quadInterior reports whether the planar coordinates (alpha,beta) fall
// within the unit square that bounds the quad.
func quadInterior(alpha, beta float64) bool {
	return alpha >= 0 && alpha <= 1 && beta >= 0 && beta <= 1
}
