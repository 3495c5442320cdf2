// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

// HitInfo is filled in by a successful intersection test. It carries
// everything downstream shading needs: the hit point, the shading frame
// (N, T, B), the surface parameterization (u,v), the ray parameter t, the
// front/back face flag, and the material struck.
type HitInfo struct {
	P         Vec3     // hit point.
	N         Vec3     // unit shading normal, flipped to face the ray.
	T, B      Vec3     // unit tangent/bitangent for normal mapping; zero if unused.
	Tval      float64  // ray parameter at the hit.
	U, V      float64  // surface UV in [0,1]².
	FrontFace bool     // true if the ray hit the outward face.
	Mat       Material // material of the hit primitive; non-owning reference.
}

// SetFaceNormal orients N to oppose the ray direction and records whether
// the hit was against the outward-facing side of the surface. outNormal
// must be a unit vector.
func (hi *HitInfo) SetFaceNormal(r Ray, outNormal Vec3) {
	hi.FrontFace = r.Dir.Dot(outNormal) < 0
	if hi.FrontFace {
		hi.N = outNormal
	} else {
		hi.N = outNormal.Neg()
	}
}

// Hittable is anything a ray can intersect: Sphere, Quad, and Scene
// (which aggregates the other two). This is the tagged union the spec
// describes, expressed as a Go interface over a closed set of concrete
// types rather than a runtime type tag.
type Hittable interface {
	// Hit tests the ray against the surface within tSpan, filling info and
	// returning true on an intersection closer than any previous one
	// tested against this same interval.
	Hit(r Ray, tSpan Interval, info *HitInfo) bool
}

// tangentFromNormal derives a tangent/bitangent pair from a unit surface
// normal using the world-up axis as a reference. Degenerates to a zero
// pair at the poles, which is acceptable: normal mapping is never
// required to be artifact-free at a UV singularity.
func tangentFromNormal(n Vec3) (t, b Vec3) {
	up := Vec3{0, 1, 0}
	t = Cross(up, n)
	if t.NearZero() {
		return Vec3{}, Vec3{}
	}
	t = t.Unit()
	b = Cross(n, t)
	return t, b
}
