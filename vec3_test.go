// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func vecApproxEq(a, b Vec3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestVec3AddSub(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	if !vecApproxEq(a.Add(b), V3(5, 7, 9)) {
		t.Error("Add mismatch")
	}
	if !vecApproxEq(b.Sub(a), V3(3, 3, 3)) {
		t.Error("Sub mismatch")
	}
}

func TestVec3DotCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	if Dot(x, y) != 0 {
		t.Error("orthogonal vectors should have zero dot product")
	}
	if !vecApproxEq(Cross(x, y), V3(0, 0, 1)) {
		t.Error("x cross y should be z")
	}
}

func TestVec3Unit(t *testing.T) {
	v := V3(3, 4, 0).Unit()
	if !approxEq(v.Len(), 1) {
		t.Errorf("expected unit length, got %v", v.Len())
	}
	if vu := V3(0, 0, 0).Unit(); !vecApproxEq(vu, V3(0, 0, 0)) {
		t.Error("Unit of zero vector should stay zero, not NaN")
	}
}

func TestVec3NearZero(t *testing.T) {
	if !V3(0, 0, 0).NearZero() {
		t.Error("zero vector should be near zero")
	}
	if V3(1, 0, 0).NearZero() {
		t.Error("unit vector should not be near zero")
	}
}

func TestReflect(t *testing.T) {
	d := V3(1, -1, 0)
	n := V3(0, 1, 0)
	r := Reflect(d, n)
	if !vecApproxEq(r, V3(1, 1, 0)) {
		t.Errorf("expected (1,1,0), got %v", r)
	}
}

func TestMix(t *testing.T) {
	a := Black
	b := White
	m := Mix(a, b, 0.5)
	if !vecApproxEq(m, V3(0.5, 0.5, 0.5)) {
		t.Errorf("expected midpoint gray, got %v", m)
	}
}
