// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tracer

import "testing"

func TestRandomUnitVecIsUnit(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := rng.RandomUnitVec()
		if !approxEq(v.Len(), 1) {
			t.Fatalf("RandomUnitVec returned non-unit vector %v (len %v)", v, v.Len())
		}
	}
}

func TestRandomOnDiskStaysInUnitDisk(t *testing.T) {
	rng := NewRNG(2)
	for i := 0; i < 1000; i++ {
		p := rng.RandomOnDisk()
		if p.Z != 0 {
			t.Fatalf("RandomOnDisk should stay in the XY plane, got z=%v", p.Z)
		}
		if p.LenSqr() >= 1 {
			t.Fatalf("RandomOnDisk point %v outside unit disk", p)
		}
	}
}

func TestRandomInStratifiedSquareStaysInCell(t *testing.T) {
	rng := NewRNG(3)
	size := 1.0 / 4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			x, y := rng.RandomInStratifiedSquare(i, j, size)
			loX := float64(i)*size - 0.5
			loY := float64(j)*size - 0.5
			if x < loX || x > loX+size || y < loY || y > loY+size {
				t.Fatalf("stratum (%d,%d) sample (%v,%v) escaped its cell", i, j, x, y)
			}
		}
	}
}

func TestSameSeedReproducesSequence(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 10; i++ {
		if a.Random() != b.Random() {
			t.Fatal("two RNGs with the same seed diverged")
		}
	}
}

func TestSchlickReflectanceAtNormalIncidence(t *testing.T) {
	// At cos(theta)=1 the Schlick approximation reduces to r0 exactly.
	eta := 1.0 / 1.5
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	got := SchlickReflectance(1, eta)
	if !approxEq(got, r0) {
		t.Errorf("expected r0=%v at normal incidence, got %v", r0, got)
	}
}
