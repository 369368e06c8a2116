package testutil

import (
	"math/cmplx"
	"testing"
)

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if abs := real(a[i]); abs < -1 || abs > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestNoiseViewShape(t *testing.T) {
	v := NoiseView(3, 2, 3, 4)
	if v.Size() != 24 || v.Rank() != 3 {
		t.Fatalf("unexpected view: size %d rank %d", v.Size(), v.Rank())
	}
	RequireFinite(t, v.Flatten())
}

func TestReferenceDFTOfTone(t *testing.T) {
	const n, bin = 12, 5
	got := ReferenceDFT(ComplexTone(bin, n), false)
	want := Impulse(n, bin)
	for i := range want {
		want[i] *= n
	}
	RequireComplexNearlyEqual(t, got, want, 1e-9)
}

func TestReferenceDFTRoundTrip(t *testing.T) {
	x := DeterministicNoise(7, 1, 9)
	back := ReferenceDFT(ReferenceDFT(x, false), true)
	for i := range back {
		back[i] /= 9
	}
	RequireComplexNearlyEqual(t, back, x, 1e-12)
	if cmplx.Abs(back[0]-x[0]) > 1e-12 {
		t.Fatal("first element drifted")
	}
}
