package testutil

import (
	"fmt"
	"math/cmplx"
	"slices"
	"testing"

	"github.com/astrojhgu/fftn/ndarray"
)

// Widen converts complex64 or complex128 data to complex128.
func Widen[T complex64 | complex128](s []T) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex128(v)
	}
	return out
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps (absolute, by modulus).
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireViewNearlyEqual fails t unless got and want have the same shape and
// agree element-wise (row-major) within eps.
func RequireViewNearlyEqual[T complex64 | complex128](t *testing.T, got, want *ndarray.View[T], eps float64) {
	t.Helper()
	if !slices.Equal(got.Shape(), want.Shape()) {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}
	RequireComplexNearlyEqual(t, Widen(got.Flatten()), Widen(want.Flatten()), eps)
}

// RequireFinite fails t if any element has a NaN or Inf component.
func RequireFinite(t *testing.T, data []complex128) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest modulus of a[i]-b[i].
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := cmplx.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
