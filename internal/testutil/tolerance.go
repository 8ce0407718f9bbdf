package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/meraxes-devs/dragons/grid"
)

// RequireCubeNearlyEqual fails t if got and want differ in side length or
// if any cell pair exceeds eps (absolute tolerance).
func RequireCubeNearlyEqual(t *testing.T, got, want *grid.Cube[float64], eps float64) {
	t.Helper()

	if got.Dim != want.Dim {
		t.Fatalf("side length mismatch: got %d, want %d", got.Dim, want.Dim)
	}

	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps {
			t.Fatalf("cell %d: got %v, want %v (diff %v > eps %v)", i, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireCubeNearlyConstant fails t if any cell differs from value by more
// than eps.
func RequireCubeNearlyConstant(t *testing.T, got *grid.Cube[float64], value, eps float64) {
	t.Helper()

	for i, v := range got.Data {
		if math.Abs(v-value) > eps {
			t.Fatalf("cell %d: got %v, want constant %v (eps %v)", i, v, value, eps)
		}
	}
}

// MaxAbsDiffComplex returns the maximum componentwise absolute difference
// between two complex slices. Returns an error on length mismatch.
func MaxAbsDiffComplex(a, b []complex128) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0

	for i := range a {
		if d := math.Abs(real(a[i]) - real(b[i])); d > maxDiff {
			maxDiff = d
		}

		if d := math.Abs(imag(a[i]) - imag(b[i])); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
