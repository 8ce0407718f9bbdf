package munge

import (
	"errors"
	"math"
	"testing"

	"github.com/meraxes-devs/dragons/internal/testutil"
)

func TestSmoothConstantGrid(t *testing.T) {
	// Smoothing a uniform field changes nothing: only the DC mode is
	// populated and the kernel leaves it alone.
	g := testutil.OnesCube[float64](32)

	out, err := Smooth(g, 100.0, 30.0)
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	testutil.RequireCubeNearlyConstant(t, out, 1.0, 1e-10)
}

func TestSmoothConstantGridGaussian(t *testing.T) {
	g := testutil.OnesCube[float64](16)

	out, err := Smooth(g, 100.0, 30.0, WithKernel(KernelGaussian))
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	testutil.RequireCubeNearlyConstant(t, out, 1.0, 1e-10)
}

func TestSmoothPreservesMean(t *testing.T) {
	g := testutil.NoiseCube(5, 16, 1.0)

	out, err := Smooth(g, 50.0, 10.0)
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	if got, want := out.Mean(), g.Mean(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("mean = %v, want %v", got, want)
	}
}

func TestSmoothZeroRadiusRoundTrip(t *testing.T) {
	// radius 0 reduces Smooth to a bare FFT round trip.
	g := testutil.NoiseCube(9, 16, 1.0)

	out, err := Smooth(g, 50.0, 0.0)
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	testutil.RequireCubeNearlyEqual(t, out, g, 1e-10)
}

func TestSmoothReducesVariance(t *testing.T) {
	g := testutil.NoiseCube(13, 16, 1.0)

	out, err := Smooth(g, 100.0, 20.0)
	if err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	varOf := func(data []float64) float64 {
		var mean float64
		for _, v := range data {
			mean += v
		}
		mean /= float64(len(data))

		var ss float64
		for _, v := range data {
			d := v - mean
			ss += d * d
		}

		return ss / float64(len(data))
	}

	if got, orig := varOf(out.Data), varOf(g.Data); got >= orig {
		t.Fatalf("variance %v not reduced from %v", got, orig)
	}
}

func TestSmoothDoesNotModifyInput(t *testing.T) {
	g := testutil.NoiseCube(21, 8, 1.0)
	orig := g.Clone()

	if _, err := Smooth(g, 10.0, 2.0); err != nil {
		t.Fatalf("Smooth error: %v", err)
	}

	for i := range g.Data {
		if g.Data[i] != orig.Data[i] {
			t.Fatalf("input modified at cell %d", i)
		}
	}
}

func TestSmoothInvalidArgs(t *testing.T) {
	g := testutil.OnesCube[float64](8)

	if _, err := Smooth(nil, 10, 1); !errors.Is(err, ErrNilGrid) {
		t.Fatalf("nil grid: got %v, want ErrNilGrid", err)
	}

	if _, err := Smooth(g, 0, 1); err == nil {
		t.Fatal("expected error for zero side length")
	}

	if _, err := Smooth(g, 10, -1); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestSmoothRejectsNonPowerOfTwo(t *testing.T) {
	g := testutil.OnesCube[float64](12)

	if _, err := Smooth(g, 10, 1); err == nil {
		t.Fatal("expected error for non power-of-two side")
	}
}
