package grid

import (
	"math"
	"testing"
)

func TestNewCube(t *testing.T) {
	c, err := NewCube[float32](4)
	if err != nil {
		t.Fatalf("NewCube error: %v", err)
	}

	if c.Dim != 4 || len(c.Data) != 64 {
		t.Fatalf("unexpected shape: dim=%d len=%d", c.Dim, len(c.Data))
	}

	for i, v := range c.Data {
		if v != 0 {
			t.Fatalf("cell %d = %v, want 0", i, v)
		}
	}
}

func TestNewCubeInvalidDim(t *testing.T) {
	for _, dim := range []int{0, -1} {
		if _, err := NewCube[float64](dim); err == nil {
			t.Fatalf("NewCube(%d): expected error", dim)
		}
	}
}

func TestFromSlice(t *testing.T) {
	data := make([]float64, 8)

	c, err := FromSlice(2, data)
	if err != nil {
		t.Fatalf("FromSlice error: %v", err)
	}

	// No copy: writes through the cube must be visible in the buffer.
	c.Set(1, 1, 1, 5)
	if data[7] != 5 {
		t.Fatalf("FromSlice copied the buffer: data[7]=%v", data[7])
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice(2, make([]float64, 7)); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestCubeAccessors(t *testing.T) {
	c, _ := NewCube[float64](3)

	c.Set(1, 2, 0, 1.5)
	if got := c.At(1, 2, 0); got != 1.5 {
		t.Fatalf("At(1,2,0) = %v, want 1.5", got)
	}

	c.Add(1, 2, 0, 0.5)
	if got := c.At(1, 2, 0); got != 2 {
		t.Fatalf("after Add: At(1,2,0) = %v, want 2", got)
	}

	// Row-major layout: (i, j, k) maps to (i*dim+j)*dim+k.
	if c.Data[(1*3+2)*3+0] != 2 {
		t.Fatal("flat layout does not match documented indexing")
	}
}

func TestCubeCloneIndependence(t *testing.T) {
	c, _ := NewCube[float32](2)
	c.Fill(1)

	d := c.Clone()
	d.Set(0, 0, 0, 9)

	if c.At(0, 0, 0) != 1 {
		t.Fatal("Clone shares storage with the source")
	}
}

func TestCubeTotalAndMean(t *testing.T) {
	c, _ := NewCube[float64](2)
	c.Fill(0.5)

	if got := c.Total(); math.Abs(got-4) > 1e-12 {
		t.Fatalf("Total = %v, want 4", got)
	}

	if got := c.Mean(); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("Mean = %v, want 0.5", got)
	}
}

func TestNewSpectrum(t *testing.T) {
	s, err := NewSpectrum(2, 3, 4)
	if err != nil {
		t.Fatalf("NewSpectrum error: %v", err)
	}

	if s.Rank() != 3 || s.Len() != 24 {
		t.Fatalf("unexpected spectrum: rank=%d len=%d", s.Rank(), s.Len())
	}
}

func TestNewSpectrumInvalid(t *testing.T) {
	if _, err := NewSpectrum(); err == nil {
		t.Fatal("expected error for empty shape")
	}

	if _, err := NewSpectrum(2, 0, 2); err == nil {
		t.Fatal("expected error for zero extent")
	}
}

func TestNewHalfSpectrum(t *testing.T) {
	s, err := NewHalfSpectrum(8)
	if err != nil {
		t.Fatalf("NewHalfSpectrum error: %v", err)
	}

	want := []int{8, 8, 5}
	for i, n := range want {
		if s.Shape[i] != n {
			t.Fatalf("shape[%d] = %d, want %d", i, s.Shape[i], n)
		}
	}
}

func TestSpectrumAccessors(t *testing.T) {
	s, _ := NewSpectrum(2, 2, 2)

	s.Set3(1, 0, 1, 2+3i)
	if got := s.At3(1, 0, 1); got != 2+3i {
		t.Fatalf("At3(1,0,1) = %v, want (2+3i)", got)
	}

	if s.Data[(1*2+0)*2+1] != 2+3i {
		t.Fatal("flat layout does not match documented indexing")
	}
}

func TestSpectrumCloneIndependence(t *testing.T) {
	s, _ := NewSpectrum(2, 2)
	s.Fill(1 + 1i)

	c := s.Clone()
	c.Data[0] = 0
	c.Shape[0] = 9

	if s.Data[0] != 1+1i || s.Shape[0] != 2 {
		t.Fatal("Clone shares storage with the source")
	}
}
