package grid

import "fmt"

// Spectrum is a dense complex-valued array of arbitrary rank stored flat in
// row-major order. Fourier-space fields from real-to-complex transforms use
// the Hermitian half-spectrum shape (d, d, d/2+1), but the rank is carried
// explicitly so that consumers can validate it.
type Spectrum struct {
	Shape []int
	Data  []complex128
}

// NewSpectrum allocates a zero-initialized spectrum with the given shape.
func NewSpectrum(shape ...int) (*Spectrum, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("grid: spectrum shape must not be empty")
	}

	size := 1
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("grid: spectrum extents must be > 0: %v", shape)
		}

		size *= n
	}

	s := &Spectrum{
		Shape: append([]int(nil), shape...),
		Data:  make([]complex128, size),
	}

	return s, nil
}

// NewHalfSpectrum allocates the half-spectrum shape (dim, dim, dim/2+1) for
// a real-to-complex transform of a cubic grid with the given side length.
func NewHalfSpectrum(dim int) (*Spectrum, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("grid: side length must be > 0: %d", dim)
	}

	return NewSpectrum(dim, dim, dim/2+1)
}

// Rank returns the number of dimensions.
func (s *Spectrum) Rank() int { return len(s.Shape) }

// Len returns the total number of cells.
func (s *Spectrum) Len() int { return len(s.Data) }

// At3 returns the value at (i, j, k). The spectrum must have rank 3.
func (s *Spectrum) At3(i, j, k int) complex128 {
	return s.Data[(i*s.Shape[1]+j)*s.Shape[2]+k]
}

// Set3 stores v at (i, j, k). The spectrum must have rank 3.
func (s *Spectrum) Set3(i, j, k int, v complex128) {
	s.Data[(i*s.Shape[1]+j)*s.Shape[2]+k] = v
}

// Fill sets every cell to v.
func (s *Spectrum) Fill(v complex128) {
	for i := range s.Data {
		s.Data[i] = v
	}
}

// Clone returns an independently owned copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	data := make([]complex128, len(s.Data))
	copy(data, s.Data)

	return &Spectrum{
		Shape: append([]int(nil), s.Shape...),
		Data:  data,
	}
}
