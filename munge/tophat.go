package munge

import (
	"fmt"
	"math"

	"github.com/meraxes-devs/dragons/grid"
)

// TophatFilter multiplies a Fourier-space field by the spherical tophat
// window of the given real-space radius, in place.
//
// The spectrum must have rank 3 with equal extents along the first two axes
// and the third axis in the Hermitian half-spectrum convention (only
// non-negative frequencies stored). For each cell the radial wavenumber
// kR = sqrt(k_i^2 + k_j^2 + k_r^2) * radius is computed from the frequency
// axes 2*pi*n/sideLength; cells with kR > 0 have their real and imaginary
// components each scaled by 3*(sin(kR)/kR^3 - cos(kR)/kR^2). The kR = 0
// cell (the DC term) is left untouched, which matches the kR -> 0 limit of
// the window. With radius = 0 the whole grid is left unmodified.
//
// A rank other than 3 is a validation error and leaves the data unchanged.
func TophatFilter(s *grid.Spectrum, sideLength, radius float64) error {
	return applySpectralKernel(s, sideLength, radius, KernelTophat)
}

func applySpectralKernel(s *grid.Spectrum, sideLength, radius float64, kernel Kernel) error {
	if s == nil {
		return ErrNilGrid
	}

	if s.Rank() != 3 {
		return fmt.Errorf("%w: got rank %d", ErrNot3D, s.Rank())
	}

	if s.Shape[0] != s.Shape[1] {
		return fmt.Errorf("%w: shape %v", ErrNotCubic, s.Shape)
	}

	if sideLength <= 0 {
		return fmt.Errorf("munge: box side length must be > 0: %g", sideLength)
	}

	k := freqAxis(s.Shape[0], sideLength)
	kr := halfFreqAxis(s.Shape[2], sideLength)

	idx := 0
	for ii := range s.Shape[0] {
		ki2 := k[ii] * k[ii]

		for jj := range s.Shape[1] {
			kij2 := ki2 + k[jj]*k[jj]

			for kk := range s.Shape[2] {
				kR := math.Sqrt(kij2+kr[kk]*kr[kk]) * radius
				if kR > 0 {
					// Componentwise real scaling, not complex multiplication.
					val := kernel.Eval(kR)
					c := s.Data[idx]
					s.Data[idx] = complex(real(c)*val, imag(c)*val)
				}

				idx++
			}
		}
	}

	return nil
}

// freqAxis returns the full signed angular frequency axis for an FFT of
// length dim over a box of physical side boxSide: 2*pi*n/boxSide with the
// signed cycle index n in standard FFT order (0, 1, ..., -1).
func freqAxis(dim int, boxSide float64) []float64 {
	out := make([]float64, dim)
	for i := range out {
		n := i
		if i >= (dim+1)/2 {
			n = i - dim
		}

		out[i] = 2 * math.Pi * float64(n) / boxSide
	}

	return out
}

// halfFreqAxis returns the non-negative angular frequency axis of length n
// used for the Hermitian half-spectrum axis.
func halfFreqAxis(n int, boxSide float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / boxSide
	}

	return out
}
