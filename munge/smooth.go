package munge

import (
	"github.com/meraxes-devs/dragons/fourier"
	"github.com/meraxes-devs/dragons/grid"
)

// Smooth convolves a real cubic grid with a spherically symmetric kernel of
// the given real-space radius and returns the smoothed grid. sideLength is
// the physical box side the grid samples.
//
// The grid is transformed to Fourier space, multiplied by the spectral
// kernel (tophat by default, see WithKernel), and transformed back. Since
// the kernel leaves the DC term untouched, the grid mean is preserved; a
// constant grid comes back unchanged up to FFT rounding.
//
// The input grid is not modified. The grid side must be a power of two
// (FFT backend plan constraint).
func Smooth(g *grid.Cube[float64], sideLength, radius float64, opts ...Option) (*grid.Cube[float64], error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	if err := validateSmoothing(sideLength, radius); err != nil {
		return nil, err
	}

	cfg := defaultConfig().applied(opts)

	s, err := fourier.Forward(g)
	if err != nil {
		return nil, err
	}

	if err := applySpectralKernel(s, sideLength, radius, cfg.kernel); err != nil {
		return nil, err
	}

	return fourier.Inverse(s)
}
