package fourier

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/meraxes-devs/dragons/grid"
)

var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("fourier: nil grid")
	// ErrNotPowerOfTwo indicates a grid side the FFT backend cannot plan.
	ErrNotPowerOfTwo = errors.New("fourier: grid side must be a power of two")
	// ErrBadShape indicates a spectrum that is not a cubic half spectrum.
	ErrBadShape = errors.New("fourier: spectrum shape is not a cubic half spectrum")
)

// planner is the slice of the FFT backend plan surface this package uses.
type planner interface {
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

func newPlan(dim int) (planner, error) {
	plan, err := algofft.NewPlan64(dim)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}

	return plan, nil
}

// Forward computes the 3D Fourier transform of a real cubic grid.
//
// The result has shape (d, d, d/2+1): only the non-negative frequencies
// along the last axis are stored, the remaining half being the complex
// conjugate mirror. The forward transform is unnormalized, so the (0,0,0)
// bin equals the sum over all grid cells.
func Forward(g *grid.Cube[float64]) (*grid.Spectrum, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	d := g.Dim
	if d&(d-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, d)
	}

	plan, err := newPlan(d)
	if err != nil {
		return nil, err
	}

	nz := d/2 + 1

	out, err := grid.NewSpectrum(d, d, nz)
	if err != nil {
		return nil, err
	}

	row := make([]complex128, d)
	buf := make([]complex128, d)

	// Last axis: real rows to half-spectrum rows.
	for i := range d {
		for j := range d {
			base := (i*d + j) * d
			for k := range d {
				row[k] = complex(g.Data[base+k], 0)
			}

			if err := plan.Forward(buf, row); err != nil {
				return nil, fmt.Errorf("fourier: %w", err)
			}

			copy(out.Data[(i*d+j)*nz:(i*d+j)*nz+nz], buf[:nz])
		}
	}

	// Remaining axes are full complex transforms over strided columns.
	if err := transformAxis(plan, out.Data, d, nz, 1, false); err != nil {
		return nil, err
	}

	if err := transformAxis(plan, out.Data, d, nz, 0, false); err != nil {
		return nil, err
	}

	return out, nil
}

// Inverse computes the inverse transform of a half spectrum produced by
// Forward, returning the real cubic grid. The input spectrum is not
// modified. The inverse is normalized so that Inverse(Forward(g)) == g up
// to floating-point rounding.
func Inverse(s *grid.Spectrum) (*grid.Cube[float64], error) {
	if s == nil {
		return nil, ErrNilGrid
	}

	if s.Rank() != 3 || s.Shape[0] != s.Shape[1] || s.Shape[2] != s.Shape[0]/2+1 {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, s.Shape)
	}

	d := s.Shape[0]
	if d&(d-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, d)
	}

	plan, err := newPlan(d)
	if err != nil {
		return nil, err
	}

	nz := s.Shape[2]

	work := make([]complex128, len(s.Data))
	copy(work, s.Data)

	if err := transformAxis(plan, work, d, nz, 0, true); err != nil {
		return nil, err
	}

	if err := transformAxis(plan, work, d, nz, 1, true); err != nil {
		return nil, err
	}

	out, err := grid.NewCube[float64](d)
	if err != nil {
		return nil, err
	}

	row := make([]complex128, d)
	buf := make([]complex128, d)

	// Reconstruct the negative frequencies along the last axis from the
	// Hermitian mirror, then finish with a full inverse transform per row.
	for i := range d {
		for j := range d {
			base := (i*d + j) * nz
			for k := range nz {
				row[k] = work[base+k]
			}

			for k := nz; k < d; k++ {
				row[k] = cmplx.Conj(work[base+d-k])
			}

			if err := plan.Inverse(buf, row); err != nil {
				return nil, fmt.Errorf("fourier: %w", err)
			}

			obase := (i*d + j) * d
			for k := range d {
				out.Data[obase+k] = real(buf[k])
			}
		}
	}

	return out, nil
}

// transformAxis applies the 1D transform along axis 0 or 1 of data shaped
// (d, d, nz), gathering and scattering the strided columns through a
// contiguous scratch buffer.
func transformAxis(plan planner, data []complex128, d, nz, axis int, inverse bool) error {
	stride := nz
	if axis == 0 {
		stride = d * nz
	}

	src := make([]complex128, d)
	dst := make([]complex128, d)

	for a := range d {
		for b := range nz {
			var base int
			if axis == 0 {
				base = a*nz + b
			} else {
				base = a*d*nz + b
			}

			for n := range d {
				src[n] = data[base+n*stride]
			}

			var err error
			if inverse {
				err = plan.Inverse(dst, src)
			} else {
				err = plan.Forward(dst, src)
			}

			if err != nil {
				return fmt.Errorf("fourier: %w", err)
			}

			for n := range d {
				data[base+n*stride] = dst[n]
			}
		}
	}

	return nil
}
