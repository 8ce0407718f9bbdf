package munge

import "math"

// Kernel identifies a spherically symmetric spectral smoothing kernel.
type Kernel int

const (
	// KernelTophat is the Fourier transform of a uniform sphere: a sharp
	// sphere in real space, 3*(sin(kR)/kR^3 - cos(kR)/kR^2) in k-space.
	KernelTophat Kernel = iota
	// KernelGaussian is a Gaussian of width R in real space, which stays a
	// Gaussian in k-space: exp(-(kR)^2/2).
	KernelGaussian
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelGaussian:
		return "gaussian"
	default:
		return "tophat"
	}
}

// Eval returns the window value at dimensionless radial wavenumber kR > 0.
// The kR = 0 cell is never evaluated; callers leave the DC term untouched.
func (k Kernel) Eval(kR float64) float64 {
	switch k {
	case KernelGaussian:
		return math.Exp(-0.5 * kR * kR)
	default:
		return 3 * (math.Sin(kR)/(kR*kR*kR) - math.Cos(kR)/(kR*kR))
	}
}
