// Package fourier provides 3D real-to-complex Fourier transforms for cubic
// grids, in the Hermitian half-spectrum convention used by the munge
// spectral filters.
//
// The package does not implement FFT itself. It composes 1D complex plans
// from the algo-fft backend along each axis, so grid side lengths are
// restricted to the sizes the backend plans support (powers of two).
package fourier
