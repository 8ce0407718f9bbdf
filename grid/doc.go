// Package grid provides dense 3D array types for simulation grid data.
//
// Cube holds real-valued cubic grids in a flat row-major buffer. Spectrum
// holds complex-valued arrays of arbitrary rank and is the storage for
// Fourier-space fields, most commonly in the Hermitian half-spectrum layout
// produced by real-to-complex transforms.
//
// The package intentionally does not implement any processing itself. It is
// the shared data model for the munge and fourier packages.
package grid
