// Package munge provides common post-processing routines for simulation
// grid and catalogue data.
//
// The two grid kernels are Regrid, which rebins a cubic grid onto a
// different resolution by additive binning, and TophatFilter, which applies
// the spherical tophat window to a Fourier-space field in place. Smooth
// combines the two Fourier transforms from the fourier package with a
// spectral kernel to smooth a real-space grid.
//
// The catalogue helpers (MassFunction, Describe, EdgesToCenters) operate on
// plain float64 samples and carry no simulation semantics of their own.
package munge
