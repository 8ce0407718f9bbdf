package munge

import (
	"errors"
	"fmt"
)

var (
	// ErrNot3D indicates a spectrum whose rank is not exactly 3.
	ErrNot3D = errors.New("munge: grid must have exactly 3 dimensions")
	// ErrNotCubic indicates a spectrum whose first two extents differ.
	ErrNotCubic = errors.New("munge: grid must be cubic along the first two axes")
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("munge: nil grid")
	// ErrEmptySample indicates an empty input sample.
	ErrEmptySample = errors.New("munge: empty sample")
)

func validateTargetDim(newDim int) error {
	if newDim <= 0 {
		return fmt.Errorf("munge: target side length must be > 0: %d", newDim)
	}

	return nil
}

func validateSmoothing(sideLength, radius float64) error {
	if sideLength <= 0 {
		return fmt.Errorf("munge: box side length must be > 0: %g", sideLength)
	}

	if radius < 0 {
		return fmt.Errorf("munge: smoothing radius must be >= 0: %g", radius)
	}

	return nil
}
