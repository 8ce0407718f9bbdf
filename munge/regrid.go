package munge

import (
	"github.com/meraxes-devs/dragons/grid"
)

// Regrid maps src onto a freshly allocated cube with newDim cells per side
// by additive binning: every source cell (i, j, k) adds its value into
// destination cell (floor(i*s), floor(j*s), floor(k*s)) with
// s = newDim/oldDim. Multiple source cells landing in the same destination
// cell sum their contributions, so for newDim <= oldDim the total over all
// cells is conserved.
//
// newDim > oldDim is accepted but untested territory: the mapping is still
// well defined, but destination cells between the sparse images of the
// source cells stay zero. A warning is emitted through the diagnostic sink
// (see WithWarnFunc) and execution proceeds.
//
// The source grid is never modified.
func Regrid[T grid.Element](src *grid.Cube[T], newDim int, opts ...Option) (*grid.Cube[T], error) {
	if src == nil {
		return nil, ErrNilGrid
	}

	if err := validateTargetDim(newDim); err != nil {
		return nil, err
	}

	cfg := defaultConfig().applied(opts)

	oldDim := src.Dim
	if newDim > oldDim {
		cfg.warn("munge: regrid target %d^3 exceeds source %d^3; this regime is untested and leaves holes", newDim, oldDim)
	}

	out, err := grid.NewCube[T](newDim)
	if err != nil {
		return nil, err
	}

	scale := float64(newDim) / float64(oldDim)

	n := 0
	for i := range oldDim {
		di := int(float64(i) * scale)
		for j := range oldDim {
			dj := int(float64(j) * scale)
			row := (di*newDim + dj) * newDim

			for k := range oldDim {
				dk := int(float64(k) * scale)
				out.Data[row+dk] += src.Data[n]
				n++
			}
		}

		if cfg.progress != nil {
			cfg.progress(i+1, oldDim)
		}
	}

	return out, nil
}
