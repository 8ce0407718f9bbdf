package testutil

import (
	"math/rand"

	"github.com/meraxes-devs/dragons/grid"
)

// ConstantCube returns a dim^3 cube with every cell set to value.
func ConstantCube[T grid.Element](dim int, value T) *grid.Cube[T] {
	c, err := grid.NewCube[T](dim)
	if err != nil {
		panic(err)
	}

	c.Fill(value)

	return c
}

// OnesCube returns a dim^3 cube of ones.
func OnesCube[T grid.Element](dim int) *grid.Cube[T] {
	return ConstantCube[T](dim, 1)
}

// NoiseCube returns a dim^3 cube of deterministic pseudo-random values in
// [0, amplitude) generated from a fixed seed for reproducibility.
func NoiseCube(seed int64, dim int, amplitude float64) *grid.Cube[float64] {
	c, err := grid.NewCube[float64](dim)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range c.Data {
		c.Data[i] = rng.Float64() * amplitude
	}

	return c
}

// NoiseSample returns n deterministic pseudo-random values in [0, amplitude).
func NoiseSample(seed int64, n int, amplitude float64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64() * amplitude
	}

	return out
}

// ConstantSpectrum returns a (dim, dim, dim/2+1) half spectrum with every
// cell set to value.
func ConstantSpectrum(dim int, value complex128) *grid.Spectrum {
	s, err := grid.NewHalfSpectrum(dim)
	if err != nil {
		panic(err)
	}

	s.Fill(value)

	return s
}
