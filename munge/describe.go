package munge

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the distribution of a sample.
type Stats struct {
	N        int
	Min      float64
	Max      float64
	Mean     float64
	Variance float64 // unbiased sample variance
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Describe computes summary statistics of a sample in a single call.
func Describe(x []float64) (Stats, error) {
	if len(x) == 0 {
		return Stats{}, ErrEmptySample
	}

	return Stats{
		N:        len(x),
		Min:      floats.Min(x),
		Max:      floats.Max(x),
		Mean:     stat.Mean(x, nil),
		Variance: stat.Variance(x, nil),
		Skewness: stat.Skew(x, nil),
		Kurtosis: stat.ExKurtosis(x, nil),
	}, nil
}
