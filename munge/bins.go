package munge

import "fmt"

// EdgesToCenters converts evenly spaced bin edges to bin centers, also
// returning the bin width.
func EdgesToCenters(edges []float64) (centers []float64, width float64, err error) {
	if len(edges) < 2 {
		return nil, 0, fmt.Errorf("munge: need at least 2 bin edges: %d", len(edges))
	}

	width = edges[1] - edges[0]

	centers = make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = edges[i] + width*0.5
	}

	return centers, width, nil
}
