package munge_test

import (
	"fmt"

	"github.com/meraxes-devs/dragons/grid"
	"github.com/meraxes-devs/dragons/munge"
)

func ExampleRegrid() {
	src, _ := grid.NewCube[float32](4)
	src.Fill(1)

	out, _ := munge.Regrid(src, 2)
	fmt.Printf("dim=%d cell=%v total=%v\n", out.Dim, out.At(0, 0, 0), out.Total())

	// Output:
	// dim=2 cell=8 total=64
}

func ExampleTophatFilter() {
	s, _ := grid.NewHalfSpectrum(8)
	s.Fill(1 + 1i)

	_ = munge.TophatFilter(s, 8.0, 1.0)
	fmt.Printf("dc=%v\n", s.At3(0, 0, 0))

	// Output:
	// dc=(1+1i)
}

func ExampleEdgesToCenters() {
	centers, width, _ := munge.EdgesToCenters([]float64{0, 2, 4})
	fmt.Printf("centers=%v width=%v\n", centers, width)

	// Output:
	// centers=[1 3] width=2
}

func ExampleDescribe() {
	s, _ := munge.Describe([]float64{1, 2, 3, 4})
	fmt.Printf("n=%d mean=%.1f min=%v max=%v\n", s.N, s.Mean, s.Min, s.Max)

	// Output:
	// n=4 mean=2.5 min=1 max=4
}
