package rips_test

import (
	"fmt"

	"github.com/katalvlaran/tedea/metric"
	"github.com/katalvlaran/tedea/rips"
)

// ExampleNew demonstrates the hollow-square fixture: four points at the
// unit-square corners with radius 0.5 connect along the sides but not the
// diagonals, leaving one 1-dimensional hole.
func ExampleNew() {
	points := map[string][]float64{
		"A": {0, 0},
		"B": {1, 0},
		"C": {0, 1},
		"D": {1, 1},
	}

	c, err := rips.New(points, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dim:", c.Dim())
	fmt.Println("maximal:", c.MaximalSimplices())
	fmt.Println("betti:", c.BettiNumbers())
	// Output:
	// dim: 1
	// maximal: [[A B] [A C] [B D] [C D]]
	// betti: [1 1]
}

// ExampleWithMetric shows how the metric changes the topology of the same
// point set: under Chebyshev the square's diagonal has length 1, the graph
// completes, and the hole disappears.
func ExampleWithMetric() {
	points := map[string][]float64{
		"A": {0, 0},
		"B": {1, 0},
		"C": {0, 1},
		"D": {1, 1},
	}

	c, err := rips.New(points, 0.5, rips.WithMetric(metric.Chebyshev{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("maximal:", c.MaximalSimplices())
	fmt.Println("betti:", c.BettiNumbers())
	// Output:
	// maximal: [[A B C D]]
	// betti: [1 0 0 0]
}

// ExampleComplex_BoundaryMatrix prints ∂1 of the hollow square: one row per
// vertex, one column per edge, each column carrying its two endpoints.
func ExampleComplex_BoundaryMatrix() {
	points := map[string][]float64{
		"A": {0, 0},
		"B": {1, 0},
		"C": {0, 1},
		"D": {1, 1},
	}

	c, err := rips.New(points, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m := c.BoundaryMatrix(1)
	fmt.Println(m)
	fmt.Println("rank:", m.Rank())
	// Output:
	// 1100
	// 1010
	// 0101
	// 0011
	// rank: 3
}
