package hull_test

import (
	"fmt"

	"github.com/katalvlaran/lvhull/hull"
	"github.com/katalvlaran/lvhull/vector"
)

func ExampleBuild() {
	points := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	h, err := hull.Build(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(h.Len())
	fmt.Println(h.Dimension())
	fmt.Println(h.Contains(vector.New(0.25, 0.75)))
	fmt.Println(h.Contains(vector.New(1.5, 0.5)))
	// Output:
	// 4
	// 2
	// true
	// false
}

func ExampleWithFacetBudget() {
	points := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}
	h, err := hull.Build(points, hull.WithFacetBudget(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(h.Len(), h.Complete())
	// Output:
	// 3 false
}

func ExampleHull_Facets() {
	h, err := hull.Build([][]float64{{1}, {4}, {2}, {3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, f := range h.Facets() {
		fmt.Println(f.Key())
	}
	// Output:
	// 1
	// 0
}
