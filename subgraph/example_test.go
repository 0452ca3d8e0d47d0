package subgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvpattern/matrix"
	"github.com/katalvlaran/lvpattern/subgraph"
)

// ExampleFindAllEmbeddings finds every directed edge of a 3-cycle.
func ExampleFindAllEmbeddings() {
	source := matrix.MustDense([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
	edge := matrix.MustDense([][]int{
		{0, 1},
		{0, 0},
	})

	matches, err := subgraph.FindAllEmbeddings(source, edge, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range matches.Sorted() {
		fmt.Println(a)
	}
	// Output:
	// [0 1]
	// [1 2]
	// [2 0]
}

// ExampleWalk stops after the first match.
func ExampleWalk() {
	source := matrix.MustDense([][]int{
		{0, 3, 3},
		{0, 0, 3},
		{0, 0, 0},
	})
	edge := matrix.MustDense([][]int{
		{0, 3},
		{0, 0},
	})

	stats, err := subgraph.Walk(source, edge, func(a subgraph.Assignment) error {
		fmt.Println("first:", a)
		return subgraph.ErrStopSearch
	})
	fmt.Println(stats.Matches, err)
	// Output:
	// first: [0 1]
	// 1 <nil>
}
