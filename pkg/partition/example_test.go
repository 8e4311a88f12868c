package partition_test

import (
	"fmt"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/partition"
)

func ExampleRefine() {
	g := graph.Path(5)
	p := partition.Refine(g, partition.Unit(5))
	fmt.Println(p)
	fmt.Println("target cell:", p.TargetCell())
	// Output:
	// [0 4 | 2 | 1 3]
	// target cell: 0
}

func ExampleIndividualize() {
	g := graph.Path(5)
	p := partition.Refine(g, partition.Unit(5))
	q, err := partition.Individualize(g, p, 0, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)
	fmt.Println("discrete:", q.IsDiscrete())
	// Output:
	// [0 | 4 | 2 | 3 | 1]
	// discrete: true
}
