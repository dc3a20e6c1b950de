package arc_test

import (
	"fmt"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/valuation"
)

func ExampleClassify() {
	d := valuation.Default()
	fmt.Println(arc.Classify(0.8, 0.5, d))
	fmt.Println(arc.Classify(1.2, 1.2, d))
	fmt.Println(arc.Classify(0.2, 0.1, d))
	// Output:
	// forward-soft
	// init
	// none
}

func ExampleCompute() {
	g := digraph.New(valuation.Default())
	_ = g.AddAction(digraph.Action{ID: "A"})
	_ = g.AddAction(digraph.Action{ID: "B"})
	_ = g.SetValue("A", "B", 0.8)
	_ = g.SetValue("B", "A", 0.5)

	fmt.Println("shown:", len(arc.Compute(g, false)))
	fmt.Println("hidden:", len(arc.Compute(g, true)))
	// Output:
	// shown: 1
	// hidden: 0
}
