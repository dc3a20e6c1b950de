package xmcda_test

import (
	"fmt"
	"log"

	"github.com/matzehuels/valdigraph/pkg/digraph"
	"github.com/matzehuels/valdigraph/pkg/xmcda"
)

func ExampleMarshal() {
	g, _ := digraph.NewWithBounds(0, 1)
	_ = g.AddAction(digraph.Action{ID: "a"})
	_ = g.AddAction(digraph.Action{ID: "b"})
	_ = g.SetValue("a", "b", 0.75)

	data, err := xmcda.Marshal(g, xmcda.Metadata{})
	if err != nil {
		log.Fatal(err)
	}

	doc, err := xmcda.Unmarshal(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(doc.Graph.IDs())
	fmt.Println(doc.Graph.Value("a", "b"), doc.Graph.Value("b", "a"))
	// Output:
	// [a b]
	// 0.75 0.50
}
