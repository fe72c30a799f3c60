package dag_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/dag"
)

// ExampleTopologicalSort orders a small build-dependency graph:
// compile → link → package, with tests depending on compile.
func ExampleTopologicalSort() {
	g := core.NewGraph()
	_, _ = g.AddEdge("compile", "link")
	_, _ = g.AddEdge("link", "package")
	_, _ = g.AddEdge("compile", "test")

	order, err := dag.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(strings.Join(order, " "))

	// Output:
	// compile test link package
}

// ExampleIsAcyclic probes a graph before scheduling work on it.
func ExampleIsAcyclic() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "a")

	ok, _ := dag.IsAcyclic(g)
	fmt.Println("acyclic:", ok)

	// Output:
	// acyclic: false
}
