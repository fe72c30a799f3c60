package longest_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/longest"
)

// ExampleLongestPath demonstrates the one-shot entry point on a layered DAG.
// Graph structure:
//
//	1 → 2 → 5 → 6 → 7
//	1 → 3 → 7
//	1 → 4 → 7,  4 → 3
//
// The longest path from 1 runs through 2, 5 and 6: four edges.
func ExampleLongestPath() {
	g := core.NewGraph()
	for _, edge := range []struct{ U, V string }{
		{"1", "2"}, {"1", "3"}, {"1", "4"},
		{"2", "5"}, {"3", "7"}, {"4", "3"}, {"4", "7"},
		{"5", "6"}, {"6", "7"},
	} {
		// AddEdge creates the vertices as needed; errors are impossible for
		// non-empty IDs, so they are ignored here for brevity.
		_, _ = g.AddEdge(edge.U, edge.V)
	}

	length, err := longest.LongestPath(g, "1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("longest path from 1:", length)

	// Output:
	// longest path from 1: 4
}

// ExampleEngine_LongestPath shows one Engine serving every start vertex of
// the same graph: sub-paths settled by earlier calls are reused by later
// ones, exactly like a single shared cache.
func ExampleEngine_LongestPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")

	e := longest.New()
	for _, start := range g.Vertices() {
		length, err := e.LongestPath(g, start)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("longest path from %s: %d\n", start, length)
	}

	// Output:
	// longest path from a: 2
	// longest path from b: 1
	// longest path from c: 0
}

// ExampleCycleError demonstrates cycle diagnostics: errors.Is matches the
// sentinel, errors.As recovers the vertex at which the cycle closed.
func ExampleCycleError() {
	g := core.NewGraph()
	_, _ = g.AddEdge("x", "y")
	_, _ = g.AddEdge("y", "x")

	_, err := longest.LongestPath(g, "x")
	fmt.Println("is cycle:", errors.Is(err, longest.ErrCycleDetected))

	var ce *longest.CycleError
	if errors.As(err, &ce) {
		fmt.Println("re-entered at:", ce.VertexID)
	}

	// Output:
	// is cycle: true
	// re-entered at: x
}
