package longest_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dagpath/core"
	"github.com/katalvlaran/dagpath/longest"
)

// benchChain builds a directed chain N0 → N1 → … → Nn.
func benchChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1))
	}

	return g
}

// BenchmarkLongestPath_Chain10000_Cold measures a full cold-cache traversal
// of a 10,000-edge chain. Each iteration pays the whole O(V+E) cost because
// a fresh Engine starts with an empty cache.
func BenchmarkLongestPath_Chain10000_Cold(b *testing.B) {
	g := benchChain(10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = longest.LongestPath(g, "N0")
	}
}

// BenchmarkLongestPath_Chain10000_Warm measures repeat calls against an
// Engine whose cache is already settled: each call is a single map lookup
// plus validation, independent of graph size.
func BenchmarkLongestPath_Chain10000_Warm(b *testing.B) {
	g := benchChain(10000)
	e := longest.New()
	if _, err := e.LongestPath(g, "N0"); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.LongestPath(g, "N0")
	}
}

// BenchmarkLongestPath_Diamond measures a small reconverging DAG where
// memoization pays off within a single traversal (shared suffix paths).
func BenchmarkLongestPath_Diamond(b *testing.B) {
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"1", "2"}, {"1", "3"}, {"1", "4"},
		{"2", "5"}, {"3", "7"}, {"4", "3"}, {"4", "7"},
		{"5", "6"}, {"6", "7"},
	} {
		_, _ = g.AddEdge(pair[0], pair[1])
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = longest.LongestPath(g, "1")
	}
}
