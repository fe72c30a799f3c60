package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagpath/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	assert.NoError(t, g.AddVertex("A"))
	assert.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.HasEdge("A", "B"))
	// Directed: the reverse edge does not exist.
	assert.False(t, g.HasEdge("B", "A"))
}

func TestAddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Equal(t, 0, g.VertexCount(), "failed AddEdge must not create vertices")
}

func TestAddEdge_ParallelAndLoop(t *testing.T) {
	g := core.NewGraph()
	e1, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	e2, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	assert.NotEqual(t, e1, e2, "parallel edges get distinct IDs")

	_, err = g.AddEdge("A", "A")
	require.NoError(t, err, "self-loops are accepted, analyzers reject them later")
	assert.Equal(t, 3, g.EdgeCount())
}

func TestNeighbors_AttachmentOrder(t *testing.T) {
	g := core.NewGraph()
	// Attach out of lexicographic order on purpose.
	for _, to := range []string{"C", "A", "B", "A"} {
		_, err := g.AddEdge("X", to)
		require.NoError(t, err)
	}

	ids, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B", "A"}, ids, "order is attachment order, duplicates kept")

	edges, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, "X", e.From)
		assert.Equal(t, ids[i], e.To)
	}
}

func TestNeighbors_VertexNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_ReturnsCopies(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	edges[0].To = "Z" // mutate the returned copy

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, "B", again[0].To, "catalog state must be unaffected")
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

func TestClear_ResetsEverything(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex("A"))

	// The graph stays usable after Clear.
	_, err = g.AddEdge("A", "B")
	assert.NoError(t, err)
}

func TestClone_Independence(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	_, err = c.AddEdge("C", "D")
	require.NoError(t, err)
	assert.False(t, g.HasVertex("D"), "clone mutation must not leak into the original")

	ids, err := c.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, ids, "clone preserves adjacency order")
}
