// This file declares Vertex, Edge, Graph, sentinel errors, and the
// NewGraph constructor. Methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. All maps in this
// library key by ID, so identity equality falls out of map semantics.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents a directed connection between two vertices.
//
// Edges are unweighted: each one contributes exactly 1 to the length of any
// path that traverses it. From is informational; traversal follows To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// Graph is the core in-memory directed graph structure.
//
// Parallel edges and self-loops are permitted. The adjacency index keeps
// outgoing edge IDs in attachment order; Neighbors preserves that order.
// mu guards vertices, edges, and adjacency together.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64             // monotonically increasing edge ID source
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[(from)Vertex.ID] = edge IDs in insertion order
	adjacency map[string][]string
}

// NewGraph creates an empty directed Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
}
