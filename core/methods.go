// This file implements all Graph mutation and query methods.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Neighbors()/NeighborIDs() return edges in attachment order.
package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge attaches a directed edge from → to and returns its generated ID.
// Both endpoints are created if absent. Parallel edges and self-loops are
// accepted; a duplicate edge is stored as its own Edge record.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1. Validate endpoint IDs before touching any state.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2. Materialize both endpoints (idempotent).
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 3. Allocate a unique edge ID and register the edge.
	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}

	// 4. Append to the source's adjacency list, preserving attachment order.
	g.adjacency[from] = append(g.adjacency[from], eid)

	return eid, nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, eid := range g.adjacency[from] {
		if g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// Neighbors returns copies of all outgoing edges of id, in the order the
// edges were attached. Returns ErrVertexNotFound if id does not exist.
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		e := *g.edges[eid] // copy so callers cannot mutate catalog state
		out = append(out, &e)
	}

	return out, nil
}

// NeighborIDs returns the target vertex IDs of all outgoing edges of id,
// in attachment order, duplicates included.
// Complexity: O(deg(id))
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid].To)
	}

	return out, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges, sorted by edge ID for stable output.
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, stored := range g.edges {
		e := *stored
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, parallel edges counted separately.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clear removes all vertices and edges, keeping the Graph usable.
// Complexity: O(1) (old maps are released to GC)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string][]string)
	g.nextEdgeID = 0
}

// Clone returns a deep copy of the Graph: new catalogs, new Vertex and Edge
// records, same IDs and same adjacency order. Mutating the clone never
// affects the original.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.nextEdgeID = g.nextEdgeID

	for id := range g.vertices {
		c.vertices[id] = &Vertex{ID: id}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, eids := range g.adjacency {
		c.adjacency[from] = append([]string(nil), eids...)
	}

	return c
}

// ensureVertex registers id if absent. Caller must hold mu for writing.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
}
