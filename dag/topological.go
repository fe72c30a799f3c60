// Package dag implements topological ordering and acyclicity checks over
// core.Graph using three-color depth-first search.
package dag

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

// Visitation states for the three-color DFS.
const (
	white = iota // not yet visited
	gray         // on the recursion stack
	black        // fully explored
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrCycleDetected indicates that the graph contains a directed cycle,
	// so no topological ordering exists.
	ErrCycleDetected = errors.New("dag: cycle detected")
)

// Option configures optional behavior for TopologicalSort and IsAcyclic.
type Option func(*options)

// options holds traversal settings, currently only cancellation.
type options struct {
	ctx context.Context
}

// defaultOptions returns the default settings (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// sorter encapsulates state for one topological traversal.
type sorter struct {
	graph *core.Graph
	opts  options
	state map[string]int // vertex ID → white/gray/black
	order []string       // post-order accumulator
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Disconnected components are covered: DFS restarts from every unvisited
// vertex in lexicographic ID order, which makes the output deterministic
// for a fixed graph.
//
// Returns ErrNilGraph for a nil graph and ErrCycleDetected when any back
// edge exists. Parallel edges are harmless; a self-loop is a cycle.
//
// Complexity: O(V + E)
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply optional settings.
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize traversal state with capacity hints.
	verts := g.Vertices()
	s := &sorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}

	// 4. Drive DFS from every unvisited vertex.
	for _, v := range verts {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 5. Reverse post-order to produce the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// IsAcyclic reports whether g contains no directed cycle. A nil graph is an
// error, not a trivially acyclic input.
// Complexity: O(V + E)
func IsAcyclic(g *core.Graph, opts ...Option) (bool, error) {
	_, err := TopologicalSort(g, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrCycleDetected):
		return false, nil
	default:
		return false, err
	}
}

// visit performs DFS from id, marking states and detecting back edges.
func (s *sorter) visit(id string) error {
	// 1. Cancellation check at entry.
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}

	// 2. Gray re-entry is a back edge: cycle.
	if s.state[id] == gray {
		return fmt.Errorf("%w: involving vertex %q", ErrCycleDetected, id)
	}

	// 3. Already fully explored? Nothing to do.
	if s.state[id] == black {
		return nil
	}

	// 4. Mark in progress.
	s.state[id] = gray

	// 5. Recurse into every outgoing edge.
	edges, err := s.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dag: Neighbors(%q): %w", id, err)
	}
	for _, e := range edges {
		if err = s.visit(e.To); err != nil {
			return err
		}
	}

	// 6. Mark fully explored, record post-order.
	s.state[id] = black
	s.order = append(s.order, id)

	return nil
}
