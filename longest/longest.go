// Package longest implements the memoized longest-path DFS on core.Graph.
//
// Algorithm outline (per vertex):
//
//  1. active-path membership ⇒ *CycleError (checked before the cache: a
//     vertex cannot be both in progress and settled, and an in-progress hit
//     is precisely a cycle).
//  2. cache hit ⇒ return the settled length, no recursion.
//  3. otherwise mark active, take the maximum of child lengths + 1 over
//     outgoing edges in attachment order, backtrack, memoize, return.
//
// Per-vertex state machine: Unvisited → Active (on stack) → Settled
// (cached). Re-entering Active is the cycle condition and is terminal.
package longest

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/dagpath/core"
)

// Engine owns a memoization cache spanning one graph session. The zero
// value is not usable; construct with New. One Engine may serve many
// LongestPath calls against the same graph; call ClearCache before reusing
// it for a different graph, otherwise colliding vertex IDs would silently
// resurrect stale lengths.
type Engine struct {
	mu   sync.Mutex     // serializes traversals and cache access
	memo map[string]int // vertex ID → settled longest-path length
}

// New creates an Engine with an empty cache.
// Complexity: O(1)
func New() *Engine {
	return &Engine{memo: make(map[string]int)}
}

// LongestPath computes the maximum number of edges in any directed path
// beginning at startID. It returns 0 if startID has no outgoing edges.
//
// Validation (in order, before any traversal or cache mutation):
//  1. g must be non-nil (ErrNilGraph).
//  2. startID must be non-empty (ErrEmptyStart).
//  3. startID must exist in g (ErrStartVertexNotFound).
//
// A cycle reachable from startID aborts the call with a *CycleError; no
// partial result is returned and no in-flight vertex is cached. Results for
// every vertex settled during the call are cached on the Engine as a side
// effect, so later calls over shared sub-paths return without exploring.
//
// Complexity: O(V + E) over the not-yet-settled reachable component.
func (e *Engine) LongestPath(g *core.Graph, startID string, opts ...Option) (int, error) {
	// 1) Validate arguments, fail fast with the InvalidArgument class.
	if g == nil {
		return 0, ErrNilGraph
	}
	if startID == "" {
		return 0, ErrEmptyStart
	}
	if !g.HasVertex(startID) {
		return 0, ErrStartVertexNotFound
	}

	// 2) Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3) Serialize against the shared cache for the whole traversal.
	e.mu.Lock()
	defer e.mu.Unlock()

	// 4) Run the DFS with a fresh active-path set; the set lives only for
	//    this top-level call, the memo map outlives it.
	w := &walker{
		graph:  g,
		opts:   o,
		memo:   e.memo,
		active: make(map[string]struct{}),
	}

	return w.visit(startID)
}

// ClearCache drops all memoized lengths. Call it before pointing the same
// Engine at a logically distinct graph. Always succeeds.
// Complexity: O(1) (the old map is released to GC)
func (e *Engine) ClearCache() {
	e.mu.Lock()
	e.memo = make(map[string]int)
	e.mu.Unlock()
}

// CacheLen reports how many vertices currently have settled lengths.
// Useful for diagnostics and tests; never required for correctness.
func (e *Engine) CacheLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.memo)
}

// LongestPath is the one-shot convenience: a private Engine, a single call.
// Use an explicit Engine when several calls should share memoized results.
func LongestPath(g *core.Graph, startID string, opts ...Option) (int, error) {
	return New().LongestPath(g, startID, opts...)
}

// walker carries per-call DFS state over the Engine's cache.
type walker struct {
	graph  *core.Graph
	opts   Options
	memo   map[string]int      // shared with the Engine, mutated on settle
	active map[string]struct{} // vertices currently on the recursion stack
}

// visit returns the longest-path length from id, settling and caching every
// vertex it finishes. Invariant: id is added to active before any recursion
// and removed on every non-error return path; error unwinds leave active
// entries behind, which is harmless because the set dies with the call.
func (w *walker) visit(id string) (int, error) {
	// 1) Cancellation check at vertex entry.
	select {
	case <-w.opts.Ctx.Done():
		return 0, w.opts.Ctx.Err()
	default:
	}

	// 2) Active-path check takes precedence over the cache: re-entry while
	//    in progress is exactly the cycle condition.
	if _, onPath := w.active[id]; onPath {
		return 0, &CycleError{VertexID: id}
	}

	// 3) Settled already? Return without recursion or active-path mutation.
	if length, ok := w.memo[id]; ok {
		return length, nil
	}

	// 4) Expansion hook (fires only for real work).
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return 0, fmt.Errorf("longest: OnVisit hook for %q: %w", id, err)
		}
	}

	// 5) Mark in progress.
	w.active[id] = struct{}{}

	// 6) Explore outgoing edges in attachment order. Ties between branches
	//    are irrelevant: only the length is reported.
	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("longest: Neighbors(%q): %w", id, err)
	}

	longest := 0
	var viaNeighbor int
	for _, edge := range edges {
		// Skip edges whose target is absent; the boundary contract treats
		// them as non-traversable, not as errors.
		if edge.To == "" || !w.graph.HasVertex(edge.To) {
			continue
		}
		if viaNeighbor, err = w.visit(edge.To); err != nil {
			return 0, err
		}
		if viaNeighbor+1 > longest {
			longest = viaNeighbor + 1
		}
	}

	// 7) Backtrack before settling: revisiting id via a different branch of
	//    the DFS is legal and must not look like a cycle.
	delete(w.active, id)

	// 8) Settle: first write wins and is never overwritten, because every
	//    later visit short-circuits at step 3.
	w.memo[id] = longest

	return longest, nil
}
