// Package longest computes the longest directed path, measured in edges,
// reachable from a start vertex of a core.Graph — and detects cycles along
// the way, because a longest path is only well-defined when the reachable
// subgraph is acyclic.
//
// What:
//
//   - Engine: owns a memoization cache (vertex ID → longest-path length)
//     that survives across calls, so shared sub-paths are computed once per
//     graph session. ClearCache starts a fresh session.
//   - LongestPath: depth-first search that tracks the active recursion path;
//     re-entering a vertex still on that path aborts the whole call with a
//     *CycleError naming the re-entered vertex.
//   - A package-level LongestPath convenience runs one-shot with a private
//     cache.
//
// Why:
//   - Critical-path analysis on dependency graphs (build systems, task
//     schedulers, course prerequisites): "how deep does this chain go?"
//   - Doubling as a cheap acyclicity probe for the reachable component.
//
// Cache discipline:
//
//	The cache is written only when a vertex's computation completes, after
//	backtracking. A call aborted by a cycle (or a hook error, or
//	cancellation) leaves no entries for vertices that were still on the
//	active path, so the cache never holds partial results and a retry from
//	a cycle-free start vertex on the same Engine stays correct. One mutex
//	serializes traversals and ClearCache against a shared Engine;
//	independent Engines never contend.
//
// Complexity:
//
//   - Time:   O(V + E) per session; cache hits make repeat calls O(1) per
//     settled vertex.
//   - Memory: O(V) for the cache and the active-path set, plus recursion
//     stack bounded by the longest simple path.
//
// Options:
//
//   - WithContext(ctx)   cooperative cancellation, checked at vertex entry.
//   - WithOnVisit(fn)    hook fired when a vertex is expanded (not on cache
//     hits); an error from the hook aborts the call.
//
// Errors:
//
//   - ErrNilGraph             graph pointer is nil.
//   - ErrEmptyStart           start vertex ID is empty.
//   - ErrStartVertexNotFound  start vertex is absent from the graph.
//   - ErrCycleDetected        sentinel matched by every *CycleError.
//   - context.Canceled        traversal canceled via WithContext.
package longest
