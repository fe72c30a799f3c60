// Package core defines the central Graph, Vertex, and Edge types used by
// every algorithm in dagpath, and provides lock-guarded primitives for
// building and querying directed graphs.
//
// What:
//
//   - Vertex: identity-bearing node, keyed by a unique string ID. Two
//     Vertex instances with the same ID are the same vertex everywhere in
//     this library — equality is identity, never structure.
//   - Edge: directed, unweighted connection From→To. Every edge contributes
//     exactly one unit of length to a path.
//   - Graph: vertex and edge catalogs plus an adjacency index. Outgoing
//     edges are kept in the order they were attached, and Neighbors returns
//     them in exactly that order; higher-level traversals rely on it.
//
// Why:
//   - A minimal, deterministic substrate for longest-path computation and
//     DAG validation (see dagpath/longest and dagpath/dag).
//   - Parallel edges and self-loops are accepted rather than rejected: a
//     duplicate edge cannot change a maximum path length, and a self-loop
//     is simply the smallest cycle, which the analyzers report themselves.
//
// Concurrency:
//
//	All Graph methods are guarded by a single sync.RWMutex. Construction
//	and queries may be interleaved across goroutines; algorithms in this
//	module treat a Graph as frozen for the duration of a traversal.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core
