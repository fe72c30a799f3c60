// Package dagpath is a small, dependency-free toolkit for reasoning about
// directed graphs by edge count: find the longest path reachable from any
// vertex, prove a graph acyclic, or get a precise diagnostic when it is not.
//
// 🚀 What is dagpath?
//
//	A focused, thread-aware library that brings together:
//		• Core primitives: directed vertices & edges with insertion-ordered adjacency
//		• Longest paths: memoized DFS with on-the-fly cycle detection
//		• DAG checks: topological sort and acyclicity verification
//		• Builders: deterministic chain, ring, diamond and random-DAG fixtures
//
// ✨ Why choose dagpath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest errors – sentinel values for errors.Is, typed CycleError with the offending vertex
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – OnVisit hooks and context cancellation on every traversal
//
// Everything is organized under four subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & lock-guarded primitives
//	longest/ — the longest-path engine (memoization cache + cycle detection)
//	dag/     — topological sort and IsAcyclic
//	builder/ — deterministic graph constructors for tests, benchmarks, demos
//
// Quick ASCII example:
//
//	1 → 2 → 5 → 6 → 7, with shortcuts 1→3→7 and 1→4→7.
//
//	From vertex 1 the longest directed path has 4 edges: 1→2→5→6→7.
//
// See examples/ for runnable demos, including cycle reporting and cache reuse.
//
//	go get github.com/katalvlaran/dagpath
package dagpath
