// Package dag answers whole-graph questions about directedness and order:
// is this graph acyclic, and if so, in what order may its vertices be
// processed so every edge points forward?
//
// What:
//
//   - TopologicalSort: linear ordering of all vertices such that for every
//     edge u→v, u precedes v. Driven by three-color DFS from every
//     unvisited vertex, reversed post-order.
//   - IsAcyclic: convenience predicate over the same traversal.
//
// Why:
//   - Validate dependency graphs before scheduling work on them.
//   - Companion to dagpath/longest: the engine detects cycles lazily on
//     the reachable component; dag verifies the whole graph up front.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
//
// Errors:
//
//   - ErrNilGraph       graph pointer is nil.
//   - ErrCycleDetected  a back edge was found; no ordering exists.
//   - context.Canceled  traversal canceled via WithContext.
package dag
