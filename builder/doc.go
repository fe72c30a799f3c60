// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// Package builder provides deterministic graph constructors for tests,
// benchmarks, and demos: assemble known topologies with one call instead of
// hand-typing AddEdge sequences.
//
// What:
//
//   - Build(bopts, cons...): one orchestrator. Creates a core.Graph,
//     resolves options into an immutable config, applies constructors in
//     order.
//   - Chain(n):     v0→v1→…→v(n-1), the canonical longest-path fixture.
//   - Ring(n):      a directed n-cycle, the canonical cycle fixture.
//   - Diamond():    a 7-vertex layered DAG with reconverging branches and a
//     deliberate duplicate edge, useful for memoization tests.
//   - RandomDAG(n, p): random edges from lower to higher index only, so the
//     result is acyclic by construction; requires WithSeed.
//
// Why:
//   - Determinism: the same options, seed, and constructor order always
//     produce the identical graph, so fixtures are reproducible across runs.
//   - Composition: multiple constructors may build disconnected components
//     into one graph (e.g. a chain plus a ring for mixed-case tests).
//
// Error policy (explicit and strict):
//   - Only package-level sentinel errors are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping, never by mutating the
//     sentinel text.
//   - Constructors never panic at runtime; panics are confined to option
//     constructors rejecting meaningless configuration.
package builder
