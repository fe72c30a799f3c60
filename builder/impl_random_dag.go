// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// impl_random_dag.go — implementation of RandomDAG(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • p ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng must be present (else ErrNeedRandSource); supply WithSeed.
//   • Candidate edges are scanned in ascending (i, j) order with i < j, each
//     kept with probability p. Edges only ever point from a lower index to a
//     higher one, so the result is acyclic by construction — no validation
//     pass is needed.
//
// Determinism:
//   • Same n, p, seed, and scheme ⇒ identical graph, byte for byte.
//
// Complexity:
//   • Time: O(n²) candidate scan. Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

const (
	methodRandomDAG   = "RandomDAG"
	minRandomDAGNodes = 1
)

// RandomDAG returns a Constructor that builds a random n-vertex DAG where
// each forward pair (i, j), i < j, is connected with probability p.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1. Size domain first, then probability, then RNG presence — the
		//    established validation priority of this package.
		if n < minRandomDAGNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomDAGNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%v: %w", methodRandomDAG, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}

		// 2. Materialize all vertices up front so isolated ones survive p=0.
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomDAG, cfg.idFn(i), err)
			}
		}

		// 3. Scan forward pairs in stable order; draw once per candidate.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(uID, vID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomDAG, uID, vID, err)
				}
			}
		}

		return nil
	}
}
