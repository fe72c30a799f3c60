// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// impl_ring.go — implementation of Ring(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); a 1-ring is a self-loop, which callers
//     wanting one can add directly with core.AddEdge(v, v).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → (i+1)%n for i = 0..n-1.
//   • The result always contains exactly one directed cycle through all n
//     vertices — the canonical negative input for DAG analyzers.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 2
)

// Ring returns a Constructor that builds the directed cycle C_n:
// v0→v1→…→v(n-1)→v0.
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		// Emit ring edges in ascending i; the wrap at i == n-1 closes the cycle.
		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRing, uID, vID, err)
			}
		}

		return nil
	}
}
