// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// impl_chain.go — implementation of Chain(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); n == 1 yields a single edgeless vertex.
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i → i+1 for i = 0..n-2.
//   • The longest path from vertex 0 of a fresh Chain(n) has n-1 edges.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain returns a Constructor that builds the directed path P_n:
// v0→v1→…→v(n-1).
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}

		// Seed the first vertex so Chain(1) still materializes something.
		if err := g.AddVertex(cfg.idFn(0)); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodChain, cfg.idFn(0), err)
		}

		// Emit edges in ascending i; AddEdge materializes the next vertex.
		for i := 0; i < n-1; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, uID, vID, err)
			}
		}

		return nil
	}
}
