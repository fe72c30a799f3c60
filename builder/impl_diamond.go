// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// impl_diamond.go — implementation of Diamond().
//
// Contract:
//   • Builds a fixed seven-vertex layered DAG with cfg.idFn applied to
//     indices 0..6 (NumericIDFn yields the conventional labels "1".."7"):
//
//       1→2, 1→3, 1→4, 2→5, 3→7, 4→3, 4→7, 4→3 (duplicate), 5→6, 6→7
//
//   • The duplicate 4→3 edge is deliberate: it exercises the policy that
//     parallel edges are accepted and cannot change a maximum path length.
//   • Longest paths from 1..7 (by label): 4, 3, 1, 2, 2, 1, 0.
//
// Complexity:
//   • Time: O(1) (fixed topology). Space: O(1) extra.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

const methodDiamond = "Diamond"

// diamondEdges lists the topology by zero-based vertex index, in emission
// order. The repeated {3, 2} entry is the duplicate edge.
var diamondEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3},
	{1, 4},
	{2, 6},
	{3, 2}, {3, 6}, {3, 2},
	{4, 5},
	{5, 6},
}

// Diamond returns a Constructor that builds the reconverging sample DAG.
func Diamond() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, pair := range diamondEdges {
			uID, vID := cfg.idFn(pair[0]), cfg.idFn(pair[1])
			if _, err := g.AddEdge(uID, vID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodDiamond, uID, vID, err)
			}
		}

		return nil
	}
}
