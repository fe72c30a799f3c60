// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// api.go — the Constructor contract and the Build orchestrator.
// Factories live in impl_*.go, one topology per file.
package builder

import (
	"fmt"

	"github.com/katalvlaran/dagpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph, resolves the configuration from bopts,
// and applies all constructors in order. The first constructor error is
// wrapped with "Build: %w" and returned immediately; no partial cleanup is
// attempted.
//
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
func Build(bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
