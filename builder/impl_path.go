// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// impl_path.go — implementation of the Path(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meancycle/core"
)

// Path builds a directed path P_n: arcs i→(i+1) for n ≥ 2. The result
// is acyclic, which makes it the standard no-cycle fixture.
//
// Vertices: cfg.idFn(0..n-1). Arcs: 0→1, 1→2, …, (n−2)→(n−1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("builder: Path(n=%d): %w", n, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n-1; i++ {
			from, to := cfg.idFn(i), cfg.idFn(i+1)
			if err := g.AddArc(from, to, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("builder: Path: arc %s→%s: %w", from, to, err)
			}
		}

		return nil
	}
}
