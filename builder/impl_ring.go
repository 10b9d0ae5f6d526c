// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// impl_ring.go — implementation of the Ring(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meancycle/core"
)

// Ring builds a directed ring R_n: arcs i→(i+1) mod n for n ≥ 1.
// The 1-ring is a single self-loop; the target Digraph must allow
// loops for it. Arc weights come from cfg.weightFn, drawn in arc
// order.
//
// Vertices: cfg.idFn(0..n-1). Arcs: 0→1, 1→2, …, (n−1)→0.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if n < minRingVertices {
			return fmt.Errorf("builder: Ring(n=%d): %w", n, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			from, to := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddArc(from, to, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("builder: Ring: arc %s→%s: %w", from, to, err)
			}
		}

		return nil
	}
}
