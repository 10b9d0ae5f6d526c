// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// impl_complete.go — implementation of the Complete(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meancycle/core"
)

// Complete builds the complete digraph on n ≥ 1 vertices: every
// ordered pair (i, j), i ≠ j, gets an arc. No self-loops. K1 is a
// lone vertex and therefore acyclic.
//
// Vertices: cfg.idFn(0..n-1). Arcs: ascending i, then ascending j.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("builder: Complete(n=%d): %w", n, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				from, to := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddArc(from, to, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("builder: Complete: arc %s→%s: %w", from, to, err)
				}
			}
		}

		return nil
	}
}
