// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// impl_random_sparse.go — implementation of the RandomSparse(n, p) constructor.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meancycle/core"
)

// RandomSparse builds an Erdős–Rényi style digraph on n ≥ 1 vertices:
// each ordered pair (i, j), i ≠ j, receives an arc independently with
// probability p. No self-loops, at most one arc per pair. Requires an
// RNG (WithSeed or WithRand); identical seeds reproduce identical
// digraphs, arc by arc.
//
// Vertices: cfg.idFn(0..n-1). Pair scan order: ascending i, then j.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Digraph[string], cfg builderConfig) error {
		if n < minSparseVertices {
			return fmt.Errorf("builder: RandomSparse(n=%d): %w", n, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("builder: RandomSparse(p=%g): %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("builder: RandomSparse: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cfg.rng.Float64() >= p {
					continue
				}
				from, to := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddArc(from, to, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("builder: RandomSparse: arc %s→%s: %w", from, to, err)
				}
			}
		}

		return nil
	}
}
