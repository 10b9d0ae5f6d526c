// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// impl_self_loop.go — implementation of the SelfLoop(id, w) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meancycle/core"
)

// SelfLoop plants a single loop arc id→id with an exact weight,
// bypassing cfg.weightFn. A self-loop is the smallest possible cycle
// and pins a known mean into any fixture it decorates. The target
// Digraph must allow loops; the weight must be finite.
// Complexity: O(1).
func SelfLoop(id string, weight float64) Constructor {
	return func(g *core.Digraph[string], _ builderConfig) error {
		if err := g.AddArc(id, id, weight); err != nil {
			return fmt.Errorf("builder: SelfLoop(%s): %w", id, err)
		}

		return nil
	}
}
