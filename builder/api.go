// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// api.go — public entry point and the Constructor type.
//
// One orchestrator, Build(gopts, bopts, cons...), creates the target
// Digraph, resolves the configuration, and runs the constructors in
// order. Topology factories declared across the impl_*.go files
// return Constructor closures that follow one contract: validate
// first, emit vertices via cfg.idFn in index order, then emit arcs in
// a stable documented order, and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meancycle/core"
)

// Constructor applies one deterministic digraph mutation using the
// resolved configuration. Implementations validate their parameters
// early and return sentinel errors.
type Constructor func(g *core.Digraph[string], cfg builderConfig) error

// Build creates a new core.Digraph with the digraph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. The first failing constructor aborts the
// build; no partial cleanup is attempted.
//
// Constructors compose over the shared vertex ID scheme: Ring(n)
// followed by RandomSparse(n, p) decorates the same n vertices with
// extra random arcs.
func Build(gopts []core.DigraphOption[string], bopts []Option, cons ...Constructor) (*core.Digraph[string], error) {
	g := core.NewDigraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return g, nil
}
