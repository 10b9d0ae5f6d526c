// Package core: thread-safe Digraph method implementations
//
// This file provides the mutation and query operations for the Digraph
// type defined in types.go: vertex and arc insertion, existence checks,
// counters, and ordered accessors. Mutations acquire the write lock,
// queries the read lock. Snapshot helpers (AdjacencyMap, Clone) live
// in view.go.

package core

import (
	"fmt"
	"math"
)

// AddVertex registers k as a vertex. Re-adding an existing vertex is a
// no-op, so the call is idempotent and never fails.
// Complexity: O(1) amortized.
func (g *Digraph[K]) AddVertex(k K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(k)
}

// addVertexLocked inserts k into order/pos/adj if absent.
// Caller must hold g.mu for writing.
func (g *Digraph[K]) addVertexLocked(k K) {
	if _, ok := g.pos[k]; ok {
		return
	}
	g.pos[k] = len(g.order)
	g.order = append(g.order, k)
	g.adj[k] = nil
}

// AddArc inserts a directed arc from→to with the given weight.
// Unregistered endpoints are added automatically, so a Digraph can be
// built from arcs alone. The weight must be finite; self-loops and
// parallel arcs are rejected only when the corresponding option
// disabled them.
//
// Returns ErrNonFiniteWeight, ErrLoopNotAllowed or ErrMultiArcNotAllowed.
// Complexity: O(1) amortized, O(deg(from)) when WithoutMultiArcs is set.
func (g *Digraph[K]) AddArc(from, to K, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("core: AddArc %v→%v weight %v: %w", from, to, weight, ErrNonFiniteWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.forbidLoops && from == to {
		return fmt.Errorf("core: AddArc %v→%v: %w", from, to, ErrLoopNotAllowed)
	}
	if g.forbidMulti {
		for _, a := range g.adj[from] {
			if a.To == to {
				return fmt.Errorf("core: AddArc %v→%v: %w", from, to, ErrMultiArcNotAllowed)
			}
		}
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from] = append(g.adj[from], Arc[K]{To: to, Weight: weight})
	g.arcCount++

	return nil
}

// HasVertex reports whether k is registered.
// Complexity: O(1)
func (g *Digraph[K]) HasVertex(k K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pos[k]

	return ok
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1)
func (g *Digraph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// ArcCount returns the number of arcs, counting parallels separately.
// Complexity: O(1)
func (g *Digraph[K]) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}

// Vertices returns all vertex keys in insertion order. The slice is a
// copy and may be retained or mutated by the caller.
// Complexity: O(V)
func (g *Digraph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// OutArcs returns a copy of the arcs leaving k, in insertion order.
// Returns ErrVertexNotFound if k was never registered.
// Complexity: O(deg(k))
func (g *Digraph[K]) OutArcs(k K) ([]Arc[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.pos[k]; !ok {
		return nil, fmt.Errorf("core: OutArcs %v: %w", k, ErrVertexNotFound)
	}
	out := make([]Arc[K], len(g.adj[k]))
	copy(out, g.adj[k])

	return out, nil
}
