// Package core: non-mutating Digraph snapshots
//
// This file provides read-only views of a Digraph: AdjacencyMap for a
// detached adjacency snapshot and Clone for a full independent copy.
// Both take the read lock once and never mutate the source.

package core

// AdjacencyMap returns a deep copy of the adjacency structure, keyed
// by vertex. Every registered vertex appears as a key, isolated ones
// with an empty arc list, so len(result) == VertexCount(). The copy
// shares no memory with the Digraph and may be mutated freely.
// Complexity: O(V + A)
func (g *Digraph[K]) AdjacencyMap() map[K][]Arc[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[K][]Arc[K], len(g.order))
	for _, k := range g.order {
		arcs := make([]Arc[K], len(g.adj[k]))
		copy(arcs, g.adj[k])
		out[k] = arcs
	}

	return out
}

// Clone returns an independent Digraph with the same option flags,
// vertices (in the same insertion order) and arcs. Mutating the clone
// never affects the source and vice versa.
// Complexity: O(V + A)
func (g *Digraph[K]) Clone() *Digraph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Digraph[K]{
		forbidLoops: g.forbidLoops,
		forbidMulti: g.forbidMulti,
		order:       make([]K, len(g.order)),
		pos:         make(map[K]int, len(g.pos)),
		adj:         make(map[K][]Arc[K], len(g.adj)),
		arcCount:    g.arcCount,
	}
	copy(c.order, g.order)
	for k, p := range g.pos {
		c.pos[k] = p
	}
	for _, k := range g.order {
		arcs := make([]Arc[K], len(g.adj[k]))
		copy(arcs, g.adj[k])
		c.adj[k] = arcs
	}

	return c
}
