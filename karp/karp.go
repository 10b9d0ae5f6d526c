package karp

import (
	"github.com/katalvlaran/meancycle/core"
)

// MaxMeanCycle — Karp's maximum mean cycle
//
// Description:
//
//	Among all cycles of a directed weighted graph, find one whose mean
//	weight per arc is maximum. Karp's theorem reduces the question to
//	maximum-weight walks of fixed length:
//
//	    μ* = max over v of  min over 0 ≤ k < n  (dp[n][v] − dp[k][v]) / (n − k)
//
//	where dp[k][v] is the maximum total weight of any walk with exactly
//	k arcs ending at v (−∞ when no such walk exists), and n is the
//	number of vertices. The formula is exact for every finite input.
//
// Algorithm Outline (FullTable):
//  1. Index the vertex set; every key of adj is a vertex, arcs may
//     only point at indexed keys.
//  2. Fill dp[0][v] = 0 for all v, then dp[k][v] for k = 1..n via
//     dp[k][v] = max over arcs (u,w)→v of dp[k−1][u] + w, skipping
//     unreachable (−∞) predecessors. Record the argmax predecessor.
//  3. For each v with dp[n][v] > −∞, take the minimum ratio over k;
//     μ* is the maximum of those minima over v. No candidate at all
//     means the graph is acyclic → ErrNoCycle.
//  4. Rebuild the n-arc walk behind the winning (v*, k*) from the
//     predecessor table and scan its tail w[k*..n] for the first
//     repeated vertex; the enclosed segment is a simple cycle with
//     mean exactly μ*. If the tail repeats nothing, scan the whole
//     walk: n+1 positions over n vertices guarantee a repeat, and any
//     cycle inside a maximum n-arc walk achieves μ*.
//  5. Recompute the cycle's mean from its own arc weights and compare
//     against μ* within Options.Tolerance → ErrMeanMismatch on drift.
//
// Memory Modes:
//   - FullTable — store all n+1 layers plus predecessors, reconstruct
//     the witness cycle. Memory: O(n²).
//   - TwoLayers — two rolling layers, two passes (one for dp[n], one
//     folding the ratio minima). Mean only, cycle is nil. Memory: O(n).
//
// Complexity:
//
//	Time   = O(n·m + n²)
//	Memory = O(n²) (FullTable) or O(n) (TwoLayers)
//
// Errors:
//   - ErrEmptyGraph      — adj has no keys.
//   - ErrInvalidWeight   — some arc weight is NaN or ±Inf.
//   - ErrUnknownVertex   — some arc points at a non-key.
//   - ErrNoCycle         — the graph is acyclic.
//   - ErrMeanMismatch    — witness cycle failed its consistency check.
//   - ErrOptionViolation — invalid Option supplied.
//
// MaxMeanCycle returns (cycle, mean, error). The cycle is closed: its
// first and last elements are the same vertex, interior vertices are
// distinct, and every consecutive pair is an arc of the input. A
// self-loop comes back as [v, v] with mean equal to the loop weight.
// With TwoLayers the cycle is nil.
//
// Every key of adj is a vertex; vertices without outgoing arcs must
// still appear as keys, mapped to an empty (or nil) slice. When
// several cycles tie for the extreme mean, which one is returned is
// unspecified but valid; it is stable per call and, for Digraph-based
// inputs via MaxMeanCycleOf, deterministic across runs.
//
// Example:
//
//	cycle, mean, err := karp.MaxMeanCycle(adj)
//	cycle, mean, err = karp.MaxMeanCycle(adj, karp.WithMemoryMode(karp.TwoLayers))
func MaxMeanCycle[K comparable](adj map[K][]core.Arc[K], opts ...Option) (cycle []K, mean float64, err error) {
	verts := make([]K, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}

	return solve(verts, adj, +1, opts)
}

// MaxMeanCycleOf runs MaxMeanCycle on a *core.Digraph snapshot.
// Vertices are indexed in Digraph insertion order, so repeated runs on
// the same graph return the identical cycle, even when several cycles
// tie for the maximum mean. A nil graph reports ErrEmptyGraph.
func MaxMeanCycleOf[K comparable](g *core.Digraph[K], opts ...Option) (cycle []K, mean float64, err error) {
	if g == nil {
		return nil, 0, ErrEmptyGraph
	}

	return solve(g.Vertices(), g.AdjacencyMap(), +1, opts)
}

// MinMeanCycle finds a cycle of minimum mean weight. It is
// MaxMeanCycle on the negated graph: weights are flipped on ingestion,
// the winning cycle is the same, and the reported mean is negated
// back. Options, guarantees and errors match MaxMeanCycle exactly.
func MinMeanCycle[K comparable](adj map[K][]core.Arc[K], opts ...Option) (cycle []K, mean float64, err error) {
	verts := make([]K, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}

	return solve(verts, adj, -1, opts)
}

// MinMeanCycleOf runs MinMeanCycle on a *core.Digraph snapshot, with
// the same determinism guarantee as MaxMeanCycleOf.
func MinMeanCycleOf[K comparable](g *core.Digraph[K], opts ...Option) (cycle []K, mean float64, err error) {
	if g == nil {
		return nil, 0, ErrEmptyGraph
	}

	return solve(g.Vertices(), g.AdjacencyMap(), -1, opts)
}

// solve is the common driver behind the four entry points: resolve
// options, validate and ingest the input (weights scaled by sign),
// then dispatch on MemoryMode. Means travel internally in the signed
// space and are mapped back on return.
func solve[K comparable](verts []K, adj map[K][]core.Arc[K], sign float64, opts []Option) ([]K, float64, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	if len(verts) == 0 {
		return nil, 0, ErrEmptyGraph
	}

	s, err := newSolver(verts, adj, sign, o)
	if err != nil {
		return nil, 0, err
	}

	if o.MemoryMode == TwoLayers {
		mean, mErr := s.meanOnly()
		if mErr != nil {
			return nil, 0, mErr
		}

		return nil, sign * mean, nil
	}

	cycle, mean, rErr := s.run()
	if rErr != nil {
		return nil, 0, rErr
	}

	return cycle, sign * mean, nil
}
