// Package core provides a compact, thread-safe in-memory digraph
// implementation generic over the vertex key type.
//
// The Digraph G = (V,A) is deliberately small: directed arcs only,
// float64 weights, and a handful of mutation and snapshot methods.
// It exists to feed the analysis packages of this module with a
// well-defined input model:
//
//   - Generic keys: Digraph[K comparable] accepts string, int or any
//     comparable struct key without adapters or interning.
//   - Finite weights: AddArc rejects NaN and ±Inf up front, so the
//     solvers never meet a poisoned float.
//   - Self-loops and parallel arcs allowed by default. Both are
//     legitimate cycles for mean-cycle analysis. Opt out with
//     WithoutLoops / WithoutMultiArcs when your model forbids them.
//   - Deterministic iteration: Vertices() returns keys in insertion
//     order, and arc lists preserve AddArc order. Analyses that walk
//     a Digraph produce the same answer on every run.
//   - One sync.RWMutex guards the whole structure. Mutations take the
//     write lock, queries the read lock. The split-lock scheme of
//     larger graph libraries is not worth the bookkeeping here.
//
// Snapshots:
//
//   - AdjacencyMap() returns a deep copy of the arc lists, keyed by
//     vertex, with every registered vertex present (possibly with an
//     empty list). Callers may mutate the copy freely.
//   - Clone() produces an independent Digraph with the same flags,
//     vertices and arcs.
//
// Errors:
//
//	ErrVertexNotFound     - query referenced an unregistered vertex.
//	ErrNonFiniteWeight    - arc weight is NaN or ±Inf.
//	ErrLoopNotAllowed     - self-loop with WithoutLoops in effect.
//	ErrMultiArcNotAllowed - duplicate u→v arc with WithoutMultiArcs in effect.
//
// All methods are safe for concurrent use.
package core
