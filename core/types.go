// Package core defines the central Digraph and Arc types and provides
// thread-safe primitives for building, querying, and cloning directed
// weighted graphs.
//
// This file declares Arc, Digraph, DigraphOption, the sentinel errors,
// and the NewDigraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core digraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that
	// was never registered.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNonFiniteWeight indicates an arc weight that is NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("core: arc weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a Digraph
	// built with WithoutLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiArcNotAllowed indicates a duplicate u→v arc was attempted
	// on a Digraph built with WithoutMultiArcs.
	ErrMultiArcNotAllowed = errors.New("core: parallel arc not allowed")
)

// Arc is a single directed, weighted connection leaving some vertex.
//
// The source vertex is implied by the adjacency list holding the Arc;
// To names the destination. Weight may be any finite float64, negative
// weights included.
type Arc[K comparable] struct {
	// To is the destination vertex key.
	To K

	// Weight is the arc weight. Finite; validated on insertion.
	Weight float64
}

// DigraphOption configures behavior of a Digraph before creation.
type DigraphOption[K comparable] func(g *Digraph[K])

// WithoutLoops forbids self-loops (arcs u→u). AddArc returns
// ErrLoopNotAllowed for them.
func WithoutLoops[K comparable]() DigraphOption[K] {
	return func(g *Digraph[K]) { g.forbidLoops = true }
}

// WithoutMultiArcs forbids parallel arcs (a second u→v arc). AddArc
// returns ErrMultiArcNotAllowed for them.
func WithoutMultiArcs[K comparable]() DigraphOption[K] {
	return func(g *Digraph[K]) { g.forbidMulti = true }
}

// Digraph is the core in-memory directed weighted graph.
//
// Vertices are identified by keys of any comparable type K; any key
// value is valid, including the zero value. Arcs carry float64 weights
// and are stored per source vertex in insertion order. Self-loops and
// parallel arcs are permitted unless disabled via options.
//
// A single mu guards order, pos, adj and arcCount.
type Digraph[K comparable] struct {
	mu sync.RWMutex

	// Configuration flags
	forbidLoops bool // reject self-loops
	forbidMulti bool // reject parallel arcs

	// Storage
	order    []K            // vertex keys in insertion order
	pos      map[K]int      // vertex key → position in order
	adj      map[K][]Arc[K] // outgoing arcs per vertex, insertion order
	arcCount int
}

// NewDigraph creates an empty Digraph with the given options.
// By default self-loops and parallel arcs are allowed.
// Complexity: O(1)
func NewDigraph[K comparable](opts ...DigraphOption[K]) *Digraph[K] {
	g := &Digraph[K]{
		pos: make(map[K]int),
		adj: make(map[K][]Arc[K]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
