// Package karp defines configuration options and error sentinels for
// Karp's mean-cycle algorithm over directed weighted graphs.
//
// Karp's method evaluates, for every vertex v, the ratios
// (dp[n][v] − dp[k][v]) / (n − k) built from maximum-weight walks of
// exactly k arcs, and extracts the extreme cycle from the walk behind
// the winning ratio.
//
// Complexity:
//
//	– Time:  O(n·m)   where n = |vertices|, m = |arcs|
//	   • Each DP layer k relaxes every arc once (n layers, m arcs each).
//	   • Ratio evaluation adds O(n²), dominated by O(n·m) for connected inputs.
//	– Space: O(n²) in FullTable mode (DP plus predecessor tables),
//	   O(n) in TwoLayers mode (two rolling layers, no reconstruction).
//
// Options:
//
//	– MemoryMode: FullTable (default) reconstructs a witness cycle;
//	   TwoLayers returns the mean only with a nil cycle.
//	– Tolerance:  absolute/relative slack used when the reconstructed
//	   cycle's mean is checked against the Karp ratio.
//
// Errors (sentinel):
//
//	– ErrEmptyGraph      if the input has no vertices (or the Digraph is nil).
//	– ErrInvalidWeight   if any arc weight is NaN or ±Inf.
//	– ErrUnknownVertex   if an arc points at a key absent from the vertex set.
//	– ErrNoCycle         if the graph is acyclic.
//	– ErrMeanMismatch    if the witness cycle fails its consistency check.
//	– ErrOptionViolation if an invalid Option was supplied.
package karp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the mean-cycle entry points.
var (
	// ErrEmptyGraph indicates the input graph has no vertices.
	ErrEmptyGraph = errors.New("karp: graph has no vertices")

	// ErrInvalidWeight indicates an arc weight that is NaN or ±Inf.
	ErrInvalidWeight = errors.New("karp: arc weight must be finite")

	// ErrUnknownVertex indicates an arc whose destination is not a key
	// of the adjacency map. Every vertex must appear as a key, with an
	// empty arc list when it has no outgoing arcs.
	ErrUnknownVertex = errors.New("karp: arc destination is not a vertex key")

	// ErrNoCycle indicates an acyclic input: no walk of n arcs exists,
	// so no cycle mean is defined.
	ErrNoCycle = errors.New("karp: graph contains no cycle")

	// ErrMeanMismatch indicates the reconstructed cycle's own mean
	// disagrees with the Karp ratio beyond the configured tolerance.
	// Seeing it means a bug or a numerically hostile input.
	ErrMeanMismatch = errors.New("karp: cycle mean disagrees with Karp ratio")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("karp: invalid option supplied")
)

// defaultTol is the consistency-check slack used by DefaultOptions.
const defaultTol = 1e-9

// MemoryMode controls how much DP state the solver keeps.
//
// FullTable – keep all n+1 layers plus predecessors; the result
// includes a concrete simple cycle achieving the extreme mean.
// TwoLayers – keep two rolling layers; memory drops from O(n²) to
// O(n), the mean is identical, and the returned cycle is nil.
type MemoryMode int

const (
	// FullTable stores the complete DP and predecessor tables and
	// reconstructs a witness cycle.
	FullTable MemoryMode = iota

	// TwoLayers stores two rolling DP layers and returns the mean only.
	TwoLayers
)

// Option configures the mean-cycle computation via functional
// arguments. If an Option is invalid (unknown mode, non-positive
// tolerance), it is recorded internally and surfaced as
// ErrOptionViolation when the entry point is invoked.
type Option func(*Options)

// Options holds parameters controlling a mean-cycle run.
type Options struct {
	// MemoryMode selects FullTable (witness cycle) or TwoLayers
	// (mean only, O(n) memory).
	MemoryMode MemoryMode

	// Tolerance bounds the allowed absolute or relative difference
	// between the witness cycle's recomputed mean and the Karp ratio.
	// It never influences which cycle wins, only the final check.
	Tolerance float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - MemoryMode: FullTable (witness cycle reconstructed)
//   - Tolerance:  1e-9
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullTable,
		Tolerance:  defaultTol,
		err:        nil,
	}
}

// WithMemoryMode selects the DP storage strategy.
// Unknown modes are invalid → ErrOptionViolation.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		switch mode {
		case FullTable, TwoLayers:
			o.MemoryMode = mode
		default:
			o.err = fmt.Errorf("%w: unknown MemoryMode (%d)", ErrOptionViolation, mode)
		}
	}
}

// WithTolerance overrides the consistency-check slack.
//
//	t > 0 and finite: use t
//	anything else: invalid option → ErrOptionViolation
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			o.err = fmt.Errorf("%w: Tolerance must be positive and finite (%g)", ErrOptionViolation, t)

			return
		}
		o.Tolerance = t
	}
}
