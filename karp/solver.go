// Package karp: internal solver for Karp's recurrence
//
// This file carries the per-call state and the four stages of the
// computation: ingest (index + reversed adjacency), DP fill, ratio
// evaluation, and witness extraction with its consistency check.
// Everything below works on the signed weights prepared by solve(),
// so a single maximizing code path serves both Max and Min entries.

package karp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/meancycle/core"
)

// noPred marks a DP cell with no incoming walk.
const noPred = -1

// inArc is one incoming arc in the reversed adjacency view: source
// vertex index plus sign-adjusted weight.
type inArc struct {
	from   int
	weight float64
}

// pair keys the per-(u,v) heaviest-arc lookup used by the consistency
// check.
type pair struct{ u, v int }

// solver carries one mean-cycle computation over indexed vertices.
type solver[K comparable] struct {
	n     int
	verts []K              // index → vertex key
	in    [][]inArc        // incoming arcs per vertex index
	best  map[pair]float64 // heaviest signed weight per (u,v); FullTable only
	tol   float64
}

// newSolver indexes verts, validates every arc and builds the
// reversed adjacency view. Incoming arcs are appended source by
// source in verts order, which pins down every tie-break for the
// call: with Digraph-derived verts the whole run is deterministic.
func newSolver[K comparable](verts []K, adj map[K][]core.Arc[K], sign float64, o Options) (*solver[K], error) {
	n := len(verts)
	s := &solver[K]{
		n:     n,
		verts: verts,
		in:    make([][]inArc, n),
		tol:   o.Tolerance,
	}
	if o.MemoryMode == FullTable {
		s.best = make(map[pair]float64)
	}

	index := make(map[K]int, n)
	for i, v := range verts {
		index[v] = i
	}

	for ui, u := range verts {
		for _, a := range adj[u] {
			if math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
				return nil, fmt.Errorf("karp: arc %v→%v has weight %v: %w", u, a.To, a.Weight, ErrInvalidWeight)
			}
			vi, ok := index[a.To]
			if !ok {
				return nil, fmt.Errorf("karp: arc %v→%v: %w", u, a.To, ErrUnknownVertex)
			}

			w := sign * a.Weight
			s.in[vi] = append(s.in[vi], inArc{from: ui, weight: w})
			if s.best != nil {
				p := pair{u: ui, v: vi}
				if cur, seen := s.best[p]; !seen || w > cur {
					s.best[p] = w
				}
			}
		}
	}

	return s, nil
}

// fillLayer computes one DP step: dst[v] = max over incoming arcs of
// src[from] + weight, with −∞ marking "no walk of this length". pd,
// when non-nil, receives the argmax source per vertex (noPred if
// none). Ties keep the first arc in adjacency order.
func fillLayer(dst, src []float64, in [][]inArc, pd []int) {
	for v := range dst {
		best, bestU := math.Inf(-1), noPred
		for _, a := range in[v] {
			sw := src[a.from]
			if math.IsInf(sw, -1) {
				continue
			}
			if val := sw + a.weight; val > best {
				best, bestU = val, a.from
			}
		}
		dst[v] = best
		if pd != nil {
			pd[v] = bestU
		}
	}
}

// run executes the FullTable pipeline: fill the tables, evaluate the
// ratios, rebuild the winning walk, cut out a simple cycle and verify
// it. The returned mean is in the solver's signed space.
func (s *solver[K]) run() ([]K, float64, error) {
	dp, pd := s.fillTables()

	mean, vStar, kStar, err := s.bestRatio(dp)
	if err != nil {
		return nil, 0, err
	}

	walk := reconstruct(pd, vStar)

	// The tail behind k* usually closes a cycle. When ties steer v*
	// toward a vertex whose tail is repeat-free, fall back to the
	// whole walk: n+1 positions over n vertices must repeat, and any
	// cycle inside a maximum n-arc walk has mean exactly μ*.
	i, j := firstRepeat(walk, kStar)
	if i < 0 {
		i, j = firstRepeat(walk, 0)
	}

	cycle := make([]K, 0, j-i+1)
	for t := i; t <= j; t++ {
		cycle = append(cycle, s.verts[walk[t]])
	}

	if vErr := s.verify(walk, i, j, mean); vErr != nil {
		return nil, 0, vErr
	}

	return cycle, mean, nil
}

// fillTables allocates the (n+1)×n DP and predecessor tables as flat
// arenas sliced into rows, then fills them layer by layer. Row 0 is
// all zeros: the empty walk ends anywhere at weight 0.
func (s *solver[K]) fillTables() (dp [][]float64, pd [][]int) {
	n := s.n
	dpArena := make([]float64, (n+1)*n)
	pdArena := make([]int, (n+1)*n)
	for i := range pdArena {
		pdArena[i] = noPred
	}

	dp = make([][]float64, n+1)
	pd = make([][]int, n+1)
	for k := 0; k <= n; k++ {
		dp[k] = dpArena[k*n : (k+1)*n]
		pd[k] = pdArena[k*n : (k+1)*n]
	}

	for k := 1; k <= n; k++ {
		fillLayer(dp[k], dp[k-1], s.in, pd[k])
	}

	return dp, pd
}

// bestRatio applies Karp's formula to the filled table: per vertex
// with an n-arc walk, the minimum ratio over k; across vertices, the
// maximum of those minima. Ties keep the smallest k and the first
// vertex in index order. No vertex with an n-arc walk means the graph
// is acyclic.
func (s *solver[K]) bestRatio(dp [][]float64) (mean float64, vStar, kStar int, err error) {
	n := s.n
	last := dp[n]
	mean, vStar = math.Inf(-1), -1

	for v := 0; v < n; v++ {
		if math.IsInf(last[v], -1) {
			continue
		}
		minR, minK := math.Inf(1), 0
		for k := 0; k < n; k++ {
			if math.IsInf(dp[k][v], -1) {
				continue
			}
			if r := (last[v] - dp[k][v]) / float64(n-k); r < minR {
				minR, minK = r, k
			}
		}
		if minR > mean {
			mean, vStar, kStar = minR, v, minK
		}
	}
	if vStar < 0 {
		return 0, 0, 0, ErrNoCycle
	}

	return mean, vStar, kStar, nil
}

// reconstruct walks the predecessor table backwards from (n, vStar)
// down to layer 0. walk[k] is the vertex index reached after k arcs.
// Every cell on the chain stems from a finite DP value, so noPred is
// never read.
func reconstruct(pd [][]int, vStar int) []int {
	n := len(pd) - 1
	walk := make([]int, n+1)
	walk[n] = vStar
	for k := n; k > 0; k-- {
		walk[k-1] = pd[k][walk[k]]
	}

	return walk
}

// firstRepeat scans walk[from:] for the first position whose vertex
// already occurred within the scanned range, returning the positions
// of both occurrences, or (-1, -1) when all entries are distinct.
// Everything strictly between the two positions is distinct as well,
// so the enclosed segment is a simple cycle.
func firstRepeat(walk []int, from int) (int, int) {
	seen := make(map[int]int, len(walk)-from)
	for j := from; j < len(walk); j++ {
		if i, ok := seen[walk[j]]; ok {
			return i, j
		}
		seen[walk[j]] = j
	}

	return -1, -1
}

// verify recomputes the extracted cycle's mean from arc weights alone
// and compares it with the Karp ratio. A maximum walk always rides
// the heaviest parallel arc between two vertices, so the per-pair
// maximum recorded at ingest is exactly what the DP traversed.
func (s *solver[K]) verify(walk []int, i, j int, want float64) error {
	arcs := make([]float64, 0, j-i)
	for t := i; t < j; t++ {
		arcs = append(arcs, s.best[pair{u: walk[t], v: walk[t+1]}])
	}
	got := floats.Sum(arcs) / float64(j-i)
	if !scalar.EqualWithinAbsOrRel(got, want, s.tol, s.tol) {
		return fmt.Errorf("karp: cycle mean %g against ratio %g: %w", got, want, ErrMeanMismatch)
	}

	return nil
}

// meanOnly is the TwoLayers pipeline. Pass one rolls the recurrence
// up to dp[n]; pass two replays layers 0..n−1 and folds each vertex's
// minimum ratio on the fly. Four n-sized slices in total, no
// predecessors, no cycle.
func (s *solver[K]) meanOnly() (float64, error) {
	n := s.n
	prev := make([]float64, n) // layer 0: all zeros
	cur := make([]float64, n)
	for k := 1; k <= n; k++ {
		fillLayer(cur, prev, s.in, nil)
		prev, cur = cur, prev
	}
	dpN := prev

	minR := make([]float64, n)
	for v := 0; v < n; v++ {
		minR[v] = math.Inf(1)
		if !math.IsInf(dpN[v], -1) {
			minR[v] = dpN[v] / float64(n) // k = 0, where dp[0][v] = 0
		}
	}

	layer := cur // replayed dp[k]; reset to layer 0
	for i := range layer {
		layer[i] = 0
	}
	next := make([]float64, n)
	for k := 1; k < n; k++ {
		fillLayer(next, layer, s.in, nil)
		layer, next = next, layer
		for v := 0; v < n; v++ {
			if math.IsInf(dpN[v], -1) || math.IsInf(layer[v], -1) {
				continue
			}
			if r := (dpN[v] - layer[v]) / float64(n-k); r < minR[v] {
				minR[v] = r
			}
		}
	}

	mean, found := math.Inf(-1), false
	for v := 0; v < n; v++ {
		if math.IsInf(dpN[v], -1) {
			continue
		}
		found = true
		if minR[v] > mean {
			mean = minR[v]
		}
	}
	if !found {
		return 0, ErrNoCycle
	}

	return mean, nil
}
