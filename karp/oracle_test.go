// Package karp_test cross-checks the DP against a brute-force
// enumerator of simple cycles on randomized small graphs, where
// exhaustive enumeration is still cheap.
package karp_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meancycle/core"
	"github.com/katalvlaran/meancycle/karp"
)

// extremeMeanByEnumeration computes the exact extreme cycle mean by
// listing every simple cycle. Parallel arcs collapse to the extreme
// weight per ordered pair first, which preserves the optimum: any
// cycle only improves (or stays) when each arc is swapped for the
// extreme one between the same endpoints. Returns false when the
// graph has no cycle at all.
func extremeMeanByEnumeration(adj map[string][]core.Arc[string], wantMax bool) (float64, bool) {
	verts := make([]string, 0, len(adj))
	for v := range adj {
		verts = append(verts, v)
	}
	sort.Strings(verts)
	index := make(map[string]int, len(verts))
	for i, v := range verts {
		index[v] = i
	}

	n := len(verts)
	better := func(a, b float64) bool {
		if wantMax {
			return a > b
		}

		return a < b
	}

	has := make([][]bool, n)
	w := make([][]float64, n)
	for i := 0; i < n; i++ {
		has[i] = make([]bool, n)
		w[i] = make([]float64, n)
	}
	for u, arcs := range adj {
		ui := index[u]
		for _, a := range arcs {
			vi := index[a.To]
			if !has[ui][vi] || better(a.Weight, w[ui][vi]) {
				has[ui][vi], w[ui][vi] = true, a.Weight
			}
		}
	}

	best, found := 0.0, false
	consider := func(sum float64, length int) {
		if m := sum / float64(length); !found || better(m, best) {
			best, found = m, true
		}
	}

	for v := 0; v < n; v++ {
		if has[v][v] {
			consider(w[v][v], 1)
		}
	}

	// Anchor every cycle at its smallest vertex so each one is
	// enumerated exactly once.
	onPath := make([]bool, n)
	var dfs func(anchor, cur int, sum float64, length int)
	dfs = func(anchor, cur int, sum float64, length int) {
		for next := anchor; next < n; next++ {
			if next == cur || !has[cur][next] {
				continue
			}
			if next == anchor {
				consider(sum+w[cur][next], length+1)

				continue
			}
			if onPath[next] {
				continue
			}
			onPath[next] = true
			dfs(anchor, next, sum+w[cur][next], length+1)
			onPath[next] = false
		}
	}
	for s := 0; s < n; s++ {
		onPath[s] = true
		dfs(s, s, 0, 0)
		onPath[s] = false
	}

	return best, found
}

// randomAdj draws a digraph on n named vertices: each ordered pair
// (and optionally each loop) gets at most one arc with probability p,
// weighted by a one-decimal value in [-20, 20].
func randomAdj(rng *rand.Rand, n int, p float64, loops bool) map[string][]core.Arc[string] {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("v%d", i)
	}

	adj := make(map[string][]core.Arc[string], n)
	for _, name := range names {
		adj[name] = nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !loops {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			weight := math.Round(rng.Float64()*400-200) / 10
			adj[names[i]] = append(adj[names[i]], core.Arc[string]{To: names[j], Weight: weight})
		}
	}

	return adj
}

// randomParallelAdj draws like randomAdj but lets every selected pair,
// loops included, carry one or two arcs with independent weights.
func randomParallelAdj(rng *rand.Rand, n int, p float64, loops bool) map[string][]core.Arc[string] {
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("v%d", i)
	}

	adj := make(map[string][]core.Arc[string], n)
	for _, name := range names {
		adj[name] = nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j && !loops {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			for count := 1 + rng.Intn(2); count > 0; count-- {
				weight := math.Round(rng.Float64()*400-200) / 10
				adj[names[i]] = append(adj[names[i]], core.Arc[string]{To: names[j], Weight: weight})
			}
		}
	}

	return adj
}

// TestMaxMeanCycle_MatchesEnumeration sweeps sizes, densities and
// seeds, comparing the DP's mean against exhaustive enumeration and
// validating every returned witness. TwoLayers must reproduce the
// FullTable mean on the same inputs.
func TestMaxMeanCycle_MatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 2; n <= 8; n++ {
		for _, p := range []float64{0.15, 0.3, 0.5} {
			for trial := 0; trial < 40; trial++ {
				adj := randomAdj(rng, n, p, trial%3 == 0)
				tag := fmt.Sprintf("n=%d p=%.2f trial=%d", n, p, trial)

				want, hasCycle := extremeMeanByEnumeration(adj, true)
				cycle, mean, err := karp.MaxMeanCycle(adj)
				if !hasCycle {
					require.ErrorIs(t, err, karp.ErrNoCycle, tag)

					continue
				}
				require.NoError(t, err, tag)
				require.InDelta(t, want, mean, 1e-9, tag)
				assertValidCycle(t, adj, cycle, mean, true)

				_, rolled, err := karp.MaxMeanCycle(adj, karp.WithMemoryMode(karp.TwoLayers))
				require.NoError(t, err, tag)
				require.InDelta(t, mean, rolled, 1e-12, tag)
			}
		}
	}
}

// TestMinMeanCycle_MatchesEnumeration mirrors the sweep for the
// minimum entry point.
func TestMinMeanCycle_MatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))

	for n := 2; n <= 8; n++ {
		for _, p := range []float64{0.2, 0.4} {
			for trial := 0; trial < 30; trial++ {
				adj := randomAdj(rng, n, p, trial%4 == 0)
				tag := fmt.Sprintf("n=%d p=%.2f trial=%d", n, p, trial)

				want, hasCycle := extremeMeanByEnumeration(adj, false)
				cycle, mean, err := karp.MinMeanCycle(adj)
				if !hasCycle {
					require.ErrorIs(t, err, karp.ErrNoCycle, tag)

					continue
				}
				require.NoError(t, err, tag)
				require.InDelta(t, want, mean, 1e-9, tag)
				assertValidCycle(t, adj, cycle, mean, false)
			}
		}
	}
}

// TestMeanCycle_ParallelArcsMatchEnumeration sweeps graphs whose pairs
// may carry two parallel arcs besides self-loops, checking both
// extremes against enumeration: the per-pair collapse inside the
// solver must agree with the collapse inside the oracle in either
// direction, and every witness must survive assertValidCycle.
func TestMeanCycle_ParallelArcsMatchEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for n := 2; n <= 7; n++ {
		for _, p := range []float64{0.25, 0.45} {
			for trial := 0; trial < 25; trial++ {
				adj := randomParallelAdj(rng, n, p, trial%2 == 0)
				tag := fmt.Sprintf("n=%d p=%.2f trial=%d", n, p, trial)

				want, hasCycle := extremeMeanByEnumeration(adj, true)
				cycle, mean, err := karp.MaxMeanCycle(adj)
				if !hasCycle {
					require.ErrorIs(t, err, karp.ErrNoCycle, tag)

					continue
				}
				require.NoError(t, err, tag)
				require.InDelta(t, want, mean, 1e-9, tag)
				assertValidCycle(t, adj, cycle, mean, true)

				want, _ = extremeMeanByEnumeration(adj, false)
				cycle, mean, err = karp.MinMeanCycle(adj)
				require.NoError(t, err, tag)
				require.InDelta(t, want, mean, 1e-9, tag)
				assertValidCycle(t, adj, cycle, mean, false)
			}
		}
	}
}

// TestMinMaxDuality checks min(G) == -max(-G) on random graphs: the
// Min entry is advertised as exactly that reduction.
func TestMinMaxDuality(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for trial := 0; trial < 60; trial++ {
		adj := randomAdj(rng, 6, 0.35, trial%2 == 0)

		negated := make(map[string][]core.Arc[string], len(adj))
		for v, arcs := range adj {
			flipped := make([]core.Arc[string], len(arcs))
			for i, a := range arcs {
				flipped[i] = core.Arc[string]{To: a.To, Weight: -a.Weight}
			}
			negated[v] = flipped
		}

		_, minMean, minErr := karp.MinMeanCycle(adj)
		_, maxNeg, maxErr := karp.MaxMeanCycle(negated)

		if minErr != nil {
			require.ErrorIs(t, minErr, karp.ErrNoCycle)
			require.ErrorIs(t, maxErr, karp.ErrNoCycle)

			continue
		}
		require.NoError(t, maxErr)
		require.InDelta(t, minMean, -maxNeg, 1e-12)
	}
}
