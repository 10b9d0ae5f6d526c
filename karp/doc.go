// Package karp computes extreme mean cycles of directed weighted
// graphs using Karp's dynamic programming, with optional cycle
// reconstruction and memory optimizations.
//
// 🚀 What is a mean cycle?
//
//	Every cycle of a digraph has a mean: total arc weight divided by
//	the number of arcs. Karp's algorithm finds the cycle whose mean is
//	maximum (or, mirrored, minimum) exactly, with no convergence knobs.
//	The quantity shows up in:
//	  • Currency arbitrage over log-exchange-rates
//	  • Throughput limits of periodic event systems
//	  • Worst-case gain of feedback loops in control models
//	  • Min-mean cycle canceling in network flow solvers
//
// ✨ Key features:
//   - exact O(n·m) time via the classic dp[k][v] recurrence
//   - full-table mode: reconstructs a concrete simple cycle achieving
//     the optimum, re-verified against its own arc weights
//   - two-layers mode: O(n) extra memory when only the mean matters
//   - generic vertex keys (any comparable type), float64 weights,
//     negatives, self-loops and parallel arcs all welcome
//   - map input or *core.Digraph input, same semantics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/meancycle/karp"
//
//	adj := map[string][]core.Arc[string]{
//	  "X": {{To: "Y", Weight: 10}},
//	  "Y": {{To: "X", Weight: -5}},
//	}
//
//	// compute
//	cycle, mean, err := karp.MaxMeanCycle(adj)
//	// cycle = [X Y X] (closed), mean = 2.5
//
// Performance:
//
//   - Time:   O(n·m), n = vertices, m = arcs
//   - Memory: O(n²) (FullTable) or O(n) (TwoLayers)
//
// See examples in example_test.go for arbitrage-flavored walkthroughs.
package karp
