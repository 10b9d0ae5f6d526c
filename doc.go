// Package meancycle finds extreme mean cycles in directed weighted
// graphs: the cycle whose average arc weight is maximum (or minimum),
// computed exactly by Karp's dynamic programming.
//
// 🚀 What is meancycle?
//
//	A small, thread-safe library built around one classic question:
//	among all cycles of a digraph, which one has the best weight per
//	step? It ships:
//		• Core primitives: a generic, lock-guarded digraph over any
//		  comparable key type, with float64 arc weights
//		• Karp's algorithm: maximum and minimum mean cycle in O(n*m)
//		  time, with full cycle reconstruction
//		• A low-memory mode: two rolling DP layers when only the mean
//		  value is needed
//		• Builders: rings, paths, complete and random digraphs for
//		  tests and benchmarks
//
// ✨ Why choose meancycle?
//
//   - Exact, not approximate: Karp's bound is tight for every input
//   - Beginner-friendly: one call, explicit sentinel errors, no setup
//   - Honest results: every returned cycle is re-checked against its
//     own arc weights before it reaches the caller
//   - Generic: string, int or struct vertex keys, no adapters needed
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — generic Digraph, Arc, mutation and snapshot primitives
//	karp/    — MaxMeanCycle / MinMeanCycle and their memory modes
//	builder/ — deterministic and randomized digraph constructors
//
// Quick ASCII example:
//
//	    X ──10──▶ Y
//	    ▲         │
//	    └───-5────┘
//
//	has a single cycle X→Y→X of total weight 5 over 2 arcs, so its
//	maximum cycle mean is 2.5.
//
// Typical uses: arbitrage detection over log-rates, throughput bounds
// of periodic schedules, worst-case gain of feedback loops.
//
//	go get github.com/katalvlaran/meancycle
package meancycle
