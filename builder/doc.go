// Package builder provides deterministic and randomized constructors
// for core.Digraph fixtures: rings, paths, complete digraphs, sparse
// random digraphs and pinned self-loops.
//
// The package exists for tests, benchmarks and examples that need
// graphs with known cycle structure: a Ring always has exactly one
// big cycle, a Path has none, Complete has plenty, RandomSparse has
// whatever the seed dictates, and SelfLoop plants a cycle of length
// one with an exact weight.
//
// Design contract:
//
//   - One orchestrator: Build(gopts, bopts, cons...). It creates the
//     Digraph, resolves the configuration once, and applies the
//     constructors in order, so fixtures compose: Ring(n) followed by
//     RandomSparse(n, p) yields a strongly-cyclic random graph over
//     the same vertices.
//   - Determinism: the same options, seed and constructor order
//     produce an identical Digraph, down to vertex insertion order.
//   - Safety: constructors never panic; they return sentinel errors.
//     Validation panics are confined to option and weight-function
//     constructors, which reject meaningless arguments up front.
//
// Errors:
//
//	ErrTooFewVertices     - size parameter below the constructor's minimum.
//	ErrInvalidProbability - probability outside [0, 1].
//	ErrNeedRandSource     - stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed    - nil Constructor passed to Build.
package builder
