// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// options.go — functional options for Build.
//
// Option constructors validate and panic on meaningless inputs;
// the constructors themselves never panic at runtime. Determinism is
// explicit: seeding happens only via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// Option customizes the builder configuration before construction
// begins.
type Option func(*builderConfig)

// WithIDScheme sets the deterministic vertex key generator,
// index → key. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded deterministically. Use this in
// tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-arc weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
