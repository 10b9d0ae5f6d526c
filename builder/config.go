// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// config.go — internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs.
// newBuilderConfig applies options in order (later overrides earlier)
// and is called exactly once per Build, so every constructor in one
// composition sees the same configuration.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates the knobs used by constructors. It is
// passed by value, so constructors cannot leak changes to each other.
type builderConfig struct {
	// idFn maps a vertex index to its key, deterministically.
	idFn func(int) string

	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// weightFn generates the weight of each emitted arc.
	weightFn WeightFn
}

// decimalID is the default ID scheme: plain decimal indices.
func decimalID(i int) string {
	return strconv.Itoa(i)
}

// newBuilderConfig resolves options into an immutable configuration.
// Defaults: decimal IDs, no RNG, constant weight DefaultArcWeight.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
