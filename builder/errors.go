// SPDX-License-Identifier: MIT
// Package: meancycle/builder
//
// errors.go — sentinel errors for the builder package.
//
// Only sentinel variables are exposed; callers branch with
// errors.Is(err, ErrX). Constructors attach context via %w wrapping
// and never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1], or a NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires
// a non-nil RNG; set one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that Build was given a nil Constructor.
// Arc insertions refused by the target Digraph keep their core
// sentinel through the wrap chain instead.
var ErrConstructFailed = errors.New("builder: construction failed")
