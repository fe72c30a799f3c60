// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// errors.go — sentinel errors for the builder package.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is smaller than the
// allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (RandomDAG's edge probability).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was invoked
// without a seeded RNG in the resolved config (WithSeed was not supplied).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply WithSeed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates that Build received a nil Constructor, which
// is a programmer error surfaced as an error rather than a panic.
var ErrNilConstructor = errors.New("builder: nil constructor")
