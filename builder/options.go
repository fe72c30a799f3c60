// SPDX-License-Identifier: MIT
// Package: dagpath/builder
//
// options.go — functional options resolved into an immutable builderConfig.
package builder

import (
	"math/rand"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index. It must be
// pure and deterministic: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "v" + the decimal string of idx, e.g. 0→"v0", 42→"v42".
// Never panics.
func DefaultIDFn(idx int) string {
	return "v" + strconv.Itoa(idx)
}

// NumericIDFn returns the decimal string of idx+1, matching graphs whose
// vertices are conventionally numbered from 1 (e.g. 0→"1", 6→"7").
// Never panics.
func NumericIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// builderConfig is the resolved, immutable configuration passed to every
// Constructor. It is produced once per Build call; constructors never
// mutate it.
type builderConfig struct {
	rng  *rand.Rand // nil unless WithSeed was supplied
	idFn IDFn       // never nil; DefaultIDFn unless overridden
}

// Option mutates the config during resolution.
type Option func(*builderConfig)

// newBuilderConfig resolves opts over the defaults, left to right.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG for stochastic constructors.
// The same seed and constructor order reproduce the identical graph.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme overrides how vertex indices map to IDs.
// Panics on a nil fn: a nil scheme is meaningless configuration, and option
// constructors are the one place this package is allowed to panic.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}
