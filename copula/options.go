// SPDX-License-Identifier: MIT
// Package: mixedsim/copula
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on nonsensical inputs
//     (programmer error); Generate itself never panics on user input.
//   • Determinism is explicit: seeding happens via WithSeed or WithRand.
//     Without either, each call owns a fresh time-seeded source — output
//     is non-deterministic but statistically identical, and no hidden
//     global generator is ever touched.

package copula

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/causaldata/mixedsim/corr"
)

// DefaultFeasibilityTol is the spectrum-shift threshold above which
// Dataset.Infeasible() reports the declared correlations as jointly
// unrealizable. Mirrors corr.DefaultFeasibilityTol.
const DefaultFeasibilityTol = corr.DefaultFeasibilityTol

// Option customizes one Generate call by mutating its private config
// before sampling begins.
type Option func(*genConfig)

// genConfig carries per-call knobs. Zero value = unseeded, default
// feasibility tolerance; gatherOptions fills the gaps.
type genConfig struct {
	rng            *rand.Rand
	feasibilityTol float64
}

// WithSeed locks the random source to a deterministic seed: the same seed
// and the same declarations produce bit-identical output.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit random source, e.g. one shared across a
// scripted sequence of Generate calls. Panics on nil to surface silent
// non-determinism early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("copula: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithFeasibilityTol overrides the spectrum-shift threshold used to flag
// the Dataset's feasibility warning. Panics on negative tolerance.
func WithFeasibilityTol(tol float64) Option {
	if tol < 0 {
		panic("copula: WithFeasibilityTol(negative)")
	}
	return func(c *genConfig) {
		c.feasibilityTol = tol
	}
}

// gatherOptions applies opts over defaults and enforces invariants: a
// usable RNG (time-seeded when unseeded) and a non-negative tolerance.
func gatherOptions(opts []Option) genConfig {
	cfg := genConfig{feasibilityTol: DefaultFeasibilityTol}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return cfg
}
