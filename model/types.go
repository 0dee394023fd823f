// SPDX-License-Identifier: MIT
// Package: mixedsim/model
//
// types.go — the closed set of variable kinds and their parameter structs.
//
// Design:
//   • One Kind tag per marginal family, each with its own strongly-typed
//     parameter struct. Exactly one params field of a Variable is non-zero,
//     selected by Kind (a tagged variant, checked at declaration time).
//   • Parameter structs are plain data; validation lives next to them so the
//     Registry and tests share a single source of truth per kind.

package model

import (
	"fmt"
	"math"
)

// ProbSumTolerance is the absolute tolerance for ordinal level probabilities
// summing to 1. Sums farther from 1 than this are rejected at declaration.
const ProbSumTolerance = 1e-8

// Kind identifies the marginal-distribution family of a variable.
type Kind int

const (
	// Continuous draws from Normal(mean, std), optionally clipped to bounds.
	Continuous Kind = iota

	// Binary draws from Bernoulli(prob), realized as 0/1 integers.
	Binary

	// Ordinal draws one of an ordered list of labels with fixed probabilities.
	Ordinal

	// Count draws from Poisson(rate), realized as non-negative integers.
	Count
)

// String returns the lowercase kind name used in error messages and summaries.
func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	case Ordinal:
		return "ordinal"
	case Count:
		return "count"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ContinuousParams describes a Normal(Mean, Std) marginal.
// Min/Max, when non-nil, clip realized values to the closed interval
// [*Min, *Max]. Clipping piles tail probability mass onto the bound; it is
// deliberate (no resampling) and documented on the transform.
type ContinuousParams struct {
	Mean float64
	Std  float64
	Min  *float64
	Max  *float64
}

// validate enforces: Std > 0, all values finite, and Min < Max when both set.
func (p ContinuousParams) validate() error {
	if !isFinite(p.Mean) {
		return fmt.Errorf("continuous mean=%v must be finite: %w", p.Mean, ErrInvalidParameter)
	}
	if !(p.Std > 0) || !isFinite(p.Std) {
		return fmt.Errorf("continuous std=%v must be a finite positive number: %w", p.Std, ErrInvalidParameter)
	}
	if p.Min != nil && !isFinite(*p.Min) {
		return fmt.Errorf("continuous min=%v must be finite: %w", *p.Min, ErrInvalidParameter)
	}
	if p.Max != nil && !isFinite(*p.Max) {
		return fmt.Errorf("continuous max=%v must be finite: %w", *p.Max, ErrInvalidParameter)
	}
	if p.Min != nil && p.Max != nil && !(*p.Min < *p.Max) {
		return fmt.Errorf("continuous bounds min=%v, max=%v must satisfy min < max: %w",
			*p.Min, *p.Max, ErrInvalidParameter)
	}

	return nil
}

// BinaryParams describes a Bernoulli(Prob) marginal.
type BinaryParams struct {
	Prob float64
}

// validate enforces Prob strictly inside (0, 1); degenerate constants are
// rejected because they carry no correlation structure to preserve.
func (p BinaryParams) validate() error {
	if !(p.Prob > 0 && p.Prob < 1) {
		return fmt.Errorf("binary prob=%v must lie strictly in (0,1): %w", p.Prob, ErrInvalidParameter)
	}

	return nil
}

// OrdinalParams describes an ordered-categorical marginal: Levels holds the
// labels in their declared (ordinal) order, Probs the matching probabilities.
type OrdinalParams struct {
	Levels []string
	Probs  []float64
}

// validate enforces: at least one level, aligned slice lengths, unique
// non-empty labels, non-negative finite probabilities summing to 1 within
// ProbSumTolerance.
func (p OrdinalParams) validate() error {
	if len(p.Levels) == 0 {
		return fmt.Errorf("ordinal needs at least one level: %w", ErrInvalidParameter)
	}
	if len(p.Levels) != len(p.Probs) {
		return fmt.Errorf("ordinal has %d levels but %d probs: %w",
			len(p.Levels), len(p.Probs), ErrInvalidParameter)
	}

	seen := make(map[string]struct{}, len(p.Levels))
	sum := 0.0
	for i, label := range p.Levels {
		if label == "" {
			return fmt.Errorf("ordinal level %d has an empty label: %w", i, ErrInvalidParameter)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("ordinal level %q is declared twice: %w", label, ErrInvalidParameter)
		}
		seen[label] = struct{}{}

		pr := p.Probs[i]
		if !isFinite(pr) || pr < 0 {
			return fmt.Errorf("ordinal prob[%d]=%v must be finite and non-negative: %w",
				i, pr, ErrInvalidParameter)
		}
		sum += pr
	}
	if math.Abs(sum-1) > ProbSumTolerance {
		return fmt.Errorf("ordinal probs sum to %v, want 1 within %v: %w",
			sum, ProbSumTolerance, ErrInvalidParameter)
	}

	return nil
}

// CountParams describes a Poisson(Rate) marginal.
type CountParams struct {
	Rate float64
}

// validate enforces a finite positive rate.
func (p CountParams) validate() error {
	if !(p.Rate > 0) || !isFinite(p.Rate) {
		return fmt.Errorf("count rate=%v must be a finite positive number: %w", p.Rate, ErrInvalidParameter)
	}

	return nil
}

// Variable is one declared column of the simulated table: a unique name, a
// kind tag, and the parameter struct selected by that tag. Variables are
// immutable once declared; the Registry hands out copies only.
type Variable struct {
	Name string
	Kind Kind

	// Exactly one of the following is meaningful, selected by Kind.
	Continuous ContinuousParams
	Binary     BinaryParams
	Ordinal    OrdinalParams
	Count      CountParams
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
