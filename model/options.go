// SPDX-License-Identifier: MIT
// Package: mixedsim/model
//
// options.go — functional options for continuous declarations.
//
// Contract (strict):
//   • Options are functional (type ContinuousOption func(*ContinuousParams)).
//   • Option constructors VALIDATE and PANIC on nonsensical inputs
//     (programmer error); declaration methods never panic on user input.
//   • Bound consistency (min < max) is checked by ContinuousParams.validate,
//     not here, because it spans two options.

package model

import (
	"fmt"
	"math"
)

// ContinuousOption customizes a continuous declaration before validation.
type ContinuousOption func(*ContinuousParams)

// WithMin clips realized values below v up to v.
// Panics on NaN/±Inf; a non-finite bound is a programmer error.
func WithMin(v float64) ContinuousOption {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("model: WithMin(%v): bound must be finite", v))
	}
	return func(p *ContinuousParams) {
		bound := v
		p.Min = &bound
	}
}

// WithMax clips realized values above v down to v.
// Panics on NaN/±Inf; a non-finite bound is a programmer error.
func WithMax(v float64) ContinuousOption {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("model: WithMax(%v): bound must be finite", v))
	}
	return func(p *ContinuousParams) {
		bound := v
		p.Max = &bound
	}
}
