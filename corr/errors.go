// SPDX-License-Identifier: MIT
// Package: mixedsim/corr
//
// errors.go — sentinel errors for correlation declarations.
//
// Error policy:
//   • Only package-level sentinels; branch with errors.Is.
//   • Set attaches the offending names/values via fmt.Errorf("...: %w").
//   • NearestPSD never returns an error by contract; infeasibility is a
//     Report, not a failure.

package corr

import "errors"

// ErrUnknownVariable indicates that a correlation references a name that was
// never declared in the registry. No partial mutation occurs.
var ErrUnknownVariable = errors.New("corr: unknown variable name")

// ErrSelfCorrelation indicates an attempt to set a correlation between a
// variable and itself; the diagonal is fixed at 1 and not settable.
var ErrSelfCorrelation = errors.New("corr: self-correlation is not settable")

// ErrInvalidCorrelation indicates a target value outside [-1, 1] or a
// non-finite value.
var ErrInvalidCorrelation = errors.New("corr: correlation out of range")
