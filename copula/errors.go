// SPDX-License-Identifier: MIT
// Package: mixedsim/copula
//
// errors.go — sentinel errors for generation.
//
// Error policy:
//   • Only package-level sentinels; branch with errors.Is.
//   • Declaration-time errors surface from the model and corr packages
//     unchanged (model.ErrDuplicateVariable, corr.ErrUnknownVariable, ...);
//     this file covers only generation itself.
//   • Generation errors are fatal for the call: no partial Dataset is ever
//     returned alongside a non-nil error.

package copula

import "errors"

// ErrEmptyModel indicates Generate was called before any variable was
// declared. Declare at least one variable first.
var ErrEmptyModel = errors.New("copula: no variables declared")

// ErrInvalidSampleSize indicates a non-positive requested sample size.
var ErrInvalidSampleSize = errors.New("copula: sample size must be positive")

// ErrFactorization indicates the repaired correlation matrix could not be
// Cholesky-factorized. The PSD repair floor makes this unreachable in
// practice; it is guarded so the pathological case reports instead of
// producing garbage.
var ErrFactorization = errors.New("copula: correlation matrix is not factorizable")
