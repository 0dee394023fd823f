// SPDX-License-Identifier: MIT
// Package: mixedsim/model
//
// errors.go — sentinel errors for variable declaration.
//
// Error policy (explicit and strict):
//   • Only package-level sentinel variables are exposed.
//   • Callers MUST branch with errors.Is(err, ErrX), never string matching.
//   • Sentinels are never wrapped with formatted strings at definition site;
//     declaration methods attach context via fmt.Errorf("...: %w", ErrX).
//   • Declaration methods never panic on user input; validation panics are
//     confined to option constructors (WithX...).

package model

import "errors"

// ErrDuplicateVariable indicates that a variable with the same name was
// already declared in this registry. Names are unique per registry.
// Usage: if errors.Is(err, model.ErrDuplicateVariable) { /* rename */ }.
var ErrDuplicateVariable = errors.New("model: duplicate variable name")

// ErrInvalidParameter indicates that a distribution parameter violates the
// invariants of its kind (non-positive std, probability outside (0,1),
// level probabilities not summing to 1, malformed bounds, and so on).
// The wrapping error names the offending parameter and value.
var ErrInvalidParameter = errors.New("model: invalid distribution parameter")

// ErrModelClosed indicates a declaration attempt after the registry was
// frozen (generation has started). Declare all variables first.
var ErrModelClosed = errors.New("model: registry is closed to new variables")
