// SPDX-License-Identifier: MIT
// Package: mixedsim/model
//
// registry.go — the ordered, validated set of declared variables.
//
// Contract:
//   - Names are unique; AddX fails with ErrDuplicateVariable on a repeat.
//   - Every AddX validates its parameters before any state mutation, so a
//     failed declaration leaves the registry untouched.
//   - Insertion order is preserved (Names/At/Variables) and defines the
//     natural column order of generated datasets.
//   - Close() freezes the registry; every later AddX returns ErrModelClosed.
//     Close is idempotent.
//
// Determinism:
//   - All views iterate in insertion order; there is no map-order leakage.
//
// Complexity:
//   - AddX: O(1) amortized (O(L) for ordinal validation, L = level count).
//   - Views: Names/Variables O(n) copies; At/Index O(1).

package model

import "fmt"

// Registry holds the ordered set of declared variables for one simulation.
// The zero value is NOT usable; construct with NewRegistry.
type Registry struct {
	vars   []Variable
	index  map[string]int
	closed bool
}

// NewRegistry returns an empty, open registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// AddContinuous declares a Normal(mean, std) variable, optionally bounded
// via WithMin/WithMax. Returns ErrInvalidParameter, ErrDuplicateVariable or
// ErrModelClosed.
func (r *Registry) AddContinuous(name string, mean, std float64, opts ...ContinuousOption) error {
	params := ContinuousParams{Mean: mean, Std: std}
	for _, opt := range opts {
		opt(&params)
	}
	if err := params.validate(); err != nil {
		return fmt.Errorf("AddContinuous(%q): %w", name, err)
	}

	return r.register(Variable{Name: name, Kind: Continuous, Continuous: params})
}

// AddBinary declares a Bernoulli(prob) variable realized as 0/1.
func (r *Registry) AddBinary(name string, prob float64) error {
	params := BinaryParams{Prob: prob}
	if err := params.validate(); err != nil {
		return fmt.Errorf("AddBinary(%q): %w", name, err)
	}

	return r.register(Variable{Name: name, Kind: Binary, Binary: params})
}

// AddOrdinal declares an ordered-categorical variable. levels holds the
// labels in ordinal order; probs the matching probabilities (must sum to 1
// within ProbSumTolerance). Both slices are copied; the caller keeps
// ownership of its arguments.
func (r *Registry) AddOrdinal(name string, levels []string, probs []float64) error {
	params := OrdinalParams{
		Levels: append([]string(nil), levels...),
		Probs:  append([]float64(nil), probs...),
	}
	if err := params.validate(); err != nil {
		return fmt.Errorf("AddOrdinal(%q): %w", name, err)
	}

	return r.register(Variable{Name: name, Kind: Ordinal, Ordinal: params})
}

// AddCount declares a Poisson(rate) variable realized as non-negative integers.
func (r *Registry) AddCount(name string, rate float64) error {
	params := CountParams{Rate: rate}
	if err := params.validate(); err != nil {
		return fmt.Errorf("AddCount(%q): %w", name, err)
	}

	return r.register(Variable{Name: name, Kind: Count, Count: params})
}

// register appends a validated variable, enforcing the shared invariants
// (open registry, non-empty unique name). Single mutation point.
func (r *Registry) register(v Variable) error {
	if r.closed {
		return fmt.Errorf("declare %q: %w", v.Name, ErrModelClosed)
	}
	if v.Name == "" {
		return fmt.Errorf("empty variable name: %w", ErrInvalidParameter)
	}
	if _, dup := r.index[v.Name]; dup {
		return fmt.Errorf("declare %q: %w", v.Name, ErrDuplicateVariable)
	}

	r.index[v.Name] = len(r.vars)
	r.vars = append(r.vars, v)

	return nil
}

// Close freezes the registry against further declarations. Idempotent.
// The copula engine calls this when generation starts; callers may also
// close explicitly to assert a spec is complete.
func (r *Registry) Close() { r.closed = true }

// Closed reports whether the registry has been frozen.
func (r *Registry) Closed() bool { return r.closed }

// Len returns the number of declared variables.
func (r *Registry) Len() int { return len(r.vars) }

// Index returns the declaration position of name, or (0, false) when name
// was never declared.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]

	return i, ok
}

// At returns the variable at declaration position i. Panics on an
// out-of-range index (programmer error; positions come from Index/Len).
func (r *Registry) At(i int) Variable { return r.vars[i] }

// Names returns the declared names in insertion order (fresh slice).
func (r *Registry) Names() []string {
	names := make([]string, len(r.vars))
	for i, v := range r.vars {
		names[i] = v.Name
	}

	return names
}

// Variables returns a copy of all declarations in insertion order.
func (r *Registry) Variables() []Variable {
	return append([]Variable(nil), r.vars...)
}
