// SPDX-License-Identifier: MIT
// Package: mixedsim/corr
//
// builder.go — sparse collection of pairwise targets and dense assembly.
//
// Contract:
//   - Set(a, b, rho) requires both names declared (ErrUnknownVariable),
//     a != b (ErrSelfCorrelation), and rho finite in [-1, 1]
//     (ErrInvalidCorrelation). All checks run before any mutation.
//   - Entries are keyed by the unordered pair; re-setting overwrites.
//   - Dense() places every entry and its mirror into an n×n symmetric
//     matrix with 1.0 on the diagonal; unset pairs stay 0.
//
// Determinism:
//   - Each unordered pair owns exactly one cell (and its mirror), so the
//     assembled matrix is independent of map iteration order.

package corr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/causaldata/mixedsim/model"
)

// Correlation-value domain bounds.
const (
	rhoMin = -1.0
	rhoMax = 1.0
)

// pair is an unordered index pair with i < j, the canonical entry key.
type pair struct{ i, j int }

// Builder accumulates pairwise latent-correlation targets against a
// registry of declared variables. The zero value is not usable; construct
// with NewBuilder.
type Builder struct {
	reg     *model.Registry
	entries map[pair]float64
}

// NewBuilder returns an empty builder bound to reg. The registry may still
// be open: correlations can be declared interleaved with variables, as long
// as both names exist at Set time.
func NewBuilder(reg *model.Registry) *Builder {
	return &Builder{reg: reg, entries: make(map[pair]float64)}
}

// Set declares the target correlation rho between the latent variables
// behind nameA and nameB. Symmetric: the (B,A) mirror is implied. Re-setting
// the same unordered pair overwrites the previous value.
func (b *Builder) Set(nameA, nameB string, rho float64) error {
	i, ok := b.reg.Index(nameA)
	if !ok {
		return fmt.Errorf("Set(%q, %q): %q: %w", nameA, nameB, nameA, ErrUnknownVariable)
	}
	j, ok := b.reg.Index(nameB)
	if !ok {
		return fmt.Errorf("Set(%q, %q): %q: %w", nameA, nameB, nameB, ErrUnknownVariable)
	}
	if i == j {
		return fmt.Errorf("Set(%q, %q): %w", nameA, nameB, ErrSelfCorrelation)
	}
	if math.IsNaN(rho) || rho < rhoMin || rho > rhoMax {
		return fmt.Errorf("Set(%q, %q): rho=%v not in [%v, %v]: %w",
			nameA, nameB, rho, rhoMin, rhoMax, ErrInvalidCorrelation)
	}

	if i > j {
		i, j = j, i
	}
	b.entries[pair{i, j}] = rho

	return nil
}

// Get returns the declared target for the unordered pair and whether it was
// ever set. Unknown names report (0, false).
func (b *Builder) Get(nameA, nameB string) (float64, bool) {
	i, ok := b.reg.Index(nameA)
	if !ok {
		return 0, false
	}
	j, ok := b.reg.Index(nameB)
	if !ok || i == j {
		return 0, false
	}
	if i > j {
		i, j = j, i
	}
	rho, ok := b.entries[pair{i, j}]

	return rho, ok
}

// Len returns the number of declared (unordered) entries.
func (b *Builder) Len() int { return len(b.entries) }

// Dense assembles the declared targets into an n×n symmetric correlation
// matrix with a unit diagonal, n = registry length. The result is freshly
// allocated; the builder holds no reference to it.
func (b *Builder) Dense() *mat.SymDense {
	n := b.reg.Len()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, 1)
	}
	for p, rho := range b.entries {
		s.SetSym(p.i, p.j, rho)
	}

	return s
}
