// SPDX-License-Identifier: MIT
// Package: mixedsim/copula
//
// simulator.go — the public facade: declarations, correlations, generation.
//
// Contract:
//   - Declaration methods delegate to model.Registry and corr.Builder and
//     surface their sentinel errors unchanged.
//   - The first Generate call closes the registry: the specification is
//     read-only from then on, so repeated Generate calls (with different
//     seeds) draw from one frozen model.
//   - Generate returns either a complete Dataset or an error — never both,
//     never partial output.
//
// Determinism:
//   - Fixed draw order: observations row by row, latent coordinates in
//     declaration order within a row. Same seed + same declarations ⇒
//     bit-identical output.

package copula

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/causaldata/mixedsim/corr"
	"github.com/causaldata/mixedsim/model"
	"github.com/causaldata/mixedsim/transform"
)

// Simulator builds and samples one correlated mixed-type specification.
// The zero value is not usable; construct with New.
type Simulator struct {
	reg     *model.Registry
	targets *corr.Builder
}

// New returns an empty simulator: no variables, no correlations.
func New() *Simulator {
	reg := model.NewRegistry()

	return &Simulator{reg: reg, targets: corr.NewBuilder(reg)}
}

// AddContinuous declares a Normal(mean, std) variable, optionally bounded
// via model.WithMin / model.WithMax.
func (s *Simulator) AddContinuous(name string, mean, std float64, opts ...model.ContinuousOption) error {
	return s.reg.AddContinuous(name, mean, std, opts...)
}

// AddBinary declares a Bernoulli(prob) variable realized as 0/1.
func (s *Simulator) AddBinary(name string, prob float64) error {
	return s.reg.AddBinary(name, prob)
}

// AddOrdinal declares an ordered-categorical variable over levels with the
// given probabilities (must sum to 1).
func (s *Simulator) AddOrdinal(name string, levels []string, probs []float64) error {
	return s.reg.AddOrdinal(name, levels, probs)
}

// AddCount declares a Poisson(rate) variable realized as counts.
func (s *Simulator) AddCount(name string, rate float64) error {
	return s.reg.AddCount(name, rate)
}

// SetCorrelation declares the target latent correlation between two
// declared variables. Symmetric; re-setting a pair overwrites.
func (s *Simulator) SetCorrelation(nameA, nameB string, rho float64) error {
	return s.targets.Set(nameA, nameB, rho)
}

// Variables returns the declared variables in declaration order.
func (s *Simulator) Variables() []model.Variable { return s.reg.Variables() }

// Generate draws sampleSize observations of every declared variable.
//
// Algorithm:
//  1. Freeze the registry and assemble the declared correlation matrix.
//  2. Repair it to positive definite (corr.NearestPSD, eigenvalue
//     clipping); the repair Report travels on the returned Dataset.
//  3. Cholesky-factor the repaired matrix into L (guarded by
//     ErrFactorization; unreachable given the repair floor).
//  4. Per observation: draw k iid standard normals from the call's own
//     source, correlate them through L, and map each coordinate to a
//     uniform quantile via the standard normal CDF.
//  5. Materialize each variable's column through its marginal transform;
//     column order is declaration order.
//
// Peak memory is sampleSize×k float64 for the uniform quantiles plus the
// k×k factor — sized up front, independent of the data drawn.
func (s *Simulator) Generate(sampleSize int, opts ...Option) (*Dataset, error) {
	if s.reg.Len() == 0 {
		return nil, fmt.Errorf("Generate: %w", ErrEmptyModel)
	}
	if sampleSize <= 0 {
		return nil, fmt.Errorf("Generate: n=%d: %w", sampleSize, ErrInvalidSampleSize)
	}
	cfg := gatherOptions(opts)

	// The first generation closes the model for further declarations.
	s.reg.Close()
	k := s.reg.Len()

	repaired, report := corr.NearestPSD(s.targets.Dense())

	var ch mat.Cholesky
	if !ch.Factorize(repaired) {
		return nil, fmt.Errorf("Generate: post-repair: %w", ErrFactorization)
	}
	var lower mat.TriDense
	ch.LTo(&lower)

	// Draw, correlate, and map to uniforms column-by-variable. The latent
	// vector for one observation is ephemeral scratch; only the uniforms
	// are kept until materialization.
	uniforms := make([][]float64, k)
	for j := range uniforms {
		uniforms[j] = make([]float64, sampleSize)
	}
	iid := make([]float64, k)
	for row := 0; row < sampleSize; row++ {
		for j := 0; j < k; j++ {
			iid[j] = cfg.rng.NormFloat64()
		}
		for j := 0; j < k; j++ {
			// z_j = Σ_{m ≤ j} L[j][m] · x[m]; L is lower triangular.
			z := 0.0
			for m := 0; m <= j; m++ {
				z += lower.At(j, m) * iid[m]
			}
			uniforms[j][row] = distuv.UnitNormal.CDF(z)
		}
	}

	columns := make([]transform.Column, k)
	for j := 0; j < k; j++ {
		v := s.reg.At(j)
		columns[j] = transform.ForVariable(v).Materialize(v.Name, uniforms[j])
	}

	return &Dataset{
		Columns:        columns,
		Feasibility:    report,
		feasibilityTol: cfg.feasibilityTol,
	}, nil
}
