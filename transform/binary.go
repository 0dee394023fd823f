// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// binary.go — Bernoulli(prob) marginal.

package transform

import "github.com/causaldata/mixedsim/model"

// BinaryMarginal realizes Bernoulli(Prob) as 0/1: the uniform quantile is
// compared against the success probability, so P(u < Prob) = Prob exactly.
// Success therefore sits on the LOW tail of the latent scale, and a binary
// variable's realized association with another variable carries the
// opposite sign of the declared latent correlation; see the copula package
// documentation.
type BinaryMarginal struct {
	Params model.BinaryParams
}

// Materialize realizes 1 where u < Prob, else 0. O(len(u)).
func (m BinaryMarginal) Materialize(name string, u []float64) Column {
	values := make([]int, len(u))
	for i, q := range u {
		if q < m.Params.Prob {
			values[i] = 1
		}
	}

	return &IntColumn{ColName: name, ColKind: model.Binary, Values: values}
}
