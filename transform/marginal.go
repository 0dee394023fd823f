// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// marginal.go — the Marginal strategy interface and kind dispatch.

package transform

import (
	"fmt"

	"github.com/causaldata/mixedsim/model"
)

// Marginal converts a full column of uniform quantiles into the typed
// column of one variable's target distribution.
//
// Contract:
//   - u values lie in (0,1); the copula engine guarantees this by mapping
//     finite normals through the standard normal CDF.
//   - Materialize is pure: it reads u, allocates the result, and touches no
//     shared state, so distinct variables may be materialized in any order.
type Marginal interface {
	Materialize(name string, u []float64) Column
}

// ForVariable returns the Marginal strategy for v's kind. This is the only
// dispatch point from the model's kind tag into the transform set; the
// copula engine is kind-agnostic. Panics on an unknown kind, which the
// model package's closed declaration surface rules out.
func ForVariable(v model.Variable) Marginal {
	switch v.Kind {
	case model.Continuous:
		return ContinuousMarginal{Params: v.Continuous}
	case model.Binary:
		return BinaryMarginal{Params: v.Binary}
	case model.Ordinal:
		return OrdinalMarginal{Params: v.Ordinal}
	case model.Count:
		return CountMarginal{Params: v.Count}
	default:
		panic(fmt.Sprintf("transform: no marginal for kind %v", v.Kind))
	}
}
