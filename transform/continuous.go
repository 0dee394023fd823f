// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// continuous.go — Normal(mean, std) marginal with optional clipping.

package transform

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/causaldata/mixedsim/model"
)

// ContinuousMarginal realizes Normal(Mean, Std) values by the inverse CDF.
// When bounds are declared, realized values are clipped into [Min, Max];
// the clipped tail mass sits exactly on the bound (no resampling), see the
// package documentation.
type ContinuousMarginal struct {
	Params model.ContinuousParams
}

// Materialize maps each quantile through Normal(Mean, Std).Quantile and
// applies the declared bounds. O(len(u)) time, one column allocation.
func (m ContinuousMarginal) Materialize(name string, u []float64) Column {
	dist := distuv.Normal{Mu: m.Params.Mean, Sigma: m.Params.Std}

	values := make([]float64, len(u))
	for i, q := range u {
		v := dist.Quantile(q)
		if m.Params.Min != nil && v < *m.Params.Min {
			v = *m.Params.Min
		}
		if m.Params.Max != nil && v > *m.Params.Max {
			v = *m.Params.Max
		}
		values[i] = v
	}

	return &FloatColumn{ColName: name, Values: values}
}
