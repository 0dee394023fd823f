// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// count.go — Poisson(rate) marginal via inverse CDF by accumulation.

package transform

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/causaldata/mixedsim/model"
)

// PMF-walk bound: rate + 40·sqrt(rate) + 64 covers far more than any
// quantile a float64 uniform strictly below 1 can reach, while keeping the
// cap O(rate).
const (
	countScanSigmas = 40.0
	countScanSlack  = 64
)

// CountMarginal realizes Poisson(Rate) counts by the inverse CDF: the
// smallest k with CDF(k) ≥ u, found by accumulating the PMF from k = 0.
type CountMarginal struct {
	Params model.CountParams
}

// Materialize walks the Poisson PMF per observation. Expected O(rate) steps
// per value; the walk is capped so a quantile at the extreme upper tail
// cannot loop unbounded on accumulated rounding.
func (m CountMarginal) Materialize(name string, u []float64) Column {
	dist := distuv.Poisson{Lambda: m.Params.Rate}
	limit := scanCap(m.Params.Rate)

	values := make([]int, len(u))
	for i, q := range u {
		k := 0
		acc := dist.Prob(0)
		for acc < q && k < limit {
			k++
			acc += dist.Prob(float64(k))
		}
		values[i] = k
	}

	return &IntColumn{ColName: name, ColKind: model.Count, Values: values}
}

// scanCap returns the PMF-walk bound for the given rate.
func scanCap(rate float64) int {
	return int(rate+countScanSigmas*math.Sqrt(rate)) + countScanSlack
}
