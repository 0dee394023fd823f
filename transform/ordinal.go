// SPDX-License-Identifier: MIT
// Package: mixedsim/transform
//
// ordinal.go — ordered-categorical marginal via cumulative cutpoints.
//
// Interval convention (fixed, tested):
//   - Level k owns the closed-open interval [C(k-1), C(k)) of the unit
//     line, where C is the cumulative probability over declaration order
//     and C(-1) = 0. A cutpoint belongs to the interval it opens, never
//     the one it closes, so every quantile resolves to exactly one level.
//     The last level absorbs u up to 1.

package transform

import "github.com/causaldata/mixedsim/model"

// OrdinalMarginal realizes one of the declared labels by locating the
// uniform quantile among the cumulative cutpoints of the level
// probabilities, taken in declaration (ordinal) order.
type OrdinalMarginal struct {
	Params model.OrdinalParams
}

// Materialize partitions (0,1) by cumulative probabilities and picks the
// level whose interval contains each quantile. O(len(u) · L) with L levels;
// L is small in practice so a linear scan beats binary-search overhead.
func (m OrdinalMarginal) Materialize(name string, u []float64) Column {
	// Interior cutpoints C(0..L-2); the last level needs none because it
	// absorbs everything up to 1.
	cut := make([]float64, len(m.Params.Probs)-1)
	acc := 0.0
	for i := 0; i < len(cut); i++ {
		acc += m.Params.Probs[i]
		cut[i] = acc
	}

	values := make([]string, len(u))
	last := len(m.Params.Levels) - 1
	for i, q := range u {
		k := last
		for c, edge := range cut {
			if q < edge {
				k = c

				break
			}
		}
		values[i] = m.Params.Levels[k]
	}

	return &LabelColumn{ColName: name, Values: values}
}
