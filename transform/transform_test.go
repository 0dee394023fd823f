package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/causaldata/mixedsim/model"
	"github.com/causaldata/mixedsim/transform"
)

// fptr is a test shorthand for building bound pointers.
func fptr(v float64) *float64 { return &v }

// TestContinuous_InverseCDF verifies that known quantiles land on the known
// normal deviates: u=0.5 → mean, u=Φ(1) → mean+std.
func TestContinuous_InverseCDF(t *testing.T) {
	m := transform.ContinuousMarginal{Params: model.ContinuousParams{Mean: 10, Std: 2}}
	phi1 := distuv.UnitNormal.CDF(1)

	col := m.Materialize("x", []float64{0.5, phi1, 1 - phi1})
	fc, ok := col.(*transform.FloatColumn)
	require.True(t, ok)

	assert.Equal(t, "x", col.Name())
	assert.Equal(t, model.Continuous, col.Kind())
	assert.InDelta(t, 10.0, fc.Values[0], 1e-12)
	assert.InDelta(t, 12.0, fc.Values[1], 1e-9)
	assert.InDelta(t, 8.0, fc.Values[2], 1e-9)
}

// TestContinuous_BoundsClip verifies clipping (not resampling): extreme
// quantiles land exactly on the bounds.
func TestContinuous_BoundsClip(t *testing.T) {
	m := transform.ContinuousMarginal{Params: model.ContinuousParams{
		Mean: 0, Std: 1, Min: fptr(-1), Max: fptr(1),
	}}

	col := m.Materialize("x", []float64{0.0001, 0.5, 0.9999})
	fc := col.(*transform.FloatColumn)

	assert.Equal(t, -1.0, fc.Values[0], "lower tail clips exactly onto min")
	assert.InDelta(t, 0.0, fc.Values[1], 1e-12)
	assert.Equal(t, 1.0, fc.Values[2], "upper tail clips exactly onto max")
}

// TestBinary_Threshold verifies the u < prob rule, including the exact
// boundary u == prob realizing 0.
func TestBinary_Threshold(t *testing.T) {
	m := transform.BinaryMarginal{Params: model.BinaryParams{Prob: 0.3}}

	col := m.Materialize("t", []float64{0.1, 0.29999, 0.3, 0.9})
	ic, ok := col.(*transform.IntColumn)
	require.True(t, ok)

	assert.Equal(t, model.Binary, col.Kind())
	assert.Equal(t, []int{1, 1, 0, 0}, ic.Values,
		"u == prob sits outside the success interval [0, prob)")
}

// TestOrdinal_Cutpoints verifies the closed-open interval convention:
// levels own [C(k-1), C(k)), a cutpoint belongs to the interval it opens.
func TestOrdinal_Cutpoints(t *testing.T) {
	m := transform.OrdinalMarginal{Params: model.OrdinalParams{
		Levels: []string{"HS", "College", "Grad"},
		Probs:  []float64{0.3, 0.5, 0.2},
	}}

	col := m.Materialize("edu", []float64{
		0.0,     // lowest level
		0.29999, // still HS
		0.3,     // exactly the first cutpoint → College
		0.79999, // still College
		0.8,     // exactly the second cutpoint → Grad
		0.99999, // top of the scale
	})
	lc, ok := col.(*transform.LabelColumn)
	require.True(t, ok)

	assert.Equal(t, model.Ordinal, col.Kind())
	assert.Equal(t, []string{"HS", "HS", "College", "College", "Grad", "Grad"}, lc.Values)
}

// TestOrdinal_SingleLevel degenerates to a constant column.
func TestOrdinal_SingleLevel(t *testing.T) {
	m := transform.OrdinalMarginal{Params: model.OrdinalParams{
		Levels: []string{"only"},
		Probs:  []float64{1},
	}}

	lc := m.Materialize("c", []float64{0.01, 0.5, 0.99}).(*transform.LabelColumn)
	assert.Equal(t, []string{"only", "only", "only"}, lc.Values)
}

// TestCount_InverseCDF verifies the smallest-k-with-CDF≥u rule against the
// Poisson CDF computed directly from gonum.
func TestCount_InverseCDF(t *testing.T) {
	const rate = 3.0
	m := transform.CountMarginal{Params: model.CountParams{Rate: rate}}
	dist := distuv.Poisson{Lambda: rate}

	u := []float64{0.01, 0.2, 0.5, 0.8, 0.99, 0.999999}
	ic := m.Materialize("visits", u).(*transform.IntColumn)
	require.Equal(t, model.Count, ic.Kind())

	for i, q := range u {
		k := ic.Values[i]
		assert.GreaterOrEqualf(t, k, 0, "u=%v", q)
		assert.GreaterOrEqualf(t, dist.CDF(float64(k)), q-1e-12,
			"u=%v: CDF(k) must reach the quantile", q)
		if k > 0 {
			assert.Lessf(t, dist.CDF(float64(k-1)), q+1e-12,
				"u=%v: k must be the smallest such integer", q)
		}
	}
}

// TestForVariable_Dispatch covers the kind→strategy switch.
func TestForVariable_Dispatch(t *testing.T) {
	cases := []struct {
		v    model.Variable
		want model.Kind
	}{
		{model.Variable{Name: "a", Kind: model.Continuous,
			Continuous: model.ContinuousParams{Std: 1}}, model.Continuous},
		{model.Variable{Name: "b", Kind: model.Binary,
			Binary: model.BinaryParams{Prob: 0.5}}, model.Binary},
		{model.Variable{Name: "c", Kind: model.Ordinal,
			Ordinal: model.OrdinalParams{Levels: []string{"x"}, Probs: []float64{1}}}, model.Ordinal},
		{model.Variable{Name: "d", Kind: model.Count,
			Count: model.CountParams{Rate: 1}}, model.Count},
	}
	for _, tc := range cases {
		col := transform.ForVariable(tc.v).Materialize(tc.v.Name, []float64{0.5})
		assert.Equal(t, tc.want, col.Kind())
		assert.Equal(t, tc.v.Name, col.Name())
		assert.Equal(t, 1, col.Len())
	}

	assert.Panics(t, func() {
		transform.ForVariable(model.Variable{Kind: model.Kind(99)})
	}, "unknown kind is a programmer error")
}
