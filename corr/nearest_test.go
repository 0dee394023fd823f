package corr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/causaldata/mixedsim/corr"
)

// symFromRows builds a SymDense from full row data (must be symmetric).
func symFromRows(n int, data []float64) *mat.SymDense {
	return mat.NewSymDense(n, data)
}

// minEigen returns the smallest eigenvalue of s.
func minEigen(t *testing.T, s *mat.SymDense) float64 {
	t.Helper()
	var es mat.EigenSym
	require.True(t, es.Factorize(s, false))
	vals := es.Values(nil)
	lo := vals[0]
	for _, v := range vals {
		lo = math.Min(lo, v)
	}

	return lo
}

// TestNearestPSD_NoOpWhenPSD verifies that a valid correlation matrix passes
// through unchanged and reports Repaired=false.
func TestNearestPSD_NoOpWhenPSD(t *testing.T) {
	in := symFromRows(3, []float64{
		1.0, 0.5, 0.2,
		0.5, 1.0, 0.3,
		0.2, 0.3, 1.0,
	})

	out, rep := corr.NearestPSD(in)

	assert.False(t, rep.Repaired)
	assert.Equal(t, 0.0, rep.MaxShift)
	assert.False(t, rep.Exceeds(corr.DefaultFeasibilityTol))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, in.At(i, j), out.At(i, j), 1e-12)
		}
	}
}

// TestNearestPSD_RepairsInfeasibleTargets feeds the canonical infeasible
// triple (0.9, 0.9, -0.9): the repaired matrix must be factorizable, keep a
// unit diagonal, and flag the feasibility warning.
func TestNearestPSD_RepairsInfeasibleTargets(t *testing.T) {
	in := symFromRows(3, []float64{
		1.0, 0.9, 0.9,
		0.9, 1.0, -0.9,
		0.9, -0.9, 1.0,
	})
	require.Negative(t, minEigen(t, in), "test premise: declared matrix is indefinite")

	out, rep := corr.NearestPSD(in)

	assert.True(t, rep.Repaired)
	assert.Negative(t, rep.MinEigen)
	assert.True(t, rep.Exceeds(corr.DefaultFeasibilityTol),
		"a large clip must surface as a feasibility warning")

	// Unit diagonal restored exactly.
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, out.At(i, i))
	}
	// Off-diagonal entries remain correlations.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.LessOrEqual(t, math.Abs(out.At(i, j)), 1.0+1e-12)
		}
	}
	// Result is PSD (in fact positive definite) and Cholesky-factorizable.
	assert.GreaterOrEqual(t, minEigen(t, out), -1e-12)
	var ch mat.Cholesky
	assert.True(t, ch.Factorize(out), "repaired matrix must factorize")
}

// TestNearestPSD_PerfectCorrelationEndpoint checks the rank-deficient case
// rho=1: the smallest eigenvalue is 0, squarely at the clip boundary, and
// repair must stay within floor-sized rounding of the input.
func TestNearestPSD_PerfectCorrelationEndpoint(t *testing.T) {
	in := symFromRows(2, []float64{
		1, 1,
		1, 1,
	})

	out, rep := corr.NearestPSD(in)

	assert.Less(t, rep.MaxShift, 2*corr.EigenFloor,
		"a zero eigenvalue moves by at most the floor plus rounding")
	assert.False(t, rep.Exceeds(corr.DefaultFeasibilityTol))
	assert.InDelta(t, 1.0, out.At(0, 1), 1e-6)
	assert.Equal(t, 1.0, out.At(0, 0))
}

// TestNearestPSD_DoesNotMutateInput guards the no-mutation contract.
func TestNearestPSD_DoesNotMutateInput(t *testing.T) {
	in := symFromRows(3, []float64{
		1.0, 0.9, 0.9,
		0.9, 1.0, -0.9,
		0.9, -0.9, 1.0,
	})
	want := mat.NewSymDense(3, nil)
	want.CopySym(in)

	_, _ = corr.NearestPSD(in)

	assert.True(t, mat.Equal(want, in), "input matrix must not be mutated")
}

// TestReport_String covers both rendering branches.
func TestReport_String(t *testing.T) {
	assert.Contains(t, corr.Report{}.String(), "no repair")
	assert.Contains(t, corr.Report{Repaired: true, MinEigen: -0.3, MaxShift: 0.3}.String(), "repaired")
}
