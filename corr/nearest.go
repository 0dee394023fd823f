// SPDX-License-Identifier: MIT
// Package: mixedsim/corr
//
// nearest.go — PSD repair by eigenvalue clipping.
//
// Contract:
//   - NearestPSD never fails. It returns a fresh symmetric matrix with a
//     unit diagonal and all eigenvalues ≥ EigenFloor, plus a Report.
//   - Already-PSD inputs pass through up to floating-point rounding and
//     report Repaired=false.
//   - The input matrix is never mutated.
//
// Complexity: O(n³) time (symmetric eigensolve + reconstruction),
// O(n²) space.

package corr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EigenFloor is the positive floor negative eigenvalues are clipped up to.
// A strictly positive floor keeps the repaired matrix positive definite so
// the downstream Cholesky factorization cannot encounter a zero pivot.
// Chosen at 1e-8: far above float64 eigensolve noise (~1e-14 for unit-scale
// matrices), far below any correlation magnitude a caller could notice.
const EigenFloor = 1e-8

// DefaultFeasibilityTol is the default threshold on Report.MaxShift above
// which a set of declared targets is considered jointly infeasible and
// worth surfacing to the caller as a warning.
const DefaultFeasibilityTol = 1e-6

// Report describes what PSD repair did to a declared correlation matrix.
// It is a diagnostic value, never an error: generation proceeds regardless.
type Report struct {
	// Repaired is true when at least one eigenvalue was clipped.
	Repaired bool

	// MinEigen is the smallest eigenvalue of the declared matrix before
	// clipping. Negative values mean the declared targets were not jointly
	// realizable as stated.
	MinEigen float64

	// MaxShift is the largest absolute change applied to any eigenvalue by
	// clipping. Zero when the input was already PSD.
	MaxShift float64
}

// Exceeds reports whether the repair moved the spectrum by more than tol,
// i.e. whether the realized correlations will visibly deviate from the
// declared targets. Use DefaultFeasibilityTol unless you have a reason.
func (r Report) Exceeds(tol float64) bool { return r.MaxShift > tol }

// String renders the report for logs and summaries.
func (r Report) String() string {
	if !r.Repaired {
		return "corr: declared matrix is positive semi-definite; no repair"
	}

	return fmt.Sprintf("corr: repaired indefinite matrix (min eigenvalue %.3g, max shift %.3g)",
		r.MinEigen, r.MaxShift)
}

// NearestPSD projects s onto a valid correlation matrix by eigenvalue
// clipping: eigendecompose, clip eigenvalues below EigenFloor up to the
// floor, reconstruct, and rescale the diagonal back to exactly 1. The
// projection is deterministic but not minimum-distance; the Report captures
// how far it moved the spectrum so callers can warn on infeasible targets.
func NearestPSD(s *mat.SymDense) (*mat.SymDense, Report) {
	n := s.SymmetricDim()

	var es mat.EigenSym
	if ok := es.Factorize(s, true); !ok {
		// The symmetric eigensolve cannot fail on finite input; finite-ness
		// is enforced at declaration time. Guard anyway: fall back to the
		// identity-blended input rather than returning garbage.
		return identityFallback(s), Report{Repaired: true, MaxShift: 1}
	}

	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	report := Report{MinEigen: vals[0]}
	for _, v := range vals {
		if v < report.MinEigen {
			report.MinEigen = v
		}
	}

	// Clip the spectrum to the floor, tracking the largest shift.
	for i, v := range vals {
		if v < EigenFloor {
			if shift := EigenFloor - v; shift > report.MaxShift {
				report.MaxShift = shift
			}
			vals[i] = EigenFloor
			report.Repaired = true
		}
	}
	if !report.Repaired {
		// Already PSD: hand back a copy so callers own their matrix.
		out := mat.NewSymDense(n, nil)
		out.CopySym(s)

		return out, report
	}

	// Reconstruct B = V · diag(vals) · Vᵀ.
	scaled := mat.NewDense(n, n, nil)
	scaled.Copy(&vecs)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			scaled.Set(i, j, scaled.At(i, j)*vals[j])
		}
	}
	recon := mat.NewDense(n, n, nil)
	recon.Mul(scaled, vecs.T())

	// Rescale so the diagonal returns to exactly 1:
	// out[i][j] = recon[i][j] / sqrt(recon[i][i] * recon[j][j]).
	norm := make([]float64, n)
	for i := 0; i < n; i++ {
		norm[i] = 1 / math.Sqrt(recon.At(i, i))
	}
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			// Average the two reconstruction cells to wash out rounding
			// asymmetry before rescaling.
			v := (recon.At(i, j) + recon.At(j, i)) / 2
			out.SetSym(i, j, v*norm[i]*norm[j])
		}
	}

	return out, report
}

// identityFallback blends s halfway toward the identity, a crude but always
// factorizable correlation matrix. Reached only if the eigensolve fails,
// which finite input rules out.
func identityFallback(s *mat.SymDense) *mat.SymDense {
	n := s.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, s.At(i, j)/2)
		}
	}

	return out
}
