// Package corr assembles and repairs the latent correlation matrix of a
// mixed-type simulation.
//
// 🚀 What lives here?
//
//	A Builder collects pairwise target correlations between declared
//	variables (sparse, symmetric, unordered pairs) and assembles them
//	into a dense n×n correlation matrix with a unit diagonal.  Because
//	arbitrary pairwise targets need not be jointly realizable, NearestPSD
//	projects an indefinite matrix onto a valid correlation matrix by
//	eigenvalue clipping before any sampling happens.
//
// ✨ Key guarantees:
//   - Set validates both names, the pair, and the value before mutating
//     anything; a failed Set leaves the builder untouched.
//   - (A,B) and (B,A) address the same entry; the last write wins.
//   - Undeclared pairs default to correlation 0.
//   - NearestPSD never fails: it always returns a symmetric matrix with a
//     unit diagonal and eigenvalues at or above EigenFloor, plus a Report
//     describing how far the projection moved the spectrum.
//
// ⚙️ Algorithm (NearestPSD, eigenvalue clipping):
//  1. Eigendecompose the declared symmetric matrix: S = V·diag(λ)·Vᵀ.
//  2. Clip every λᵢ < EigenFloor up to EigenFloor.
//  3. Reconstruct B = V·diag(λ⁺)·Vᵀ.
//  4. Rescale B by the outer product of 1/√diag(B) so the diagonal
//     returns to exactly 1.
//
// This projection heuristic is deterministic but not the minimum-distance
// PSD matrix; the Report lets callers decide whether the declared targets
// were feasible (Report.Exceeds against a tolerance of their choice).
//
// Complexity: Dense O(n²), NearestPSD O(n³) (one symmetric eigensolve).
package corr
