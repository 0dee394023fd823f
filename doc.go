// Package mixedsim generates synthetic tabular datasets whose variables
// carry heterogeneous marginal distributions — continuous, binary,
// ordinal, count — under a user-declared pairwise correlation structure.
//
// 🚀 What is mixedsim?
//
//	A Gaussian-copula simulation engine for researchers who need
//	realistic test data for causal-inference work (power analysis,
//	estimator validation) without touching real sensitive data:
//	  • Declare each variable's marginal distribution
//	  • Declare target correlations between any pairs
//	  • Generate reproducible, correlated, typed columns
//
// ✨ Why choose mixedsim?
//
//   - Never aborts on infeasible targets – indefinite correlation
//     matrices are repaired by eigenvalue clipping and reported, not fatal
//   - Reproducible by construction – explicit seedable random sources,
//     no hidden global generator
//   - Strongly typed output – a closed set of column types per marginal
//     family, no interface{} cells
//   - Small, explicit API – declaration-time validation with sentinel
//     errors, matched via errors.Is
//
// Everything is organized under four subpackages:
//
//	model/     — variable declarations: kinds, parameters, the registry
//	corr/      — pairwise targets, dense assembly, PSD repair
//	transform/ — marginal transforms: uniform quantile → typed value
//	copula/    — the engine and the Simulator facade
//
// Quick sketch:
//
//	declarations + correlations ──► repaired latent Σ ──► L·x draws
//	      ──► Φ(z) uniforms ──► marginal transforms ──► typed table
//
// Dive into copula's package documentation for the full workflow and into
// examples/ for a runnable power-analysis scenario.
//
//	go get github.com/causaldata/mixedsim
package mixedsim
