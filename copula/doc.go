// Package copula generates correlated mixed-type datasets through a
// Gaussian copula: correlated latent standard normals, mapped to uniform
// quantiles, realized through each variable's marginal transform.
//
// 🚀 What is a Gaussian copula?
//
//	A way to give variables with arbitrary marginal distributions a shared
//	dependence structure. Each observation starts as a vector of
//	correlated standard normals; the normal CDF turns each coordinate into
//	a uniform quantile; each variable's inverse-CDF transform turns that
//	quantile into a value of its declared distribution. For continuous and
//	ordinal marginals the transform is monotone increasing in the quantile,
//	so the latent correlation carries over as rank correlation and the
//	realized Pearson correlation is close to — attenuated from, for
//	discrete marginals — the declared target. The binary marginal is the
//	exception: it realizes 1 on the LOW tail of its latent (u < prob), so
//	a binary variable's realized association with any other variable
//	carries the OPPOSITE sign of the declared latent target. Declare a
//	negative target to obtain a positive realized association with a
//	binary variable. Both effects are properties of the construction, not
//	defects.
//
// ✨ Key features:
//   - Simulator facade: declare variables, set pairwise correlations,
//     Generate(n) — mirrors a statistician's notebook workflow.
//   - Infeasible correlation targets never abort: the matrix is repaired
//     by eigenvalue clipping (corr.NearestPSD) and the repair is reported
//     on the Dataset as a feasibility warning.
//   - Reproducibility: WithSeed(s) makes output bit-identical across runs
//     with the same declarations; the random source is an explicit,
//     locally-owned instance — never package-global state.
//   - Repeated Generate calls with different seeds reuse one read-only
//     specification; the engine retains no reference to returned data.
//
// ⚙️ Usage:
//
//	import "github.com/causaldata/mixedsim/copula"
//
//	sim := copula.New()
//	_ = sim.AddContinuous("income", 50000, 15000)
//	_ = sim.AddBinary("treated", 0.3)
//	_ = sim.SetCorrelation("income", "treated", 0.5)
//
//	ds, err := sim.Generate(1000, copula.WithSeed(42))
//	if err != nil {
//		// ErrEmptyModel | ErrInvalidSampleSize | ErrFactorization
//	}
//	income := ds.Column("income").(*transform.FloatColumn)
//
// Performance: Generate is O(k³ + n·k²) time and O(n·k) space for k
// variables and n observations; peak memory is the deterministic product
// of the two plus the k×k factor.
package copula
