// Package model declares the variables of a mixed-type simulation:
// their names, kinds, and marginal-distribution parameters.
//
// 🚀 What lives here?
//
//	A Registry holds an ordered set of Variable declarations.  Each
//	variable carries exactly one of a closed set of kinds:
//	  • Continuous — Normal(mean, std), optionally clipped to [min, max]
//	  • Binary     — Bernoulli(prob)
//	  • Ordinal    — ordered labels with level probabilities
//	  • Count      — Poisson(rate)
//
// ✨ Key guarantees:
//   - Names are unique within one Registry; duplicates are rejected.
//   - All distribution parameters are validated at declaration time,
//     never at generation time (fail fast, zero partial state).
//   - Insertion order is preserved and defines the output column order.
//   - A Registry freezes on Close(); later mutation returns ErrModelClosed.
//
// ⚙️ Usage:
//
//	import "github.com/causaldata/mixedsim/model"
//
//	reg := model.NewRegistry()
//	err := reg.AddContinuous("income", 50000, 15000, model.WithMin(0))
//	err = reg.AddBinary("treated", 0.3)
//	err = reg.AddOrdinal("edu", []string{"HS", "College", "Grad"},
//		[]float64{0.3, 0.5, 0.2})
//
// The registry performs no sampling; see the copula package for the
// generation engine and the transform package for per-kind realizations.
package model
