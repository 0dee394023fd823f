// Package transform realizes typed data columns from uniform quantiles.
//
// 🚀 What lives here?
//
//	One Marginal strategy per variable kind. Each takes a column of
//	uniform quantiles u ∈ (0,1) — produced by the copula engine from
//	correlated latent normals — and materializes the typed column of the
//	variable's declared marginal distribution:
//	  • Continuous → FloatColumn via the Normal inverse CDF, then clipping
//	  • Binary     → IntColumn, 1 iff u < prob
//	  • Ordinal    → LabelColumn via cumulative cutpoints
//	  • Count      → IntColumn via the Poisson inverse CDF
//
// ✨ Key guarantees:
//   - Every Marginal is a pure function of u and its own parameters: no
//     shared mutable state, independently unit-testable.
//   - Columns form a closed, compile-time-checked set (FloatColumn,
//     IntColumn, LabelColumn); there is no interface{} cell access.
//   - ForVariable is the single dispatch point from a model.Kind to its
//     strategy; adding a kind never touches the copula engine.
//
// ⚠️ Bound clipping:
//
//	Continuous bounds clip, they do not resample. The probability mass of
//	the clipped tail piles up exactly on the bound, so a bounded column is
//	not a truncated normal — its mean and std deviate from the declared
//	ones in proportion to the clipped mass. This is the defined behavior.
package transform
