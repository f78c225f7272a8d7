// Package production generates symbolic equations for production
// technologies used in computable general equilibrium (CGE) models.
//
// Each generator is a pure function from symbol names (factors, prices,
// shares, elasticity) to equation strings of the form "lhs = rhs" that a
// downstream symbolic solver parses and differentiates. Expressions use
// the operators `+ - * / **` with parentheses, plus backend-specific
// aggregation syntax: `Sum(expr, (i, 0, n))` for the summation backend and
// `(expr).sum()` / `[:, None]` / `[None]` / `.ravel()` suffix calls for the
// vectorized backend. The rendered strings are token-sensitive; spacing
// and parenthesization are part of the contract.
//
// Three technologies are supported:
//
//   - CES: constant elasticity of substitution over N factors. Returns the
//     production function plus one factor demand per factor.
//   - Dixit-Stiglitz: a single-factor CES variant aggregating product
//     varieties over one dimension, with optional technology and share
//     terms that are textually omitted when absent.
//   - Leontief: fixed proportions. Non-differentiable, so the generator
//     returns a zero-profit condition in place of a production function.
//     A one-dimensional call covers N >= 2 ordinary factors; a
//     two-dimensional call covers a single sector-by-sector input-output
//     matrix factor.
//
// Scalar specifications broadcast across indexing dimensions via
// UnpackInputs, which Cartesian-products coordinate labels into
// per-element symbol names. Generators themselves operate on flat slices.
//
// The golden rule for this package: it imports only pkg/backend and the
// standard library.
package production
