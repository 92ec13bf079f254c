// SPDX-License-Identifier: MIT

// errors.go — sentinel errors and panic messages for the poly package.
//
// Error policy (matches the repository-wide convention):
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Constructors panic on nonsensical arguments (programmer error) with a
//     stable message; Validate returns sentinels for data-driven paths.

package poly

import "errors"

// ErrNonFiniteCoefficient indicates a polynomial carries a NaN or ±Inf
// coefficient. Returned by Validate; constructors panic instead.
// Usage: if errors.Is(err, poly.ErrNonFiniteCoefficient) { /* reject input */ }.
var ErrNonFiniteCoefficient = errors.New("poly: non-finite coefficient")

const (
	panicNonFinite      = "poly: non-finite coefficient"
	panicNegativeExp    = "poly: negative exponent"
	panicNegativePow    = "poly: Pow: negative power"
	panicNegativeDegree = "poly: Basis: negative degree"
)
