// SPDX-License-Identifier: MIT

package stationary

import (
	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
)

// Bound is the result of one successful template solve. It is constructed
// only after an optimal termination; non-optimal solves return errors, never
// partial bounds.
type Bound struct {
	// Value is the rigorous bound (direction documented per template).
	Value float64

	// Model is the solved optimization model, available for dual readback
	// and diagnostics.
	Model *conic.Model

	// Partition is the cell partition the program ran on.
	Partition *partition.Partition

	// Weights are the resolved weight functions per vertex id. Point-cell
	// weights come back as constant polynomials.
	Weights map[int]poly.Polynomial
}
