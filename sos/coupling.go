// SPDX-License-Identifier: MIT

// coupling.go — the coupling primitive: glue adjacent weight functions on
// their shared interface.

package sos

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
)

// AddCouplingConstraints forces w_u and w_v to agree on {h = 0} for every
// edge carrying an interface polynomial h: the difference must lie in the
// ideal of h, i.e. w_u − w_v = μ·h for a free polynomial multiplier μ. Edges
// without an interface (point–point adjacency in discrete chains) couple
// nothing; the shared stationarity machinery already links those weights.
func AddCouplingConstraints(
	m *conic.Model,
	proc *markov.Process,
	part *partition.Partition,
	weights WeightMap,
) error {
	for i, e := range part.Edges() {
		if !e.HasInterface {
			continue
		}
		wu, ok := weights[e.U]
		if !ok {
			return fmt.Errorf("edge %d: vertex %d: %w", i, e.U, ErrMissingWeight)
		}
		wv, ok := weights[e.V]
		if !ok {
			return fmt.Errorf("edge %d: vertex %d: %w", i, e.V, ErrMissingWeight)
		}

		diff := asLinPoly(wu).Sub(asLinPoly(wv))
		if diff.IsZero() {
			continue
		}

		md := diff.Degree() - e.Interface.Degree()
		if md < 0 {
			md = 0
		}
		mu := NewPolyVariable(m, "mu"+strconv.Itoa(i), proc.Vars(), md)
		residual := diff.Sub(mu.MulPoly(e.Interface))
		for _, mono := range residual.Monomials() {
			m.AddEquality(residual.Coefficient(mono))
		}
	}

	return nil
}
