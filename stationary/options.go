// SPDX-License-Identifier: MIT

// options.go — functional options shared by every program template.

package stationary

import (
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// SideInfo is one known moment constraint on the stationary measure:
// E[Observable] ≥ Value, or E[Observable] = Value when Equality is set.
// A "≤" constraint is expressed by negating both sides.
type SideInfo struct {
	Observable poly.Polynomial
	Value      float64
	Equality   bool
}

// options is the resolved configuration of one template call.
type options struct {
	part *partition.Partition
	cone sos.Cone
	side []SideInfo
}

// Option configures a template call.
type Option func(*options)

// WithPartition supplies the cell partition. Without it every template runs
// on the default single-cell partition covering the whole space.
func WithPartition(p *partition.Partition) Option {
	return func(o *options) { o.part = p }
}

// WithCone selects the nonnegativity relaxation; sos.SOSCone is the default.
func WithCone(c sos.Cone) Option {
	return func(o *options) { o.cone = c }
}

// WithSideInfo attaches known moment constraints. The multipliers enter every
// vertex target and their Values enter the objective, so truthful side
// information can only tighten the returned bound. The list order is the
// multiplier order (no registry, no hidden state).
func WithSideInfo(info ...SideInfo) Option {
	return func(o *options) { o.side = append(o.side, info...) }
}

// gatherOptions folds the option list over the defaults.
func gatherOptions(opts []Option) *options {
	o := &options{cone: sos.SOSCone}
	for _, opt := range opts {
		opt(o)
	}
	if o.part == nil {
		o.part = partition.Whole()
	}

	return o
}
