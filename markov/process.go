// SPDX-License-Identifier: MIT

// process.go — Process construction and generator application.

package markov

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ergodic/poly"
)

// Jump is one jump channel: fire at rate Rate(x), displace the state by
// Displacement. Variables absent from Displacement do not move.
type Jump struct {
	Rate         poly.Polynomial
	Displacement map[poly.Var]float64
}

// Process is an immutable Markov process handle exposing the generator
// action on polynomial observables. Construct with NewJumpProcess,
// NewDiffusionProcess or Network.Process.
type Process struct {
	vars  []poly.Var
	jumps []Jump            // jump family; nil for diffusions
	drift []poly.Polynomial // diffusion family; aligned with vars
	diff  [][]poly.Polynomial
}

// NewJumpProcess builds a jump-time process over vars with the given channels.
// Validation: at least one variable, finite displacements over known
// variables, finite rate coefficients over known variables.
func NewJumpProcess(vars []poly.Var, jumps []Jump) (*Process, error) {
	ordered, set, err := orderVars(vars)
	if err != nil {
		return nil, err
	}
	for i, j := range jumps {
		if err = j.Rate.Validate(); err != nil {
			return nil, fmt.Errorf("jump %d: %w", i, ErrBadRate)
		}
		for _, v := range j.Rate.Vars() {
			if _, ok := set[v]; !ok {
				return nil, fmt.Errorf("jump %d rate: %q: %w", i, v, ErrUnknownVariable)
			}
		}
		for v, d := range j.Displacement {
			if _, ok := set[v]; !ok {
				return nil, fmt.Errorf("jump %d displacement: %q: %w", i, v, ErrUnknownVariable)
			}
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, fmt.Errorf("jump %d displacement: %w", i, ErrBadRate)
			}
		}
	}

	cp := make([]Jump, len(jumps))
	for i, j := range jumps {
		cp[i] = Jump{Rate: j.Rate, Displacement: copyDisplacement(j.Displacement)}
	}

	return &Process{vars: ordered, jumps: cp}, nil
}

// NewDiffusionProcess builds a diffusion over vars with drift vector b and
// diffusion matrix A = σσᵀ (both aligned with the sorted variable order).
// A nil diffusion matrix means pure drift (a deterministic flow).
func NewDiffusionProcess(vars []poly.Var, drift []poly.Polynomial, diffusion [][]poly.Polynomial) (*Process, error) {
	ordered, set, err := orderVars(vars)
	if err != nil {
		return nil, err
	}
	if len(drift) != len(ordered) {
		return nil, fmt.Errorf("drift length %d for %d variables: %w", len(drift), len(ordered), ErrDimensionMismatch)
	}
	for i, b := range drift {
		if err = b.Validate(); err != nil {
			return nil, fmt.Errorf("drift %d: %w", i, ErrBadRate)
		}
		for _, v := range b.Vars() {
			if _, ok := set[v]; !ok {
				return nil, fmt.Errorf("drift %d: %q: %w", i, v, ErrUnknownVariable)
			}
		}
	}
	if diffusion != nil {
		if len(diffusion) != len(ordered) {
			return nil, fmt.Errorf("diffusion rows %d for %d variables: %w", len(diffusion), len(ordered), ErrDimensionMismatch)
		}
		for i, row := range diffusion {
			if len(row) != len(ordered) {
				return nil, fmt.Errorf("diffusion row %d: %w", i, ErrDimensionMismatch)
			}
			for j, a := range row {
				if err = a.Validate(); err != nil {
					return nil, fmt.Errorf("diffusion[%d][%d]: %w", i, j, ErrBadRate)
				}
			}
		}
	}

	return &Process{vars: ordered, drift: drift, diff: diffusion}, nil
}

// Vars returns the state variables in ascending name order.
func (p *Process) Vars() []poly.Var {
	out := make([]poly.Var, len(p.vars))
	copy(out, p.vars)

	return out
}

// IsJumpProcess reports whether the generator is of jump type. Point cells in
// a partition can only host stationarity constraints for jump processes.
func (p *Process) IsJumpProcess() bool { return p.jumps != nil }

// Jumps returns the jump channels (copies). Empty for diffusions.
func (p *Process) Jumps() []Jump {
	out := make([]Jump, len(p.jumps))
	for i, j := range p.jumps {
		out[i] = Jump{Rate: j.Rate, Displacement: copyDisplacement(j.Displacement)}
	}

	return out
}

// ApplyGenerator returns L f for a polynomial observable f.
// Jump: Σ_r a_r·(f(·+ν_r) − f). Diffusion: b·∇f + ½ Σ A_ij ∂²f.
// The result is again a polynomial; degree grows by deg(rate) for jumps and
// by deg(drift)−1 for diffusions.
func (p *Process) ApplyGenerator(f poly.Polynomial) (poly.Polynomial, error) {
	for _, v := range f.Vars() {
		if !p.hasVar(v) {
			return poly.Polynomial{}, fmt.Errorf("ApplyGenerator: %q: %w", v, ErrUnknownVariable)
		}
	}
	if p.jumps != nil {
		out := poly.Zero()
		for _, j := range p.jumps {
			out = out.Add(j.Rate.Mul(f.Shift(j.Displacement).Sub(f)))
		}

		return out, nil
	}

	out := poly.Zero()
	for i, v := range p.vars {
		out = out.Add(p.drift[i].Mul(f.Differentiate(v)))
	}
	if p.diff != nil {
		for i, vi := range p.vars {
			for j, vj := range p.vars {
				a := p.diff[i][j]
				if a.IsZero() {
					continue
				}
				out = out.Add(a.Mul(f.Differentiate(vi).Differentiate(vj)).Scale(0.5))
			}
		}
	}

	return out, nil
}

// ApplyToMonomial applies the generator to a single monomial. Generators are
// linear, so this is the primitive decision-polynomial machinery builds on.
func (p *Process) ApplyToMonomial(m poly.Monomial) (poly.Polynomial, error) {
	return p.ApplyGenerator(poly.FromMonomial(m, 1))
}

func (p *Process) hasVar(v poly.Var) bool {
	i := sort.Search(len(p.vars), func(i int) bool { return p.vars[i] >= v })

	return i < len(p.vars) && p.vars[i] == v
}

// orderVars deduplicates and sorts the variable set.
func orderVars(vars []poly.Var) ([]poly.Var, map[poly.Var]struct{}, error) {
	set := map[poly.Var]struct{}{}
	for _, v := range vars {
		set[v] = struct{}{}
	}
	if len(set) == 0 {
		return nil, nil, ErrNoVariables
	}
	ordered := make([]poly.Var, 0, len(set))
	for v := range set {
		ordered = append(ordered, v)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	return ordered, set, nil
}

func copyDisplacement(d map[poly.Var]float64) map[poly.Var]float64 {
	out := make(map[poly.Var]float64, len(d))
	for v, x := range d {
		out[v] = x
	}

	return out
}
