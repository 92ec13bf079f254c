// SPDX-License-Identifier: MIT

// stationarity.go — the stationarity primitive: certify −(L w_v + target_v) ≥ 0
// on every cell, so stationary expectations satisfy E[target] ≤ 0.

package sos

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
)

// AddStationarityConstraints emits one certificate per partition vertex
// forcing −(L w_v + target_v) ≥ 0 on the vertex's cell. Vertices absent from
// targets contribute a zero target.
//
// Region and RegionGroup cells go through the Putinar compiler with the
// vertex's polynomial weight. Point cells are handled exactly: each jump's
// rate is evaluated at the point, zero-rate channels are skipped, and live
// destinations are resolved through Partition.Locate to read the destination
// cell's weight. Diffusions cannot be evaluated pointwise, so a Point cell
// with a diffusion process fails with ErrPointCellNeedsJump; a live jump that
// no cell covers fails with ErrJumpLeavesPartition.
//
// The returned handles are keyed by vertex id; after an optimal solve,
// Handle.Mass yields the stationary mass of each cell.
func AddStationarityConstraints(
	m *conic.Model,
	proc *markov.Process,
	part *partition.Partition,
	weights WeightMap,
	targets map[int]LinPoly,
	cone Cone,
) (map[int]*Handle, error) {
	handles := make(map[int]*Handle, part.VertexCount())
	for _, id := range part.Vertices() {
		cell, err := part.Cell(id)
		if err != nil {
			return nil, err
		}
		w, ok := weights[id]
		if !ok {
			return nil, fmt.Errorf("vertex %d: %w", id, ErrMissingWeight)
		}
		target := targets[id]

		switch c := cell.(type) {
		case partition.Point:
			h, err := pointStationarity(m, proc, part, weights, c, w, target, id)
			if err != nil {
				return nil, err
			}
			handles[id] = h
		case partition.Region, partition.RegionGroup:
			pw, ok := w.(PolyWeight)
			if !ok {
				return nil, fmt.Errorf("vertex %d: %w", id, ErrWeightKind)
			}
			lw, err := ApplyGenerator(proc, pw.Poly)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", id, err)
			}
			h, err := Certify(m, "st"+strconv.Itoa(id), lw.Add(target).Neg(), cell, cone)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", id, err)
			}
			handles[id] = h
		default:
			return nil, fmt.Errorf("vertex %d: %T: %w", id, cell, partition.ErrInvalidCell)
		}
	}

	return handles, nil
}

// pointStationarity evaluates the jump generator exactly at a singleton cell.
func pointStationarity(
	m *conic.Model,
	proc *markov.Process,
	part *partition.Partition,
	weights WeightMap,
	pt partition.Point,
	w Weight,
	target LinPoly,
	id int,
) (*Handle, error) {
	if !proc.IsJumpProcess() {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrPointCellNeedsJump)
	}
	sw, ok := w.(ScalarWeight)
	if !ok {
		return nil, fmt.Errorf("vertex %d: %w", id, ErrWeightKind)
	}

	lw := conic.LinExpr{}
	for i, j := range proc.Jumps() {
		rate := j.Rate.Eval(pt.At)
		if rate == 0 {
			continue
		}
		dest := make(map[poly.Var]float64, len(pt.At))
		for v, x := range pt.At {
			dest[v] = x
		}
		for v, d := range j.Displacement {
			dest[v] += d
		}
		destID, err := part.Locate(dest)
		if err != nil {
			return nil, fmt.Errorf("vertex %d jump %d: %w", id, i, ErrJumpLeavesPartition)
		}
		dw, ok := weights[destID]
		if !ok {
			return nil, fmt.Errorf("vertex %d jump %d: destination %d: %w", id, i, destID, ErrMissingWeight)
		}
		lw = lw.Add(weightAt(dw, dest).Sub(sw.Expr).Scale(rate))
	}

	row := m.AddInequality(lw.Add(target.EvalAt(pt.At)).Neg())

	return &Handle{subs: []subCertificate{{constantRow: row}}}, nil
}
