// SPDX-License-Identifier: MIT

// weight.go — per-vertex weight functions: scalars on Point cells, decision
// polynomials everywhere else.

package sos

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
)

// Weight is the value of one vertex's weight function. Sealed: the only
// implementations are ScalarWeight and PolyWeight.
type Weight interface {
	isWeight()
}

// ScalarWeight is the weight of a Point cell: a single free variable, exact
// by construction.
type ScalarWeight struct {
	Expr conic.LinExpr
}

func (ScalarWeight) isWeight() {}

// PolyWeight is the weight of a Region or RegionGroup cell: a decision
// polynomial shared by every member of the cell.
type PolyWeight struct {
	Poly LinPoly
}

func (PolyWeight) isWeight() {}

// WeightMap assigns a Weight to every partition vertex id.
type WeightMap map[int]Weight

// NewWeights allocates one weight per vertex of the partition: a fresh scalar
// for each Point cell, a fresh decision polynomial of degree ≤ degree in vars
// for each Region or RegionGroup cell. Point weights never get promoted to
// polynomials; a singleton needs exactly one number.
func NewWeights(m *conic.Model, part *partition.Partition, vars []poly.Var, degree int) (WeightMap, error) {
	if degree < 0 {
		panic(panicNegativeOrder)
	}
	out := make(WeightMap, part.VertexCount())
	for _, id := range part.Vertices() {
		cell, err := part.Cell(id)
		if err != nil {
			return nil, err
		}
		name := "w" + strconv.Itoa(id)
		switch cell.(type) {
		case partition.Point:
			out[id] = ScalarWeight{Expr: conic.VarExpr(m.NewVariable(name))}
		case partition.Region, partition.RegionGroup:
			out[id] = PolyWeight{Poly: NewPolyVariable(m, name, vars, degree)}
		default:
			return nil, fmt.Errorf("NewWeights: vertex %d: %w", id, partition.ErrInvalidCell)
		}
	}

	return out, nil
}

// asLinPoly views any weight as a decision polynomial (scalars land on the
// constant monomial).
func asLinPoly(w Weight) LinPoly {
	switch wt := w.(type) {
	case ScalarWeight:
		return FromExpr(wt.Expr)
	case PolyWeight:
		return wt.Poly
	default:
		return LinPoly{}
	}
}

// weightAt evaluates a weight at a numeric state.
func weightAt(w Weight, at map[poly.Var]float64) conic.LinExpr {
	switch wt := w.(type) {
	case ScalarWeight:
		return wt.Expr
	case PolyWeight:
		return wt.Poly.EvalAt(at)
	default:
		return conic.LinExpr{}
	}
}
