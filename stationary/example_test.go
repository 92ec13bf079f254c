// SPDX-License-Identifier: MIT

package stationary_test

import (
	"fmt"

	"github.com/katalvlaran/ergodic/internal/lpsolve"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/partition"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/stationary"
)

// ExampleMean brackets the stationary occupancy of a two-state switch that
// turns on at rate 2 and off at rate 3.
func ExampleMean() {
	on := poly.Var("on")
	proc, err := markov.NewJumpProcess([]poly.Var{on}, []markov.Jump{
		{Rate: poly.Const(2).Sub(poly.NewVar(on).Scale(2)), Displacement: map[poly.Var]float64{on: 1}},
		{Rate: poly.NewVar(on).Scale(3), Displacement: map[poly.Var]float64{on: -1}},
	})
	if err != nil {
		fmt.Println("process:", err)

		return
	}

	part := partition.New()
	off, _ := part.AddVertex(partition.Point{At: map[poly.Var]float64{on: 0}})
	active, _ := part.AddVertex(partition.Point{At: map[poly.Var]float64{on: 1}})
	_ = part.AddEdge(off, active)

	lower, upper, err := stationary.Mean(proc, poly.NewVar(on), 0, lpsolve.New(), stationary.WithPartition(part))
	if err != nil {
		fmt.Println("solve:", err)

		return
	}
	fmt.Printf("%.3f <= E[on] <= %.3f\n", lower.Value, upper.Value)
	// Output: 0.400 <= E[on] <= 0.400
}

// ExampleApproximateMeasure reconstructs the stationary distribution of the
// same switch from the duals of the stationarity constraints.
func ExampleApproximateMeasure() {
	on := poly.Var("on")
	proc, err := markov.NewJumpProcess([]poly.Var{on}, []markov.Jump{
		{Rate: poly.Const(2).Sub(poly.NewVar(on).Scale(2)), Displacement: map[poly.Var]float64{on: 1}},
		{Rate: poly.NewVar(on).Scale(3), Displacement: map[poly.Var]float64{on: -1}},
	})
	if err != nil {
		fmt.Println("process:", err)

		return
	}

	part := partition.New()
	_, _ = part.AddVertex(partition.Point{At: map[poly.Var]float64{on: 0}})
	_, _ = part.AddVertex(partition.Point{At: map[poly.Var]float64{on: 1}})
	_ = part.AddEdge(0, 1)

	_, masses, err := stationary.ApproximateMeasure(proc, poly.NewVar(on), 0, lpsolve.New(), stationary.WithPartition(part))
	if err != nil {
		fmt.Println("solve:", err)

		return
	}
	fmt.Printf("P(off)=%.2f P(on)=%.2f\n", masses[0], masses[1])
	// Output: P(off)=0.60 P(on)=0.40
}
