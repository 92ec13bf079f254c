// SPDX-License-Identifier: MIT

// ellipsoid.go — upper bounds on the volume of the stationary covariance
// ellipsoid of a vector of observables.

package stationary

import (
	"math"
	"strconv"

	"github.com/katalvlaran/ergodic/conic"
	"github.com/katalvlaran/ergodic/markov"
	"github.com/katalvlaran/ergodic/poly"
	"github.com/katalvlaran/ergodic/sos"
)

// CovarianceEllipsoid computes an upper bound on det Cov[v] for the vector
// of observables v, i.e. on the squared volume factor of the covariance
// ellipsoid.
//
// The quadratic coupling in the first moments uses an (n+1)×(n+1) PSD matrix
// S = [[A, b], [bᵀ, c]]: certifying E[s + vᵀA v + 2bᵀv] ≤ 0 bounds
// det Cov[v] by det A⁻¹-style duality once log det A enters the objective.
// The log det is encoded the standard way: a 2n×2n PSD block
// [[A, Z], [Zᵀ, diag(Z)]] with lower-triangular Z, plus one dual-exponential
// triple (−1, q_i, Z_ii) per row, so Σq_i ≥ −Σ log Z_ii ≥ −log det A.
// The objective maximizes s − c − Σq_i and the bound is exp(−objective).
// Requires a CapPSD and CapExpCone backend.
func CovarianceEllipsoid(proc *markov.Process, obs []poly.Polynomial, order int, solver conic.Solver, opts ...Option) (*Bound, error) {
	n := len(obs)
	if n == 0 {
		return nil, ErrNoObservables
	}
	for _, p := range obs {
		if err := checkObservable(proc, p); err != nil {
			return nil, err
		}
	}
	o := gatherOptions(opts)
	pr, err := newProgram(proc, o, order)
	if err != nil {
		return nil, err
	}
	m := pr.model

	s := m.NewPSDMatrix("S", n+1)
	u := m.NewPSDMatrix("U", 2*n)

	// Tie the top-left block of the log-det device to the covariance block.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.AddEquality(u[i][j].Sub(s[i][j]))
		}
	}
	// Z is lower triangular; the bottom-right block is diag(Z).
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > i {
				m.AddEquality(u[i][n+j])
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				m.AddEquality(u[n+i][n+i].Sub(u[i][n+i]))
			} else {
				m.AddEquality(u[n+i][n+j])
			}
		}
	}

	// One exponential triple per determinant factor.
	qSum := conic.LinExpr{}
	for i := 0; i < n; i++ {
		q := conic.VarExpr(m.NewVariable("q" + strconv.Itoa(i)))
		m.AddDualExpConstraint(conic.ConstExpr(-1), q, u[n+i][n+i])
		qSum = qSum.Add(q)
	}

	extra := sos.LinPoly{}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			extra = extra.AddExprTimesPoly(s[i][j], obs[i].Mul(obs[j]))
		}
		extra = extra.AddExprTimesPoly(s[n][i].Scale(2), obs[i])
	}
	targets := pr.uniformTargets(extra)

	objective := pr.offset.Sub(s[n][n]).Sub(qSum)
	if err := pr.finish(proc, targets, o.cone, objective, solver); err != nil {
		return nil, err
	}
	obj, err := m.ObjectiveValue()
	if err != nil {
		return nil, err
	}

	return pr.bound(math.Exp(-obj))
}
