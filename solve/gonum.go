// SPDX-License-Identifier: MIT
// Package: solve
//
// gonum.go - the second pure-Go backend, on gonum's dense simplex
// (gonum.org/v1/gonum/optimize/convex/lp). That routine only takes the
// standard form min c·x s.t. A·x = b, x ≥ 0, so the adapter augments every
// inequality row with one slack variable:
//
//	[ AEq  0 ]         [ BEq ]
//	[ AUb  I ] · x' =  [ BUb ],  x' = (x, s) ≥ 0
//
// The slack block keeps x ≥ 0 intact, so no free-variable splitting is
// needed and the original variables are simply the first n entries of the
// augmented solution.

package solve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// GonumSolver runs gonum's dense simplex on the slack-augmented standard
// form. Stricter than SimplexSolver about degenerate shapes; useful as a
// cross-check backend. The zero value is ready to use.
type GonumSolver struct{}

var _ Solver = GonumSolver{}

// Minimize solves p with gonum's lp.Simplex.
//
// Contracts:
//   - A constraint-free problem short-circuits: x = 0 when every objective
//     coefficient is non-negative, unbounded otherwise.
//   - More equality rows than variables cannot form a valid basis for the
//     dense simplex; reported as ErrNumericalFailure, never a panic.
//   - Iterations is always 0: the routine does not expose a pivot count.
//
// Errors: ErrDimensionMismatch, ErrInfeasible, ErrUnbounded,
// ErrNumericalFailure.
func (GonumSolver) Minimize(p *Problem, opts Options) (Solution, error) {
	if err := p.validate(); err != nil {
		return Solution{Status: StatusFailed, Message: err.Error()}, err
	}
	o := opts.normalized()

	n := p.NumVars()
	rows := len(p.AUb) + len(p.AEq)
	if rows == 0 {
		return solveUnconstrained(p, o)
	}
	cols := n + len(p.AUb)
	if rows > cols {
		err := fmt.Errorf("%w: %d constraint rows over %d augmented variables",
			ErrNumericalFailure, rows, cols)
		return Solution{Status: StatusFailed, Message: err.Error()}, err
	}

	// Standard form: equalities first, then inequality rows with their
	// slack identity block.
	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, 0, rows)
	for i, row := range p.AEq {
		a.SetRow(i, padded(row, cols))
	}
	b = append(b, p.BEq...)
	for i, row := range p.AUb {
		r := len(p.AEq) + i
		a.SetRow(r, padded(row, cols))
		a.Set(r, n+i, 1)
	}
	b = append(b, p.BUb...)

	c := padded(p.C, cols)

	optF, optX, err := lp.Simplex(c, a, b, o.Tolerance, nil)
	if err != nil {
		sol := Solution{Status: gonumStatus(err), Message: err.Error()}
		return sol, fmt.Errorf("%w: %v", statusErr(sol.Status), err)
	}

	sol := Solution{
		X:         append([]float64(nil), optX[:n]...),
		Objective: optF,
		Status:    StatusOptimal,
		Message:   successMessage,
		Success:   true,
	}
	snapZeros(sol.X, o.SnapEpsilon)
	return sol, nil
}

// solveUnconstrained handles the no-rows corner the dense simplex rejects:
// over x ≥ 0 alone the optimum is x = 0 unless some cost is negative.
func solveUnconstrained(p *Problem, o Options) (Solution, error) {
	for _, v := range p.C {
		if v < -o.Tolerance {
			err := fmt.Errorf("%w: negative cost with no constraints", ErrUnbounded)
			return Solution{Status: StatusUnbounded, Message: err.Error()}, err
		}
	}
	return Solution{
		X:       make([]float64, p.NumVars()),
		Status:  StatusOptimal,
		Message: successMessage,
		Success: true,
	}, nil
}

// gonumStatus maps lp sentinels onto the solve taxonomy. Anything the
// routine reports beyond geometry (singular basis, zero columns, bad
// shapes) is a numerical failure.
func gonumStatus(err error) Status {
	switch err {
	case lp.ErrInfeasible:
		return StatusInfeasible
	case lp.ErrUnbounded:
		return StatusUnbounded
	default:
		return StatusFailed
	}
}

// padded copies row into a cols-length vector, zero-filled on the right.
func padded(row []float64, cols int) []float64 {
	out := make([]float64, cols)
	copy(out, row)
	return out
}
