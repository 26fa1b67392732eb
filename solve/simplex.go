// SPDX-License-Identifier: MIT
// Package: solve
//
// simplex.go - the default backend on github.com/willauld/lpsimplex, a Go
// port of scipy.optimize.linprog(method="simplex"). It accepts the general
// form directly, so the adapter is a thin call plus status translation.

package solve

import (
	"fmt"

	"github.com/willauld/lpsimplex"
)

// SimplexSolver runs the lpsimplex two-phase simplex. The zero value is
// ready to use.
type SimplexSolver struct{}

var _ Solver = SimplexSolver{}

// Minimize solves p with the scipy-style simplex.
//
// Contracts:
//   - Nil AUb/AEq blocks are passed through as absent constraint sets.
//   - Variables are bounded below by zero and unbounded above.
//   - Solution.Message is lpsimplex's termination text, verbatim.
//
// Errors: ErrDimensionMismatch, ErrInfeasible, ErrUnbounded,
// ErrIterationLimit, ErrNumericalFailure.
//
// Complexity: simplex pivoting; typically polynomial in rows·cols for the
// sparse, well-scaled models produced here.
func (SimplexSolver) Minimize(p *Problem, opts Options) (Solution, error) {
	if err := p.validate(); err != nil {
		return Solution{Status: StatusFailed, Message: err.Error()}, err
	}
	o := opts.normalized()

	// Default bounds (nil) are x[i] ∈ [0, +inf), exactly the form wanted.
	res := lpsimplex.LPSimplex(
		p.C,
		p.AUb, p.BUb,
		p.AEq, p.BEq,
		nil,
		lpsimplex.Callbackfunc(nil),
		false,
		o.MaxIterations,
		o.Tolerance,
		o.Bland,
	)

	sol := Solution{
		Status:     simplexStatus(res.Status),
		Message:    res.Message,
		Iterations: res.Nitr,
		Success:    res.Success,
	}
	if !res.Success {
		err := statusErr(sol.Status)
		return sol, fmt.Errorf("%w: %s", err, res.Message)
	}
	sol.X = res.X
	sol.Objective = res.Fun
	snapZeros(sol.X, o.SnapEpsilon)
	return sol, nil
}

// simplexStatus translates scipy termination codes.
func simplexStatus(code int) Status {
	switch code {
	case 0:
		return StatusOptimal
	case 1:
		return StatusIterationLimit
	case 2:
		return StatusInfeasible
	case 3:
		return StatusUnbounded
	default:
		return StatusFailed
	}
}

// Minimize solves p with the default SimplexSolver. Shortcut for callers
// that do not need to pick a backend.
func Minimize(p *Problem, opts Options) (Solution, error) {
	return SimplexSolver{}.Minimize(p, opts)
}
