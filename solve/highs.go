//go:build highs

// SPDX-License-Identifier: MIT
// Package: solve
//
// highs.go - the cgo backend on github.com/bartolsthoorn/gohighs. HiGHS
// takes the general row form lower ≤ A·x ≤ upper directly, so inequality
// rows become (-inf, bound] and equality rows [bound, bound]; no slack
// augmentation needed. Built only under the "highs" tag to keep the default
// build pure Go.

package solve

import (
	"fmt"

	"github.com/bartolsthoorn/gohighs/highs"
)

// HighsSolver runs the HiGHS LP/MIP engine via cgo. The zero value is
// ready to use.
type HighsSolver struct{}

var _ Solver = HighsSolver{}

// Minimize solves p with HiGHS.
//
// Contracts:
//   - Columns are bounded below by zero and unbounded above.
//   - Solution.Message is the HiGHS model status text verbatim.
//   - Iterations is always 0: the high-level wrapper does not expose the
//     simplex iteration count.
//
// Errors: ErrDimensionMismatch, ErrInfeasible, ErrUnbounded,
// ErrIterationLimit, ErrNumericalFailure.
func (HighsSolver) Minimize(p *Problem, opts Options) (Solution, error) {
	if err := p.validate(); err != nil {
		return Solution{Status: StatusFailed, Message: err.Error()}, err
	}
	o := opts.normalized()

	n := p.NumVars()
	m := &highs.Model{
		ColCosts: append([]float64(nil), p.C...),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
	}
	for j := range m.ColUpper {
		m.ColUpper[j] = highs.Inf()
	}
	for i, row := range p.AEq {
		m.AddEqRow(row, p.BEq[i])
	}
	for i, row := range p.AUb {
		m.AddLeRow(row, p.BUb[i])
	}

	res, err := m.Solve(highs.WithOutput(false))
	if err != nil {
		serr := fmt.Errorf("%w: %v", ErrNumericalFailure, err)
		return Solution{Status: StatusFailed, Message: err.Error()}, serr
	}

	status := highsStatus(res.Status)
	sol := Solution{
		Status:  status,
		Message: res.Status.String(),
	}
	if status != StatusOptimal {
		serr := statusErr(status)
		return sol, fmt.Errorf("%w: %s", serr, sol.Message)
	}

	sol.X = append([]float64(nil), res.ColValues[:n]...)
	sol.Objective = res.Objective
	sol.Success = true
	snapZeros(sol.X, o.SnapEpsilon)
	return sol, nil
}

// highsStatus maps HiGHS model statuses onto the solve taxonomy.
func highsStatus(s highs.ModelStatus) Status {
	switch s {
	case highs.ModelStatusOptimal:
		return StatusOptimal
	case highs.ModelStatusInfeasible:
		return StatusInfeasible
	case highs.ModelStatusUnbounded, highs.ModelStatusUnboundedOrInfeasible:
		return StatusUnbounded
	case highs.ModelStatusIterationLimit, highs.ModelStatusTimeLimit:
		return StatusIterationLimit
	default:
		return StatusFailed
	}
}
