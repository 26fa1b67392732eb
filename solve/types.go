// SPDX-License-Identifier: MIT
// Package: solve
//
// types.go - the general-form Problem, solver Options, Solution values,
// Status taxonomy and the Solver interface shared by every backend.
//
// Design principles:
//   - One canonical shape: minimize C·x over x ≥ 0 with AUb/BUb and AEq/BEq.
//     Backends translate from here, never the other way around.
//   - Empty blocks stay nil. A model with no equalities is an ordinary
//     model, not a degenerate one, and must never grow zero-filled rows.
//   - Failure is data: Status, Message and the sentinel error all report
//     the same outcome, so callers may branch on whichever is convenient.

package solve

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Minimize and the Solver implementations.
// Match with errors.Is; wrapped variants carry backend diagnostics.
var (
	// ErrDimensionMismatch - the Problem blocks disagree on variable or
	// row counts. The model never reached a backend.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")

	// ErrInfeasible - the constraint set admits no x ≥ 0.
	ErrInfeasible = errors.New("solve: problem is infeasible")

	// ErrUnbounded - the objective decreases without limit over the
	// feasible region.
	ErrUnbounded = errors.New("solve: problem is unbounded")

	// ErrIterationLimit - the backend stopped at Options.MaxIterations
	// before reaching an optimum.
	ErrIterationLimit = errors.New("solve: iteration limit reached")

	// ErrNumericalFailure - the backend gave up for reasons other than
	// infeasibility or unboundedness (singular basis, shape limits, ...).
	ErrNumericalFailure = errors.New("solve: numerical failure")
)

// Default tuning applied by Options.normalized for zero-valued fields.
const (
	// DefaultTolerance decides when a residual counts as zero inside the
	// simplex pivoting.
	DefaultTolerance = 1e-9

	// DefaultSnapEpsilon zeroes solution entries smaller than ~1e-6 after
	// a successful solve.
	DefaultSnapEpsilon = 1e-6

	// DefaultMaxIterations caps simplex pivots.
	DefaultMaxIterations = 4000
)

// successMessage is the diagnostic attached to every optimal Solution.
const successMessage = "optimization terminated successfully"

// Problem is a linear program in general form over x ≥ 0:
//
//	minimize   C·x
//	subject to AUb·x ≤ BUb
//	           AEq·x  = BEq
//
// Nil AUb/AEq blocks mean "no such constraints". Every present row must
// have len(C) coefficients.
type Problem struct {
	C   []float64   // objective, one coefficient per variable
	AUb [][]float64 // inequality rows, may be nil
	BUb []float64   // inequality bounds, len(BUb) == len(AUb)
	AEq [][]float64 // equality rows, may be nil
	BEq []float64   // equality bounds, len(BEq) == len(AEq)
}

// NumVars reports the number of decision variables.
func (p *Problem) NumVars() int { return len(p.C) }

// validate cross-checks block shapes before a backend ever sees them.
//
// Errors: ErrDimensionMismatch (wrapped with the offending block).
func (p *Problem) validate() error {
	n := len(p.C)
	if n == 0 {
		return fmt.Errorf("%w: empty objective", ErrDimensionMismatch)
	}
	if len(p.AUb) != len(p.BUb) {
		return fmt.Errorf("%w: %d inequality rows vs %d bounds",
			ErrDimensionMismatch, len(p.AUb), len(p.BUb))
	}
	if len(p.AEq) != len(p.BEq) {
		return fmt.Errorf("%w: %d equality rows vs %d bounds",
			ErrDimensionMismatch, len(p.AEq), len(p.BEq))
	}
	for i, row := range p.AUb {
		if len(row) != n {
			return fmt.Errorf("%w: inequality row %d has %d coefficients, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	for i, row := range p.AEq {
		if len(row) != n {
			return fmt.Errorf("%w: equality row %d has %d coefficients, want %d",
				ErrDimensionMismatch, i, len(row), n)
		}
	}
	return nil
}

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal - an optimal feasible solution was found.
	StatusOptimal Status = iota
	// StatusIterationLimit - stopped at the iteration cap.
	StatusIterationLimit
	// StatusInfeasible - no feasible point exists.
	StatusInfeasible
	// StatusUnbounded - the objective is unbounded below.
	StatusUnbounded
	// StatusFailed - backend breakdown unrelated to the model geometry.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusIterationLimit:
		return "iteration limit"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// statusErr maps a non-optimal Status to its sentinel.
func statusErr(s Status) error {
	switch s {
	case StatusIterationLimit:
		return ErrIterationLimit
	case StatusInfeasible:
		return ErrInfeasible
	case StatusUnbounded:
		return ErrUnbounded
	default:
		return ErrNumericalFailure
	}
}

// Solution is the outcome of one solve, kept even on failure so callers can
// surface the backend diagnostic.
type Solution struct {
	// X is the variable vector. Empty unless Success.
	X []float64
	// Objective is C·X for a successful solve.
	Objective float64
	// Status classifies the outcome.
	Status Status
	// Message is the backend's own diagnostic, verbatim.
	Message string
	// Iterations counts simplex pivots (0 when the backend does not report).
	Iterations int
	// Success is true only for StatusOptimal.
	Success bool
}

// Options tunes a solve. The zero value selects the package defaults.
type Options struct {
	// Tolerance for pivot/feasibility decisions. 0 → DefaultTolerance.
	Tolerance float64
	// SnapEpsilon zeroes |x[i]| below it after success. 0 → DefaultSnapEpsilon,
	// negative disables snapping.
	SnapEpsilon float64
	// MaxIterations caps pivots. 0 → DefaultMaxIterations.
	MaxIterations int
	// Bland forces Bland's anti-cycling rule where the backend supports it.
	Bland bool
}

// normalized fills zero-valued fields with defaults.
func (o Options) normalized() Options {
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.SnapEpsilon == 0 {
		o.SnapEpsilon = DefaultSnapEpsilon
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o
}

// Solver is the swappable LP backend contract.
//
// Contracts:
//   - Minimize treats p as read-only.
//   - On failure the returned Solution still carries Status and Message;
//     the error wraps the matching sentinel.
//   - Implementations snap near-zero entries of a successful X per
//     opts.SnapEpsilon.
type Solver interface {
	Minimize(p *Problem, opts Options) (Solution, error)
}

// snapZeros zeroes every |x[i]| < eps in place. A non-positive eps keeps x
// untouched.
func snapZeros(x []float64, eps float64) {
	if eps <= 0 {
		return
	}
	for i, v := range x {
		if math.Abs(v) < eps {
			x[i] = 0
		}
	}
}
