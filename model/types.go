// SPDX-License-Identifier: MIT
// Package: model
//
// types.go - sentinels plus the ConstraintSet value the Builder grows.
package model

import (
	"errors"

	"github.com/katalvlaran/steadyplan/solve"
)

var (
	// ErrUnknownResource is returned when an operation names a resource the
	// catalogue does not contain. The set is left untouched.
	ErrUnknownResource = errors.New("model: unknown resource")

	// ErrUnknownRecipe is returned when an operation names a recipe the
	// catalogue does not contain. The set is left untouched.
	ErrUnknownRecipe = errors.New("model: unknown recipe")
)

// ConstraintSet is the accumulated linear program for one optimization run:
// an objective coefficient per recipe, inequality rows satisfying
// A_ub·x ≤ b_ub and equality rows satisfying A_eq·x = b_eq.
//
// The set only grows. Rows are appended by Builder operations and never
// removed or edited; both row counts start at zero. Rows live in growable
// buffers and are materialized into solver matrices once, by Problem.
type ConstraintSet struct {
	objective []float64
	aUb       [][]float64
	bUb       []float64
	aEq       [][]float64
	bEq       []float64
}

// newConstraintSet returns an empty set over n recipe variables.
func newConstraintSet(n int) *ConstraintSet {
	return &ConstraintSet{objective: make([]float64, n)}
}

// NumInequalities reports the accumulated A_ub row count.
func (s *ConstraintSet) NumInequalities() int { return len(s.aUb) }

// NumEqualities reports the accumulated A_eq row count.
func (s *ConstraintSet) NumEqualities() int { return len(s.bEq) }

// Objective returns a copy of the objective coefficient vector.
func (s *ConstraintSet) Objective() []float64 {
	return append([]float64(nil), s.objective...)
}

// addUb appends one inequality row: row·x ≤ bound.
func (s *ConstraintSet) addUb(row []float64, bound float64) {
	s.aUb = append(s.aUb, row)
	s.bUb = append(s.bUb, bound)
}

// addEq appends one equality row: row·x = bound.
func (s *ConstraintSet) addEq(row []float64, bound float64) {
	s.aEq = append(s.aEq, row)
	s.bEq = append(s.bEq, bound)
}

// Problem materializes the set into a solver Problem. Every slice is fresh
// memory, so the Builder may keep accumulating (or be discarded) without
// aliasing what the solver holds. Empty row blocks materialize as nil,
// never as zero-row matrices.
func (s *ConstraintSet) Problem() *solve.Problem {
	p := &solve.Problem{C: append([]float64(nil), s.objective...)}
	if len(s.aUb) > 0 {
		p.AUb = copyRows(s.aUb)
		p.BUb = append([]float64(nil), s.bUb...)
	}
	if len(s.aEq) > 0 {
		p.AEq = copyRows(s.aEq)
		p.BEq = append([]float64(nil), s.bEq...)
	}
	return p
}

// copyRows deep-copies a row buffer.
func copyRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}
	return out
}
