// SPDX-License-Identifier: MIT
// Package: solve
//
// Package solve runs assembled linear programs through external LP routines
// behind one swappable interface.
//
// A Problem is the canonical general form over x ≥ 0:
//
//	minimize   C·x
//	subject to AUb·x ≤ BUb
//	           AEq·x  = BEq
//
// Backends:
//
//   - SimplexSolver — pure Go, github.com/willauld/lpsimplex (the
//     scipy-linprog simplex port). The package-level Minimize shortcut.
//   - GonumSolver — gonum.org/v1/gonum/optimize/convex/lp on the
//     slack-augmented standard form. Stricter about degenerate shapes.
//   - HighsSolver — HiGHS via cgo (build tag "highs").
//
// Outcomes are first-class: an infeasible or unbounded model yields a
// Solution carrying the backend's diagnostic verbatim plus the matching
// sentinel (ErrInfeasible, ErrUnbounded, ...). Nothing is retried — whether
// to adjust constraints and re-solve is the caller's decision.
//
// After a successful solve every |x[i]| below Options.SnapEpsilon is snapped
// to exactly 0.0 so solver noise never leaks into reports.
package solve
