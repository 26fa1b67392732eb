//go:build highs

// SPDX-License-Identifier: MIT
// Package: main
//
// backends_highs.go registers the cgo HiGHS backend.
package main

import "github.com/katalvlaran/steadyplan/solve"

func init() {
	solvers["highs"] = solve.HighsSolver{}
}
