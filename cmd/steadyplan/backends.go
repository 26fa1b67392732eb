// SPDX-License-Identifier: MIT
// Package: main
//
// backends.go - the LP backend registry. Pure-Go backends are always
// available; the cgo HiGHS backend registers itself under the "highs"
// build tag.
package main

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/steadyplan/solve"
)

var solvers = map[string]solve.Solver{
	"simplex": solve.SimplexSolver{},
	"gonum":   solve.GonumSolver{},
}

// pickSolver resolves a --backend flag value.
func pickSolver(name string) (solve.Solver, error) {
	s, ok := solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (available: %v)", name, backendNames())
	}
	return s, nil
}

// backendNames lists the registered backends in stable order.
func backendNames() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
