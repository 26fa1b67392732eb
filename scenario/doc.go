// SPDX-License-Identifier: MIT
// Package: scenario
//
// Package scenario turns declarative plan files into builder call
// sequences.
//
// A Scenario names everything one optimization run needs: which resource
// and recipe costs to price, whether the system is closed, which byproducts
// must hold equilibrium, output targets, resource floors and ceilings, and
// the manual-labor policy. Files are read through viper, so YAML, TOML and
// JSON all work and any field can be overridden from the environment
// (STEADYPLAN_ prefix).
//
// Apply issues the builder operations in one fixed, documented order, so a
// scenario always assembles the same constraint matrices:
//
//	resource expenses, recipe expenses, closed system, equilibria,
//	petro balance, floors, ceilings, targets, laziness, max players.
package scenario
