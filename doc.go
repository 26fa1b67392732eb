// Package steadyplan turns a catalogue of production recipes into an optimal
// steady-state plan: which processes to run, at what rates, to hit a target
// output while minimizing a weighted cost (pollution, land, manual labor).
//
// 🚀 What is steadyplan?
//
//	A linear-programming planner for crafting-chain economies:
//		• Catalogue: immutable resource×recipe rate matrix with name lookups & masks
//		• Model: named domain constraints (floors, ceilings, equilibria, labor caps)
//		  accumulated into canonical LP matrices
//		• Solve: swappable LP backends (pure-Go simplex by default, gonum, HiGHS)
//		• Report: filtered, sorted production/consumption/excess tables
//		• Scenario: declarative plan files driving the whole pipeline
//
// Everything is organized under flat subpackages:
//
//	catalogue/ — rate-matrix substrate: names, manual flags, sparse rates, loader
//	model/     — ConstraintSet + Builder with the domain operations
//	solve/     — LP problem/solution types, Solver interface, backends
//	report/    — plan rendering (recipe table, resource table)
//	scenario/  — scenario files (viper) -> builder call sequence
//	cmd/       — the steadyplan CLI (solve, info)
//
// A plan is a pure function of (catalogue, constraint sequence) — no global
// state, no retained buffers between runs, safe to evaluate scenarios in
// parallel over one shared Catalogue.
//
//	go get github.com/katalvlaran/steadyplan
package steadyplan
