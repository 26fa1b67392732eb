// SPDX-License-Identifier: MIT
// Package: model
//
// Package model accumulates named, domain-level production constraints into
// the canonical matrices of a linear program.
//
// A Builder wraps one immutable catalogue.Catalogue and one growing
// ConstraintSet. Each operation speaks the domain language — "this resource
// must not run a deficit", "these byproduct streams must balance", "at most
// two players of manual labor" — and appends the corresponding objective
// coefficients, inequality rows (A·x ≤ b) or equality rows (A·x = b).
//
// The decision variables are recipe execution rates: x[j] ≥ 0 is how many
// units of recipe j run concurrently at steady state, so a resource's net
// rate is always the linear form (matrix row)·x.
//
// Operations validate every name before touching the set: a call that fails
// with ErrUnknownResource or ErrUnknownRecipe leaves the ConstraintSet
// exactly as it was. Rows are appended in mask index order, so rebuilding
// the same sequence emits byte-identical matrices.
//
// One Builder serves one optimization run. Materialize with Problem and
// hand the result to package solve; the Builder retains nothing the solver
// sees.
package model
