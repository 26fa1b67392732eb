// SPDX-License-Identifier: MIT
// Package: model
//
// builder.go - the domain operations that grow a ConstraintSet.
//
// Design principles:
//   - Validate first, mutate second: every operation resolves its names
//     against the catalogue before appending anything, so a failed call is
//     a no-op on the set.
//   - Deterministic accumulation: masks iterate in ascending index order;
//     the same call sequence always yields the same matrices.
//   - Plain linear algebra: each operation is a handful of row copies and
//     axpy-style updates; nothing here knows how the LP gets solved.
package model

import (
	"fmt"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/solve"
)

// The refinery byproduct trio PetroEquilibria pairs up. A named special
// case, not a general n-ary rule: the source data balances exactly these
// three streams and nothing else.
const (
	petroHeavyOil     = "Heavy oil"
	petroLightOil     = "Light oil"
	petroPetroleumGas = "Petroleum gas"
)

// Builder grows one ConstraintSet against one immutable catalogue.
// Not safe for concurrent use; one Builder per optimization run.
type Builder struct {
	cat *catalogue.Catalogue
	set *ConstraintSet
}

// New returns a Builder with an empty ConstraintSet over c's recipes.
func New(c *catalogue.Catalogue) *Builder {
	return &Builder{cat: c, set: newConstraintSet(c.NumRecipes())}
}

// Set exposes the accumulated ConstraintSet (counts, objective, Problem).
func (b *Builder) Set() *ConstraintSet { return b.set }

// Problem materializes the accumulated set. Shortcut for Set().Problem().
func (b *Builder) Problem() *solve.Problem { return b.set.Problem() }

// resourceMask resolves sel against the resource axis, translating lookup
// failures into the builder's sentinel.
func (b *Builder) resourceMask(sel catalogue.Selection) (catalogue.Mask, error) {
	mask, err := b.cat.ResourceMask(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownResource, err)
	}
	return mask, nil
}

// recipeMask resolves sel against the recipe axis, translating lookup
// failures into the builder's sentinel.
func (b *Builder) recipeMask(sel catalogue.Selection) (catalogue.Mask, error) {
	mask, err := b.cat.RecipeMask(sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownRecipe, err)
	}
	return mask, nil
}

// ResourceExpense adds weight per unit net rate of every selected resource
// to the objective. The achieved resource rate is a linear function of the
// recipe rates, so the per-resource cost projects through the matrix into a
// per-recipe cost: objective[j] += weight · Σ_{r ∈ sel} rate(r, j).
//
// A positive weight prices net production (pollution, occupied area); a
// negative weight prices net consumption (spending a raw input). The weight
// multiplies the signed net rate either way.
//
// Errors: ErrUnknownResource.
//
// Complexity: O(R + nnz).
func (b *Builder) ResourceExpense(sel catalogue.Selection, weight float64) error {
	mask, err := b.resourceMask(sel)
	if err != nil {
		return err
	}
	for j, v := range b.cat.SumRows(mask) {
		b.set.objective[j] += weight * v
	}
	return nil
}

// RecipeExpense adds weight directly to the objective coefficient of every
// selected recipe. This is the cost channel for penalties with no
// resource-rate interpretation (manual labor, prototype processes).
//
// Errors: ErrUnknownRecipe.
func (b *Builder) RecipeExpense(sel catalogue.Selection, weight float64) error {
	mask, err := b.recipeMask(sel)
	if err != nil {
		return err
	}
	for _, j := range mask.Indices() {
		b.set.objective[j] += weight
	}
	return nil
}

// MinResource appends one inequality row per selected resource r enforcing
// a net-rate floor: (row r)·x ≥ rate, stored as -(row r)·x ≤ -rate. With
// rate 0 over the full resource set this is the closed-system invariant —
// no resource may run a deficit.
//
// Errors: ErrUnknownResource.
func (b *Builder) MinResource(sel catalogue.Selection, rate float64) error {
	mask, err := b.resourceMask(sel)
	if err != nil {
		return err
	}
	for _, r := range mask.Indices() {
		row := b.cat.Row(r)
		for j := range row {
			row[j] = -row[j]
		}
		b.set.addUb(row, -rate)
	}
	return nil
}

// MaxResource appends one inequality row per selected resource r enforcing
// a net-rate ceiling: (row r)·x ≤ rate.
//
// Errors: ErrUnknownResource.
func (b *Builder) MaxResource(sel catalogue.Selection, rate float64) error {
	mask, err := b.resourceMask(sel)
	if err != nil {
		return err
	}
	for _, r := range mask.Indices() {
		b.set.addUb(b.cat.Row(r), rate)
	}
	return nil
}

// MinRecipe appends a single row enforcing that the SUM of the selected
// recipes' execution rates is at least rate: a −1 indicator on each
// selected column with bound −rate. Selecting exactly one recipe pins a
// target output ("produce ≥ 1000/s of the end product").
//
// Errors: ErrUnknownRecipe.
func (b *Builder) MinRecipe(sel catalogue.Selection, rate float64) error {
	mask, err := b.recipeMask(sel)
	if err != nil {
		return err
	}
	b.set.addUb(indicator(mask, -1), -rate)
	return nil
}

// MaxRecipe appends a single row enforcing that the SUM of the selected
// recipes' execution rates is at most rate: a +1 indicator on each selected
// column with bound rate.
//
// Errors: ErrUnknownRecipe.
func (b *Builder) MaxRecipe(sel catalogue.Selection, rate float64) error {
	mask, err := b.recipeMask(sel)
	if err != nil {
		return err
	}
	b.set.addUb(indicator(mask, 1), rate)
	return nil
}

// ResourceEquilibria appends one equality row per selected resource forcing
// its net rate to exactly zero — intermediate byproducts must neither
// accumulate nor deplete at steady state.
//
// Errors: ErrUnknownResource.
func (b *Builder) ResourceEquilibria(sel catalogue.Selection) error {
	mask, err := b.resourceMask(sel)
	if err != nil {
		return err
	}
	for _, r := range mask.Indices() {
		b.set.addEq(b.cat.Row(r), 0)
	}
	return nil
}

// PetroEquilibria appends the two-row equality block tying the refinery
// byproduct streams together: the excess of Heavy oil and of Light oil must
// each equal the excess of Petroleum gas,
//
//	(heavy row − gas row)·x = 0
//	(light row − gas row)·x = 0
//
// so no downstream consumer can silently back-pressure another.
//
// Errors: ErrUnknownResource when the catalogue lacks any of the three
// streams; the set is untouched in that case.
func (b *Builder) PetroEquilibria() error {
	heavy, err := b.cat.ResourceIndex(petroHeavyOil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownResource, err)
	}
	light, err := b.cat.ResourceIndex(petroLightOil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownResource, err)
	}
	gas, err := b.cat.ResourceIndex(petroPetroleumGas)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownResource, err)
	}

	gasRow := b.cat.Row(gas)
	for _, oil := range []int{heavy, light} {
		row := b.cat.Row(oil)
		for j := range row {
			row[j] -= gasRow[j]
		}
		b.set.addEq(row, 0)
	}
	return nil
}

// PlayerLaziness adds penalty to the direct objective weight of every
// manually operated recipe, discouraging plans that lean on player labor.
// A catalogue without manual recipes makes this a no-op.
func (b *Builder) PlayerLaziness(penalty float64) error {
	for _, j := range b.cat.ManualMask().Indices() {
		b.set.objective[j] += penalty
	}
	return nil
}

// MaxPlayers appends a single row capping total manual labor: the sum of
// all manual recipe rates ≤ count (one player operates one unit of rate).
func (b *Builder) MaxPlayers(count float64) error {
	b.set.addUb(indicator(b.cat.ManualMask(), 1), count)
	return nil
}

// indicator builds a dense 0/v vector with v on the selected columns.
func indicator(mask catalogue.Mask, v float64) []float64 {
	row := make([]float64, len(mask))
	for j, on := range mask {
		if on {
			row[j] = v
		}
	}
	return row
}
