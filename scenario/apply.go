// SPDX-License-Identifier: MIT
// Package: scenario
//
// apply.go - the scenario → builder translation. One fixed call order, so
// the same document always assembles the same matrices.
package scenario

import (
	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/model"
)

// Apply issues the builder operations this scenario describes, in the
// package's documented order. The first failing operation aborts; the
// builder then holds everything appended up to that point, which per the
// model contract never includes a partial operation.
//
// Errors: model.ErrUnknownResource, model.ErrUnknownRecipe.
func (s *Scenario) Apply(b *model.Builder) error {
	for _, e := range s.ResourceExpenses {
		if err := b.ResourceExpense(catalogue.Select(e.Resources...), e.Weight); err != nil {
			return err
		}
	}
	for _, e := range s.RecipeExpenses {
		if err := b.RecipeExpense(catalogue.Select(e.Recipes...), e.Weight); err != nil {
			return err
		}
	}
	if s.ClosedSystem {
		if err := b.MinResource(catalogue.All(), 0); err != nil {
			return err
		}
	}
	if len(s.Equilibria) > 0 {
		if err := b.ResourceEquilibria(catalogue.Select(s.Equilibria...)); err != nil {
			return err
		}
	}
	if len(s.EquilibriaExcept) > 0 {
		if err := b.ResourceEquilibria(catalogue.Except(s.EquilibriaExcept...)); err != nil {
			return err
		}
	}
	if s.PetroBalance {
		if err := b.PetroEquilibria(); err != nil {
			return err
		}
	}
	for _, f := range s.Floors {
		if err := b.MinResource(catalogue.Select(f.Resource), f.Min); err != nil {
			return err
		}
	}
	for _, c := range s.Ceilings {
		if err := b.MaxResource(catalogue.Select(c.Resource), c.Max); err != nil {
			return err
		}
	}
	for _, t := range s.Targets {
		if err := b.MinRecipe(catalogue.Select(t.Recipe), t.Rate); err != nil {
			return err
		}
	}
	if s.Laziness != 0 {
		if err := b.PlayerLaziness(s.Laziness); err != nil {
			return err
		}
	}
	if s.MaxPlayers >= 0 {
		if err := b.MaxPlayers(s.MaxPlayers); err != nil {
			return err
		}
	}
	return nil
}
