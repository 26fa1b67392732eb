// SPDX-License-Identifier: MIT
// Package: scenario
//
// types.go - the Scenario document and its validation.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/steadyplan/report"
	"github.com/katalvlaran/steadyplan/solve"
)

// ErrBadScenario is returned when a scenario document is structurally
// invalid: empty name lists, non-finite numbers, conflicting fields.
var ErrBadScenario = errors.New("scenario: invalid scenario")

// Unlimited disables the manual-labor cap.
const Unlimited = -1

// ResourceExpense prices the net rate of a resource group. Positive
// weights price production, negative weights price consumption.
type ResourceExpense struct {
	Resources []string `mapstructure:"resources"`
	Weight    float64  `mapstructure:"weight"`
}

// RecipeExpense prices the execution rate of a recipe group directly.
type RecipeExpense struct {
	Recipes []string `mapstructure:"recipes"`
	Weight  float64  `mapstructure:"weight"`
}

// Target demands a minimum execution rate for one recipe — the "produce at
// least this much of the end product" knob.
type Target struct {
	Recipe string  `mapstructure:"recipe"`
	Rate   float64 `mapstructure:"rate"`
}

// Floor bounds a resource's net rate from below.
type Floor struct {
	Resource string  `mapstructure:"resource"`
	Min      float64 `mapstructure:"min"`
}

// Ceiling bounds a resource's net rate from above.
type Ceiling struct {
	Resource string  `mapstructure:"resource"`
	Max      float64 `mapstructure:"max"`
}

// Scenario is one declarative optimization run. The zero value applies no
// constraints and no costs; Default() additionally lifts the labor cap.
type Scenario struct {
	ResourceExpenses []ResourceExpense `mapstructure:"resource_expenses"`
	RecipeExpenses   []RecipeExpense   `mapstructure:"recipe_expenses"`

	// ClosedSystem forbids any resource from running a net deficit.
	ClosedSystem bool `mapstructure:"closed_system"`

	// Equilibria pins the named resources to net rate zero;
	// EquilibriaExcept pins every resource BUT the named ones. At most one
	// of the two may be set.
	Equilibria       []string `mapstructure:"equilibria"`
	EquilibriaExcept []string `mapstructure:"equilibria_except"`

	// PetroBalance ties the refinery byproduct streams together.
	PetroBalance bool `mapstructure:"petro_balance"`

	Floors   []Floor   `mapstructure:"floors"`
	Ceilings []Ceiling `mapstructure:"ceilings"`
	Targets  []Target  `mapstructure:"targets"`

	// Laziness is the direct cost per unit of manual recipe rate.
	Laziness float64 `mapstructure:"laziness"`

	// MaxPlayers caps total manual labor. Negative means unlimited;
	// zero is a real cap (no manual labor at all).
	MaxPlayers float64 `mapstructure:"max_players"`

	// Solve and report tuning; zeros select the package defaults.
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
	Digits        int     `mapstructure:"digits"`
}

// Default returns a Scenario with the manual-labor cap lifted. Everything
// else stays at the zero value.
func Default() Scenario {
	return Scenario{MaxPlayers: Unlimited}
}

// Validate checks the document's internal consistency.
//
// Errors: ErrBadScenario (wrapped with the offending field).
func (s *Scenario) Validate() error {
	for i, e := range s.ResourceExpenses {
		if len(e.Resources) == 0 {
			return fmt.Errorf("%w: resource expense %d names no resources", ErrBadScenario, i)
		}
		if !finite(e.Weight) {
			return fmt.Errorf("%w: resource expense %d weight %v", ErrBadScenario, i, e.Weight)
		}
	}
	for i, e := range s.RecipeExpenses {
		if len(e.Recipes) == 0 {
			return fmt.Errorf("%w: recipe expense %d names no recipes", ErrBadScenario, i)
		}
		if !finite(e.Weight) {
			return fmt.Errorf("%w: recipe expense %d weight %v", ErrBadScenario, i, e.Weight)
		}
	}
	if len(s.Equilibria) > 0 && len(s.EquilibriaExcept) > 0 {
		return fmt.Errorf("%w: equilibria and equilibria_except are mutually exclusive", ErrBadScenario)
	}
	for i, f := range s.Floors {
		if f.Resource == "" || !finite(f.Min) {
			return fmt.Errorf("%w: floor %d", ErrBadScenario, i)
		}
	}
	for i, c := range s.Ceilings {
		if c.Resource == "" || !finite(c.Max) {
			return fmt.Errorf("%w: ceiling %d", ErrBadScenario, i)
		}
	}
	for i, tgt := range s.Targets {
		if tgt.Recipe == "" || !finite(tgt.Rate) || tgt.Rate < 0 {
			return fmt.Errorf("%w: target %d", ErrBadScenario, i)
		}
	}
	if !finite(s.Laziness) {
		return fmt.Errorf("%w: laziness %v", ErrBadScenario, s.Laziness)
	}
	if math.IsNaN(s.MaxPlayers) || math.IsInf(s.MaxPlayers, 1) {
		return fmt.Errorf("%w: max_players %v", ErrBadScenario, s.MaxPlayers)
	}
	if s.Tolerance < 0 || math.IsNaN(s.Tolerance) {
		return fmt.Errorf("%w: tolerance %v", ErrBadScenario, s.Tolerance)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations %d", ErrBadScenario, s.MaxIterations)
	}
	if s.Digits < 0 {
		return fmt.Errorf("%w: digits %d", ErrBadScenario, s.Digits)
	}
	return nil
}

// SolveOptions maps the scenario's solver knobs onto solve.Options.
func (s *Scenario) SolveOptions() solve.Options {
	return solve.Options{Tolerance: s.Tolerance, MaxIterations: s.MaxIterations}
}

// ReportOptions maps the scenario's display knobs onto report.Options.
func (s *Scenario) ReportOptions() report.Options {
	return report.Options{Digits: s.Digits}
}

// finite reports whether v is a usable coefficient.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
