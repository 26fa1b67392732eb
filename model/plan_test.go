// SPDX-License-Identifier: MIT
// Package: model_test
//
// plan_test.go - end-to-end plans: build, solve, decode. These are the
// canonical cross-package scenarios; the per-operation matrix shapes live
// in builder_test.go.
package model_test

import (
	"testing"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/model"
	"github.com/katalvlaran/steadyplan/report"
	"github.com/katalvlaran/steadyplan/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// abCatalogue is the two-resource conversion fixture: R consumes one B to
// produce one A per unit rate.
func abCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c, err := catalogue.New(
		[]string{"A", "B"},
		[]catalogue.Recipe{{Name: "R"}},
		[]catalogue.Entry{
			{Resource: 0, Recipe: 0, Rate: 1},
			{Resource: 1, Recipe: 0, Rate: -1},
		},
	)
	require.NoError(t, err)
	return c
}

// TestPlan_TargetOutput solves the canonical plan: closed system on A,
// produce at least 5 A/s, price B consumption. The optimum runs R at
// exactly 5, consuming 5 B/s and producing 5 A/s.
func TestPlan_TargetOutput(t *testing.T) {
	c := abCatalogue(t)
	b := model.New(c)
	require.NoError(t, b.ResourceExpense(catalogue.Select("B"), -1))
	require.NoError(t, b.MinResource(catalogue.Select("A"), 0))
	require.NoError(t, b.MinRecipe(catalogue.Select("R"), 5))

	sol, err := solve.Minimize(b.Problem(), solve.Options{})
	require.NoError(t, err)
	require.True(t, sol.Success)
	assert.InDelta(t, 5.0, sol.X[0], 1e-6)

	// Achieved rates decode back through the report layer.
	lines, err := report.Resources(c, sol.X, 1e-9)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "A", lines[0].Name)
	assert.InDelta(t, 5.0, lines[0].Produced, 1e-6)
	assert.InDelta(t, 5.0, lines[0].Excess, 1e-6)
	assert.Equal(t, "B", lines[1].Name)
	assert.Equal(t, 0.0, lines[1].Produced)
	assert.InDelta(t, 5.0, lines[1].Consumed, 1e-6)
	assert.InDelta(t, -5.0, lines[1].Excess, 1e-6)
}

// TestPlan_SupplyCapInfeasible verifies a supply cap below the demand is
// reported infeasible: the target needs 5 B/s but only 3 B/s may be
// consumed (a net-rate floor of −3 on B).
func TestPlan_SupplyCapInfeasible(t *testing.T) {
	b := model.New(abCatalogue(t))
	require.NoError(t, b.MinResource(catalogue.Select("A"), 0))
	require.NoError(t, b.MinResource(catalogue.Select("B"), -3))
	require.NoError(t, b.MinRecipe(catalogue.Select("R"), 5))

	sol, err := solve.Minimize(b.Problem(), solve.Options{})
	require.ErrorIs(t, err, solve.ErrInfeasible)
	assert.Equal(t, solve.StatusInfeasible, sol.Status)
	assert.NotEmpty(t, sol.Message)
}

// TestPlan_EquilibriumForcesIdle verifies an equilibrium on a resource
// with a producer and no consumer only admits the idle plan, and that the
// solution is exactly zero after snapping.
func TestPlan_EquilibriumForcesIdle(t *testing.T) {
	c, err := catalogue.New(
		[]string{"A"},
		[]catalogue.Recipe{{Name: "R"}},
		[]catalogue.Entry{{Resource: 0, Recipe: 0, Rate: 1}},
	)
	require.NoError(t, err)

	b := model.New(c)
	require.NoError(t, b.ResourceEquilibria(catalogue.Select("A")))

	sol, serr := solve.Minimize(b.Problem(), solve.Options{})
	require.NoError(t, serr)
	assert.Equal(t, 0.0, sol.X[0])
}

// TestPlan_ClosedSystemInvariant verifies no resource runs a deficit once
// the full-catalogue floor is in place: smelting gears out of plates needs
// the plate recipe running alongside.
func TestPlan_ClosedSystemInvariant(t *testing.T) {
	c := testCatalogue(t)
	b := model.New(c)
	require.NoError(t, b.ResourceExpense(catalogue.Select("Pollution"), 1))
	require.NoError(t, b.MinResource(catalogue.All(), 0))
	require.NoError(t, b.MinRecipe(catalogue.Select("Iron gear wheel"), 10))

	sol, err := solve.Minimize(b.Problem(), solve.Options{})
	require.NoError(t, err)

	lines, err := report.Resources(c, sol.X, 1e-9)
	require.NoError(t, err)
	for _, line := range lines {
		assert.GreaterOrEqual(t, line.Excess, -1e-6, line.Name)
	}
	// Gears demand 2 plates each; the plate recipe must cover it.
	assert.InDelta(t, 10.0, sol.X[0], 1e-6)
	assert.InDelta(t, 10.0, sol.X[2], 1e-6)
}

// TestPlan_MaxPlayersRedirectsLabor verifies the labor cap: with manual
// gears three times cheaper in pollution but only two players available,
// the plan fills the rest with the assembler recipe.
func TestPlan_MaxPlayersRedirectsLabor(t *testing.T) {
	c := testCatalogue(t)
	b := model.New(c)
	require.NoError(t, b.ResourceExpense(catalogue.Select("Pollution"), 1))
	require.NoError(t, b.MinResource(catalogue.All(), 0))
	require.NoError(t, b.MinRecipe(catalogue.Select("Iron gear wheel", "Iron gear wheel (Manual)"), 10))
	require.NoError(t, b.MaxPlayers(2))

	sol, err := solve.Minimize(b.Problem(), solve.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sol.X[1], 1e-6, "manual rate pinned at the cap")
	assert.InDelta(t, 8.0, sol.X[0], 1e-6, "assembler covers the remainder")
}

// TestPlan_BackendsAgree verifies the gonum backend reproduces the default
// backend's plan on the canonical scenario.
func TestPlan_BackendsAgree(t *testing.T) {
	b := model.New(abCatalogue(t))
	require.NoError(t, b.ResourceExpense(catalogue.Select("B"), -1))
	require.NoError(t, b.MinResource(catalogue.Select("A"), 0))
	require.NoError(t, b.MinRecipe(catalogue.Select("R"), 5))
	p := b.Problem()

	simplex, err := solve.SimplexSolver{}.Minimize(p, solve.Options{})
	require.NoError(t, err)
	gonum, err := solve.GonumSolver{}.Minimize(p, solve.Options{})
	require.NoError(t, err)

	require.Len(t, gonum.X, len(simplex.X))
	for i := range simplex.X {
		assert.InDelta(t, simplex.X[i], gonum.X[i], 1e-6)
	}
	assert.InDelta(t, simplex.Objective, gonum.Objective, 1e-6)
}
