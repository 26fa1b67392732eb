// SPDX-License-Identifier: MIT
// Package: scenario_test
package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/model"
	"github.com/katalvlaran/steadyplan/report"
	"github.com/katalvlaran/steadyplan/scenario"
	"github.com/katalvlaran/steadyplan/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalogue builds the fixture shared by this file:
//
//	                 Gear wheel  Gear wheel (Manual)  Iron plate
//	Iron plate           -2              -2               +2
//	Iron gear wheel      +1              +1                0
//	Pollution            +1               0               +1
func testCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c, err := catalogue.New(
		[]string{"Iron plate", "Iron gear wheel", "Pollution"},
		[]catalogue.Recipe{
			{Name: "Iron gear wheel"},
			{Name: "Iron gear wheel (Manual)", Manual: true},
			{Name: "Iron plate"},
		},
		[]catalogue.Entry{
			{Resource: 0, Recipe: 0, Rate: -2},
			{Resource: 1, Recipe: 0, Rate: 1},
			{Resource: 2, Recipe: 0, Rate: 1},
			{Resource: 0, Recipe: 1, Rate: -2},
			{Resource: 1, Recipe: 1, Rate: 1},
			{Resource: 0, Recipe: 2, Rate: 2},
			{Resource: 2, Recipe: 2, Rate: 1},
		},
	)
	require.NoError(t, err)
	return c
}

// writeScenario drops a YAML document into a temp dir and returns its path.
func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

const gearPlan = `
resource_expenses:
  - resources: ["Pollution"]
    weight: 1
closed_system: true
equilibria: ["Iron plate"]
targets:
  - recipe: "Iron gear wheel"
    rate: 10
laziness: 10
max_players: 2
digits: 4
tolerance: 1e-8
max_iterations: 500
`

// TestLoad_FullDocument verifies every field of a YAML scenario survives
// the viper round trip.
func TestLoad_FullDocument(t *testing.T) {
	s, err := scenario.Load(writeScenario(t, gearPlan))
	require.NoError(t, err)

	assert.Equal(t, []scenario.ResourceExpense{{Resources: []string{"Pollution"}, Weight: 1}}, s.ResourceExpenses)
	assert.True(t, s.ClosedSystem)
	assert.Equal(t, []string{"Iron plate"}, s.Equilibria)
	assert.Equal(t, []scenario.Target{{Recipe: "Iron gear wheel", Rate: 10}}, s.Targets)
	assert.Equal(t, 10.0, s.Laziness)
	assert.Equal(t, 2.0, s.MaxPlayers)

	assert.Equal(t, solve.Options{Tolerance: 1e-8, MaxIterations: 500}, s.SolveOptions())
	assert.Equal(t, report.Options{Digits: 4}, s.ReportOptions())
}

// TestLoad_DefaultsAndOverrides verifies the unlimited-players default and
// the STEADYPLAN_ environment channel.
func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeScenario(t, "closed_system: true\n")

	s, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(scenario.Unlimited), s.MaxPlayers)

	t.Setenv("STEADYPLAN_MAX_PLAYERS", "3")
	s, err = scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.MaxPlayers)
}

// TestLoad_Failures verifies unreadable and invalid documents both wrap
// ErrBadScenario.
func TestLoad_Failures(t *testing.T) {
	_, err := scenario.Load("")
	require.ErrorIs(t, err, scenario.ErrBadScenario)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, scenario.ErrBadScenario)

	_, err = scenario.Load(writeScenario(t, "equilibria: [\"A\"]\nequilibria_except: [\"B\"]\n"))
	require.ErrorIs(t, err, scenario.ErrBadScenario)
}

// TestValidate_RejectsBadFields walks the per-field failure cases.
func TestValidate_RejectsBadFields(t *testing.T) {
	cases := map[string]scenario.Scenario{
		"empty expense":   {ResourceExpenses: []scenario.ResourceExpense{{Weight: 1}}},
		"nameless floor":  {Floors: []scenario.Floor{{Min: 1}}},
		"nameless target": {Targets: []scenario.Target{{Rate: 1}}},
		"negative target": {Targets: []scenario.Target{{Recipe: "R", Rate: -1}}},
		"bad tolerance":   {Tolerance: -1},
		"bad digits":      {Digits: -2},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, s.Validate(), scenario.ErrBadScenario)
		})
	}

	ok := scenario.Default()
	require.NoError(t, ok.Validate())
}

// TestApply_CallOrderAndCounts verifies the documented operation order by
// the rows it accumulates: closed system (3 floors), one equilibrium, one
// target row, one player cap.
func TestApply_CallOrderAndCounts(t *testing.T) {
	s, err := scenario.Load(writeScenario(t, gearPlan))
	require.NoError(t, err)

	b := model.New(testCatalogue(t))
	require.NoError(t, s.Apply(b))

	// 3 closed-system rows + 1 target row + 1 player cap.
	assert.Equal(t, 5, b.Set().NumInequalities())
	assert.Equal(t, 1, b.Set().NumEqualities())

	p := b.Problem()
	// Laziness lands only on the manual recipe, on top of the pollution
	// expense projection [1, 0, 1].
	assert.Equal(t, []float64{1, 10, 1}, p.C)
	// The final row is the player cap.
	assert.Equal(t, []float64{0, 1, 0}, p.AUb[4])
	assert.Equal(t, 2.0, p.BUb[4])
}

// TestApply_UnknownNameAborts verifies an unknown name stops the sequence
// with the model sentinel.
func TestApply_UnknownNameAborts(t *testing.T) {
	s := scenario.Default()
	s.Targets = []scenario.Target{{Recipe: "Rocket part", Rate: 1}}

	err := s.Apply(model.New(testCatalogue(t)))
	require.ErrorIs(t, err, model.ErrUnknownRecipe)
}
