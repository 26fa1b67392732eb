// SPDX-License-Identifier: MIT
// Package: model_test
package model_test

import (
	"fmt"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/model"
	"github.com/katalvlaran/steadyplan/solve"
)

// Example assembles and solves the smallest interesting plan: one process
// converting B into A, a closed system on A, and a target of 5 A per
// second. The only feasible optimum runs the process at rate 5.
func Example() {
	c, err := catalogue.New(
		[]string{"A", "B"},
		[]catalogue.Recipe{{Name: "R"}},
		[]catalogue.Entry{
			{Resource: 0, Recipe: 0, Rate: 1},
			{Resource: 1, Recipe: 0, Rate: -1},
		},
	)
	if err != nil {
		fmt.Println("catalogue:", err)
		return
	}

	b := model.New(c)
	// B is consumed (negative rate), so pricing what the plan spends means
	// a negative weight on its net rate.
	if err := b.ResourceExpense(catalogue.Select("B"), -1); err != nil {
		fmt.Println("build:", err)
		return
	}
	if err := b.MinResource(catalogue.Select("A"), 0); err != nil {
		fmt.Println("build:", err)
		return
	}
	if err := b.MinRecipe(catalogue.Select("R"), 5); err != nil {
		fmt.Println("build:", err)
		return
	}

	sol, err := solve.Minimize(b.Problem(), solve.Options{})
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("status: %s, x[R] = %.1f\n", sol.Status, sol.X[0])

	// Output:
	// status: optimal, x[R] = 5.0
}
