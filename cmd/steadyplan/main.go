// SPDX-License-Identifier: MIT
// Package: main
//
// steadyplan - compute optimal steady-state production plans from serialized
// recipe catalogues and declarative scenario files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "steadyplan:", err)
		os.Exit(1)
	}
}

// NewRootCommand assembles the CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steadyplan",
		Short: "Steady-state production planning over recipe catalogues",
		Long: "steadyplan loads a preprocessed recipe catalogue (name arrays plus a\n" +
			"sparse rate matrix), assembles the constraints a scenario file describes,\n" +
			"runs an LP solver and reports the optimal production plan.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewSolveCommand())
	cmd.AddCommand(NewInfoCommand())
	return cmd
}
