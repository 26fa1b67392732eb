// SPDX-License-Identifier: MIT
// Package: main
//
// info.go - the info subcommand: catalogue dimensions at a glance.
package main

import (
	"fmt"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/spf13/cobra"
)

// NewInfoCommand builds the info subcommand.
func NewInfoCommand() *cobra.Command {
	var (
		metaPath   string
		matrixPath string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print catalogue dimensions and density",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalogue.Load(metaPath, matrixPath)
			if err != nil {
				return err
			}

			manual := cat.ManualMask().Count()
			r, c, nnz := cat.NumResources(), cat.NumRecipes(), cat.NNZ()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "resources: %d\n", r)
			fmt.Fprintf(out, "recipes:   %d (%d manual)\n", c, manual)
			fmt.Fprintf(out, "nnz:       %d (%.1f%% density)\n", nnz, 100*float64(nnz)/(float64(r)*float64(c)))
			return nil
		},
	}

	cmd.Flags().StringVar(&metaPath, "meta", "recipes-meta.json.xz", "catalogue metadata artifact")
	cmd.Flags().StringVar(&matrixPath, "matrix", "recipes.json.xz", "catalogue rate-matrix artifact")

	return cmd
}
