// SPDX-License-Identifier: MIT
// Package: report
//
// render.go - the textual report: solver status header, recipe table with
// a fixed-width rate column, resource table with engineering-notation
// rates and percentage breakdowns.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/katalvlaran/steadyplan/solve"
)

// Render writes the full plan report to w.
//
// Layout: a status header (status, backend message, iteration count), the
// recipe table, then the resource table. A failed solve renders the header
// only — there is no solution to tabulate.
//
// Contracts: identical inputs produce byte-identical output.
//
// Errors: ErrBadSolution, plus write errors from w.
func Render(w io.Writer, c *catalogue.Catalogue, sol solve.Solution, opts Options) error {
	o := opts.normalized()

	if _, err := fmt.Fprintf(w, "status: %s (%d iterations)\n%s\n", sol.Status, sol.Iterations, sol.Message); err != nil {
		return err
	}
	if !sol.Success {
		return nil
	}

	recipes, err := Recipes(c, sol.X, o.Digits)
	if err != nil {
		return err
	}
	resources, err := Resources(c, sol.X, o.NoiseEpsilon)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nRecipes (rate >= %g):\n", math.Pow(10, -float64(o.Digits))); err != nil {
		return err
	}
	// Align the rate column to the widest surviving value.
	width := 0
	for _, line := range recipes {
		if n := len(fmt.Sprintf("%.*f", o.Digits, line.Rate)); n > width {
			width = n
		}
	}
	for _, line := range recipes {
		if _, err := fmt.Fprintf(w, "  %*.*f  %s\n", width, o.Digits, line.Rate, line.Name); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nResources:\n"); err != nil {
		return err
	}
	nameWidth := 0
	for _, line := range resources {
		if len(line.Name) > nameWidth {
			nameWidth = len(line.Name)
		}
	}
	for _, line := range resources {
		_, err := fmt.Fprintf(w, "  %-*s  produced %s  consumed %s  excess %s\n",
			nameWidth, line.Name,
			engineering(line.Produced, o.Digits),
			share(line.Consumed, line.Produced, o),
			share(line.Excess, line.Produced, o))
		if err != nil {
			return err
		}
	}
	return nil
}

// share renders v relative to produced: a percentage when produced is
// resolvable, the raw engineering value when produced sits at the noise
// floor (dividing by ~0 would print garbage percentages).
func share(v, produced float64, o Options) string {
	if produced > o.NoiseEpsilon {
		return fmt.Sprintf("%.1f%%", 100*v/produced)
	}
	return engineering(v, o.Digits)
}

// engineering formats v with a mantissa in [1,1000) and an exponent that is
// a multiple of three, digits decimals on the mantissa. Zero renders with
// exponent +00.
func engineering(v float64, digits int) string {
	if v == 0 {
		return fmt.Sprintf("%.*fe+00", digits, 0.0)
	}
	exp := 3 * int(math.Floor(math.Log10(math.Abs(v))/3))
	mant := v / math.Pow(10, float64(exp))
	// Rounding at the top of the band can push the mantissa to 1000.
	if math.Abs(mant) >= 1000-0.5*math.Pow(10, -float64(digits)) {
		mant /= 1000
		exp += 3
	}
	return fmt.Sprintf("%.*fe%+03d", digits, mant, exp)
}
