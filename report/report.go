// SPDX-License-Identifier: MIT
// Package: report
//
// report.go - the table derivations: recipe rates filtered to the display
// threshold and per-resource produced/consumed/excess rates filtered to the
// numerical noise floor.
//
// Design principles:
//   - Fully deterministic ordering: every sort key chain ends in a name
//     comparison, so equal values never reorder between runs.
//   - Two independent thresholds: the recipe table uses the DISPLAY
//     threshold 10^-Digits (what a reader can see), the resource table uses
//     NoiseEpsilon (what the solver can resolve). They must not be mixed.
package report

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/steadyplan/catalogue"
)

// ErrBadSolution is returned when the solution vector length does not match
// the catalogue's recipe count.
var ErrBadSolution = errors.New("report: solution does not match catalogue")

// Default display tuning applied by Options.normalized for zero fields.
const (
	// DefaultDigits sets the recipe-rate precision; the display threshold
	// is 10^-Digits.
	DefaultDigits = 3

	// DefaultNoiseEpsilon is the resource-table noise floor, independent of
	// the display threshold.
	DefaultNoiseEpsilon = 1e-9
)

// Options tunes the report. The zero value selects the package defaults.
type Options struct {
	// Digits of precision for recipe rates. 0 → DefaultDigits.
	Digits int
	// NoiseEpsilon drops resource rows whose produced, consumed and excess
	// are all below it. 0 → DefaultNoiseEpsilon.
	NoiseEpsilon float64
}

// normalized fills zero-valued fields with defaults.
func (o Options) normalized() Options {
	if o.Digits == 0 {
		o.Digits = DefaultDigits
	}
	if o.NoiseEpsilon == 0 {
		o.NoiseEpsilon = DefaultNoiseEpsilon
	}
	return o
}

// RecipeLine is one surviving row of the recipe table.
type RecipeLine struct {
	Name string
	Rate float64
}

// ResourceLine is one surviving row of the resource table. All three rates
// are per unit time: Produced sums the positive matrix contributions,
// Consumed the negated negative ones, Excess is the raw net rate
// (Produced − Consumed up to rounding).
type ResourceLine struct {
	Name     string
	Produced float64
	Consumed float64
	Excess   float64
}

// Recipes derives the recipe table: (name, rate) pairs with rate at least
// 10^-digits, sorted by rate descending then name descending.
//
// Errors: ErrBadSolution when len(x) differs from the recipe count.
//
// Complexity: O(C log C).
func Recipes(c *catalogue.Catalogue, x []float64, digits int) ([]RecipeLine, error) {
	if len(x) != c.NumRecipes() {
		return nil, fmt.Errorf("%w: %d rates for %d recipes", ErrBadSolution, len(x), c.NumRecipes())
	}
	if digits == 0 {
		digits = DefaultDigits
	}
	threshold := math.Pow(10, -float64(digits))

	recipes := c.Recipes()
	lines := make([]RecipeLine, 0, len(x))
	for j, rate := range x {
		if rate >= threshold {
			lines = append(lines, RecipeLine{Name: recipes[j].Name, Rate: rate})
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Rate != lines[j].Rate {
			return lines[i].Rate > lines[j].Rate
		}
		return lines[i].Name > lines[j].Name
	})
	return lines, nil
}

// Resources derives the resource table: produced, consumed and excess rates
// per resource, dropping rows where all three magnitudes are below noise,
// sorted by produced descending then name descending.
//
// Errors: ErrBadSolution when len(x) differs from the recipe count.
//
// Complexity: O(nnz + R log R).
func Resources(c *catalogue.Catalogue, x []float64, noise float64) ([]ResourceLine, error) {
	if len(x) != c.NumRecipes() {
		return nil, fmt.Errorf("%w: %d rates for %d recipes", ErrBadSolution, len(x), c.NumRecipes())
	}
	if noise == 0 {
		noise = DefaultNoiseEpsilon
	}

	// One sparse pass accumulates all three matrix-vector products: the
	// clipped-positive matrix feeds produced, the clipped-negative one
	// consumed, the raw matrix excess.
	produced := make([]float64, c.NumResources())
	consumed := make([]float64, c.NumResources())
	excess := make([]float64, c.NumResources())
	c.DoNonZero(func(r, j int, v float64) {
		if v > 0 {
			produced[r] += v * x[j]
		} else {
			consumed[r] -= v * x[j]
		}
		excess[r] += v * x[j]
	})

	names := c.ResourceNames()
	lines := make([]ResourceLine, 0, len(names))
	for r, name := range names {
		if math.Abs(produced[r]) < noise && math.Abs(consumed[r]) < noise && math.Abs(excess[r]) < noise {
			continue
		}
		lines = append(lines, ResourceLine{
			Name:     name,
			Produced: produced[r],
			Consumed: consumed[r],
			Excess:   excess[r],
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Produced != lines[j].Produced {
			return lines[i].Produced > lines[j].Produced
		}
		return lines[i].Name > lines[j].Name
	})
	return lines, nil
}
