// SPDX-License-Identifier: MIT
// Package: catalogue
//
// catalogue.go implements the Catalogue itself: validated construction from
// name sequences plus sparse cells, name→index lookups, mask resolution, and
// the row arithmetic the model and report layers are built on.
//
// Design principles:
//   - Immutable after New: accessors hand out copies or read-only iteration,
//     never internal slices.
//   - Strict sentinels: every failure wraps one of the types.go sentinels.
//   - Sparse storage: cells live in a CSR matrix (github.com/james-bowman/
//     sparse); dense rows are materialized only on request.
package catalogue

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// Catalogue is the immutable resources×recipes rate matrix together with its
// two name axes. Construct with New or Load.
type Catalogue struct {
	resources []string
	recipes   []Recipe

	resourceIdx map[string]int
	recipeIdx   map[string]int

	rates *sparse.CSR
}

// New builds a Catalogue from parallel name sequences and sparse cells.
//
// Contracts:
//   - resources and recipes must be non-empty and duplicate-free.
//   - every cell must address a valid (resource, recipe) pair; a pair may
//     appear at most once.
//
// Errors: ErrInvalidCatalogue (wrapped with the offending name or cell).
//
// Complexity: O(R + C + nnz) time and memory.
func New(resources []string, recipes []Recipe, cells []Entry) (*Catalogue, error) {
	// 1) Non-degenerate axes: an LP over zero variables or zero resources has
	//    no meaning downstream.
	if len(resources) == 0 {
		return nil, fmt.Errorf("%w: no resources", ErrInvalidCatalogue)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes", ErrInvalidCatalogue)
	}

	// 2) Duplicate-free name axes; build the lookup maps while scanning.
	resourceIdx := make(map[string]int, len(resources))
	for i, name := range resources {
		if _, dup := resourceIdx[name]; dup {
			return nil, fmt.Errorf("%w: duplicate resource %q", ErrInvalidCatalogue, name)
		}
		resourceIdx[name] = i
	}
	recipeIdx := make(map[string]int, len(recipes))
	for i, rec := range recipes {
		if _, dup := recipeIdx[rec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate recipe %q", ErrInvalidCatalogue, rec.Name)
		}
		recipeIdx[rec.Name] = i
	}

	// 3) Cell validation: bounds plus at-most-once per (r, c) so the CSR
	//    conversion below stays well-defined.
	var (
		rows = make([]int, 0, len(cells))
		cols = make([]int, 0, len(cells))
		vals = make([]float64, 0, len(cells))
		seen = make(map[[2]int]struct{}, len(cells))
	)
	for _, cell := range cells {
		if cell.Resource < 0 || cell.Resource >= len(resources) {
			return nil, fmt.Errorf("%w: cell resource index %d out of range", ErrInvalidCatalogue, cell.Resource)
		}
		if cell.Recipe < 0 || cell.Recipe >= len(recipes) {
			return nil, fmt.Errorf("%w: cell recipe index %d out of range", ErrInvalidCatalogue, cell.Recipe)
		}
		key := [2]int{cell.Resource, cell.Recipe}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate cell (%d,%d)", ErrInvalidCatalogue, cell.Resource, cell.Recipe)
		}
		seen[key] = struct{}{}
		rows = append(rows, cell.Resource)
		cols = append(cols, cell.Recipe)
		vals = append(vals, cell.Rate)
	}

	// 4) Freeze: copy the axes, convert triplets to CSR.
	c := &Catalogue{
		resources:   append([]string(nil), resources...),
		recipes:     append([]Recipe(nil), recipes...),
		resourceIdx: resourceIdx,
		recipeIdx:   recipeIdx,
		rates:       sparse.NewCOO(len(resources), len(recipes), rows, cols, vals).ToCSR(),
	}

	return c, nil
}

// NumResources returns the resource-axis length.
func (c *Catalogue) NumResources() int { return len(c.resources) }

// NumRecipes returns the recipe-axis length.
func (c *Catalogue) NumRecipes() int { return len(c.recipes) }

// NNZ returns the number of stored matrix cells.
func (c *Catalogue) NNZ() int { return c.rates.NNZ() }

// ResourceNames returns a copy of the resource-name sequence.
func (c *Catalogue) ResourceNames() []string {
	return append([]string(nil), c.resources...)
}

// Recipes returns a copy of the recipe sequence.
func (c *Catalogue) Recipes() []Recipe {
	return append([]Recipe(nil), c.recipes...)
}

// ResourceIndex resolves a resource name to its stable index.
//
// Errors: ErrNotFound (wrapped with the name).
func (c *Catalogue) ResourceIndex(name string) (int, error) {
	i, ok := c.resourceIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: resource %q", ErrNotFound, name)
	}
	return i, nil
}

// RecipeIndex resolves a recipe name to its stable index.
//
// Errors: ErrNotFound (wrapped with the name).
func (c *Catalogue) RecipeIndex(name string) (int, error) {
	i, ok := c.recipeIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: recipe %q", ErrNotFound, name)
	}
	return i, nil
}

// Rate returns the net rate of resource r per unit rate of recipe col.
// Index bounds follow the gonum convention: out-of-range panics.
func (c *Catalogue) Rate(r, col int) float64 {
	return c.rates.At(r, col)
}

// ResourceMask resolves sel against the resource axis.
//
// Errors: ErrNotFound for any unknown name; no partial mask is returned.
func (c *Catalogue) ResourceMask(sel Selection) (Mask, error) {
	return resolve(sel, len(c.resources), c.resourceIdx, "resource")
}

// RecipeMask resolves sel against the recipe axis.
//
// Errors: ErrNotFound for any unknown name; no partial mask is returned.
func (c *Catalogue) RecipeMask(sel Selection) (Mask, error) {
	return resolve(sel, len(c.recipes), c.recipeIdx, "recipe")
}

// resolve materializes a Selection into a Mask of length n.
// Names are checked before any mask bit is set, so an error never leaks a
// half-built mask to the caller.
func resolve(sel Selection, n int, index map[string]int, axis string) (Mask, error) {
	picked := make([]int, len(sel.names))
	for k, name := range sel.names {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrNotFound, axis, name)
		}
		picked[k] = i
	}

	mask := make(Mask, n)
	for _, i := range picked {
		mask[i] = true
	}
	if sel.invert {
		for i := range mask {
			mask[i] = !mask[i]
		}
	}

	return mask, nil
}

// ManualMask returns the recipe-axis mask of manually operated recipes.
func (c *Catalogue) ManualMask() Mask {
	mask := make(Mask, len(c.recipes))
	for i, rec := range c.recipes {
		mask[i] = rec.Manual
	}
	return mask
}

// Row materializes resource row r as a dense recipe-length vector (a fresh
// copy each call; callers may mutate it freely).
//
// Complexity: O(C + nnz(row)).
func (c *Catalogue) Row(r int) []float64 {
	row := make([]float64, len(c.recipes))
	c.rates.DoRowNonZero(r, func(_, j int, v float64) {
		row[j] = v
	})
	return row
}

// SumRows returns the column sums over the selected resource rows: one value
// per recipe, Σ_{r ∈ mask} rate(r, j). This is the projection that turns a
// per-resource cost into a per-recipe cost.
//
// Contracts: len(mask) == NumResources() (panics otherwise; masks come from
// ResourceMask, so a mismatch is a programming error).
//
// Complexity: O(C + nnz).
func (c *Catalogue) SumRows(mask Mask) []float64 {
	if len(mask) != len(c.resources) {
		panic("catalogue: SumRows mask length mismatch")
	}
	sums := make([]float64, len(c.recipes))
	c.rates.DoNonZero(func(r, j int, v float64) {
		if mask[r] {
			sums[j] += v
		}
	})
	return sums
}

// Rows extracts the selected resource rows as a fresh sparse sub-block with
// rows reindexed to 0..mask.Count()-1 and the recipe axis unchanged.
//
// Contracts: len(mask) == NumResources() (panics otherwise); mask must select
// at least one row — a zero-row CSR has no meaning to downstream consumers.
//
// Complexity: O(R + nnz).
func (c *Catalogue) Rows(mask Mask) *sparse.CSR {
	if len(mask) != len(c.resources) {
		panic("catalogue: Rows mask length mismatch")
	}
	sub := mask.Count()
	if sub == 0 {
		panic("catalogue: Rows over empty mask")
	}

	// Old row index -> compact sub-block index.
	remap := make([]int, len(c.resources))
	next := 0
	for r, on := range mask {
		if on {
			remap[r] = next
			next++
		} else {
			remap[r] = -1
		}
	}

	var (
		rows []int
		cols []int
		vals []float64
	)
	c.rates.DoNonZero(func(r, j int, v float64) {
		if mask[r] {
			rows = append(rows, remap[r])
			cols = append(cols, j)
			vals = append(vals, v)
		}
	})

	return sparse.NewCOO(sub, len(c.recipes), rows, cols, vals).ToCSR()
}

// DoNonZero calls fn for every stored cell in row-major order.
func (c *Catalogue) DoNonZero(fn func(r, col int, v float64)) {
	c.rates.DoNonZero(fn)
}
