// SPDX-License-Identifier: MIT
// Package: catalogue
//
// types.go centralizes the public value types and the strict sentinel set.
// All construction and lookup failures are reported through these sentinels
// (wrapped with the offending detail); callers match with errors.Is.
package catalogue

import "errors"

var (
	// ErrInvalidCatalogue is returned by New and the loader when the inputs
	// cannot form a well-defined catalogue: empty axes, duplicate resource or
	// recipe names, out-of-range or duplicate matrix cells.
	ErrInvalidCatalogue = errors.New("catalogue: invalid catalogue")

	// ErrNotFound is returned when a resource or recipe name is absent from
	// the catalogue.
	ErrNotFound = errors.New("catalogue: name not found")

	// ErrBadArtifact is returned by the loader when a serialized artifact is
	// malformed: broken JSON/xz framing, inconsistent CSR arrays, or a matrix
	// shape that contradicts the metadata.
	ErrBadArtifact = errors.New("catalogue: malformed artifact")
)

// Recipe is one executable process. Manual marks player-operated labor and is
// computed once by the upstream pipeline (the loader derives it from the
// display name, case-insensitively), never re-matched at constraint time.
type Recipe struct {
	Name   string
	Manual bool
}

// Entry is one sparse matrix cell: the net rate of Resource per unit
// execution rate of Recipe.
type Entry struct {
	Resource int
	Recipe   int
	Rate     float64
}

// Mask is a boolean selection over one catalogue axis. Its length always
// equals the axis length it was resolved against.
type Mask []bool

// Count returns the number of selected positions.
func (m Mask) Count() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}
	return n
}

// Indices returns the selected positions in ascending order.
// Ascending order is what makes constraint accumulation reproducible.
func (m Mask) Indices() []int {
	idx := make([]int, 0, m.Count())
	for i, on := range m {
		if on {
			idx = append(idx, i)
		}
	}
	return idx
}

// Complement returns a new Mask with every position flipped.
func (m Mask) Complement() Mask {
	out := make(Mask, len(m))
	for i, on := range m {
		out[i] = !on
	}
	return out
}

// Selection describes a set of names to resolve against a catalogue axis:
// either the named set itself or its complement. The zero Selection selects
// nothing; All() selects everything.
type Selection struct {
	names  []string
	invert bool
}

// Select picks exactly the named entries.
func Select(names ...string) Selection {
	return Selection{names: names}
}

// Except picks everything but the named entries.
func Except(names ...string) Selection {
	return Selection{names: names, invert: true}
}

// All picks every entry on the axis.
func All() Selection {
	return Selection{invert: true}
}
