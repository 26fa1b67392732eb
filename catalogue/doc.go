// SPDX-License-Identifier: MIT
// Package: catalogue
//
// Package catalogue provides the immutable substrate every plan reads from:
// an ordered, duplicate-free resource-name list, an ordered, duplicate-free
// recipe list, and a sparse resources×recipes rate matrix.
//
// Conventions:
//   - Entry (r, c) is the net rate of resource r per unit execution rate of
//     recipe c: positive = produced, negative = consumed.
//   - Resources and recipes are identified by stable indices into the name
//     sequences; lookups by name fail with ErrNotFound.
//   - A Catalogue is built once (New or Load) and never mutated afterwards,
//     so one instance is safely shared across concurrent plan evaluations.
//
// Selections pick rows or columns by explicit name set (Select), by its
// complement (Except), or wholesale (All); a Catalogue resolves them into
// boolean Masks for downstream arithmetic.
//
// The loader reads the two artifacts the preprocessing pipeline ships: a
// metadata JSON with the name arrays and a CSR-encoded matrix JSON, each
// optionally xz-compressed (".xz" suffix).
package catalogue
