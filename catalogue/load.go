// SPDX-License-Identifier: MIT
// Package: catalogue
//
// load.go reads the two serialized artifacts the preprocessing pipeline
// ships: a metadata JSON holding the name arrays and a CSR-encoded matrix
// JSON. Either file may be xz-compressed (".xz" suffix). The loader only
// decodes and validates; all catalogue-level invariants are re-checked by
// New so both entry points enforce the same contract.
package catalogue

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// manualMarker flags player-operated recipes in display names, matched
// case-insensitively ("Manual", "manual", ...). The wiki data uses the
// producer name verbatim, so the marker survives into the recipe title.
const manualMarker = "manual"

// metaDoc mirrors the metadata artifact. The optional "manual" array lets a
// newer pipeline ship explicit flags; absent that, flags are derived from
// the names.
type metaDoc struct {
	Resources []string `json:"resources"`
	Recipes   []string `json:"recipes"`
	Manual    []bool   `json:"manual,omitempty"`
}

// matrixDoc mirrors the CSR matrix artifact (scipy-compatible field layout).
type matrixDoc struct {
	Shape   []int     `json:"shape"`
	Indptr  []int     `json:"indptr"`
	Indices []int     `json:"indices"`
	Data    []float64 `json:"data"`
}

// Load reads both artifacts and assembles the Catalogue, cross-checking the
// matrix shape against the metadata name counts.
//
// Errors: ErrBadArtifact for malformed or inconsistent artifacts (wrapped
// with the failing file and detail), ErrInvalidCatalogue from construction,
// plus I/O errors opening the files.
func Load(metaPath, matrixPath string) (*Catalogue, error) {
	resources, recipes, err := LoadMeta(metaPath)
	if err != nil {
		return nil, err
	}
	rows, cols, cells, err := LoadMatrix(matrixPath)
	if err != nil {
		return nil, err
	}
	if rows != len(resources) || cols != len(recipes) {
		return nil, fmt.Errorf("%w: matrix shape %dx%d does not match %d resources x %d recipes",
			ErrBadArtifact, rows, cols, len(resources), len(recipes))
	}
	return New(resources, recipes, cells)
}

// LoadMeta reads a metadata artifact from disk (xz-decompressed when the
// path ends in ".xz").
func LoadMeta(path string) ([]string, []Recipe, error) {
	r, closeFn, err := openArtifact(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeFn()
	return ReadMeta(r)
}

// LoadMatrix reads a CSR matrix artifact from disk (xz-decompressed when the
// path ends in ".xz").
func LoadMatrix(path string) (rows, cols int, cells []Entry, err error) {
	r, closeFn, err := openArtifact(path)
	if err != nil {
		return 0, 0, nil, err
	}
	defer closeFn()
	return ReadMatrix(r)
}

// ReadMeta decodes a metadata artifact: resource names plus recipes with
// their manual flags. When the artifact carries no explicit "manual" array
// the flag is computed here, once, by the documented case-insensitive
// substring rule.
//
// Errors: ErrBadArtifact.
func ReadMeta(r io.Reader) ([]string, []Recipe, error) {
	var doc metaDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: meta: %v", ErrBadArtifact, err)
	}
	if doc.Manual != nil && len(doc.Manual) != len(doc.Recipes) {
		return nil, nil, fmt.Errorf("%w: meta: %d manual flags for %d recipes",
			ErrBadArtifact, len(doc.Manual), len(doc.Recipes))
	}

	recipes := make([]Recipe, len(doc.Recipes))
	for i, name := range doc.Recipes {
		manual := strings.Contains(strings.ToLower(name), manualMarker)
		if doc.Manual != nil {
			manual = doc.Manual[i]
		}
		recipes[i] = Recipe{Name: name, Manual: manual}
	}

	return doc.Resources, recipes, nil
}

// ReadMatrix decodes and validates a CSR matrix artifact, returning its
// shape and the cells as triplets ready for New.
//
// Validation: shape of length 2, non-negative dimensions, indptr of length
// rows+1 starting at 0 and monotone non-decreasing, indices/data lengths
// matching the final indptr, every column index in range.
//
// Errors: ErrBadArtifact.
func ReadMatrix(r io.Reader) (rows, cols int, cells []Entry, err error) {
	var doc matrixDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, 0, nil, fmt.Errorf("%w: matrix: %v", ErrBadArtifact, err)
	}

	// Structural checks before touching any cell.
	if len(doc.Shape) != 2 || doc.Shape[0] < 0 || doc.Shape[1] < 0 {
		return 0, 0, nil, fmt.Errorf("%w: matrix: bad shape %v", ErrBadArtifact, doc.Shape)
	}
	rows, cols = doc.Shape[0], doc.Shape[1]
	if len(doc.Indptr) != rows+1 {
		return 0, 0, nil, fmt.Errorf("%w: matrix: indptr length %d for %d rows",
			ErrBadArtifact, len(doc.Indptr), rows)
	}
	if doc.Indptr[0] != 0 {
		return 0, 0, nil, fmt.Errorf("%w: matrix: indptr starts at %d", ErrBadArtifact, doc.Indptr[0])
	}
	for i := 1; i <= rows; i++ {
		if doc.Indptr[i] < doc.Indptr[i-1] {
			return 0, 0, nil, fmt.Errorf("%w: matrix: indptr decreases at row %d", ErrBadArtifact, i-1)
		}
	}
	nnz := doc.Indptr[rows]
	if len(doc.Indices) != nnz || len(doc.Data) != nnz {
		return 0, 0, nil, fmt.Errorf("%w: matrix: %d indices / %d data for %d stored cells",
			ErrBadArtifact, len(doc.Indices), len(doc.Data), nnz)
	}

	cells = make([]Entry, 0, nnz)
	for row := 0; row < rows; row++ {
		for k := doc.Indptr[row]; k < doc.Indptr[row+1]; k++ {
			col := doc.Indices[k]
			if col < 0 || col >= cols {
				return 0, 0, nil, fmt.Errorf("%w: matrix: column %d out of range in row %d",
					ErrBadArtifact, col, row)
			}
			cells = append(cells, Entry{Resource: row, Recipe: col, Rate: doc.Data[k]})
		}
	}

	return rows, cols, cells, nil
}

// openArtifact opens path for reading, transparently layering an xz decoder
// for ".xz" files. The returned closeFn releases the underlying file.
func openArtifact(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = f.Close() }

	if !strings.HasSuffix(path, ".xz") {
		return f, closeFn, nil
	}
	xr, err := xz.NewReader(f)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrBadArtifact, path, err)
	}
	return xr, closeFn, nil
}
