// SPDX-License-Identifier: MIT
// Package: catalogue_test
package catalogue_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/steadyplan/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const testMetaJSON = `{
	"resources": ["Iron plate", "Iron gear wheel", "Pollution"],
	"recipes": ["Iron gear wheel", "Iron gear wheel (MANUAL)", "Iron plate"]
}`

// testMatrixJSON is the CSR encoding of the gear-works fixture used across
// this package (3x3, 7 stored cells).
const testMatrixJSON = `{
	"shape": [3, 3],
	"indptr": [0, 3, 5, 7],
	"indices": [0, 1, 2, 0, 1, 0, 2],
	"data": [-2, -2, 2, 1, 1, 1, 1]
}`

// TestReadMeta_DerivesManualFlags verifies the documented case-insensitive
// marker rule when the artifact ships no explicit flags.
func TestReadMeta_DerivesManualFlags(t *testing.T) {
	resources, recipes, err := catalogue.ReadMeta(strings.NewReader(testMetaJSON))
	require.NoError(t, err)
	require.Len(t, resources, 3)
	require.Len(t, recipes, 3)

	assert.False(t, recipes[0].Manual)
	assert.True(t, recipes[1].Manual, "MANUAL marker must match case-insensitively")
	assert.False(t, recipes[2].Manual)
}

// TestReadMeta_ExplicitManualArray verifies explicit flags win over the
// name-derived rule, and that a length mismatch is rejected.
func TestReadMeta_ExplicitManualArray(t *testing.T) {
	doc := `{"resources":["A"],"recipes":["R (Manual)","S"],"manual":[false,true]}`
	_, recipes, err := catalogue.ReadMeta(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []catalogue.Recipe{{Name: "R (Manual)"}, {Name: "S", Manual: true}}, recipes)

	short := `{"resources":["A"],"recipes":["R","S"],"manual":[true]}`
	_, _, err = catalogue.ReadMeta(strings.NewReader(short))
	require.ErrorIs(t, err, catalogue.ErrBadArtifact)
}

// TestReadMatrix_ValidCSR verifies triplet expansion of a well-formed artifact.
func TestReadMatrix_ValidCSR(t *testing.T) {
	rows, cols, cells, err := catalogue.ReadMatrix(strings.NewReader(testMatrixJSON))
	require.NoError(t, err)
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	require.Len(t, cells, 7)
	assert.Equal(t, catalogue.Entry{Resource: 0, Recipe: 0, Rate: -2}, cells[0])
	assert.Equal(t, catalogue.Entry{Resource: 2, Recipe: 2, Rate: 1}, cells[6])
}

// TestReadMatrix_Malformed walks the structural validations one by one.
func TestReadMatrix_Malformed(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"truncated json", `{"shape": [3`},
		{"bad shape", `{"shape":[3],"indptr":[0],"indices":[],"data":[]}`},
		{"indptr length", `{"shape":[2,2],"indptr":[0,1],"indices":[0],"data":[1]}`},
		{"indptr origin", `{"shape":[1,1],"indptr":[1,1],"indices":[],"data":[]}`},
		{"indptr decreasing", `{"shape":[2,2],"indptr":[0,2,1],"indices":[0,1],"data":[1,1]}`},
		{"data length", `{"shape":[1,2],"indptr":[0,2],"indices":[0,1],"data":[1]}`},
		{"column range", `{"shape":[1,2],"indptr":[0,1],"indices":[5],"data":[1]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := catalogue.ReadMatrix(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, catalogue.ErrBadArtifact)
		})
	}
}

// TestLoad_PlainAndXZ verifies the end-to-end disk path with and without xz
// framing, mirroring how the pipeline ships its artifacts.
func TestLoad_PlainAndXZ(t *testing.T) {
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "recipes-meta.json.xz")
	require.NoError(t, os.WriteFile(metaPath, xzCompress(t, []byte(testMetaJSON)), 0o644))

	matrixPath := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(matrixPath, []byte(testMatrixJSON), 0o644))

	c, err := catalogue.Load(metaPath, matrixPath)
	require.NoError(t, err)
	require.Equal(t, 3, c.NumResources())
	require.Equal(t, 3, c.NumRecipes())
	require.Equal(t, 7, c.NNZ())
	assert.Equal(t, -2.0, c.Rate(0, 0))
	assert.Equal(t, catalogue.Mask{false, true, false}, c.ManualMask())
}

// TestLoad_ShapeMismatch verifies the cross-check between both artifacts.
func TestLoad_ShapeMismatch(t *testing.T) {
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "meta.json")
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"resources":["A"],"recipes":["R"]}`), 0o644))

	matrixPath := filepath.Join(dir, "matrix.json")
	require.NoError(t, os.WriteFile(matrixPath, []byte(testMatrixJSON), 0o644))

	_, err := catalogue.Load(metaPath, matrixPath)
	require.ErrorIs(t, err, catalogue.ErrBadArtifact)
}

// TestLoad_CorruptXZ verifies broken compression framing surfaces as a
// malformed artifact, not a silent misparse.
func TestLoad_CorruptXZ(t *testing.T) {
	dir := t.TempDir()

	metaPath := filepath.Join(dir, "meta.json.xz")
	require.NoError(t, os.WriteFile(metaPath, []byte("not xz at all"), 0o644))

	_, _, err := catalogue.LoadMeta(metaPath)
	require.ErrorIs(t, err, catalogue.ErrBadArtifact)
}

// xzCompress compresses b the way the shipping pipeline does.
func xzCompress(t *testing.T, b []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(b)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
