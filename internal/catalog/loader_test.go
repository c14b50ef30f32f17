package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "oat", "name": "Oats", "category": "carb",
		 "per_serving": {"calories": 300, "protein_g": 10, "carbs_g": 54, "fat_g": 5, "fiber_g": 8},
		 "tags": ["contains_gluten"]},
		{"id": "egg", "name": "Egg", "category": "protein",
		 "per_serving": {"calories": 72, "protein_g": 6.3, "fat_g": 4.8}}
	]`)

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	oats, ok := c.Get("oat")
	require.True(t, ok)
	assert.True(t, oats.HasTag(TagContainsGluten))
	assert.Equal(t, 300.0, oats.PerServing.Calories)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_UnknownFieldRejected(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "oat", "name": "Oats", "category": "carb", "glycemic_index": 55,
		 "per_serving": {"calories": 300}}
	]`)

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_InvalidEntry(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": "oat", "name": "Oats", "category": "cereal", "per_serving": {"calories": 300}}
	]`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
