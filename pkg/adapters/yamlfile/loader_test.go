package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
tree:
  - id: root
    label: Supply Chain Health
  - id: suppliers
    label: Suppliers
    parent_id: root
    weight: 0.4
  - id: supplier-otd
    label: On-Time Delivery
    category: delivery
    parent_id: suppliers
    weight: 1
`

const sampleJSON = `{
  "tree": [
    {"id": "root", "label": "Supply Chain Health"},
    {"id": "a", "label": "A", "parent_id": "root", "weight": 1}
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_YAML(t *testing.T) {
	defs, err := NewLoader(writeTemp(t, "tree.yaml", sampleYAML)).Load()
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "root", defs[0].ID)
	assert.Equal(t, "", defs[0].ParentID)
	assert.Equal(t, "suppliers", defs[1].ID)
	assert.Equal(t, 0.4, defs[1].Weight)
	assert.Equal(t, "delivery", defs[2].Category)
}

func TestLoader_JSON(t *testing.T) {
	defs, err := NewLoader(writeTemp(t, "tree.json", sampleJSON)).Load()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[1].ID)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	assert.Error(t, err)
}

func TestLoader_Empty(t *testing.T) {
	_, err := NewLoader(writeTemp(t, "tree.yaml", "tree: []")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no nodes")
}

func TestLoader_Malformed(t *testing.T) {
	_, err := NewLoader(writeTemp(t, "tree.yaml", "tree: {broken")).Load()
	assert.Error(t, err)
}
