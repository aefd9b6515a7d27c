package fieldmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwise/reconcile/pkg/errors"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	data := `fields:
  - name: parcel_id
    aliases: ["parcel id", "plot no"]
  - name: owner
    aliases: ["owner", "registered owner"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, r.Fields, 2)
	assert.Equal(t, "parcel_id", r.Fields[0].Name)
	assert.Equal(t, []string{"owner", "registered owner"}, r.Fields[1].Aliases)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("/nonexistent/registry.yaml")
	require.Error(t, err)
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields: [truncated"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoadFileInvalidRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fields:\n  - name: lonely\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}
