package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-importer/internal/importer"
)

const userYAML = `
version: "1"
structures:
  - name: User
    exact: true
    fields:
      - name: userId
        type: int
      - name: name
        type: string
        nullable: true
      - name: extra
  - name: Point
    fields:
      - name: x
        type: float
      - name: y
        type: float
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(userYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"User", "Point"}, f.Names())

	user, ok := f.Lookup("User")
	require.True(t, ok)
	assert.True(t, user.Exact)
	assert.Equal(t, []importer.Field{
		{Name: "userId", Type: "int"},
		{Name: "name", Type: "string", Nullable: true},
		{Name: "extra"},
	}, user.Fields)

	_, ok = f.Lookup("Missing")
	assert.False(t, ok)
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte("structures: []\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Empty(t, f.Structures)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("structures: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse descriptor YAML")

	// Unknown keys are typos more often than not.
	_, err = Parse([]byte("structures:\n  - name: A\n    feilds: []\n"))
	require.Error(t, err)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(userYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "descriptor.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read descriptor file")
}
