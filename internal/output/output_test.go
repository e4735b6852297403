package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"markdown", "md", ""} {
		w, err := GetWriter(format)
		require.NoError(t, err)
		assert.IsType(t, &MarkdownWriter{}, w)
	}
	w, err := GetWriter("json")
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)

	_, err = GetWriter("sarif")
	assert.Error(t, err)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(sampleDoc(), "html")
	assert.Error(t, err)
}

func TestWriteFile_CreatesDirsAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Docs", "nested", "dump.md")

	require.NoError(t, WriteFile(path, []byte("first version, longer\n")))
	require.NoError(t, WriteFile(path, []byte("second\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWriteFile_ParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "Docs")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteFile(filepath.Join(blocker, "dump.md"), []byte("data\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}
