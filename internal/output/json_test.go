package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, sampleDoc()))

	var got struct {
		Title       string        `json:"title"`
		GeneratedAt string        `json:"generatedAt"`
		Lang        string        `json:"lang"`
		Files       []FileSection `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, DefaultTitle, got.Title)
	assert.Equal(t, "csharp", got.Lang)
	_, err := time.Parse(time.RFC3339, got.GeneratedAt)
	assert.NoError(t, err)
	require.Len(t, got.Files, 3)
	assert.Equal(t, "A.cs", got.Files[0].Path)
	assert.True(t, got.Files[1].Missing)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}

func TestJSONWriter_EmptyFilesIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, &Document{Title: "T"}))
	assert.Contains(t, buf.String(), `"files": []`)
}
