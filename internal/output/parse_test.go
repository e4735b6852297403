package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, doc *Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, doc))
	return buf.Bytes()
}

func TestParseMarkdown_RecoversWriterOutput(t *testing.T) {
	doc := sampleDoc()
	doc.Files[0].Content = "using System;\n\n/// ```\n/// sample\n/// ```\npublic class A\n{\n}"

	parsed, err := ParseMarkdown(render(t, doc))
	require.NoError(t, err)
	require.NoError(t, parsed.Validate())

	assert.Equal(t, DefaultTitle, parsed.Title)
	assert.Equal(t, doc.GeneratedAt, parsed.GeneratedAt)
	assert.Equal(t, []string{"A.cs", "B.cs", "C.cs"}, parsed.Listing)
	require.Len(t, parsed.Sections, 3)
	assert.Equal(t, "csharp", parsed.Sections[0].Lang)
	assert.Equal(t, doc.Files[0].Content, parsed.Sections[0].Content)
	assert.Equal(t, MissingPlaceholder("csharp"), parsed.Sections[1].Content)
	assert.Equal(t, "", parsed.Sections[2].Content)
}

func TestParseMarkdown_PathsWithBlockSyntax(t *testing.T) {
	paths := []string{"# Notes.cs", "- dash.cs", "1. Intro.cs", "> quote.cs", "A.cs", "a  b.cs"}
	doc := &Document{Title: "T", Lang: "csharp", GeneratedAt: sampleDoc().GeneratedAt}
	for _, p := range paths {
		doc.Files = append(doc.Files, FileSection{Path: p, Content: "class X {}"})
	}

	parsed, err := ParseMarkdown(render(t, doc))
	require.NoError(t, err)
	require.NoError(t, parsed.Validate())
	assert.Equal(t, paths, parsed.Listing)
}

func TestParseMarkdown_Empty(t *testing.T) {
	parsed, err := ParseMarkdown(render(t, &Document{Title: "T"}))
	require.NoError(t, err)
	assert.NoError(t, parsed.Validate())
	assert.Empty(t, parsed.Listing)
	assert.Empty(t, parsed.Sections)
}

func TestValidate_DetectsMismatch(t *testing.T) {
	src := "# T\n\nGenerated: 2026-01-02 03:04:05\n\n## Files\n- A.cs\n- B.cs\n\n---\n\n## A.cs\n\n```csharp\nx\n```\n"
	parsed, err := ParseMarkdown([]byte(src))
	require.NoError(t, err)
	assert.Error(t, parsed.Validate())
}

func TestValidate_DetectsUnsortedListing(t *testing.T) {
	src := "# T\n\nGenerated: 2026-01-02 03:04:05\n\n## Files\n- B.cs\n- A.cs\n\n---\n\n## B.cs\n\n```csharp\nx\n```\n\n---\n\n## A.cs\n\n```csharp\ny\n```\n"
	parsed, err := ParseMarkdown([]byte(src))
	require.NoError(t, err)
	err = parsed.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not sorted")
}

func TestValidate_DetectsSectionWithoutBlock(t *testing.T) {
	src := "# T\n\nGenerated: 2026-01-02 03:04:05\n\n## Files\n- A.cs\n\n---\n\n## A.cs\n\nplain text\n"
	parsed, err := ParseMarkdown([]byte(src))
	require.NoError(t, err)
	err = parsed.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no code block")
}

func TestValidate_MissingHeader(t *testing.T) {
	parsed, err := ParseMarkdown([]byte("just text\n"))
	require.NoError(t, err)
	err = parsed.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing title")
	assert.Contains(t, err.Error(), "missing Files listing")
}

func TestParseMarkdown_BadTimestamp(t *testing.T) {
	_, err := ParseMarkdown([]byte("# T\n\nGenerated: yesterday\n"))
	assert.Error(t, err)
}
