package gitctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathspec_Match(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.cs", "A.cs", true},
		{"*.cs", "Assets/Scripts/A.cs", true},
		{"*.cs", "A.csproj", false},
		{"*.cs", "A.md", false},
		{"Assets/*.cs", "Assets/Deep/A.cs", true},
		{"Assets/*.cs", "Other/A.cs", false},
		{"?.cs", "A.cs", true},
		{"Assets", "Assets/A.cs", true},
		{"Assets/", "Assets/A.cs", true},
		{"Assets", "AssetsX/A.cs", false},
		{"./*.cs", "A.cs", true},
		{"", "anything", true},
		{"*.{cs,ts}", "A.cs", false},
		{"*.{cs,ts}", "A.{cs,ts}", true},
		{"{A}*.cs", "A.cs", false},
		{"{A}*.cs", "Assets/{A}B.cs", false},
		{"*{A}*.cs", "Assets/{A}B.cs", true},
	}
	for _, tt := range tests {
		ps, err := CompilePathspec(tt.pattern)
		require.NoError(t, err, tt.pattern)
		assert.Equal(t, tt.want, ps.Match(tt.path), "pattern %q path %q", tt.pattern, tt.path)
	}
}
