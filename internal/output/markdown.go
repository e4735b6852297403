package output

import (
	"io"
	"path/filepath"
	"strings"
)

// MarkdownWriter renders a Document as the review dump: title, timestamp,
// file listing, then one fenced block per file.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, doc *Document) error {
	var lines []string
	lines = append(lines,
		"# "+doc.Title,
		"",
		"Generated: "+doc.GeneratedAt.Format(TimestampLayout),
		"",
		"## Files",
	)
	for _, f := range doc.Files {
		lines = append(lines, "- "+f.Path)
	}

	for _, f := range doc.Files {
		body := f.Content
		if f.Missing {
			body = MissingPlaceholder(doc.Lang)
		}
		fence := fenceFor(body)
		lines = append(lines,
			"",
			"---",
			"",
			"## "+f.Path,
			"",
			fence+doc.Lang,
			body,
			fence,
		)
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// MissingPlaceholder is the block body emitted for a file that vanished
// between collection and composition.
func MissingPlaceholder(lang string) string {
	return commentPrefix(lang) + " ERROR: file not found"
}

func commentPrefix(lang string) string {
	switch lang {
	case "python", "ruby", "bash", "yaml", "hcl", "toml", "powershell":
		return "#"
	case "sql":
		return "--"
	default:
		return "//"
	}
}

// fenceFor returns a backtick fence longer than any backtick run in body.
func fenceFor(body string) string {
	longest, run := 0, 0
	for _, r := range body {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	n := 3
	if longest >= n {
		n = longest + 1
	}
	return strings.Repeat("`", n)
}

// LangForPattern infers the fence language tag from a pathspec such as "*.cs".
func LangForPattern(pattern string) string {
	return langByExt[strings.ToLower(filepath.Ext(pattern))]
}

var langByExt = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".tsx":  "tsx",
	".jsx":  "jsx",
	".rs":   "rust",
	".java": "java",
	".rb":   "ruby",
	".cpp":  "cpp",
	".c":    "c",
	".cs":   "csharp",
	".php":  "php",
	".sh":   "bash",
	".sql":  "sql",
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
	".tf":   "hcl",
	".ps1":  "powershell",
	".toml": "toml",
}
