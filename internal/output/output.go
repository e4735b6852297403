package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer renders a Document in a specific format.
type Writer interface {
	Write(w io.Writer, doc *Document) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "markdown", "md", "":
		return &MarkdownWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Render returns the document rendered in format.
func Render(doc *Document, format string) ([]byte, error) {
	writer, err := GetWriter(format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writer.Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile creates the parent directories of path and replaces the file
// with data.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
