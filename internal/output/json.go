package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONWriter outputs the dump as a machine-readable manifest.
type JSONWriter struct{}

type jsonManifest struct {
	Title       string        `json:"title"`
	GeneratedAt string        `json:"generatedAt"`
	Root        string        `json:"root"`
	Lang        string        `json:"lang"`
	Files       []FileSection `json:"files"`
}

func (j *JSONWriter) Write(w io.Writer, doc *Document) error {
	files := doc.Files
	if files == nil {
		files = []FileSection{}
	}
	data, err := json.MarshalIndent(jsonManifest{
		Title:       doc.Title,
		GeneratedAt: doc.GeneratedAt.Format(time.RFC3339),
		Root:        doc.Root,
		Lang:        doc.Lang,
		Files:       files,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
