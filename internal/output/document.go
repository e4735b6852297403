package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"

	"github.com/dshills/codedump/internal/redact"
)

// TimestampLayout is the format of the "Generated:" line.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultTitle is the heading used when no title is configured.
const DefaultTitle = "Equipment Damage MVP - Code Dump"

// FileSection is one file of a dump.
type FileSection struct {
	Path    string `json:"path"`
	Missing bool   `json:"missing"`
	Content string `json:"content"`
}

// Document is a composed dump, ready to be rendered.
type Document struct {
	Title       string
	Root        string
	Lang        string
	GeneratedAt time.Time
	Files       []FileSection
}

// Paths returns the section paths in document order.
func (d *Document) Paths() []string {
	paths := make([]string, len(d.Files))
	for i, f := range d.Files {
		paths[i] = f.Path
	}
	return paths
}

// Composer reads the files of a change-set and assembles a Document.
type Composer struct {
	Root   string
	Title  string
	Lang   string
	Now    func() time.Time
	Redact redact.Policy
}

// Compose builds a Document with one section per path, in the order given.
// A path that no longer exists yields a Missing section; any other read
// failure is returned.
func (c *Composer) Compose(paths []string) (*Document, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	doc := &Document{
		Title:       title,
		Root:        c.Root,
		Lang:        c.Lang,
		GeneratedAt: now(),
		Files:       make([]FileSection, 0, len(paths)),
	}
	for _, rel := range paths {
		content, err := ReadSource(filepath.Join(c.Root, filepath.FromSlash(rel)))
		if errors.Is(err, fs.ErrNotExist) {
			doc.Files = append(doc.Files, FileSection{Path: rel, Missing: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}
		if c.Redact.Enabled() {
			content = c.Redact.Apply(rel, content)
		}
		doc.Files = append(doc.Files, FileSection{Path: rel, Content: content})
	}
	return doc, nil
}

// ReadSource reads a text file for embedding. Invalid UTF-8 bytes become
// U+FFFD, CRLF becomes LF, and trailing newlines are dropped.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return normalize(data), nil
}

func normalize(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		decoded = bytes.ToValidUTF8(data, []byte("\uFFFD"))
	}
	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}
