package output

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParsedSection is a file section recovered from a rendered dump.
type ParsedSection struct {
	Path    string
	Lang    string
	Content string
	// HasBlock is false when the heading is not followed by a fenced block.
	HasBlock bool
}

// ParsedDump is the structure recovered from a rendered Markdown dump.
type ParsedDump struct {
	Title       string
	GeneratedAt time.Time
	Listing     []string
	Sections    []ParsedSection

	hasTimestamp bool
	hasListing   bool
}

// ParseMarkdown reads a dump produced by MarkdownWriter back into its parts.
func ParseMarkdown(source []byte) (*ParsedDump, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	dump := &ParsedDump{}

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.Heading:
			title := rawLines(n, source)
			switch {
			case n.Level == 1 && dump.Title == "":
				dump.Title = title
			case n.Level == 2 && title == "Files" && !dump.hasListing && len(dump.Sections) == 0:
				dump.hasListing = true
				if list, ok := n.NextSibling().(*ast.List); ok {
					dump.Listing = listItems(list, source)
					node = list
				}
			case n.Level == 2:
				section := ParsedSection{Path: title}
				if block, ok := n.NextSibling().(*ast.FencedCodeBlock); ok {
					section.HasBlock = true
					section.Lang = string(block.Language(source))
					section.Content = blockContent(block, source)
					node = block
				}
				dump.Sections = append(dump.Sections, section)
			}
		case *ast.Paragraph:
			line := rawLines(n, source)
			if ts, ok := strings.CutPrefix(line, "Generated: "); ok && !dump.hasTimestamp {
				at, err := time.ParseInLocation(TimestampLayout, ts, time.Local)
				if err != nil {
					return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
				}
				dump.GeneratedAt = at
				dump.hasTimestamp = true
			}
		}
	}
	return dump, nil
}

// Validate checks that the listing and the sections name the same files in
// the same strictly ascending order and that every section has a block.
func (d *ParsedDump) Validate() error {
	var errs []error
	if d.Title == "" {
		errs = append(errs, errors.New("missing title heading"))
	}
	if !d.hasTimestamp {
		errs = append(errs, errors.New("missing Generated timestamp"))
	}
	if !d.hasListing {
		errs = append(errs, errors.New("missing Files listing"))
	}
	if !isStrictlySorted(d.Listing) {
		errs = append(errs, errors.New("file listing is not sorted and unique"))
	}

	paths := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		paths[i] = s.Path
		if !s.HasBlock {
			errs = append(errs, fmt.Errorf("section %s has no code block", s.Path))
		}
	}
	if !slices.Equal(d.Listing, paths) {
		errs = append(errs, fmt.Errorf("listing has %d files but sections have %d or differ in order", len(d.Listing), len(paths)))
	}
	return errors.Join(errs...)
}

func rawLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return strings.TrimSpace(buf.String())
}

func listItems(list *ast.List, source []byte) []string {
	var items []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		items = append(items, itemSource(item, source))
	}
	return items
}

// itemSource returns the raw text after the bullet marker of a list item.
// Paths such as "1. Intro.cs" or "# Notes.cs" parse as nested blocks, so the
// source line is read instead of the item's children.
func itemSource(item ast.Node, source []byte) string {
	pos := -1
	_ = ast.Walk(item, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if off, ok := firstOffset(n); ok {
			pos = off
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if pos < 0 {
		return ""
	}

	start := bytes.LastIndexByte(source[:pos], '\n') + 1
	end := len(source)
	if i := bytes.IndexByte(source[pos:], '\n'); i >= 0 {
		end = pos + i
	}
	line := strings.TrimSuffix(string(source[start:end]), "\r")
	if rest, ok := strings.CutPrefix(line, "- "); ok {
		return rest
	}
	return strings.TrimSpace(line)
}

func firstOffset(n ast.Node) (int, bool) {
	switch v := n.(type) {
	case *ast.Text:
		return v.Segment.Start, true
	case *ast.FencedCodeBlock:
		if v.Info != nil {
			return v.Info.Segment.Start, true
		}
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	return 0, false
}

func blockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func isStrictlySorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return false
		}
	}
	return true
}
