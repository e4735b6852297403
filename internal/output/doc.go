// Package output composes, renders, writes, and re-reads code dumps.
//
// A [Composer] reads the files of a change-set from disk into a [Document].
// Missing files become placeholder sections and contents are normalized to
// UTF-8 with LF line endings. [GetWriter] returns a [Writer] for "markdown"
// (the review dump) or "json" (a manifest of the same data), and [WriteFile]
// replaces the destination file, creating its directory first.
//
// [ParseMarkdown] recovers the listing and sections of a rendered dump so
// [ParsedDump.Validate] can check that both name the same files in order.
package output
