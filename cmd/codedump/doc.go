// Codedump concatenates the changed source files of a git working tree into
// a single Markdown document for review.
//
// It lists files with unstaged modifications and untracked (non-ignored)
// files matching a pathspec, then writes a title, a timestamp, a file
// listing, and one fenced code block per file.
//
// Usage:
//
//	codedump                          # dump changed *.cs files to Docs/EquipmentDamage_MVP_CodeDump.md
//	codedump --pattern '*.go' -o Docs/review.md
//	codedump --backend go-git --copy  # use go-git instead of the git binary, copy to clipboard
//	codedump verify                   # check the listing matches the sections
//	codedump config show              # print the effective configuration
package main
