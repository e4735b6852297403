package gitctx

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Query lists candidate paths from a version-control working tree.
// Paths are relative to the repository root.
type Query interface {
	ModifiedFiles(pattern string) ([]string, error)
	UntrackedFiles(pattern string) ([]string, error)
}

// ChangeSet is the sorted, duplicate-free list of paths selected for a dump.
type ChangeSet []string

// CommandError reports a git invocation that exited non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// Collect runs the modified and untracked queries in order and merges their
// results. Any query error aborts the collection.
func Collect(q Query, pattern string) (ChangeSet, error) {
	modified, err := q.ModifiedFiles(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing modified files: %w", err)
	}
	untracked, err := q.UntrackedFiles(pattern)
	if err != nil {
		return nil, fmt.Errorf("listing untracked files: %w", err)
	}
	return merge(modified, untracked), nil
}

func merge(sets ...[]string) ChangeSet {
	seen := make(map[string]bool)
	var files ChangeSet
	for _, set := range sets {
		for _, f := range set {
			if seen[f] {
				continue
			}
			seen[f] = true
			files = append(files, f)
		}
	}
	sort.Strings(files)
	return files
}

// ExecQuery answers queries by running the git binary inside Root.
type ExecQuery struct {
	Root string
}

// ModifiedFiles lists paths with unstaged modifications matching pattern.
func (q ExecQuery) ModifiedFiles(pattern string) ([]string, error) {
	out, err := q.git("diff", "--name-only", "--", pattern)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// UntrackedFiles lists paths that git does not track and does not ignore.
func (q ExecQuery) UntrackedFiles(pattern string) ([]string, error) {
	out, err := q.git("ls-files", "--others", "--exclude-standard", "--", pattern)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (q ExecQuery) git(args ...string) (string, error) {
	// quotepath=off keeps non-ASCII paths literal instead of octal-escaped
	return gitOutput(q.Root, append([]string{"-c", "core.quotepath=off"}, args...)...)
}

// FindRoot returns the top-level directory of the repository containing dir.
func FindRoot(dir string) (string, error) {
	out, err := gitOutput(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return string(out), &CommandError{Args: args, Stderr: string(exitErr.Stderr), Err: err}
		}
		return "", err
	}
	return string(out), nil
}
