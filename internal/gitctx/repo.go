package gitctx

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// RepoQuery answers queries from go-git worktree status, without a git binary.
type RepoQuery struct {
	Root string
}

// ModifiedFiles lists paths whose worktree copy differs from the index,
// including deletions, as `git diff --name-only` does.
func (q RepoQuery) ModifiedFiles(pattern string) ([]string, error) {
	return q.filter(pattern, func(fs *git.FileStatus) bool {
		switch fs.Worktree {
		case git.Modified, git.Deleted, git.Renamed, git.Copied:
			return true
		}
		return false
	})
}

// UntrackedFiles lists paths go-git reports as untracked. Ignored paths are
// excluded by the worktree's gitignore rules.
func (q RepoQuery) UntrackedFiles(pattern string) ([]string, error) {
	return q.filter(pattern, func(fs *git.FileStatus) bool {
		return fs.Worktree == git.Untracked
	})
}

func (q RepoQuery) filter(pattern string, keep func(*git.FileStatus) bool) ([]string, error) {
	spec, err := CompilePathspec(pattern)
	if err != nil {
		return nil, err
	}
	status, err := q.status()
	if err != nil {
		return nil, err
	}
	var files []string
	for path, fs := range status {
		if keep(fs) && spec.Match(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (q RepoQuery) status() (git.Status, error) {
	wt, err := openWorktree(q.Root)
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	return status, nil
}

// RepoRoot returns the worktree root of the repository containing dir,
// located through go-git rather than the git binary.
func RepoRoot(dir string) (string, error) {
	wt, err := openWorktree(dir)
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

func openWorktree(dir string) (*git.Worktree, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	return wt, nil
}
