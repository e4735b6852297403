// Package gitctx collects the change-set of a git working tree.
//
// A [Query] answers two questions for a pathspec pattern: which files have
// uncommitted worktree modifications, and which files are present but
// untracked (ignored files excluded). [ExecQuery] shells out to the git
// binary; [RepoQuery] reads the same information through go-git.
//
// [Collect] runs both queries sequentially and returns their union as a
// sorted [ChangeSet]. A failing git invocation surfaces as a [*CommandError]
// carrying git's stderr.
package gitctx
