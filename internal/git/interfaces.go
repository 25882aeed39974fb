package git

// Repository provides low-level, read-only git history queries.
// This is the key abstraction point for testing and backend swapping:
// push-point heuristics only ever see a repository through this interface.
type Repository interface {
	// Path returns the path to the .git directory.
	Path() string

	// WorkingDirectory returns the path to the working directory.
	WorkingDirectory() string

	// Head returns the branch HEAD points at. For an unborn branch the
	// returned Branch has a nil Tip. For a detached HEAD, IsDetachedHead is
	// set and Name is "HEAD".
	Head() (Branch, error)

	// BranchRemote returns the remote configured for the local branch
	// (branch.<name>.remote). Returns an empty string when none is set.
	BranchRemote(branch string) (string, error)

	// ResolveReference resolves a canonical reference name to a commit SHA.
	// Returns ErrReferenceNotFound when the reference does not exist.
	ResolveReference(name string) (string, error)

	// CommitFromSha returns the commit with the given SHA.
	CommitFromSha(sha string) (Commit, error)

	// IsAncestor reports whether ancestor is reachable from descendant by
	// following parent links. A commit is its own ancestor.
	IsAncestor(ancestor, descendant string) (bool, error)

	// FindMergeBase returns the best common ancestor of two commits.
	// Returns an empty string if no merge base exists.
	FindMergeBase(sha1, sha2 string) (string, error)

	// CommitLog returns commits reachable from 'to' but not from 'from',
	// in reverse chronological order. If from is empty, all ancestors of
	// 'to' are returned.
	CommitLog(from, to string) ([]Commit, error)

	// RecentCommits returns at most limit commits reachable from 'to', in
	// reverse chronological order.
	RecentCommits(to string, limit int) ([]Commit, error)

	// FirstParentAncestor returns the commit reached by following the first
	// parent n times from sha (the equivalent of sha~n). The boolean is false
	// when history is shorter than n.
	FirstParentAncestor(sha string, n int) (string, bool, error)

	// Reflog returns the operation history of a reference, newest entry
	// first. A reference without a reflog yields no entries and no error.
	Reflog(refName string) ([]ReflogEntry, error)
}
