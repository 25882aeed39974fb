package git

import (
	"errors"
	"fmt"
)

// RepositoryStore provides higher-level domain queries built on top of a
// Repository: remote-tracking lookups, commit existence checks and reflog
// searches used by the push-point heuristics.
type RepositoryStore struct {
	repo Repository
}

// NewRepositoryStore creates a new RepositoryStore wrapping the given Repository.
func NewRepositoryStore(repo Repository) *RepositoryStore {
	return &RepositoryStore{repo: repo}
}

// --- Branch queries ---

// GetHead returns the branch HEAD points at.
func (s *RepositoryStore) GetHead() (Branch, error) {
	head, err := s.repo.Head()
	if err != nil {
		return Branch{}, fmt.Errorf("resolving HEAD: %w", err)
	}
	return head, nil
}

// GetBranchRemote returns the configured remote for a local branch, or an
// empty string when none is configured.
func (s *RepositoryStore) GetBranchRemote(branch string) (string, error) {
	remote, err := s.repo.BranchRemote(branch)
	if err != nil {
		return "", fmt.Errorf("reading remote of branch %s: %w", branch, err)
	}
	return remote, nil
}

// RemoteTrackingTip returns the SHA of refs/remotes/<remote>/<branch>.
// The boolean is false when the reference does not exist.
func (s *RepositoryStore) RemoteTrackingTip(remote, branch string) (string, bool, error) {
	ref := NewRemoteTrackingReferenceName(remote, branch)
	sha, err := s.repo.ResolveReference(ref.Canonical)
	if errors.Is(err, ErrReferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return sha, true, nil
}

// --- Commit queries ---

// LookupCommit returns the commit with the given SHA. The boolean is false
// when the SHA is empty or does not resolve to a commit object.
func (s *RepositoryStore) LookupCommit(sha string) (Commit, bool) {
	if sha == "" {
		return Commit{}, false
	}
	c, err := s.repo.CommitFromSha(sha)
	if err != nil || c.IsEmpty() {
		return Commit{}, false
	}
	return c, true
}

// IsAncestor reports whether ancestor is reachable from descendant.
// Equal commits count as ancestors.
func (s *RepositoryStore) IsAncestor(ancestor, descendant string) (bool, error) {
	if ancestor == descendant {
		return true, nil
	}
	ok, err := s.repo.IsAncestor(ancestor, descendant)
	if err != nil {
		return false, fmt.Errorf("checking whether %s is an ancestor of %s: %w", ancestor, descendant, err)
	}
	return ok, nil
}

// FindMergeBase returns the best common ancestor of two commits, or an
// empty string when the histories are unrelated.
func (s *RepositoryStore) FindMergeBase(sha1, sha2 string) (string, error) {
	base, err := s.repo.FindMergeBase(sha1, sha2)
	if err != nil {
		return "", fmt.Errorf("finding merge base of %s and %s: %w", sha1, sha2, err)
	}
	return base, nil
}

// GetCommitLog returns commits reachable from to but not from from, newest first.
func (s *RepositoryStore) GetCommitLog(from, to string) ([]Commit, error) {
	commits, err := s.repo.CommitLog(from, to)
	if err != nil {
		return nil, fmt.Errorf("listing commits %s..%s: %w", from, to, err)
	}
	return commits, nil
}

// GetRecentCommits returns at most limit commits reachable from to, newest first.
func (s *RepositoryStore) GetRecentCommits(to string, limit int) ([]Commit, error) {
	commits, err := s.repo.RecentCommits(to, limit)
	if err != nil {
		return nil, fmt.Errorf("listing last %d commits of %s: %w", limit, to, err)
	}
	return commits, nil
}

// WindowLowerBound resolves <sha>~n. The boolean is false when the first
// parent chain is shorter than n.
func (s *RepositoryStore) WindowLowerBound(sha string, n int) (string, bool, error) {
	bound, ok, err := s.repo.FirstParentAncestor(sha, n)
	if err != nil {
		return "", false, fmt.Errorf("resolving %s~%d: %w", sha, n, err)
	}
	return bound, ok, nil
}

// --- Reflog queries ---

// FindReflogEntry returns the newest entry of ref's reflog accepted by match.
// Returns nil when the reflog is missing or nothing matches.
func (s *RepositoryStore) FindReflogEntry(ref string, match func(ReflogEntry) bool) (*ReflogEntry, error) {
	entries, err := s.repo.Reflog(ref)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if match(entries[i]) {
			e := entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

// FindLatestReflogEntry searches the reflogs of all refs and returns the
// matching entry with the most recent timestamp. On equal timestamps the
// earlier ref in refs wins.
func (s *RepositoryStore) FindLatestReflogEntry(refs []string, match func(ReflogEntry) bool) (*ReflogEntry, error) {
	var best *ReflogEntry
	for _, ref := range refs {
		e, err := s.FindReflogEntry(ref, match)
		if err != nil {
			return nil, fmt.Errorf("reading reflog of %s: %w", ref, err)
		}
		if e == nil {
			continue
		}
		if best == nil || e.When.After(best.When) {
			best = e
		}
	}
	return best, nil
}
