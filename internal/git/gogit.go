package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Compile-time check that GoGitRepository implements Repository.
var _ Repository = (*GoGitRepository)(nil)

// GoGitRepository implements Repository using go-git.
type GoGitRepository struct {
	repo    *gogit.Repository
	dotGit  billy.Filesystem
	path    string
	workDir string
}

// Open opens the git repository containing path. The lookup walks up
// parent directories the same way the git CLI does. Returns a
// *NotARepositoryError when no repository is found.
func Open(path string) (*GoGitRepository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &NotARepositoryError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	g := &GoGitRepository{repo: r}

	if fs, ok := r.Storer.(*filesystem.Storage); ok {
		g.dotGit = fs.Filesystem()
		g.path = g.dotGit.Root()
	}

	wt, err := r.Worktree()
	switch {
	case err == nil:
		g.workDir = wt.Filesystem.Root()
		if g.path == "" {
			g.path = filepath.Join(g.workDir, ".git")
		}
	case errors.Is(err, gogit.ErrIsBareRepository):
		g.workDir = g.path
	default:
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return g, nil
}

func (r *GoGitRepository) Path() string {
	return r.path
}

func (r *GoGitRepository) WorkingDirectory() string {
	return r.workDir
}

func (r *GoGitRepository) Head() (Branch, error) {
	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return r.unbornHead()
	}
	if err != nil {
		return Branch{}, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.commitFromHash(ref.Hash())
	if err != nil {
		return Branch{}, fmt.Errorf("getting HEAD commit: %w", err)
	}

	return Branch{
		Name:           NewReferenceName(string(ref.Name())),
		Tip:            &commit,
		IsDetachedHead: !ref.Name().IsBranch(),
	}, nil
}

// unbornHead reads the symbolic HEAD of a branch that has no commits yet.
func (r *GoGitRepository) unbornHead() (Branch, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return Branch{}, fmt.Errorf("reading HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return Branch{}, fmt.Errorf("HEAD points at missing commit %s", head.Hash())
	}
	return Branch{Name: NewReferenceName(string(head.Target()))}, nil
}

func (r *GoGitRepository) BranchRemote(branch string) (string, error) {
	cfg, err := r.repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading repository config: %w", err)
	}
	b, ok := cfg.Branches[branch]
	if !ok || b == nil {
		return "", nil
	}
	return b.Remote, nil
}

func (r *GoGitRepository) ResolveReference(name string) (string, error) {
	ref, err := r.repo.Reference(plumbing.ReferenceName(name), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", fmt.Errorf("%w: %s", ErrReferenceNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	return ref.Hash().String(), nil
}

func (r *GoGitRepository) CommitFromSha(sha string) (Commit, error) {
	return r.commitFromHash(plumbing.NewHash(sha))
}

func (r *GoGitRepository) IsAncestor(ancestor, descendant string) (bool, error) {
	a, err := r.repo.CommitObject(plumbing.NewHash(ancestor))
	if err != nil {
		return false, fmt.Errorf("loading commit %s: %w", ancestor, err)
	}
	d, err := r.repo.CommitObject(plumbing.NewHash(descendant))
	if err != nil {
		return false, fmt.Errorf("loading commit %s: %w", descendant, err)
	}

	ok, err := a.IsAncestor(d)
	if err != nil {
		return false, fmt.Errorf("checking ancestry of %s: %w", ancestor, err)
	}
	return ok, nil
}

func (r *GoGitRepository) FindMergeBase(sha1, sha2 string) (string, error) {
	c1, err := r.repo.CommitObject(plumbing.NewHash(sha1))
	if err != nil {
		return "", fmt.Errorf("loading commit %s: %w", sha1, err)
	}

	c2, err := r.repo.CommitObject(plumbing.NewHash(sha2))
	if err != nil {
		return "", fmt.Errorf("loading commit %s: %w", sha2, err)
	}

	bases, err := c1.MergeBase(c2)
	if err != nil {
		return "", fmt.Errorf("computing merge base: %w", err)
	}

	if len(bases) == 0 {
		return "", nil
	}

	return bases[0].Hash.String(), nil
}

func (r *GoGitRepository) CommitLog(from, to string) ([]Commit, error) {
	toCommit, err := r.repo.CommitObject(plumbing.NewHash(to))
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", to, err)
	}

	// Everything reachable from 'from' is excluded, which also prunes the walk.
	var hidden map[plumbing.Hash]bool
	if from != "" {
		hidden, err = r.reachable(plumbing.NewHash(from))
		if err != nil {
			return nil, err
		}
	}

	var commits []Commit
	iter := object.NewCommitIterCTime(toCommit, hidden, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, convertCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating commits: %w", err)
	}

	return commits, nil
}

func (r *GoGitRepository) RecentCommits(to string, limit int) ([]Commit, error) {
	if limit <= 0 {
		return nil, nil
	}

	toCommit, err := r.repo.CommitObject(plumbing.NewHash(to))
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", to, err)
	}

	var commits []Commit
	iter := object.NewCommitIterCTime(toCommit, nil, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, convertCommit(c))
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("iterating commits: %w", err)
	}

	return commits, nil
}

func (r *GoGitRepository) FirstParentAncestor(sha string, n int) (string, bool, error) {
	c, err := r.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return "", false, fmt.Errorf("loading commit %s: %w", sha, err)
	}

	for i := 0; i < n; i++ {
		if c.NumParents() == 0 {
			return "", false, nil
		}
		c, err = c.Parent(0)
		if err != nil {
			return "", false, fmt.Errorf("loading first parent of %s: %w", sha, err)
		}
	}

	return c.Hash.String(), true, nil
}

func (r *GoGitRepository) Reflog(refName string) ([]ReflogEntry, error) {
	if r.dotGit == nil {
		return nil, nil
	}

	f, err := r.dotGit.Open(r.dotGit.Join("logs", refName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening reflog for %s: %w", refName, err)
	}
	defer f.Close()

	entries, err := ParseReflog(refName, f)
	if err != nil {
		return nil, fmt.Errorf("reading reflog for %s: %w", refName, err)
	}
	return entries, nil
}

// reachable returns the set of commits reachable from hash, hash included.
func (r *GoGitRepository) reachable(hash plumbing.Hash) (map[plumbing.Hash]bool, error) {
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", hash.String(), err)
	}

	seen := make(map[plumbing.Hash]bool)
	err = object.NewCommitPreorderIter(c, nil, nil).ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history of %s: %w", hash.String(), err)
	}
	return seen, nil
}

// commitFromHash loads a go-git commit and converts it to our Commit type.
func (r *GoGitRepository) commitFromHash(hash plumbing.Hash) (Commit, error) {
	c, err := r.repo.CommitObject(hash)
	if err != nil {
		return Commit{}, fmt.Errorf("loading commit %s: %w", hash.String(), err)
	}
	return convertCommit(c), nil
}

// convertCommit converts a go-git commit to our Commit type.
func convertCommit(c *object.Commit) Commit {
	parents := make([]string, 0, c.NumParents())
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}

	return Commit{
		Sha:     c.Hash.String(),
		Parents: parents,
		When:    c.Committer.When,
		Message: c.Message,
	}
}
