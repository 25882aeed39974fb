// Package testutil provides helpers for creating temporary git repositories
// with controlled history, remote-tracking refs and reflogs for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ZeroSha is the all-zero object name git writes for a ref that did not exist.
const ZeroSha = "0000000000000000000000000000000000000000"

const testIdentity = "Test <test@example.com>"

// TestRepo is a builder for creating temporary git repositories with
// controlled commit history, branches, remote-tracking refs and reflogs.
type TestRepo struct {
	t    testing.TB
	path string
	repo *gogit.Repository
	time time.Time
}

// NewTestRepo creates and initializes a new git repository in a temporary
// directory. The repository starts on an unborn "master" branch.
func NewTestRepo(t testing.TB) *TestRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	return &TestRepo{
		t:    t,
		path: dir,
		repo: repo,
		time: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Path returns the repository root directory.
func (r *TestRepo) Path() string {
	return r.path
}

// AddCommit creates a new commit with the given message. A file named after
// the commit time is created to ensure each commit has changes.
// Returns the commit SHA.
func (r *TestRepo) AddCommit(message string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	filename := fmt.Sprintf("file-%d.txt", r.time.Unix())
	path := filepath.Join(r.path, filename)
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		r.t.Fatalf("writing file: %v", err)
	}

	if _, err := wt.Add(filename); err != nil {
		r.t.Fatalf("staging file: %v", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: r.signature(),
	})
	if err != nil {
		r.t.Fatalf("committing: %v", err)
	}

	return hash.String()
}

// AddCommits creates n commits named "<prefix> 1".."<prefix> n" and returns
// their SHAs oldest first.
func (r *TestRepo) AddCommits(prefix string, n int) []string {
	r.t.Helper()
	shas := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		shas = append(shas, r.AddCommit(fmt.Sprintf("%s %d", prefix, i)))
	}
	return shas
}

// CreateBranch creates a new branch pointing at the given SHA.
func (r *TestRepo) CreateBranch(name, sha string) {
	r.t.Helper()

	ref := plumbing.NewReferenceFromStrings("refs/heads/"+name, sha)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("creating branch %s: %v", name, err)
	}
}

// Checkout switches HEAD to the given branch.
func (r *TestRepo) Checkout(branch string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
	})
	if err != nil {
		r.t.Fatalf("checking out %s: %v", branch, err)
	}
}

// MergeCommit creates a merge commit with two parents: the current HEAD and
// the given SHA. Returns the merge commit SHA.
func (r *TestRepo) MergeCommit(message, otherSha string) string {
	r.t.Helper()
	r.time = r.time.Add(time.Minute)

	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}

	filename := fmt.Sprintf("merge-%d.txt", r.time.Unix())
	path := filepath.Join(r.path, filename)
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		r.t.Fatalf("writing merge file: %v", err)
	}

	if _, err := wt.Add(filename); err != nil {
		r.t.Fatalf("staging merge file: %v", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author:  r.signature(),
		Parents: []plumbing.Hash{head.Hash(), plumbing.NewHash(otherSha)},
	})
	if err != nil {
		r.t.Fatalf("merge commit: %v", err)
	}

	return hash.String()
}

// ResetHard moves the current branch to sha, rewriting its history the
// way "git reset --hard" does.
func (r *TestRepo) ResetHard(sha string) {
	r.t.Helper()
	wt, err := r.repo.Worktree()
	if err != nil {
		r.t.Fatalf("getting worktree: %v", err)
	}
	err = wt.Reset(&gogit.ResetOptions{
		Commit: plumbing.NewHash(sha),
		Mode:   gogit.HardReset,
	})
	if err != nil {
		r.t.Fatalf("resetting to %s: %v", sha, err)
	}
}

// DetachHead points HEAD directly at sha.
func (r *TestRepo) DetachHead(sha string) {
	r.t.Helper()
	ref := plumbing.NewHashReference(plumbing.HEAD, plumbing.NewHash(sha))
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("detaching HEAD: %v", err)
	}
}

// SetBranchRemote records branch.<branch>.remote in the repository config.
func (r *TestRepo) SetBranchRemote(branch, remote string) {
	r.t.Helper()
	cfg, err := r.repo.Config()
	if err != nil {
		r.t.Fatalf("reading config: %v", err)
	}
	cfg.Branches[branch] = &gogitconfig.Branch{
		Name:   branch,
		Remote: remote,
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	if err := r.repo.SetConfig(cfg); err != nil {
		r.t.Fatalf("saving config: %v", err)
	}
}

// SetRemoteTrackingRef points refs/remotes/<remote>/<branch> at sha without
// writing a reflog entry, as a plain fetch of an existing ref would leave it.
func (r *TestRepo) SetRemoteTrackingRef(remote, branch, sha string) {
	r.t.Helper()
	ref := plumbing.NewHashReference(
		plumbing.NewRemoteReferenceName(remote, branch),
		plumbing.NewHash(sha),
	)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		r.t.Fatalf("setting %s/%s: %v", remote, branch, err)
	}
}

// RecordPush simulates a successful "git push": the remote-tracking ref
// moves to sha and its reflog gains an "update by push" entry.
func (r *TestRepo) RecordPush(remote, branch, sha string) {
	r.t.Helper()
	ref := "refs/remotes/" + remote + "/" + branch
	old := r.refSha(ref)
	r.SetRemoteTrackingRef(remote, branch, sha)
	r.AppendReflog(ref, old, sha, "update by push")
}

// AppendReflog appends an entry to the reflog of ref. An empty old SHA is
// written as the zero SHA. Each entry is one second newer than the last.
func (r *TestRepo) AppendReflog(ref, oldSha, newSha, message string) {
	r.t.Helper()
	if oldSha == "" {
		oldSha = ZeroSha
	}
	r.time = r.time.Add(time.Second)

	path := filepath.Join(r.path, ".git", "logs", filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatalf("creating reflog dir: %v", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		r.t.Fatalf("opening reflog %s: %v", ref, err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatReflogLine(oldSha, newSha, testIdentity, r.time, message)); err != nil {
		r.t.Fatalf("writing reflog %s: %v", ref, err)
	}
}

// FormatReflogLine renders one entry in git's on-disk reflog format.
func FormatReflogLine(oldSha, newSha, identity string, when time.Time, message string) string {
	return fmt.Sprintf("%s %s %s %d %s\t%s\n", oldSha, newSha, identity, when.Unix(), when.Format("-0700"), message)
}

// WriteConfig writes a go-pushdelta.yml file in the repo root.
func (r *TestRepo) WriteConfig(content string) {
	r.t.Helper()
	path := filepath.Join(r.path, "go-pushdelta.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		r.t.Fatalf("writing config: %v", err)
	}
}

// HeadSha returns the current HEAD commit SHA.
func (r *TestRepo) HeadSha() string {
	r.t.Helper()
	head, err := r.repo.Head()
	if err != nil {
		r.t.Fatalf("getting HEAD: %v", err)
	}
	return head.Hash().String()
}

// CurrentBranch returns the short name of the branch HEAD points at.
func (r *TestRepo) CurrentBranch() string {
	r.t.Helper()
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		r.t.Fatalf("reading HEAD: %v", err)
	}
	return strings.TrimPrefix(string(head.Target()), "refs/heads/")
}

func (r *TestRepo) refSha(name string) string {
	ref, err := r.repo.Reference(plumbing.ReferenceName(name), true)
	if err != nil {
		return ""
	}
	return ref.Hash().String()
}

func (r *TestRepo) signature() *object.Signature {
	return &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  r.time,
	}
}
