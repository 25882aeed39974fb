package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommit_ShortSha(t *testing.T) {
	require.Equal(t, "abc1234", Commit{Sha: "abc1234567890"}.ShortSha())
	require.Equal(t, "abc", Commit{Sha: "abc"}.ShortSha())
}

func TestCommit_Subject(t *testing.T) {
	c := Commit{Message: "  fix: handle unborn HEAD  \n\nlonger body\n"}
	require.Equal(t, "fix: handle unborn HEAD", c.Subject())
	require.Equal(t, "", Commit{}.Subject())
}

func TestCommit_IsEmpty(t *testing.T) {
	require.True(t, Commit{}.IsEmpty())
	require.False(t, Commit{Sha: "abc"}.IsEmpty())
}

func TestNewReferenceName_LocalBranch(t *testing.T) {
	ref := NewReferenceName("refs/heads/feature/login")
	require.Equal(t, "refs/heads/feature/login", ref.Canonical)
	require.Equal(t, "feature/login", ref.Friendly)
}

func TestNewReferenceName_RemoteBranch(t *testing.T) {
	ref := NewReferenceName("refs/remotes/origin/feature/login")
	require.Equal(t, "origin/feature/login", ref.Friendly)
	require.Equal(t, "refs/remotes/origin/feature/login", ref.Canonical)
}

func TestNewReferenceName_RemoteBranchNoSlash(t *testing.T) {
	ref := NewReferenceName("refs/remotes/origin")
	require.Equal(t, "origin", ref.Friendly)
}

func TestNewReferenceName_Tag(t *testing.T) {
	ref := NewReferenceName("refs/tags/v1.0.0")
	require.Equal(t, "v1.0.0", ref.Friendly)
}

func TestNewReferenceName_Head(t *testing.T) {
	ref := NewReferenceName(HeadRef)
	require.Equal(t, "HEAD", ref.Canonical)
	require.Equal(t, "HEAD", ref.Friendly)
}

func TestNewRemoteTrackingReferenceName(t *testing.T) {
	ref := NewRemoteTrackingReferenceName("upstream", "release/2.x")
	require.Equal(t, "refs/remotes/upstream/release/2.x", ref.Canonical)
	require.Equal(t, "upstream/release/2.x", ref.Friendly)
}

func TestNewBranchReferenceName(t *testing.T) {
	require.Equal(t, "refs/heads/main", NewBranchReferenceName("main").Canonical)
}

func TestBranch_FriendlyNameAndUnborn(t *testing.T) {
	b := Branch{Name: NewBranchReferenceName("main")}
	require.Equal(t, "main", b.FriendlyName())
	require.True(t, b.IsUnborn())

	b.Tip = &Commit{Sha: "abc"}
	require.False(t, b.IsUnborn())
}
