package strategy

import (
	"errors"
	"testing"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"

	"github.com/stretchr/testify/require"
)

func trackingRefMock(tip string, ancestor bool) *git.MockRepository {
	return &git.MockRepository{
		ResolveReferenceFunc: func(name string) (string, error) {
			if name == "refs/remotes/origin/main" {
				return tip, nil
			}
			return "", git.ErrReferenceNotFound
		},
		CommitFromShaFunc: commitsExcept(shaGone),
		IsAncestorFunc:    func(string, string) (bool, error) { return ancestor, nil },
	}
}

func TestRemoteTrackingRef_Ancestor(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	s := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(trackingRefMock(shaPushed, true)))
	require.Equal(t, "RemoteTrackingRef", s.Name())

	exp := NewExplanation(s.Name())
	pp, err := s.Locate(newTestContext("main", "origin", &head), exp)
	require.NoError(t, err)
	require.NotNil(t, pp)
	require.Equal(t, shaPushed, pp.Commit.Sha)
	require.Equal(t, ConfidenceMedium, pp.Confidence)
	require.Equal(t, "origin/main", pp.Source)
	require.Contains(t, exp.Steps[0], "is an ancestor of HEAD")
}

func TestRemoteTrackingRef_EqualToHead(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	mock := trackingRefMock(shaHead, false)
	mock.IsAncestorFunc = func(string, string) (bool, error) {
		t.Fatal("equal commits must not need an ancestry walk")
		return false, nil
	}

	pp, err := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(mock)).Locate(newTestContext("main", "origin", &head), nil)
	require.NoError(t, err)
	require.Equal(t, shaHead, pp.Commit.Sha)
}

func TestRemoteTrackingRef_NotAncestor(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	s := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(trackingRefMock(shaPushed, false)))

	exp := NewExplanation(s.Name())
	pp, err := s.Locate(newTestContext("main", "origin", &head), exp)
	require.NoError(t, err)
	require.Nil(t, pp)
	require.Contains(t, exp.Steps[0], "not an ancestor")
}

func TestRemoteTrackingRef_MissingRef(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	s := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(trackingRefMock(shaPushed, true)))

	pp, err := s.Locate(newTestContext("feature", "origin", &head), nil)
	require.NoError(t, err)
	require.Nil(t, pp)
}

func TestRemoteTrackingRef_Dangling(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	s := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(trackingRefMock(shaGone, true)))

	pp, err := s.Locate(newTestContext("main", "origin", &head), nil)
	require.NoError(t, err)
	require.Nil(t, pp)
}

func TestRemoteTrackingRef_UnbornHead(t *testing.T) {
	s := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(trackingRefMock(shaPushed, true)))

	pp, err := s.Locate(newTestContext("main", "origin", nil), nil)
	require.NoError(t, err)
	require.Nil(t, pp)
}

func TestRemoteTrackingRef_AncestryError(t *testing.T) {
	head := newTestCommit(shaHead, "head")
	mock := trackingRefMock(shaPushed, true)
	mock.IsAncestorFunc = func(string, string) (bool, error) { return false, errors.New("walk failed") }

	_, err := NewRemoteTrackingRefStrategy(git.NewRepositoryStore(mock)).Locate(newTestContext("main", "origin", &head), nil)
	require.Error(t, err)
}
