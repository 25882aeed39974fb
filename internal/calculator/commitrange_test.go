package calculator

import (
	"errors"
	"testing"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/strategy"

	"github.com/stretchr/testify/require"
)

func TestResolveRange_UnbornHead(t *testing.T) {
	r, err := ResolveRange(git.NewRepositoryStore(&git.MockRepository{}), git.Commit{}, strategy.NoPushPoint(), 10)
	require.NoError(t, err)
	require.Equal(t, RangeEmpty, r.Kind)
	require.Equal(t, "", r.String())
	require.False(t, r.IsUnrepresentable())
}

func TestCommitRange_StringZeroValue(t *testing.T) {
	require.Equal(t, "", CommitRange{}.String())
	require.Equal(t, "", CommitRange{Kind: RangeWindow, LowerExpr: "HEAD~10"}.String())
}

func TestResolveRange_PushPointIsHead(t *testing.T) {
	head := newTestCommit(shaHead)
	r, err := ResolveRange(git.NewRepositoryStore(&git.MockRepository{}), head, pushPointAt(shaHead), 10)
	require.NoError(t, err)
	require.Equal(t, RangePushPoint, r.Kind)
	require.Equal(t, shaHead, r.LowerBound)
	require.Equal(t, shaHead, r.UpperBound)
	require.Equal(t, shaHead+"..HEAD", r.String())
}

func TestResolveRange_PushPointAncestor(t *testing.T) {
	head := newTestCommit(shaHead)
	mock := &git.MockRepository{
		IsAncestorFunc: func(a, d string) (bool, error) {
			require.Equal(t, shaPushed, a)
			require.Equal(t, shaHead, d)
			return true, nil
		},
	}
	r, err := ResolveRange(git.NewRepositoryStore(mock), head, pushPointAt(shaPushed), 10)
	require.NoError(t, err)
	require.Equal(t, RangePushPoint, r.Kind)
	require.Equal(t, shaPushed, r.LowerBound)
	require.Equal(t, shaPushed+"..HEAD", r.String())
	require.Contains(t, r.Reason, "is an ancestor of HEAD")
}

func TestResolveRange_PushPointNotAncestor_MergeBase(t *testing.T) {
	head := newTestCommit(shaHead)
	mock := &git.MockRepository{
		IsAncestorFunc:    func(string, string) (bool, error) { return false, nil },
		FindMergeBaseFunc: func(string, string) (string, error) { return shaBase, nil },
	}
	r, err := ResolveRange(git.NewRepositoryStore(mock), head, pushPointAt(shaPushed), 10)
	require.NoError(t, err)
	require.Equal(t, RangePushPoint, r.Kind)
	require.Equal(t, shaBase, r.LowerBound)
	require.Equal(t, shaBase+"..HEAD", r.String())
	require.Contains(t, r.Reason, "merge base")
}

func TestResolveRange_PushPointUnrelated_FallsBackToWindow(t *testing.T) {
	head := newTestCommit(shaHead)
	mock := &git.MockRepository{
		IsAncestorFunc:          func(string, string) (bool, error) { return false, nil },
		FindMergeBaseFunc:       func(string, string) (string, error) { return "", nil },
		FirstParentAncestorFunc: func(string, int) (string, bool, error) { return shaBase, true, nil },
	}
	r, err := ResolveRange(git.NewRepositoryStore(mock), head, pushPointAt(shaPushed), 10)
	require.NoError(t, err)
	require.Equal(t, RangeWindow, r.Kind)
	require.Equal(t, shaBase, r.LowerBound)
	require.Equal(t, "HEAD~10..HEAD", r.String())
	require.Contains(t, r.Reason, "shares no history")
}

func TestResolveRange_NoPushPoint_Window(t *testing.T) {
	head := newTestCommit(shaHead)
	var gotN int
	mock := &git.MockRepository{
		FirstParentAncestorFunc: func(_ string, n int) (string, bool, error) {
			gotN = n
			return shaBase, true, nil
		},
	}
	r, err := ResolveRange(git.NewRepositoryStore(mock), head, strategy.NoPushPoint(), 7)
	require.NoError(t, err)
	require.Equal(t, RangeWindow, r.Kind)
	require.Equal(t, 7, gotN)
	require.Equal(t, 7, r.Window)
	require.Equal(t, shaBase, r.LowerBound)
	require.Equal(t, "HEAD~7..HEAD", r.String())
	require.False(t, r.IsUnrepresentable())
}

func TestResolveRange_NoPushPoint_ShortHistory(t *testing.T) {
	head := newTestCommit(shaHead)
	mock := &git.MockRepository{
		FirstParentAncestorFunc: func(string, int) (string, bool, error) { return "", false, nil },
	}
	r, err := ResolveRange(git.NewRepositoryStore(mock), head, strategy.NoPushPoint(), 10)
	require.NoError(t, err)
	require.Equal(t, RangeWindow, r.Kind)
	require.Empty(t, r.LowerBound)
	require.True(t, r.IsUnrepresentable())
	require.Equal(t, "HEAD~10..HEAD", r.String())
}

func TestResolveRange_Errors(t *testing.T) {
	head := newTestCommit(shaHead)
	boom := errors.New("boom")

	_, err := ResolveRange(git.NewRepositoryStore(&git.MockRepository{
		IsAncestorFunc: func(string, string) (bool, error) { return false, boom },
	}), head, pushPointAt(shaPushed), 10)
	require.ErrorIs(t, err, boom)

	_, err = ResolveRange(git.NewRepositoryStore(&git.MockRepository{
		IsAncestorFunc:    func(string, string) (bool, error) { return false, nil },
		FindMergeBaseFunc: func(string, string) (string, error) { return "", boom },
	}), head, pushPointAt(shaPushed), 10)
	require.ErrorIs(t, err, boom)

	_, err = ResolveRange(git.NewRepositoryStore(&git.MockRepository{
		FirstParentAncestorFunc: func(string, int) (string, bool, error) { return "", false, boom },
	}), head, strategy.NoPushPoint(), 10)
	require.ErrorIs(t, err, boom)
}
