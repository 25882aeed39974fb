package strategy

import (
	"fmt"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// RemoteTrackingRefStrategy uses the remote-tracking ref itself, provided
// HEAD still contains it.
type RemoteTrackingRefStrategy struct {
	store *git.RepositoryStore
}

// NewRemoteTrackingRefStrategy creates a new RemoteTrackingRefStrategy.
func NewRemoteTrackingRefStrategy(store *git.RepositoryStore) *RemoteTrackingRefStrategy {
	return &RemoteTrackingRefStrategy{store: store}
}

func (s *RemoteTrackingRefStrategy) Name() string { return config.StrategyRemoteTrackingRef }

func (s *RemoteTrackingRefStrategy) Locate(ctx *context.RepositoryContext, exp *Explanation) (*PushPoint, error) {
	ref := ctx.TrackingRef()

	sha, found, err := s.store.RemoteTrackingTip(ctx.Remote, ctx.BranchName())
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", ref.Canonical, err)
	}
	if !found {
		exp.Addf("%s does not exist", ref.Friendly)
		return nil, nil
	}

	commit, ok := s.store.LookupCommit(sha)
	if !ok {
		exp.Addf("%s points at %s, which no longer exists", ref.Friendly, shortSha(sha))
		return nil, nil
	}

	if ctx.IsUnborn() {
		exp.Add("HEAD has no commits; ancestry cannot be checked")
		return nil, nil
	}

	isAncestor, err := s.store.IsAncestor(commit.Sha, ctx.Head.Sha)
	if err != nil {
		return nil, err
	}
	if !isAncestor {
		exp.Addf("%s (%s) is not an ancestor of HEAD", ref.Friendly, commit.ShortSha())
		return nil, nil
	}

	exp.Addf("%s (%s) is an ancestor of HEAD", ref.Friendly, commit.ShortSha())
	return &PushPoint{
		Commit:     &commit,
		Strategy:   s.Name(),
		Confidence: ConfidenceMedium,
		Source:     ref.Friendly,
	}, nil
}
