// Package calculator turns a located push point into the delta of
// unpublished commits: divergence classification, range resolution and
// commit enumeration.
package calculator

import (
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/context"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// DivergenceState describes how HEAD relates to the remote-tracking ref.
type DivergenceState string

const (
	// DivergenceNormal: the remote-tracking ref is an ancestor of (or equal to) HEAD.
	DivergenceNormal DivergenceState = "normal"
	// DivergenceForced: the remote-tracking ref exists but HEAD no longer contains it.
	DivergenceForced DivergenceState = "forced"
	// DivergenceUnknown: there is no usable remote-tracking ref or no HEAD commit.
	DivergenceUnknown DivergenceState = "unknown"
)

// Divergence is the classification plus the tracking ref it was based on.
type Divergence struct {
	State DivergenceState

	// TrackingSha is the remote-tracking ref value; empty when unresolvable.
	TrackingSha string
}

// ClassifyDivergence compares the branch's remote-tracking ref with HEAD.
func ClassifyDivergence(store *git.RepositoryStore, ctx *context.RepositoryContext) (Divergence, error) {
	if ctx.IsUnborn() {
		return Divergence{State: DivergenceUnknown}, nil
	}

	sha, found, err := store.RemoteTrackingTip(ctx.Remote, ctx.BranchName())
	if err != nil {
		return Divergence{State: DivergenceUnknown}, err
	}
	if !found {
		return Divergence{State: DivergenceUnknown}, nil
	}
	if _, ok := store.LookupCommit(sha); !ok {
		return Divergence{State: DivergenceUnknown}, nil
	}

	isAncestor, err := store.IsAncestor(sha, ctx.Head.Sha)
	if err != nil {
		return Divergence{State: DivergenceUnknown, TrackingSha: sha}, err
	}
	if isAncestor {
		return Divergence{State: DivergenceNormal, TrackingSha: sha}, nil
	}
	return Divergence{State: DivergenceForced, TrackingSha: sha}, nil
}
