// Package context provides the RepositoryContext, the immutable snapshot of
// branch, remote and effective configuration used for push-delta detection.
package context

import (
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
)

// RepositoryContext holds the resolved state needed for push-delta detection.
// It is created once per invocation and passed to all strategies.
type RepositoryContext struct {
	// Branch is the branch HEAD points at. Its Tip is nil when the branch
	// has no commits yet.
	Branch git.Branch

	// Head is the commit at HEAD; the zero Commit for an unborn branch.
	Head git.Commit

	// Remote is the remote the branch publishes to.
	Remote string

	// RemoteDefaulted is true when no remote was configured for the branch
	// and Remote fell back to the configured default.
	RemoteDefaulted bool

	// Configuration is the configuration in effect for Branch.
	Configuration config.EffectiveConfiguration

	// Warnings collects non-fatal conditions met while resolving the context.
	Warnings []string
}

// BranchName returns the short name of the current branch.
func (ctx *RepositoryContext) BranchName() string {
	return ctx.Branch.FriendlyName()
}

// IsUnborn reports whether the current branch has no commits yet.
func (ctx *RepositoryContext) IsUnborn() bool {
	return ctx.Branch.IsUnborn()
}

// TrackingRef returns the remote-tracking reference for the branch,
// refs/remotes/<remote>/<branch>.
func (ctx *RepositoryContext) TrackingRef() git.ReferenceName {
	return git.NewRemoteTrackingReferenceName(ctx.Remote, ctx.BranchName())
}
