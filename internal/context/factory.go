package context

import (
	"fmt"
	"log/slog"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/config"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/git"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
)

// Options configures what the factory resolves.
type Options struct {
	// Remote overrides remote resolution. Empty string means use the
	// branch configuration.
	Remote string
}

// NewContext creates a RepositoryContext by resolving the current branch,
// its HEAD commit, its remote and the effective configuration. It fails with
// a *git.DetachedHeadError when HEAD is not on a branch.
func NewContext(store *git.RepositoryStore, cfg *config.Config, opts Options, log *slog.Logger) (*RepositoryContext, error) {
	log = logging.OrDiscard(log)

	// 1. Resolve the branch HEAD points at.
	branch, err := store.GetHead()
	if err != nil {
		return nil, err
	}
	if branch.IsDetachedHead {
		sha := ""
		if branch.Tip != nil {
			sha = branch.Tip.Sha
		}
		return nil, &git.DetachedHeadError{Sha: sha}
	}

	var head git.Commit
	if branch.Tip != nil {
		head = *branch.Tip
	}

	// 2. Resolve the configuration in effect for this branch.
	bc, bcName, err := cfg.GetBranchConfiguration(branch.FriendlyName())
	if err != nil {
		return nil, fmt.Errorf("resolving branch configuration: %w", err)
	}
	effective := config.NewEffectiveConfiguration(cfg, bc, bcName)
	if bcName != "" {
		log.Debug("branch configuration matched", "branch", branch.FriendlyName(), "config", bcName)
	}

	ctx := &RepositoryContext{
		Branch:        branch,
		Head:          head,
		Configuration: effective,
	}

	// 3. Resolve the remote.
	if err := resolveRemote(ctx, store, opts, log); err != nil {
		return nil, err
	}

	log.Debug("repository context resolved",
		"branch", ctx.BranchName(),
		"remote", ctx.Remote,
		"head", head.Sha,
		"unborn", ctx.IsUnborn(),
	)

	return ctx, nil
}

// resolveRemote picks the remote in priority order: explicit option, branch
// override, branch.<name>.remote, then the configured default.
func resolveRemote(ctx *RepositoryContext, store *git.RepositoryStore, opts Options, log *slog.Logger) error {
	if opts.Remote != "" {
		ctx.Remote = opts.Remote
		return nil
	}
	if ctx.Configuration.BranchRemote != "" {
		ctx.Remote = ctx.Configuration.BranchRemote
		return nil
	}

	remote, err := store.GetBranchRemote(ctx.BranchName())
	if err != nil {
		return err
	}
	// "." marks a branch whose upstream is another local branch.
	if remote != "" && remote != "." {
		ctx.Remote = remote
		return nil
	}

	ctx.Remote = ctx.Configuration.DefaultRemote
	ctx.RemoteDefaulted = true
	msg := fmt.Sprintf("no remote configured for branch %s; assuming %s", ctx.BranchName(), ctx.Remote)
	ctx.Warnings = append(ctx.Warnings, msg)
	log.Warn("no remote configured for branch, using default",
		"branch", ctx.BranchName(),
		"remote", ctx.Remote,
	)
	return nil
}
